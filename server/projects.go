package server

import (
	"net/http"

	"github.com/existflow/qrstudio/internal/model"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// projectResponse is the detail representation: the stored record plus
// the derived logoUrl
type projectResponse struct {
	model.Project
	LogoURL *string `json:"logoUrl"`
}

// projectListItem is the trimmed listing representation
type projectListItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UpdatedAt string  `json:"updatedAt"`
	LogoURL   *string `json:"logoUrl"`
	FolderID  *string `json:"folderId"`
}

// logoURL derives the public URL for a stored logo filename
func (s *Server) logoURL(logoFilename *string) *string {
	if logoFilename == nil {
		return nil
	}
	u := s.cfg.BaseURL + "/uploads/" + *logoFilename
	return &u
}

func (s *Server) projectJSON(p *model.Project) projectResponse {
	return projectResponse{Project: *p, LogoURL: s.logoURL(p.LogoFilename)}
}

func (s *Server) handleCreateProject(c echo.Context) error {
	var body projectBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := body.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	project, err := s.store.CreateProject(body.patch())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusCreated, s.projectJSON(project))
}

func (s *Server) handleListProjects(c echo.Context) error {
	list, err := s.store.ListProjects()
	if err != nil {
		return internalError(c, err)
	}

	items := make([]projectListItem, 0, len(list))
	for _, p := range list {
		items = append(items, projectListItem{
			ID:        p.ID,
			Name:      p.Name,
			UpdatedAt: p.UpdatedAt,
			LogoURL:   s.logoURL(p.LogoFilename),
			FolderID:  p.FolderID,
		})
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) handleGetProject(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, "Invalid id")
	}

	project, err := s.store.GetProject(id)
	if err != nil {
		return internalError(c, err)
	}
	if project == nil {
		return notFound(c, "Project not found")
	}
	return c.JSON(http.StatusOK, s.projectJSON(project))
}

func (s *Server) handleUpdateProject(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, "Invalid id")
	}

	var body projectBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := body.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	project, err := s.store.UpdateProject(id, body.patch())
	if err != nil {
		return internalError(c, err)
	}
	if project == nil {
		return notFound(c, "Project not found")
	}
	return c.JSON(http.StatusOK, s.projectJSON(project))
}

func (s *Server) handleDeleteProject(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, "Invalid id")
	}

	removed, err := s.store.DeleteProject(id)
	if err != nil {
		return internalError(c, err)
	}
	if !removed {
		return notFound(c, "Project not found")
	}
	return c.NoContent(http.StatusNoContent)
}
