package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleCreateFolder(c echo.Context) error {
	var body folderBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := body.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	folder, err := s.store.CreateFolder(body.patch())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusCreated, folder)
}

func (s *Server) handleListFolders(c echo.Context) error {
	folders, err := s.store.ListFolders()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, folders)
}

func (s *Server) handleGetFolder(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, "Invalid id")
	}

	folder, err := s.store.GetFolder(id)
	if err != nil {
		return internalError(c, err)
	}
	if folder == nil {
		return notFound(c, "Not found")
	}
	return c.JSON(http.StatusOK, folder)
}

func (s *Server) handleUpdateFolder(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, "Invalid id")
	}

	var body folderBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := body.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	folder, err := s.store.UpdateFolder(id, body.patch())
	if err != nil {
		return internalError(c, err)
	}
	if folder == nil {
		return notFound(c, "Not found")
	}
	return c.JSON(http.StatusOK, folder)
}

// handleDeleteFolder removes a folder; its projects survive and are
// detached by the store before the folder record goes away
func (s *Server) handleDeleteFolder(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, "Invalid id")
	}

	removed, err := s.store.DeleteFolder(id)
	if err != nil {
		return internalError(c, err)
	}
	if !removed {
		return notFound(c, "Not found")
	}
	return c.NoContent(http.StatusNoContent)
}
