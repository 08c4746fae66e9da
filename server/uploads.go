package server

import (
	"net/http"
	"net/url"

	"github.com/existflow/qrstudio/internal/upload"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleUploadLogo(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded")
	}

	filename, err := upload.SaveLogo(s.cfg.UploadsPath, fh)
	if err != nil {
		return uploadError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"filename": filename,
		"url":      s.cfg.BaseURL + "/uploads/" + filename,
	})
}

func (s *Server) handleGetUpload(c echo.Context) error {
	// The router leaves percent-encoding in place, so a %2F-encoded
	// absolute path arrives as one segment and must be unescaped before
	// the safety check.
	name, err := url.PathUnescape(c.Param("filename"))
	if err != nil || !upload.SafeFilename(name) {
		return badRequest(c, "Invalid filename")
	}

	path, ok := upload.Resolve(s.cfg.UploadsPath, name)
	if !ok {
		return notFound(c, "Not found")
	}
	return c.File(path)
}
