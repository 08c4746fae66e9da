package server

import (
	"net/http"
	"strings"

	"github.com/existflow/qrstudio/internal/logger"
	"github.com/labstack/echo/v4"
)

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": msg})
}

// internalError logs the underlying cause and hides it from the caller
func internalError(c echo.Context, err error) error {
	logger.Error("unhandled error",
		logger.F("method", c.Request().Method),
		logger.F("uri", c.Request().RequestURI),
		logger.F("error", err))
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

// uploadError translates upload failures. Constraint violations (wrong
// MIME type, oversize) carry recognizable messages and map to 400;
// anything else is an internal error.
func uploadError(c echo.Context, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "image files") || strings.Contains(msg, "file size") {
		return badRequest(c, msg)
	}
	return internalError(c, err)
}
