package server

import (
	"errors"
	"net/http"

	"github.com/existflow/qrstudio/internal/logger"
	"github.com/existflow/qrstudio/internal/shorten"
	"github.com/labstack/echo/v4"
)

// handleShorten proxies to the external shortening service. A missing
// credential is 503; any upstream failure is 502.
func (s *Server) handleShorten(c echo.Context) error {
	var body shortenBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := body.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	shortURL, err := s.shortener.Shorten(c.Request().Context(), body.TargetURL, body.CustomSlug)
	if err != nil {
		if errors.Is(err, shorten.ErrNotConfigured) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		}
		logger.Warn("shortening failed", logger.F("error", err))
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"shortUrl": shortURL})
}
