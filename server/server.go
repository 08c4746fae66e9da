package server

import (
	"net/http"
	"time"

	"github.com/existflow/qrstudio/internal/config"
	"github.com/existflow/qrstudio/internal/logger"
	"github.com/existflow/qrstudio/internal/shorten"
	"github.com/existflow/qrstudio/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server is the QR studio API server
type Server struct {
	store     *store.Store
	shortener *shorten.Client
	cfg       *config.Config
	echo      *echo.Echo
}

// New creates a server over an already-opened store
func New(cfg *config.Config, st *store.Store) *Server {
	s := &Server{
		store:     st,
		shortener: shorten.NewClient(cfg.KuttBaseURL, cfg.KuttAPIKey, cfg.ShortDomain),
		cfg:       cfg,
	}
	s.setupEcho()
	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	// Custom logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			res := c.Response()
			logger.Info("HTTP request",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("size", res.Size),
				logger.F("duration", time.Since(start).String()))

			return err
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/health", s.handleHealth)

	e.POST("/projects", s.handleCreateProject)
	e.GET("/projects", s.handleListProjects)
	e.GET("/projects/:id", s.handleGetProject)
	e.PUT("/projects/:id", s.handleUpdateProject)
	e.DELETE("/projects/:id", s.handleDeleteProject)

	e.POST("/folders", s.handleCreateFolder)
	e.GET("/folders", s.handleListFolders)
	e.GET("/folders/:id", s.handleGetFolder)
	e.PUT("/folders/:id", s.handleUpdateFolder)
	e.DELETE("/folders/:id", s.handleDeleteFolder)

	e.POST("/uploads/logo", s.handleUploadLogo)
	e.GET("/uploads/:filename", s.handleGetUpload)

	e.POST("/shorten", s.handleShorten)

	s.echo = e
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the server
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
