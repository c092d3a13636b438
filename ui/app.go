// Package ui exposes the dashboard over HTTP: the two-workbook upload,
// the dynamic filter options, and the filtered summary query. It owns
// the "All" wildcard convention; the core never sees the sentinel.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"baselinedash/app"
	"baselinedash/internal"
	"baselinedash/internal/config"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*
var embeddedFiles embed.FS

// AllOption is the wildcard entry prepended to every filter dropdown.
// A selection containing it (or selecting nothing) means the column is
// unconstrained.
const AllOption = "All"

// Server represents the dashboard web server
type Server struct {
	router    *gin.Engine
	service   *app.DashboardService
	cfg       *config.Config
	templates *template.Template
	log       *internal.Logger
}

// NewServer creates the server and wires its routes.
func NewServer(cfg *config.Config, service *app.DashboardService) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.Default(),
		service:   service,
		cfg:       cfg,
		templates: templates,
		log:       internal.NewLogger("UI"),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/upload", s.handleUpload)
		api.GET("/options", s.handleOptions)
		api.POST("/dashboard", s.handleDashboard)
	}
}

// Run starts the HTTP server on the configured port.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port
	s.log.Info("dashboard listening on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "loaded": s.service.Loaded()})
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.templates.ExecuteTemplate(c.Writer, "index.html", gin.H{
		"Title":  "Baseline Assessment Comparison",
		"Loaded": s.service.Loaded(),
	}); err != nil {
		s.log.Error("failed to render index: %v", err)
	}
}
