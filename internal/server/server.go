// Package server exposes the dataset overview over HTTP: the report as
// JSON, the rendered charts as PNG, and a websocket pushing regenerated
// reports when the dataset file changes.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hawkarabdulhaq/quakescope/internal/hub"
)

// Server holds the Gin engine and dependencies for the report API.
type Server struct {
	engine    *gin.Engine
	store     *Store
	hub       *hub.Hub
	chartsDir string
	port      string
}

// New creates the report server.
func New(store *Store, h *hub.Hub, chartsDir, port string) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:    engine,
		store:     store,
		hub:       h,
		chartsDir: chartsDir,
		port:      port,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check.
	s.engine.GET("/healthz", func(c *gin.Context) {
		rep := s.store.Report()
		c.JSON(http.StatusOK, gin.H{
			"status":          "ok",
			"dataset":         rep.Source,
			"rows":            rep.Rows,
			"reloads":         s.store.Reloads(),
			"dropped_reports": s.hub.Dropped(),
		})
	})

	// Report API.
	s.engine.GET("/api/report", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Report())
	})
	s.engine.GET("/api/records", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Records())
	})

	// Rendered charts.
	s.engine.Static("/charts", s.chartsDir)

	// WebSocket for live report updates.
	s.engine.GET("/ws", s.handleWebSocket)
}

// Start runs the server. Blocks until the server is stopped.
func (s *Server) Start() error {
	return s.engine.Run(":" + s.port)
}
