// Package ui is the thin HTTP wrapper around the distribution catalog. It
// translates requests into core calls and renders whatever the core
// returns; no business logic lives here.
package ui

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/distribution"
	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/internal/config"
	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/internal/logging"
)

// Server represents the web server for the distribution API
type Server struct {
	router     *gin.Engine
	log        *logging.Logger
	computeSem *semaphore.Weighted
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config, log *logging.Logger) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:     gin.New(),
		log:        log,
		computeSem: semaphore.NewWeighted(cfg.Compute.MaxConcurrent),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(requestID())
	s.router.Use(requestLogger(s.log))
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.GET("/distributions", s.handleListDistributions)
		api.GET("/distributions/:kind", s.handleDescribeDistribution)
		api.POST("/distributions/:kind/compute", s.withComputeBudget(s.handleComputeDistribution))
		api.GET("/distributions/:kind/export", s.withComputeBudget(s.handleExportDistribution))
		api.GET("/distributions/:kind/doc", s.handleDistributionDoc)
	}
}

// withComputeBudget caps how many compute-backed requests run at once.
// The core is pure and unbounded; the budget belongs to this layer.
func (s *Server) withComputeBudget(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.computeSem.Acquire(c.Request.Context(), 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, errorBody(c, "server busy", "BUSY"))
			return
		}
		defer s.computeSem.Release(1)
		handler(c)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "kinds": distribution.Kinds()})
}

// Handler returns the underlying HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down server")
		return srv.Shutdown(context.Background())
	}
}
