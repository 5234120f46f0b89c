package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/recipfy/recipe-service/config"
	"github.com/recipfy/recipe-service/internal/database"
	"github.com/recipfy/recipe-service/internal/router"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *database.DB
	log    zerolog.Logger
}

// New creates a new server instance with every route registered
func New(cfg *config.Config, db *database.DB, log zerolog.Logger) *Server {
	engine := router.SetupRouter(cfg, db, log)

	return &Server{
		router: engine,
		db:     db,
		log:    log,
		http: &http.Server{
			Addr:              cfg.Server.Address(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until Shutdown is called
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.http.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and closes the database
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if closeErr := s.db.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
