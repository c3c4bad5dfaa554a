package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/nhle/projecthub/internal/insight"
	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/store"
)

// Server represents the HTTP API server.
type Server struct {
	router   chi.Router
	server   *http.Server
	addr     string
	logger   zerolog.Logger
	store    store.Store
	searcher *insight.Searcher
	stats    *insight.StatsEngine
}

// NewServer creates a new HTTP server backed by st. statsOpts configure the
// statistics engine (tests pin its clock).
func NewServer(
	cfg model.ServerConfig,
	st store.Store,
	logger zerolog.Logger,
	statsOpts ...insight.StatsOption,
) *Server {
	s := &Server{
		addr:     cfg.Addr,
		logger:   logger,
		store:    st,
		searcher: insight.NewSearcher(st),
		stats:    insight.NewStatsEngine(st, statsOpts...),
		router:   chi.NewRouter(),
	}

	s.applyMiddleware()
	s.registerRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.addr).Msg("starting HTTP server")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info().Msg("server shut down successfully")
	return nil
}

// ServeHTTP implements http.Handler for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
