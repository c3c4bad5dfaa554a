package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/nhle/projecthub/internal/insight"
	"github.com/nhle/projecthub/internal/scope"
)

// healthTimeout bounds the store ping behind /healthz.
const healthTimeout = 2 * time.Second

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("health check failed")
		WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// GET /search?q=<text>&project_id=<optional>
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sc := scope.Resolve(q.Get("project_id"))

	resp, err := s.searcher.Search(r.Context(), q.Get("q"), sc)
	if err != nil {
		var verr *insight.ValidationError
		if errors.As(err, &verr) {
			WriteError(w, http.StatusBadRequest, verr.Message)
			return
		}
		hlog.FromRequest(r).Error().Err(err).Msg("search failed")
		WriteError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

// GET /stats?project_id=<optional>
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sc := scope.Resolve(r.URL.Query().Get("project_id"))

	summary, err := s.stats.Compute(r.Context(), sc)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("computing statistics failed")
		WriteError(w, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	WriteJSON(w, http.StatusOK, summary)
}
