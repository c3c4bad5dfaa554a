package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

// GET /ideas?project_id=<optional>
func (s *Server) handleListIdeas(w http.ResponseWriter, r *http.Request) {
	sc := scope.Resolve(r.URL.Query().Get("project_id"))

	ideas, err := s.store.GetIdeas(r.Context(), scope.ForIdeas(sc))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to fetch ideas")
		return
	}
	WriteJSON(w, http.StatusOK, ideas)
}

// POST /ideas
func (s *Server) handleCreateIdea(w http.ResponseWriter, r *http.Request) {
	var req model.Idea
	if !decodeBody(w, r, &req) {
		return
	}

	idea, err := s.store.CreateIdea(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err, "Idea not found", "Failed to create idea")
		return
	}
	WriteJSON(w, http.StatusCreated, idea)
}

// GET /ideas/{id}
func (s *Server) handleGetIdea(w http.ResponseWriter, r *http.Request) {
	idea, err := s.store.GetIdeaByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err, "Idea not found", "Failed to fetch idea")
		return
	}
	WriteJSON(w, http.StatusOK, idea)
}

// PUT /ideas/{id}
func (s *Server) handleUpdateIdea(w http.ResponseWriter, r *http.Request) {
	var patch model.IdeaPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	idea, err := s.store.UpdateIdea(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, r, err, "Idea not found", "Failed to update idea")
		return
	}
	WriteJSON(w, http.StatusOK, idea)
}

// DELETE /ideas/{id}
func (s *Server) handleDeleteIdea(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteIdea(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err, "Idea not found", "Failed to delete idea")
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Idea deleted successfully"})
}
