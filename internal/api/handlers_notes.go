package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

// GET /notes?project_id=<required>
func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("project_id")
	if projectID == "" {
		WriteError(w, http.StatusBadRequest, "Project ID is required")
		return
	}

	notes, err := s.store.GetNotes(r.Context(), scope.ForNotes(scope.Resolve(projectID)))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to fetch notes")
		return
	}
	WriteJSON(w, http.StatusOK, notes)
}

// POST /notes
func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req model.Note
	if !decodeBody(w, r, &req) {
		return
	}

	note, err := s.store.CreateNote(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err, "Note not found", "Failed to create note")
		return
	}
	WriteJSON(w, http.StatusCreated, note)
}

// GET /notes/{id}
func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	note, err := s.store.GetNoteByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err, "Note not found", "Failed to fetch note")
		return
	}
	WriteJSON(w, http.StatusOK, note)
}

// PUT /notes/{id}
func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var patch model.NotePatch
	if !decodeBody(w, r, &patch) {
		return
	}

	note, err := s.store.UpdateNote(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, r, err, "Note not found", "Failed to update note")
		return
	}
	WriteJSON(w, http.StatusOK, note)
}

// DELETE /notes/{id}
func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err, "Note not found", "Failed to delete note")
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Note deleted successfully"})
}
