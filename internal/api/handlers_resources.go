package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

// GET /resources?project_id=<required>
func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("project_id")
	if projectID == "" {
		WriteError(w, http.StatusBadRequest, "Project ID is required")
		return
	}

	resources, err := s.store.GetResources(r.Context(), scope.ForResources(scope.Resolve(projectID)))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to fetch resources")
		return
	}
	WriteJSON(w, http.StatusOK, resources)
}

// POST /resources
func (s *Server) handleCreateResource(w http.ResponseWriter, r *http.Request) {
	var req model.Resource
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := s.store.CreateResource(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err, "Resource not found", "Failed to create resource")
		return
	}
	WriteJSON(w, http.StatusCreated, res)
}

// GET /resources/{id}
func (s *Server) handleGetResource(w http.ResponseWriter, r *http.Request) {
	res, err := s.store.GetResourceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err, "Resource not found", "Failed to fetch resource")
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// PUT /resources/{id}
func (s *Server) handleUpdateResource(w http.ResponseWriter, r *http.Request) {
	var patch model.ResourcePatch
	if !decodeBody(w, r, &patch) {
		return
	}

	res, err := s.store.UpdateResource(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, r, err, "Resource not found", "Failed to update resource")
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// DELETE /resources/{id}
func (s *Server) handleDeleteResource(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteResource(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err, "Resource not found", "Failed to delete resource")
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Resource deleted successfully"})
}
