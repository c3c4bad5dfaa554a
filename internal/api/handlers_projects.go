package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhle/projecthub/internal/model"
)

// GET /projects
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.GetProjects(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to fetch projects")
		return
	}
	WriteJSON(w, http.StatusOK, projects)
}

// POST /projects
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req model.Project
	if !decodeBody(w, r, &req) {
		return
	}

	project, err := s.store.CreateProject(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err, "Project not found", "Failed to create project")
		return
	}
	WriteJSON(w, http.StatusCreated, project)
}

// GET /projects/{id} returns the project with its tasks.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	detail, err := s.store.GetProjectDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err, "Project not found", "Failed to fetch project")
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}

// PUT /projects/{id}
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var patch model.ProjectPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	project, err := s.store.UpdateProject(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, r, err, "Project not found", "Failed to update project")
		return
	}
	WriteJSON(w, http.StatusOK, project)
}

// DELETE /projects/{id}
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err, "Project not found", "Failed to delete project")
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Project deleted successfully"})
}
