package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

// GET /tasks?project_id=<optional>
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	sc := scope.Resolve(r.URL.Query().Get("project_id"))

	tasks, err := s.store.GetTasks(r.Context(), scope.ForTasks(sc))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to fetch tasks")
		return
	}
	WriteJSON(w, http.StatusOK, tasks)
}

// POST /tasks
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req model.Task
	if !decodeBody(w, r, &req) {
		return
	}

	task, err := s.store.CreateTask(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err, "Task not found", "Failed to create task")
		return
	}
	WriteJSON(w, http.StatusCreated, task)
}

// GET /tasks/{id}
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.store.GetTaskByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err, "Task not found", "Failed to fetch task")
		return
	}
	WriteJSON(w, http.StatusOK, task)
}

// PUT /tasks/{id}
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var patch model.TaskPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	task, err := s.store.UpdateTask(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, r, err, "Task not found", "Failed to update task")
		return
	}
	WriteJSON(w, http.StatusOK, task)
}

// DELETE /tasks/{id}
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err, "Task not found", "Failed to delete task")
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}
