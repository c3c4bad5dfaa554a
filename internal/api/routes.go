package api

import "github.com/go-chi/chi/v5"

// registerRoutes registers all API routes.
func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	// Derived views
	s.router.Get("/search", s.handleSearch)
	s.router.Get("/stats", s.handleStats)

	s.router.Route("/projects", func(r chi.Router) {
		r.Get("/", s.handleListProjects)
		r.With(requireJSON).Post("/", s.handleCreateProject)
		r.Get("/{id}", s.handleGetProject)
		r.With(requireJSON).Put("/{id}", s.handleUpdateProject)
		r.Delete("/{id}", s.handleDeleteProject)
	})

	s.router.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.handleListTasks)
		r.With(requireJSON).Post("/", s.handleCreateTask)
		r.Get("/{id}", s.handleGetTask)
		r.With(requireJSON).Put("/{id}", s.handleUpdateTask)
		r.Delete("/{id}", s.handleDeleteTask)
	})

	s.router.Route("/ideas", func(r chi.Router) {
		r.Get("/", s.handleListIdeas)
		r.With(requireJSON).Post("/", s.handleCreateIdea)
		r.Get("/{id}", s.handleGetIdea)
		r.With(requireJSON).Put("/{id}", s.handleUpdateIdea)
		r.Delete("/{id}", s.handleDeleteIdea)
	})

	s.router.Route("/notes", func(r chi.Router) {
		r.Get("/", s.handleListNotes)
		r.With(requireJSON).Post("/", s.handleCreateNote)
		r.Get("/{id}", s.handleGetNote)
		r.With(requireJSON).Put("/{id}", s.handleUpdateNote)
		r.Delete("/{id}", s.handleDeleteNote)
	})

	s.router.Route("/resources", func(r chi.Router) {
		r.Get("/", s.handleListResources)
		r.With(requireJSON).Post("/", s.handleCreateResource)
		r.Get("/{id}", s.handleGetResource)
		r.With(requireJSON).Put("/{id}", s.handleUpdateResource)
		r.Delete("/{id}", s.handleDeleteResource)
	})
}
