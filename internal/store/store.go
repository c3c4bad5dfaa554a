package store

import (
	"context"
	"time"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

// TaskRollup is the single-pass breakdown of a task population.
type TaskRollup struct {
	Total      int `db:"total"`
	Todo       int `db:"todo"`
	InProgress int `db:"in_progress"`
	Done       int `db:"done"`
	Low        int `db:"low"`
	Medium     int `db:"medium"`
	High       int `db:"high"`
	Overdue    int `db:"overdue"`
}

// TaskActivity counts task activity since a window start.
type TaskActivity struct {
	// Created counts tasks created at or after the window start.
	Created int `db:"created"`
	// Updated counts tasks updated inside the window that were created before it.
	Updated int `db:"updated"`
}

// SearchReader is the per-entity substring search surface. term is the
// trimmed user query; matching is case-insensitive and unanchored.
type SearchReader interface {
	SearchTasks(ctx context.Context, term string, p scope.Predicate) ([]model.Task, error)
	SearchIdeas(ctx context.Context, term string, p scope.Predicate) ([]model.Idea, error)
	SearchNotes(ctx context.Context, term string, p scope.Predicate) ([]model.Note, error)
	SearchResources(ctx context.Context, term string, p scope.Predicate) ([]model.Resource, error)
	SearchProjects(ctx context.Context, term string, p scope.Predicate) ([]model.Project, error)
}

// StatsReader is the aggregate read surface behind the dashboard.
type StatsReader interface {
	CountProjects(ctx context.Context, p scope.Predicate) (int, error)
	RollupTasks(ctx context.Context, p scope.Predicate, today time.Time) (TaskRollup, error)
	CountIdeas(ctx context.Context, p scope.Predicate) (int, error)
	CountNotes(ctx context.Context, p scope.Predicate) (int, error)
	CountResources(ctx context.Context, p scope.Predicate) (int, error)
	TaskActivitySince(ctx context.Context, p scope.Predicate, since time.Time) (TaskActivity, error)
	ProjectStatusBreakdown(ctx context.Context) ([]model.ProjectStatusCount, error)
}

// Store defines the persistence interface for projects and the tasks,
// ideas, notes and resources they own.
type Store interface {
	SearchReader
	StatsReader

	Ping(ctx context.Context) error

	// === Project CRUD ===

	CreateProject(ctx context.Context, project model.Project) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) error
	GetProjectByID(ctx context.Context, id string) (*model.Project, error)
	GetProjectDetail(ctx context.Context, id string) (*model.ProjectDetail, error)
	GetProjects(ctx context.Context) ([]model.Project, error)
	ProjectExists(ctx context.Context, id string) (bool, error)

	// === Task CRUD ===

	CreateTask(ctx context.Context, task model.Task) (*model.Task, error)
	UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (*model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	GetTaskByID(ctx context.Context, id string) (*model.Task, error)
	GetTasks(ctx context.Context, p scope.Predicate) ([]model.Task, error)

	// === Idea CRUD ===

	CreateIdea(ctx context.Context, idea model.Idea) (*model.Idea, error)
	UpdateIdea(ctx context.Context, id string, patch model.IdeaPatch) (*model.Idea, error)
	DeleteIdea(ctx context.Context, id string) error
	GetIdeaByID(ctx context.Context, id string) (*model.Idea, error)
	GetIdeas(ctx context.Context, p scope.Predicate) ([]model.Idea, error)

	// === Note CRUD ===

	CreateNote(ctx context.Context, note model.Note) (*model.Note, error)
	UpdateNote(ctx context.Context, id string, patch model.NotePatch) (*model.Note, error)
	DeleteNote(ctx context.Context, id string) error
	GetNoteByID(ctx context.Context, id string) (*model.Note, error)
	GetNotes(ctx context.Context, p scope.Predicate) ([]model.Note, error)

	// === Resource CRUD ===

	CreateResource(ctx context.Context, res model.Resource) (*model.Resource, error)
	UpdateResource(ctx context.Context, id string, patch model.ResourcePatch) (*model.Resource, error)
	DeleteResource(ctx context.Context, id string) error
	GetResourceByID(ctx context.Context, id string) (*model.Resource, error)
	GetResources(ctx context.Context, p scope.Predicate) ([]model.Resource, error)
}
