package model

import "time"

// Project status constants.
const (
	ProjectStatusActive    = "active"
	ProjectStatusArchived  = "archived"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on_hold"
)

// DefaultProjectColor is assigned when a project is created without a color.
const DefaultProjectColor = "#6366f1"

// Project is the root container; deleting it removes every task, idea,
// note and resource that references it.
type Project struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Color       string    `json:"color" db:"color"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProjectDetail is a project together with its tasks, newest first.
type ProjectDetail struct {
	Project
	Tasks []Task `json:"tasks"`
}

// ProjectPatch carries a partial project update. Nil fields are left unchanged.
type ProjectPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Status      *string `json:"status"`
}

// ValidProjectStatus reports whether s is a known project lifecycle state.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusActive, ProjectStatusArchived, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}
