package model

import "time"

// Task status constants.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Task priority constants.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DueDateLayout is the calendar-date format of Task.DueDate.
const DueDateLayout = "2006-01-02"

// Task is a unit of work. ProjectID is a weak reference: unassigned tasks
// have no project.
type Task struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Status    string    `json:"status" db:"status"`
	Priority  string    `json:"priority" db:"priority"`
	DueDate   *string   `json:"due_date" db:"due_date"`
	ProjectID *string   `json:"project_id" db:"project_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Populated by reads that join the owning project.
	ProjectName  *string `json:"project_name,omitempty" db:"project_name"`
	ProjectColor *string `json:"project_color,omitempty" db:"project_color"`
}

// TaskPatch carries a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title     *string `json:"title"`
	Status    *string `json:"status"`
	Priority  *string `json:"priority"`
	DueDate   *string `json:"due_date"`
	ProjectID *string `json:"project_id"`
}

// ValidTaskStatus reports whether s is one of the task status constants.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the priority constants.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
