package model

import "time"

// Note is a titled document that always belongs to a project.
type Note struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ProjectID string    `json:"project_id" db:"project_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	ProjectName *string `json:"project_name,omitempty" db:"project_name"`
}

// NotePatch carries a partial note update. A note cannot move between projects.
type NotePatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
