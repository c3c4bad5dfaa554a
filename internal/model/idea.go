package model

import "time"

// Idea is a quick-capture thought, optionally filed under a project.
type Idea struct {
	ID        string    `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	ProjectID *string   `json:"project_id" db:"project_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	ProjectName  *string `json:"project_name,omitempty" db:"project_name"`
	ProjectColor *string `json:"project_color,omitempty" db:"project_color"`
}

// IdeaPatch carries a partial idea update.
type IdeaPatch struct {
	Content   *string `json:"content"`
	ProjectID *string `json:"project_id"`
}
