package model

import "time"

// DefaultResourceType is used when a resource is created without a type tag.
const DefaultResourceType = "link"

// Resource is a named link (documentation, design file, repository...)
// attached to a project.
type Resource struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	URL         string    `json:"url" db:"url"`
	Type        string    `json:"type" db:"type"`
	Description *string   `json:"description" db:"description"`
	ProjectID   string    `json:"project_id" db:"project_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	ProjectName *string `json:"project_name,omitempty" db:"project_name"`
}

// ResourcePatch carries a partial resource update.
type ResourcePatch struct {
	Name        *string `json:"name"`
	URL         *string `json:"url"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
}
