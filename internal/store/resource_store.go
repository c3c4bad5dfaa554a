package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

const resourceSelect = `
	SELECT r.*, p.name AS project_name
	FROM resources r
	JOIN projects p ON r.project_id = p.id`

// CreateResource inserts a resource under an existing project.
// Type defaults to "link".
func (s *SQLiteStore) CreateResource(ctx context.Context, res model.Resource) (*model.Resource, error) {
	if strings.TrimSpace(res.Name) == "" || strings.TrimSpace(res.URL) == "" || res.ProjectID == "" {
		return nil, invalid("Name, URL, and project_id are required")
	}
	if err := s.requireProject(ctx, &res.ProjectID); err != nil {
		return nil, err
	}
	if res.Type == "" {
		res.Type = model.DefaultResourceType
	}
	res.Description = optionalText(res.Description)

	res.ID = uuid.New().String()
	now := s.now()
	res.CreatedAt = now
	res.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resources (id, name, url, type, description, project_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.Name, res.URL, res.Type, res.Description, res.ProjectID,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return s.GetResourceByID(ctx, res.ID)
}

// UpdateResource applies a partial update to a resource.
func (s *SQLiteStore) UpdateResource(
	ctx context.Context,
	id string,
	patch model.ResourcePatch,
) (*model.Resource, error) {
	res, err := s.GetResourceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		res.Name = *patch.Name
	}
	if patch.URL != nil {
		res.URL = *patch.URL
	}
	if patch.Type != nil && *patch.Type != "" {
		res.Type = *patch.Type
	}
	if patch.Description != nil {
		res.Description = optionalText(patch.Description)
	}
	if strings.TrimSpace(res.Name) == "" || strings.TrimSpace(res.URL) == "" {
		return nil, invalid("Name and URL must not be empty")
	}
	res.UpdatedAt = s.now()

	result, err := s.db.ExecContext(ctx, `
		UPDATE resources SET
			name = ?, url = ?, type = ?, description = ?, updated_at = ?
		WHERE id = ?`,
		res.Name, res.URL, res.Type, res.Description, res.UpdatedAt,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating resource %s: %w", id, err)
	}
	if err := checkAffected(result, "resource", id); err != nil {
		return nil, err
	}
	return s.GetResourceByID(ctx, id)
}

// DeleteResource removes a resource by ID.
func (s *SQLiteStore) DeleteResource(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM resources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting resource %s: %w", id, err)
	}
	return checkAffected(result, "resource", id)
}

// GetResourceByID retrieves a single resource.
func (s *SQLiteStore) GetResourceByID(ctx context.Context, id string) (*model.Resource, error) {
	var res model.Resource
	if err := s.db.GetContext(ctx, &res, resourceSelect+" WHERE r.id = ?", id); err != nil {
		return nil, notFound(err, "resource", id)
	}
	return &res, nil
}

// GetResources lists resources matching the scope predicate, grouped by type.
func (s *SQLiteStore) GetResources(ctx context.Context, p scope.Predicate) ([]model.Resource, error) {
	var c conditions
	c.scoped(p)

	resources := make([]model.Resource, 0)
	query := resourceSelect + c.where() + " ORDER BY r.type, r.created_at DESC"
	if err := s.db.SelectContext(ctx, &resources, query, c.args...); err != nil {
		return nil, fmt.Errorf("querying resources: %w", err)
	}
	return resources, nil
}
