package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

// CreateProject inserts a new project and returns the stored row.
func (s *SQLiteStore) CreateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	if strings.TrimSpace(project.Name) == "" {
		return nil, invalid("Project name is required")
	}
	if project.Color == "" {
		project.Color = model.DefaultProjectColor
	}
	if project.Status == "" {
		project.Status = model.ProjectStatusActive
	}
	if !model.ValidProjectStatus(project.Status) {
		return nil, invalid(fmt.Sprintf("Invalid project status %q", project.Status))
	}
	project.ID = uuid.New().String()
	project.Description = optionalText(project.Description)
	now := s.now()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, description, color, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		project.ID, project.Name, project.Description, project.Color, project.Status,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return s.GetProjectByID(ctx, project.ID)
}

// UpdateProject applies a partial update to an existing project.
func (s *SQLiteStore) UpdateProject(
	ctx context.Context,
	id string,
	patch model.ProjectPatch,
) (*model.Project, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, invalid("Project name is required")
		}
		project.Name = *patch.Name
	}
	if patch.Description != nil {
		project.Description = optionalText(patch.Description)
	}
	if patch.Color != nil && *patch.Color != "" {
		project.Color = *patch.Color
	}
	if patch.Status != nil {
		if !model.ValidProjectStatus(*patch.Status) {
			return nil, invalid(fmt.Sprintf("Invalid project status %q", *patch.Status))
		}
		project.Status = *patch.Status
	}
	project.UpdatedAt = s.now()

	result, err := s.db.ExecContext(ctx, `
		UPDATE projects SET
			name = ?, description = ?, color = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		project.Name, project.Description, project.Color, project.Status, project.UpdatedAt,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating project %s: %w", id, err)
	}
	if err := checkAffected(result, "project", id); err != nil {
		return nil, err
	}
	return s.GetProjectByID(ctx, id)
}

// DeleteProject removes a project. Its tasks, ideas, notes and resources
// are removed with it.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	return checkAffected(result, "project", id)
}

// GetProjectByID retrieves a single project by ID.
func (s *SQLiteStore) GetProjectByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := s.db.GetContext(ctx, &project, "SELECT * FROM projects WHERE id = ?", id)
	if err != nil {
		return nil, notFound(err, "project", id)
	}
	return &project, nil
}

// GetProjectDetail retrieves a project together with its tasks.
func (s *SQLiteStore) GetProjectDetail(ctx context.Context, id string) (*model.ProjectDetail, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tasks, err := s.GetTasks(ctx, scope.ForTasks(scope.Resolve(id)))
	if err != nil {
		return nil, err
	}
	return &model.ProjectDetail{Project: *project, Tasks: tasks}, nil
}

// GetProjects retrieves all projects, newest first.
func (s *SQLiteStore) GetProjects(ctx context.Context) ([]model.Project, error) {
	projects := make([]model.Project, 0)
	err := s.db.SelectContext(ctx, &projects, "SELECT * FROM projects ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	return projects, nil
}
