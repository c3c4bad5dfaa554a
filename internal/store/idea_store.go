package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

const ideaSelect = `
	SELECT i.*, p.name AS project_name, p.color AS project_color
	FROM ideas i
	LEFT JOIN projects p ON i.project_id = p.id`

// CreateIdea captures a new idea. Content is stored trimmed.
func (s *SQLiteStore) CreateIdea(ctx context.Context, idea model.Idea) (*model.Idea, error) {
	idea.Content = strings.TrimSpace(idea.Content)
	if idea.Content == "" {
		return nil, invalid("Idea content is required")
	}
	idea.ProjectID = optionalRef(idea.ProjectID)
	if err := s.requireProject(ctx, idea.ProjectID); err != nil {
		return nil, err
	}

	idea.ID = uuid.New().String()
	now := s.now()
	idea.CreatedAt = now
	idea.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ideas (id, content, project_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		idea.ID, idea.Content, idea.ProjectID, idea.CreatedAt, idea.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating idea: %w", err)
	}
	return s.GetIdeaByID(ctx, idea.ID)
}

// UpdateIdea applies a partial update to an idea.
func (s *SQLiteStore) UpdateIdea(ctx context.Context, id string, patch model.IdeaPatch) (*model.Idea, error) {
	idea, err := s.GetIdeaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Content != nil {
		idea.Content = strings.TrimSpace(*patch.Content)
		if idea.Content == "" {
			return nil, invalid("Idea content is required")
		}
	}
	if patch.ProjectID != nil {
		idea.ProjectID = optionalRef(patch.ProjectID)
		if err := s.requireProject(ctx, idea.ProjectID); err != nil {
			return nil, err
		}
	}
	idea.UpdatedAt = s.now()

	result, err := s.db.ExecContext(ctx,
		"UPDATE ideas SET content = ?, project_id = ?, updated_at = ? WHERE id = ?",
		idea.Content, idea.ProjectID, idea.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating idea %s: %w", id, err)
	}
	if err := checkAffected(result, "idea", id); err != nil {
		return nil, err
	}
	return s.GetIdeaByID(ctx, id)
}

// DeleteIdea removes an idea by ID.
func (s *SQLiteStore) DeleteIdea(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM ideas WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting idea %s: %w", id, err)
	}
	return checkAffected(result, "idea", id)
}

// GetIdeaByID retrieves a single idea.
func (s *SQLiteStore) GetIdeaByID(ctx context.Context, id string) (*model.Idea, error) {
	var idea model.Idea
	if err := s.db.GetContext(ctx, &idea, ideaSelect+" WHERE i.id = ?", id); err != nil {
		return nil, notFound(err, "idea", id)
	}
	return &idea, nil
}

// GetIdeas lists ideas matching the scope predicate, newest first.
func (s *SQLiteStore) GetIdeas(ctx context.Context, p scope.Predicate) ([]model.Idea, error) {
	var c conditions
	c.scoped(p)

	ideas := make([]model.Idea, 0)
	query := ideaSelect + c.where() + " ORDER BY i.created_at DESC"
	if err := s.db.SelectContext(ctx, &ideas, query, c.args...); err != nil {
		return nil, fmt.Errorf("querying ideas: %w", err)
	}
	return ideas, nil
}
