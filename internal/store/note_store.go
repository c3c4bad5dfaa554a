package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

const noteSelect = `
	SELECT n.*, p.name AS project_name
	FROM notes n
	JOIN projects p ON n.project_id = p.id`

// CreateNote inserts a note under an existing project.
func (s *SQLiteStore) CreateNote(ctx context.Context, note model.Note) (*model.Note, error) {
	if strings.TrimSpace(note.Title) == "" || strings.TrimSpace(note.Content) == "" || note.ProjectID == "" {
		return nil, invalid("Title, content, and project_id are required")
	}
	if err := s.requireProject(ctx, &note.ProjectID); err != nil {
		return nil, err
	}

	note.ID = uuid.New().String()
	now := s.now()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (id, title, content, project_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		note.ID, note.Title, note.Content, note.ProjectID, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	return s.GetNoteByID(ctx, note.ID)
}

// UpdateNote applies a partial update to a note's title or content.
func (s *SQLiteStore) UpdateNote(ctx context.Context, id string, patch model.NotePatch) (*model.Note, error) {
	note, err := s.GetNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if strings.TrimSpace(note.Title) == "" || strings.TrimSpace(note.Content) == "" {
		return nil, invalid("Title and content must not be empty")
	}
	note.UpdatedAt = s.now()

	result, err := s.db.ExecContext(ctx,
		"UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?",
		note.Title, note.Content, note.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating note %s: %w", id, err)
	}
	if err := checkAffected(result, "note", id); err != nil {
		return nil, err
	}
	return s.GetNoteByID(ctx, id)
}

// DeleteNote removes a note by ID.
func (s *SQLiteStore) DeleteNote(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting note %s: %w", id, err)
	}
	return checkAffected(result, "note", id)
}

// GetNoteByID retrieves a single note.
func (s *SQLiteStore) GetNoteByID(ctx context.Context, id string) (*model.Note, error) {
	var note model.Note
	if err := s.db.GetContext(ctx, &note, noteSelect+" WHERE n.id = ?", id); err != nil {
		return nil, notFound(err, "note", id)
	}
	return &note, nil
}

// GetNotes lists notes matching the scope predicate, most recently updated first.
func (s *SQLiteStore) GetNotes(ctx context.Context, p scope.Predicate) ([]model.Note, error) {
	var c conditions
	c.scoped(p)

	notes := make([]model.Note, 0)
	query := noteSelect + c.where() + " ORDER BY n.updated_at DESC"
	if err := s.db.SelectContext(ctx, &notes, query, c.args...); err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	return notes, nil
}
