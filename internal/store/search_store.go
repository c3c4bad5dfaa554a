package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an unanchored LIKE pattern for term. SQLite LIKE
// is case-insensitive for ASCII.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// SearchTasks matches tasks on title.
func (s *SQLiteStore) SearchTasks(ctx context.Context, term string, p scope.Predicate) ([]model.Task, error) {
	var c conditions
	c.add(`t.title LIKE ? ESCAPE '\'`, containsPattern(term))
	c.scoped(p)

	tasks := make([]model.Task, 0)
	query := taskSelect + c.where() + " ORDER BY t.created_at DESC"
	if err := s.db.SelectContext(ctx, &tasks, query, c.args...); err != nil {
		return nil, fmt.Errorf("searching tasks: %w", err)
	}
	return tasks, nil
}

// SearchIdeas matches ideas on content.
func (s *SQLiteStore) SearchIdeas(ctx context.Context, term string, p scope.Predicate) ([]model.Idea, error) {
	var c conditions
	c.add(`i.content LIKE ? ESCAPE '\'`, containsPattern(term))
	c.scoped(p)

	ideas := make([]model.Idea, 0)
	query := ideaSelect + c.where() + " ORDER BY i.created_at DESC"
	if err := s.db.SelectContext(ctx, &ideas, query, c.args...); err != nil {
		return nil, fmt.Errorf("searching ideas: %w", err)
	}
	return ideas, nil
}

// SearchNotes matches notes on title or content.
func (s *SQLiteStore) SearchNotes(ctx context.Context, term string, p scope.Predicate) ([]model.Note, error) {
	pattern := containsPattern(term)
	var c conditions
	c.add(`(n.title LIKE ? ESCAPE '\' OR n.content LIKE ? ESCAPE '\')`, pattern, pattern)
	c.scoped(p)

	notes := make([]model.Note, 0)
	query := noteSelect + c.where() + " ORDER BY n.updated_at DESC"
	if err := s.db.SelectContext(ctx, &notes, query, c.args...); err != nil {
		return nil, fmt.Errorf("searching notes: %w", err)
	}
	return notes, nil
}

// SearchResources matches resources on name or description.
func (s *SQLiteStore) SearchResources(
	ctx context.Context,
	term string,
	p scope.Predicate,
) ([]model.Resource, error) {
	pattern := containsPattern(term)
	var c conditions
	c.add(`(r.name LIKE ? ESCAPE '\' OR r.description LIKE ? ESCAPE '\')`, pattern, pattern)
	c.scoped(p)

	resources := make([]model.Resource, 0)
	query := resourceSelect + c.where() + " ORDER BY r.created_at DESC"
	if err := s.db.SelectContext(ctx, &resources, query, c.args...); err != nil {
		return nil, fmt.Errorf("searching resources: %w", err)
	}
	return resources, nil
}

// SearchProjects matches projects on name or description.
func (s *SQLiteStore) SearchProjects(
	ctx context.Context,
	term string,
	p scope.Predicate,
) ([]model.Project, error) {
	pattern := containsPattern(term)
	var c conditions
	c.add(`(p.name LIKE ? ESCAPE '\' OR p.description LIKE ? ESCAPE '\')`, pattern, pattern)
	c.scoped(p)

	projects := make([]model.Project, 0)
	query := "SELECT p.* FROM projects p" + c.where() + " ORDER BY p.created_at DESC"
	if err := s.db.SelectContext(ctx, &projects, query, c.args...); err != nil {
		return nil, fmt.Errorf("searching projects: %w", err)
	}
	return projects, nil
}
