package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

const taskRollupQuery = `
	SELECT
		COUNT(*) AS total,
		COUNT(CASE WHEN t.status = 'todo' THEN 1 END) AS todo,
		COUNT(CASE WHEN t.status = 'in_progress' THEN 1 END) AS in_progress,
		COUNT(CASE WHEN t.status = 'done' THEN 1 END) AS done,
		COUNT(CASE WHEN t.priority = 'low' THEN 1 END) AS low,
		COUNT(CASE WHEN t.priority = 'medium' THEN 1 END) AS medium,
		COUNT(CASE WHEN t.priority = 'high' THEN 1 END) AS high,
		COUNT(CASE WHEN t.due_date IS NOT NULL AND t.due_date < ? AND t.status != 'done' THEN 1 END) AS overdue
	FROM tasks t`

const taskActivityQuery = `
	SELECT
		COUNT(CASE WHEN t.created_at >= ? THEN 1 END) AS created,
		COUNT(CASE WHEN t.updated_at >= ? AND t.created_at < ? THEN 1 END) AS updated
	FROM tasks t`

// CountProjects counts projects; a restricted predicate yields 1 or 0.
func (s *SQLiteStore) CountProjects(ctx context.Context, p scope.Predicate) (int, error) {
	return s.count(ctx, "projects p", p)
}

// CountIdeas counts ideas in scope.
func (s *SQLiteStore) CountIdeas(ctx context.Context, p scope.Predicate) (int, error) {
	return s.count(ctx, "ideas i", p)
}

// CountNotes counts notes in scope.
func (s *SQLiteStore) CountNotes(ctx context.Context, p scope.Predicate) (int, error) {
	return s.count(ctx, "notes n", p)
}

// CountResources counts resources in scope.
func (s *SQLiteStore) CountResources(ctx context.Context, p scope.Predicate) (int, error) {
	return s.count(ctx, "resources r", p)
}

func (s *SQLiteStore) count(ctx context.Context, from string, p scope.Predicate) (int, error) {
	var c conditions
	c.scoped(p)

	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+from+c.where(), c.args...); err != nil {
		return 0, fmt.Errorf("counting %s: %w", from, err)
	}
	return n, nil
}

// RollupTasks breaks tasks down by status and priority in one pass. A task
// is overdue when its due date is strictly before today's date and it is
// not done.
func (s *SQLiteStore) RollupTasks(ctx context.Context, p scope.Predicate, today time.Time) (TaskRollup, error) {
	var c conditions
	c.scoped(p)

	args := append([]any{today.Format(model.DueDateLayout)}, c.args...)

	var rollup TaskRollup
	if err := s.db.GetContext(ctx, &rollup, taskRollupQuery+c.where(), args...); err != nil {
		return TaskRollup{}, fmt.Errorf("rolling up tasks: %w", err)
	}
	return rollup, nil
}

// TaskActivitySince counts tasks created at or after since, and tasks
// updated at or after since that were created before it.
func (s *SQLiteStore) TaskActivitySince(
	ctx context.Context,
	p scope.Predicate,
	since time.Time,
) (TaskActivity, error) {
	var c conditions
	c.scoped(p)

	since = since.UTC()
	args := append([]any{since, since, since}, c.args...)

	var activity TaskActivity
	if err := s.db.GetContext(ctx, &activity, taskActivityQuery+c.where(), args...); err != nil {
		return TaskActivity{}, fmt.Errorf("counting task activity: %w", err)
	}
	return activity, nil
}

// ProjectStatusBreakdown counts projects per status, ordered by status.
func (s *SQLiteStore) ProjectStatusBreakdown(ctx context.Context) ([]model.ProjectStatusCount, error) {
	counts := make([]model.ProjectStatusCount, 0)
	err := s.db.SelectContext(ctx, &counts,
		"SELECT status, COUNT(*) AS count FROM projects GROUP BY status ORDER BY status")
	if err != nil {
		return nil, fmt.Errorf("querying project status breakdown: %w", err)
	}
	return counts, nil
}
