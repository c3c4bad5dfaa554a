package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
)

// taskSelect reads tasks (alias t) with the owning project's name and color.
const taskSelect = `
	SELECT t.*, p.name AS project_name, p.color AS project_color
	FROM tasks t
	LEFT JOIN projects p ON t.project_id = p.id`

// CreateTask inserts a new task. Status defaults to todo and priority to low.
func (s *SQLiteStore) CreateTask(ctx context.Context, task model.Task) (*model.Task, error) {
	if strings.TrimSpace(task.Title) == "" {
		return nil, invalid("Task title is required")
	}
	if task.Status == "" {
		task.Status = model.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = model.PriorityLow
	}
	task.DueDate = optionalText(task.DueDate)
	task.ProjectID = optionalRef(task.ProjectID)
	if err := validateTask(task); err != nil {
		return nil, err
	}
	if err := s.requireProject(ctx, task.ProjectID); err != nil {
		return nil, err
	}

	task.ID = uuid.New().String()
	now := s.now()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (
			id, title, status, priority, due_date, project_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Status, task.Priority, task.DueDate, task.ProjectID,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return s.GetTaskByID(ctx, task.ID)
}

// UpdateTask applies a partial update. An empty project_id unassigns the
// task; an empty due_date clears it.
func (s *SQLiteStore) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (*model.Task, error) {
	task, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = optionalText(patch.DueDate)
	}
	if patch.ProjectID != nil {
		task.ProjectID = optionalRef(patch.ProjectID)
		if err := s.requireProject(ctx, task.ProjectID); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(task.Title) == "" {
		return nil, invalid("Task title is required")
	}
	if err := validateTask(*task); err != nil {
		return nil, err
	}
	task.UpdatedAt = s.now()

	result, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET
			title = ?, status = ?, priority = ?, due_date = ?, project_id = ?, updated_at = ?
		WHERE id = ?`,
		task.Title, task.Status, task.Priority, task.DueDate, task.ProjectID, task.UpdatedAt,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating task %s: %w", id, err)
	}
	if err := checkAffected(result, "task", id); err != nil {
		return nil, err
	}
	return s.GetTaskByID(ctx, id)
}

// DeleteTask removes a task by ID.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	return checkAffected(result, "task", id)
}

// GetTaskByID retrieves a single task with its project name and color.
func (s *SQLiteStore) GetTaskByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	if err := s.db.GetContext(ctx, &task, taskSelect+" WHERE t.id = ?", id); err != nil {
		return nil, notFound(err, "task", id)
	}
	return &task, nil
}

// GetTasks lists tasks matching the scope predicate, newest first.
func (s *SQLiteStore) GetTasks(ctx context.Context, p scope.Predicate) ([]model.Task, error) {
	var c conditions
	c.scoped(p)

	tasks := make([]model.Task, 0)
	query := taskSelect + c.where() + " ORDER BY t.created_at DESC"
	if err := s.db.SelectContext(ctx, &tasks, query, c.args...); err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	return tasks, nil
}

func validateTask(task model.Task) error {
	if !model.ValidTaskStatus(task.Status) {
		return invalid(fmt.Sprintf("Invalid task status %q", task.Status))
	}
	if !model.ValidPriority(task.Priority) {
		return invalid(fmt.Sprintf("Invalid task priority %q", task.Priority))
	}
	if task.DueDate != nil {
		if _, err := time.Parse(model.DueDateLayout, *task.DueDate); err != nil {
			return invalid("Invalid due_date, expected YYYY-MM-DD")
		}
	}
	return nil
}
