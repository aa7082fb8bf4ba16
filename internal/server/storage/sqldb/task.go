package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/storage"
)

const taskColumns = `id, owner_id, title, description, completed, created_at, updated_at`

// ownedTask is the only predicate used to address a single task.
func ownedTask(ownerID, taskID string) (string, []any) {
	return `id = ? AND owner_id = ?`, []any{taskID, ownerID}
}

// CreateTask stores a new task
func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, owner_id, title, description, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.exec(ctx, query,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		boolToInt(task.Completed),
		toUnixNano(task.CreatedAt),
		toUnixNano(task.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// ListTasks returns owner's tasks, newest first
func (s *Storage) ListTasks(ctx context.Context, ownerID string) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := s.query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}

// GetTask retrieves a task by id within owner's tasks
func (s *Storage) GetTask(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	where, args := ownedTask(ownerID, taskID)

	task, err := scanTask(s.queryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE `+where, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// UpdateTask overwrites mutable task fields
func (s *Storage) UpdateTask(ctx context.Context, task *models.Task) error {
	where, args := ownedTask(task.OwnerID, task.ID)

	query := `UPDATE tasks SET title = ?, description = ?, completed = ?, updated_at = ? WHERE ` + where
	args = append([]any{
		task.Title,
		task.Description,
		boolToInt(task.Completed),
		toUnixNano(task.UpdatedAt),
	}, args...)

	result, err := s.exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	ok, err := affectedOne(result)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrTaskNotFound
	}

	return nil
}

// DeleteTask removes a task
func (s *Storage) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	where, args := ownedTask(ownerID, taskID)

	result, err := s.exec(ctx, `DELETE FROM tasks WHERE `+where, args...)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	ok, err := affectedOne(result)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrTaskNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var completed int
	var createdAt, updatedAt int64

	err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&completed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}

	task.Completed = completed != 0
	task.CreatedAt = fromUnixNano(createdAt)
	task.UpdatedAt = fromUnixNano(updatedAt)

	return task, nil
}
