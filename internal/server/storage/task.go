package storage

import (
	"context"

	"github.com/iudanet/taskmanager/internal/models"
)

// TaskStorage defines interface for task persistence.
// Every method that addresses a single task takes the owner id and matches
// on the (id, owner) pair; a task of another owner is reported as ErrTaskNotFound.
type TaskStorage interface {
	// CreateTask stores a new task
	CreateTask(ctx context.Context, task *models.Task) error

	// ListTasks returns owner's tasks, newest first
	// Returns empty slice if no tasks found
	ListTasks(ctx context.Context, ownerID string) ([]*models.Task, error)

	// GetTask retrieves a single task
	GetTask(ctx context.Context, ownerID, taskID string) (*models.Task, error)

	// UpdateTask writes title, description, completed and updated_at
	UpdateTask(ctx context.Context, task *models.Task) error

	// DeleteTask removes a task
	DeleteTask(ctx context.Context, ownerID, taskID string) error
}
