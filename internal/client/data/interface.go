package data

import (
	"context"

	"github.com/iudanet/taskmanager/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service is the task API of the current session
type Service interface {
	Add(ctx context.Context, title, description string) (*api.TaskResponse, error)
	List(ctx context.Context) ([]api.TaskResponse, error)
	Get(ctx context.Context, id string) (*api.TaskResponse, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*api.TaskResponse, error)
	Edit(ctx context.Context, id string, edit Edit) (*api.TaskResponse, error)
	Delete(ctx context.Context, id string) error
}
