// Package data выполняет операции с задачами от имени сохраненной сессии.
package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/taskmanager/internal/client/api"
	"github.com/iudanet/taskmanager/internal/client/auth"
	"github.com/iudanet/taskmanager/internal/validation"
	pkgapi "github.com/iudanet/taskmanager/pkg/api"
)

// ErrNothingToUpdate edit без изменений
var ErrNothingToUpdate = errors.New("nothing to update")

// Edit описывает изменение текста задачи; nil поля не меняются
type Edit struct {
	Title       *string
	Description *string
}

// TaskService implements Service
type TaskService struct {
	apiClient *api.Client
	sessions  auth.Service
}

var _ Service = (*TaskService)(nil)

// NewTaskService создает сервис задач
func NewTaskService(apiClient *api.Client, sessions auth.Service) *TaskService {
	return &TaskService{
		apiClient: apiClient,
		sessions:  sessions,
	}
}

// Add создает задачу
func (s *TaskService) Add(ctx context.Context, title, description string) (*pkgapi.TaskResponse, error) {
	title = validation.NormalizeText(title)
	description = validation.NormalizeText(description)

	var verrs validation.Errors
	verrs.Check("title", validation.ValidateTitle(title))
	verrs.Check("description", validation.ValidateDescription(description))
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.apiClient.CreateTask(ctx, token, pkgapi.CreateTaskRequest{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return nil, s.checkUnauthorized(ctx, err)
	}
	return task, nil
}

// List возвращает задачи, новые первыми
func (s *TaskService) List(ctx context.Context) ([]pkgapi.TaskResponse, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.apiClient.ListTasks(ctx, token)
	if err != nil {
		return nil, s.checkUnauthorized(ctx, err)
	}
	return tasks, nil
}

// Get возвращает задачу по id
func (s *TaskService) Get(ctx context.Context, id string) (*pkgapi.TaskResponse, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.apiClient.GetTask(ctx, token, id)
	if err != nil {
		return nil, s.checkUnauthorized(ctx, err)
	}
	return task, nil
}

// SetCompleted отмечает задачу выполненной или снимает отметку
func (s *TaskService) SetCompleted(ctx context.Context, id string, completed bool) (*pkgapi.TaskResponse, error) {
	return s.update(ctx, id, pkgapi.UpdateTaskRequest{Completed: &completed})
}

// Edit меняет заголовок и/или описание
func (s *TaskService) Edit(ctx context.Context, id string, edit Edit) (*pkgapi.TaskResponse, error) {
	if edit.Title == nil && edit.Description == nil {
		return nil, ErrNothingToUpdate
	}

	var req pkgapi.UpdateTaskRequest
	var verrs validation.Errors
	if edit.Title != nil {
		title := validation.NormalizeText(*edit.Title)
		verrs.Check("title", validation.ValidateTitle(title))
		req.Title = &title
	}
	if edit.Description != nil {
		description := validation.NormalizeText(*edit.Description)
		verrs.Check("description", validation.ValidateDescription(description))
		req.Description = &description
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	return s.update(ctx, id, req)
}

func (s *TaskService) update(ctx context.Context, id string, req pkgapi.UpdateTaskRequest) (*pkgapi.TaskResponse, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.apiClient.UpdateTask(ctx, token, id, req)
	if err != nil {
		return nil, s.checkUnauthorized(ctx, err)
	}
	return task, nil
}

// Delete удаляет задачу
func (s *TaskService) Delete(ctx context.Context, id string) error {
	token, err := s.token(ctx)
	if err != nil {
		return err
	}

	if err := s.apiClient.DeleteTask(ctx, token, id); err != nil {
		return s.checkUnauthorized(ctx, err)
	}
	return nil
}

func (s *TaskService) token(ctx context.Context) (string, error) {
	sess, err := s.sessions.Session(ctx)
	if err != nil {
		return "", err
	}
	return sess.Token, nil
}

// checkUnauthorized: 401 на операциях с задачами означает, что токен больше не действует
func (s *TaskService) checkUnauthorized(ctx context.Context, err error) error {
	if !api.IsUnauthorized(err) {
		return err
	}
	if invErr := s.sessions.Invalidate(ctx); invErr != nil {
		return fmt.Errorf("%w (failed to clear session: %v)", auth.ErrSessionExpired, invErr)
	}
	return auth.ErrSessionExpired
}
