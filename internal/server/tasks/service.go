// Package tasks implements task operations scoped to the authenticated owner.
// The owner id is always taken from the request context, never from input.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/requestctx"
	"github.com/iudanet/taskmanager/internal/server/storage"
	"github.com/iudanet/taskmanager/internal/validation"
)

var (
	// ErrNotFound is returned for a missing, malformed or foreign task id alike
	ErrNotFound = errors.New("task not found")

	// ErrNoIdentity is returned when the context carries no authenticated user
	ErrNoIdentity = errors.New("no authenticated user in context")
)

// Service implements owner-scoped task CRUD
type Service struct {
	store  storage.TaskStorage
	logger *slog.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewService создает сервис задач
func NewService(store storage.TaskStorage, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		tracer: otel.Tracer("github.com/iudanet/taskmanager/internal/server/tasks"),
		now:    time.Now,
	}
}

// CreateInput is the new task form
type CreateInput struct {
	Title       string
	Description string
}

// Create stores a new task owned by the caller
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.Create")
	defer span.End()

	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	title := validation.NormalizeText(in.Title)
	description := validation.NormalizeText(in.Description)

	var errs validation.Errors
	errs.Check("title", validation.ValidateTitle(title))
	errs.Check("description", validation.ValidateDescription(description))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	task := &models.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, fail(span, fmt.Errorf("create task: %w", err))
	}

	span.SetAttributes(attribute.String("task.id", task.ID))
	s.logger.DebugContext(ctx, "Task created", slog.String("task_id", task.ID), slog.String("user_id", ownerID))

	return task, nil
}

// List returns the caller's tasks, newest first
func (s *Service) List(ctx context.Context) ([]*models.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.List")
	defer span.End()

	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.ListTasks(ctx, ownerID)
	if err != nil {
		return nil, fail(span, fmt.Errorf("list tasks: %w", err))
	}

	span.SetAttributes(attribute.Int("task.count", len(tasks)))
	return tasks, nil
}

// Get returns one of the caller's tasks
func (s *Service) Get(ctx context.Context, id string) (*models.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.Get")
	defer span.End()

	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrNotFound
	}

	task, err := s.store.GetTask(ctx, ownerID, id)
	if err != nil {
		return nil, s.mapStoreErr(span, "get task", err)
	}

	return task, nil
}

// Update applies a partial update to one of the caller's tasks.
// Concurrent updates of the same task are last-write-wins.
func (s *Service) Update(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.Update")
	defer span.End()

	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	var errs validation.Errors
	if patch.Title != nil {
		title := validation.NormalizeText(*patch.Title)
		patch.Title = &title
		errs.Check("title", validation.ValidateTitle(title))
	}
	if patch.Description != nil {
		description := validation.NormalizeText(*patch.Description)
		patch.Description = &description
		errs.Check("description", validation.ValidateDescription(description))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if !validID(id) {
		return nil, ErrNotFound
	}

	task, err := s.store.GetTask(ctx, ownerID, id)
	if err != nil {
		return nil, s.mapStoreErr(span, "get task", err)
	}

	if patch.IsEmpty() {
		return task, nil
	}

	patch.Apply(task)
	task.UpdatedAt = s.now().UTC()

	if err := s.store.UpdateTask(ctx, task); err != nil {
		return nil, s.mapStoreErr(span, "update task", err)
	}

	s.logger.DebugContext(ctx, "Task updated", slog.String("task_id", task.ID), slog.String("user_id", ownerID))
	return task, nil
}

// Delete removes one of the caller's tasks
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tasks.Delete")
	defer span.End()

	ownerID, err := owner(ctx)
	if err != nil {
		return err
	}
	if !validID(id) {
		return ErrNotFound
	}

	if err := s.store.DeleteTask(ctx, ownerID, id); err != nil {
		return s.mapStoreErr(span, "delete task", err)
	}

	s.logger.DebugContext(ctx, "Task deleted", slog.String("task_id", id), slog.String("user_id", ownerID))
	return nil
}

func owner(ctx context.Context) (string, error) {
	id, ok := requestctx.UserID(ctx)
	if !ok {
		return "", ErrNoIdentity
	}
	return id, nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *Service) mapStoreErr(span trace.Span, op string, err error) error {
	if errors.Is(err, storage.ErrTaskNotFound) {
		return ErrNotFound
	}
	return fail(span, fmt.Errorf("%s: %w", op, err))
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
