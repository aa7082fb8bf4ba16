package tasks

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/requestctx"
	"github.com/iudanet/taskmanager/internal/server/storage"
	"github.com/iudanet/taskmanager/internal/server/storage/sqldb"
	"github.com/iudanet/taskmanager/internal/validation"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// setupService wires the service to an in-memory SQLite store with two users
func setupService(t *testing.T) (*Service, context.Context, context.Context) {
	t.Helper()
	ctx := context.Background()

	store, err := sqldb.New(ctx, sqldb.DialectSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	alice := createUser(t, store, "alice@example.com")
	bob := createUser(t, store, "bob@example.com")

	svc := NewService(store, setupTestLogger())

	// каждая следующая задача создается на секунду позже
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	return svc, requestctx.WithIdentity(ctx, alice, nil), requestctx.WithIdentity(ctx, bob, nil)
}

func createUser(t *testing.T, store *sqldb.Storage, email string) *models.User {
	t.Helper()
	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         "User",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestService_RoundTrip(t *testing.T) {
	svc, alice, _ := setupService(t)

	created, err := svc.Create(alice, CreateInput{Title: "  Buy milk  ", Description: " 2 liters "})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, "2 liters", created.Description)
	assert.False(t, created.Completed)

	list, err := svc.List(alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.False(t, list[0].Completed)

	updated, err := svc.Update(alice, created.ID, models.TaskPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	list, err = svc.List(alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Completed)
}

func TestService_ListNewestFirstAndScoped(t *testing.T) {
	svc, alice, bob := setupService(t)

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(alice, CreateInput{Title: title})
		require.NoError(t, err)
	}
	_, err := svc.Create(bob, CreateInput{Title: "bob task"})
	require.NoError(t, err)

	list, err := svc.List(alice)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{list[0].Title, list[1].Title, list[2].Title})

	list, err = svc.List(bob)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bob task", list[0].Title)
}

func TestService_CrossOwnerIsNotFound(t *testing.T) {
	svc, alice, bob := setupService(t)

	task, err := svc.Create(alice, CreateInput{Title: "Secret plans"})
	require.NoError(t, err)

	missing := uuid.NewString()

	tests := []struct {
		name string
		run  func(id string) error
	}{
		{name: "get", run: func(id string) error { _, err := svc.Get(bob, id); return err }},
		{name: "update", run: func(id string) error {
			_, err := svc.Update(bob, id, models.TaskPatch{Title: strPtr("pwned")})
			return err
		}},
		{name: "delete", run: func(id string) error { return svc.Delete(bob, id) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foreignErr := tt.run(task.ID)
			missingErr := tt.run(missing)
			malformedErr := tt.run("not-a-uuid")

			assert.ErrorIs(t, foreignErr, ErrNotFound)
			assert.ErrorIs(t, missingErr, ErrNotFound)
			assert.ErrorIs(t, malformedErr, ErrNotFound)
			// неотличимо от несуществующей задачи
			assert.Equal(t, missingErr.Error(), foreignErr.Error())
		})
	}

	got, err := svc.Get(alice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Secret plans", got.Title)
}

func TestService_DeleteTwice(t *testing.T) {
	svc, alice, _ := setupService(t)

	task, err := svc.Create(alice, CreateInput{Title: "Temporary"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(alice, task.ID))
	assert.ErrorIs(t, svc.Delete(alice, task.ID), ErrNotFound)

	_, err = svc.Get(alice, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Validation(t *testing.T) {
	svc, alice, _ := setupService(t)

	tests := []struct {
		name  string
		in    CreateInput
		field string
	}{
		{name: "empty title", in: CreateInput{Title: "   "}, field: "title"},
		{name: "short title", in: CreateInput{Title: "a"}, field: "title"},
		{name: "long description", in: CreateInput{Title: "ok title", Description: strings.Repeat("d", 501)}, field: "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(alice, tt.in)
			var fields validation.Errors
			require.ErrorAs(t, err, &fields)
			assert.Equal(t, tt.field, fields[0].Field)
		})
	}

	task, err := svc.Create(alice, CreateInput{Title: "Valid"})
	require.NoError(t, err)

	_, err = svc.Update(alice, task.ID, models.TaskPatch{Title: strPtr(" ")})
	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "title", fields[0].Field)

	// пустой patch возвращает задачу без изменений
	same, err := svc.Update(alice, task.ID, models.TaskPatch{})
	require.NoError(t, err)
	assert.Equal(t, task.Title, same.Title)
	assert.True(t, task.UpdatedAt.Equal(same.UpdatedAt))
}

func TestService_NoIdentity(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Title: "x title"})
	assert.ErrorIs(t, err, ErrNoIdentity)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, ErrNoIdentity)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.NewString()), ErrNoIdentity)
}

// failingStore returns an error from every call
type failingStore struct {
	storage.TaskStorage
	err error
}

func (f failingStore) ListTasks(context.Context, string) ([]*models.Task, error) {
	return nil, f.err
}

func (f failingStore) DeleteTask(context.Context, string, string) error {
	return f.err
}

func TestService_StoreErrorsAreWrapped(t *testing.T) {
	dbErr := errors.New("db down")
	svc := NewService(failingStore{err: dbErr}, setupTestLogger())
	ctx := requestctx.WithIdentity(context.Background(), &models.User{ID: "u-1"}, nil)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, uuid.NewString())
	assert.ErrorIs(t, err, dbErr)
}
