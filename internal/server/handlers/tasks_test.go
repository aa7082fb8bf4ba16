package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/tasks"
	"github.com/iudanet/taskmanager/pkg/api"
)

// withID emulates the router filling the {id} path value
func withID(r *http.Request, id string) *http.Request {
	r.SetPathValue("id", id)
	return r
}

func TestTaskHandler_CRUD(t *testing.T) {
	srv := setupTestServer(t)
	ctx, _ := srv.register(t, "Alice", "alice@example.com")

	// create
	w := httptest.NewRecorder()
	srv.tasks.Create(w, newRequest(t, ctx, http.MethodPost, "/tasks", api.CreateTaskRequest{Title: " Buy milk ", Description: "2 liters"}))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeTask(t, w)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)

	// list
	w = httptest.NewRecorder()
	srv.tasks.List(w, newRequest(t, ctx, http.MethodGet, "/tasks", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list []api.TaskResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	// update completed
	w = httptest.NewRecorder()
	srv.tasks.Update(w, withID(newRequest(t, ctx, http.MethodPut, "/tasks/"+created.ID, `{"completed": true}`), created.ID))
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeTask(t, w)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Title)

	// get
	w = httptest.NewRecorder()
	srv.tasks.Get(w, withID(newRequest(t, ctx, http.MethodGet, "/tasks/"+created.ID, nil), created.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeTask(t, w).Completed)

	// delete twice
	w = httptest.NewRecorder()
	srv.tasks.Delete(w, withID(newRequest(t, ctx, http.MethodDelete, "/tasks/"+created.ID, nil), created.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Task deleted"}`, w.Body.String())

	w = httptest.NewRecorder()
	srv.tasks.Delete(w, withID(newRequest(t, ctx, http.MethodDelete, "/tasks/"+created.ID, nil), created.ID))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Task not found", decodeError(t, w).Message)
}

func TestTaskHandler_EmptyListIsArray(t *testing.T) {
	srv := setupTestServer(t)
	ctx, _ := srv.register(t, "Alice", "alice@example.com")

	w := httptest.NewRecorder()
	srv.tasks.List(w, newRequest(t, ctx, http.MethodGet, "/tasks", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestTaskHandler_ForeignTaskIsNotFound(t *testing.T) {
	srv := setupTestServer(t)
	alice, _ := srv.register(t, "Alice", "alice@example.com")
	bob, _ := srv.register(t, "Bob", "bob@example.com")

	w := httptest.NewRecorder()
	srv.tasks.Create(w, newRequest(t, alice, http.MethodPost, "/tasks", api.CreateTaskRequest{Title: "Alice only"}))
	require.Equal(t, http.StatusCreated, w.Code)
	task := decodeTask(t, w)

	missing := uuid.NewString()
	calls := []struct {
		name string
		call func(id string) *httptest.ResponseRecorder
	}{
		{name: "get", call: func(id string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			srv.tasks.Get(w, withID(newRequest(t, bob, http.MethodGet, "/tasks/"+id, nil), id))
			return w
		}},
		{name: "update", call: func(id string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			srv.tasks.Update(w, withID(newRequest(t, bob, http.MethodPut, "/tasks/"+id, `{"title":"mine now"}`), id))
			return w
		}},
		{name: "delete", call: func(id string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			srv.tasks.Delete(w, withID(newRequest(t, bob, http.MethodDelete, "/tasks/"+id, nil), id))
			return w
		}},
	}

	for _, c := range calls {
		t.Run(c.name, func(t *testing.T) {
			foreign := c.call(task.ID)
			absent := c.call(missing)
			malformed := c.call("123")

			assert.Equal(t, http.StatusNotFound, foreign.Code)
			assert.Equal(t, http.StatusNotFound, absent.Code)
			assert.Equal(t, http.StatusNotFound, malformed.Code)
			assert.Equal(t, absent.Body.String(), foreign.Body.String())
		})
	}

	w = httptest.NewRecorder()
	srv.tasks.Get(w, withID(newRequest(t, alice, http.MethodGet, "/tasks/"+task.ID, nil), task.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice only", decodeTask(t, w).Title)
}

func TestTaskHandler_Validation(t *testing.T) {
	srv := setupTestServer(t)
	ctx, _ := srv.register(t, "Alice", "alice@example.com")

	tests := []struct {
		body      string
		name      string
		wantField string
		wantMsg   string
	}{
		{name: "missing title", body: `{}`, wantField: "title", wantMsg: "Task title is required"},
		{name: "blank title", body: `{"title": "   "}`, wantField: "title", wantMsg: "Task title is required"},
		{name: "long description", body: `{"title": "ok", "description": "` + strings.Repeat("x", 501) + `"}`, wantField: "description", wantMsg: "Description cannot exceed 500 characters"},
		{name: "title not a string", body: `{"title": 5}`, wantField: "title", wantMsg: "title must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.tasks.Create(w, newRequest(t, ctx, http.MethodPost, "/tasks", tt.body))
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decodeError(t, w)
			require.Len(t, resp.Fields, 1)
			assert.Equal(t, tt.wantField, resp.Fields[0].Field)
			assert.Equal(t, tt.wantMsg, resp.Fields[0].Message)
		})
	}

	w := httptest.NewRecorder()
	id := uuid.NewString()
	srv.tasks.Update(w, withID(newRequest(t, ctx, http.MethodPut, "/tasks/"+id, `{"completed": "yes"}`), id))
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "completed must be a boolean", resp.Fields[0].Message)
}

// brokenTaskService fails every call with an internal error
type brokenTaskService struct{}

var errBroken = errors.New("connection reset by peer")

func (brokenTaskService) Create(context.Context, tasks.CreateInput) (*models.Task, error) {
	return nil, errBroken
}
func (brokenTaskService) List(context.Context) ([]*models.Task, error) { return nil, errBroken }
func (brokenTaskService) Get(context.Context, string) (*models.Task, error) {
	return nil, errBroken
}
func (brokenTaskService) Update(context.Context, string, models.TaskPatch) (*models.Task, error) {
	return nil, errBroken
}
func (brokenTaskService) Delete(context.Context, string) error { return errBroken }

func TestTaskHandler_InternalErrorIsGeneric(t *testing.T) {
	h := NewTaskHandler(setupTestLogger(), brokenTaskService{})

	w := httptest.NewRecorder()
	h.List(w, newRequest(t, context.Background(), http.MethodGet, "/tasks", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
	assert.Equal(t, "internal server error", decodeError(t, w).Message)
}

func TestTaskHandler_NoIdentity(t *testing.T) {
	srv := setupTestServer(t)

	w := httptest.NewRecorder()
	srv.tasks.List(w, newRequest(t, context.Background(), http.MethodGet, "/tasks", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDecodeJSON_BodyTooLarge(t *testing.T) {
	srv := setupTestServer(t)
	ctx, _ := srv.register(t, "Alice", "alice@example.com")

	big := `{"title": "` + strings.Repeat("x", maxBodyBytes) + `"}`
	w := httptest.NewRecorder()
	srv.tasks.Create(w, newRequest(t, ctx, http.MethodPost, "/tasks", big))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
