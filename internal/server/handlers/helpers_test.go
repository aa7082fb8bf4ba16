package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/taskmanager/internal/server/auth"
	"github.com/iudanet/taskmanager/internal/server/requestctx"
	"github.com/iudanet/taskmanager/internal/server/storage/sqldb"
	"github.com/iudanet/taskmanager/internal/server/tasks"
	"github.com/iudanet/taskmanager/internal/server/token"
	"github.com/iudanet/taskmanager/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

type testServer struct {
	authSvc *auth.Service
	auth    *AuthHandler
	user    *UserHandler
	tasks   *TaskHandler
}

// setupTestServer wires handlers to real services over in-memory SQLite
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	store, err := sqldb.New(ctx, sqldb.DialectSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	tokens, err := token.NewService([]byte("test-secret-key-at-least-32-bytes-long"), time.Hour)
	require.NoError(t, err)

	logger := setupTestLogger()
	authSvc, err := auth.NewService(store, store, tokens, auth.Config{
		BcryptCost:             bcrypt.MinCost,
		RequireCurrentPassword: true,
	}, logger)
	require.NoError(t, err)
	taskSvc := tasks.NewService(store, logger)

	return &testServer{
		authSvc: authSvc,
		auth:    NewAuthHandler(logger, authSvc),
		user:    NewUserHandler(logger, authSvc),
		tasks:   NewTaskHandler(logger, taskSvc),
	}
}

// register creates a user and returns the request context the Auth Gate would build
func (s *testServer) register(t *testing.T, name, email string) (context.Context, *auth.Session) {
	t.Helper()
	sess, err := s.authSvc.Register(context.Background(), auth.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "Secret123!",
	})
	require.NoError(t, err)

	user, claims, err := s.authSvc.Authenticate(context.Background(), sess.Token)
	require.NoError(t, err)

	return requestctx.WithIdentity(context.Background(), user, claims), sess
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func newRequest(t *testing.T, ctx context.Context, method, target string, body any) *http.Request {
	t.Helper()
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, target, nil)
	case string:
		req = httptest.NewRequest(method, target, bytes.NewBufferString(b))
	default:
		req = httptest.NewRequest(method, target, jsonBody(t, b))
	}
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func decodeTask(t *testing.T, w *httptest.ResponseRecorder) api.TaskResponse {
	t.Helper()
	var resp api.TaskResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}
