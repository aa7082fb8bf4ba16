package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskmanager/pkg/api"
)

func TestRecovery(t *testing.T) {
	tests := []struct {
		handler  http.HandlerFunc
		name     string
		wantCode int
	}{
		{
			name: "no panic",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "panic with string",
			handler: func(w http.ResponseWriter, r *http.Request) {
				panic("something went wrong")
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "panic with nil map write",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var m map[string]int
				m["boom"] = 1
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Recovery(setupTestLogger())(tt.handler)

			w := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks", nil))
			})
			assert.Equal(t, tt.wantCode, w.Code)

			if tt.wantCode == http.StatusInternalServerError {
				var resp api.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "internal server error", resp.Message)
			}
		})
	}
}

func TestRecovery_PanicAfterWrite(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelError}))

	handler := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"partial":`))
		panic("mid-response")
	}))

	w := httptest.NewRecorder()
	// соединение обрывается, а не дописывается JSON ошибки
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks", nil))
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"partial":`, w.Body.String())
	assert.Contains(t, logBuf.String(), "mid-response")
}

func TestRecovery_PanicAfterWrite_Server(t *testing.T) {
	ts := httptest.NewServer(Recovery(setupTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"partial":`))
		_ = http.NewResponseController(w).Flush()
		panic("mid-response")
	})))
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, err = io.ReadAll(resp.Body)
	assert.Error(t, err, "тело ответа оборвано")
}

func TestRecovery_LogsStackTrace(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelError}))

	handler := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("test panic")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	out := logBuf.String()
	assert.Contains(t, out, "Panic recovered")
	assert.Contains(t, out, "test panic")
	assert.Contains(t, out, "stack=")
	assert.NotContains(t, w.Body.String(), "test panic", "детали паники не отдаются клиенту")
}

func TestRecovery_ChainWithLogging(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("chained")
	}), Logging(logger), Recovery(logger))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, logBuf.String(), "status=500")
}
