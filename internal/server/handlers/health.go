package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/taskmanager/pkg/api"
)

// Pinger проверяет доступность зависимости (БД, Redis)
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	deps    map[string]Pinger
	version string
	responder
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, version string, deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		responder: responder{logger: logger},
		version:   version,
		deps:      deps,
	}
}

// Health обрабатывает GET /health
// 503 если хотя бы одна зависимость недоступна
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			h.logger.ErrorContext(ctx, "health check failed", slog.String("dependency", name), slog.Any("error", err))
			h.sendJSON(w, api.HealthResponse{Status: "unavailable", Version: h.version}, http.StatusServiceUnavailable)
			return
		}
	}

	h.sendJSON(w, api.HealthResponse{Status: "ok", Version: h.version}, http.StatusOK)
}
