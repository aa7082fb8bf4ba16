package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/tasks"
	"github.com/iudanet/taskmanager/pkg/api"
)

// TaskService is the owner-scoped task API used by HTTP handlers
type TaskService interface {
	Create(ctx context.Context, in tasks.CreateInput) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	Get(ctx context.Context, id string) (*models.Task, error)
	Update(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id string) error
}

// TaskHandler обрабатывает CRUD запросы задач
type TaskHandler struct {
	service TaskService
	responder
}

// NewTaskHandler создает handler задач
func NewTaskHandler(logger *slog.Logger, service TaskService) *TaskHandler {
	return &TaskHandler{
		responder: responder{logger: logger},
		service:   service,
	}
}

// Create обрабатывает POST /tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.CreateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	task, err := h.service.Create(r.Context(), tasks.CreateInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.sendJSON(w, taskResponse(task), http.StatusCreated)
}

// List обрабатывает GET /tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := make([]api.TaskResponse, 0, len(list))
	for _, t := range list {
		resp = append(resp, taskResponse(t))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Get обрабатывает GET /tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.sendJSON(w, taskResponse(task), http.StatusOK)
}

// Update обрабатывает PUT /tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	task, err := h.service.Update(r.Context(), r.PathValue("id"), models.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.sendJSON(w, taskResponse(task), http.StatusOK)
}

// Delete обрабатывает DELETE /tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.sendJSON(w, api.MessageResponse{Message: "Task deleted"}, http.StatusOK)
}

func taskResponse(t *models.Task) api.TaskResponse {
	return api.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
