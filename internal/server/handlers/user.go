package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/auth"
	"github.com/iudanet/taskmanager/internal/server/requestctx"
	"github.com/iudanet/taskmanager/pkg/api"
)

// UserHandler обрабатывает запросы профиля
type UserHandler struct {
	service AuthService
	responder
}

// NewUserHandler создает handler профиля
func NewUserHandler(logger *slog.Logger, service AuthService) *UserHandler {
	return &UserHandler{
		responder: responder{logger: logger},
		service:   service,
	}
}

// Profile обрабатывает GET /user/profile
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := requestctx.User(r.Context())
	if !ok {
		h.writeError(w, r, auth.ErrUnauthenticated)
		return
	}

	h.sendJSON(w, userResponse(user), http.StatusOK)
}

// UpdateProfile обрабатывает PUT /user/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestctx.UserID(r.Context())
	if !ok {
		h.writeError(w, r, auth.ErrUnauthenticated)
		return
	}

	var req api.UpdateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, auth.ProfileUpdate{
		Name:            req.Name,
		Password:        req.Password,
		CurrentPassword: req.CurrentPassword,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.sendJSON(w, userResponse(user), http.StatusOK)
}

func userResponse(u *models.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
