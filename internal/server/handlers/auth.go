package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/auth"
	"github.com/iudanet/taskmanager/internal/server/requestctx"
	"github.com/iudanet/taskmanager/internal/server/token"
	"github.com/iudanet/taskmanager/pkg/api"
)

// AuthService is the part of auth.Service used by HTTP handlers
type AuthService interface {
	Register(ctx context.Context, in auth.RegisterInput) (*auth.Session, error)
	Login(ctx context.Context, in auth.LoginInput) (*auth.Session, error)
	Logout(ctx context.Context, claims *token.Claims) error
	UpdateProfile(ctx context.Context, userID string, upd auth.ProfileUpdate) (*models.User, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	service AuthService
	responder
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, service AuthService) *AuthHandler {
	return &AuthHandler{
		responder: responder{logger: logger},
		service:   service,
	}
}

// Register обрабатывает POST /auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	sess, err := h.service.Register(r.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.sendJSON(w, authResponse(sess), http.StatusCreated)
}

// Login обрабатывает POST /auth/login
// Аутентификация пользователя по email и паролю
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	sess, err := h.service.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.sendJSON(w, authResponse(sess), http.StatusOK)
}

// Logout обрабатывает POST /auth/logout
// Отзывает текущий токен до истечения его срока
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestctx.Claims(r.Context())
	if !ok {
		h.writeError(w, r, auth.ErrUnauthenticated)
		return
	}

	if err := h.service.Logout(r.Context(), claims); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.sendJSON(w, api.MessageResponse{Message: "Logged out"}, http.StatusOK)
}

func authResponse(sess *auth.Session) api.AuthResponse {
	return api.AuthResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		ID:        sess.User.ID,
		Name:      sess.User.Name,
		Email:     sess.User.Email,
	}
}
