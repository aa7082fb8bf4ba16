package auth

import (
	"context"

	"github.com/iudanet/taskmanager/internal/client/storage"
	"github.com/iudanet/taskmanager/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service manages the account on the server and the local session
type Service interface {
	// Register регистрирует пользователя и сохраняет сессию
	Register(ctx context.Context, name, email, password string) (*storage.AuthData, error)

	// Login выполняет аутентификацию и сохраняет сессию
	Login(ctx context.Context, email, password string) (*storage.AuthData, error)

	// Logout отзывает токен на сервере и удаляет локальную сессию
	Logout(ctx context.Context) error

	// Session возвращает действующую сессию.
	// ErrNotLoggedIn если сессии нет, ErrSessionExpired если токен истек
	Session(ctx context.Context) (*storage.AuthData, error)

	// Invalidate удаляет сессию, которую отверг сервер
	Invalidate(ctx context.Context) error

	// Profile возвращает профиль с сервера
	Profile(ctx context.Context) (*api.UserResponse, error)

	// UpdateProfile меняет имя и/или пароль
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (*api.UserResponse, error)
}
