package storage

import (
	"context"
	"time"
)

// AuthStorage хранит локальную сессию терминального клиента
type AuthStorage interface {
	// SaveAuth сохраняет сессию, заменяя предыдущую
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth возвращает сохраненную сессию.
	// Returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth удаляет сессию (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if a session exists and its token has not expired
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData is the persisted session: the bearer token and the identity it belongs to
type AuthData struct {
	ExpiresAt time.Time `json:"expires_at"`
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ServerURL string    `json:"server_url"`
}

// Expired reports whether the token is past its expiry at now
func (a *AuthData) Expired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}
