package models

import "time"

// User представляет зарегистрированного пользователя
type User struct {
	CreatedAt    time.Time `json:"created_at"` // время регистрации
	UpdatedAt    time.Time `json:"updated_at"` // время последнего изменения профиля
	ID           string    `json:"id"`         // UUID пользователя
	Name         string    `json:"name"`       // отображаемое имя
	Email        string    `json:"email"`      // уникальный email (нормализованный)
	PasswordHash string    `json:"-"`          // bcrypt хеш, наружу не отдается
}

// RevokedToken is a session token id that must be rejected until it expires.
type RevokedToken struct {
	ExpiresAt time.Time `json:"expires_at"`
	RevokedAt time.Time `json:"revoked_at"`
	TokenID   string    `json:"token_id"` // jti claim
	UserID    string    `json:"user_id"`
}
