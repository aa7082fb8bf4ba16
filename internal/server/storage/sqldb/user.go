package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/storage"
)

const userColumns = `id, name, email, password_hash, created_at, updated_at`

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		toUnixNano(user.CreatedAt),
		toUnixNano(user.UpdatedAt),
	)

	if err != nil {
		// Проверяем на duplicate email
		if isUniqueViolation(err) {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves user by normalized email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID)
}

func (s *Storage) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	var createdAt, updatedAt int64

	err := s.queryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.CreatedAt = fromUnixNano(createdAt)
	user.UpdatedAt = fromUnixNano(updatedAt)

	return user, nil
}

// UpdateUser updates user profile; email is immutable
func (s *Storage) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = ?, password_hash = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.exec(ctx, query,
		user.Name,
		user.PasswordHash,
		toUnixNano(user.UpdatedAt),
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	ok, err := affectedOne(result)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrUserNotFound
	}

	return nil
}
