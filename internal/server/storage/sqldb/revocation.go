package sqldb

import (
	"context"
	"fmt"

	"github.com/iudanet/taskmanager/internal/models"
)

// RevokeToken records a token id in the denylist
func (s *Storage) RevokeToken(ctx context.Context, token *models.RevokedToken) error {
	query := `
		INSERT INTO revoked_tokens (token_id, user_id, expires_at, revoked_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (token_id) DO NOTHING
	`

	_, err := s.exec(ctx, query,
		token.TokenID,
		token.UserID,
		toUnixNano(token.ExpiresAt),
		toUnixNano(token.RevokedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// IsTokenRevoked reports whether the token id is in the denylist
func (s *Storage) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	var n int
	err := s.queryRow(ctx, `SELECT COUNT(*) FROM revoked_tokens WHERE token_id = ?`, tokenID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}

	return n > 0, nil
}

// DeleteExpiredRevocations removes entries whose token already expired
func (s *Storage) DeleteExpiredRevocations(ctx context.Context) (int, error) {
	result, err := s.exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < ?`, toUnixNano(s.now()))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired revocations: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
