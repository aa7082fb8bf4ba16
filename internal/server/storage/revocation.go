package storage

import (
	"context"

	"github.com/iudanet/taskmanager/internal/models"
)

// RevocationStorage keeps ids of session tokens revoked before their expiry
type RevocationStorage interface {
	// RevokeToken marks a token id as revoked until token.ExpiresAt
	// Revoking the same id twice is not an error
	RevokeToken(ctx context.Context, token *models.RevokedToken) error

	// IsTokenRevoked reports whether the token id is in the denylist
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)

	// DeleteExpiredRevocations removes entries whose token already expired
	// Returns number of deleted entries
	DeleteExpiredRevocations(ctx context.Context) (int, error)
}
