// Package requestctx carries the authenticated identity through a request context.
package requestctx

import (
	"context"

	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/token"
)

type contextKey string

const (
	userKey   contextKey = "user"
	claimsKey contextKey = "claims"
)

// WithIdentity attaches the resolved user and the claims of the token it came from
func WithIdentity(ctx context.Context, user *models.User, claims *token.Claims) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, claimsKey, claims)
}

// User returns the authenticated user, if any
func User(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

// UserID returns the id of the authenticated user, if any
func UserID(ctx context.Context) (string, bool) {
	user, ok := User(ctx)
	if !ok || user.ID == "" {
		return "", false
	}
	return user.ID, true
}

// Claims returns the session token claims, if any
func Claims(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok && claims != nil
}
