package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/auth"
	"github.com/iudanet/taskmanager/internal/server/requestctx"
	"github.com/iudanet/taskmanager/internal/server/token"
)

// Authenticator resolves a bearer token to a live identity
type Authenticator interface {
	Authenticate(ctx context.Context, tokenString string) (*models.User, *token.Claims, error)
}

// AuthGate создает middleware, пропускающий только запросы с действительным токеном.
// Любая причина отказа дает одинаковый ответ 401.
func AuthGate(logger *slog.Logger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, ok := bearerToken(r)
			if !ok {
				logger.DebugContext(ctx, "Missing or malformed Authorization header")
				writeError(w, "not authenticated", http.StatusUnauthorized)
				return
			}

			user, claims, err := authenticator.Authenticate(ctx, tokenString)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					writeError(w, "not authenticated", http.StatusUnauthorized)
					return
				}
				logger.ErrorContext(ctx, "Authentication failed", slog.Any("error", err))
				writeError(w, "internal server error", http.StatusInternalServerError)
				return
			}

			logger.DebugContext(ctx, "User authenticated", slog.String("user_id", user.ID))

			next.ServeHTTP(w, r.WithContext(requestctx.WithIdentity(ctx, user, claims)))
		})
	}
}

// bearerToken извлекает токен из заголовка "Authorization: Bearer <token>"
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}
