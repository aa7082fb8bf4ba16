package sqldb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/taskmanager/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, DialectSQLite, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) string {
	t.Helper()

	userID := uuid.New().String()
	now := time.Now()
	user := &models.User{
		ID:           userID,
		Name:         "Test User",
		Email:        "user_" + userID[:8] + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.CreateUser(ctx, user))

	return userID
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{in: "", want: DialectSQLite},
		{in: "sqlite", want: DialectSQLite},
		{in: "SQLite3", want: DialectSQLite},
		{in: "postgres", want: DialectPostgres},
		{in: "pgx", want: DialectPostgres},
		{in: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDialect(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRebind(t *testing.T) {
	pg := NewWithDB(nil, DialectPostgres)
	lite := NewWithDB(nil, DialectSQLite)

	q := `SELECT a FROM t WHERE id = ? AND owner_id = ?`
	assert.Equal(t, `SELECT a FROM t WHERE id = $1 AND owner_id = $2`, pg.rebind(q))
	assert.Equal(t, q, lite.rebind(q))
}

func TestNew_MigrationsIdempotent(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// повторный прогон не должен падать
	require.NoError(t, s.runMigrations(context.Background()))
	require.NoError(t, s.Ping(context.Background()))
}

func TestUnixNanoRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 123456789, time.UTC)
	assert.True(t, fromUnixNano(toUnixNano(ts)).Equal(ts))
}
