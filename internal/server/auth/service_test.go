package auth

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/taskmanager/internal/crypto"
	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/storage"
	"github.com/iudanet/taskmanager/internal/server/token"
	"github.com/iudanet/taskmanager/internal/validation"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// mockUserStorage is an in-memory UserStorage
type mockUserStorage struct {
	byID     map[string]*models.User
	getErr   error
	mu       sync.Mutex
	getCalls int
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{byID: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == user.Email {
			return storage.ErrUserAlreadyExists
		}
	}
	cp := *user
	m.byID[user.ID] = &cp
	return nil
}

func (m *mockUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) GetUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserStorage) UpdateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[user.ID]; !ok {
		return storage.ErrUserNotFound
	}
	cp := *user
	m.byID[user.ID] = &cp
	return nil
}

// mockRevocationStorage is an in-memory RevocationStorage
type mockRevocationStorage struct {
	revoked map[string]time.Time
	purged  int
	mu      sync.Mutex
}

func newMockRevocationStorage() *mockRevocationStorage {
	return &mockRevocationStorage{revoked: make(map[string]time.Time)}
}

func (m *mockRevocationStorage) RevokeToken(_ context.Context, t *models.RevokedToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[t.TokenID] = t.ExpiresAt
	return nil
}

func (m *mockRevocationStorage) IsTokenRevoked(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[id]
	return ok, nil
}

func (m *mockRevocationStorage) DeleteExpiredRevocations(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purged++
	return 0, nil
}

func (m *mockRevocationStorage) purgeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.purged
}

type testEnv struct {
	svc    *Service
	users  *mockUserStorage
	revs   *mockRevocationStorage
	tokens *token.Service
}

func setupService(t *testing.T, requireCurrent bool) *testEnv {
	t.Helper()

	tokens, err := token.NewService([]byte("test-secret-key-at-least-32-bytes-long"), time.Hour)
	require.NoError(t, err)

	users := newMockUserStorage()
	revs := newMockRevocationStorage()
	svc, err := NewService(users, revs, tokens, Config{
		BcryptCost:             bcrypt.MinCost,
		RequireCurrentPassword: requireCurrent,
	}, setupTestLogger())
	require.NoError(t, err)

	return &testEnv{svc: svc, users: users, revs: revs, tokens: tokens}
}

func strPtr(s string) *string { return &s }

func TestNewService_DummyHashCost(t *testing.T) {
	tokens, err := token.NewService([]byte("test-secret-key-at-least-32-bytes-long"), time.Hour)
	require.NoError(t, err)

	for _, cost := range []int{bcrypt.MinCost, bcrypt.MinCost + 2} {
		svc, err := NewService(newMockUserStorage(), nil, tokens, Config{BcryptCost: cost}, setupTestLogger())
		require.NoError(t, err)

		got, err := bcrypt.Cost([]byte(svc.dummyHash))
		require.NoError(t, err)
		assert.Equal(t, cost, got, "стоимость фиктивного хеша совпадает с BCRYPT_COST")
	}

	_, err = NewService(newMockUserStorage(), nil, tokens, Config{BcryptCost: bcrypt.MaxCost + 1}, setupTestLogger())
	assert.Error(t, err)
}

func TestRegisterLogin_AliceScenario(t *testing.T) {
	env := setupService(t, true)
	ctx := context.Background()

	reg, err := env.svc.Register(ctx, RegisterInput{
		Name:     "Alice",
		Email:    "  Alice@Example.com ",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "alice@example.com", reg.User.Email)
	assert.Equal(t, "Alice", reg.User.Name)

	stored, err := env.users.GetUserByID(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", stored.PasswordHash, "пароль не хранится в открытом виде")
	assert.NoError(t, crypto.VerifyPassword("Secret123!", stored.PasswordHash))

	login, err := env.svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "Secret123!"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	claims, err := env.tokens.Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)

	_, err = env.svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.svc.Login(ctx, LoginInput{Email: "bob@example.com", Password: "Secret123!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPasswordAnyLength(t *testing.T) {
	env := setupService(t, true)
	ctx := context.Background()

	_, err := env.svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "Secret123!"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "short", email: "alice@example.com", password: "wrong"},
		{name: "well formed", email: "alice@example.com", password: "Wrong123!"},
		{name: "beyond bcrypt limit", email: "alice@example.com", password: strings.Repeat("x", 73)},
		{name: "correct prefix beyond limit", email: "alice@example.com", password: "Secret123!" + strings.Repeat("x", 63)},
		{name: "unknown email short", email: "bob@example.com", password: "wrong"},
		{name: "unknown email long", email: "bob@example.com", password: strings.Repeat("x", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Login(ctx, LoginInput{Email: tt.email, Password: tt.password})
			require.ErrorIs(t, err, ErrInvalidCredentials)

			var fields validation.Errors
			assert.False(t, errors.As(err, &fields), "не ошибка валидации")
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := setupService(t, true)
	ctx := context.Background()

	_, err := env.svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "Secret123!"})
	require.NoError(t, err)

	// отличается только регистром
	_, err = env.svc.Register(ctx, RegisterInput{Name: "Alice Two", Email: "ALICE@example.com", Password: "Secret123!"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	env := setupService(t, true)

	_, err := env.svc.Register(context.Background(), RegisterInput{Name: "A", Email: "nope", Password: "weak"})
	require.Error(t, err)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	require.Len(t, fields, 3)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "email", fields[1].Field)
	assert.Equal(t, "password", fields[2].Field)
	assert.Empty(t, env.users.byID, "ничего не сохранено")
}

func TestLogin_Validation(t *testing.T) {
	env := setupService(t, true)

	tests := []struct {
		name  string
		in    LoginInput
		field string
		msg   string
	}{
		{name: "bad email", in: LoginInput{Email: "nope", Password: "Secret123!"}, field: "email", msg: "Valid email is required"},
		{name: "missing password", in: LoginInput{Email: "a@b.co"}, field: "password", msg: "Password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Login(context.Background(), tt.in)
			var fields validation.Errors
			require.ErrorAs(t, err, &fields)
			require.Len(t, fields, 1)
			assert.Equal(t, tt.field, fields[0].Field)
			assert.Equal(t, tt.msg, fields[0].Message)
		})
	}
	assert.Zero(t, env.users.getCalls, "store не опрашивается при ошибке валидации")
}

func TestLogin_StorageError(t *testing.T) {
	env := setupService(t, true)
	env.users.getErr = errors.New("db down")

	_, err := env.svc.Login(context.Background(), LoginInput{Email: "a@b.co", Password: "Secret123!"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	env := setupService(t, true)
	ctx := context.Background()

	sess, err := env.svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "Secret123!"})
	require.NoError(t, err)

	user, claims, err := env.svc.Authenticate(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, user.ID)
	assert.Equal(t, sess.User.ID, claims.UserID)

	// токен пользователя, которого нет в хранилище
	ghostToken, _, err := env.tokens.Issue("ghost-id")
	require.NoError(t, err)

	expired, err := token.NewService([]byte("test-secret-key-at-least-32-bytes-long"), time.Hour,
		token.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }))
	require.NoError(t, err)
	expiredToken, _, err := expired.Issue(sess.User.ID)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "abc.def.ghi"},
		{name: "expired", token: expiredToken},
		{name: "unknown user", token: ghostToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.svc.Authenticate(ctx, tt.token)
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	env := setupService(t, true)
	ctx := context.Background()

	sess, err := env.svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "Secret123!"})
	require.NoError(t, err)

	_, claims, err := env.svc.Authenticate(ctx, sess.Token)
	require.NoError(t, err)

	require.NoError(t, env.svc.Logout(ctx, claims))
	assert.Contains(t, env.revs.revoked, claims.TokenID())

	_, _, err = env.svc.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// новый логин выдает новый рабочий токен
	again, err := env.svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "Secret123!"})
	require.NoError(t, err)
	_, _, err = env.svc.Authenticate(ctx, again.Token)
	assert.NoError(t, err)

	assert.ErrorIs(t, env.svc.Logout(ctx, nil), ErrUnauthenticated)
}

func TestUpdateProfile(t *testing.T) {
	tests := []struct {
		name           string
		upd            ProfileUpdate
		wantErr        error
		wantField      string
		wantName       string
		newPassword    string
		requireCurrent bool
	}{
		{
			name:     "change name",
			upd:      ProfileUpdate{Name: strPtr("  Alice Smith ")},
			wantName: "Alice Smith",
		},
		{
			name:     "empty update keeps user",
			upd:      ProfileUpdate{Name: strPtr(""), Password: strPtr("")},
			wantName: "Alice",
		},
		{
			name:      "invalid name",
			upd:       ProfileUpdate{Name: strPtr("A1")},
			wantField: "name",
		},
		{
			name:           "password with current",
			upd:            ProfileUpdate{Password: strPtr("NewSecret1!"), CurrentPassword: strPtr("Secret123!")},
			requireCurrent: true,
			wantName:       "Alice",
			newPassword:    "NewSecret1!",
		},
		{
			name:           "password without current",
			upd:            ProfileUpdate{Password: strPtr("NewSecret1!")},
			requireCurrent: true,
			wantField:      "current_password",
		},
		{
			name:           "password with wrong current",
			upd:            ProfileUpdate{Password: strPtr("NewSecret1!"), CurrentPassword: strPtr("Wrong123!")},
			requireCurrent: true,
			wantErr:        ErrInvalidCredentials,
		},
		{
			name:        "password without current when not required",
			upd:         ProfileUpdate{Password: strPtr("NewSecret1!")},
			wantName:    "Alice",
			newPassword: "NewSecret1!",
		},
		{
			name:      "weak new password",
			upd:       ProfileUpdate{Password: strPtr("weak")},
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupService(t, tt.requireCurrent)
			ctx := context.Background()

			sess, err := env.svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "Secret123!"})
			require.NoError(t, err)

			user, err := env.svc.UpdateProfile(ctx, sess.User.ID, tt.upd)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				return
			case tt.wantField != "":
				var fields validation.Errors
				require.ErrorAs(t, err, &fields)
				assert.Equal(t, tt.wantField, fields[0].Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, user.Name)
			assert.Equal(t, "alice@example.com", user.Email)

			password := "Secret123!"
			if tt.newPassword != "" {
				password = tt.newPassword
			}
			_, err = env.svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: password})
			assert.NoError(t, err)
		})
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	env := setupService(t, false)

	_, err := env.svc.UpdateProfile(context.Background(), "ghost", ProfileUpdate{Name: strPtr("Bob")})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRunRevocationCleanup(t *testing.T) {
	env := setupService(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		env.svc.RunRevocationCleanup(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return env.revs.purgeCount() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}
