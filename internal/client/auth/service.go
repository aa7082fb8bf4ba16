package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/taskmanager/internal/client/api"
	"github.com/iudanet/taskmanager/internal/client/storage"
	"github.com/iudanet/taskmanager/internal/validation"
	pkgapi "github.com/iudanet/taskmanager/pkg/api"
)

var (
	// ErrNotLoggedIn сессия отсутствует
	ErrNotLoggedIn = errors.New("not authenticated. Please run 'taskmanager login' first")

	// ErrSessionExpired токен истек или отозван
	ErrSessionExpired = errors.New("session expired. Please run 'taskmanager login' again")
)

// ProfileUpdate описывает изменение профиля; пустые поля не меняются
type ProfileUpdate struct {
	Name            string
	Password        string
	CurrentPassword string
}

// Manager implements Service on top of the API client and the local session store
type Manager struct {
	apiClient *api.Client
	store     storage.AuthStorage
	now       func() time.Time
	serverURL string
}

var _ Service = (*Manager)(nil)

// NewManager создает новый сервис авторизации
func NewManager(apiClient *api.Client, store storage.AuthStorage, serverURL string) *Manager {
	return &Manager{
		apiClient: apiClient,
		store:     store,
		now:       time.Now,
		serverURL: serverURL,
	}
}

// Register регистрирует нового пользователя
func (s *Manager) Register(ctx context.Context, name, email, password string) (*storage.AuthData, error) {
	name = validation.NormalizeName(name)
	email = validation.NormalizeEmail(email)

	// Валидация на клиенте, чтобы не гонять заведомо плохой запрос
	var verrs validation.Errors
	verrs.Check("name", validation.ValidateName(name))
	verrs.Check("email", validation.ValidateEmail(email))
	verrs.Check("password", validation.ValidatePassword(password))
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	return s.saveSession(ctx, resp)
}

// Login выполняет аутентификацию пользователя
func (s *Manager) Login(ctx context.Context, email, password string) (*storage.AuthData, error) {
	email = validation.NormalizeEmail(email)

	var verrs validation.Errors
	verrs.Check("email", validation.ValidateEmail(email))
	verrs.Check("password", validation.ValidateLoginPassword(password))
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	return s.saveSession(ctx, resp)
}

func (s *Manager) saveSession(ctx context.Context, resp *pkgapi.AuthResponse) (*storage.AuthData, error) {
	auth := &storage.AuthData{
		ExpiresAt: resp.ExpiresAt,
		Token:     resp.Token,
		UserID:    resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		ServerURL: s.serverURL,
	}
	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return auth, nil
}

// Logout выполняет выход из системы.
// Локальная сессия удаляется даже если сервер недоступен.
func (s *Manager) Logout(ctx context.Context) error {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	var remoteErr error
	if !auth.Expired(s.now()) {
		if err := s.apiClient.Logout(ctx, auth.Token); err != nil && !api.IsUnauthorized(err) {
			remoteErr = err
		}
	}

	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if remoteErr != nil {
		return fmt.Errorf("local session removed, but server logout failed: %w", remoteErr)
	}
	return nil
}

// Session возвращает действующую сессию
func (s *Manager) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if auth.Expired(s.now()) {
		return nil, ErrSessionExpired
	}
	return auth, nil
}

// Invalidate удаляет локальную сессию
func (s *Manager) Invalidate(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Profile возвращает профиль текущего пользователя
func (s *Manager) Profile(ctx context.Context) (*pkgapi.UserResponse, error) {
	auth, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Profile(ctx, auth.Token)
	if err != nil {
		return nil, s.checkUnauthorized(ctx, err)
	}
	return resp, nil
}

// UpdateProfile меняет имя и/или пароль
func (s *Manager) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*pkgapi.UserResponse, error) {
	auth, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}

	var req pkgapi.UpdateProfileRequest
	var verrs validation.Errors
	if upd.Name != "" {
		name := validation.NormalizeName(upd.Name)
		verrs.Check("name", validation.ValidateName(name))
		req.Name = &name
	}
	if upd.Password != "" {
		verrs.Check("password", validation.ValidatePassword(upd.Password))
		req.Password = &upd.Password
	}
	if upd.CurrentPassword != "" {
		req.CurrentPassword = &upd.CurrentPassword
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.UpdateProfile(ctx, auth.Token, req)
	if err != nil {
		return nil, s.checkUnauthorized(ctx, err)
	}

	// имя в сессии используется командой status
	if resp.Name != auth.Name {
		auth.Name = resp.Name
		if err := s.store.SaveAuth(ctx, auth); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
	}
	return resp, nil
}

// checkUnauthorized сбрасывает сессию, если сервер больше не принимает токен.
// Неверный текущий пароль тоже дает 401, но токен при этом валиден.
func (s *Manager) checkUnauthorized(ctx context.Context, err error) error {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || !api.IsUnauthorized(err) || apiErr.Message != "not authenticated" {
		return err
	}
	if err := s.Invalidate(ctx); err != nil {
		return err
	}
	return ErrSessionExpired
}
