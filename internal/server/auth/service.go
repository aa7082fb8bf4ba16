// Package auth implements registration, login, session verification and
// profile management on top of the credential store and the token service.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/iudanet/taskmanager/internal/crypto"
	"github.com/iudanet/taskmanager/internal/models"
	"github.com/iudanet/taskmanager/internal/server/storage"
	"github.com/iudanet/taskmanager/internal/server/token"
	"github.com/iudanet/taskmanager/internal/validation"
)

// TokenService mints and verifies session tokens
type TokenService interface {
	Issue(userID string) (string, time.Time, error)
	Verify(tokenString string) (*token.Claims, error)
}

// Config holds tunables of the auth service
type Config struct {
	BcryptCost             int
	RequireCurrentPassword bool
}

// Service implements the registration/login flow and the Auth Gate check
type Service struct {
	users       storage.UserStorage
	revocations storage.RevocationStorage
	tokens      TokenService
	logger      *slog.Logger
	tracer      trace.Tracer
	now         func() time.Time
	dummyHash   string
	cfg         Config
}

// NewService создает сервис аутентификации
func NewService(
	users storage.UserStorage,
	revocations storage.RevocationStorage,
	tokens TokenService,
	cfg Config,
	logger *slog.Logger,
) (*Service, error) {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = crypto.DefaultCost
	}

	// Фиктивный хеш той же стоимости, что и хеши пользователей
	dummyHash, err := crypto.NewDummyHash(cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &Service{
		users:       users,
		revocations: revocations,
		tokens:      tokens,
		cfg:         cfg,
		logger:      logger,
		tracer:      otel.Tracer("github.com/iudanet/taskmanager/internal/server/auth"),
		now:         time.Now,
		dummyHash:   dummyHash,
	}, nil
}

// RegisterInput is the registration form
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput is the login form
type LoginInput struct {
	Email    string
	Password string
}

// ProfileUpdate carries optional profile changes; nil or empty fields are left as is
type ProfileUpdate struct {
	Name            *string
	Password        *string
	CurrentPassword *string
}

// Session is the result of a successful register or login
type Session struct {
	ExpiresAt time.Time
	User      *models.User
	Token     string
}

// Register validates the form, stores a new identity and issues a token
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Register")
	defer span.End()

	name := validation.NormalizeName(in.Name)
	email := validation.NormalizeEmail(in.Email)

	var errs validation.Errors
	errs.Check("name", validation.ValidateName(name))
	errs.Check("email", validation.ValidateEmail(email))
	errs.Check("password", validation.ValidatePassword(in.Password))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	hash, err := crypto.HashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, s.fail(span, fmt.Errorf("hash password: %w", err))
	}

	now := s.now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, s.fail(span, fmt.Errorf("create user: %w", err))
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	s.logger.InfoContext(ctx, "User registered", slog.String("user_id", user.ID))

	return s.issue(ctx, span, user)
}

// Login checks credentials and issues a token.
// Unknown email and wrong password of any length produce the same
// ErrInvalidCredentials after the same amount of bcrypt work.
func (s *Service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Login")
	defer span.End()

	email := validation.NormalizeEmail(in.Email)

	var errs validation.Errors
	errs.Check("email", validation.ValidateEmail(email))
	errs.Check("password", validation.ValidateLoginPassword(in.Password))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			crypto.BurnCompare(s.dummyHash, in.Password)
			s.logger.WarnContext(ctx, "Login failed")
			return nil, ErrInvalidCredentials
		}
		return nil, s.fail(span, fmt.Errorf("get user: %w", err))
	}

	if err := crypto.VerifyPassword(in.Password, user.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrMismatch) {
			s.logger.WarnContext(ctx, "Login failed")
			return nil, ErrInvalidCredentials
		}
		return nil, s.fail(span, fmt.Errorf("verify password: %w", err))
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	s.logger.InfoContext(ctx, "User logged in", slog.String("user_id", user.ID))

	return s.issue(ctx, span, user)
}

func (s *Service) issue(ctx context.Context, span trace.Span, user *models.User) (*Session, error) {
	tok, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, s.fail(span, fmt.Errorf("issue token: %w", err))
	}

	return &Session{Token: tok, ExpiresAt: expiresAt, User: user}, nil
}

// Authenticate resolves a bearer token to a live identity.
// Every failure is reported as ErrUnauthenticated; the cause is only logged.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*models.User, *token.Claims, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Authenticate")
	defer span.End()

	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		s.logger.DebugContext(ctx, "Token rejected", slog.Any("error", err))
		return nil, nil, ErrUnauthenticated
	}

	if s.revocations != nil {
		revoked, err := s.revocations.IsTokenRevoked(ctx, claims.TokenID())
		if err != nil {
			return nil, nil, s.fail(span, fmt.Errorf("check revocation: %w", err))
		}
		if revoked {
			s.logger.DebugContext(ctx, "Revoked token used", slog.String("user_id", claims.UserID))
			return nil, nil, ErrUnauthenticated
		}
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.WarnContext(ctx, "Token of unknown user", slog.String("user_id", claims.UserID))
			return nil, nil, ErrUnauthenticated
		}
		return nil, nil, s.fail(span, fmt.Errorf("get user: %w", err))
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	return user, claims, nil
}

// Logout revokes the token until its natural expiry
func (s *Service) Logout(ctx context.Context, claims *token.Claims) error {
	ctx, span := s.tracer.Start(ctx, "auth.Logout")
	defer span.End()

	if claims == nil {
		return ErrUnauthenticated
	}
	if s.revocations == nil {
		return nil
	}

	err := s.revocations.RevokeToken(ctx, &models.RevokedToken{
		TokenID:   claims.TokenID(),
		UserID:    claims.UserID,
		ExpiresAt: claims.Expiry(),
		RevokedAt: s.now().UTC(),
	})
	if err != nil {
		return s.fail(span, fmt.Errorf("revoke token: %w", err))
	}

	s.logger.InfoContext(ctx, "User logged out", slog.String("user_id", claims.UserID))
	return nil
}

// UpdateProfile changes name and/or password of the user.
// When RequireCurrentPassword is set a password change must carry the current password.
func (s *Service) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error) {
	ctx, span := s.tracer.Start(ctx, "auth.UpdateProfile")
	defer span.End()

	var (
		errs     validation.Errors
		name     string
		password string
	)

	if upd.Name != nil {
		name = validation.NormalizeName(*upd.Name)
		if name != "" {
			errs.Check("name", validation.ValidateName(name))
		}
	}
	if upd.Password != nil && *upd.Password != "" {
		password = *upd.Password
		errs.Check("password", validation.ValidatePassword(password))
		if s.cfg.RequireCurrentPassword && (upd.CurrentPassword == nil || *upd.CurrentPassword == "") {
			errs.Add("current_password", "Current password is required")
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, s.fail(span, fmt.Errorf("get user: %w", err))
	}

	if name == "" && password == "" {
		return user, nil
	}

	if password != "" {
		if s.cfg.RequireCurrentPassword {
			if err := crypto.VerifyPassword(*upd.CurrentPassword, user.PasswordHash); err != nil {
				if errors.Is(err, crypto.ErrMismatch) {
					return nil, ErrInvalidCredentials
				}
				return nil, s.fail(span, fmt.Errorf("verify password: %w", err))
			}
		}

		hash, err := crypto.HashPassword(password, s.cfg.BcryptCost)
		if err != nil {
			return nil, s.fail(span, fmt.Errorf("hash password: %w", err))
		}
		user.PasswordHash = hash
	}
	if name != "" {
		user.Name = name
	}
	user.UpdatedAt = s.now().UTC()

	if err := s.users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, s.fail(span, fmt.Errorf("update user: %w", err))
	}

	s.logger.InfoContext(ctx, "Profile updated",
		slog.String("user_id", user.ID),
		slog.Bool("password_changed", password != ""),
	)

	return user, nil
}

// fail records err on the span and returns it
func (s *Service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
