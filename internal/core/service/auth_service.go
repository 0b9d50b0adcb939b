package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ideadrop/content-api/internal/core/domain"
	"github.com/ideadrop/content-api/internal/core/ports"
	"github.com/ideadrop/content-api/internal/core/token"
)

// AuthService implements registration, login, and the stateless
// session-refresh flow.
type AuthService struct {
	repo        ports.UserRepository
	codec       *token.Codec
	passwordMin int
	logger      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, passwordMin int, logger zerolog.Logger) *AuthService {
	if passwordMin <= 0 {
		passwordMin = 3
	}
	return &AuthService{repo: repo, codec: codec, passwordMin: passwordMin, logger: logger}
}

// Register creates an account and issues both tokens. The email is
// normalized to lowercase; uniqueness is ultimately enforced by the store's
// unique index, the FindByEmail pre-check only makes the common case polite.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, ports.TokenPair, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	if name == "" || email == "" || password == "" {
		return nil, ports.TokenPair{}, domain.ErrInvalidInput
	}
	if len(password) < s.passwordMin {
		return nil, ports.TokenPair{}, domain.ErrPasswordTooShort
	}

	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, ports.TokenPair{}, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		ProfileImage: domain.DefaultProfileImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	pair, err := s.issuePair(created.ID)
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, pair, nil
}

// Login verifies credentials and issues both tokens. An unknown email and a
// wrong password produce the same error so callers cannot probe which
// addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, ports.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return nil, ports.TokenPair{}, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ports.TokenPair{}, domain.ErrInvalidCredentials
		}
		return nil, ports.TokenPair{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ports.TokenPair{}, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new access token. An expired
// refresh token has no recovery path; the client must log in again.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, *domain.User, error) {
	userID, err := s.codec.Verify(refreshToken)
	if err != nil {
		s.logger.Debug().Err(err).Msg("refresh token rejected")
		return "", nil, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidID) {
			return "", nil, domain.ErrUserNotFound
		}
		return "", nil, err
	}

	access, err := s.codec.IssueAccess(user.ID)
	if err != nil {
		return "", nil, err
	}
	return access, user, nil
}

// ListUsers returns every registered account.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *AuthService) issuePair(userID string) (ports.TokenPair, error) {
	access, err := s.codec.IssueAccess(userID)
	if err != nil {
		return ports.TokenPair{}, err
	}
	refresh, err := s.codec.IssueRefresh(userID)
	if err != nil {
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{Access: access, Refresh: refresh}, nil
}
