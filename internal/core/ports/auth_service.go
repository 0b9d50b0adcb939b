package ports

import (
	"context"

	"github.com/ideadrop/content-api/internal/core/domain"
)

// TokenPair carries the two credentials minted on register/login. The access
// token is returned in the response body; the refresh token only ever
// travels in an httpOnly cookie set by the handler.
type TokenPair struct {
	Access  string
	Refresh string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, TokenPair, error)
	// Refresh exchanges a valid refresh token for a new access token. The
	// refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, *domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
