package ports

import (
	"context"

	"github.com/ideadrop/content-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
// FindByEmail matches the normalized (lowercase) email exactly. Create must
// surface a uniqueness violation as domain.ErrUserExists — the store's
// unique index is the authority, the service-level existence check is only a
// friendly pre-check.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
}
