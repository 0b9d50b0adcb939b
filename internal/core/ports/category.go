package ports

import (
	"context"

	"github.com/ideadrop/content-api/internal/core/domain"
)

type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, name, description string) (*domain.Category, error)
	// Update keeps the stored name/description when the given value is
	// shorter than the minimum length.
	Update(ctx context.Context, id, name, description string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	// UploadPhoto stores the image on the media host and records its URL.
	UploadPhoto(ctx context.Context, id, image string) (*domain.Category, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindAll(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
