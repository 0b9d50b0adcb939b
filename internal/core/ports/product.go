package ports

import (
	"context"

	"github.com/ideadrop/content-api/internal/core/domain"
)

// ProductInput carries the full set of product fields; create and update
// share it (the source replaces the whole document on update).
type ProductInput struct {
	Name        string
	Price       float64
	Images      []string
	Categories  []string
	SubCategory string
	Brand       string
	Color       string
	Size        string
	Quantity    int
	Description string
}

type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
