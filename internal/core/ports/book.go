package ports

import (
	"context"

	"github.com/ideadrop/content-api/internal/core/domain"
)

// CreateBookInput carries the fields for a new book. Image may be empty, an
// http(s) URL (stored as-is), or a base64 data URI (uploaded to the media
// host and replaced with the hosted URL).
type CreateBookInput struct {
	Name    string
	Caption string
	Author  string
	Rating  int
	Image   string
}

type BookService interface {
	Create(ctx context.Context, in CreateBookInput) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindAll(ctx context.Context) ([]*domain.Book, error)
}
