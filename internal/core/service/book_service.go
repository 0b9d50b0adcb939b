package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ideadrop/content-api/internal/core/domain"
	"github.com/ideadrop/content-api/internal/core/ports"
)

const bookMediaFolder = "books"

// BookService implements book creation and listing. Cover images arrive as
// base64 payloads from mobile clients and are pushed to the media host.
type BookService struct {
	repo   ports.BookRepository
	media  ports.MediaStore
	logger zerolog.Logger
}

func NewBookService(repo ports.BookRepository, media ports.MediaStore, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, media: media, logger: logger}
}

func (s *BookService) Create(ctx context.Context, in ports.CreateBookInput) (*domain.Book, error) {
	name := strings.TrimSpace(in.Name)
	caption := strings.TrimSpace(in.Caption)
	author := strings.TrimSpace(in.Author)
	if name == "" || caption == "" || author == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	image := domain.DefaultBookImage
	if in.Image != "" {
		url, err := resolveImage(ctx, s.media, bookMediaFolder, in.Image)
		if err != nil {
			return nil, fmt.Errorf("image upload failed: %w", err)
		}
		image = url
	}

	now := time.Now().UTC()
	book := &domain.Book{
		Name:        name,
		Caption:     caption,
		Author:      author,
		Rating:      in.Rating,
		Image:       image,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("book_id", created.ID).Str("name", name).Msg("book created")
	return created, nil
}

func (s *BookService) List(ctx context.Context) ([]*domain.Book, error) {
	return s.repo.FindAll(ctx)
}
