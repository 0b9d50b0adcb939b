package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ideadrop/content-api/internal/core/domain"
	"github.com/ideadrop/content-api/internal/core/ports"
)

// ProductService implements catalog CRUD.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := productFromInput(in)
	product.CreatedAt = now
	product.UpdatedAt = now

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// Update replaces the stored document with the given input, keeping the
// original creation time.
func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	product := productFromInput(in)
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return product, nil
}

func validateProduct(in ports.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Brand) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		len(in.Categories) == 0 {
		return domain.ErrInvalidInput
	}
	if in.Price <= 0 {
		return domain.ErrInvalidPrice
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

func productFromInput(in ports.ProductInput) *domain.Product {
	images := in.Images
	if images == nil {
		images = []string{}
	}
	return &domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Images:      images,
		Categories:  in.Categories,
		SubCategory: strings.TrimSpace(in.SubCategory),
		Brand:       strings.TrimSpace(in.Brand),
		Color:       strings.TrimSpace(in.Color),
		Size:        strings.TrimSpace(in.Size),
		Quantity:    in.Quantity,
		Description: strings.TrimSpace(in.Description),
	}
}
