package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ideadrop/content-api/internal/core/domain"
	"github.com/ideadrop/content-api/internal/core/ports"
)

const (
	categoryMediaFolder = "categories"
	categoryMinLen      = 3
)

// CategoryService implements category CRUD and photo upload. Names are
// stored lowercase; uniqueness is enforced by the repository's index.
type CategoryService struct {
	repo   ports.CategoryRepository
	media  ports.MediaStore
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, media ports.MediaStore, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, media: media, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	category := &domain.Category{
		Name:        name,
		Slug:        slugify(name),
		Description: description,
		Image:       domain.DefaultCategoryImage,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", created.ID).Str("name", name).Msg("category created")
	return created, nil
}

// Update replaces name/description only when the supplied value exceeds the
// minimum length; otherwise the stored value stays.
func (s *CategoryService) Update(ctx context.Context, id, name, description string) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := strings.ToLower(strings.TrimSpace(name)); len(v) > categoryMinLen {
		category.Name = v
		category.Slug = slugify(v)
	}
	if v := strings.TrimSpace(description); len(v) > categoryMinLen {
		category.Description = v
	}
	category.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *CategoryService) UploadPhoto(ctx context.Context, id, image string) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := resolveImage(ctx, s.media, categoryMediaFolder, image)
	if err != nil {
		return nil, err
	}

	category.Image = url
	category.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, category)
}

// slugify derives a URL-safe slug from a category name.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
