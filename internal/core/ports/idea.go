package ports

import (
	"context"

	"github.com/ideadrop/content-api/internal/core/domain"
)

// CreateIdeaInput carries the user-supplied fields for a new idea. The owner
// is always the authenticated requester, never part of the payload.
type CreateIdeaInput struct {
	Title       string
	Summary     string
	Description string
	Tags        []string
}

// UpdateIdeaInput carries a partial update: empty strings and a nil Tags
// slice leave the stored values untouched.
type UpdateIdeaInput struct {
	Title       string
	Summary     string
	Description string
	Tags        []string
}

type IdeaService interface {
	Create(ctx context.Context, in CreateIdeaInput, ownerID string) (*domain.Idea, error)
	Get(ctx context.Context, id string) (*domain.Idea, error)
	// List returns the newest ideas first, capped at limit.
	List(ctx context.Context, limit int) ([]*domain.Idea, error)
	Update(ctx context.Context, id string, in UpdateIdeaInput, requesterID string) (*domain.Idea, error)
	Delete(ctx context.Context, id string, requesterID string) error
}

type IdeaRepository interface {
	Create(ctx context.Context, idea *domain.Idea) (*domain.Idea, error)
	FindByID(ctx context.Context, id string) (*domain.Idea, error)
	List(ctx context.Context, limit int) ([]*domain.Idea, error)
	Update(ctx context.Context, idea *domain.Idea) (*domain.Idea, error)
	Delete(ctx context.Context, id string) error
}
