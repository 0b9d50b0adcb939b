package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ideadrop/content-api/internal/core/domain"
	"github.com/ideadrop/content-api/internal/core/ports"
)

const defaultIdeaLimit = 10

// IdeaService implements CRUD over ideas with ownership enforcement on
// update and delete.
type IdeaService struct {
	repo   ports.IdeaRepository
	logger zerolog.Logger
}

func NewIdeaService(repo ports.IdeaRepository, logger zerolog.Logger) *IdeaService {
	return &IdeaService{repo: repo, logger: logger}
}

func (s *IdeaService) Create(ctx context.Context, in ports.CreateIdeaInput, ownerID string) (*domain.Idea, error) {
	title := strings.TrimSpace(in.Title)
	summary := strings.TrimSpace(in.Summary)
	description := strings.TrimSpace(in.Description)
	if title == "" || summary == "" || description == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	idea := &domain.Idea{
		Title:       title,
		Summary:     summary,
		Description: description,
		Tags:        normalizeTags(in.Tags),
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, idea)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("idea_id", created.ID).Str("user_id", ownerID).Msg("idea created")
	return created, nil
}

func (s *IdeaService) Get(ctx context.Context, id string) (*domain.Idea, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *IdeaService) List(ctx context.Context, limit int) ([]*domain.Idea, error) {
	if limit <= 0 {
		limit = defaultIdeaLimit
	}
	return s.repo.List(ctx, limit)
}

// Update applies a partial update after the ownership check. Empty fields
// keep the stored values.
func (s *IdeaService) Update(ctx context.Context, id string, in ports.UpdateIdeaInput, requesterID string) (*domain.Idea, error) {
	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(idea.UserID, requesterID); err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(in.Title); v != "" {
		idea.Title = v
	}
	if v := strings.TrimSpace(in.Summary); v != "" {
		idea.Summary = v
	}
	if v := strings.TrimSpace(in.Description); v != "" {
		idea.Description = v
	}
	if in.Tags != nil {
		idea.Tags = normalizeTags(in.Tags)
	}
	idea.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, idea)
}

func (s *IdeaService) Delete(ctx context.Context, id string, requesterID string) error {
	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(idea.UserID, requesterID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("idea_id", id).Str("user_id", requesterID).Msg("idea deleted")
	return nil
}

// normalizeTags trims entries and drops empties, never returning nil so the
// JSON encoding stays [] rather than null.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
