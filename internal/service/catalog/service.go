// Package catalog implements browsing and rating of the movie catalog, plus
// the admin-only direct mutations that bypass the moderation queue.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/config"
	"github.com/cineamore/cineamore-backend/internal/domain"
)

type catalogStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	GetByAlias(ctx context.Context, alias string) (*domain.Movie, error)
	Find(ctx context.Context, filter domain.MovieFilter) ([]*domain.Movie, int, error)
	Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error)
	UpdateFields(ctx context.Context, id uuid.UUID, draft *domain.MovieDraft) (*domain.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	AddRating(ctx context.Context, id uuid.UUID, stars int) (*domain.Movie, error)
}

// invalidator notifies the frontend cache after the catalog changed.
type invalidator interface {
	Invalidate(ctx context.Context) error
}

// Service provides catalog operations.
type Service struct {
	movies     catalogStore
	invalidate invalidator
	cfg        config.CatalogConfig
	log        *slog.Logger
}

// NewService creates a new Catalog service.
func NewService(
	log *slog.Logger,
	movies catalogStore,
	invalidate invalidator,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		movies:     movies,
		invalidate: invalidate,
		cfg:        cfg,
		log:        log.With("service", "catalog"),
	}
}

func (s *Service) fireInvalidation(ctx context.Context) {
	if s.invalidate == nil {
		return
	}
	if err := s.invalidate.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed", slog.String("error", err.Error()))
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
