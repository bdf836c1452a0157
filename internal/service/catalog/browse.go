package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// Find returns movies matching the filter plus the total match count.
// Browsing is public: no actor required.
func (s *Service) Find(ctx context.Context, filter domain.MovieFilter) ([]*domain.Movie, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = s.cfg.DefaultPageSize
	}
	if filter.Limit > s.cfg.MaxPageSize {
		filter.Limit = s.cfg.MaxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Genre = strings.TrimSpace(filter.Genre)

	movies, total, err := s.movies.Find(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("find movies: %w", err)
	}

	return movies, total, nil
}

// GetByID returns a single movie by primary key.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return m, nil
}

// GetByAlias returns a single movie by its human-stable alias.
func (s *Service) GetByAlias(ctx context.Context, alias string) (*domain.Movie, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return nil, domain.NewValidationError("alias", "required")
	}

	m, err := s.movies.GetByAlias(ctx, alias)
	if err != nil {
		return nil, fmt.Errorf("get movie by alias: %w", err)
	}
	return m, nil
}
