package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// Rate folds one star vote (1..5) into the movie's aggregate rating.
func (s *Service) Rate(ctx context.Context, movieID uuid.UUID, stars int) (*domain.Movie, error) {
	if stars < 1 || stars > 5 {
		return nil, domain.NewValidationError("stars", "must be between 1 and 5")
	}

	m, err := s.movies.AddRating(ctx, movieID, stars)
	if err != nil {
		return nil, fmt.Errorf("rate movie: %w", err)
	}

	s.log.InfoContext(ctx, "movie rated",
		slog.String("movie_id", movieID.String()),
		slog.Int("stars", stars),
	)

	return m, nil
}
