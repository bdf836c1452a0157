package catalog

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// Admin mutations bypass the moderation queue entirely. They carry the same
// normalization as the proposal path so the catalog never sees raw input.

// AdminCreate inserts a movie directly. ErrUnauthorized for non-admins.
func (s *Service) AdminCreate(ctx context.Context, actor domain.Actor, draft *domain.MovieDraft) (*domain.Movie, error) {
	if !actor.Role.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if draft == nil || draft.Title == nil || strings.TrimSpace(*draft.Title) == "" {
		return nil, domain.NewValidationError("title", "required")
	}

	m := &domain.Movie{
		ID:        uuid.New(),
		Alias:     newAlias(),
		Title:     strings.TrimSpace(*draft.Title),
		Year:      draft.Year,
		Genres:    []string{},
		Links:     []domain.DownloadLink{},
		CreatedAt: time.Now().UTC(),
	}
	if v := trimOrNil(draft.Director); v != nil {
		m.Director = *v
	}
	if v := trimOrNil(draft.OriginalTitle); v != nil {
		m.OriginalTitle = *v
	}
	if v := trimOrNil(draft.Plot); v != nil {
		m.Plot = *v
	}
	if v := trimOrNil(draft.Notes); v != nil {
		m.Notes = *v
	}
	if draft.Genres != nil {
		m.Genres = domain.NormalizeGenres(draft.Genres)
	}
	if draft.Links != nil {
		m.Links = draft.Links
	}

	created, err := s.movies.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.InfoContext(ctx, "movie created directly",
		slog.String("movie_id", created.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	s.fireInvalidation(ctx)

	return created, nil
}

// AdminUpdate applies a sparse draft directly to the target movie.
func (s *Service) AdminUpdate(ctx context.Context, actor domain.Actor, id uuid.UUID, draft *domain.MovieDraft) (*domain.Movie, error) {
	if !actor.Role.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if draft == nil || draft.IsEmpty() {
		return nil, domain.NewValidationError("draft", "at least one field required")
	}
	if draft.Title != nil && strings.TrimSpace(*draft.Title) == "" {
		return nil, domain.NewValidationError("title", "must not be blank")
	}
	if draft.Genres != nil {
		draft.Genres = domain.NormalizeGenres(draft.Genres)
	}

	updated, err := s.movies.UpdateFields(ctx, id, draft)
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.InfoContext(ctx, "movie updated directly",
		slog.String("movie_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	s.fireInvalidation(ctx)

	return updated, nil
}

// AdminDelete removes a movie directly. ErrNotFound when already absent: a
// direct delete, unlike an applied one, reports a missing target.
func (s *Service) AdminDelete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if !actor.Role.IsAdmin() {
		return domain.ErrUnauthorized
	}

	deleted, err := s.movies.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if !deleted {
		return fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "movie deleted directly",
		slog.String("movie_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	s.fireInvalidation(ctx)

	return nil
}

// newAlias generates a short random alias for a freshly created movie.
func newAlias() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return "m-" + hex.EncodeToString(b)
}
