package moderation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// apply executes an approved record's mutation against the catalog.
// It runs inside the approval transaction and never retries.
func (s *Service) apply(ctx context.Context, rec *domain.ChangeRecord) error {
	switch rec.Kind {
	case domain.ChangeKindCreate:
		return s.applyCreate(ctx, rec)
	case domain.ChangeKindUpdate:
		return s.applyUpdate(ctx, rec)
	case domain.ChangeKindDelete:
		return s.applyDelete(ctx, rec)
	default:
		return fmt.Errorf("unknown change kind %q", rec.Kind)
	}
}

// applyCreate inserts a new movie. Identity and alias are assigned here, at
// insertion time; anything the contributor supplied for them is ignored.
func (s *Service) applyCreate(ctx context.Context, rec *domain.ChangeRecord) error {
	draft := rec.Proposed
	if draft == nil || draft.Title == nil {
		return fmt.Errorf("create record %s has no proposed title", rec.ID)
	}

	m := &domain.Movie{
		ID:        uuid.New(),
		Alias:     newAlias(),
		Title:     *draft.Title,
		Year:      draft.Year,
		Genres:    []string{},
		Links:     []domain.DownloadLink{},
		CreatedAt: time.Now().UTC(),
	}
	if draft.Director != nil {
		m.Director = *draft.Director
	}
	if draft.OriginalTitle != nil {
		m.OriginalTitle = *draft.OriginalTitle
	}
	if draft.Plot != nil {
		m.Plot = *draft.Plot
	}
	if draft.Notes != nil {
		m.Notes = *draft.Notes
	}
	if draft.Genres != nil {
		m.Genres = draft.Genres
	}
	if draft.Links != nil {
		m.Links = draft.Links
	}

	if _, err := s.movies.Create(ctx, m); err != nil {
		return fmt.Errorf("insert movie: %w", err)
	}
	return nil
}

// applyUpdate performs a field-level partial overwrite of the target.
func (s *Service) applyUpdate(ctx context.Context, rec *domain.ChangeRecord) error {
	if rec.TargetID == nil {
		return fmt.Errorf("update record %s has no target", rec.ID)
	}
	if _, err := s.movies.UpdateFields(ctx, *rec.TargetID, rec.Proposed); err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

// applyDelete removes the target. An already-absent target is success, so an
// approved delete never fails just because someone got there first.
func (s *Service) applyDelete(ctx context.Context, rec *domain.ChangeRecord) error {
	if rec.TargetID == nil {
		return fmt.Errorf("delete record %s has no target", rec.ID)
	}
	if _, err := s.movies.Delete(ctx, *rec.TargetID); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}

// newAlias generates a short random alias for a freshly created movie.
func newAlias() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return "m-" + hex.EncodeToString(b)
}
