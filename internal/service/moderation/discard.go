package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// Discard hard-deletes a change record while it is still pending. This is the
// only hard delete in the workflow: decided records stay as the review trail.
func (s *Service) Discard(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if !actor.Role.IsAdmin() {
		return domain.ErrUnauthorized
	}

	found, deleted, err := s.changes.DeleteIfPending(ctx, id)
	if err != nil {
		return fmt.Errorf("discard change record: %w", err)
	}
	if !found {
		return fmt.Errorf("change record %s: %w", id, domain.ErrNotFound)
	}
	if !deleted {
		return fmt.Errorf("change record %s: %w", id, domain.ErrAlreadyProcessed)
	}

	s.log.InfoContext(ctx, "change record discarded",
		slog.String("record_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}
