package proposal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// ProposeDelete records a pending request to remove a movie from the catalog.
// The proposed payload carries only the identifying subset (title/year/director);
// the full state is frozen into the prior snapshot for review.
func (s *Service) ProposeDelete(ctx context.Context, actor domain.Actor, targetID uuid.UUID) (*domain.ChangeRecord, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}

	target, err := s.movies.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("get target movie: %w", err)
	}

	rec, err := s.changes.Create(ctx, &domain.ChangeRecord{
		ID:          uuid.New(),
		Kind:        domain.ChangeKindDelete,
		TargetID:    &targetID,
		Proposed:    domain.DeleteSummary(target),
		Prior:       target,
		SubmittedBy: actor.Ref(),
		Status:      domain.ChangeStatusPending,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create change record: %w", err)
	}

	s.log.InfoContext(ctx, "delete proposed",
		slog.String("record_id", rec.ID.String()),
		slog.String("target_id", targetID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return rec, nil
}
