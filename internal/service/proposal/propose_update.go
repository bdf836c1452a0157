package proposal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// ProposeUpdate records a pending request to change an existing movie.
// The target's current state is frozen into the prior snapshot at call time,
// so reviewers diff against what the contributor actually saw.
func (s *Service) ProposeUpdate(ctx context.Context, actor domain.Actor, targetID uuid.UUID, input DraftInput) (*domain.ChangeRecord, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}

	if err := input.ValidateUpdate(s.cfg.MaxLinksPerItem); err != nil {
		return nil, err
	}

	target, err := s.movies.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("get target movie: %w", err)
	}

	rec, err := s.changes.Create(ctx, &domain.ChangeRecord{
		ID:          uuid.New(),
		Kind:        domain.ChangeKindUpdate,
		TargetID:    &targetID,
		Proposed:    input.toDraft(),
		Prior:       target,
		SubmittedBy: actor.Ref(),
		Status:      domain.ChangeStatusPending,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create change record: %w", err)
	}

	s.log.InfoContext(ctx, "update proposed",
		slog.String("record_id", rec.ID.String()),
		slog.String("target_id", targetID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return rec, nil
}
