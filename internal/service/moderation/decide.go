package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// Decide resolves a pending change record with an approve or reject decision.
//
// The transition away from pending is a conditional UPDATE on status=pending,
// never a read-then-write: of any number of concurrent deciders exactly one
// wins, the rest get ErrAlreadyProcessed. On approve, the status flip and the
// applier mutation commit in one transaction, so an apply failure rolls the
// flip back and leaves the record pending and retryable.
func (s *Service) Decide(ctx context.Context, actor domain.Actor, id uuid.UUID, decision domain.Decision, note *string) (*domain.ChangeRecord, error) {
	if !actor.Role.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if !decision.IsValid() {
		return nil, domain.NewValidationError("decision", "must be approve or reject")
	}

	rec, err := s.changes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get change record: %w", err)
	}

	meta := domain.ReviewMeta{
		ReviewedBy: actor.Ref(),
		ReviewedAt: time.Now().UTC(),
		Note:       trimOrNil(note),
	}

	if decision == domain.DecisionReject {
		won, err := s.changes.CompareAndSetStatus(ctx, id, domain.ChangeStatusPending, domain.ChangeStatusRejected, meta)
		if err != nil {
			return nil, fmt.Errorf("reject change record: %w", err)
		}
		if !won {
			return nil, fmt.Errorf("change record %s: %w", id, domain.ErrAlreadyProcessed)
		}
	} else {
		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			won, err := s.changes.CompareAndSetStatus(ctx, id, domain.ChangeStatusPending, domain.ChangeStatusApproved, meta)
			if err != nil {
				return fmt.Errorf("approve change record: %w", err)
			}
			if !won {
				return fmt.Errorf("change record %s: %w", id, domain.ErrAlreadyProcessed)
			}
			if err := s.apply(ctx, rec); err != nil {
				return domain.NewApplyError(id, err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	s.log.InfoContext(ctx, "change record decided",
		slog.String("record_id", id.String()),
		slog.String("decision", string(decision)),
		slog.String("actor_id", actor.ID.String()),
	)

	s.fireInvalidation(ctx)

	decided, err := s.changes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload change record: %w", err)
	}

	return decided, nil
}
