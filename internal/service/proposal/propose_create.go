package proposal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// ProposeCreate records a pending request to add a new movie to the catalog.
// Any identity the contributor might supply is ignored: the applier assigns a
// fresh ID and alias at insertion time.
func (s *Service) ProposeCreate(ctx context.Context, actor domain.Actor, input DraftInput) (*domain.ChangeRecord, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}

	if err := input.ValidateCreate(s.cfg.MaxLinksPerItem); err != nil {
		return nil, err
	}

	rec, err := s.changes.Create(ctx, &domain.ChangeRecord{
		ID:          uuid.New(),
		Kind:        domain.ChangeKindCreate,
		Proposed:    input.toDraft(),
		SubmittedBy: actor.Ref(),
		Status:      domain.ChangeStatusPending,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create change record: %w", err)
	}

	s.log.InfoContext(ctx, "create proposed",
		slog.String("record_id", rec.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return rec, nil
}
