package moderation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// BulkFailure reports one failed decision within a bulk call.
type BulkFailure struct {
	ID    uuid.UUID `json:"id"`
	Error string    `json:"error"`
}

// BulkResult aggregates the per-record outcomes of a bulk decision,
// preserving caller order within each list.
type BulkResult struct {
	Succeeded []uuid.UUID   `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

// BulkDecide applies the same decision to each record independently: one
// failure never blocks the rest, and each record gets its own transaction.
func (s *Service) BulkDecide(ctx context.Context, actor domain.Actor, ids []uuid.UUID, decision domain.Decision, note *string) (BulkResult, error) {
	if !actor.Role.IsAdmin() {
		return BulkResult{}, domain.ErrUnauthorized
	}

	result := BulkResult{
		Succeeded: []uuid.UUID{},
		Failed:    []BulkFailure{},
	}

	for _, id := range ids {
		if _, err := s.Decide(ctx, actor, id, decision, note); err != nil {
			result.Failed = append(result.Failed, BulkFailure{ID: id, Error: err.Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	s.log.InfoContext(ctx, "bulk decision finished",
		slog.String("decision", string(decision)),
		slog.Int("succeeded", len(result.Succeeded)),
		slog.Int("failed", len(result.Failed)),
	)

	return result, nil
}
