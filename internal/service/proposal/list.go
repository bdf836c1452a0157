package proposal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// List returns change records matching the filter plus the total match count.
// Contributors only ever see their own records; admins see any.
func (s *Service) List(ctx context.Context, actor domain.Actor, filter domain.ChangeFilter) ([]*domain.ChangeRecord, int, error) {
	if actor.IsZero() {
		return nil, 0, domain.ErrUnauthorized
	}

	if !actor.Role.IsAdmin() {
		filter.AuthorID = &actor.ID
	}

	if filter.Limit <= 0 {
		filter.Limit = s.cfg.DefaultPageSize
	}
	if filter.Limit > s.cfg.MaxPageSize {
		filter.Limit = s.cfg.MaxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	records, total, err := s.changes.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list change records: %w", err)
	}

	return records, total, nil
}

// Get returns a single change record. A contributor asking for someone else's
// record gets ErrNotFound, not ErrUnauthorized, so record IDs do not leak.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ChangeRecord, error) {
	if actor.IsZero() {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.changes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get change record: %w", err)
	}

	if !actor.Role.IsAdmin() && !rec.AuthoredBy(actor) {
		return nil, fmt.Errorf("change record %s: %w", id, domain.ErrNotFound)
	}

	return rec, nil
}
