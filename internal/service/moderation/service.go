// Package moderation implements the moderation engine and its applier:
// admins decide pending change records, and approved records are executed
// against the catalog in the same transaction as the status flip.
package moderation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

type catalogStore interface {
	Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error)
	UpdateFields(ctx context.Context, id uuid.UUID, draft *domain.MovieDraft) (*domain.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type changeStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ChangeRecord, error)
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, expected, next domain.ChangeStatus, meta domain.ReviewMeta) (bool, error)
	DeleteIfPending(ctx context.Context, id uuid.UUID) (found bool, deleted bool, err error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// invalidator notifies the frontend cache after the catalog changed.
// Failures are logged, never surfaced: invalidation is best-effort.
type invalidator interface {
	Invalidate(ctx context.Context) error
}

// Service provides moderation operations.
type Service struct {
	movies     catalogStore
	changes    changeStore
	tx         txManager
	invalidate invalidator
	log        *slog.Logger
}

// NewService creates a new Moderation service.
func NewService(
	log *slog.Logger,
	movies catalogStore,
	changes changeStore,
	tx txManager,
	invalidate invalidator,
) *Service {
	return &Service{
		movies:     movies,
		changes:    changes,
		tx:         tx,
		invalidate: invalidate,
		log:        log.With("service", "moderation"),
	}
}

// fireInvalidation runs the cache invalidation hook, logging failures only.
func (s *Service) fireInvalidation(ctx context.Context) {
	if s.invalidate == nil {
		return
	}
	if err := s.invalidate.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed", slog.String("error", err.Error()))
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
