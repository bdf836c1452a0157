// Package proposal implements the proposal builder: contributors describe a
// catalog mutation and the service persists it as a pending change record.
// It never touches the catalog itself.
package proposal

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/config"
	"github.com/cineamore/cineamore-backend/internal/domain"
)

type catalogStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
}

type changeStore interface {
	Create(ctx context.Context, rec *domain.ChangeRecord) (*domain.ChangeRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ChangeRecord, error)
	List(ctx context.Context, filter domain.ChangeFilter) ([]*domain.ChangeRecord, int, error)
}

// Service provides proposal building operations.
type Service struct {
	movies  catalogStore
	changes changeStore
	cfg     config.CatalogConfig
	log     *slog.Logger
}

// NewService creates a new Proposal service.
func NewService(
	log *slog.Logger,
	movies catalogStore,
	changes changeStore,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		movies:  movies,
		changes: changes,
		cfg:     cfg,
		log:     log.With("service", "proposal"),
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
