package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
	"github.com/cineamore/cineamore-backend/internal/service/moderation"
)

type moderationService interface {
	Decide(ctx context.Context, actor domain.Actor, id uuid.UUID, decision domain.Decision, note *string) (*domain.ChangeRecord, error)
	BulkDecide(ctx context.Context, actor domain.Actor, ids []uuid.UUID, decision domain.Decision, note *string) (moderation.BulkResult, error)
	Discard(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

// ModerationHandler serves the admin-facing moderation endpoints.
type ModerationHandler struct {
	moderation moderationService
	log        *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(svc moderationService, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderation: svc,
		log:        logger.With("handler", "moderation"),
	}
}

type decideRequest struct {
	Decision domain.Decision `json:"decision"`
	Note     *string         `json:"note"`
}

type bulkDecideRequest struct {
	IDs      []uuid.UUID     `json:"ids"`
	Decision domain.Decision `json:"decision"`
	Note     *string         `json:"note"`
}

// Decide applies an approve/reject verdict to one pending record.
// POST /api/v1/moderation/{id}/decide
func (h *ModerationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req decideRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := h.moderation.Decide(r.Context(), actor, id, req.Decision, req.Note)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// BulkDecide applies one verdict to a batch of records. Per-record failures
// are reported in the response and never abort the batch.
// POST /api/v1/moderation/bulk
func (h *ModerationHandler) BulkDecide(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req bulkDecideRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "ids must not be empty")
		return
	}

	result, err := h.moderation.BulkDecide(r.Context(), actor, req.IDs, req.Decision, req.Note)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Discard permanently removes a pending record without a decision.
// DELETE /api/v1/moderation/{id}
func (h *ModerationHandler) Discard(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.moderation.Discard(r.Context(), actor, id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
