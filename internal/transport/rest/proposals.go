package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
	"github.com/cineamore/cineamore-backend/internal/service/proposal"
)

type proposalService interface {
	ProposeCreate(ctx context.Context, actor domain.Actor, input proposal.DraftInput) (*domain.ChangeRecord, error)
	ProposeUpdate(ctx context.Context, actor domain.Actor, targetID uuid.UUID, input proposal.DraftInput) (*domain.ChangeRecord, error)
	ProposeDelete(ctx context.Context, actor domain.Actor, targetID uuid.UUID) (*domain.ChangeRecord, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ChangeFilter) ([]*domain.ChangeRecord, int, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.ChangeRecord, error)
}

// ProposalHandler serves the contributor-facing proposal endpoints.
type ProposalHandler struct {
	proposals proposalService
	log       *slog.Logger
}

// NewProposalHandler creates a ProposalHandler.
func NewProposalHandler(proposals proposalService, logger *slog.Logger) *ProposalHandler {
	return &ProposalHandler{
		proposals: proposals,
		log:       logger.With("handler", "proposals"),
	}
}

// draftRequest is the JSON body shared by create and update proposals.
// Links may come structured or as "label | url" lines.
type draftRequest struct {
	Title         *string               `json:"title"`
	Year          *int                  `json:"year"`
	Director      *string               `json:"director"`
	OriginalTitle *string               `json:"original_title"`
	Plot          *string               `json:"plot"`
	Notes         *string               `json:"notes"`
	Genres        []string              `json:"genres"`
	Links         []domain.DownloadLink `json:"links"`
	LinkLines     *string               `json:"link_lines"`
}

func (req draftRequest) toInput() proposal.DraftInput {
	input := proposal.DraftInput{
		Title:         req.Title,
		Year:          req.Year,
		Director:      req.Director,
		OriginalTitle: req.OriginalTitle,
		Plot:          req.Plot,
		Notes:         req.Notes,
		Genres:        req.Genres,
		Links:         req.Links,
	}
	if input.Links == nil && req.LinkLines != nil {
		input.Links = domain.ParseLinkLines(*req.LinkLines)
	}
	return input
}

// toDraft maps the request straight onto a sparse domain draft for the admin
// direct-mutation path, which normalizes on its own.
func (req draftRequest) toDraft() *domain.MovieDraft {
	draft := &domain.MovieDraft{
		Title:         req.Title,
		Year:          req.Year,
		Director:      req.Director,
		OriginalTitle: req.OriginalTitle,
		Plot:          req.Plot,
		Notes:         req.Notes,
		Genres:        req.Genres,
		Links:         req.Links,
	}
	if draft.Links == nil && req.LinkLines != nil {
		draft.Links = domain.ParseLinkLines(*req.LinkLines)
	}
	return draft
}

// changeListResponse is the paginated proposals listing.
type changeListResponse struct {
	Records []*domain.ChangeRecord `json:"records"`
	Total   int                    `json:"total"`
}

// Create submits a create proposal.
// POST /api/v1/proposals
func (h *ProposalHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req draftRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := h.proposals.ProposeCreate(r.Context(), actor, req.toInput())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// Update submits an update proposal against an existing movie.
// POST /api/v1/movies/{id}/proposals
func (h *ProposalHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	targetID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req draftRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := h.proposals.ProposeUpdate(r.Context(), actor, targetID, req.toInput())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// Delete submits a delete proposal against an existing movie.
// POST /api/v1/movies/{id}/proposals/delete
func (h *ProposalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	targetID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.proposals.ProposeDelete(r.Context(), actor, targetID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// List returns proposals visible to the caller.
// GET /api/v1/proposals?status=pending&author_id=&limit=50&offset=0
func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	filter := domain.ChangeFilter{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	if v := strings.TrimSpace(r.URL.Query().Get("status")); v != "" {
		status := domain.ChangeStatus(v)
		if !status.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		filter.Status = &status
	}
	if v := r.URL.Query().Get("author_id"); v != "" {
		authorID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid author_id")
			return
		}
		filter.AuthorID = &authorID
	}

	records, total, err := h.proposals.List(r.Context(), actor, filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, changeListResponse{Records: records, Total: total})
}

// Get returns one proposal with its field diff for review.
// GET /api/v1/proposals/{id}
func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.proposals.Get(r.Context(), actor, id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := struct {
		*domain.ChangeRecord
		Diff []domain.FieldDiff `json:"diff,omitempty"`
	}{ChangeRecord: rec}
	if rec.Prior != nil && rec.Proposed != nil {
		resp.Diff = domain.DiffFields(rec.Prior, rec.Proposed)
	}

	writeJSON(w, http.StatusOK, resp)
}
