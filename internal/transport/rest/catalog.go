package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

type catalogService interface {
	Find(ctx context.Context, filter domain.MovieFilter) ([]*domain.Movie, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	GetByAlias(ctx context.Context, alias string) (*domain.Movie, error)
	Rate(ctx context.Context, movieID uuid.UUID, stars int) (*domain.Movie, error)
	AdminCreate(ctx context.Context, actor domain.Actor, draft *domain.MovieDraft) (*domain.Movie, error)
	AdminUpdate(ctx context.Context, actor domain.Actor, id uuid.UUID, draft *domain.MovieDraft) (*domain.Movie, error)
	AdminDelete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

// CatalogHandler serves the public browse endpoints and the admin
// direct-mutation endpoints.
type CatalogHandler struct {
	catalog catalogService
	log     *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		log:     logger.With("handler", "catalog"),
	}
}

type movieListResponse struct {
	Movies []*domain.Movie `json:"movies"`
	Total  int             `json:"total"`
}

type rateRequest struct {
	Stars int `json:"stars"`
}

// Find lists catalog entries with optional search, genre and year filters.
// GET /api/v1/movies?query=&genre=&year=&limit=&offset=
func (h *CatalogHandler) Find(w http.ResponseWriter, r *http.Request) {
	filter := domain.MovieFilter{
		Query:  r.URL.Query().Get("query"),
		Genre:  r.URL.Query().Get("genre"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		filter.Year = &year
	}

	movies, total, err := h.catalog.Find(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, movieListResponse{Movies: movies, Total: total})
}

// GetByID returns one movie.
// GET /api/v1/movies/{id}
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	m, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// GetByAlias returns one movie by its short public alias.
// GET /api/v1/movies/alias/{alias}
func (h *CatalogHandler) GetByAlias(w http.ResponseWriter, r *http.Request) {
	alias := strings.TrimSpace(r.PathValue("alias"))

	m, err := h.catalog.GetByAlias(r.Context(), alias)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// Rate records an anonymous 1-5 star rating.
// POST /api/v1/movies/{id}/rate
func (h *CatalogHandler) Rate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req rateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	m, err := h.catalog.Rate(r.Context(), id, req.Stars)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// AdminCreate creates a movie directly, bypassing moderation.
// POST /api/v1/admin/movies
func (h *CatalogHandler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req draftRequest
	if !decodeBody(w, r, &req) {
		return
	}

	m, err := h.catalog.AdminCreate(r.Context(), actor, req.toDraft())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

// AdminUpdate patches a movie directly, bypassing moderation.
// PATCH /api/v1/admin/movies/{id}
func (h *CatalogHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req draftRequest
	if !decodeBody(w, r, &req) {
		return
	}

	m, err := h.catalog.AdminUpdate(r.Context(), actor, id, req.toDraft())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// AdminDelete removes a movie directly, bypassing moderation.
// DELETE /api/v1/admin/movies/{id}
func (h *CatalogHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.catalog.AdminDelete(r.Context(), actor, id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
