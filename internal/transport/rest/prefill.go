package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

type prefillProvider interface {
	SearchMovie(ctx context.Context, title string, year *int) (*domain.MovieDraft, error)
}

// PrefillHandler looks up an external movie database to pre-populate the
// proposal form. The provider may be nil when prefill is not configured.
type PrefillHandler struct {
	provider prefillProvider
	log      *slog.Logger
}

// NewPrefillHandler creates a PrefillHandler.
func NewPrefillHandler(provider prefillProvider, logger *slog.Logger) *PrefillHandler {
	return &PrefillHandler{
		provider: provider,
		log:      logger.With("handler", "prefill"),
	}
}

// Prefill returns a draft assembled from the best external match.
// GET /api/v1/prefill?title=...&year=...
func (h *PrefillHandler) Prefill(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, r); !ok {
		return
	}
	if h.provider == nil {
		writeError(w, http.StatusServiceUnavailable, "prefill is not configured")
		return
	}

	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	var year *int
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = &y
	}

	draft, err := h.provider.SearchMovie(r.Context(), title, year)
	if err != nil {
		h.log.ErrorContext(r.Context(), "prefill lookup failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "prefill lookup failed")
		return
	}
	if draft == nil {
		writeError(w, http.StatusNotFound, "no match found")
		return
	}

	writeJSON(w, http.StatusOK, draft)
}
