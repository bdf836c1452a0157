package rest

import (
	"log/slog"
	"net/http"

	"github.com/cineamore/cineamore-backend/internal/config"
	"github.com/cineamore/cineamore-backend/internal/domain"
	"github.com/cineamore/cineamore-backend/internal/transport/middleware"
)

// Handlers bundles the handler groups the router mounts. Prefill may be nil
// when the external metadata provider is not configured.
type Handlers struct {
	Health     *HealthHandler
	Catalog    *CatalogHandler
	Proposals  *ProposalHandler
	Moderation *ModerationHandler
	Prefill    *PrefillHandler
}

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Actor, error)
}

// NewRouter assembles the HTTP routing table and wraps it with the shared
// middleware stack.
func NewRouter(h Handlers, validator tokenValidator, cfg config.CORSConfig, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Public catalog.
	mux.HandleFunc("GET /api/v1/movies", h.Catalog.Find)
	mux.HandleFunc("GET /api/v1/movies/{id}", h.Catalog.GetByID)
	mux.HandleFunc("GET /api/v1/movies/alias/{alias}", h.Catalog.GetByAlias)
	mux.HandleFunc("POST /api/v1/movies/{id}/rate", h.Catalog.Rate)

	// Contributor proposals.
	mux.HandleFunc("POST /api/v1/proposals", h.Proposals.Create)
	mux.HandleFunc("GET /api/v1/proposals", h.Proposals.List)
	mux.HandleFunc("GET /api/v1/proposals/{id}", h.Proposals.Get)
	mux.HandleFunc("POST /api/v1/movies/{id}/proposals", h.Proposals.Update)
	mux.HandleFunc("POST /api/v1/movies/{id}/proposals/delete", h.Proposals.Delete)

	// Admin moderation.
	mux.HandleFunc("POST /api/v1/moderation/{id}/decide", h.Moderation.Decide)
	mux.HandleFunc("POST /api/v1/moderation/bulk", h.Moderation.BulkDecide)
	mux.HandleFunc("DELETE /api/v1/moderation/{id}", h.Moderation.Discard)

	// Admin direct catalog mutations.
	mux.HandleFunc("POST /api/v1/admin/movies", h.Catalog.AdminCreate)
	mux.HandleFunc("PATCH /api/v1/admin/movies/{id}", h.Catalog.AdminUpdate)
	mux.HandleFunc("DELETE /api/v1/admin/movies/{id}", h.Catalog.AdminDelete)

	if h.Prefill != nil {
		mux.HandleFunc("GET /api/v1/prefill", h.Prefill.Prefill)
	}

	// Logger sits innermost so the request log carries the authenticated
	// actor; Recovery stays outside it to catch handler panics either way.
	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg),
		middleware.Auth(validator),
		middleware.Logger(logger),
	)(mux)
}
