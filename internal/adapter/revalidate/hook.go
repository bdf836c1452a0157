// Package revalidate implements the frontend cache invalidation hook: after
// the catalog changes, a single POST tells the frontend to rebuild its views.
// The call is best-effort; callers log failures and move on.
package revalidate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cineamore/cineamore-backend/internal/config"
)

// Hook posts cache invalidation requests to the configured frontend endpoint.
type Hook struct {
	url        string
	secret     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewHook creates a Hook from revalidation config.
func NewHook(cfg config.RevalidateConfig, logger *slog.Logger) *Hook {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Hook{
		url:        cfg.URL,
		secret:     cfg.Secret,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "revalidate"),
	}
}

// Invalidate asks the frontend to drop its cached catalog views.
// A Hook with no URL configured is a no-op.
func (h *Hook) Invalidate(ctx context.Context) error {
	if h.url == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, nil)
	if err != nil {
		return fmt.Errorf("revalidate: create request: %w", err)
	}
	req.Header.Set("X-Revalidate-Secret", h.secret)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("revalidate: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("revalidate: unexpected status %d", resp.StatusCode)
	}

	h.log.DebugContext(ctx, "cache invalidated")
	return nil
}
