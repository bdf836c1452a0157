// Package tmdb fetches movie metadata from the TMDB API to prefill proposal
// drafts. The client is read-only and sits above the proposal builder: a
// contributor asks for a prefill, edits it, then submits a proposal.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cineamore/cineamore-backend/internal/config"
	"github.com/cineamore/cineamore-backend/internal/domain"
)

// Client fetches movie metadata from the TMDB API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from TMDB config.
func NewClient(cfg config.TMDBConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "tmdb"),
	}
}

// SearchMovie searches TMDB by title (optionally pinned to a year) and maps
// the best match into a draft ready for editing.
// Returns nil, nil when nothing matches.
func (c *Client) SearchMovie(ctx context.Context, title string, year *int) (*domain.MovieDraft, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("query", title)
	if year != nil {
		q.Set("year", strconv.Itoa(*year))
	}
	reqURL := c.baseURL + "/search/movie?" + q.Encode()

	c.log.DebugContext(ctx, "tmdb search", slog.String("title", title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb: create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req, title)
	if err != nil {
		c.log.ErrorContext(ctx, "tmdb request failed", slog.String("title", title), slog.String("error", err.Error()))
		return nil, fmt.Errorf("tmdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tmdb: read body: %w", err)
	}

	var search apiSearchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("tmdb: decode json: %w", err)
	}

	if len(search.Results) == 0 {
		return nil, nil
	}

	draft := mapAPIMovie(search.Results[0])

	c.log.DebugContext(ctx, "tmdb response",
		slog.String("title", title),
		slog.Int("results", len(search.Results)),
	)

	return draft, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, title string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "tmdb retry", slog.String("title", title), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = c.httpClient.Do(req)
	return resp, err
}

// mapAPIMovie converts the first search hit into a sparse draft.
// Unknown genre IDs are dropped; an empty release date leaves Year unset.
func mapAPIMovie(m apiMovie) *domain.MovieDraft {
	draft := &domain.MovieDraft{}

	if m.Title != "" {
		t := m.Title
		draft.Title = &t
	}
	if m.OriginalTitle != "" && m.OriginalTitle != m.Title {
		ot := m.OriginalTitle
		draft.OriginalTitle = &ot
	}
	if m.Overview != "" {
		o := m.Overview
		draft.Plot = &o
	}
	if len(m.ReleaseDate) >= 4 {
		if year, err := strconv.Atoi(m.ReleaseDate[:4]); err == nil {
			draft.Year = &year
		}
	}

	var genres []string
	for _, id := range m.GenreIDs {
		if name, ok := genreNames[id]; ok {
			genres = append(genres, name)
		}
	}
	if genres != nil {
		draft.Genres = genres
	}

	return draft
}
