package tmdb

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cineamore/cineamore-backend/internal/config"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return NewClient(config.TMDBConfig{
		BaseURL: serverURL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, slog.Default())
}

const searchBody = `{
	"results": [
		{
			"id": 329865,
			"title": "Arrival",
			"original_title": "Arrival",
			"overview": "A linguist decodes an alien language.",
			"release_date": "2016-11-10",
			"genre_ids": [18, 878, 999999]
		},
		{
			"id": 1,
			"title": "Arrival II",
			"original_title": "Arrival II",
			"overview": "",
			"release_date": "",
			"genre_ids": []
		}
	]
}`

func TestSearchMovie_MapsBestMatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "Arrival" {
			t.Errorf("query param: got %q", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("api_key param: got %q", got)
		}
		if got := r.URL.Query().Get("year"); got != "2016" {
			t.Errorf("year param: got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	year := 2016
	draft, err := newTestClient(t, srv.URL).SearchMovie(context.Background(), "Arrival", &year)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft == nil {
		t.Fatal("expected a draft")
	}

	if draft.Title == nil || *draft.Title != "Arrival" {
		t.Errorf("title: got %v", draft.Title)
	}
	// original_title equal to title is dropped.
	if draft.OriginalTitle != nil {
		t.Errorf("original title should be nil, got %v", *draft.OriginalTitle)
	}
	if draft.Year == nil || *draft.Year != 2016 {
		t.Errorf("year: got %v", draft.Year)
	}
	if draft.Plot == nil || *draft.Plot == "" {
		t.Errorf("plot: got %v", draft.Plot)
	}
	// Unknown genre IDs are dropped.
	if len(draft.Genres) != 2 || draft.Genres[0] != "Drama" || draft.Genres[1] != "Science Fiction" {
		t.Errorf("genres: got %v", draft.Genres)
	}
}

func TestSearchMovie_NoResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	draft, err := newTestClient(t, srv.URL).SearchMovie(context.Background(), "No Such Movie", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft != nil {
		t.Errorf("expected nil draft, got %+v", draft)
	}
}

func TestSearchMovie_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	draft, err := newTestClient(t, srv.URL).SearchMovie(context.Background(), "Arrival", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft == nil {
		t.Fatal("expected a draft after retry")
	}
	if calls.Load() != 2 {
		t.Errorf("calls: got %d, want 2", calls.Load())
	}
}

func TestSearchMovie_PersistentServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).SearchMovie(context.Background(), "Arrival", nil)
	if err == nil {
		t.Fatal("expected error after exhausted retry")
	}
}
