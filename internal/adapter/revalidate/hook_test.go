package revalidate

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

func TestInvalidate_PostsSecret(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s", r.Method)
		}
		if got := r.Header.Get("X-Revalidate-Secret"); got != "s3cret" {
			t.Errorf("secret header: got %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	hook := NewHook(config.RevalidateConfig{
		URL:     srv.URL,
		Secret:  "s3cret",
		Timeout: 2 * time.Second,
	}, slog.Default())

	if err := hook.Invalidate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls: got %d, want 1", calls.Load())
	}
}

func TestInvalidate_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	hook := NewHook(config.RevalidateConfig{URL: srv.URL, Secret: "s3cret"}, slog.Default())

	if err := hook.Invalidate(context.Background()); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestInvalidate_DisabledIsNoop(t *testing.T) {
	t.Parallel()

	hook := NewHook(config.RevalidateConfig{}, slog.Default())

	if err := hook.Invalidate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
