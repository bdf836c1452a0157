//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cineamore/cineamore-backend/internal/adapter/postgres"
	changerepo "github.com/cineamore/cineamore-backend/internal/adapter/postgres/change"
	movierepo "github.com/cineamore/cineamore-backend/internal/adapter/postgres/movie"
	"github.com/cineamore/cineamore-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/cineamore/cineamore-backend/internal/auth"
	"github.com/cineamore/cineamore-backend/internal/config"
	"github.com/cineamore/cineamore-backend/internal/domain"
	"github.com/cineamore/cineamore-backend/internal/service/catalog"
	"github.com/cineamore/cineamore-backend/internal/service/moderation"
	"github.com/cineamore/cineamore-backend/internal/service/proposal"
	"github.com/cineamore/cineamore-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	movieRepo := movierepo.New(pool)
	changeRepo := changerepo.New(pool)

	catalogCfg := config.CatalogConfig{
		DefaultPageSize: 20,
		MaxPageSize:     100,
		MaxLinksPerItem: 20,
	}

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	proposalSvc := proposal.NewService(logger, movieRepo, changeRepo, catalogCfg)
	moderationSvc := moderation.NewService(logger, movieRepo, changeRepo, txm, nil)
	catalogSvc := catalog.NewService(logger, movieRepo, nil, catalogCfg)

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(pool, "test-version"),
		Catalog:    rest.NewCatalogHandler(catalogSvc, logger),
		Proposals:  rest.NewProposalHandler(proposalSvc, logger),
		Moderation: rest.NewModerationHandler(moderationSvc, logger),
	}

	router := rest.NewRouter(handlers, jwtMgr, config.CORSConfig{
		AllowedOrigins: "*",
		AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowedHeaders: "Authorization,Content-Type",
	}, logger)

	srv := httptest.NewServer(router)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// mintToken returns a signed access token for a fresh actor of the given role.
func (ts *testServer) mintToken(t *testing.T, role domain.Role, handle string) (string, domain.Actor) {
	t.Helper()

	actor := domain.Actor{ID: uuid.New(), Role: role, Handle: handle}
	token, err := ts.jwt.GenerateAccessToken(actor)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token, actor
}

// doJSON sends a request with an optional JSON body and bearer token, and
// decodes the JSON response into a generic map. 204 responses return nil.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}
