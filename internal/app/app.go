package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cineamore/cineamore-backend/internal/adapter/postgres"
	changerepo "github.com/cineamore/cineamore-backend/internal/adapter/postgres/change"
	movierepo "github.com/cineamore/cineamore-backend/internal/adapter/postgres/movie"
	"github.com/cineamore/cineamore-backend/internal/adapter/revalidate"
	"github.com/cineamore/cineamore-backend/internal/adapter/tmdb"
	"github.com/cineamore/cineamore-backend/internal/auth"
	"github.com/cineamore/cineamore-backend/internal/config"
	"github.com/cineamore/cineamore-backend/internal/service/catalog"
	"github.com/cineamore/cineamore-backend/internal/service/moderation"
	"github.com/cineamore/cineamore-backend/internal/service/proposal"
	"github.com/cineamore/cineamore-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes the
// logger, applies migrations, wires repositories, services and transport, and
// serves HTTP until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := migrateUp(cfg.Database.DSN); err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	movieRepo := movierepo.New(pool)
	changeRepo := changerepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// The hook no-ops when no revalidate URL is configured.
	invalidator := revalidate.NewHook(cfg.Revalidate, logger)

	proposalSvc := proposal.NewService(logger, movieRepo, changeRepo, cfg.Catalog)
	moderationSvc := moderation.NewService(logger, movieRepo, changeRepo, txManager, invalidator)
	catalogSvc := catalog.NewService(logger, movieRepo, invalidator, cfg.Catalog)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Catalog:    rest.NewCatalogHandler(catalogSvc, logger),
		Proposals:  rest.NewProposalHandler(proposalSvc, logger),
		Moderation: rest.NewModerationHandler(moderationSvc, logger),
	}
	if cfg.TMDB.PrefillEnabled() {
		handlers.Prefill = rest.NewPrefillHandler(tmdb.NewClient(cfg.TMDB, logger), logger)
	}

	router := rest.NewRouter(handlers, jwtManager, cfg.CORS, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
