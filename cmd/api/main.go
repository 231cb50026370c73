// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

// Command api is the entry point for the Dictionary HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Wire token signing, mail delivery, and domain services.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DianaShakirovaM/dictionary-api/internal/api"
	"github.com/DianaShakirovaM/dictionary-api/internal/dictionary"
	"github.com/DianaShakirovaM/dictionary-api/internal/notify"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/config"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/constants"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/migration"
	pgstore "github.com/DianaShakirovaM/dictionary-api/internal/platform/postgres"
	"github.com/DianaShakirovaM/dictionary-api/internal/platform/sec"
	"github.com/DianaShakirovaM/dictionary-api/internal/translate"
	"github.com/DianaShakirovaM/dictionary-api/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "dictionary-api"))
	slog.SetDefault(log)

	log.Info("[Dictionary] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "dictionary-api"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Application context outlives startup; it drives background workers
	// (rate limiter cleanup) and is cancelled once shutdown begins.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.SigningSecret, cfg.ResetSalt, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	if cfg.SigningSecret == "dev-insecure-signing-secret" && cfg.IsProduction() {
		must(log, errors.New("SIGNING_SECRET still has its development default"), "verify signing secret")
	}

	// ── 6. Mail Delivery ──────────────────────────────────────────────────
	var mailer notify.Sender
	switch cfg.MailerBackend {
	case "smtp":
		mailer = notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailerFrom, log)
	default:
		mailer, err = notify.NewFileSender(cfg.MailerDir, cfg.MailerFrom, log)
		must(log, err, "initialize file mailer")
	}

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	entryRepository := dictionary.NewPostgresRepository(pool)

	dictionaryService := dictionary.NewService(entryRepository)
	dictionaryHandler := dictionary.NewHandler(dictionaryService)

	// The entry repository doubles as the word counter on the profile view.
	authService := auth.NewService(userRepository, entryRepository, jwtSvc, mailer, cfg.PublicBaseURL)
	authHandler := auth.NewHandler(authService)

	translateGateway := translate.NewGateway(cfg.TranslateURL, log)
	translateHandler := translate.NewHandler(translateGateway)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       authHandler,
		Dictionary: dictionaryHandler,
		Translate:  translateHandler,
	}

	server := api.NewServer(appCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
