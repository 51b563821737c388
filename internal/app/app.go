package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/resale-backend/internal/adapter/postgres"
	"github.com/heartmarshall/resale-backend/internal/auth"
	"github.com/heartmarshall/resale-backend/internal/config"
	"github.com/heartmarshall/resale-backend/internal/transport/middleware"
	"github.com/heartmarshall/resale-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and serves HTTP until
// ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	version := BuildVersion()

	logger.Info("starting application",
		slog.String("version", version),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage_driver", cfg.Storage.Driver),
	)

	shutdownTracing, err := SetupTracing(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("flush traces", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate() {
		results, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", len(results)))
	}

	svcs, err := NewServices(cfg, pool, logger)
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	var checks []rest.Check
	if svcs.StorageCheck != nil {
		checks = append(checks, rest.Check{Name: "storage", Ping: svcs.StorageCheck})
	}

	handlers := rest.Handlers{
		Health:    rest.NewHealthHandler(pool, version, checks...),
		Items:     rest.NewItemHandler(svcs.Items, cfg.Storage.MaxUploadBytes, logger),
		AI:        rest.NewAIHandler(svcs.Identify, svcs.Copy, svcs.ImageEdit, logger),
		Ingest:    rest.NewIngestHandler(svcs.Ingest, logger),
		Reference: rest.NewReferenceHandler(svcs.References, logger),
		Reports:   rest.NewReportHandler(svcs.Reporting, svcs.Usage, logger),
		Admin:     rest.NewAdminHandler(svcs.Items, logger),
	}

	verifier := auth.NewSessionVerifier(cfg.Auth.SessionJWTSecret, cfg.Auth.SessionAudience, cfg.Auth.AdminRole)
	router := rest.NewRouter(handlers, rest.RouterDeps{
		Middleware: rest.DefaultMiddleware(
			middleware.Auth(verifier),
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			cfg.Telemetry.MetricsEnabled(),
		),
		Limiter:   limiter,
		RateLimit: cfg.RateLimit,
		Metrics:   cfg.Telemetry.MetricsEnabled(),
		Files:     svcs.Files,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
