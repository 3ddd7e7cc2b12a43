package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/workboardhq/workboard/internal/app"
	"github.com/workboardhq/workboard/internal/httpserver"
	"github.com/workboardhq/workboard/internal/metrics"
	"github.com/workboardhq/workboard/internal/platform/config"
	"github.com/workboardhq/workboard/internal/platform/logging"
	"github.com/workboardhq/workboard/internal/platform/version"
	"github.com/workboardhq/workboard/internal/postgres"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.RunMigrationsWithLock(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func runGracefulShutdown(srv *httpserver.Server, timeout time.Duration) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	info := version.Get()
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "version", info.Version)

	pool := setupDB(cfg)
	defer pool.Close()

	catalogRepo := postgres.NewCatalogRepo(pool)
	workspaceRepo := postgres.NewWorkspaceRepo(pool)
	workspaceSectionRepo := postgres.NewWorkspaceSectionRepo(pool)

	catalogSvc := app.NewCatalogService(catalogRepo)
	workspaceSvc := app.NewWorkspaceService(workspaceRepo, workspaceSectionRepo)

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	healthChecks := []httpserver.HealthCheck{
		{Name: "database", Check: pool.Ping},
	}

	srv := httpserver.NewServer(cfg, catalogSvc, workspaceSvc, httpMetrics, healthChecks)

	done := runGracefulShutdown(srv, cfg.ShutdownTimeout)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
