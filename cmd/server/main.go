// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/raphaelratuczne/teste-outsera/internal/api"
	"github.com/raphaelratuczne/teste-outsera/internal/cache"
	"github.com/raphaelratuczne/teste-outsera/internal/config"
	"github.com/raphaelratuczne/teste-outsera/internal/database"
	"github.com/raphaelratuczne/teste-outsera/internal/dataset"
	"github.com/raphaelratuczne/teste-outsera/internal/logging"
	"github.com/raphaelratuczne/teste-outsera/internal/metrics"
	"github.com/raphaelratuczne/teste-outsera/internal/producers"
	"github.com/raphaelratuczne/teste-outsera/internal/supervisor"
	"github.com/raphaelratuczne/teste-outsera/internal/supervisor/services"

	_ "github.com/raphaelratuczne/teste-outsera/docs" // Swagger docs
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	loadTimeout       = 2 * time.Minute
	readHeaderTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet; the default zerolog logger writes JSON to stderr.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Golden Raspberry Awards API")

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open movie store")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close movie store")
		}
	}()

	loaded, err := loadDataset(db, cfg.Dataset.Path)
	if err != nil {
		logging.Error().Err(err).Str("path", cfg.Dataset.Path).Msg("Failed to load dataset")
		closeAndExit(db)
	}

	svc := producers.NewService(db)
	responseCache := cache.New(cfg.API.CacheTTL)

	handler := api.NewHandler(db, svc, responseCache)
	handler.SetDatasetSize(loaded)

	router := api.NewRouter(handler, api.NewChiMiddlewareConfig(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	// === SUPERVISOR TREE ===
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		closeAndExit(db)
	}

	if responseCache.Enabled() {
		tree.AddDataService(responseCache)
		logging.Info().Dur("ttl", cfg.API.CacheTTL).Msg("Response cache cleanup service added")
	} else {
		logging.Info().Msg("Response cache disabled (API_CACHE_TTL=0)")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, services.DefaultShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
		stop()
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// loadDataset parses the awards file and inserts every valid row.
// It returns the number of movies stored.
func loadDataset(db *database.DB, path string) (int, error) {
	start := time.Now()

	movies, report, err := dataset.Load(path)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	inserted, err := db.InsertMovies(ctx, movies)
	if err != nil {
		return 0, err
	}

	logging.Info().
		Str("path", path).
		Int("loaded", inserted).
		Int("skipped", report.Skipped).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")

	return inserted, nil
}

// closeAndExit releases the store before exiting, since os.Exit skips deferred calls.
func closeAndExit(db *database.DB) {
	if err := db.Close(); err != nil {
		logging.Error().Err(err).Msg("Failed to close movie store")
	}
	os.Exit(1)
}
