// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/recipevault/internal/api"
	"github.com/tomtom215/recipevault/internal/config"
	"github.com/tomtom215/recipevault/internal/logging"
	"github.com/tomtom215/recipevault/internal/metrics"
	"github.com/tomtom215/recipevault/internal/middleware"
	"github.com/tomtom215/recipevault/internal/packs"
	"github.com/tomtom215/recipevault/internal/similarity"
	"github.com/tomtom215/recipevault/internal/storage"
	"github.com/tomtom215/recipevault/internal/supervisor"
	"github.com/tomtom215/recipevault/internal/supervisor/services"
)

const (
	perfMonitorSamples  = 1000
	slowRequestWarning  = time.Second
	httpIdleTimeout     = 60 * time.Second
	janitorInterval     = time.Minute
	libraryStatsRefresh = 30 * time.Second
	seedTimeout         = 2 * time.Minute
)

// app holds the wired components of a running server.
type app struct {
	backends *storage.Backends
	lru      *similarity.LRUCache
	server   *http.Server
	tree     *supervisor.SupervisorTree
}

// newApp opens storage, seeds it when configured, builds the scoring and
// pack engines, and registers every long-running service with the
// supervisor tree. The tree is not started.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	logger := logging.Logger()

	backends, err := storage.Open(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	a := &app{backends: backends}

	if err := a.seed(ctx, cfg.Storage.SeedFile); err != nil {
		a.close()
		return nil, err
	}

	var cache similarity.Cache = backends.Similarities
	if cfg.Similarity.LRUCapacity > 0 {
		a.lru = similarity.NewLRUCache(backends.Similarities, cfg.Similarity.LRUCapacity, cfg.Similarity.LRUTTL)
		cache = a.lru
	}

	scorer, err := similarity.NewScorer(backends.Recipes, cache, &similarity.Config{
		DefaultLimit:        cfg.Similarity.DefaultLimit,
		MaxLimit:            cfg.Similarity.MaxLimit,
		TooSimilarThreshold: cfg.Similarity.TooSimilarThreshold,
	}, logger)
	if err != nil {
		a.close()
		return nil, err
	}

	engine, err := packs.NewEngine(backends.Recipes, &packs.Config{
		DefaultSize: cfg.Packs.DefaultSize,
		MaxSize:     cfg.Packs.MaxSize,
	}, logger)
	if err != nil {
		a.close()
		return nil, err
	}

	cacheBackend := cfg.Storage.SimilarityCache
	if a.lru != nil {
		cacheBackend = "lru+" + cacheBackend
	}
	metrics.SetAppInfo(version, cfg.Storage.Backend, cacheBackend)

	perfMon := middleware.NewPerformanceMonitor(perfMonitorSamples, slowRequestWarning)
	handler := api.NewHandler(backends.Recipes, scorer, engine, perfMon, version)
	router := api.NewRouter(handler, &cfg.Server, perfMon)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router.Handler(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       httpIdleTimeout,
	}

	a.tree, err = supervisor.NewSupervisorTree(
		logging.NewSlogLogger(logging.WithComponent("supervisor")),
		supervisor.TreeConfig{ShutdownTimeout: cfg.Server.ShutdownTimeout},
	)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("create supervisor tree: %w", err)
	}
	a.registerServices(cfg, logger)

	return a, nil
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (a *app) registerServices(cfg *config.Config, logger zerolog.Logger) {
	a.tree.AddMaintenanceService(services.NewLibraryStatsService(a.backends.Recipes, libraryStatsRefresh, logger))
	if a.lru != nil {
		a.tree.AddMaintenanceService(services.NewCacheJanitorService(a.lru, janitorInterval, logger))
	}
	a.tree.AddAPIService(services.NewHTTPServerService(a.server, cfg.Server.ShutdownTimeout, logger))
}

// seed imports the seed file into an empty store. An empty path skips it.
func (a *app) seed(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	n, err := storage.SeedIfEmpty(ctx, a.backends.Recipes, path)
	if err != nil {
		return fmt.Errorf("seed recipes from %s: %w", path, err)
	}
	if n > 0 {
		logging.Info().Int("recipes", n).Str("file", path).Msg("Seeded empty recipe library")
	}
	return nil
}

// run serves the supervisor tree until ctx is canceled or the tree stops on
// its own. It receives the tree's result exactly once and then reports
// services that ignored the shutdown timeout.
func (a *app) run(ctx context.Context) error {
	errCh := a.tree.ServeBackground(ctx)

	var err error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish")
		err = <-errCh
	case err = <-errCh:
	}

	if unstopped, _ := a.tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}
	return nil
}

func (a *app) close() {
	if err := a.backends.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing storage")
	}
}
