// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/recipevault/internal/config"
	"github.com/tomtom215/recipevault/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("version", version).
		Str("storage_backend", cfg.Storage.Backend).
		Str("similarity_cache", cfg.Storage.SimilarityCache).
		Msg("Starting Recipe Vault")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize application")
		os.Exit(1)
	}
	defer a.close()

	logging.Info().Str("addr", a.server.Addr).Msg("Starting supervisor tree")
	if err := a.run(ctx); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}
	stop()

	logging.Info().Msg("Recipe Vault stopped")
}
