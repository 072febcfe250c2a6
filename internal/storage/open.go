// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package storage

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/tomtom215/recipevault/internal/config"
)

// Backends is the set of stores opened from configuration.
type Backends struct {
	Recipes      RecipeStore
	Similarities SimilarityStore

	closers []io.Closer
}

// Open opens the recipe store and similarity cache selected by cfg.
// When the cache shares the recipe store, Similarities is the same value.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Open(cfg *config.StorageConfig, logger zerolog.Logger) (*Backends, error) {
	b := &Backends{}

	switch cfg.Backend {
	case config.BackendDuckDB:
		store, err := NewDuckDBStore(cfg.DatabasePath, logger)
		if err != nil {
			return nil, err
		}
		b.Recipes = store
		b.closers = append(b.closers, store)
		if cfg.SimilarityCache == config.BackendDuckDB {
			b.Similarities = store
		}
	case config.BackendMemory:
		store := NewMemoryStore()
		b.Recipes = store
		b.closers = append(b.closers, store)
		if cfg.SimilarityCache == config.BackendMemory {
			b.Similarities = store
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	if b.Similarities == nil {
		if cfg.SimilarityCache != config.BackendBadger {
			_ = b.Close()
			return nil, fmt.Errorf("similarity cache %q cannot be used with storage backend %q", cfg.SimilarityCache, cfg.Backend)
		}
		cache, err := OpenBadgerSimilarityCache(BadgerOptions{
			Path:        cfg.BadgerPath,
			SyncWrites:  cfg.BadgerSyncWrites,
			Compression: cfg.BadgerCompression,
		}, logger)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		b.Similarities = cache
		b.closers = append(b.closers, cache)
	}

	return b, nil
}

// Close closes every opened store, most recently opened first.
func (b *Backends) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
