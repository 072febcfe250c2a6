// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/recipevault/internal/cache"
	"github.com/tomtom215/recipevault/internal/metrics"
)

// ExpiringCache is satisfied by *similarity.LRUCache.
type ExpiringCache interface {
	CleanupExpired() int
	Stats() cache.Stats
}

// CacheJanitorService sweeps expired entries out of the in-memory
// similarity cache. Expired entries are never served either way; sweeping
// only returns their memory before the LRU would evict them.
type CacheJanitorService struct {
	cache    ExpiringCache
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates the janitor. A non-positive interval means
// one minute.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCacheJanitorService(c ExpiringCache, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		cache:    c,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("cache janitor starting")
	return runPeriodic(ctx, s.interval, false, s.logger, s.sweep)
}

func (s *CacheJanitorService) sweep(_ context.Context) error {
	removed := s.cache.CleanupExpired()
	stats := s.cache.Stats()
	metrics.RecordLRUSweep(stats.Size, removed)

	if removed > 0 {
		s.logger.Debug().
			Int("removed", removed).
			Int("size", stats.Size).
			Float64("hit_rate", stats.HitRate()).
			Msg("expired similarity entries removed")
	}
	return nil
}

// String names the service in supervisor events.
func (s *CacheJanitorService) String() string {
	return s.name
}
