// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxPackSize        = 25
	maxSimilarLimit    = 1000
	minRateLimitWindow = time.Second
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateSimilarity(); err != nil {
		return err
	}
	if err := c.validatePacks(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return c.validateRateLimits()
}

// validateRateLimits checks the limiter settings. RATE_LIMIT_REQUESTS=0 disables it.
func (c *Config) validateRateLimits() error {
	if c.Server.RateLimitRequests < 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must not be negative")
	}
	if c.Server.RateLimitRequests == 0 {
		return nil
	}
	if c.Server.RateLimitWindow < minRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least %s", minRateLimitWindow)
	}
	return nil
}

func (c *Config) validateStorage() error {
	s := c.Storage
	switch s.Backend {
	case BackendDuckDB:
		if strings.TrimSpace(s.DatabasePath) == "" {
			return fmt.Errorf("DUCKDB_PATH is required when STORAGE_BACKEND=duckdb")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: duckdb, memory (got %q)", s.Backend)
	}

	switch s.SimilarityCache {
	case BackendBadger:
	case BackendDuckDB, BackendMemory:
		if s.SimilarityCache != s.Backend {
			return fmt.Errorf("SIMILARITY_CACHE=%s requires STORAGE_BACKEND=%s", s.SimilarityCache, s.SimilarityCache)
		}
	default:
		return fmt.Errorf("SIMILARITY_CACHE must be one of: duckdb, badger, memory (got %q)", s.SimilarityCache)
	}
	return nil
}

func (c *Config) validateSimilarity() error {
	s := c.Similarity
	if s.TooSimilarThreshold <= 0 || s.TooSimilarThreshold > 1 {
		return fmt.Errorf("SIMILARITY_TOO_SIMILAR_THRESHOLD must be in (0, 1]")
	}
	if s.DefaultLimit < 1 {
		return fmt.Errorf("SIMILARITY_DEFAULT_LIMIT must be positive")
	}
	if s.MaxLimit < s.DefaultLimit || s.MaxLimit > maxSimilarLimit {
		return fmt.Errorf("SIMILARITY_MAX_LIMIT must be between SIMILARITY_DEFAULT_LIMIT and %d", maxSimilarLimit)
	}
	if s.LRUCapacity < 0 {
		return fmt.Errorf("SIMILARITY_LRU_CAPACITY must not be negative")
	}
	if s.LRUCapacity > 0 && s.LRUTTL < 0 {
		return fmt.Errorf("SIMILARITY_LRU_TTL must not be negative")
	}
	return nil
}

func (c *Config) validatePacks() error {
	if c.Packs.MaxSize < 1 || c.Packs.MaxSize > maxPackSize {
		return fmt.Errorf("PACK_MAX_SIZE must be between 1 and %d", maxPackSize)
	}
	if c.Packs.DefaultSize < 1 || c.Packs.DefaultSize > c.Packs.MaxSize {
		return fmt.Errorf("PACK_DEFAULT_SIZE must be between 1 and PACK_MAX_SIZE")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
