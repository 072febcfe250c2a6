// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "HTTP_SHUTDOWN_TIMEOUT"},
		{"negative rate limit", func(c *Config) { c.Server.RateLimitRequests = -1 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled ignores window", func(c *Config) {
			c.Server.RateLimitRequests = 0
			c.Server.RateLimitWindow = 0
		}, ""},
		{"short rate limit window", func(c *Config) { c.Server.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "postgres" }, "STORAGE_BACKEND"},
		{"duckdb without path", func(c *Config) { c.Storage.DatabasePath = " " }, "DUCKDB_PATH"},
		{"memory store with badger cache", func(c *Config) {
			c.Storage.Backend = BackendMemory
			c.Storage.SimilarityCache = BackendBadger
		}, ""},
		{"memory store with duckdb cache", func(c *Config) { c.Storage.Backend = BackendMemory }, "SIMILARITY_CACHE=duckdb"},
		{"unknown cache", func(c *Config) { c.Storage.SimilarityCache = "redis" }, "SIMILARITY_CACHE must be"},
		{"zero threshold", func(c *Config) { c.Similarity.TooSimilarThreshold = 0 }, "TOO_SIMILAR_THRESHOLD"},
		{"threshold above one", func(c *Config) { c.Similarity.TooSimilarThreshold = 1.5 }, "TOO_SIMILAR_THRESHOLD"},
		{"zero default limit", func(c *Config) { c.Similarity.DefaultLimit = 0 }, "SIMILARITY_DEFAULT_LIMIT"},
		{"max below default", func(c *Config) { c.Similarity.MaxLimit = 5 }, "SIMILARITY_MAX_LIMIT"},
		{"negative lru capacity", func(c *Config) { c.Similarity.LRUCapacity = -1 }, "SIMILARITY_LRU_CAPACITY"},
		{"pack default above max", func(c *Config) { c.Packs.DefaultSize = 26 }, "PACK_DEFAULT_SIZE"},
		{"pack max zero", func(c *Config) { c.Packs.MaxSize = 0 }, "PACK_MAX_SIZE"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestHasWildcardCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("default origins should be a wildcard")
	}
	cfg.Server.CORSOrigins = []string{"https://recipes.example"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origin is not a wildcard")
	}
}

func TestServerAddress(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Address(); got != "127.0.0.1:8080" {
		t.Errorf("Address() = %q, want 127.0.0.1:8080", got)
	}
}
