// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	addr := cfg.Server.Address()
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Storage    StorageConfig    `koanf:"storage"`
	Similarity SimilarityConfig `koanf:"similarity"`
	Packs      PacksConfig      `koanf:"packs"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSOrigins lists allowed origins. "*" allows any origin.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitRequests per RateLimitWindow per client IP. 0 disables rate limiting.
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
}

// Address returns the host:port listen address.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Storage backends.
const (
	BackendDuckDB = "duckdb"
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// StorageConfig selects where recipes and cached similarities live.
type StorageConfig struct {
	// Backend is the recipe store: duckdb or memory.
	Backend string `koanf:"backend"`

	// DatabasePath is the DuckDB file. ":memory:" keeps the database in memory.
	DatabasePath string `koanf:"database_path"`

	// SimilarityCache is the persistent similarity cache: duckdb, badger or memory.
	// duckdb requires the duckdb backend and memory requires the memory backend,
	// since both reuse the recipe store.
	SimilarityCache string `koanf:"similarity_cache"`

	// BadgerPath is the Badger directory. Empty keeps Badger in memory.
	BadgerPath        string `koanf:"badger_path"`
	BadgerCompression bool   `koanf:"badger_compression"`
	BadgerSyncWrites  bool   `koanf:"badger_sync_writes"`

	// SeedFile is a JSON array of recipes imported when the store is empty.
	SeedFile string `koanf:"seed_file"`
}

// SimilarityConfig holds similarity scoring settings
type SimilarityConfig struct {
	TooSimilarThreshold float64       `koanf:"too_similar_threshold"`
	DefaultLimit        int           `koanf:"default_limit"`
	MaxLimit            int           `koanf:"max_limit"`
	LRUCapacity         int           `koanf:"lru_capacity"` // 0 disables the in-process cache
	LRUTTL              time.Duration `koanf:"lru_ttl"`
}

// PacksConfig holds pack curation settings
type PacksConfig struct {
	DefaultSize int `koanf:"default_size"`
	MaxSize     int `koanf:"max_size"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
