// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

/*
Package config loads and validates Recipe Vault configuration.

# Configuration Sources

Values are layered with koanf, later sources winning:
  - Built-in defaults
  - An optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/recipevault/config.yaml or /etc/recipevault/config.yml
  - Environment variables listed below; anything else in the environment
    is ignored

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Request timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP, 0 disables (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)

Storage:
  - STORAGE_BACKEND: duckdb or memory (default: duckdb)
  - DUCKDB_PATH: Database file (default: /data/recipevault.duckdb)
  - SIMILARITY_CACHE: duckdb, badger or memory (default: duckdb)
  - BADGER_PATH: Badger directory, empty for in-memory (default: /data/similarity)
  - BADGER_COMPRESSION: Snappy block compression (default: true)
  - BADGER_SYNC_WRITES: fsync every write (default: false)
  - SEED_FILE: JSON recipes imported into an empty library

Similarity:
  - SIMILARITY_TOO_SIMILAR_THRESHOLD (default: 0.80)
  - SIMILARITY_DEFAULT_LIMIT (default: 10)
  - SIMILARITY_MAX_LIMIT (default: 100)
  - SIMILARITY_LRU_CAPACITY: In-process cache anchors, 0 disables (default: 1000)
  - SIMILARITY_LRU_TTL (default: 10m)

Packs:
  - PACK_DEFAULT_SIZE (default: 10)
  - PACK_MAX_SIZE (default: 25)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)
*/
package config
