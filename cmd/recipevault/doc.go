// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

/*
Recipe Vault serves a personal recipe library over HTTP: recipe CRUD,
similarity search with explanations, duplicate detection and curated pack
suggestions.

# Startup

 1. Configuration: defaults, optional YAML file, environment (koanf)
 2. Logging: zerolog at the configured level and format
 3. Storage: DuckDB or in-memory recipe store plus the similarity cache
    (shared with the store, or Badger)
 4. Seeding: SEED_FILE is imported when the library is empty
 5. Engines: similarity scorer behind an optional in-process LRU, pack engine
 6. Supervisor tree: HTTP server in the API layer; library statistics and
    the LRU janitor in the maintenance layer

# Configuration

Common environment variables:

	HTTP_PORT=8080
	STORAGE_BACKEND=duckdb          # duckdb | memory
	DUCKDB_PATH=/data/recipevault.duckdb
	SIMILARITY_CACHE=duckdb         # duckdb | badger | memory
	BADGER_PATH=/data/similarity
	SIMILARITY_LRU_CAPACITY=1000    # 0 disables the in-process cache
	SEED_FILE=/data/recipes.json
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains within
HTTP_SHUTDOWN_TIMEOUT, the supervisor reports any service that failed to stop,
and storage is closed last.
*/
package main
