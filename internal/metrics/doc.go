// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

/*
Package metrics provides Prometheus instrumentation for Recipe Vault.

Collectors are registered with the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:8642/metrics

# Available Metrics

Storage:
  - recipevault_store_operation_duration_seconds (histogram; backend, operation)
  - recipevault_store_operation_errors_total (counter; backend, operation)

Similarity:
  - recipevault_similarity_computations_total (counter)
  - recipevault_similarity_cache_lookups_total (counter; layer, result)
  - recipevault_similarity_duration_seconds (histogram; operation)

Packs:
  - recipevault_pack_suggestions_total (counter; strategy)
  - recipevault_pack_build_duration_seconds (histogram; kind)
  - recipevault_pack_diversity_score (histogram)

API:
  - recipevault_api_requests_total (counter; method, endpoint, status_code)
  - recipevault_api_request_duration_seconds (histogram; method, endpoint)
  - recipevault_api_active_requests (gauge)
  - recipevault_api_rate_limit_hits_total (counter; endpoint)

Library:
  - recipevault_library_recipes (gauge)
  - recipevault_app_info (gauge; version, storage_backend, cache_backend)

# Usage

Record helpers wrap the collectors so call sites stay one line:

	start := time.Now()
	recipes, err := store.ListRecipes(ctx, filter)
	metrics.RecordStoreOperation("duckdb", "list_recipes", time.Since(start), err)

Endpoint labels use chi route patterns ("/api/v1/recipes/{id}"), never raw
paths, to keep label cardinality bounded.
*/
package metrics
