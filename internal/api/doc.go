// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

/*
Package api serves the Recipe Vault REST API on a chi router.

Every JSON response uses the models.APIResponse envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 3}
	}

Errors carry a machine-readable code instead of data:

	{
	  "status": "error",
	  "metadata": {"timestamp": "..."},
	  "error": {"code": "NOT_FOUND", "message": "Recipe not found"}
	}

# Middleware

Global, in order: request ID, real IP, access log, panic recovery, CORS and
the latency monitor. Everything under /api/v1 additionally gets Prometheus
request metrics, security headers and gzip. The health group has its own
permissive rate limit; the rest of the API shares the configured per-IP
limit. A limit of 0 disables rate limiting.

# Usage

	handler := api.NewHandler(store, scorer, engine, perfMon, version)
	router := api.NewRouter(handler, &cfg.Server, perfMon)
	srv := &http.Server{Addr: cfg.Server.Address(), Handler: router.Handler()}
*/
package api
