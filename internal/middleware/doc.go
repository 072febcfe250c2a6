// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

/*
Package middleware provides the HTTP middleware recipevault's API router
installs in front of its handlers.

  - RequestID: X-Request-ID propagation into chi and logging contexts
  - PrometheusMetrics: request totals, durations and in-flight gauge,
    labeled by chi route pattern
  - AccessLog: one structured zerolog line per request
  - PerformanceMonitor: sliding-window latency percentiles per route,
    reported by the health endpoint

All middleware has the func(http.Handler) http.Handler shape and plugs into
chi directly:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.With(middleware.PrometheusMetrics).Get("/api/v1/recipes", h.ListRecipes)

Route-pattern labels are read after the wrapped handler returns, which is
when chi has finished matching. Requests that match no route are labeled
"unmatched".
*/
package middleware
