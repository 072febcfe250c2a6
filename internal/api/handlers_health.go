// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/recipevault/internal/logging"
	"github.com/tomtom215/recipevault/internal/middleware"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	StoreHealthy  bool    `json:"store_healthy"`
	RecipeCount   int     `json:"recipe_count"`
}

// healthCheckTimeout bounds the store probe.
const healthCheckTimeout = 2 * time.Second

// Health reports liveness and whether the recipe store answers. A failing
// store yields 503 with status "degraded".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	health := HealthStatus{
		Status:        "healthy",
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		StoreHealthy:  true,
	}
	status := http.StatusOK

	count, err := h.store.CountRecipes(ctx)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check: recipe store unavailable")
		health.Status = "degraded"
		health.StoreHealthy = false
		status = http.StatusServiceUnavailable
	} else {
		health.RecipeCount = count
	}

	respondSuccess(w, status, health, start)
}

// HealthPerformance returns per-route latency statistics from the
// performance monitor.
func (h *Handler) HealthPerformance(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()

	stats := []middleware.EndpointStats{}
	if h.perfMon != nil {
		stats = h.perfMon.Stats()
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"endpoints": stats,
		"count":     len(stats),
	}, start)
}

// notFound and methodNotAllowed keep chi's fallbacks inside the envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method "+r.Method+" not allowed", nil)
}
