// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/recipevault/internal/middleware"
	"github.com/tomtom215/recipevault/internal/packs"
	"github.com/tomtom215/recipevault/internal/similarity"
	"github.com/tomtom215/recipevault/internal/storage"
	"github.com/tomtom215/recipevault/internal/validation"
)

// Handler serves the REST API.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and latency statistics
//   - handlers_recipes.go: recipe listing and CRUD, usage events
//   - handlers_similarity.go: similar recipes, duplicates, top terms
//   - handlers_packs.go: pack suggestions and themed packs
type Handler struct {
	store     storage.RecipeStore
	scorer    *similarity.Scorer
	packs     *packs.Engine
	perfMon   *middleware.PerformanceMonitor
	version   string
	startTime time.Time
}

// NewHandler creates the API handler. perfMon may be nil, in which case the
// performance endpoint reports no samples.
//
//	scorer, _ := similarity.NewScorer(backends.Recipes, lru, simCfg, logger)
//	engine, _ := packs.NewEngine(backends.Recipes, packCfg, logger)
//	handler := api.NewHandler(backends.Recipes, scorer, engine, perfMon, version)
func NewHandler(store storage.RecipeStore, scorer *similarity.Scorer, engine *packs.Engine, perfMon *middleware.PerformanceMonitor, version string) *Handler {
	return &Handler{
		store:     store,
		scorer:    scorer,
		packs:     engine,
		perfMon:   perfMon,
		version:   version,
		startTime: time.Now(),
	}
}

// statusClientClosedRequest is the nginx convention for a client that
// disconnected before the response.
const statusClientClosedRequest = 499

// validateRequest runs struct validation and writes the 400 on failure.
// It reports whether the handler may continue.
func validateRequest(w http.ResponseWriter, v interface{}) bool {
	if verr := validation.ValidateStruct(v); verr != nil {
		respondValidationError(w, verr)
		return false
	}
	return true
}

// recipeID parses the {id} path parameter, writing INVALID_ID on failure.
func recipeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidID, err.Error(), nil)
		return 0, false
	}
	return id, true
}

// respondServiceError maps errors from the core packages onto the envelope.
// fallbackCode is used for unexpected failures.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackCode string) {
	switch {
	case errors.Is(err, similarity.ErrRecipeNotFound), errors.Is(err, storage.ErrNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Recipe not found", err)
	case errors.Is(err, packs.ErrUnknownTheme):
		respondError(w, r, http.StatusNotFound, ErrCodeUnknownTheme, err.Error(), err)
	case errors.Is(err, context.Canceled):
		respondError(w, r, statusClientClosedRequest, fallbackCode, "Request canceled", err)
	default:
		respondError(w, r, http.StatusInternalServerError, fallbackCode, "Internal server error", err)
	}
}
