// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/recipevault/internal/packs"
)

// PackSuggestionsResponse is the body of POST /packs/suggestions.
type PackSuggestionsResponse struct {
	Suggestions []packs.Suggestion `json:"suggestions"`
	Count       int                `json:"count"`
}

// ThemeInfo describes one theme in GET /packs/themes.
type ThemeInfo struct {
	Theme       packs.Theme `json:"theme"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

// ThemedPackResponse is the body of GET /packs/themes/{theme}. Pack is null
// when too few recipes qualify for the theme.
type ThemedPackResponse struct {
	Theme packs.Theme       `json:"theme"`
	Pack  *packs.Suggestion `json:"pack"`
}

// PackSuggestions generates candidate packs. The body is optional; an empty
// body uses the default options.
func (h *Handler) PackSuggestions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var opts packs.Options
	if err := decodeJSONBody(w, r, &opts); err != nil && !errors.Is(err, errEmptyBody) {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if !validateRequest(w, &opts) {
		return
	}

	suggestions, err := h.packs.GeneratePackSuggestions(r.Context(), opts)
	if err != nil {
		respondServiceError(w, r, err, ErrCodePack)
		return
	}
	if suggestions == nil {
		suggestions = []packs.Suggestion{}
	}

	respondSuccess(w, http.StatusOK, PackSuggestionsResponse{
		Suggestions: suggestions,
		Count:       len(suggestions),
	}, start)
}

// ListThemes returns the supported themes in lexical order.
func (h *Handler) ListThemes(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()

	themes := packs.Themes()
	out := make([]ThemeInfo, len(themes))
	for i, t := range themes {
		out[i] = ThemeInfo{Theme: t, Title: t.Title(), Description: t.Description()}
	}
	respondSuccess(w, http.StatusOK, out, start)
}

// ThemedPack builds one pack for the {theme} path parameter.
//
// Query: size (1-25).
func (h *Handler) ThemedPack(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	theme, err := packs.ParseTheme(chi.URLParam(r, "theme"))
	if err != nil {
		respondServiceError(w, r, err, ErrCodePack)
		return
	}

	var req ThemedPackRequest
	if req.Size, err = queryInt(r, "size"); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	pack, err := h.packs.GenerateThemedPack(r.Context(), string(theme), req.Size)
	if err != nil {
		respondServiceError(w, r, err, ErrCodePack)
		return
	}

	respondSuccess(w, http.StatusOK, ThemedPackResponse{Theme: theme, Pack: pack}, start)
}
