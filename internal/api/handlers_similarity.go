// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/recipevault/internal/similarity"
	"github.com/tomtom215/recipevault/internal/textsim"
)

// SimilarRecipesResponse is the body of GET /recipes/{id}/similar.
type SimilarRecipesResponse struct {
	RecipeID int64               `json:"recipe_id"`
	Similar  []similarity.Result `json:"similar"`
	Count    int                 `json:"count"`
}

// DuplicatesResponse is the body of GET /recipes/{id}/duplicates.
type DuplicatesResponse struct {
	RecipeID   int64                  `json:"recipe_id"`
	Threshold  float64                `json:"threshold"`
	Duplicates []similarity.Duplicate `json:"duplicates"`
	Count      int                    `json:"count"`
}

// TopTermsResponse is the body of GET /recipes/{id}/terms.
type TopTermsResponse struct {
	RecipeID int64               `json:"recipe_id"`
	Terms    []textsim.TermScore `json:"terms"`
}

// SimilarRecipes returns the recipes most similar to {id}, best first, each
// with a score breakdown.
//
// Query: limit (defaults to the configured default, capped at the maximum).
func (h *Handler) SimilarRecipes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := recipeID(w, r)
	if !ok {
		return
	}

	var req SimilarRecipesRequest
	var err error
	if req.Limit, err = queryInt(r, "limit"); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	results, err := h.scorer.GetSimilarRecipes(r.Context(), id, req.Limit)
	if err != nil {
		respondServiceError(w, r, err, ErrCodeSimilarity)
		return
	}
	if results == nil {
		results = []similarity.Result{}
	}

	respondSuccess(w, http.StatusOK, SimilarRecipesResponse{
		RecipeID: id,
		Similar:  results,
		Count:    len(results),
	}, start)
}

// Duplicates lists recipes that look like copies of {id}.
//
// Query: threshold in (0, 1]; omitted uses the configured too-similar
// threshold.
func (h *Handler) Duplicates(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := recipeID(w, r)
	if !ok {
		return
	}

	var req DuplicatesRequest
	var err error
	if req.Threshold, err = queryFloat(r, "threshold"); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	dups, err := h.scorer.FindDuplicates(r.Context(), id, req.Threshold)
	if err != nil {
		respondServiceError(w, r, err, ErrCodeSimilarity)
		return
	}
	if dups == nil {
		dups = []similarity.Duplicate{}
	}

	threshold := req.Threshold
	if threshold <= 0 {
		threshold = h.scorer.Config().TooSimilarThreshold
	}

	respondSuccess(w, http.StatusOK, DuplicatesResponse{
		RecipeID:   id,
		Threshold:  threshold,
		Duplicates: dups,
		Count:      len(dups),
	}, start)
}

// Terms returns the most distinctive TF-IDF terms of {id} against the rest
// of the library.
//
// Query: n (1-100).
func (h *Handler) Terms(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := recipeID(w, r)
	if !ok {
		return
	}

	var req TopTermsRequest
	var err error
	if req.N, err = queryInt(r, "n"); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	terms, err := h.scorer.TopTerms(r.Context(), id, req.N)
	if err != nil {
		respondServiceError(w, r, err, ErrCodeSimilarity)
		return
	}
	if terms == nil {
		terms = []textsim.TermScore{}
	}

	respondSuccess(w, http.StatusOK, TopTermsResponse{RecipeID: id, Terms: terms}, start)
}
