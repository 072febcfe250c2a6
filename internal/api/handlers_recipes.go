// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/recipevault/internal/logging"
	"github.com/tomtom215/recipevault/internal/models"
)

// RecipeList is the body of GET /recipes.
type RecipeList struct {
	Recipes []*models.Recipe `json:"recipes"`
	Count   int              `json:"count"`
}

// RecipeUsage is the body of POST /recipes/{id}/usage.
type RecipeUsage struct {
	RecipeID   int64 `json:"recipe_id"`
	UsageCount int   `json:"usage_count"`
}

// ListRecipes lists recipes matching the query filter, ordered by ID.
//
// Query: cuisine, meal_type, dietary, difficulty, max_total_time, search, limit.
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	req := ListRecipesRequest{
		Cuisine:    q.Get("cuisine"),
		MealType:   q.Get("meal_type"),
		Dietary:    q.Get("dietary"),
		Difficulty: q.Get("difficulty"),
		Search:     q.Get("search"),
	}
	var err error
	if req.MaxTotalTime, err = queryInt(r, "max_total_time"); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if req.Limit, err = queryInt(r, "limit"); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	recipes, err := h.store.ListRecipes(r.Context(), req.Filter())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Failed to list recipes", err)
		return
	}
	if recipes == nil {
		recipes = []*models.Recipe{}
	}

	respondSuccess(w, http.StatusOK, RecipeList{Recipes: recipes, Count: len(recipes)}, start)
}

// GetRecipe returns one recipe.
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := recipeID(w, r)
	if !ok {
		return
	}

	recipe, err := h.store.GetRecipeByID(r.Context(), id)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Failed to load recipe", err)
		return
	}
	if recipe == nil {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Recipe not found", nil)
		return
	}

	respondSuccess(w, http.StatusOK, recipe, start)
}

// CreateRecipe stores a new recipe from the JSON body and returns it with
// its assigned ID.
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecipeRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	saved, err := h.store.SaveRecipe(r.Context(), req.ToRecipe(0))
	if err != nil {
		respondServiceError(w, r, err, ErrCodeDatabase)
		return
	}
	h.invalidate(r.Context(), saved.ID)

	logging.Ctx(r.Context()).Info().
		Int64("recipe_id", saved.ID).
		Str("title", sanitizeLogValue(saved.Title)).
		Msg("Recipe created")

	w.Header().Set("Location", "/api/v1/recipes/"+strconv.FormatInt(saved.ID, 10))
	respondSuccess(w, http.StatusCreated, saved, start)
}

// UpdateRecipe replaces an existing recipe. Cached similarities involving
// it are dropped.
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := recipeID(w, r)
	if !ok {
		return
	}

	var req RecipeRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	saved, err := h.store.SaveRecipe(r.Context(), req.ToRecipe(id))
	if err != nil {
		respondServiceError(w, r, err, ErrCodeDatabase)
		return
	}
	h.invalidate(r.Context(), id)

	respondSuccess(w, http.StatusOK, saved, start)
}

// DeleteRecipe removes a recipe together with its usage history.
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := recipeID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteRecipe(r.Context(), id); err != nil {
		respondServiceError(w, r, err, ErrCodeDatabase)
		return
	}
	h.invalidate(r.Context(), id)

	logging.Ctx(r.Context()).Info().Int64("recipe_id", id).Msg("Recipe deleted")
	w.WriteHeader(http.StatusNoContent)
}

// RecordUsage logs that the recipe was cooked and returns the new count.
func (h *Handler) RecordUsage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := recipeID(w, r)
	if !ok {
		return
	}

	if err := h.store.RecordUsage(r.Context(), id); err != nil {
		respondServiceError(w, r, err, ErrCodeDatabase)
		return
	}
	count, err := h.store.GetRecipeUsageCount(r.Context(), id)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeDatabase, "Failed to read usage count", err)
		return
	}

	respondSuccess(w, http.StatusOK, RecipeUsage{RecipeID: id, UsageCount: count}, start)
}

// invalidate drops similarity entries for id from the scorer's cache
// chain. The mutation already succeeded, so a failure is only logged.
func (h *Handler) invalidate(ctx context.Context, id int64) {
	if err := h.scorer.InvalidateRecipe(ctx, id); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int64("recipe_id", id).Msg("Failed to invalidate cached similarities")
	}
}
