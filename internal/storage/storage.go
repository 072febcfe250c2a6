// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/tomtom215/recipevault/internal/metrics"
	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/similarity"
)

// ErrNotFound is returned by mutations that target a missing recipe.
// Getters return (nil, nil) instead.
var ErrNotFound = errors.New("recipe not found")

// RecipeStore is the recipe persistence used by the API and the process.
type RecipeStore interface {
	similarity.RecipeSource
	io.Closer

	// SaveRecipe inserts a recipe when its ID is 0 and replaces it otherwise.
	// The stored copy is returned with ID, timestamps and text blob set.
	// Cached similarities involving the recipe are dropped.
	SaveRecipe(ctx context.Context, r *models.Recipe) (*models.Recipe, error)

	// DeleteRecipe removes a recipe with its usage events and cached
	// similarities.
	DeleteRecipe(ctx context.Context, id int64) error

	// RecordUsage appends a usage event for the recipe.
	RecordUsage(ctx context.Context, id int64) error

	// CountRecipes returns the library size.
	CountRecipes(ctx context.Context) (int, error)
}

// SimilarityStore is a persistent similarity cache that supports
// invalidation.
type SimilarityStore interface {
	similarity.Cache
	similarity.Invalidator
}

// prepareForSave returns the copy of r that a store persists. Timestamps are
// UTC at microsecond precision, matching what DuckDB round-trips.
func prepareForSave(r *models.Recipe, now time.Time) *models.Recipe {
	now = now.UTC().Truncate(time.Microsecond)

	saved := cloneRecipe(r)
	saved.TextBlob = models.BuildTextBlob(saved)
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = now
	} else {
		saved.CreatedAt = saved.CreatedAt.UTC().Truncate(time.Microsecond)
	}
	saved.UpdatedAt = now
	return saved
}

// cloneRecipe deep-copies the slice fields of r.
func cloneRecipe(r *models.Recipe) *models.Recipe {
	c := *r
	c.Ingredients = append([]models.Ingredient(nil), r.Ingredients...)
	c.Instructions = append([]string(nil), r.Instructions...)
	c.Tips = append([]string(nil), r.Tips...)
	c.MealTypes = append([]string(nil), r.MealTypes...)
	c.DietaryTags = append([]string(nil), r.DietaryTags...)
	return &c
}

// applyLimit truncates recipes to the filter limit.
func applyLimit(recipes []*models.Recipe, limit int) []*models.Recipe {
	if limit > 0 && len(recipes) > limit {
		return recipes[:limit]
	}
	return recipes
}

// observe records a store operation metric. Use with defer.
func observe(backend, operation string, start time.Time, err *error) {
	metrics.RecordStoreOperation(backend, operation, time.Since(start), *err)
}
