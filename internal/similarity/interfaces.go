// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package similarity

import (
	"context"

	"github.com/tomtom215/recipevault/internal/models"
)

// RecipeSource provides read access to the recipe library.
type RecipeSource interface {
	// ListRecipes returns the recipes matching filter.
	ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, error)

	// GetRecipeByID returns the recipe, or (nil, nil) when it does not exist.
	GetRecipeByID(ctx context.Context, id int64) (*models.Recipe, error)

	// GetAllRecipes returns every recipe ordered by ID.
	GetAllRecipes(ctx context.Context) ([]*models.Recipe, error)

	// GetRecipeUsageCount returns how many times the recipe has been used.
	GetRecipeUsageCount(ctx context.Context, id int64) (int, error)
}

// CachedSimilarity is one persisted (recipeID, OtherID) score.
type CachedSimilarity struct {
	OtherID         int64   `json:"other_id"`
	Score           float64 `json:"score"`
	ExplanationJSON []byte  `json:"explanation,omitempty"`
}

// Cache persists computed similarity scores. Entries are directional: an
// entry for (a, b) says nothing about (b, a).
type Cache interface {
	// GetCachedSimilarities returns every entry anchored at recipeID in
	// unspecified order. An empty result means nothing is cached.
	GetCachedSimilarities(ctx context.Context, recipeID int64) ([]CachedSimilarity, error)

	// PutCachedSimilarity stores or replaces the (recipeID, otherID) entry.
	PutCachedSimilarity(ctx context.Context, recipeID, otherID int64, score float64, exp Explanation) error
}

// Invalidator is implemented by caches that can drop entries for a recipe
// whose content changed. Entries where the recipe is either the anchor or
// the other side are removed.
type Invalidator interface {
	InvalidateSimilarities(ctx context.Context, recipeID int64) error
}
