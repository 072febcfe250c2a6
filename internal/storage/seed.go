// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package storage

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recipevault/internal/models"
)

// ImportRecipes reads a JSON array of recipes and saves each as a new
// recipe. IDs in the input are ignored. It returns how many were saved.
func ImportRecipes(ctx context.Context, store RecipeStore, r io.Reader) (int, error) {
	var recipes []models.Recipe
	if err := json.NewDecoder(r).Decode(&recipes); err != nil {
		return 0, fmt.Errorf("decode recipes: %w", err)
	}

	for i := range recipes {
		rec := recipes[i]
		rec.ID = 0
		if rec.Title == "" {
			return i, fmt.Errorf("recipe %d: title is required", i)
		}
		if _, err := store.SaveRecipe(ctx, &rec); err != nil {
			return i, fmt.Errorf("save recipe %q: %w", rec.Title, err)
		}
	}
	return len(recipes), nil
}

// SeedIfEmpty imports the JSON file at path when the store holds no recipes.
// It returns the number of imported recipes, 0 when the store was not empty.
func SeedIfEmpty(ctx context.Context, store RecipeStore, path string) (int, error) {
	count, err := store.CountRecipes(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer closeQuietly(f)

	return ImportRecipes(ctx, store, f)
}
