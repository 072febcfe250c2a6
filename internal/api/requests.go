// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"strings"

	"github.com/tomtom215/recipevault/internal/models"
)

// ListRecipesRequest holds the query parameters of GET /recipes.
type ListRecipesRequest struct {
	Cuisine      string `json:"cuisine" validate:"omitempty,max=100"`
	MealType     string `json:"meal_type" validate:"omitempty,max=100"`
	Dietary      string `json:"dietary" validate:"omitempty,max=100"`
	Difficulty   string `json:"difficulty" validate:"omitempty,max=50"`
	MaxTotalTime int    `json:"max_total_time" validate:"omitempty,min=1,max=1440"`
	Search       string `json:"search" validate:"omitempty,max=200"`
	Limit        int    `json:"limit" validate:"omitempty,min=1,max=1000"`
}

// Filter converts the request to a store filter.
func (req *ListRecipesRequest) Filter() models.RecipeFilter {
	return models.RecipeFilter{
		Cuisine:      req.Cuisine,
		MealType:     req.MealType,
		Dietary:      req.Dietary,
		Difficulty:   req.Difficulty,
		MaxTotalTime: req.MaxTotalTime,
		Search:       req.Search,
		Limit:        req.Limit,
	}
}

// SimilarRecipesRequest holds the query of GET /recipes/{id}/similar.
// A zero limit uses the configured default; larger limits are capped.
type SimilarRecipesRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1"`
}

// DuplicatesRequest holds the query of GET /recipes/{id}/duplicates.
// A zero threshold uses the configured too-similar threshold.
type DuplicatesRequest struct {
	Threshold float64 `json:"threshold" validate:"omitempty,gt=0,lte=1"`
}

// TopTermsRequest holds the query of GET /recipes/{id}/terms.
type TopTermsRequest struct {
	N int `json:"n" validate:"omitempty,min=1,max=100"`
}

// ThemedPackRequest holds the query of GET /packs/themes/{theme}.
type ThemedPackRequest struct {
	Size int `json:"size" validate:"omitempty,min=1,max=25"`
}

// IngredientRequest is one ingredient line of a recipe body.
type IngredientRequest struct {
	Quantity string `json:"quantity,omitempty" validate:"omitempty,max=50"`
	Unit     string `json:"unit,omitempty" validate:"omitempty,max=50"`
	Item     string `json:"item" validate:"required,notblank,max=200"`
	Notes    string `json:"notes,omitempty" validate:"omitempty,max=500"`
	Category string `json:"category,omitempty" validate:"omitempty,max=100"`
}

// RecipeRequest is the body of POST /recipes and PUT /recipes/{id}.
type RecipeRequest struct {
	Title            string              `json:"title" validate:"required,notblank,max=200"`
	Description      string              `json:"description,omitempty" validate:"omitempty,max=2000"`
	Ingredients      []IngredientRequest `json:"ingredients" validate:"required,min=1,max=100,dive"`
	Instructions     []string            `json:"instructions" validate:"max=100,dive,notblank,max=2000"`
	Tips             []string            `json:"tips,omitempty" validate:"omitempty,max=50,dive,max=1000"`
	CuisineType      string              `json:"cuisine_type,omitempty" validate:"omitempty,max=100"`
	Difficulty       string              `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	TotalTimeMinutes int                 `json:"total_time_minutes,omitempty" validate:"min=0,max=10080"`
	PrepTimeMinutes  int                 `json:"prep_time_minutes,omitempty" validate:"min=0,max=10080"`
	CookTimeMinutes  int                 `json:"cook_time_minutes,omitempty" validate:"min=0,max=10080"`
	Servings         int                 `json:"servings,omitempty" validate:"min=0,max=1000"`
	ImageURL         string              `json:"image_url,omitempty" validate:"omitempty,url"`
	MealTypes        []string            `json:"meal_types,omitempty" validate:"omitempty,max=20,dive,notblank,max=50"`
	DietaryTags      []string            `json:"dietary_tags,omitempty" validate:"omitempty,max=20,dive,notblank,max=50"`
	EditorsPick      bool                `json:"editors_pick"`
}

// ToRecipe builds the model with surrounding whitespace trimmed.
func (req *RecipeRequest) ToRecipe(id int64) *models.Recipe {
	recipe := &models.Recipe{
		ID:               id,
		Title:            strings.TrimSpace(req.Title),
		Description:      strings.TrimSpace(req.Description),
		Ingredients:      make([]models.Ingredient, len(req.Ingredients)),
		Instructions:     trimAll(req.Instructions),
		Tips:             trimAll(req.Tips),
		CuisineType:      strings.TrimSpace(req.CuisineType),
		Difficulty:       req.Difficulty,
		TotalTimeMinutes: req.TotalTimeMinutes,
		PrepTimeMinutes:  req.PrepTimeMinutes,
		CookTimeMinutes:  req.CookTimeMinutes,
		Servings:         req.Servings,
		ImageURL:         req.ImageURL,
		MealTypes:        trimAll(req.MealTypes),
		DietaryTags:      trimAll(req.DietaryTags),
		EditorsPick:      req.EditorsPick,
	}
	for i, ing := range req.Ingredients {
		recipe.Ingredients[i] = models.Ingredient{
			Quantity: strings.TrimSpace(ing.Quantity),
			Unit:     strings.TrimSpace(ing.Unit),
			Item:     strings.TrimSpace(ing.Item),
			Notes:    strings.TrimSpace(ing.Notes),
			Category: strings.TrimSpace(ing.Category),
		}
	}
	return recipe
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
