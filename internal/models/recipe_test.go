// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package models

import (
	"testing"
)

func TestBuildTextBlob(t *testing.T) {
	t.Parallel()

	r := &Recipe{
		Title:        "Chicken Curry",
		Description:  "A Weeknight Favorite",
		CuisineType:  "Indian",
		Difficulty:   "Easy",
		MealTypes:    []string{"Dinner"},
		DietaryTags:  []string{"Gluten-Free"},
		Ingredients:  []Ingredient{{Item: "Chicken Thighs"}, {Item: "  "}},
		Instructions: []string{"Brown the chicken."},
		Tips:         []string{"Use fresh spices."},
	}

	want := "chicken curry a weeknight favorite indian easy dinner gluten-free chicken thighs brown the chicken. use fresh spices."
	if got := BuildTextBlob(r); got != want {
		t.Errorf("BuildTextBlob() = %q, want %q", got, want)
	}
}

func TestRecipe_EnsureTextBlob(t *testing.T) {
	t.Parallel()

	r := &Recipe{Title: "Soup", TextBlob: "custom"}
	r.EnsureTextBlob()
	if r.TextBlob != "custom" {
		t.Errorf("EnsureTextBlob() overwrote existing blob: %q", r.TextBlob)
	}

	r.TextBlob = ""
	r.EnsureTextBlob()
	if r.TextBlob != "soup" {
		t.Errorf("EnsureTextBlob() = %q, want %q", r.TextBlob, "soup")
	}
}

func TestRecipe_EffectiveTotalTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		recipe Recipe
		want   int
	}{
		{"total time wins", Recipe{TotalTimeMinutes: 40, PrepTimeMinutes: 10, CookTimeMinutes: 10}, 40},
		{"falls back to prep plus cook", Recipe{PrepTimeMinutes: 10, CookTimeMinutes: 15}, 25},
		{"unknown time", Recipe{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.recipe.EffectiveTotalTime(); got != tt.want {
				t.Errorf("EffectiveTotalTime() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecipeFilter_Matches(t *testing.T) {
	t.Parallel()

	r := &Recipe{
		Title:            "Pad Thai",
		CuisineType:      "Thai",
		Difficulty:       "Medium",
		TotalTimeMinutes: 25,
		MealTypes:        []string{"Dinner", "Lunch"},
		DietaryTags:      []string{"Dairy-Free"},
	}
	r.EnsureTextBlob()

	tests := []struct {
		name   string
		filter RecipeFilter
		want   bool
	}{
		{"empty filter", RecipeFilter{}, true},
		{"cuisine case-insensitive", RecipeFilter{Cuisine: "thai"}, true},
		{"cuisine mismatch", RecipeFilter{Cuisine: "Italian"}, false},
		{"meal type member", RecipeFilter{MealType: "lunch"}, true},
		{"meal type missing", RecipeFilter{MealType: "breakfast"}, false},
		{"dietary member", RecipeFilter{Dietary: "dairy-free"}, true},
		{"difficulty", RecipeFilter{Difficulty: "medium"}, true},
		{"within max time", RecipeFilter{MaxTotalTime: 30}, true},
		{"over max time", RecipeFilter{MaxTotalTime: 20}, false},
		{"search hit", RecipeFilter{Search: "PAD"}, true},
		{"search miss", RecipeFilter{Search: "lasagna"}, false},
		{"combined", RecipeFilter{Cuisine: "Thai", MealType: "Dinner", MaxTotalTime: 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Matches(r); got != tt.want {
				t.Errorf("Matches(%+v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestRecipeFilter_MaxTimeExcludesUnknown(t *testing.T) {
	t.Parallel()

	f := RecipeFilter{MaxTotalTime: 30}
	if f.Matches(&Recipe{Title: "Mystery"}) {
		t.Error("recipe without a time should not match a max-time filter")
	}
	if f.IsEmpty() {
		t.Error("IsEmpty() = true for a max-time filter")
	}
	if !(RecipeFilter{Limit: 5}).IsEmpty() {
		t.Error("IsEmpty() = false for a limit-only filter")
	}
}
