// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package models

import (
	"strings"
	"time"
)

// Ingredient is a single parsed ingredient line of a recipe.
type Ingredient struct {
	// Quantity is the raw quantity text ("2", "1 1/2", "1/4").
	Quantity string `json:"quantity,omitempty"`

	// Unit is the measurement unit ("cup", "lb", "tbsp").
	Unit string `json:"unit,omitempty"`

	// Item is the ingredient name ("chopped onions").
	Item string `json:"item"`

	// Notes holds preparation notes ("finely diced").
	Notes string `json:"notes,omitempty"`

	// Category is the shopping category ("produce", "dairy").
	Category string `json:"category,omitempty"`
}

// Recipe is a stored recipe record.
//
// Time fields use 0 to mean "not specified".
type Recipe struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`

	// Instructions are the ordered preparation steps.
	Instructions []string `json:"instructions"`

	// Tips are free-form cooking tips.
	Tips []string `json:"tips,omitempty"`

	CuisineType      string   `json:"cuisine_type,omitempty"`
	Difficulty       string   `json:"difficulty,omitempty"`
	TotalTimeMinutes int      `json:"total_time_minutes,omitempty"`
	PrepTimeMinutes  int      `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes  int      `json:"cook_time_minutes,omitempty"`
	Servings         int      `json:"servings,omitempty"`
	ImageURL         string   `json:"image_url,omitempty"`
	MealTypes        []string `json:"meal_types,omitempty"`
	DietaryTags      []string `json:"dietary_tags,omitempty"`

	// EditorsPick marks a recipe the user flagged as a favorite pick.
	EditorsPick bool `json:"editors_pick"`

	// TextBlob is the lowercase concatenation of all textual fields.
	// Stores populate it on save; see BuildTextBlob.
	TextBlob string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveTotalTime returns the total time in minutes, falling back to
// prep + cook time. Returns 0 when no time is known.
func (r *Recipe) EffectiveTotalTime() int {
	if r.TotalTimeMinutes > 0 {
		return r.TotalTimeMinutes
	}
	if sum := r.PrepTimeMinutes + r.CookTimeMinutes; sum > 0 {
		return sum
	}
	return 0
}

// BuildTextBlob returns the lowercase text blob for a recipe: title,
// description, cuisine, difficulty, meal and dietary tags, ingredient items,
// instruction steps and tips joined by single spaces.
func BuildTextBlob(r *Recipe) string {
	parts := make([]string, 0, 4+len(r.MealTypes)+len(r.DietaryTags)+len(r.Ingredients)+len(r.Instructions)+len(r.Tips))

	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	add(r.Title)
	add(r.Description)
	add(r.CuisineType)
	add(r.Difficulty)
	for _, t := range r.MealTypes {
		add(t)
	}
	for _, t := range r.DietaryTags {
		add(t)
	}
	for _, ing := range r.Ingredients {
		add(ing.Item)
	}
	for _, step := range r.Instructions {
		add(step)
	}
	for _, tip := range r.Tips {
		add(tip)
	}

	return strings.ToLower(strings.Join(parts, " "))
}

// EnsureTextBlob fills TextBlob when it is empty.
func (r *Recipe) EnsureTextBlob() {
	if r.TextBlob == "" {
		r.TextBlob = BuildTextBlob(r)
	}
}

// RecipeFilter narrows a recipe listing. Zero values match everything.
type RecipeFilter struct {
	// Cuisine matches CuisineType case-insensitively.
	Cuisine string `json:"cuisine,omitempty"`

	// MealType requires the recipe to carry this meal-type tag.
	MealType string `json:"meal_type,omitempty"`

	// Dietary requires the recipe to carry this dietary tag.
	Dietary string `json:"dietary,omitempty"`

	// Difficulty matches Difficulty case-insensitively.
	Difficulty string `json:"difficulty,omitempty"`

	// MaxTotalTime excludes recipes slower than this many minutes.
	// Recipes with no known time are excluded when set.
	MaxTotalTime int `json:"max_total_time,omitempty"`

	// Search is a case-insensitive substring matched against the text blob.
	Search string `json:"search,omitempty"`

	// Limit caps the number of results (0 = unlimited).
	Limit int `json:"limit,omitempty"`
}

// IsEmpty reports whether the filter has no matching criteria.
func (f RecipeFilter) IsEmpty() bool {
	return f.Cuisine == "" && f.MealType == "" && f.Dietary == "" &&
		f.Difficulty == "" && f.MaxTotalTime <= 0 && f.Search == ""
}

// Matches reports whether the recipe satisfies every criterion of the filter.
func (f RecipeFilter) Matches(r *Recipe) bool {
	if f.Cuisine != "" && !strings.EqualFold(strings.TrimSpace(r.CuisineType), strings.TrimSpace(f.Cuisine)) {
		return false
	}
	if f.Difficulty != "" && !strings.EqualFold(strings.TrimSpace(r.Difficulty), strings.TrimSpace(f.Difficulty)) {
		return false
	}
	if f.MealType != "" && !containsFold(r.MealTypes, f.MealType) {
		return false
	}
	if f.Dietary != "" && !containsFold(r.DietaryTags, f.Dietary) {
		return false
	}
	if f.MaxTotalTime > 0 {
		t := r.EffectiveTotalTime()
		if t == 0 || t > f.MaxTotalTime {
			return false
		}
	}
	if f.Search != "" {
		blob := r.TextBlob
		if blob == "" {
			blob = BuildTextBlob(r)
		}
		if !strings.Contains(blob, strings.ToLower(strings.TrimSpace(f.Search))) {
			return false
		}
	}
	return true
}

// containsFold reports whether values contains target, ignoring case and
// surrounding whitespace.
func containsFold(values []string, target string) bool {
	target = strings.TrimSpace(target)
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}
