// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package packs

import (
	"github.com/tomtom215/recipevault/internal/models"
)

// Strategy names identify how a suggestion was assembled.
const (
	StrategyDiverse    = "diverse"
	StrategyCuisine    = "cuisine_focused"
	StrategyQuickEasy  = "quick_easy"
	StrategyFreshPicks = "fresh_picks"
	StrategyThemed     = "themed"
)

// Options controls a pack suggestion request.
type Options struct {
	// PackSize is the number of recipes per pack. 0 uses the configured
	// default.
	PackSize int `json:"pack_size" validate:"omitempty,min=1,max=25"`

	// Cuisine restricts candidates and enables the cuisine-focused strategy.
	Cuisine string `json:"cuisine,omitempty" validate:"omitempty,max=100"`

	MealType string `json:"meal_type,omitempty" validate:"omitempty,max=100"`
	Dietary  string `json:"dietary,omitempty" validate:"omitempty,max=100"`

	// MaxTotalTime restricts candidates to recipes ready within this many
	// minutes.
	MaxTotalTime int `json:"max_total_time,omitempty" validate:"omitempty,min=1,max=1440"`

	// PreferUnused boosts never-cooked recipes and enables Fresh Picks.
	PreferUnused bool `json:"prefer_unused"`

	// MaximizeDiversity selects greedily for variety instead of taking the
	// top-scored candidates.
	MaximizeDiversity bool `json:"maximize_diversity"`
}

// Filter returns the listing filter described by the options.
func (o Options) Filter() models.RecipeFilter {
	return models.RecipeFilter{
		Cuisine:      o.Cuisine,
		MealType:     o.MealType,
		Dietary:      o.Dietary,
		MaxTotalTime: o.MaxTotalTime,
	}
}

// ScoredCandidate is a recipe with its heuristic inclusion score.
type ScoredCandidate struct {
	Recipe     *models.Recipe `json:"recipe"`
	Score      float64        `json:"score"`
	UsageCount int            `json:"usage_count"`
}

// Suggestion is a proposed pack. Suggestions are built per request and never
// stored by this package.
type Suggestion struct {
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Strategy       string           `json:"strategy"`
	Recipes        []*models.Recipe `json:"recipes"`
	DiversityScore float64          `json:"diversity_score"`
	Reasons        []string         `json:"reasons"`
}

// RecipeIDs returns the IDs of the pack's recipes in pack order.
func (s *Suggestion) RecipeIDs() []int64 {
	ids := make([]int64, len(s.Recipes))
	for i, r := range s.Recipes {
		ids[i] = r.ID
	}
	return ids
}
