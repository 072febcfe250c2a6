// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package packs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/recipevault/internal/models"
)

// ErrUnknownTheme is returned for a theme name that has no definition.
var ErrUnknownTheme = errors.New("unknown theme")

// minThemedRecipes is the smallest pool a themed pack is built from.
const minThemedRecipes = 3

// Theme names a canned filter combination.
type Theme string

const (
	ThemeWeeknight Theme = "weeknight"
	ThemeHealthy   Theme = "healthy"
	ThemeComfort   Theme = "comfort"
	ThemeParty     Theme = "party"
	ThemeBudget    Theme = "budget"
)

type themeDefinition struct {
	prefix string
	reason string
	filter models.RecipeFilter
}

var themeDefinitions = map[Theme]themeDefinition{
	ThemeWeeknight: {
		prefix: "Weeknight",
		reason: "Dinners ready in 45 minutes or less",
		filter: models.RecipeFilter{MealType: "dinner", MaxTotalTime: 45},
	},
	ThemeHealthy: {
		prefix: "Healthy",
		reason: "Recipes tagged healthy",
		filter: models.RecipeFilter{Dietary: "healthy"},
	},
	ThemeComfort: {
		prefix: "Comfort Food",
		reason: "Recipes described as comfort food",
		filter: models.RecipeFilter{Search: "comfort"},
	},
	ThemeParty: {
		prefix: "Party",
		reason: "Appetizers for a crowd",
		filter: models.RecipeFilter{MealType: "appetizer"},
	},
	ThemeBudget: {
		prefix: "Budget",
		reason: "Easy recipes from simple ingredients",
		filter: models.RecipeFilter{Difficulty: "easy"},
	},
}

// ParseTheme resolves a theme name case-insensitively.
func ParseTheme(name string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := themeDefinitions[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// Themes returns every supported theme in lexical order.
func Themes() []Theme {
	out := make([]Theme, 0, len(themeDefinitions))
	for t := range themeDefinitions {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Filter returns the theme's listing filter.
func (t Theme) Filter() models.RecipeFilter {
	return themeDefinitions[t].filter
}

// Title is the display prefix used when naming the theme's packs.
func (t Theme) Title() string {
	return themeDefinitions[t].prefix
}

// Description explains which recipes qualify for the theme.
func (t Theme) Description() string {
	return themeDefinitions[t].reason
}
