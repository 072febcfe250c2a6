// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package packs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/recipevault/internal/models"
)

// maxListedCuisines is how many cuisines a description names.
const maxListedCuisines = 3

type cuisineCount struct {
	name  string
	count int
	first int
}

// cuisineDistribution groups recipes by cuisine, ignoring case, and orders
// the groups by count descending then first appearance. Each group keeps the
// spelling of its first recipe. Recipes without a cuisine are skipped.
func cuisineDistribution(recipes []*models.Recipe) []cuisineCount {
	index := make(map[string]int)
	var counts []cuisineCount

	for i, r := range recipes {
		name := strings.TrimSpace(r.CuisineType)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if pos, ok := index[key]; ok {
			counts[pos].count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, cuisineCount{name: name, count: 1, first: i})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].first < counts[j].first
	})
	return counts
}

// PackName names a pack after its dominant cuisine when one cuisine covers
// more than a third of the recipes.
func PackName(prefix string, recipes []*models.Recipe) string {
	dist := cuisineDistribution(recipes)
	if len(dist) > 0 && dist[0].count*3 > len(recipes) {
		return fmt.Sprintf("%s %s Collection", prefix, dist[0].name)
	}
	return prefix + " Recipe Collection"
}

// PackDescription summarizes the recipe count and up to three cuisines.
func PackDescription(recipes []*models.Recipe) string {
	noun := "recipes"
	if len(recipes) == 1 {
		noun = "recipe"
	}
	desc := fmt.Sprintf("%d %s", len(recipes), noun)

	dist := cuisineDistribution(recipes)
	if len(dist) == 0 {
		return desc
	}

	names := make([]string, 0, maxListedCuisines)
	for i := 0; i < len(dist) && i < maxListedCuisines; i++ {
		names = append(names, dist[i].name)
	}

	var listed string
	switch {
	case len(dist) > maxListedCuisines:
		listed = strings.Join(names, ", ") + " and more"
	case len(names) == 1:
		listed = names[0]
	default:
		listed = strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
	return desc + " featuring " + listed
}

// sharedMealType returns the meal type carried by every recipe, if any,
// in the spelling of the first recipe.
func sharedMealType(recipes []*models.Recipe) string {
	if len(recipes) == 0 {
		return ""
	}
	for _, candidate := range recipes[0].MealTypes {
		all := true
		for _, r := range recipes[1:] {
			if !hasFold(r.MealTypes, candidate) {
				all = false
				break
			}
		}
		if all {
			return candidate
		}
	}
	return ""
}

func hasFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

// packReasons lists human-readable justifications shared by every strategy.
func packReasons(recipes []*models.Recipe, diversity float64) []string {
	var reasons []string

	if n := len(cuisineDistribution(recipes)); n > 1 {
		reasons = append(reasons, fmt.Sprintf("Spans %d cuisines", n))
	}
	if meal := sharedMealType(recipes); meal != "" {
		reasons = append(reasons, "Every recipe works for "+strings.ToLower(meal))
	}

	picks := 0
	for _, r := range recipes {
		if r.EditorsPick {
			picks++
		}
	}
	if picks > 0 {
		reasons = append(reasons, fmt.Sprintf("Includes %d editor's pick(s)", picks))
	}

	reasons = append(reasons, fmt.Sprintf("Diversity score %.2f", diversity))
	return reasons
}
