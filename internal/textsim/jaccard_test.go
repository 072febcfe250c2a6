// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package textsim

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/recipevault/internal/models"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestJaccardSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Set
		want float64
	}{
		{"both empty", NewSet(), NewSet(), 1.0},
		{"one empty", NewSet(), NewSet("x"), 0.0},
		{"other empty", NewSet("x"), NewSet(), 0.0},
		{"identical", NewSet("a", "b"), NewSet("a", "b"), 1.0},
		{"half overlap", NewSet("a", "b", "c"), NewSet("b", "c", "d"), 0.5},
		{"disjoint", NewSet("a"), NewSet("b"), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := JaccardSimilarity(tt.a, tt.b); !approxEqual(got, tt.want) {
				t.Errorf("JaccardSimilarity() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestNormalizeIngredient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		item string
		want string
	}{
		{"Chopped Onions", "chopp onion"},
		{"onions, chopped", "chopp onion"},
		{"2 cups chopped onions", "chopp cup onion"},
		{"1 onion, diced", "dic onion"},
		{"Olive Oil", "oil olive"},
		{"red onion", "onion"},
		{"Green Peas", "green"},
		{"1/2", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeIngredient(tt.item); got != tt.want {
				t.Errorf("NormalizeIngredient(%q) = %q, want %q", tt.item, got, tt.want)
			}
		})
	}
}

func TestIngredientJaccard(t *testing.T) {
	t.Parallel()

	a := []models.Ingredient{{Item: "Chicken Breast"}, {Item: "Garlic"}}
	b := []models.Ingredient{{Item: "garlic"}, {Item: "Rice"}}

	ab := IngredientJaccard(a, b)
	ba := IngredientJaccard(b, a)
	if !approxEqual(ab, 1.0/3) {
		t.Errorf("IngredientJaccard() = %f, want %f", ab, 1.0/3)
	}
	if ab != ba {
		t.Errorf("IngredientJaccard not symmetric: %f != %f", ab, ba)
	}

	if got := IngredientJaccard(nil, nil); got != 1.0 {
		t.Errorf("IngredientJaccard(nil, nil) = %f, want 1.0", got)
	}
	blank := []models.Ingredient{{Item: "  "}, {Item: "1/2"}}
	if got := IngredientJaccard(blank, a); got != 0.0 {
		t.Errorf("IngredientJaccard(blank, a) = %f, want 0.0", got)
	}
}

func TestIngredientJaccard_ShortStemsDropped(t *testing.T) {
	t.Parallel()

	// "red" stems to "r" and is dropped, leaving the same ingredient.
	a := []models.Ingredient{{Item: "1 red onion, diced"}}
	b := []models.Ingredient{{Item: "2 onions, diced"}}
	if got := IngredientJaccard(a, b); got != 1.0 {
		t.Errorf("IngredientJaccard() = %f, want 1.0 (%q vs %q)",
			got, NormalizeIngredient(a[0].Item), NormalizeIngredient(b[0].Item))
	}
}

func TestIngredientJaccard_Symmetry(t *testing.T) {
	t.Parallel()

	lists := [][]models.Ingredient{
		nil,
		{{Item: "butter"}},
		{{Item: "Butter"}, {Item: "flour"}, {Item: "sugar"}},
		{{Item: "eggs"}, {Item: "flour"}, {Item: "whole milk"}},
		{{Item: "tomatoes, diced"}, {Item: "basil leaves"}},
	}

	for i := range lists {
		for j := range lists {
			ab := IngredientJaccard(lists[i], lists[j])
			ba := IngredientJaccard(lists[j], lists[i])
			if ab != ba {
				t.Errorf("IngredientJaccard(%d,%d) = %f, reversed = %f", i, j, ab, ba)
			}
		}
	}
}

func TestGetIngredientOverlap(t *testing.T) {
	t.Parallel()

	a := []models.Ingredient{{Item: "Chicken Breast"}, {Item: "Garlic"}}
	b := []models.Ingredient{{Item: "garlic"}, {Item: "Rice"}}

	got := GetIngredientOverlap(a, b)
	want := IngredientOverlap{
		Score:     1.0 / 3,
		Common:    []string{"garlic"},
		UniqueToA: []string{"breast chicken"},
		UniqueToB: []string{"rice"},
	}

	if !approxEqual(got.Score, want.Score) {
		t.Errorf("Score = %f, want %f", got.Score, want.Score)
	}
	if !reflect.DeepEqual(got.Common, want.Common) {
		t.Errorf("Common = %v, want %v", got.Common, want.Common)
	}
	if !reflect.DeepEqual(got.UniqueToA, want.UniqueToA) {
		t.Errorf("UniqueToA = %v, want %v", got.UniqueToA, want.UniqueToA)
	}
	if !reflect.DeepEqual(got.UniqueToB, want.UniqueToB) {
		t.Errorf("UniqueToB = %v, want %v", got.UniqueToB, want.UniqueToB)
	}
}

func TestWeightedJaccardSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b map[string]float64
		want float64
	}{
		{"empty union", nil, map[string]float64{}, 1.0},
		{"identical", map[string]float64{"a": 2}, map[string]float64{"a": 2}, 1.0},
		{"partial weights", map[string]float64{"a": 1, "b": 2}, map[string]float64{"a": 1, "b": 1}, 2.0 / 3},
		{"disjoint", map[string]float64{"a": 2}, map[string]float64{"b": 2}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := WeightedJaccardSimilarity(tt.a, tt.b); !approxEqual(got, tt.want) {
				t.Errorf("WeightedJaccardSimilarity() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestGetIngredientWeights(t *testing.T) {
	t.Parallel()

	ingredients := []models.Ingredient{
		{Quantity: "2", Unit: "lb", Item: "Chicken Thighs"},
		{Quantity: "1", Unit: "tsp", Item: "salt"},
		{Quantity: "1 1/2", Unit: "tbsp", Item: "olive oil"},
		{Quantity: "1", Unit: "Cups", Item: "bread crumbs"},
		{Quantity: "", Unit: "", Item: "..."},
	}

	got := GetIngredientWeights(ingredients)
	want := map[string]float64{
		"chicken thigh": 2.5,
		"salt":          1.0,
		"oil olive":     1.5,
		"bread crumb":   2.5,
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetIngredientWeights() = %v, want %v", got, want)
	}
}

func TestGetIngredientWeights_CollisionKeepsMax(t *testing.T) {
	t.Parallel()

	got := GetIngredientWeights([]models.Ingredient{
		{Quantity: "1", Item: "onion"},
		{Quantity: "3", Item: "onions"},
	})
	if got["onion"] != 1.5 {
		t.Errorf("weight[onion] = %f, want 1.5", got["onion"])
	}
}

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"2", 2},
		{"1.5", 1.5},
		{"1/2", 0.5},
		{"1 1/2", 1.5},
		{"½", 0.5},
		{"2-3", 2},
		{"2 to 3", 2},
		{"a pinch", 0},
		{"1/0", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := ParseQuantity(tt.in); !approxEqual(got, tt.want) {
				t.Errorf("ParseQuantity(%q) = %f, want %f", tt.in, got, tt.want)
			}
		})
	}
}
