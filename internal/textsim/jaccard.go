// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package textsim

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/recipevault/internal/models"
)

var (
	nonLetterPattern = regexp.MustCompile(`[^a-z\s]`)
	bulkUnitPattern  = regexp.MustCompile(`(?i)(lb|pound|cup)`)
)

// mainIngredientKeywords mark ingredients that define a dish.
// Matched as substrings of the normalized ingredient item.
var mainIngredientKeywords = []string{
	"chicken", "beef", "pork", "fish", "tofu", "rice", "pasta", "bread",
}

// Ingredient weighting constants.
const (
	baseIngredientWeight = 1.0
	mainIngredientBonus  = 1.0
	bulkIngredientBonus  = 0.5
)

// Set is a string set.
type Set map[string]struct{}

// NewSet builds a set from items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	return sortedKeys(s)
}

// JaccardSimilarity returns |A ∩ B| / |A ∪ B|.
// Two empty sets are identical (1.0); exactly one empty set scores 0.0.
func JaccardSimilarity(a, b Set) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for item := range small {
		if large.Has(item) {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// NormalizeIngredient reduces an ingredient item to a canonical form:
// lowercase, non-letters replaced by spaces, each word stemmed, words of
// two characters or fewer dropped, remaining words sorted and joined.
//
//	NormalizeIngredient("Chopped Onions") == "chopp onion"
//	NormalizeIngredient("onions, chopped") == "chopp onion"
func NormalizeIngredient(item string) string {
	cleaned := nonLetterPattern.ReplaceAllString(strings.ToLower(item), " ")

	words := make([]string, 0, 4)
	for _, w := range strings.Fields(cleaned) {
		w = Stem(w)
		if len(w) <= 2 {
			continue
		}
		words = append(words, w)
	}

	sort.Strings(words)
	return strings.Join(words, " ")
}

// IngredientSet normalizes every ingredient item, discarding empty results.
func IngredientSet(ingredients []models.Ingredient) Set {
	s := make(Set, len(ingredients))
	for i := range ingredients {
		if norm := NormalizeIngredient(ingredients[i].Item); norm != "" {
			s[norm] = struct{}{}
		}
	}
	return s
}

// IngredientJaccard is the Jaccard similarity of two normalized ingredient sets.
func IngredientJaccard(a, b []models.Ingredient) float64 {
	return JaccardSimilarity(IngredientSet(a), IngredientSet(b))
}

// IngredientOverlap partitions two normalized ingredient sets.
// All slices are in lexical order.
type IngredientOverlap struct {
	Score     float64  `json:"score"`
	Common    []string `json:"common_ingredients"`
	UniqueToA []string `json:"unique_to_a"`
	UniqueToB []string `json:"unique_to_b"`
}

// GetIngredientOverlap scores two ingredient lists and reports which
// normalized ingredients they share and which are unique to each side.
func GetIngredientOverlap(a, b []models.Ingredient) IngredientOverlap {
	setA := IngredientSet(a)
	setB := IngredientSet(b)

	overlap := IngredientOverlap{
		Score:     JaccardSimilarity(setA, setB),
		Common:    []string{},
		UniqueToA: []string{},
		UniqueToB: []string{},
	}

	for _, item := range setA.Sorted() {
		if setB.Has(item) {
			overlap.Common = append(overlap.Common, item)
		} else {
			overlap.UniqueToA = append(overlap.UniqueToA, item)
		}
	}
	for _, item := range setB.Sorted() {
		if !setA.Has(item) {
			overlap.UniqueToB = append(overlap.UniqueToB, item)
		}
	}

	return overlap
}

// WeightedJaccardSimilarity is the generalized Jaccard index
// sum(min(wA, wB)) / sum(max(wA, wB)) over the union of keys.
// Keys absent from one side weigh 0 there. An empty union scores 1.0.
func WeightedJaccardSimilarity(a, b map[string]float64) float64 {
	keys := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	if len(keys) == 0 {
		return 1.0
	}

	var sumMin, sumMax float64
	for _, k := range sortedKeys(keys) {
		wa, wb := a[k], b[k]
		sumMin += math.Min(wa, wb)
		sumMax += math.Max(wa, wb)
	}

	if sumMax == 0 {
		return 1.0
	}
	return sumMin / sumMax
}

// GetIngredientWeights assigns an importance weight to each normalized
// ingredient: 1.0 baseline, +1.0 for main ingredients and +0.5 when the
// quantity exceeds 1 or the unit is a bulk unit. When two lines normalize to
// the same key the larger weight is kept.
func GetIngredientWeights(ingredients []models.Ingredient) map[string]float64 {
	weights := make(map[string]float64, len(ingredients))

	for i := range ingredients {
		ing := &ingredients[i]
		key := NormalizeIngredient(ing.Item)
		if key == "" {
			continue
		}

		w := baseIngredientWeight
		if isMainIngredient(key) {
			w += mainIngredientBonus
		}
		if ParseQuantity(ing.Quantity) > 1 || bulkUnitPattern.MatchString(ing.Unit) {
			w += bulkIngredientBonus
		}

		if existing, ok := weights[key]; !ok || w > existing {
			weights[key] = w
		}
	}

	return weights
}

// isMainIngredient reports whether the normalized item contains a main
// ingredient keyword.
func isMainIngredient(normalized string) bool {
	for _, kw := range mainIngredientKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// unicodeFractions maps vulgar fraction runes to their values.
var unicodeFractions = map[string]float64{
	"½": 0.5, "⅓": 1.0 / 3, "⅔": 2.0 / 3, "¼": 0.25, "¾": 0.75,
	"⅛": 0.125, "⅜": 0.375, "⅝": 0.625, "⅞": 0.875,
}

// ParseQuantity reads a leading numeric quantity such as "2", "1.5",
// "1/2" or "1 1/2". Parsing stops at the first part that is not a number,
// so ranges like "2-3" or "2 to 3" yield their lower bound.
// Returns 0 when nothing numeric is found.
func ParseQuantity(quantity string) float64 {
	var total float64
	for _, part := range strings.Fields(strings.TrimSpace(quantity)) {
		v, ok := parseQuantityPart(part)
		if !ok {
			break
		}
		total += v
	}
	return total
}

func parseQuantityPart(part string) (float64, bool) {
	if v, ok := unicodeFractions[part]; ok {
		return v, true
	}

	if num, den, found := strings.Cut(part, "/"); found {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}

	if lead, _, found := strings.Cut(part, "-"); found {
		part = lead
	}
	v, err := strconv.ParseFloat(part, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
