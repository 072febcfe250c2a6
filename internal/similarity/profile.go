// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package similarity

import (
	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/textsim"
)

// Profile holds the features of a recipe that similarity scoring compares.
// Building a profile tokenizes the recipe once so it can be compared against
// many others without repeating the work.
type Profile struct {
	Recipe *models.Recipe

	ingredients textsim.Set
	words       map[string]float64
	meta        metadataFeatures
}

// NewProfile extracts the comparison features of r. The recipe is not
// modified; a missing text blob is derived on the fly.
func NewProfile(r *models.Recipe) *Profile {
	blob := r.TextBlob
	if blob == "" {
		blob = models.BuildTextBlob(r)
	}

	return &Profile{
		Recipe:      r,
		ingredients: textsim.IngredientSet(r.Ingredients),
		words:       textsim.WordFrequency(blob),
		meta:        newMetadataFeatures(r),
	}
}

// Compare scores two profiles. The result is symmetric:
// a.Compare(b) and b.Compare(a) produce identical explanations.
func (p *Profile) Compare(other *Profile) Explanation {
	ingredient := textsim.JaccardSimilarity(p.ingredients, other.ingredients)
	text := textsim.FrequencyCosineSimilarity(p.words, other.words)
	meta := metadataScore(&p.meta, &other.meta)

	return newExplanation(ingredient, text, meta, commonIngredients(p.ingredients, other.ingredients))
}

func commonIngredients(a, b textsim.Set) []string {
	if len(a) > len(b) {
		a, b = b, a
	}
	common := make([]string, 0, len(a))
	for _, item := range a.Sorted() {
		if b.Has(item) {
			common = append(common, item)
		}
	}
	if len(common) == 0 {
		return nil
	}
	return common
}

// CalculateSimilarity scores a pair of recipes. It is pure and symmetric.
func CalculateSimilarity(a, b *models.Recipe) Explanation {
	return NewProfile(a).Compare(NewProfile(b))
}
