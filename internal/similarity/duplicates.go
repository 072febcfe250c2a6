// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package similarity

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/textsim"
)

// Fingerprint returns a stable hex SHA-256 of a recipe's distinct title
// tokens and normalized ingredient items, both sorted. Recipes that differ
// only in casing, punctuation, ingredient order or quantities share a
// fingerprint.
func Fingerprint(r *models.Recipe) string {
	title := textsim.TokenizeUnique(r.Title)
	ingredients := textsim.IngredientSet(r.Ingredients).Sorted()

	h := sha256.New()
	h.Write([]byte(strings.Join(title, " ")))
	h.Write([]byte{'|'})
	h.Write([]byte(strings.Join(ingredients, ",")))
	return hex.EncodeToString(h.Sum(nil))
}

// Duplicate is a candidate that looks like a copy of the target recipe.
type Duplicate struct {
	Recipe          *models.Recipe            `json:"recipe"`
	Score           float64                   `json:"score"`
	SameFingerprint bool                      `json:"same_fingerprint"`
	Overlap         textsim.IngredientOverlap `json:"ingredient_overlap"`
}

// FindPotentialDuplicates returns candidates sharing target's fingerprint or
// scoring at least threshold against it, ordered by score descending then
// recipe ID ascending. The target itself (by ID) is skipped.
func FindPotentialDuplicates(target *models.Recipe, candidates []*models.Recipe, threshold float64) []Duplicate {
	if threshold <= 0 {
		threshold = DefaultTooSimilarThreshold
	}

	targetProfile := NewProfile(target)
	targetPrint := Fingerprint(target)

	dups := make([]Duplicate, 0)
	for _, c := range candidates {
		if c.ID == target.ID {
			continue
		}

		score := targetProfile.Compare(NewProfile(c)).TotalScore
		same := Fingerprint(c) == targetPrint
		if !same && score < threshold {
			continue
		}

		dups = append(dups, Duplicate{
			Recipe:          c,
			Score:           score,
			SameFingerprint: same,
			Overlap:         textsim.GetIngredientOverlap(target.Ingredients, c.Ingredients),
		})
	}

	sort.SliceStable(dups, func(i, j int) bool {
		if dups[i].Score != dups[j].Score {
			return dups[i].Score > dups[j].Score
		}
		return dups[i].Recipe.ID < dups[j].Recipe.ID
	})
	return dups
}
