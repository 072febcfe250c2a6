// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package similarity

import (
	"github.com/tomtom215/recipevault/internal/models"
)

// DefaultTooSimilarThreshold is the total score at or above which two
// recipes are considered near duplicates.
const DefaultTooSimilarThreshold = 0.80

// AreTooSimilar reports whether the total score of a and b reaches threshold.
// A non-positive threshold uses DefaultTooSimilarThreshold.
func AreTooSimilar(a, b *models.Recipe, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultTooSimilarThreshold
	}
	return CalculateSimilarity(a, b).TotalScore >= threshold
}

// CalculatePackDiversity returns 1 minus the average total score over all
// unordered pairs. Fewer than two recipes are maximally diverse (1.0).
func CalculatePackDiversity(recipes []*models.Recipe) float64 {
	if len(recipes) < 2 {
		return 1.0
	}

	profiles := make([]*Profile, len(recipes))
	for i, r := range recipes {
		profiles[i] = NewProfile(r)
	}

	return diversity(len(recipes), func(i, j int) float64 {
		return profiles[i].Compare(profiles[j]).TotalScore
	})
}

// diversity averages pairScore over i < j in row-major order. Every diversity
// computation goes through here so memoized and direct paths sum in the same
// order and agree exactly.
func diversity(n int, pairScore func(i, j int) float64) float64 {
	if n < 2 {
		return 1.0
	}

	var sum float64
	pairs := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += pairScore(i, j)
			pairs++
		}
	}
	return clamp01(1 - sum/float64(pairs))
}

// Matrix memoizes pairwise total scores for repeated diversity evaluation
// over an overlapping set of recipes, as in greedy pack building.
// A Matrix is not safe for concurrent use.
type Matrix struct {
	profiles map[*models.Recipe]*Profile
	scores   map[[2]*models.Recipe]float64
	computed int
}

// NewMatrix returns an empty Matrix.
func NewMatrix() *Matrix {
	return &Matrix{
		profiles: make(map[*models.Recipe]*Profile),
		scores:   make(map[[2]*models.Recipe]float64),
	}
}

func (m *Matrix) profile(r *models.Recipe) *Profile {
	p, ok := m.profiles[r]
	if !ok {
		p = NewProfile(r)
		m.profiles[r] = p
	}
	return p
}

// Score returns the total similarity of a and b.
func (m *Matrix) Score(a, b *models.Recipe) float64 {
	if s, ok := m.scores[[2]*models.Recipe{a, b}]; ok {
		return s
	}
	if s, ok := m.scores[[2]*models.Recipe{b, a}]; ok {
		return s
	}

	s := m.profile(a).Compare(m.profile(b)).TotalScore
	m.scores[[2]*models.Recipe{a, b}] = s
	m.computed++
	return s
}

// Diversity is CalculatePackDiversity backed by the memo.
func (m *Matrix) Diversity(recipes []*models.Recipe) float64 {
	return diversity(len(recipes), func(i, j int) float64 {
		return m.Score(recipes[i], recipes[j])
	})
}

// Computed returns how many distinct pairs were scored.
func (m *Matrix) Computed() int {
	return m.computed
}
