// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package packs

import (
	"context"
	"fmt"
	"sort"

	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/similarity"
)

// Heuristic inclusion score components.
const (
	baseScore        = 1.0
	unusedBonus      = 0.5
	completenessStep = 0.1
	editorsPickBonus = 0.3
)

// Greedy selection weights.
const (
	diversityWeight = 0.7
	scoreWeight     = 0.3
)

// UsageCounter reports how often a recipe has been cooked.
type UsageCounter interface {
	GetRecipeUsageCount(ctx context.Context, id int64) (int, error)
}

// ScoreCandidates assigns every recipe its heuristic inclusion score and
// returns them sorted by score descending. Ties keep input order.
func ScoreCandidates(ctx context.Context, usage UsageCounter, recipes []*models.Recipe, preferUnused bool) ([]ScoredCandidate, error) {
	scored := make([]ScoredCandidate, 0, len(recipes))
	for _, r := range recipes {
		count, err := usage.GetRecipeUsageCount(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("usage count for recipe %d: %w", r.ID, err)
		}
		scored = append(scored, ScoredCandidate{
			Recipe:     r,
			Score:      candidateScore(r, count, preferUnused),
			UsageCount: count,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

func candidateScore(r *models.Recipe, usageCount int, preferUnused bool) float64 {
	score := baseScore
	if preferUnused && usageCount == 0 {
		score += unusedBonus
	}
	if r.ImageURL != "" {
		score += completenessStep
	}
	if r.Description != "" {
		score += completenessStep
	}
	if r.EffectiveTotalTime() > 0 {
		score += completenessStep
	}
	if r.Servings > 0 {
		score += completenessStep
	}
	if r.EditorsPick {
		score += editorsPickBonus
	}
	return score
}

// BuildDiversePack selects up to size recipes from candidates.
//
// With maximizeDiversity the pack is seeded with the highest-scored
// candidate and grown one recipe at a time, each step taking the candidate
// that maximizes 0.7*diversity(pack+candidate) + 0.3*score. The first
// candidate reaching the maximum wins ties. Without it, candidates are taken
// in descending score order.
//
// candidates is not modified.
func BuildDiversePack(candidates []ScoredCandidate, size int, maximizeDiversity bool) []*models.Recipe {
	return buildPack(similarity.NewMatrix(), candidates, size, maximizeDiversity)
}

func buildPack(m *similarity.Matrix, candidates []ScoredCandidate, size int, maximizeDiversity bool) []*models.Recipe {
	if size <= 0 || len(candidates) == 0 {
		return []*models.Recipe{}
	}
	if size > len(candidates) {
		size = len(candidates)
	}

	if !maximizeDiversity {
		return topByScore(candidates, size)
	}

	seed := 0
	for i := range candidates {
		if candidates[i].Score > candidates[seed].Score {
			seed = i
		}
	}

	selected := []*models.Recipe{candidates[seed].Recipe}
	used := map[int]bool{seed: true}

	for len(selected) < size {
		best := -1
		bestValue := 0.0

		for i := range candidates {
			if used[i] {
				continue
			}
			trial := withRecipe(selected, candidates[i].Recipe)
			value := diversityWeight*m.Diversity(trial) + scoreWeight*candidates[i].Score
			if best < 0 || value > bestValue {
				best = i
				bestValue = value
			}
		}
		if best < 0 {
			break
		}

		selected = withRecipe(selected, candidates[best].Recipe)
		used = withIndex(used, best)
	}

	return selected
}

// topByScore returns the first size candidates by score descending, keeping
// candidate order among equal scores.
func topByScore(candidates []ScoredCandidate, size int) []*models.Recipe {
	ordered := make([]ScoredCandidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	out := make([]*models.Recipe, 0, size)
	for _, c := range ordered[:size] {
		out = append(out, c.Recipe)
	}
	return out
}

// withRecipe returns a new slice holding pack followed by r.
func withRecipe(pack []*models.Recipe, r *models.Recipe) []*models.Recipe {
	out := make([]*models.Recipe, len(pack), len(pack)+1)
	copy(out, pack)
	return append(out, r)
}

// withIndex returns a copy of used with i marked.
func withIndex(used map[int]bool, i int) map[int]bool {
	out := make(map[int]bool, len(used)+1)
	for k := range used {
		out[k] = true
	}
	out[i] = true
	return out
}
