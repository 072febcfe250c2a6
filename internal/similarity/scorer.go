// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package similarity

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/recipevault/internal/metrics"
	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/textsim"
)

// ErrRecipeNotFound is returned when an anchor recipe does not exist.
var ErrRecipeNotFound = errors.New("recipe not found")

// Result is one ranked similar recipe.
type Result struct {
	Recipe      *models.Recipe `json:"recipe"`
	Score       float64        `json:"score"`
	Explanation Explanation    `json:"explanation"`
}

// Scorer ranks recipes by similarity and owns the cache read/write contract.
// It holds no mutable state of its own and is safe for concurrent use when
// its source and cache are.
type Scorer struct {
	source RecipeSource
	cache  Cache
	config *Config
	logger zerolog.Logger
}

// NewScorer creates a scorer. cache may be nil, in which case every lookup
// is computed.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewScorer(source RecipeSource, cache Cache, cfg *Config, logger zerolog.Logger) (*Scorer, error) {
	if source == nil {
		return nil, errors.New("recipe source is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid similarity config: %w", err)
	}

	return &Scorer{
		source: source,
		cache:  cache,
		config: cfg,
		logger: logger.With().Str("component", "similarity").Logger(),
	}, nil
}

// Config returns the scorer configuration.
func (s *Scorer) Config() Config {
	return *s.config
}

// Source returns the recipe source the scorer reads from.
func (s *Scorer) Source() RecipeSource {
	return s.source
}

// GetSimilarRecipes returns up to limit recipes most similar to recipeID,
// ordered by score descending with ties broken by ascending recipe ID.
//
// Cached entries anchored at recipeID are used when present. Otherwise the
// recipe is compared against the whole library and every (recipeID, other)
// score is written to the cache. Only that direction is written.
func (s *Scorer) GetSimilarRecipes(ctx context.Context, recipeID int64, limit int) ([]Result, error) {
	start := time.Now()
	defer func() {
		metrics.RecordSimilarityDuration("get_similar", time.Since(start))
	}()

	target, err := s.source.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("load recipe %d: %w", recipeID, err)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %d", ErrRecipeNotFound, recipeID)
	}

	limit = s.config.effectiveLimit(limit)

	if s.cache != nil {
		entries, err := s.cache.GetCachedSimilarities(ctx, recipeID)
		switch {
		case err != nil:
			metrics.RecordSimilarityCacheLookup("store", metrics.CacheError)
			s.logger.Warn().Err(err).Int64("recipe_id", recipeID).Msg("Similarity cache read failed, recomputing")
		case len(entries) > 0:
			metrics.RecordSimilarityCacheLookup("store", metrics.CacheHit)
			return s.resultsFromCache(ctx, recipeID, entries, limit)
		default:
			metrics.RecordSimilarityCacheLookup("store", metrics.CacheMiss)
		}
	}

	return s.computeAndCache(ctx, target, limit)
}

func (s *Scorer) resultsFromCache(ctx context.Context, recipeID int64, entries []CachedSimilarity, limit int) ([]Result, error) {
	sorted := make([]CachedSimilarity, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].OtherID < sorted[j].OtherID
	})

	results := make([]Result, 0, limit)
	for _, entry := range sorted {
		if len(results) >= limit {
			break
		}
		if entry.OtherID == recipeID {
			continue
		}

		other, err := s.source.GetRecipeByID(ctx, entry.OtherID)
		if err != nil {
			return nil, fmt.Errorf("load recipe %d: %w", entry.OtherID, err)
		}
		if other == nil {
			// Deleted since the entry was written.
			continue
		}

		exp, err := UnmarshalExplanation(entry.ExplanationJSON, entry.Score)
		if err != nil {
			s.logger.Warn().Err(err).
				Int64("recipe_id", recipeID).
				Int64("other_id", entry.OtherID).
				Msg("Corrupt cached explanation, using zero components")
		}

		results = append(results, Result{Recipe: other, Score: entry.Score, Explanation: exp})
	}

	s.logger.Debug().Int64("recipe_id", recipeID).Int("results", len(results)).Msg("Similar recipes served from cache")
	return results, nil
}

func (s *Scorer) computeAndCache(ctx context.Context, target *models.Recipe, limit int) ([]Result, error) {
	all, err := s.source.GetAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	targetProfile := NewProfile(target)
	results := make([]Result, 0, len(all))
	writeFailures := 0

	for _, other := range all {
		if other.ID == target.ID {
			continue
		}

		exp := targetProfile.Compare(NewProfile(other))
		results = append(results, Result{Recipe: other, Score: exp.TotalScore, Explanation: exp})

		if s.cache == nil {
			continue
		}
		if err := s.cache.PutCachedSimilarity(ctx, target.ID, other.ID, exp.TotalScore, exp); err != nil {
			if writeFailures == 0 {
				s.logger.Warn().Err(err).Int64("recipe_id", target.ID).Msg("Similarity cache write failed")
			}
			writeFailures++
		}
	}
	metrics.RecordSimilarityComputations(len(results))

	sortResults(results)
	if len(results) > limit {
		results = results[:limit]
	}

	s.logger.Debug().
		Int64("recipe_id", target.ID).
		Int("compared", len(all)-1).
		Int("cache_write_failures", writeFailures).
		Msg("Similar recipes computed")

	return results, nil
}

// FindSimilarRecipes scores target against candidates without touching any
// cache. The target itself (by ID) is skipped. A non-positive limit returns
// every candidate.
func FindSimilarRecipes(target *models.Recipe, candidates []*models.Recipe, limit int) []Result {
	targetProfile := NewProfile(target)

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == target.ID {
			continue
		}
		exp := targetProfile.Compare(NewProfile(c))
		results = append(results, Result{Recipe: c, Score: exp.TotalScore, Explanation: exp})
	}
	metrics.RecordSimilarityComputations(len(results))

	sortResults(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// FindDuplicates loads the library and returns likely duplicates of recipeID.
// A non-positive threshold uses the configured too-similar threshold.
func (s *Scorer) FindDuplicates(ctx context.Context, recipeID int64, threshold float64) ([]Duplicate, error) {
	start := time.Now()
	defer func() {
		metrics.RecordSimilarityDuration("find_duplicates", time.Since(start))
	}()

	target, err := s.source.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("load recipe %d: %w", recipeID, err)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %d", ErrRecipeNotFound, recipeID)
	}

	all, err := s.source.GetAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	if threshold <= 0 {
		threshold = s.config.TooSimilarThreshold
	}
	return FindPotentialDuplicates(target, all, threshold), nil
}

// TopTerms returns the n most distinctive terms of a recipe's text blob
// measured against the rest of the library.
func (s *Scorer) TopTerms(ctx context.Context, recipeID int64, n int) ([]textsim.TermScore, error) {
	start := time.Now()
	defer func() {
		metrics.RecordSimilarityDuration("top_terms", time.Since(start))
	}()

	target, err := s.source.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("load recipe %d: %w", recipeID, err)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %d", ErrRecipeNotFound, recipeID)
	}

	all, err := s.source.GetAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	corpus := make([]string, 0, len(all))
	for _, r := range all {
		if r.ID == target.ID {
			continue
		}
		corpus = append(corpus, textBlob(r))
	}

	return textsim.GetTopTerms(textBlob(target), corpus, s.config.effectiveLimit(n)), nil
}

// InvalidateRecipe drops cached scores involving recipeID when the cache
// supports it.
func (s *Scorer) InvalidateRecipe(ctx context.Context, recipeID int64) error {
	inv, ok := s.cache.(Invalidator)
	if !ok {
		return nil
	}
	return inv.InvalidateSimilarities(ctx, recipeID)
}

// sortResults orders by score descending, then recipe ID ascending.
func sortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Recipe.ID < results[j].Recipe.ID
	})
}

func textBlob(r *models.Recipe) string {
	if r.TextBlob != "" {
		return r.TextBlob
	}
	return models.BuildTextBlob(r)
}
