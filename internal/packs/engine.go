// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package packs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/recipevault/internal/metrics"
	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/similarity"
)

// Strategy thresholds.
const (
	quickMaxMinutes      = 30
	minStrategyRecipes   = 5
	minFocusedRecipesCap = 5
)

// Engine assembles pack suggestions from the recipe library. It keeps no
// state between calls and is safe for concurrent use when its source is.
type Engine struct {
	source similarity.RecipeSource
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a pack engine reading from source.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(source similarity.RecipeSource, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if source == nil {
		return nil, errors.New("recipe source is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid packs config: %w", err)
	}

	return &Engine{
		source: source,
		config: cfg,
		logger: logger.With().Str("component", "packs").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// GeneratePackSuggestions runs every strategy over the candidates selected
// by opts and returns the distinct packs ordered by diversity descending.
// An empty slice means no recipe qualified.
//
//nolint:gocritic // hugeParam: opts passed by value for immutability
func (e *Engine) GeneratePackSuggestions(ctx context.Context, opts Options) ([]Suggestion, error) {
	start := time.Now()
	defer func() {
		metrics.RecordPackBuild("suggestions", time.Since(start))
	}()

	size := e.config.packSize(opts.PackSize)
	logger := e.logger.With().Int("pack_size", size).Logger()

	recipes, err := e.candidates(ctx, opts.Filter(), size, logger)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		logger.Debug().Msg("No candidates for pack suggestions")
		return []Suggestion{}, nil
	}

	scored, err := ScoreCandidates(ctx, e.source, recipes, opts.PreferUnused)
	if err != nil {
		return nil, fmt.Errorf("score candidates: %w", err)
	}

	m := similarity.NewMatrix()
	var suggestions []Suggestion

	if pack := buildPack(m, scored, size, opts.MaximizeDiversity); len(pack) > 0 {
		reason := "Top-rated recipes from your library"
		if opts.MaximizeDiversity {
			reason = "Chosen for maximum variety"
		}
		suggestions = append(suggestions, newSuggestion(m, StrategyDiverse, "Diverse", pack, reason))
	}

	if opts.Cuisine != "" {
		focused := topByScore(matching(scored, func(c ScoredCandidate) bool {
			return strings.EqualFold(strings.TrimSpace(c.Recipe.CuisineType), strings.TrimSpace(opts.Cuisine))
		}), size)
		if len(focused) >= min(size, minFocusedRecipesCap) {
			suggestions = append(suggestions, newSuggestion(m, StrategyCuisine, "Focused", focused,
				"Focused on "+strings.TrimSpace(opts.Cuisine)+" cuisine"))
		} else {
			logger.Debug().Int("qualifying", len(focused)).Msg("Cuisine-focused pack omitted")
		}
	}

	quick := matching(scored, func(c ScoredCandidate) bool {
		t := c.Recipe.EffectiveTotalTime()
		return t > 0 && t <= quickMaxMinutes
	})
	if len(quick) >= minStrategyRecipes {
		suggestions = append(suggestions, newSuggestion(m, StrategyQuickEasy, "Quick & Easy",
			buildPack(m, quick, size, opts.MaximizeDiversity),
			fmt.Sprintf("Every recipe ready in %d minutes or less", quickMaxMinutes)))
	} else {
		logger.Debug().Int("qualifying", len(quick)).Msg("Quick & Easy pack omitted")
	}

	if opts.PreferUnused {
		fresh := matching(scored, func(c ScoredCandidate) bool { return c.UsageCount == 0 })
		if len(fresh) >= minStrategyRecipes {
			suggestions = append(suggestions, newSuggestion(m, StrategyFreshPicks, "Fresh Picks",
				buildPack(m, fresh, size, opts.MaximizeDiversity),
				"Recipes you have not cooked yet"))
		} else {
			logger.Debug().Int("qualifying", len(fresh)).Msg("Fresh Picks pack omitted")
		}
	}

	suggestions = dedupe(suggestions)
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].DiversityScore > suggestions[j].DiversityScore
	})

	for i := range suggestions {
		metrics.RecordPackSuggestion(suggestions[i].Strategy, suggestions[i].DiversityScore)
	}

	logger.Debug().
		Int("candidates", len(scored)).
		Int("suggestions", len(suggestions)).
		Int("pairs_scored", m.Computed()).
		Msg("Pack suggestions generated")

	return suggestions, nil
}

// GenerateThemedPack builds one diverse pack from the theme's canned filter.
// It returns nil when fewer than three recipes qualify.
func (e *Engine) GenerateThemedPack(ctx context.Context, themeName string, size int) (*Suggestion, error) {
	start := time.Now()
	defer func() {
		metrics.RecordPackBuild("themed", time.Since(start))
	}()

	theme, err := ParseTheme(themeName)
	if err != nil {
		return nil, err
	}
	def := themeDefinitions[theme]
	size = e.config.packSize(size)

	recipes, err := e.source.ListRecipes(ctx, def.filter)
	if err != nil {
		return nil, fmt.Errorf("list recipes for theme %s: %w", theme, err)
	}
	if len(recipes) < minThemedRecipes {
		e.logger.Debug().
			Str("theme", string(theme)).
			Int("qualifying", len(recipes)).
			Msg("Themed pack omitted")
		return nil, nil
	}

	scored, err := ScoreCandidates(ctx, e.source, recipes, false)
	if err != nil {
		return nil, fmt.Errorf("score candidates: %w", err)
	}

	m := similarity.NewMatrix()
	s := newSuggestion(m, StrategyThemed, def.prefix, buildPack(m, scored, size, true), def.reason)
	metrics.RecordPackSuggestion(s.Strategy, s.DiversityScore)
	return &s, nil
}

// candidates lists recipes matching filter, widening to the whole library
// when fewer than size match.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (e *Engine) candidates(ctx context.Context, filter models.RecipeFilter, size int, logger zerolog.Logger) ([]*models.Recipe, error) {
	recipes, err := e.source.ListRecipes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	if len(recipes) >= size || filter.IsEmpty() {
		return recipes, nil
	}

	all, err := e.source.GetAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all recipes: %w", err)
	}
	logger.Debug().
		Int("filtered", len(recipes)).
		Int("library", len(all)).
		Msg("Filter too narrow, widening to all recipes")
	return all, nil
}

func newSuggestion(m *similarity.Matrix, strategy, prefix string, recipes []*models.Recipe, reason string) Suggestion {
	div := m.Diversity(recipes)
	return Suggestion{
		Name:           PackName(prefix, recipes),
		Description:    PackDescription(recipes),
		Strategy:       strategy,
		Recipes:        recipes,
		DiversityScore: div,
		Reasons:        append([]string{reason}, packReasons(recipes, div)...),
	}
}

func matching(candidates []ScoredCandidate, keep func(ScoredCandidate) bool) []ScoredCandidate {
	out := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// dedupe drops suggestions whose recipe set, ignoring order, was already
// seen. The first occurrence wins.
func dedupe(suggestions []Suggestion) []Suggestion {
	seen := make(map[string]bool, len(suggestions))
	out := make([]Suggestion, 0, len(suggestions))
	for i := range suggestions {
		key := recipeSetKey(suggestions[i].Recipes)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, suggestions[i])
	}
	return out
}

func recipeSetKey(recipes []*models.Recipe) string {
	ids := make([]int64, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(id, 10))
	}
	return b.String()
}
