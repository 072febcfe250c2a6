// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/similarity"
)

const backendMemory = "memory"

// MemoryStore keeps recipes, usage counts and cached similarities in memory.
// It is safe for concurrent use. Returned recipes are shared and must not be
// modified; SaveRecipe replaces them instead.
type MemoryStore struct {
	mu           sync.RWMutex
	recipes      map[int64]*models.Recipe
	usage        map[int64]int
	similarities map[int64]map[int64]similarity.CachedSimilarity
	nextID       int64
	now          func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		recipes:      make(map[int64]*models.Recipe),
		usage:        make(map[int64]int),
		similarities: make(map[int64]map[int64]similarity.CachedSimilarity),
		nextID:       1,
		now:          time.Now,
	}
}

// ListRecipes returns recipes matching filter ordered by ID.
func (s *MemoryStore) ListRecipes(_ context.Context, filter models.RecipeFilter) ([]*models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Recipe, 0, len(s.recipes))
	for _, r := range s.sortedLocked() {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	return applyLimit(out, filter.Limit), nil
}

// GetRecipeByID returns the recipe or nil when absent.
func (s *MemoryStore) GetRecipeByID(_ context.Context, id int64) (*models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recipes[id], nil
}

// GetAllRecipes returns every recipe ordered by ID.
func (s *MemoryStore) GetAllRecipes(_ context.Context) ([]*models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(), nil
}

// GetRecipeUsageCount returns the number of recorded usage events.
func (s *MemoryStore) GetRecipeUsageCount(_ context.Context, id int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usage[id], nil
}

// CountRecipes returns the number of stored recipes.
func (s *MemoryStore) CountRecipes(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes), nil
}

// SaveRecipe inserts or replaces a recipe. Replacing an unknown ID is an
// error.
func (s *MemoryStore) SaveRecipe(_ context.Context, r *models.Recipe) (saved *models.Recipe, err error) {
	defer observe(backendMemory, "save_recipe", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	saved = prepareForSave(r, s.now())
	if saved.ID == 0 {
		saved.ID = s.nextID
	} else {
		existing, ok := s.recipes[saved.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, saved.ID)
		}
		saved.CreatedAt = existing.CreatedAt
	}
	if saved.ID >= s.nextID {
		s.nextID = saved.ID + 1
	}

	s.recipes[saved.ID] = saved
	s.invalidateLocked(saved.ID)
	return saved, nil
}

// DeleteRecipe removes a recipe, its usage and its cached similarities.
func (s *MemoryStore) DeleteRecipe(_ context.Context, id int64) (err error) {
	defer observe(backendMemory, "delete_recipe", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	delete(s.recipes, id)
	delete(s.usage, id)
	s.invalidateLocked(id)
	return nil
}

// RecordUsage increments the recipe's usage count.
func (s *MemoryStore) RecordUsage(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.usage[id]++
	return nil
}

// GetCachedSimilarities returns the entries anchored at recipeID.
func (s *MemoryStore) GetCachedSimilarities(_ context.Context, recipeID int64) ([]similarity.CachedSimilarity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.similarities[recipeID]
	out := make([]similarity.CachedSimilarity, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	return out, nil
}

// PutCachedSimilarity stores the (recipeID, otherID) entry.
func (s *MemoryStore) PutCachedSimilarity(_ context.Context, recipeID, otherID int64, score float64, exp similarity.Explanation) error {
	data, err := similarity.MarshalExplanation(exp)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	anchor, ok := s.similarities[recipeID]
	if !ok {
		anchor = make(map[int64]similarity.CachedSimilarity)
		s.similarities[recipeID] = anchor
	}
	anchor[otherID] = similarity.CachedSimilarity{OtherID: otherID, Score: score, ExplanationJSON: data}
	return nil
}

// InvalidateSimilarities drops entries where recipeID is either side.
func (s *MemoryStore) InvalidateSimilarities(_ context.Context, recipeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateLocked(recipeID)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) invalidateLocked(recipeID int64) {
	delete(s.similarities, recipeID)
	for _, entries := range s.similarities {
		delete(entries, recipeID)
	}
}

func (s *MemoryStore) sortedLocked() []*models.Recipe {
	out := make([]*models.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var (
	_ RecipeStore     = (*MemoryStore)(nil)
	_ SimilarityStore = (*MemoryStore)(nil)
)
