// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package similarity

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/tomtom215/recipevault/internal/models"
)

// newRecipe builds a recipe fixture with a populated text blob.
func newRecipe(id int64, title, cuisine string, minutes int, mealTypes []string, items ...string) *models.Recipe {
	r := &models.Recipe{
		ID:               id,
		Title:            title,
		CuisineType:      cuisine,
		Difficulty:       "easy",
		TotalTimeMinutes: minutes,
		MealTypes:        mealTypes,
	}
	for _, item := range items {
		r.Ingredients = append(r.Ingredients, models.Ingredient{Item: item})
	}
	r.EnsureTextBlob()
	return r
}

func fixtureLibrary() []*models.Recipe {
	return []*models.Recipe{
		newRecipe(1, "Chicken Curry", "Indian", 40, []string{"dinner"}, "chicken thighs", "garlic", "ginger", "basmati rice", "onions"),
		newRecipe(2, "Chicken Tikka Masala", "Indian", 50, []string{"dinner"}, "chicken breast", "garlic", "ginger", "tomatoes", "cream"),
		newRecipe(3, "Spaghetti Carbonara", "Italian", 25, []string{"dinner", "lunch"}, "spaghetti", "eggs", "pecorino", "guanciale"),
		newRecipe(4, "Margherita Pizza", "Italian", 30, []string{"dinner"}, "pizza dough", "tomatoes", "mozzarella", "basil"),
		newRecipe(5, "Pancakes", "American", 15, []string{"breakfast"}, "flour", "eggs", "milk", "butter"),
		newRecipe(6, "Chicken Biryani", "Indian", 60, []string{"dinner"}, "chicken thighs", "basmati rice", "onions", "yogurt", "garlic"),
	}
}

// fakeSource is an in-memory RecipeSource.
type fakeSource struct {
	mu      sync.Mutex
	recipes map[int64]*models.Recipe
	usage   map[int64]int
	err     error
}

func newFakeSource(recipes ...*models.Recipe) *fakeSource {
	s := &fakeSource{recipes: make(map[int64]*models.Recipe), usage: make(map[int64]int)}
	for _, r := range recipes {
		s.recipes[r.ID] = r
	}
	return s
}

func (s *fakeSource) ListRecipes(_ context.Context, filter models.RecipeFilter) ([]*models.Recipe, error) {
	all, err := s.GetAllRecipes(context.Background())
	if err != nil {
		return nil, err
	}
	out := make([]*models.Recipe, 0, len(all))
	for _, r := range all {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeSource) GetRecipeByID(_ context.Context, id int64) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.recipes[id], nil
}

func (s *fakeSource) GetAllRecipes(_ context.Context) ([]*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*models.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeSource) GetRecipeUsageCount(_ context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usage[id], nil
}

func (s *fakeSource) remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recipes, id)
}

// mapCache is an in-memory Cache that counts calls.
type mapCache struct {
	mu          sync.Mutex
	entries     map[int64]map[int64]CachedSimilarity
	gets        int
	puts        int
	invalidated []int64
	getErr      error
	putErr      error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[int64]map[int64]CachedSimilarity)}
}

func (c *mapCache) GetCachedSimilarities(_ context.Context, recipeID int64) ([]CachedSimilarity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	out := make([]CachedSimilarity, 0, len(c.entries[recipeID]))
	for _, e := range c.entries[recipeID] {
		out = append(out, e)
	}
	return out, nil
}

func (c *mapCache) PutCachedSimilarity(_ context.Context, recipeID, otherID int64, score float64, exp Explanation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	if c.putErr != nil {
		return c.putErr
	}
	data, err := MarshalExplanation(exp)
	if err != nil {
		return err
	}
	if c.entries[recipeID] == nil {
		c.entries[recipeID] = make(map[int64]CachedSimilarity)
	}
	c.entries[recipeID][otherID] = CachedSimilarity{OtherID: otherID, Score: score, ExplanationJSON: data}
	return nil
}

func (c *mapCache) InvalidateSimilarities(_ context.Context, recipeID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, recipeID)
	delete(c.entries, recipeID)
	for _, m := range c.entries {
		delete(m, recipeID)
	}
	return nil
}

func (c *mapCache) has(recipeID, otherID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[recipeID][otherID]
	return ok
}

var errBoom = errors.New("boom")
