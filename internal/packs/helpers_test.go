// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package packs

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/tomtom215/recipevault/internal/models"
)

type recipeSpec struct {
	id       int64
	title    string
	cuisine  string
	minutes  int
	meals    []string
	dietary  []string
	items    []string
	pick     bool
	servings int
}

func (s recipeSpec) build() *models.Recipe {
	r := &models.Recipe{
		ID:               s.id,
		Title:            s.title,
		CuisineType:      s.cuisine,
		Difficulty:       "easy",
		TotalTimeMinutes: s.minutes,
		MealTypes:        s.meals,
		DietaryTags:      s.dietary,
		EditorsPick:      s.pick,
		Servings:         s.servings,
	}
	for _, item := range s.items {
		r.Ingredients = append(r.Ingredients, models.Ingredient{Item: item})
	}
	r.EnsureTextBlob()
	return r
}

// mixedLibrary is ten recipes over three cuisines, Indian dishes first.
func mixedLibrary() []*models.Recipe {
	dinner := []string{"dinner"}
	specs := []recipeSpec{
		{id: 1, title: "Chicken Curry", cuisine: "Indian", minutes: 40, meals: dinner, items: []string{"chicken thighs", "garlic", "ginger", "onions", "basmati rice"}},
		{id: 2, title: "Chicken Tikka Masala", cuisine: "Indian", minutes: 50, meals: dinner, items: []string{"chicken breast", "garlic", "ginger", "onions", "cream"}},
		{id: 3, title: "Chicken Biryani", cuisine: "Indian", minutes: 60, meals: dinner, items: []string{"chicken thighs", "basmati rice", "onions", "garlic", "yogurt"}},
		{id: 4, title: "Chicken Korma", cuisine: "Indian", minutes: 45, meals: dinner, items: []string{"chicken thighs", "garlic", "ginger", "onions", "cashews"}},
		{id: 5, title: "Spaghetti Carbonara", cuisine: "Italian", minutes: 25, meals: dinner, items: []string{"spaghetti", "eggs", "pecorino", "guanciale"}},
		{id: 6, title: "Margherita Pizza", cuisine: "Italian", minutes: 30, meals: dinner, items: []string{"pizza dough", "tomatoes", "mozzarella", "basil"}},
		{id: 7, title: "Mushroom Risotto", cuisine: "Italian", minutes: 35, meals: dinner, items: []string{"arborio", "mushrooms", "parmesan", "stock"}},
		{id: 8, title: "Beef Tacos", cuisine: "Mexican", minutes: 20, meals: dinner, items: []string{"ground beef", "tortillas", "salsa", "cheddar"}},
		{id: 9, title: "Black Bean Soup", cuisine: "Mexican", minutes: 30, meals: []string{"lunch"}, items: []string{"black beans", "cumin", "peppers", "lime"}},
		{id: 10, title: "Guacamole", cuisine: "Mexican", minutes: 10, meals: []string{"appetizer"}, items: []string{"avocados", "lime", "cilantro", "jalapeno"}},
	}

	out := make([]*models.Recipe, len(specs))
	for i, s := range specs {
		out[i] = s.build()
	}
	return out
}

// fakeSource is an in-memory similarity.RecipeSource with usage counts.
type fakeSource struct {
	mu      sync.Mutex
	recipes []*models.Recipe
	usage   map[int64]int
	listErr error
}

func newFakeSource(recipes ...*models.Recipe) *fakeSource {
	sorted := append([]*models.Recipe(nil), recipes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &fakeSource{recipes: sorted, usage: make(map[int64]int)}
}

func (s *fakeSource) setUsage(count int, ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.usage[id] = count
	}
}

func (s *fakeSource) ListRecipes(_ context.Context, filter models.RecipeFilter) ([]*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*models.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeSource) GetRecipeByID(_ context.Context, id int64) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (s *fakeSource) GetAllRecipes(_ context.Context) ([]*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]*models.Recipe(nil), s.recipes...), nil
}

func (s *fakeSource) GetRecipeUsageCount(_ context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usage[id], nil
}

func ids(recipes []*models.Recipe) []int64 {
	out := make([]int64, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func findStrategy(suggestions []Suggestion, strategy string) *Suggestion {
	for i := range suggestions {
		if suggestions[i].Strategy == strategy {
			return &suggestions[i]
		}
	}
	return nil
}

var errBoom = errors.New("boom")
