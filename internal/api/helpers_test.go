// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/recipevault/internal/config"
	"github.com/tomtom215/recipevault/internal/middleware"
	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/packs"
	"github.com/tomtom215/recipevault/internal/similarity"
	"github.com/tomtom215/recipevault/internal/storage"
)

// envelope mirrors models.APIResponse with raw data for per-test decoding.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func fixtureRecipe(title, cuisine string, minutes int, mealTypes []string, items ...string) *models.Recipe {
	r := &models.Recipe{
		Title:            title,
		CuisineType:      cuisine,
		Difficulty:       "easy",
		TotalTimeMinutes: minutes,
		MealTypes:        mealTypes,
		Instructions:     []string{"Cook everything."},
	}
	for _, item := range items {
		r.Ingredients = append(r.Ingredients, models.Ingredient{Item: item})
	}
	return r
}

// seedLibrary stores six recipes with IDs 1-6. Three are weeknight dinners;
// none is an appetizer.
func seedLibrary(t *testing.T, store storage.RecipeStore) {
	t.Helper()
	library := []*models.Recipe{
		fixtureRecipe("Chicken Curry", "Indian", 40, []string{"dinner"}, "chicken thighs", "garlic", "ginger", "basmati rice", "onions"),
		fixtureRecipe("Chicken Tikka Masala", "Indian", 50, []string{"dinner"}, "chicken breast", "garlic", "ginger", "tomatoes", "cream"),
		fixtureRecipe("Spaghetti Carbonara", "Italian", 25, []string{"dinner", "lunch"}, "spaghetti", "eggs", "pecorino", "guanciale"),
		fixtureRecipe("Margherita Pizza", "Italian", 30, []string{"dinner"}, "pizza dough", "tomatoes", "mozzarella", "basil"),
		fixtureRecipe("Pancakes", "American", 15, []string{"breakfast"}, "flour", "eggs", "milk", "butter"),
		fixtureRecipe("Chicken Biryani", "Indian", 60, []string{"dinner"}, "chicken thighs", "basmati rice", "onions", "yogurt", "garlic"),
	}
	for _, r := range library {
		if _, err := store.SaveRecipe(context.Background(), r); err != nil {
			t.Fatalf("SaveRecipe(%q) error = %v", r.Title, err)
		}
	}
}

type testServer struct {
	store   *storage.MemoryStore
	handler *Handler
	http    http.Handler
}

// newTestServer builds the full router over a seeded memory store.
func newTestServer(t *testing.T, serverCfg *config.ServerConfig) *testServer {
	t.Helper()

	store := storage.NewMemoryStore()
	seedLibrary(t, store)

	logger := zerolog.Nop()
	scorer, err := similarity.NewScorer(store, store, nil, logger)
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}
	engine, err := packs.NewEngine(store, nil, logger)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	perfMon := middleware.NewPerformanceMonitor(100, 0)
	h := NewHandler(store, scorer, engine, perfMon, "test")
	return &testServer{
		store:   store,
		handler: h,
		http:    NewRouter(h, serverCfg, perfMon).Handler(),
	}
}

func (s *testServer) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.http.ServeHTTP(rec, req)
	return rec
}

// decodeEnvelope parses the envelope and, when data is non-nil, its data
// field.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v (data %s)", err, env.Data)
		}
	}
	return env
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec, nil)
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want error", env.Status)
	}
	if env.Error == nil || env.Error.Code != code {
		t.Errorf("error = %+v, want code %s", env.Error, code)
	}
}
