// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package storage

import (
	"context"
	"reflect"
	"sort"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/recipevault/internal/similarity"
)

func similarityStores() map[string]func(t *testing.T) SimilarityStore {
	stores := map[string]func(t *testing.T) SimilarityStore{
		"badger_memory": func(t *testing.T) SimilarityStore {
			t.Helper()
			c, err := OpenBadgerSimilarityCache(BadgerOptions{}, zerolog.Nop())
			if err != nil {
				t.Fatalf("OpenBadgerSimilarityCache() error = %v", err)
			}
			t.Cleanup(func() { _ = c.Close() })
			return c
		},
		"badger_disk": func(t *testing.T) SimilarityStore {
			t.Helper()
			c, err := OpenBadgerSimilarityCache(BadgerOptions{Path: t.TempDir(), Compression: true}, zerolog.Nop())
			if err != nil {
				t.Fatalf("OpenBadgerSimilarityCache() error = %v", err)
			}
			t.Cleanup(func() { _ = c.Close() })
			return c
		},
	}
	for name, newStore := range recipeStores() {
		stores[name] = func(t *testing.T) SimilarityStore { return newStore(t) }
	}
	return stores
}

func sortedEntries(entries []similarity.CachedSimilarity) []similarity.CachedSimilarity {
	sort.Slice(entries, func(i, j int) bool { return entries[i].OtherID < entries[j].OtherID })
	return entries
}

func TestSimilarityStore_PutAndGet(t *testing.T) {
	t.Parallel()

	for name, newStore := range similarityStores() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			store := newStore(t)

			empty, err := store.GetCachedSimilarities(ctx, 1)
			if err != nil {
				t.Fatalf("GetCachedSimilarities() error = %v", err)
			}
			if len(empty) != 0 {
				t.Errorf("empty cache returned %+v", empty)
			}

			exp := similarity.Explanation{
				IngredientScore:   0.6,
				TextScore:         0.3,
				MetadataScore:     1,
				CommonIngredients: []string{"garlic", "onion"},
				TotalScore:        0.535,
			}
			if err := store.PutCachedSimilarity(ctx, 1, 2, 0.535, exp); err != nil {
				t.Fatalf("PutCachedSimilarity() error = %v", err)
			}
			if err := store.PutCachedSimilarity(ctx, 1, 3, 0.1, similarity.Explanation{TotalScore: 0.1}); err != nil {
				t.Fatalf("PutCachedSimilarity() error = %v", err)
			}
			// Replacing keeps a single entry per pair.
			if err := store.PutCachedSimilarity(ctx, 1, 3, 0.2, similarity.Explanation{TotalScore: 0.2}); err != nil {
				t.Fatalf("PutCachedSimilarity() error = %v", err)
			}

			entries, err := store.GetCachedSimilarities(ctx, 1)
			if err != nil {
				t.Fatalf("GetCachedSimilarities() error = %v", err)
			}
			entries = sortedEntries(entries)
			if len(entries) != 2 {
				t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
			}
			if entries[0].OtherID != 2 || entries[0].Score != 0.535 {
				t.Errorf("entries[0] = %+v", entries[0])
			}
			if entries[1].OtherID != 3 || entries[1].Score != 0.2 {
				t.Errorf("entries[1] = %+v, want replaced score 0.2", entries[1])
			}

			decoded, err := similarity.UnmarshalExplanation(entries[0].ExplanationJSON, entries[0].Score)
			if err != nil {
				t.Fatalf("UnmarshalExplanation() error = %v", err)
			}
			if !reflect.DeepEqual(decoded, exp) {
				t.Errorf("explanation = %+v, want %+v", decoded, exp)
			}

			// Entries are anchored: the reverse direction is a separate key.
			reverse, err := store.GetCachedSimilarities(ctx, 2)
			if err != nil {
				t.Fatalf("GetCachedSimilarities(2) error = %v", err)
			}
			if len(reverse) != 0 {
				t.Errorf("anchor 2 returned %+v, want nothing", reverse)
			}
		})
	}
}

func TestSimilarityStore_Invalidate(t *testing.T) {
	t.Parallel()

	for name, newStore := range similarityStores() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			store := newStore(t)

			pairs := [][2]int64{{1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}, {10, 11}}
			for _, p := range pairs {
				if err := store.PutCachedSimilarity(ctx, p[0], p[1], 0.5, similarity.Explanation{TotalScore: 0.5}); err != nil {
					t.Fatalf("PutCachedSimilarity(%v) error = %v", p, err)
				}
			}

			if err := store.InvalidateSimilarities(ctx, 1); err != nil {
				t.Fatalf("InvalidateSimilarities() error = %v", err)
			}
			// Invalidating an unknown recipe is a no-op.
			if err := store.InvalidateSimilarities(ctx, 99); err != nil {
				t.Fatalf("InvalidateSimilarities(99) error = %v", err)
			}

			want := map[int64][]int64{
				1:  nil,
				2:  {3},
				3:  {2},
				10: {11},
			}
			for anchor, others := range want {
				entries, err := store.GetCachedSimilarities(ctx, anchor)
				if err != nil {
					t.Fatalf("GetCachedSimilarities(%d) error = %v", anchor, err)
				}
				var got []int64
				for _, e := range sortedEntries(entries) {
					got = append(got, e.OtherID)
				}
				if !reflect.DeepEqual(got, others) {
					t.Errorf("anchor %d others = %v, want %v", anchor, got, others)
				}
			}
		})
	}
}

func TestBadgerSimilarityCache_PrefixIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := OpenBadgerSimilarityCache(BadgerOptions{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenBadgerSimilarityCache() error = %v", err)
	}
	defer c.Close()

	// Anchor 1 must not pick up anchor 10's or 12's keys.
	for _, anchor := range []int64{1, 10, 12} {
		if err := c.PutCachedSimilarity(ctx, anchor, 5, 0.3, similarity.Explanation{TotalScore: 0.3}); err != nil {
			t.Fatalf("PutCachedSimilarity() error = %v", err)
		}
	}

	entries, err := c.GetCachedSimilarities(ctx, 1)
	if err != nil {
		t.Fatalf("GetCachedSimilarities() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("anchor 1 returned %d entries, want 1", len(entries))
	}
}

func TestBadgerSimilarityCache_SkipsCorruptEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c, err := OpenBadgerSimilarityCache(BadgerOptions{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenBadgerSimilarityCache() error = %v", err)
	}
	defer c.Close()

	if err := c.PutCachedSimilarity(ctx, 1, 2, 0.4, similarity.Explanation{TotalScore: 0.4}); err != nil {
		t.Fatalf("PutCachedSimilarity() error = %v", err)
	}
	if err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(forwardKey(1, 3), []byte("{not json"))
	}); err != nil {
		t.Fatalf("write corrupt entry: %v", err)
	}

	entries, err := c.GetCachedSimilarities(ctx, 1)
	if err != nil {
		t.Fatalf("GetCachedSimilarities() error = %v", err)
	}
	if len(entries) != 1 || entries[0].OtherID != 2 {
		t.Errorf("entries = %+v, want only the readable entry", entries)
	}
}

func TestBadgerSimilarityCache_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	c, err := OpenBadgerSimilarityCache(BadgerOptions{Path: dir, SyncWrites: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenBadgerSimilarityCache() error = %v", err)
	}
	if err := c.PutCachedSimilarity(ctx, 7, 8, 0.9, similarity.Explanation{TotalScore: 0.9}); err != nil {
		t.Fatalf("PutCachedSimilarity() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenBadgerSimilarityCache(BadgerOptions{Path: dir}, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.GetCachedSimilarities(ctx, 7)
	if err != nil {
		t.Fatalf("GetCachedSimilarities() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Score != 0.9 {
		t.Errorf("entries = %+v, want persisted entry", entries)
	}
}

func TestParseTrailingID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     string
		want    int64
		wantErr bool
	}{
		{"similarity:1:42", 42, false},
		{"similarity_rev:42:1", 1, false},
		{"nocolon", 0, true},
		{"similarity:1:abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseTrailingID([]byte(tt.key))
		if (err != nil) != tt.wantErr {
			t.Errorf("parseTrailingID(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseTrailingID(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}
