// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package similarity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/recipevault/internal/cache"
	"github.com/tomtom215/recipevault/internal/metrics"
)

// LRUCache is a read-through in-memory front for a persistent Cache, keyed by
// anchor recipe ID. Writes go straight to the inner cache and drop the
// anchor's memory entry so the next read reloads it.
//
// A read is only kept in memory if no write or invalidation touching its
// anchor completed while it was loading from the inner cache; otherwise a
// list loaded mid-computation could outlive the writes that followed it.
type LRUCache struct {
	inner Cache
	lru   *cache.LRU[int64, []CachedSimilarity]

	mu    sync.Mutex
	epoch uint64
	gens  map[int64]uint64
}

// generation identifies the write state of one anchor.
type generation struct {
	epoch uint64
	gen   uint64
}

// NewLRUCache wraps inner with an LRU of the given capacity and TTL.
func NewLRUCache(inner Cache, capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		inner: inner,
		lru:   cache.NewLRU[int64, []CachedSimilarity](capacity, ttl),
		gens:  make(map[int64]uint64),
	}
}

// GetCachedSimilarities serves from memory when possible.
func (c *LRUCache) GetCachedSimilarities(ctx context.Context, recipeID int64) ([]CachedSimilarity, error) {
	if entries, ok := c.lru.Get(recipeID); ok {
		metrics.RecordSimilarityCacheLookup("lru", metrics.CacheHit)
		return cloneEntries(entries), nil
	}
	metrics.RecordSimilarityCacheLookup("lru", metrics.CacheMiss)

	before := c.generation(recipeID)
	entries, err := c.inner.GetCachedSimilarities(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		c.addIfUnchanged(recipeID, before, cloneEntries(entries))
	}
	return entries, nil
}

// PutCachedSimilarity writes through to the inner cache.
func (c *LRUCache) PutCachedSimilarity(ctx context.Context, recipeID, otherID int64, score float64, exp Explanation) error {
	err := c.inner.PutCachedSimilarity(ctx, recipeID, otherID, score, exp)

	c.mu.Lock()
	c.gens[recipeID]++
	c.lru.Remove(recipeID)
	c.mu.Unlock()
	return err
}

// InvalidateSimilarities clears memory and forwards to the inner cache when
// it supports invalidation. Memory is cleared wholesale because any anchor
// may hold an entry for recipeID.
func (c *LRUCache) InvalidateSimilarities(ctx context.Context, recipeID int64) error {
	var err error
	if inv, ok := c.inner.(Invalidator); ok {
		if ierr := inv.InvalidateSimilarities(ctx, recipeID); ierr != nil {
			err = fmt.Errorf("invalidate similarities for recipe %d: %w", recipeID, ierr)
		}
	}

	c.mu.Lock()
	c.epoch++
	clear(c.gens)
	c.lru.Clear()
	c.mu.Unlock()
	return err
}

func (c *LRUCache) generation(recipeID int64) generation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return generation{epoch: c.epoch, gen: c.gens[recipeID]}
}

// addIfUnchanged stores entries only when recipeID saw no write since before.
func (c *LRUCache) addIfUnchanged(recipeID int64, before generation, entries []CachedSimilarity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != before.epoch || c.gens[recipeID] != before.gen {
		return
	}
	c.lru.Add(recipeID, entries)
}

// Stats exposes the memory layer counters.
func (c *LRUCache) Stats() cache.Stats {
	return c.lru.Stats()
}

// CleanupExpired drops expired memory entries.
func (c *LRUCache) CleanupExpired() int {
	return c.lru.CleanupExpired()
}

func cloneEntries(entries []CachedSimilarity) []CachedSimilarity {
	out := make([]CachedSimilarity, len(entries))
	copy(out, entries)
	return out
}
