// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

/*
Package cache provides an in-process LRU cache with TTL expiration.

LRU is generic over key and value types and is used as the read-through
front of the persistent similarity cache:

	lru := cache.NewLRU[int64, []similarity.CachedSimilarity](1000, 10*time.Minute)
	lru.Add(recipeID, entries)
	if entries, ok := lru.Get(recipeID); ok {
	    // served from memory
	}

Operations are O(1) and safe for concurrent use. Expired entries are removed
lazily on access or in bulk with CleanupExpired.
*/
package cache
