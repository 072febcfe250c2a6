// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/recipevault/internal/similarity"
)

const backendBadger = "badger"

// Key prefixes. Forward keys hold the entry; reverse keys let invalidation
// find every anchor that scored a given recipe.
const (
	similarityKeyPrefix        = "similarity:"
	similarityReverseKeyPrefix = "similarity_rev:"
)

// BadgerOptions configures the Badger similarity cache.
type BadgerOptions struct {
	// Path is the database directory. Empty opens an in-memory database.
	Path string

	// SyncWrites fsyncs every write.
	SyncWrites bool

	// Compression enables Snappy block compression.
	Compression bool
}

// BadgerSimilarityCache stores similarity entries in BadgerDB under
// similarity:<recipe>:<other> keys.
type BadgerSimilarityCache struct {
	db     *badger.DB
	logger zerolog.Logger
}

type badgerEntry struct {
	Score       float64         `json:"score"`
	Explanation json.RawMessage `json:"explanation,omitempty"`
	ComputedAt  time.Time       `json:"computed_at"`
}

// OpenBadgerSimilarityCache opens (creating if needed) a Badger database.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func OpenBadgerSimilarityCache(opts BadgerOptions, logger zerolog.Logger) (*BadgerSimilarityCache, error) {
	bopts := badger.DefaultOptions(opts.Path)
	if opts.Path == "" {
		bopts = bopts.WithInMemory(true)
	}
	bopts.SyncWrites = opts.SyncWrites
	if opts.Compression {
		bopts.Compression = options.Snappy
	}

	// Reduce logging verbosity
	bopts.Logger = nil

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	c := NewBadgerSimilarityCache(db, logger)
	c.logger.Info().Str("path", opts.Path).Msg("Badger similarity cache opened")
	return c, nil
}

// NewBadgerSimilarityCache wraps an open database. Close closes db.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBadgerSimilarityCache(db *badger.DB, logger zerolog.Logger) *BadgerSimilarityCache {
	return &BadgerSimilarityCache{
		db:     db,
		logger: logger.With().Str("component", "storage").Str("backend", backendBadger).Logger(),
	}
}

func forwardKey(recipeID, otherID int64) []byte {
	return []byte(similarityKeyPrefix + strconv.FormatInt(recipeID, 10) + ":" + strconv.FormatInt(otherID, 10))
}

func reverseKey(otherID, recipeID int64) []byte {
	return []byte(similarityReverseKeyPrefix + strconv.FormatInt(otherID, 10) + ":" + strconv.FormatInt(recipeID, 10))
}

func anchorPrefix(prefix string, id int64) []byte {
	return []byte(prefix + strconv.FormatInt(id, 10) + ":")
}

// parseTrailingID returns the ID after the last colon of key.
func parseTrailingID(key []byte) (int64, error) {
	s := string(key)
	idx := strings.LastIndexByte(s, ':')
	if idx < 0 {
		return 0, fmt.Errorf("malformed key %q", s)
	}
	id, err := strconv.ParseInt(s[idx+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed key %q: %w", s, err)
	}
	return id, nil
}

// GetCachedSimilarities returns the entries anchored at recipeID.
func (c *BadgerSimilarityCache) GetCachedSimilarities(_ context.Context, recipeID int64) (entries []similarity.CachedSimilarity, err error) {
	defer observe(backendBadger, "get_similarities", time.Now(), &err)

	entries = make([]similarity.CachedSimilarity, 0)
	err = c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := anchorPrefix(similarityKeyPrefix, recipeID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			otherID, err := parseTrailingID(item.Key())
			if err != nil {
				return err
			}

			var stored badgerEntry
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &stored)
			}); err != nil {
				// Skip the entry; the scorer recomputes what it cannot read.
				c.logger.Warn().Err(err).Int64("recipe_id", recipeID).Int64("other_id", otherID).Msg("Corrupt similarity entry")
				continue
			}

			entries = append(entries, similarity.CachedSimilarity{
				OtherID:         otherID,
				Score:           stored.Score,
				ExplanationJSON: []byte(stored.Explanation),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read similarities for recipe %d: %w", recipeID, err)
	}
	return entries, nil
}

// PutCachedSimilarity stores the (recipeID, otherID) entry.
func (c *BadgerSimilarityCache) PutCachedSimilarity(_ context.Context, recipeID, otherID int64, score float64, exp similarity.Explanation) (err error) {
	defer observe(backendBadger, "put_similarity", time.Now(), &err)

	explanation, err := similarity.MarshalExplanation(exp)
	if err != nil {
		return err
	}
	data, err := json.Marshal(badgerEntry{
		Score:       score,
		Explanation: explanation,
		ComputedAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal similarity entry: %w", err)
	}

	return c.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(forwardKey(recipeID, otherID), data); err != nil {
			return fmt.Errorf("set similarity: %w", err)
		}
		if err := txn.Set(reverseKey(otherID, recipeID), nil); err != nil {
			return fmt.Errorf("set reverse index: %w", err)
		}
		return nil
	})
}

// InvalidateSimilarities drops entries where recipeID is either side.
func (c *BadgerSimilarityCache) InvalidateSimilarities(_ context.Context, recipeID int64) (err error) {
	defer observe(backendBadger, "invalidate_similarities", time.Now(), &err)

	var keys [][]byte
	err = c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		// Entries anchored at recipeID and their reverse index keys.
		prefix := anchorPrefix(similarityKeyPrefix, recipeID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			otherID, err := parseTrailingID(key)
			if err != nil {
				return err
			}
			keys = append(keys, key, reverseKey(otherID, recipeID))
		}

		// Entries of other anchors that point at recipeID.
		prefix = anchorPrefix(similarityReverseKeyPrefix, recipeID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			anchorID, err := parseTrailingID(key)
			if err != nil {
				return err
			}
			keys = append(keys, key, forwardKey(anchorID, recipeID))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan similarities for recipe %d: %w", recipeID, err)
	}
	if len(keys) == 0 {
		return nil
	}

	wb := c.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range keys {
		if err := wb.Delete(key); err != nil {
			return fmt.Errorf("delete similarity key: %w", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush similarity deletes: %w", err)
	}

	c.logger.Debug().Int64("recipe_id", recipeID).Int("keys", len(keys)).Msg("Similarities invalidated")
	return nil
}

// Close closes the database.
func (c *BadgerSimilarityCache) Close() error {
	return c.db.Close()
}

var _ SimilarityStore = (*BadgerSimilarityCache)(nil)
