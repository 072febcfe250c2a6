// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package similarity

import "fmt"

// Config controls result sizing and thresholds of the Scorer.
type Config struct {
	// DefaultLimit is used when a caller passes a non-positive limit.
	// Default: 10.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps any requested limit.
	// Default: 100.
	MaxLimit int `json:"max_limit"`

	// TooSimilarThreshold is the total score at which two recipes count as
	// near duplicates.
	// Default: 0.80.
	TooSimilarThreshold float64 `json:"too_similar_threshold"`
}

// DefaultConfig returns the default scorer configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultLimit:        10,
		MaxLimit:            100,
		TooSimilarThreshold: DefaultTooSimilarThreshold,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max_limit (%d) must be >= default_limit (%d)", c.MaxLimit, c.DefaultLimit)
	}
	if c.TooSimilarThreshold <= 0 || c.TooSimilarThreshold > 1 {
		return fmt.Errorf("too_similar_threshold must be in (0, 1], got %f", c.TooSimilarThreshold)
	}
	return nil
}

// effectiveLimit applies the default and the cap.
func (c *Config) effectiveLimit(limit int) int {
	if limit <= 0 {
		limit = c.DefaultLimit
	}
	if limit > c.MaxLimit {
		limit = c.MaxLimit
	}
	return limit
}
