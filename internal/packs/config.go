// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package packs

import "fmt"

// MaxPackSize is the hard upper bound on pack size.
const MaxPackSize = 25

// Config contains pack engine settings.
type Config struct {
	// DefaultSize is used when a request does not specify a pack size.
	// Default: 10.
	DefaultSize int `json:"default_size"`

	// MaxSize caps requested pack sizes. Must not exceed MaxPackSize.
	// Default: 25.
	MaxSize int `json:"max_size"`
}

// DefaultConfig returns the default pack engine configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultSize: 10,
		MaxSize:     MaxPackSize,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.MaxSize < 1 || c.MaxSize > MaxPackSize {
		return fmt.Errorf("max_size must be between 1 and %d, got %d", MaxPackSize, c.MaxSize)
	}
	if c.DefaultSize < 1 || c.DefaultSize > c.MaxSize {
		return fmt.Errorf("default_size must be between 1 and max_size (%d), got %d", c.MaxSize, c.DefaultSize)
	}
	return nil
}

func (c *Config) packSize(requested int) int {
	if requested <= 0 {
		return c.DefaultSize
	}
	if requested > c.MaxSize {
		return c.MaxSize
	}
	return requested
}
