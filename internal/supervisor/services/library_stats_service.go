// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/recipevault/internal/metrics"
)

// RecipeCounter reports the library size. Both recipe stores implement it.
type RecipeCounter interface {
	CountRecipes(ctx context.Context) (int, error)
}

// LibraryStatsService keeps the library size gauge current.
type LibraryStatsService struct {
	counter  RecipeCounter
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
	name     string
}

// NewLibraryStatsService creates the service. A non-positive interval means
// 30 seconds.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewLibraryStatsService(counter RecipeCounter, interval time.Duration, logger zerolog.Logger) *LibraryStatsService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &LibraryStatsService{
		counter:  counter,
		interval: interval,
		timeout:  5 * time.Second,
		logger:   logger.With().Str("service", "library-stats").Logger(),
		name:     "library-stats",
	}
}

// Serve implements suture.Service. The gauge is set once on start.
func (s *LibraryStatsService) Serve(ctx context.Context) error {
	return runPeriodic(ctx, s.interval, true, s.logger, s.refresh)
}

func (s *LibraryStatsService) refresh(ctx context.Context) error {
	countCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.counter.CountRecipes(countCtx)
	if err != nil {
		return fmt.Errorf("count recipes: %w", err)
	}
	metrics.SetLibrarySize(n)
	return nil
}

// String names the service in supervisor events.
func (s *LibraryStatsService) String() string {
	return s.name
}
