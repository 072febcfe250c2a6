// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// runPeriodic calls tick once immediately when runOnStart is set and then on
// every interval until ctx is canceled. A failing tick is logged and the
// loop keeps going; only cancellation ends it.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func runPeriodic(ctx context.Context, interval time.Duration, runOnStart bool, logger zerolog.Logger, tick func(context.Context) error) error {
	if runOnStart {
		if err := tick(ctx); err != nil {
			logger.Warn().Err(err).Msg("initial run failed (will retry on schedule)")
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := tick(ctx); err != nil {
				logger.Warn().Err(err).Msg("scheduled run failed")
			}
		}
	}
}
