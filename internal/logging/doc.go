// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package logging provides the process-wide zerolog logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Msg("Server starting")
//	logging.Ctx(ctx).Info().Int64("recipe_id", id).Msg("Recipe saved")
//
// Components take a zerolog.Logger in their constructors and tag it with
// a component field:
//
//	scorer, err := similarity.NewScorer(store, cache, cfg, logging.WithComponent("similarity"))
//
// # Request Context
//
// The API middleware stores a request-scoped logger and request ID in the
// request context. Ctx returns that logger with request_id attached, and
// falls back to the global logger outside a request.
//
// # slog Bridge
//
// NewSlogLogger adapts a zerolog.Logger to *slog.Logger for libraries that
// only speak slog, such as sutureslog.
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
