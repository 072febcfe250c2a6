// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package services adapts recipevault components to suture.Service.
//
// Each service blocks in Serve until its context is canceled and returns
// ctx.Err() on a clean stop. String gives the name used in supervisor
// events.
//
//   - HTTPServerService: the REST API (api layer)
//   - CacheJanitorService: sweeps expired in-memory similarity entries
//   - LibraryStatsService: refreshes the library size gauge
package services
