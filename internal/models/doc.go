// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

/*
Package models defines data structures shared across Recipe Vault.

Key Components:

  - Recipe / Ingredient: the recipe record owned by the storage layer and
    consumed read-only by the similarity and pack engines
  - RecipeFilter: listing criteria (cuisine, meal type, dietary tag,
    difficulty, time, free-text search) with in-memory matching semantics
    shared by every store implementation
  - APIResponse / APIError: the HTTP response envelope

Text Blob:

Every recipe carries a lowercase text blob (see BuildTextBlob) that is the
unit of text-similarity comparison. Stores compute it on save so the scoring
code never rebuilds it per comparison.
*/
package models
