// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

/*
Package packs suggests recipe packs: small sets of recipes chosen to be as
different from each other as possible.

# Pipeline

A suggestion request runs through these stages:

 1. Filter: list recipes matching the request. If fewer than the pack size
    match, fall back to the whole library.
 2. Score: give each candidate a heuristic inclusion score. The base is 1.0.
    Never-cooked recipes get +0.5 when PreferUnused is set. Each of image,
    description, total time and servings adds +0.1, and an editor's pick
    adds +0.3.
 3. Select: BuildDiversePack grows a pack greedily. Each step adds the
    candidate maximizing 0.7*diversity + 0.3*score.
 4. Name: packs are named after their dominant cuisine when one covers more
    than a third of the recipes.
 5. Deduplicate and rank: packs with the same recipe set collapse to one and
    the rest are ordered by diversity.

# Strategies

  - Diverse: the greedy pack over every candidate.
  - Cuisine-focused: top-scored recipes of the requested cuisine. Requires
    min(size, 5) of them.
  - Quick & Easy: greedy pack over recipes ready in 30 minutes. Requires 5.
  - Fresh Picks: greedy pack over never-cooked recipes, only when
    PreferUnused is set. Requires 5.

GenerateThemedPack builds a single pack from one of the canned themes
(weeknight, healthy, comfort, party, budget).
*/
package packs
