// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

/*
Package similarity scores pairs of recipes and ranks a library by similarity
to an anchor recipe.

# Scoring

CalculateSimilarity combines three components into one explainable score:

	total = 0.55 * ingredient + 0.35 * text + 0.10 * metadata

  - ingredient: Jaccard similarity of normalized ingredient sets
  - text: cosine similarity of word-frequency maps of the text blobs
  - metadata: average match rate of cuisine, difficulty, time bucket and
    meal-type overlap, counting only signals present on either side

Every component and the total are clamped to [0, 1]. The function is pure
and symmetric.

# Caching

Scorer.GetSimilarRecipes reads a Cache first and falls back to an all-pairs
scan of the library, writing each (anchor, other) score as it goes. Entries
are directional and only the anchor direction is written. LRUCache adds an
in-memory front to any persistent Cache.

# Packs

CalculatePackDiversity is 1 minus the average pairwise total score. Matrix
memoizes pair scores so greedy pack building can evaluate many overlapping
sets without rescoring pairs.
*/
package similarity
