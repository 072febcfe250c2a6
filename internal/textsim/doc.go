// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

/*
Package textsim provides the text and set similarity primitives used to
compare recipes.

# Tokenization

Tokenize lowercases text, strips punctuation and drops short tokens and stop
words. The stop-word list includes cooking noise (units, time and temperature
words). Stem applies a fixed, ordered list of suffix-stripping rules; exactly
one rule fires per call, so the output is stable across releases and must not
be replaced with a linguistic stemmer.

# Set Similarity

JaccardSimilarity, IngredientJaccard and WeightedJaccardSimilarity compare
sets of normalized ingredient names. NormalizeIngredient maps differently
worded ingredient lines ("2 cups chopped onions", "onions, chopped") to the
same canonical key.

# Vector Similarity

CalculateTFIDFVector builds smoothed TF-IDF vectors, and CosineSimilarity,
TFIDFCosineSimilarity and FrequencyCosineSimilarity compare them. Sparse
inputs are aligned over the union of their terms before comparison.

All functions are pure and safe for concurrent use.
*/
package textsim
