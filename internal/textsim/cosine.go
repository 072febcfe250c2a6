// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package textsim

import (
	"errors"
	"fmt"
	"math"
)

// ErrVectorLengthMismatch is returned when raw vectors of different lengths
// are compared. Vectors are never silently truncated.
var ErrVectorLengthMismatch = errors.New("vector length mismatch")

// CosineSimilarity returns dot(a, b) / (|a| * |b|).
// A zero-norm vector is treated as dissimilar and yields 0.
// The result is clamped to [-1, 1] to absorb rounding.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrVectorLengthMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(-1, math.Min(1, sim)), nil
}

// TFIDFCosineSimilarity compares two vectors with different term universes
// by zero-filling each over the union of their terms.
func TFIDFCosineSimilarity(a, b Vector) float64 {
	wa := make(map[string]float64, a.Len())
	for i, t := range a.Terms {
		wa[t] = a.Values[i]
	}
	wb := make(map[string]float64, b.Len())
	for i, t := range b.Terms {
		wb[t] = b.Values[i]
	}
	return FrequencyCosineSimilarity(wa, wb)
}

// WordFrequency counts the tokens of text. Tokens are not stemmed.
func WordFrequency(text string) map[string]float64 {
	freq := make(map[string]float64)
	for _, tok := range Tokenize(text) {
		freq[tok]++
	}
	return freq
}

// FrequencyCosineSimilarity is the cosine similarity of two sparse term
// maps, zero-filled over the union of their keys. Keys are visited in
// lexical order so the result is bit-for-bit symmetric.
func FrequencyCosineSimilarity(a, b map[string]float64) float64 {
	va, vb := alignMaps(a, b)
	sim, _ := CosineSimilarity(va, vb) //nolint:errcheck // aligned vectors always have equal length
	return sim
}

// alignMaps returns dense vectors for a and b over their sorted key union.
func alignMaps(a, b map[string]float64) (va, vb []float64) {
	union := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		union[k] = struct{}{}
	}
	for k := range b {
		union[k] = struct{}{}
	}

	keys := sortedKeys(union)
	va = make([]float64, len(keys))
	vb = make([]float64, len(keys))
	for i, k := range keys {
		va[i] = a[k]
		vb[i] = b[k]
	}
	return va, vb
}

// EuclideanDistance returns the L2 distance between a and b.
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrVectorLengthMismatch, len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// EuclideanToSimilarity maps a distance to a similarity in (0, 1].
func EuclideanToSimilarity(distance float64) float64 {
	return 1 / (1 + distance)
}
