// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package similarity

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// Component weights of the total score. They sum to 1 so the total stays in
// [0, 1] whenever every component does.
const (
	IngredientWeight = 0.55
	TextWeight       = 0.35
	MetadataWeight   = 0.10
)

// Explanation breaks a similarity score into its components.
type Explanation struct {
	IngredientScore   float64  `json:"ingredient_score"`
	TextScore         float64  `json:"text_score"`
	MetadataScore     float64  `json:"metadata_score"`
	CommonIngredients []string `json:"common_ingredients,omitempty"`
	TotalScore        float64  `json:"total_score"`
}

// newExplanation clamps every component and derives the total.
func newExplanation(ingredient, text, metadata float64, common []string) Explanation {
	ingredient = clamp01(ingredient)
	text = clamp01(text)
	metadata = clamp01(metadata)

	return Explanation{
		IngredientScore:   ingredient,
		TextScore:         text,
		MetadataScore:     metadata,
		CommonIngredients: common,
		TotalScore:        clamp01(IngredientWeight*ingredient + TextWeight*text + MetadataWeight*metadata),
	}
}

// MarshalExplanation encodes an explanation for cache storage.
func MarshalExplanation(exp Explanation) ([]byte, error) {
	data, err := json.Marshal(exp)
	if err != nil {
		return nil, fmt.Errorf("marshal explanation: %w", err)
	}
	return data, nil
}

// UnmarshalExplanation decodes a cached explanation. Missing fields decode as
// zero. TotalScore is always taken from score, the authoritative value stored
// alongside the payload. Empty data yields a zero explanation without error.
// On a decode error the zero explanation (with TotalScore set) is returned
// together with the error so callers can log and continue.
func UnmarshalExplanation(data []byte, score float64) (Explanation, error) {
	var exp Explanation
	if len(data) == 0 {
		exp.TotalScore = score
		return exp, nil
	}

	if err := json.Unmarshal(data, &exp); err != nil {
		return Explanation{TotalScore: score}, fmt.Errorf("unmarshal explanation: %w", err)
	}

	exp.IngredientScore = clamp01(exp.IngredientScore)
	exp.TextScore = clamp01(exp.TextScore)
	exp.MetadataScore = clamp01(exp.MetadataScore)
	exp.TotalScore = score
	return exp, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
