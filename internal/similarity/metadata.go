// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package similarity

import (
	"strings"

	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/textsim"
)

// Time buckets used by the metadata signal.
const (
	BucketQuick15  = "quick15"
	BucketQuick30  = "quick30"
	BucketMedium45 = "medium45"
	BucketLonger60 = "longer60"
)

// TimeBucket classifies a recipe by its effective total time.
// Returns "" when no time is known.
func TimeBucket(r *models.Recipe) string {
	minutes := r.EffectiveTotalTime()
	switch {
	case minutes <= 0:
		return ""
	case minutes <= 15:
		return BucketQuick15
	case minutes <= 30:
		return BucketQuick30
	case minutes <= 45:
		return BucketMedium45
	default:
		return BucketLonger60
	}
}

// metadataFeatures are the normalized metadata fields compared between recipes.
type metadataFeatures struct {
	cuisine    string
	difficulty string
	bucket     string
	mealTypes  textsim.Set
}

func newMetadataFeatures(r *models.Recipe) metadataFeatures {
	meals := make(textsim.Set, len(r.MealTypes))
	for _, m := range r.MealTypes {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			meals[m] = struct{}{}
		}
	}

	return metadataFeatures{
		cuisine:    strings.ToLower(strings.TrimSpace(r.CuisineType)),
		difficulty: strings.ToLower(strings.TrimSpace(r.Difficulty)),
		bucket:     TimeBucket(r),
		mealTypes:  meals,
	}
}

// metadataScore averages up to four signals. A signal counts only when at
// least one side has a value; with no signals the score is 0.
func metadataScore(a, b *metadataFeatures) float64 {
	var matched float64
	signals := 0

	if a.cuisine != "" || b.cuisine != "" {
		signals++
		if a.cuisine == b.cuisine {
			matched++
		}
	}

	if a.difficulty != "" || b.difficulty != "" {
		signals++
		if a.difficulty == b.difficulty {
			matched++
		}
	}

	if a.bucket != "" || b.bucket != "" {
		signals++
		if a.bucket == b.bucket {
			matched++
		}
	}

	if len(a.mealTypes) > 0 || len(b.mealTypes) > 0 {
		signals++
		matched += mealTypeOverlap(a.mealTypes, b.mealTypes)
	}

	if signals == 0 {
		return 0
	}
	return matched / float64(signals)
}

// mealTypeOverlap is |A ∩ B| / max(|A|, |B|).
func mealTypeOverlap(a, b textsim.Set) float64 {
	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}
	if larger == 0 {
		return 0
	}

	common := 0
	for m := range a {
		if b.Has(m) {
			common++
		}
	}
	return float64(common) / float64(larger)
}
