// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package similarity

import (
	"math"
	"reflect"
	"testing"
)

func TestNewExplanation_ClampsAndWeights(t *testing.T) {
	t.Parallel()

	exp := newExplanation(1.5, -0.2, math.NaN(), nil)
	if exp.IngredientScore != 1 || exp.TextScore != 0 || exp.MetadataScore != 0 {
		t.Errorf("components not clamped: %+v", exp)
	}
	if exp.TotalScore != IngredientWeight {
		t.Errorf("TotalScore = %f, want %f", exp.TotalScore, IngredientWeight)
	}

	if got := IngredientWeight + TextWeight + MetadataWeight; math.Abs(got-1) > 1e-12 {
		t.Errorf("weights sum to %f, want 1", got)
	}
}

func TestExplanationCodec(t *testing.T) {
	t.Parallel()

	original := newExplanation(0.5, 0.25, 2.0/3.0, []string{"garlic", "onion"})

	data, err := MarshalExplanation(original)
	if err != nil {
		t.Fatalf("MarshalExplanation() error = %v", err)
	}

	got, err := UnmarshalExplanation(data, original.TotalScore)
	if err != nil {
		t.Fatalf("UnmarshalExplanation() error = %v", err)
	}
	if !reflect.DeepEqual(got, original) {
		t.Errorf("decoded = %+v, want %+v", got, original)
	}
}

func TestUnmarshalExplanation_Degenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		score   float64
		want    Explanation
		wantErr bool
	}{
		{
			name:  "empty payload",
			data:  "",
			score: 0.4,
			want:  Explanation{TotalScore: 0.4},
		},
		{
			name:  "missing fields default to zero",
			data:  `{"ingredient_score":0.8}`,
			score: 0.6,
			want:  Explanation{IngredientScore: 0.8, TotalScore: 0.6},
		},
		{
			name:  "stored total is ignored",
			data:  `{"text_score":0.3,"total_score":0.99}`,
			score: 0.2,
			want:  Explanation{TextScore: 0.3, TotalScore: 0.2},
		},
		{
			name:  "out of range components are clamped",
			data:  `{"ingredient_score":3,"metadata_score":-1}`,
			score: 0.5,
			want:  Explanation{IngredientScore: 1, TotalScore: 0.5},
		},
		{
			name:    "corrupt payload",
			data:    `{"ingredient_score":`,
			score:   0.7,
			want:    Explanation{TotalScore: 0.7},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := UnmarshalExplanation([]byte(tt.data), tt.score)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
