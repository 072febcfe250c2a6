// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package textsim

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty input", "", []string{}},
		{"whitespace only", "   \t\n", []string{}},
		{"drops units and short words", "Stir 2 cups of flour, gently!", []string{"stir", "flour", "gently"}},
		{"drops time and temperature words", "Preheat the oven to 350 degrees.", []string{"oven", "350"}},
		{"keeps duplicates in order", "Garlic, more garlic", []string{"garlic", "garlic"}},
		{"punctuation splits words", "salt-and-pepper", []string{"salt", "pepper"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizeUnique(t *testing.T) {
	t.Parallel()

	got := TokenizeUnique("Garlic butter, garlic bread")
	want := []string{"bread", "butter", "garlic"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizeUnique() = %v, want %v", got, want)
	}
}

func TestTokenizeStemmed(t *testing.T) {
	t.Parallel()

	got := TokenizeStemmed("Roasted potatoes with onions")
	want := []string{"roast", "potato", "onion"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizeStemmed() = %v, want %v", got, want)
	}
}

func TestStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want string
	}{
		{"cooking", "cook"},
		{"onions", "onion"},
		{"tomatoes", "tomato"},
		{"peas", "pa"},
		{"ties", "ti"},
		{"baked", "bak"},
		{"quickly", "quick"},
		{"movement", "move"},
		{"preparation", "prepara"},
		{"kindness", "kindnes"}, // "s" is tried before "ness"
		{"sing", "s"},
		{"red", "r"},
		{"bus", "bu"},
		{"garlic", "garlic"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			if got := Stem(tt.word); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestStem_FixedPoint(t *testing.T) {
	t.Parallel()

	words := []string{
		"cooking", "onions", "tomatoes", "peas", "chopped", "quickly",
		"garlic", "eggs", "movement", "preparation", "baked", "roasted",
		"sliced", "frying", "noodles", "potatoes", "carrots", "sauces",
	}

	for _, w := range words {
		once := Stem(w)
		if twice := Stem(once); twice != once {
			t.Errorf("Stem(Stem(%q)) = %q, want fixed point %q", w, twice, once)
		}
	}
}

// A single rule fires per call, so words carrying a second strippable
// suffix are not fixed points. These are pinned so a rule change is noticed.
func TestStem_NotAlwaysIdempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word, once, twice string
	}{
		{"dresses", "dress", "dres"},
		{"blessings", "blessing", "bless"},
	}

	for _, tt := range tests {
		once := Stem(tt.word)
		if once != tt.once {
			t.Errorf("Stem(%q) = %q, want %q", tt.word, once, tt.once)
		}
		if twice := Stem(once); twice != tt.twice {
			t.Errorf("Stem(%q) = %q, want %q", once, twice, tt.twice)
		}
	}
}

func TestNgrams(t *testing.T) {
	t.Parallel()

	tokens := []string{"olive", "oil", "garlic"}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"unigrams", 1, []string{"olive", "oil", "garlic"}},
		{"bigrams", 2, []string{"olive oil", "oil garlic"}},
		{"full window", 3, []string{"olive oil garlic"}},
		{"window too large", 4, []string{}},
		{"non-positive n", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Ngrams(tokens, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ngrams(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestIsStopWord(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"the", "tbsp", "minutes", "degrees"} {
		if !IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = false, want true", w)
		}
	}
	// Apostrophes are stripped before lookup, so only the bare forms exist.
	for _, w := range []string{"it's", "can's"} {
		if IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = true, want false", w)
		}
	}
	if got := Tokenize("it's a can's worth"); !reflect.DeepEqual(got, []string{"worth"}) {
		t.Errorf("Tokenize() = %v, want [worth]", got)
	}
	if IsStopWord("basil") {
		t.Error("IsStopWord(\"basil\") = true, want false")
	}
}
