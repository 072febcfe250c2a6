// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package textsim

import (
	"regexp"
	"sort"
	"strings"
)

// nonWordPattern matches everything that is not an ASCII word character or whitespace.
var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// minTokenLength is the shortest token kept by Tokenize.
// Tokens of this length or shorter carry no signal ("a", "of", "to").
const minTokenLength = 3

// stopWords holds generic English stop words plus cooking-domain noise:
// measurement units, time words and temperature words that appear in almost
// every recipe and would otherwise dominate text similarity.
var stopWords = map[string]struct{}{
	// English
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "into": {},
	"onto": {}, "over": {}, "under": {}, "then": {}, "than": {}, "that": {},
	"this": {}, "these": {}, "those": {}, "there": {}, "their": {}, "they": {},
	"them": {}, "you": {}, "your": {}, "yours": {}, "our": {}, "ours": {},
	"are": {}, "was": {}, "were": {}, "been": {}, "being": {}, "have": {},
	"has": {}, "had": {}, "will": {}, "would": {}, "should": {}, "could": {},
	"can": {}, "may": {}, "might": {}, "must": {}, "not": {}, "but": {},
	"about": {}, "after": {}, "before": {}, "until": {}, "while": {},
	"each": {}, "every": {}, "all": {}, "any": {}, "some": {}, "more": {},
	"most": {}, "other": {}, "such": {}, "only": {}, "own": {}, "same": {},
	"very": {}, "just": {}, "also": {}, "too": {}, "again": {}, "once": {},
	"here": {}, "when": {}, "where": {}, "what": {}, "which": {}, "who": {},
	"how": {}, "why": {}, "its": {}, "out": {}, "off": {},
	"down": {}, "through": {}, "between": {}, "both": {}, "few": {},
	"per": {}, "well": {}, "use": {}, "using": {}, "make": {},
	"makes": {}, "add": {}, "adding": {},

	// Units
	"cup": {}, "cups": {}, "tbsp": {}, "tbs": {}, "tsp": {},
	"tablespoon": {}, "tablespoons": {}, "teaspoon": {}, "teaspoons": {},
	"ounce": {}, "ounces": {}, "pound": {}, "pounds": {}, "lbs": {},
	"gram": {}, "grams": {}, "kilogram": {}, "kilograms": {}, "pinch": {},
	"dash": {}, "quart": {}, "quarts": {}, "pint": {}, "pints": {},
	"liter": {}, "liters": {}, "litre": {}, "litres": {}, "package": {},
	"packages": {}, "cans": {}, "large": {}, "medium": {},
	"small": {}, "whole": {}, "piece": {}, "pieces": {},

	// Time and temperature
	"minute": {}, "minutes": {}, "min": {}, "mins": {}, "hour": {},
	"hours": {}, "second": {}, "seconds": {}, "degree": {}, "degrees": {},
	"fahrenheit": {}, "celsius": {}, "heat": {}, "preheat": {},
}

// IsStopWord reports whether word is in the fixed stop-word set.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// Tokenize lowercases text, replaces non-word characters with whitespace,
// splits on whitespace and drops short tokens and stop words.
// Empty input yields an empty slice.
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}

	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTokenLength {
			continue
		}
		if IsStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// TokenizeUnique returns the distinct tokens of text in lexical order.
func TokenizeUnique(text string) []string {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		set[tok] = struct{}{}
	}
	return sortedKeys(set)
}

// TokenizeStemmed tokenizes text and stems every token.
func TokenizeStemmed(text string) []string {
	tokens := Tokenize(text)
	for i, tok := range tokens {
		tokens[i] = Stem(tok)
	}
	return tokens
}

// stemRule strips suffix and appends replacement.
type stemRule struct {
	suffix      string
	replacement string
}

// stemRules are evaluated top to bottom; the first applicable rule wins and
// at most one rule is applied per call. The order is load-bearing: changing
// it changes every stored similarity score.
var stemRules = []stemRule{
	{suffix: "ing", replacement: ""},
	{suffix: "ed", replacement: ""},
	{suffix: "es", replacement: ""},
	{suffix: "s", replacement: ""},
	{suffix: "ly", replacement: ""},
	{suffix: "ness", replacement: ""},
	{suffix: "ment", replacement: ""},
	{suffix: "tion", replacement: ""},
}

// Stem applies the heuristic suffix-stripping rules to a single lowercase word.
// The first rule whose suffix matches is applied, however short the result.
//
//	Stem("cooking")  == "cook"
//	Stem("onions")   == "onion"
//	Stem("tomatoes") == "tomato"
//	Stem("peas")     == "pa"
func Stem(word string) string {
	for _, rule := range stemRules {
		if strings.HasSuffix(word, rule.suffix) {
			return word[:len(word)-len(rule.suffix)] + rule.replacement
		}
	}
	return word
}

// Ngrams returns the contiguous windows of n tokens joined by single spaces.
// Returns an empty slice when n <= 0 or there are fewer than n tokens.
func Ngrams(tokens []string, n int) []string {
	if n <= 0 || len(tokens) < n {
		return []string{}
	}

	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], " "))
	}
	return grams
}

// sortedKeys returns the keys of a string set in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
