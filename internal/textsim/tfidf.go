// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package textsim

import (
	"math"
	"sort"
)

// Vector is a TF-IDF vector: Terms[i] has weight Values[i].
// Terms never contains duplicates and both slices have equal length.
type Vector struct {
	Terms  []string  `json:"terms"`
	Values []float64 `json:"values"`
}

// Len returns the number of terms.
func (v Vector) Len() int {
	return len(v.Terms)
}

// Weight returns the value for term, or 0 when the term is absent.
func (v Vector) Weight(term string) float64 {
	for i, t := range v.Terms {
		if t == term {
			return v.Values[i]
		}
	}
	return 0
}

// TermScore pairs a term with its TF-IDF score.
type TermScore struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// TermFrequency is the count of term in document divided by the document
// length. Returns 0 for an empty document.
func TermFrequency(term string, document []string) float64 {
	if len(document) == 0 {
		return 0
	}
	count := 0
	for _, tok := range document {
		if tok == term {
			count++
		}
	}
	return float64(count) / float64(len(document))
}

// InverseDocumentFrequency is ln(N / (1 + df)) where N is the number of
// documents and df the number containing term. The smoothing makes the value
// negative for terms present in every document; callers must not clamp it.
// Returns 0 for an empty corpus.
func InverseDocumentFrequency(term string, documents [][]string) float64 {
	if len(documents) == 0 {
		return 0
	}
	df := 0
	for _, doc := range documents {
		for _, tok := range doc {
			if tok == term {
				df++
				break
			}
		}
	}
	return idf(len(documents), df)
}

func idf(n, df int) float64 {
	if n == 0 {
		return 0
	}
	return math.Log(float64(n) / float64(1+df))
}

// TFIDF is TermFrequency * InverseDocumentFrequency.
func TFIDF(term string, document []string, documents [][]string) float64 {
	return TermFrequency(term, document) * InverseDocumentFrequency(term, documents)
}

// CalculateTFIDFVector builds the TF-IDF vector of text against corpus.
// Every document is tokenized and stemmed. The vocabulary is the union of
// terms across corpus and text in order of first appearance, and IDF is
// computed over corpus plus text itself.
func CalculateTFIDFVector(text string, corpus []string) Vector {
	document := TokenizeStemmed(text)

	documents := make([][]string, 0, len(corpus)+1)
	for _, c := range corpus {
		documents = append(documents, TokenizeStemmed(c))
	}
	documents = append(documents, document)

	var vocabulary []string
	seen := make(map[string]struct{})
	df := make(map[string]int)
	for _, doc := range documents {
		inDoc := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				vocabulary = append(vocabulary, tok)
			}
			if _, ok := inDoc[tok]; !ok {
				inDoc[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	counts := make(map[string]int, len(document))
	for _, tok := range document {
		counts[tok]++
	}

	vec := Vector{
		Terms:  make([]string, 0, len(vocabulary)),
		Values: make([]float64, 0, len(vocabulary)),
	}
	for _, term := range vocabulary {
		var tf float64
		if len(document) > 0 {
			tf = float64(counts[term]) / float64(len(document))
		}
		vec.Terms = append(vec.Terms, term)
		vec.Values = append(vec.Values, tf*idf(len(documents), df[term]))
	}
	return vec
}

// GetTopTerms returns up to n terms of text with the highest TF-IDF score
// against corpus. Only terms that occur in text are ranked. Ties are broken
// by lexical term order so results are reproducible.
func GetTopTerms(text string, corpus []string, n int) []TermScore {
	if n <= 0 {
		return []TermScore{}
	}

	present := NewSet(TokenizeStemmed(text)...)
	vec := CalculateTFIDFVector(text, corpus)

	scores := make([]TermScore, 0, len(present))
	for i, term := range vec.Terms {
		if present.Has(term) {
			scores = append(scores, TermScore{Term: term, Score: vec.Values[i]})
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Term < scores[j].Term
	})

	if len(scores) > n {
		scores = scores[:n]
	}
	return scores
}
