// cmd/veracity/keyterms.go
package main

import (
	"math"
	"sort"
)

// ExtractKeyTerms ranks the document's terms by a TF-IDF style weight
// computed against the document itself: frequent terms score high, but the
// log factor damps terms that dominate the text. Stop words and terms of
// two characters or fewer are excluded. Returns at most maxKeyTerms entries,
// most important first.
func ExtractKeyTerms(text string, lex *LexiconSet) []KeyTerm {
	words := tokenize(text)
	if len(words) == 0 {
		return nil
	}

	freq := make(map[string]int)
	counted := 0
	for _, w := range words {
		if len(w) <= 2 || lex.StopWords[w] {
			continue
		}
		freq[w]++
		counted++
	}
	if counted == 0 {
		return nil
	}

	terms := make([]KeyTerm, 0, len(freq))
	for word, tf := range freq {
		weight := float64(tf) * math.Log(1+float64(counted)/float64(tf))
		terms = append(terms, KeyTerm{Text: word, Value: round2(weight)})
	}

	// Deterministic ordering: weight first, then alphabetical for ties.
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Value != terms[j].Value {
			return terms[i].Value > terms[j].Value
		}
		return terms[i].Text < terms[j].Text
	})

	if len(terms) > maxKeyTerms {
		terms = terms[:maxKeyTerms]
	}
	return terms
}
