// cmd/veracity/bias.go
package main

import "strings"

// Bias thresholds on the text-derived score. These are tuned constants on
// the [-1,1] scale, unrelated to the source-table bias range.
const (
	biasRightThreshold = 0.2
	biasLeftThreshold  = -0.2
	quotedBiasWeight   = 0.5
)

// AnalyzeBias estimates political lean from lexicon hits. Hits inside quoted
// spans count at half weight, since quoted speech often belongs to a subject
// rather than the author. The score is (right-left)/(right+left) in [-1,1].
func AnalyzeBias(text string, lex *LexiconSet) (float64, string) {
	tokens := markTokens(text)

	left := weightedBiasHits(tokens, text, lex.LeftLeaning)
	right := weightedBiasHits(tokens, text, lex.RightLeaning)

	score := 0.0
	if left+right > 0 {
		score = (right - left) / (right + left)
	}
	score = clamp(score, -1, 1)

	level := "center"
	if score > biasRightThreshold {
		level = "right"
	} else if score < biasLeftThreshold {
		level = "left"
	}

	return round2(score), level
}

// weightedBiasHits sums lexicon hits: single-word terms match tokens via the
// loose containment rule, multi-word terms are counted as phrases in the
// lowercased text.
func weightedBiasHits(tokens []token, text string, terms []string) float64 {
	lower := strings.ToLower(text)

	total := 0.0
	for _, term := range terms {
		if strings.Contains(term, " ") {
			total += float64(strings.Count(lower, term))
			continue
		}
		for _, tok := range tokens {
			if containsTerm(tok.word, term) {
				if tok.quoted {
					total += quotedBiasWeight
				} else {
					total += 1
				}
			}
		}
	}
	return total
}
