// cmd/veracity/sentiment.go
package main

// Sentiment extraction constants.
const (
	sentimentBoost     = 5.0 // raw hit percentages are tiny; boost into a visible range
	sentimentFloor     = 15.0
	negationLookback   = 3
	intensifierWeight  = 1.5
	baseSentimentHit   = 1.0
)

// AnalyzeSentiment scores the text's positive/negative/neutral balance.
// A negation cue within the three preceding tokens flips a hit's polarity;
// an intensifier immediately before a hit increases its weight.
func AnalyzeSentiment(text string, lex *LexiconSet) SentimentBreakdown {
	tokens := markTokens(text)
	if len(tokens) == 0 {
		return SentimentBreakdown{Neutral: 100, Tone: "neutral"}
	}

	var posScore, negScore float64
	for i, tok := range tokens {
		positive := matchesAny(tok.word, lex.Positive)
		negative := !positive && matchesAny(tok.word, lex.Negative)
		if !positive && !negative {
			continue
		}

		weight := baseSentimentHit
		if i > 0 && matchesExact(tokens[i-1].word, lex.Intensifiers) {
			weight = intensifierWeight
		}

		if isNegated(tokens, i, lex) {
			positive, negative = negative, positive
		}

		if positive {
			posScore += weight
		} else {
			negScore += weight
		}
	}

	n := float64(len(tokens))
	positive := clamp(visibleFloor(posScore/n*100*sentimentBoost), 0, 100)
	negative := clamp(visibleFloor(negScore/n*100*sentimentBoost), 0, 100)

	// Keep the polar shares within a single 100% budget.
	if positive+negative > 100 {
		scale := 100 / (positive + negative)
		positive *= scale
		negative *= scale
	}

	neutral := clamp(100-positive-negative, 0, 100)

	tone := "neutral"
	if positive > negative {
		tone = "positive"
	} else if negative > positive {
		tone = "negative"
	}

	return SentimentBreakdown{
		Positive: round2(positive),
		Negative: round2(negative),
		Neutral:  round2(neutral),
		Tone:     tone,
	}
}

// isNegated checks the preceding tokens for a negation cue.
func isNegated(tokens []token, i int, lex *LexiconSet) bool {
	lo := i - negationLookback
	if lo < 0 {
		lo = 0
	}
	for j := lo; j < i; j++ {
		if matchesExact(tokens[j].word, lex.Negations) {
			return true
		}
	}
	return false
}

// visibleFloor raises any nonzero share to the minimum visible percentage.
func visibleFloor(pct float64) float64 {
	if pct > 0 && pct < sentimentFloor {
		return sentimentFloor
	}
	return pct
}

// matchesAny applies the loose containment rule against a lexicon.
func matchesAny(word string, terms []string) bool {
	for _, term := range terms {
		if containsTerm(word, term) {
			return true
		}
	}
	return false
}

// matchesExact requires an exact token match, used for function words like
// negations and intensifiers where containment would misfire.
func matchesExact(word string, terms []string) bool {
	for _, term := range terms {
		if word == term {
			return true
		}
	}
	return false
}
