// cmd/veracity/structure.go
package main

import (
	"regexp"
	"strings"
)

// Structural scoring bonuses, each individually capped.
const (
	structuralBase      = 50.0
	paragraphBonus      = 5.0
	quoteBonus          = 3.0
	quoteBonusCap       = 15.0
	statisticBonus      = 2.0
	statisticBonusCap   = 10.0
	attributionBonus    = 3.0
	attributionBonusCap = 15.0
	temporalBonus       = 2.0
	temporalBonusCap    = 10.0
	minParagraphBreaks  = 3
)

var (
	statisticPattern = regexp.MustCompile(`\d+(?:\.\d+)?%?`)
	temporalPattern  = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\b|\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\b|\b(?:yesterday|today|tomorrow|last week|this week|last month|this year|on monday|on tuesday|on wednesday|on thursday|on friday|on saturday|on sunday)\b`)
)

// AnalyzeStructure scores journalistic form: paragraphs, quotes, statistics,
// attributions and temporal references all add bounded bonuses on top of a
// neutral base.
func AnalyzeStructure(text string, lex *LexiconSet) float64 {
	if strings.TrimSpace(text) == "" {
		return 50
	}

	score := structuralBase

	if countParagraphBreaks(text) >= minParagraphBreaks {
		score += paragraphBonus
	}

	quotes := strings.Count(text, `"`)/2 + strings.Count(text, "“")
	score += cappedBonus(float64(quotes)*quoteBonus, quoteBonusCap)

	stats := len(statisticPattern.FindAllString(text, -1))
	score += cappedBonus(float64(stats)*statisticBonus, statisticBonusCap)

	attributions := countPhraseHits(text, lex.Attribution)
	score += cappedBonus(float64(attributions)*attributionBonus, attributionBonusCap)

	temporal := len(temporalPattern.FindAllString(text, -1))
	score += cappedBonus(float64(temporal)*temporalBonus, temporalBonusCap)

	return round2(clamp(score, 0, 100))
}

func cappedBonus(bonus, limit float64) float64 {
	if bonus > limit {
		return limit
	}
	return bonus
}
