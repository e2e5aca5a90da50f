// cmd/veracity/language.go
package main

// Language scoring constants.
const (
	languageBase          = 55.0
	scientificWeight      = 5.0
	sensationalWeight     = 4.0
	quotedSensationalWt   = 0.3
	healthySentenceMin    = 10.0
	healthySentenceMax    = 25.0
	structureFactorBonus  = 1.2
)

// LanguageProfile carries the language-quality score together with the raw
// percentages the credibility scorer consumes.
type LanguageProfile struct {
	SensationalPct float64
	ScientificPct  float64
	FakePhrasePct  float64
	Score          float64
}

// AnalyzeLanguage scores the register of the text: scientific vocabulary
// pushes the score up, sensational vocabulary pushes it down. Sensational
// hits inside quoted spans are heavily down-weighted, since reporting on
// someone's outburst is not the same as producing one.
func AnalyzeLanguage(text string, lex *LexiconSet) LanguageProfile {
	tokens := markTokens(text)
	if len(tokens) == 0 {
		return LanguageProfile{Score: 50}
	}
	n := float64(len(tokens))

	var sensational float64
	for _, tok := range tokens {
		if matchesAny(tok.word, lex.Sensational) {
			if tok.quoted {
				sensational += quotedSensationalWt
			} else {
				sensational += 1
			}
		}
	}

	var scientific float64
	for _, tok := range tokens {
		if matchesAny(tok.word, lex.Scientific) {
			scientific += 1
		}
	}

	sensationalPct := sensational / n * 100
	scientificPct := scientific / n * 100
	fakePhrasePct := float64(countPhraseHits(text, lex.FakePhrases)) / n * 100

	structureFactor := 1.0
	if avg := averageSentenceLength(text); avg >= healthySentenceMin && avg <= healthySentenceMax {
		structureFactor = structureFactorBonus
	}

	score := languageBase + scientificPct*scientificWeight*structureFactor - sensationalPct*sensationalWeight

	return LanguageProfile{
		SensationalPct: round2(sensationalPct),
		ScientificPct:  round2(scientificPct),
		FakePhrasePct:  round2(fakePhrasePct),
		Score:          round2(clamp(score, 0, 100)),
	}
}
