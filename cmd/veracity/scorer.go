// cmd/veracity/scorer.go
package main

import "math"

// Credibility scorer constants.
const (
	neutralMidpoint       = 50.0
	highReliabilityTier   = 70.0
	lowReliabilityTier    = 30.0
	highSourceWeight      = 0.6
	defaultSourceWeight   = 0.3
	sensationalPenaltyW   = 1.5
	sensationalFlagPct    = 5.0
	fakePhrasePenaltyW    = 3.0
	scientificBonusW      = 1.0
	qualityAdjustWeight   = 0.4
	reliableFloorAt       = 85.0
	reliableFloor         = 70.0
	unreliableCap         = 40.0
	shortContentTokens    = 20
	shortContentPenalty   = 10.0
	capsRunPenalty        = 2.0
	capsRunPenaltyCap     = 15.0
)

// Red flag messages.
const (
	flagSensational   = "high use of sensational language"
	flagFakePhrases   = "contains phrases commonly associated with misinformation"
	flagShortContent  = "content too short for reliable analysis"
	flagExcessiveCaps = "excessive use of capitalized words"
	flagInsufficient  = "insufficient content for analysis"
	flagNone          = "no major red flags detected"
)

// ScoreInputs are the signals the credibility scorer combines. All of them
// are produced by the feature extractors and the source resolver; the scorer
// itself holds no state.
type ScoreInputs struct {
	Language    LanguageProfile
	Reliability float64
	Structural  float64
	Coherence   float64
	TokenCount  int
	RawContent  string
}

// ScoreOutcome is the rounded credibility score plus the red flags collected
// along the way. RedFlags always has at least the sentinel entry.
type ScoreOutcome struct {
	Score    int
	RedFlags []string
}

// ScoreCredibility combines source reputation with the text signals into a
// bounded 0-100 score.
//
// The base blends the neutral midpoint with source reliability; well-known
// sources (reliability above 70) carry more weight than unknown or poor ones,
// which keeps a single bad source from dominating the text evidence. Content
// penalties apply before the reliability guardrails so that the floor for
// highly reliable sources and the cap for unreliable ones hold no matter
// what the text contains. Rounding happens exactly once, at the end.
func ScoreCredibility(in ScoreInputs) ScoreOutcome {
	var flags []string

	sourceWeight := defaultSourceWeight
	if in.Reliability > highReliabilityTier {
		sourceWeight = highSourceWeight
	}
	score := (1-sourceWeight)*neutralMidpoint + sourceWeight*in.Reliability

	score -= in.Language.SensationalPct * sensationalPenaltyW
	if in.Language.SensationalPct > sensationalFlagPct {
		flags = append(flags, flagSensational)
	}

	score -= in.Language.FakePhrasePct * fakePhrasePenaltyW
	if in.Language.FakePhrasePct > 0 {
		flags = append(flags, flagFakePhrases)
	}

	score += in.Language.ScientificPct * scientificBonusW

	score += (in.Structural - neutralMidpoint) * qualityAdjustWeight
	score += (in.Coherence - neutralMidpoint) * qualityAdjustWeight

	if in.TokenCount < shortContentTokens {
		score -= shortContentPenalty
		flags = append(flags, flagShortContent)
	}

	if runs := countCapsRuns(in.RawContent); runs > 0 {
		penalty := float64(runs) * capsRunPenalty
		if penalty > capsRunPenaltyCap {
			penalty = capsRunPenaltyCap
		}
		score -= penalty
		flags = append(flags, flagExcessiveCaps)
	}

	// Asymmetric guardrails: content heuristics may not fully override what
	// is known about the source.
	if in.Reliability >= reliableFloorAt && score < reliableFloor {
		score = reliableFloor
	}
	if in.Reliability < lowReliabilityTier && score > unreliableCap {
		score = unreliableCap
	}

	if len(flags) == 0 {
		flags = []string{flagNone}
	}

	return ScoreOutcome{
		Score:    int(math.Round(clamp(score, 0, 100))),
		RedFlags: flags,
	}
}

// VerificationStatus maps a rounded credibility score to its categorical
// label. The boundaries are exclusive: 85 is still partially_verified.
func VerificationStatus(score int) string {
	switch {
	case score > 85:
		return StatusVerified
	case score > 70:
		return StatusPartiallyVerified
	case score > 45:
		return StatusUnverified
	default:
		return StatusFake
	}
}
