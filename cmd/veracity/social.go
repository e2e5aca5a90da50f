// cmd/veracity/social.go
package main

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"
)

// Polarity thresholds on the absolute source bias.
const (
	polarityHighlyPolarized = 25.0
	polarityPolarized       = 15.0
	polarityModerate        = 5.0
	viralityBiasThreshold   = 15.0
	viralityMultiplier      = 1.5
)

// SocialSynthesizer produces simulated engagement numbers for a result.
// The structure is deterministic but the values carry bounded random jitter;
// this is presentation-layer simulation, not measurement, and every produced
// record says so via the Simulated field. The randomness source is injectable
// so tests can pin a seed and assert bounds.
type SocialSynthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSocialSynthesizer creates a synthesizer. A nil rng gets a time-seeded
// default.
func NewSocialSynthesizer(rng *rand.Rand) *SocialSynthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SocialSynthesizer{rng: rng}
}

// Synthesize derives a virality profile from the resolved source record.
// Baseline engagement scales with reliability; polarizing sources get a
// virality multiplier, reflecting that divisive content spreads faster.
func (s *SocialSynthesizer) Synthesize(title string, source *CredibilityRecord) *SocialMetrics {
	absBias := math.Abs(source.Bias)

	baseline := source.Reliability * 100
	multiplier := 1.0
	if absBias > viralityBiasThreshold {
		multiplier = viralityMultiplier
	}

	platforms := map[string]PlatformMetrics{
		"twitter":  s.platform(baseline*multiplier, 1.0),
		"facebook": s.platform(baseline*multiplier, 0.8),
		"reddit":   s.platform(baseline*multiplier, 0.5),
	}

	metrics := &SocialMetrics{
		Platforms:          platforms,
		ViralityScore:      round2(clamp(absBias*1.5+multiplier*20+s.jitter(0, 20), 0, 100)),
		PublicInterest:     round2(clamp(source.Reliability*0.5+absBias*0.3+s.jitter(0, 30), 0, 100)),
		DiscussionPolarity: discussionPolarity(absBias),
		Hashtags:           buildHashtags(title, source),
		Simulated:          true,
	}
	return metrics
}

// platform builds one platform's numbers from the scaled baseline.
func (s *SocialSynthesizer) platform(baseline, scale float64) PlatformMetrics {
	shares := baseline * scale * s.jitter(0.8, 1.2)
	engagement := shares * s.jitter(2.0, 4.0)
	return PlatformMetrics{
		Shares:     int(shares),
		Engagement: int(engagement),
		Sentiment:  round2(s.jitter(-1, 1)),
	}
}

// jitter returns a random value in [lo, hi).
func (s *SocialSynthesizer) jitter(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Float64()*(hi-lo)
}

// discussionPolarity buckets the absolute source bias.
func discussionPolarity(absBias float64) string {
	switch {
	case absBias > polarityHighlyPolarized:
		return "highly_polarized"
	case absBias > polarityPolarized:
		return "polarized"
	case absBias > polarityModerate:
		return "moderate"
	default:
		return "balanced"
	}
}

// buildHashtags seeds a tag list from up to two long title words plus fixed
// topical tags gated on the source attributes.
func buildHashtags(title string, source *CredibilityRecord) []string {
	tags := []string{"#News"}

	added := 0
	for _, word := range strings.Fields(title) {
		cleaned := cleanWord(word)
		if len(cleaned) <= 5 {
			continue
		}
		tags = append(tags, "#"+titleWord(cleaned))
		added++
		if added == 2 {
			break
		}
	}

	if source.Reliability > 80 {
		tags = append(tags, "#FactCheck")
	}
	if math.Abs(source.Bias) > viralityBiasThreshold {
		tags = append(tags, "#Politics")
	}
	return tags
}

// titleWord uppercases the first rune of a nonempty word.
func titleWord(w string) string {
	runes := []rune(w)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
