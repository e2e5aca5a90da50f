// cmd/veracity/analyzer.go
package main

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

// Analyzer sequences the scoring pipeline over one input. It holds only
// read-only data (resolver table, lexicons) and is safe for concurrent use;
// every call is independent.
type Analyzer struct {
	resolver *SourceResolver
	lexicons *LexiconSet
	social   *SocialSynthesizer
}

// NewAnalyzer wires the analyzer from its collaborators.
func NewAnalyzer(resolver *SourceResolver, lexicons *LexiconSet, social *SocialSynthesizer) *Analyzer {
	return &Analyzer{
		resolver: resolver,
		lexicons: lexicons,
		social:   social,
	}
}

// Analyze scores one item. The caller has already resolved any source URL to
// a normalized domain and fetched whatever text it could; an empty domain is
// valid and resolves to the unknown-source record. Analyze never fails: with
// no usable text it returns the documented neutral degenerate result.
func (a *Analyzer) Analyze(title, content, domain string) *AnalysisResult {
	source := a.resolver.Resolve(domain)

	// Fall back through content, then title. The combined text drives the
	// extractors so headline-only submissions still get scored.
	text := strings.TrimSpace(strings.TrimSpace(title) + "\n\n" + strings.TrimSpace(content))
	tokens := tokenize(text)

	result := &AnalysisResult{
		ID:           analysisID(title, domain),
		Title:        strings.TrimSpace(title),
		SourceDomain: domain,
		Source:       source,
		AnalyzedAt:   time.Now().UTC(),
	}

	if len(tokens) == 0 {
		return a.neutralResult(result)
	}

	sentiment := AnalyzeSentiment(text, a.lexicons)
	biasScore, biasLevel := AnalyzeBias(text, a.lexicons)
	language := AnalyzeLanguage(text, a.lexicons)
	structural := AnalyzeStructure(content, a.lexicons)
	coherence := AnalyzeCoherence(text)

	outcome := ScoreCredibility(ScoreInputs{
		Language:    language,
		Reliability: source.Reliability,
		Structural:  structural,
		Coherence:   coherence,
		TokenCount:  len(tokens),
		RawContent:  text,
	})

	result.CredibilityScore = outcome.Score
	result.VerificationStatus = VerificationStatus(outcome.Score)
	result.RedFlags = outcome.RedFlags
	result.BiasScore = biasScore
	result.BiasLevel = biasLevel
	result.LanguageScore = language.Score
	result.StructuralScore = structural
	result.CoherenceScore = coherence
	result.Sentiment = sentiment
	result.ContentType = DetectContentType(title, content)
	result.Readability = readabilityMetrics(text)
	result.KeyTerms = ExtractKeyTerms(text, a.lexicons)
	result.SocialMetrics = a.social.Synthesize(title, source)

	return result
}

// neutralResult fills the degenerate record returned when no usable text
// survived the fallback chain.
func (a *Analyzer) neutralResult(result *AnalysisResult) *AnalysisResult {
	result.CredibilityScore = 50
	result.VerificationStatus = VerificationStatus(50)
	result.RedFlags = []string{flagInsufficient}
	result.BiasScore = 0
	result.BiasLevel = "center"
	result.LanguageScore = 50
	result.StructuralScore = 50
	result.CoherenceScore = 50
	result.Sentiment = SentimentBreakdown{Neutral: 100, Tone: "neutral"}
	result.ContentType = ContentTypeUnknown
	result.SocialMetrics = a.social.Synthesize(result.Title, result.Source)
	return result
}

// analysisID builds a unique id for a result.
func analysisID(title, domain string) string {
	seed := fmt.Sprintf("%s|%s|%d", title, domain, time.Now().UnixNano())
	return fmt.Sprintf("%x", md5.Sum([]byte(seed)))
}
