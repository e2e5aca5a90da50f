// cmd/veracity/types.go
package main

import (
	"time"
)

// AnalysisInput is the request payload for an analysis. At least one of
// Title, Content or SourceURL must be present; when only SourceURL is given
// the extractor fills in the text fields before scoring.
type AnalysisInput struct {
	Title     string `json:"title,omitempty"`
	Content   string `json:"content,omitempty"`
	SourceURL string `json:"sourceUrl,omitempty"`
}

// IsEmpty reports whether the input carries nothing to work with.
func (in AnalysisInput) IsEmpty() bool {
	return in.Title == "" && in.Content == "" && in.SourceURL == ""
}

// SentimentBreakdown holds the sentiment percentages for one text.
// Positive and Negative are clamped to [0,100]; Neutral is whatever remains,
// clamped at zero.
type SentimentBreakdown struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Tone     string  `json:"tone"` // "positive", "negative" or "neutral"
}

// KeyTerm is a ranked term extracted from the analyzed text.
type KeyTerm struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// ReadabilityMetrics are basic prose statistics attached to each result.
type ReadabilityMetrics struct {
	AverageWordLength     float64 `json:"averageWordLength"`
	AverageSentenceLength float64 `json:"averageSentenceLength"`
	ReadabilityScore      float64 `json:"readabilityScore"`
}

// PlatformMetrics holds synthesized per-platform engagement numbers.
type PlatformMetrics struct {
	Shares     int     `json:"shares"`
	Engagement int     `json:"engagement"`
	Sentiment  float64 `json:"sentiment"`
}

// SocialMetrics is a synthesized virality profile. The values are simulated
// from the credibility and bias signals, not measured from any platform;
// Simulated is always true so consumers cannot mistake them for real data.
type SocialMetrics struct {
	Platforms          map[string]PlatformMetrics `json:"platforms"`
	ViralityScore      float64                    `json:"viralityScore"`
	PublicInterest     float64                    `json:"publicInterest"`
	DiscussionPolarity string                     `json:"discussionPolarity"`
	Hashtags           []string                   `json:"hashtags"`
	Simulated          bool                       `json:"simulated"`
}

// AIReview is an optional second opinion from the OpenAI reviewer. It never
// feeds back into the heuristic scores.
type AIReview struct {
	Rating      string  `json:"rating"`
	Explanation string  `json:"explanation"`
	TrustScore  float64 `json:"trustScore"`
	Model       string  `json:"model"`
}

// AnalysisResult is the full output record for one analyzed item. It is
// produced fresh per request and never mutated afterwards.
type AnalysisResult struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title,omitempty"`
	SourceURL          string             `json:"sourceUrl,omitempty"`
	SourceDomain       string             `json:"sourceDomain,omitempty"`
	CredibilityScore   int                `json:"credibilityScore"`
	VerificationStatus string             `json:"verificationStatus"`
	BiasScore          float64            `json:"biasScore"`
	BiasLevel          string             `json:"biasLevel"`
	LanguageScore      float64            `json:"languageScore"`
	StructuralScore    float64            `json:"structuralScore"`
	CoherenceScore     float64            `json:"coherenceScore"`
	Sentiment          SentimentBreakdown `json:"sentiment"`
	ContentType        string             `json:"contentType"`
	Readability        ReadabilityMetrics `json:"readability"`
	RedFlags           []string           `json:"redFlags"`
	KeyTerms           []KeyTerm          `json:"keyTerms"`
	Source             *CredibilityRecord `json:"source"`
	SocialMetrics      *SocialMetrics     `json:"socialMetrics,omitempty"`
	AIReview           *AIReview          `json:"aiReview,omitempty"`
	AnalyzedAt         time.Time          `json:"analyzedAt"`
}

// ErrorEvent is one recorded error, kept in the in-memory ring buffer and
// surfaced on the API.
type ErrorEvent struct {
	Component string    `json:"component"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Time      time.Time `json:"time"`
}
