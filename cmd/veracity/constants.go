// cmd/veracity/constants.go
package main

// VERSION is the current application version
const VERSION = "1.0.0"

// File paths
const (
	configFilePath     = "config/config.json"
	reputationFilePath = "config/reputation.yml"
	stateFilePath      = "data/state.json"
	defaultLogPath     = "data/logs/veracity.log"
)

// API limits
const (
	maxAnalysisHistory = 200
	maxContentBytes    = 512 * 1024
	maxKeyTerms        = 20
)

// Verification status labels, derived from the rounded credibility score.
const (
	StatusVerified          = "verified"
	StatusPartiallyVerified = "partially_verified"
	StatusUnverified        = "unverified"
	StatusFake              = "fake"
)

// Content type labels
const (
	ContentTypeNews      = "NEWS"
	ContentTypeOpinion   = "OPINION"
	ContentTypeSatire    = "SATIRE"
	ContentTypeClickbait = "CLICKBAIT"
	ContentTypeUnknown   = "UNKNOWN"
)
