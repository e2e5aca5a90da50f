// cmd/veracity/coherence.go
package main

import "math"

// Coherence component weights (sentence-length band / variety / vocabulary).
const (
	lengthBandWeight = 0.3
	varietyWeight    = 0.3
	vocabularyWeight = 0.4
	ttrScale         = 125.0
)

// AnalyzeCoherence estimates how much the text reads like natural prose,
// combining a sentence-length band score, sentence-length variety and
// type-token ratio.
func AnalyzeCoherence(text string) float64 {
	lengths := sentenceLengths(text)
	words := tokenize(text)
	if len(lengths) == 0 || len(words) == 0 {
		return 50
	}

	score := lengthBandWeight*lengthBandScore(lengths) +
		varietyWeight*varietyScore(lengths) +
		vocabularyWeight*vocabularyScore(words)

	return round2(clamp(score, 0, 100))
}

// lengthBandScore rewards the 12-25 words-per-sentence band and penalizes
// fragments and run-ons.
func lengthBandScore(lengths []int) float64 {
	total := 0
	for _, n := range lengths {
		total += n
	}
	avg := float64(total) / float64(len(lengths))

	switch {
	case avg < 5 || avg > 35:
		return 30
	case avg >= 12 && avg <= 25:
		return 90
	default:
		return 60
	}
}

// varietyScore rewards variation in sentence length; monotonous prose reads
// as machine-generated or padded.
func varietyScore(lengths []int) float64 {
	if len(lengths) < 2 {
		return 50
	}

	total := 0
	for _, n := range lengths {
		total += n
	}
	mean := float64(total) / float64(len(lengths))

	var sum float64
	for _, n := range lengths {
		d := float64(n) - mean
		sum += d * d
	}
	deviation := math.Sqrt(sum / float64(len(lengths)))

	return clamp(50+10*deviation, 0, 100)
}

// vocabularyScore scales the type-token ratio into a 0-100 score.
func vocabularyScore(words []string) float64 {
	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[w] = true
	}
	ttr := float64(len(unique)) / float64(len(words))
	return clamp(ttr*ttrScale, 0, 100)
}
