// cmd/veracity/textutil.go
package main

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// token is one word of the analyzed text. Quoted marks tokens that sit inside
// or next to a quoted span; several extractors down-weight those hits.
type token struct {
	word   string
	quoted bool
}

// quoteChars are the characters treated as quote marks. The plain apostrophe
// is excluded so contractions survive tokenization.
const quoteChars = "\"“”«»"

// quoteWindow is how many neighboring fields are inspected when deciding
// whether a token sits inside a quoted span.
const quoteWindow = 3

// normalizeText applies NFKC normalization and collapses whitespace.
func normalizeText(s string) string {
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// markTokens splits text into lowercase word tokens, tagging each with
// whether a quote character appears within quoteWindow fields of it.
func markTokens(text string) []token {
	fields := strings.Fields(normalizeText(text))
	hasQuote := make([]bool, len(fields))
	for i, f := range fields {
		hasQuote[i] = strings.ContainsAny(f, quoteChars)
	}

	var tokens []token
	for i, f := range fields {
		word := cleanWord(f)
		if word == "" {
			continue
		}
		quoted := false
		lo := i - quoteWindow
		if lo < 0 {
			lo = 0
		}
		hi := i + quoteWindow
		if hi >= len(fields) {
			hi = len(fields) - 1
		}
		for j := lo; j <= hi; j++ {
			if hasQuote[j] {
				quoted = true
				break
			}
		}
		tokens = append(tokens, token{word: word, quoted: quoted})
	}
	return tokens
}

// tokenize returns the lowercase word tokens of text.
func tokenize(text string) []string {
	marked := markTokens(text)
	words := make([]string, len(marked))
	for i, t := range marked {
		words[i] = t.word
	}
	return words
}

// cleanWord lowercases a field and strips everything except letters, digits,
// apostrophes and inner hyphens.
func cleanWord(field string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(field) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "'-")
}

// splitSentences breaks text on terminal punctuation, dropping empty parts.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// sentenceLengths returns the word count of each sentence.
func sentenceLengths(text string) []int {
	sentences := splitSentences(text)
	lengths := make([]int, 0, len(sentences))
	for _, s := range sentences {
		if n := len(strings.Fields(s)); n > 0 {
			lengths = append(lengths, n)
		}
	}
	return lengths
}

// averageSentenceLength is the mean words-per-sentence, 0 for empty text.
func averageSentenceLength(text string) float64 {
	lengths := sentenceLengths(text)
	if len(lengths) == 0 {
		return 0
	}
	total := 0
	for _, n := range lengths {
		total += n
	}
	return float64(total) / float64(len(lengths))
}

// countCapsRuns counts maximal runs of two or more consecutive capital
// letters, the signature of shouty all-caps emphasis.
func countCapsRuns(text string) int {
	runs := 0
	runLen := 0
	for _, r := range text {
		if unicode.IsUpper(r) {
			runLen++
			continue
		}
		if runLen >= 2 {
			runs++
		}
		runLen = 0
	}
	if runLen >= 2 {
		runs++
	}
	return runs
}

// countParagraphBreaks counts blank-line separations in the raw content.
func countParagraphBreaks(text string) int {
	count := 0
	for _, part := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	if count > 0 {
		count-- // n paragraphs have n-1 breaks
	}
	return count
}

// containsTerm reports whether the token contains the lexicon term as a
// substring. The loose containment match is deliberate: it trades false
// positives on substrings for recall on inflected forms.
func containsTerm(word, term string) bool {
	return strings.Contains(word, term)
}

// countPhraseHits counts occurrences of each phrase in the lowercased text.
func countPhraseHits(text string, phrases []string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, p := range phrases {
		hits += strings.Count(lower, p)
	}
	return hits
}

// readabilityMetrics computes basic prose statistics. The score is a scaled
// simplification of Flesch-Kincaid grade level, clamped to 0-100.
func readabilityMetrics(text string) ReadabilityMetrics {
	words := strings.Fields(text)
	lengths := sentenceLengths(text)
	if len(words) == 0 || len(lengths) == 0 {
		return ReadabilityMetrics{}
	}

	totalLen := 0
	for _, w := range words {
		totalLen += len(w)
	}
	avgWordLen := float64(totalLen) / float64(len(words))
	avgSentenceLen := float64(len(words)) / float64(len(lengths))

	score := (0.39*avgSentenceLen + 11.8*avgWordLen - 15.59) * 5
	return ReadabilityMetrics{
		AverageWordLength:     round2(avgWordLen),
		AverageSentenceLength: round2(avgSentenceLen),
		ReadabilityScore:      round2(clamp(score, 0, 100)),
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	if v >= 0 {
		return float64(int(v*100+0.5)) / 100
	}
	return float64(int(v*100-0.5)) / 100
}
