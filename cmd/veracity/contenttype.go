// cmd/veracity/contenttype.go
package main

import "strings"

var (
	opinionMarkers = []string{
		"opinion", "editorial", "perspective", "viewpoint", "commentary",
		"i believe", "i think", "in my view", "my opinion", "i argue",
	}
	satireMarkers = []string{
		"satire", "parody", "humor", "fictional", "not real news",
	}
	clickbaitMarkers = []string{
		"you won't believe", "shocking", "mind-blowing", "amazing",
		"incredible", "insane", "unbelievable", "secret", "trick",
		"this one", "will blow your mind", "what happens next",
	}
	firstPersonWords = []string{
		"i", "we", "my", "our", "myself", "ourselves",
	}
	exaggerationWords = []string{
		"literally", "actually", "every single", "everyone", "nobody",
		"best ever", "worst ever",
	}
)

// DetectContentType classifies the text as straight news, opinion, satire or
// clickbait using marker phrases, with first-person density and exaggerated
// language as fallback heuristics. Texts too short to judge come back UNKNOWN.
func DetectContentType(title, content string) string {
	text := strings.TrimSpace(title + " " + content)
	if len(text) < 20 {
		return ContentTypeUnknown
	}
	lower := strings.ToLower(text)

	for _, marker := range opinionMarkers {
		if strings.Contains(lower, marker) {
			return ContentTypeOpinion
		}
	}
	for _, marker := range satireMarkers {
		if strings.Contains(lower, marker) {
			return ContentTypeSatire
		}
	}

	clickbaitCount := 0
	for _, marker := range clickbaitMarkers {
		if strings.Contains(lower, marker) {
			clickbaitCount++
		}
	}
	if clickbaitCount >= 2 {
		return ContentTypeClickbait
	}

	tokens := tokenize(lower)
	firstPerson := 0
	for _, tok := range tokens {
		for _, w := range firstPersonWords {
			if tok == w {
				firstPerson++
				break
			}
		}
	}
	if firstPerson > 3 {
		return ContentTypeOpinion
	}

	if countPhraseHits(lower, exaggerationWords) > 2 {
		return ContentTypeSatire
	}

	return ContentTypeNews
}
