// cmd/veracity/lexicon.go
package main

// LexiconSet bundles the fixed word and phrase lists the feature extractors
// run against. Built once at startup and never modified, so it is safe for
// any number of concurrent readers.
type LexiconSet struct {
	Positive     []string
	Negative     []string
	Negations    []string
	Intensifiers []string
	LeftLeaning  []string
	RightLeaning []string
	Sensational  []string
	Scientific   []string
	FakePhrases  []string
	Attribution  []string
	StopWords    map[string]bool
}

// DefaultLexicons returns the canonical lexicon data.
func DefaultLexicons() *LexiconSet {
	return &LexiconSet{
		Positive: []string{
			"good", "great", "excellent", "positive", "success", "successful",
			"win", "benefit", "improve", "improvement", "progress", "achieve",
			"achievement", "breakthrough", "hope", "hopeful", "promising",
			"effective", "gain", "growth", "strong", "support", "celebrate",
			"praise", "optimistic", "recover", "recovery", "advance", "thrive",
		},
		Negative: []string{
			"bad", "terrible", "awful", "negative", "fail", "failure", "crisis",
			"disaster", "threat", "danger", "dangerous", "harm", "harmful",
			"loss", "decline", "collapse", "fear", "worry", "worried", "risk",
			"damage", "destroy", "violence", "violent", "death", "dead", "kill",
			"weak", "worse", "worst", "corrupt", "corruption", "scandal",
		},
		Negations: []string{
			"not", "no", "never", "don't", "doesn't", "didn't", "isn't",
			"aren't", "wasn't", "weren't",
		},
		Intensifiers: []string{
			"very", "extremely", "highly", "absolutely", "completely",
			"totally", "utterly", "really", "especially",
		},
		LeftLeaning: []string{
			"progressive", "liberal", "socialist", "welfare", "regulation",
			"inequality", "climate justice", "social justice", "diversity",
			"inclusion", "universal healthcare", "gun control", "union",
			"minimum wage", "reproductive rights", "systemic",
		},
		RightLeaning: []string{
			"conservative", "patriot", "traditional", "deregulation",
			"free market", "small government", "border security", "law and order",
			"second amendment", "pro-life", "family values", "tax cuts",
			"religious freedom", "nationalist", "fiscal responsibility",
		},
		Sensational: []string{
			"shocking", "bombshell", "explosive", "stunning", "unbelievable",
			"outrageous", "jaw-dropping", "mind-blowing", "breaking", "urgent",
			"alarming", "terrifying", "horrifying", "devastating", "miracle",
			"secret", "exposed", "destroyed", "slammed", "meltdown", "furious",
			"chaos", "insane", "epic",
		},
		Scientific: []string{
			"study", "research", "evidence", "data", "analysis", "researchers",
			"scientists", "published", "journal", "peer-reviewed", "findings",
			"experiment", "hypothesis", "correlation", "statistical",
			"methodology", "survey", "clinical", "measured", "observed",
		},
		FakePhrases: []string{
			"you won't believe", "doctors hate", "one weird trick",
			"what they don't want you to know", "mainstream media won't tell you",
			"wake up sheeple", "the truth about", "banned by",
			"they don't want you to see", "before it's deleted",
			"big pharma", "deep state", "cover up", "shadow government",
			"crisis actor", "plandemic", "miracle cure", "100% effective",
			"anonymous source reveals", "scientists baffled",
		},
		Attribution: []string{
			"according to", "said", "reported", "stated", "confirmed",
			"announced", "told reporters", "cited", "quoted",
		},
		StopWords: buildStopWords(),
	}
}

func buildStopWords() map[string]bool {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "when",
		"at", "by", "for", "with", "about", "against", "between", "into",
		"through", "during", "before", "after", "above", "below", "to", "from",
		"up", "down", "in", "out", "on", "off", "over", "under", "again",
		"further", "once", "here", "there", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "only", "own", "same",
		"so", "than", "too", "very", "can", "will", "just", "should", "now",
		"is", "are", "was", "were", "be", "been", "being", "have", "has",
		"had", "having", "do", "does", "did", "doing", "would", "could",
		"might", "must", "shall", "this", "that", "these", "those", "i",
		"me", "my", "we", "our", "you", "your", "he", "him", "his", "she",
		"her", "it", "its", "they", "them", "their", "what", "which", "who",
		"whom", "as", "of", "not", "no", "nor", "also", "because", "while",
		"where", "why", "how", "been", "get", "got", "says", "said", "one",
		"two", "new", "like", "make", "made", "many", "much", "still",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
