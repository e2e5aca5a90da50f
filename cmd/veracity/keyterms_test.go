// cmd/veracity/keyterms_test.go
package main

import (
	"strings"
	"testing"
)

func TestExtractKeyTerms(t *testing.T) {
	lex := DefaultLexicons()

	text := "The election commission reviewed the election results. " +
		"Observers praised the commission for a transparent election process."
	terms := ExtractKeyTerms(text, lex)

	if len(terms) == 0 {
		t.Fatal("expected key terms")
	}
	if terms[0].Text != "election" {
		t.Errorf("top term = %q, want election", terms[0].Text)
	}
	for _, term := range terms {
		if lex.StopWords[term.Text] {
			t.Errorf("stop word %q leaked into key terms", term.Text)
		}
		if len(term.Text) <= 2 {
			t.Errorf("short term %q leaked into key terms", term.Text)
		}
		if term.Value <= 0 {
			t.Errorf("term %q has non-positive weight %v", term.Text, term.Value)
		}
	}
}

func TestExtractKeyTermsOrderingAndLimit(t *testing.T) {
	lex := DefaultLexicons()

	var b strings.Builder
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliett", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
		"victor", "whiskey", "xray", "yankee", "zulu",
	}
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte(' ')
	}

	terms := ExtractKeyTerms(b.String(), lex)
	if len(terms) != maxKeyTerms {
		t.Fatalf("got %d terms, want the %d cap", len(terms), maxKeyTerms)
	}
	for i := 1; i < len(terms); i++ {
		if terms[i-1].Value < terms[i].Value {
			t.Fatalf("terms not sorted by weight at %d: %v", i, terms)
		}
		if terms[i-1].Value == terms[i].Value && terms[i-1].Text >= terms[i].Text {
			t.Fatalf("ties not sorted alphabetically at %d: %q before %q", i, terms[i-1].Text, terms[i].Text)
		}
	}
}

func TestExtractKeyTermsEmpty(t *testing.T) {
	lex := DefaultLexicons()
	if terms := ExtractKeyTerms("", lex); terms != nil {
		t.Errorf("empty text produced %v", terms)
	}
	if terms := ExtractKeyTerms("the and of to in", lex); terms != nil {
		t.Errorf("all stop words produced %v", terms)
	}
}
