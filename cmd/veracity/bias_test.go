// cmd/veracity/bias_test.go
package main

import "testing"

func TestAnalyzeBiasLevels(t *testing.T) {
	lex := DefaultLexicons()

	tests := []struct {
		name  string
		text  string
		level string
	}{
		{
			"right leaning",
			"The conservative coalition pushed tax cuts, border security and deregulation this session",
			"right",
		},
		{
			"left leaning",
			"Progressive lawmakers demanded universal healthcare, gun control and a higher minimum wage",
			"left",
		},
		{
			"no loaded terms",
			"The council approved the road maintenance schedule for the autumn",
			"center",
		},
		{
			"mixed terms balance out",
			"The liberal caucus and the conservative caucus both claimed victory",
			"center",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, level := AnalyzeBias(tt.text, lex)
			if level != tt.level {
				t.Errorf("level = %q (score %v), want %q", level, score, tt.level)
			}
			if score < -1 || score > 1 {
				t.Errorf("score %v out of [-1,1]", score)
			}
		})
	}
}

func TestAnalyzeBiasQuotedHalfWeight(t *testing.T) {
	lex := DefaultLexicons()

	unquoted := "Conservative leaders praised the liberal response"
	quoted := `Leaders praised what one called "the liberal response" and moved on as conservative lawmakers disagreed`

	uScore, _ := AnalyzeBias(unquoted, lex)
	qScore, _ := AnalyzeBias(quoted, lex)

	// Quoting the left-leaning term shifts the balance toward the unquoted
	// right-leaning term.
	if qScore <= uScore {
		t.Errorf("quoted score %v should exceed unquoted score %v", qScore, uScore)
	}
}

func TestAnalyzeBiasPhrases(t *testing.T) {
	lex := DefaultLexicons()

	score, level := AnalyzeBias("Supporters cited law and order and the second amendment at the rally", lex)
	if level != "right" {
		t.Errorf("level = %q (score %v), want right", level, score)
	}
}

func TestAnalyzeBiasEmpty(t *testing.T) {
	score, level := AnalyzeBias("", DefaultLexicons())
	if score != 0 || level != "center" {
		t.Errorf("empty text = (%v, %q), want (0, center)", score, level)
	}
}
