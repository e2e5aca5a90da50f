// cmd/veracity/quality_test.go
package main

import "testing"

func TestAnalyzeLanguage(t *testing.T) {
	lex := DefaultLexicons()

	scientific := "Researchers published findings from a peer-reviewed study with statistical analysis of the survey data"
	sensational := "Shocking bombshell exposed in explosive report, stunning meltdown leaves everyone furious"

	sci := AnalyzeLanguage(scientific, lex)
	sen := AnalyzeLanguage(sensational, lex)

	if sci.Score <= sen.Score {
		t.Errorf("scientific score %v should exceed sensational score %v", sci.Score, sen.Score)
	}
	if sci.ScientificPct == 0 {
		t.Error("scientific text should register scientific hits")
	}
	if sen.SensationalPct == 0 {
		t.Error("sensational text should register sensational hits")
	}
}

func TestAnalyzeLanguageEmpty(t *testing.T) {
	got := AnalyzeLanguage("", DefaultLexicons())
	if got.Score != 50 {
		t.Errorf("empty text score = %v, want 50", got.Score)
	}
}

func TestAnalyzeLanguageQuotedSensational(t *testing.T) {
	lex := DefaultLexicons()

	direct := "The outrageous and shocking decision stunned the town council members yesterday"
	reported := `The mayor called it "outrageous and shocking" before the town council members yesterday`

	d := AnalyzeLanguage(direct, lex)
	r := AnalyzeLanguage(reported, lex)

	if r.SensationalPct >= d.SensationalPct {
		t.Errorf("quoted sensational pct %v should be below direct %v", r.SensationalPct, d.SensationalPct)
	}
}

func TestAnalyzeLanguageFakePhrases(t *testing.T) {
	got := AnalyzeLanguage("What they don't want you to know about the miracle cure big pharma buried", DefaultLexicons())
	if got.FakePhrasePct == 0 {
		t.Error("fake phrase percentage should be nonzero")
	}
}

func TestAnalyzeStructure(t *testing.T) {
	lex := DefaultLexicons()

	if got := AnalyzeStructure("", lex); got != 50 {
		t.Errorf("empty text = %v, want 50", got)
	}

	plain := "something happened somewhere"
	rich := "According to officials, 45% of residents voted in the 2026 election.\n\n" +
		`The mayor said "turnout exceeded expectations" on Tuesday.` + "\n\n" +
		"Analysts reported that participation rose 12% from last year.\n\n" +
		"The commission confirmed the results in January."

	p := AnalyzeStructure(plain, lex)
	r := AnalyzeStructure(rich, lex)
	if r <= p {
		t.Errorf("structured article %v should outscore fragment %v", r, p)
	}
	if r < 0 || r > 100 {
		t.Errorf("score out of range: %v", r)
	}
}

func TestAnalyzeStructureParagraphThreshold(t *testing.T) {
	lex := DefaultLexicons()

	// Three paragraphs carry two breaks and miss the bonus; four paragraphs
	// carry three breaks and earn it.
	three := "first block\n\nsecond block\n\nthird block"
	four := three + "\n\nfourth block"

	if got := AnalyzeStructure(three, lex); got != structuralBase {
		t.Errorf("three paragraphs = %v, want the bare base %v", got, structuralBase)
	}
	if got := AnalyzeStructure(four, lex); got != structuralBase+paragraphBonus {
		t.Errorf("four paragraphs = %v, want base plus the paragraph bonus", got)
	}
}

func TestAnalyzeCoherence(t *testing.T) {
	if got := AnalyzeCoherence(""); got != 50 {
		t.Errorf("empty text = %v, want 50", got)
	}

	prose := "The council met on Tuesday evening to review the proposed budget for next year. " +
		"Several members raised concerns about rising maintenance costs across the district. " +
		"After two hours of debate, the measure passed by a narrow margin."
	choppy := "Wow. Bad. Sad. No. Wrong. Fake. Sad. Bad. No. Wrong."

	p := AnalyzeCoherence(prose)
	c := AnalyzeCoherence(choppy)
	if p <= c {
		t.Errorf("prose coherence %v should exceed choppy coherence %v", p, c)
	}
	for _, v := range []float64{p, c} {
		if v < 0 || v > 100 {
			t.Errorf("coherence %v out of range", v)
		}
	}
}
