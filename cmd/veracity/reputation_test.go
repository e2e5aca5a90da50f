// cmd/veracity/reputation_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestResolver(t *testing.T) *SourceResolver {
	t.Helper()
	resolver, err := NewSourceResolver("")
	if err != nil {
		t.Fatalf("NewSourceResolver: %v", err)
	}
	return resolver
}

func TestResolveKnownDomain(t *testing.T) {
	resolver := newTestResolver(t)

	record := resolver.Resolve("reuters.com")
	if record.Tier != TierTable {
		t.Fatalf("expected table tier, got %q", record.Tier)
	}
	if record.Reliability != 95 {
		t.Errorf("reliability = %v, want 95", record.Reliability)
	}
	if record.Bias != -2 {
		t.Errorf("bias = %v, want -2", record.Bias)
	}
	if record.FactChecking != 5 {
		t.Errorf("factChecking = %d, want 5", record.FactChecking)
	}
}

func TestResolveTiers(t *testing.T) {
	resolver := newTestResolver(t)

	tests := []struct {
		name        string
		domain      string
		tier        string
		reliability float64
	}{
		{"academic", "random.edu", TierAcademic, 85},
		{"government", "cityhall.gov", TierGovernment, 80},
		{"suspicious tld beats news marker", "totally-real-news.xyz", TierSuspicious, 30},
		{"suspicious info", "freedom-truth.info", TierSuspicious, 30},
		{"news-looking domain", "springfield-herald.com", TierMainstream, 60},
		{"gazette marker", "smalltowngazette.com", TierMainstream, 60},
		{"unlisted domain", "example-blog.com", TierDefault, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := resolver.Resolve(tt.domain)
			if record.Tier != tt.tier {
				t.Errorf("tier = %q, want %q", record.Tier, tt.tier)
			}
			if record.Reliability != tt.reliability {
				t.Errorf("reliability = %v, want %v", record.Reliability, tt.reliability)
			}
			if record.Domain != tt.domain {
				t.Errorf("domain = %q, want %q", record.Domain, tt.domain)
			}
			if len(record.KnownFor) == 0 {
				t.Error("knownFor is empty")
			}
		})
	}
}

func TestResolveEmptyDomain(t *testing.T) {
	resolver := newTestResolver(t)

	record := resolver.Resolve("")
	if record.Tier != TierUnknown {
		t.Fatalf("tier = %q, want %q", record.Tier, TierUnknown)
	}
	if record.Reliability != 50 {
		t.Errorf("reliability = %v, want 50", record.Reliability)
	}
	if len(record.KnownFor) != 1 || record.KnownFor[0] != "Unknown Source" {
		t.Errorf("knownFor = %v, want [Unknown Source]", record.KnownFor)
	}
}

func TestResolveTableBeatsTLDHeuristic(t *testing.T) {
	// dailymail.co.uk must resolve from the table even though no TLD rule
	// would downgrade it.
	resolver := newTestResolver(t)

	record := resolver.Resolve("dailymail.co.uk")
	if record.Tier != TierTable {
		t.Fatalf("tier = %q, want %q", record.Tier, TierTable)
	}
	if record.Reliability != 42 {
		t.Errorf("reliability = %v, want 42", record.Reliability)
	}
}

func TestReputationOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reputation.yml")
	overrides := `
localnews.example:
  reliability: 77
  bias: 3
  factChecking: 4
  editorialStandards: 4
  transparency: 4
reuters.com:
  reliability: 60
  bias: 0
  factChecking: 3
  editorialStandards: 3
  transparency: 3
`
	if err := os.WriteFile(path, []byte(overrides), 0644); err != nil {
		t.Fatal(err)
	}

	resolver, err := NewSourceResolver(path)
	if err != nil {
		t.Fatalf("NewSourceResolver: %v", err)
	}

	if got := resolver.Resolve("localnews.example").Reliability; got != 77 {
		t.Errorf("new entry reliability = %v, want 77", got)
	}
	if got := resolver.Resolve("reuters.com").Reliability; got != 60 {
		t.Errorf("override reliability = %v, want 60", got)
	}
}

func TestKnownForTags(t *testing.T) {
	tests := []struct {
		name string
		rep  SourceReputation
		want string
	}{
		{"high reliability", SourceReputation{Reliability: 95, Bias: 0}, "High Factual Reporting"},
		{"right leaning", SourceReputation{Reliability: 60, Bias: 28, FactChecking: 1}, "Right-Leaning Coverage"},
		{"left leaning", SourceReputation{Reliability: 60, Bias: -28, FactChecking: 1}, "Left-Leaning Coverage"},
		{"balanced", SourceReputation{Reliability: 60, Bias: 2, FactChecking: 1}, "Balanced Reporting"},
		{"no signals", SourceReputation{Reliability: 40, Bias: 12, FactChecking: 1}, "General News Coverage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := knownForTags(tt.rep)
			found := false
			for _, tag := range tags {
				if tag == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("tags %v do not include %q", tags, tt.want)
			}
		})
	}
}
