package scoring_test

import (
	"testing"

	"github.com/readyscope/readyscope/pkg/assessment"
	"github.com/readyscope/readyscope/pkg/scoring"
)

func scoreFixture(t *testing.T, overrides map[string]int) *scoring.ScoreResult {
	t.Helper()
	a := loadFixture(t)
	for i, r := range a.Responses {
		if rating, ok := overrides[r.Dimension]; ok {
			a.Responses[i].Rating = rating
		}
	}
	result, err := scoring.NewEngine().Score(a)
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}
	return result
}

func TestAnalyzeGapsSeverityBuckets(t *testing.T) {
	result := scoreFixture(t, map[string]int{"data_maturity": 1})
	ga := scoring.AnalyzeGaps(result)

	foundCritical := false
	for _, g := range ga.Critical {
		if g.Dimension == "data_maturity" {
			foundCritical = true
			if g.Maturity != scoring.MaturityNascent {
				t.Errorf("expected Nascent maturity, got %s", g.Maturity)
			}
		}
	}
	if !foundCritical {
		t.Error("expected data_maturity in critical gaps")
	}

	// talent_capabilities and governance_ethics are rated 2 in the fixture.
	if len(ga.Moderate) < 2 {
		t.Errorf("expected at least 2 moderate gaps, got %d", len(ga.Moderate))
	}
	for _, g := range ga.Moderate {
		if g.Maturity != scoring.MaturityEmerging {
			t.Errorf("moderate gap %s has maturity %s, expected Emerging", g.Dimension, g.Maturity)
		}
	}
}

func TestAnalyzeGapsQuickWins(t *testing.T) {
	// Leadership commitment at Nascent: impact 5, effort 2 — a quick win.
	result := scoreFixture(t, map[string]int{"leadership_commitment": 1})
	ga := scoring.AnalyzeGaps(result)

	found := false
	for _, qw := range ga.QuickWins {
		if qw.Dimension == "leadership_commitment" {
			found = true
		}
	}
	if !found {
		t.Error("expected leadership_commitment quick win")
	}
}

func TestAnalyzeGapsHealthyOrg(t *testing.T) {
	overrides := make(map[string]int)
	for _, d := range assessment.Catalog() {
		overrides[d.Key] = 4
	}
	result := scoreFixture(t, overrides)
	ga := scoring.AnalyzeGaps(result)

	if len(ga.Critical) != 0 || len(ga.Moderate) != 0 {
		t.Errorf("expected no gaps for a uniformly Advanced org, got %d critical / %d moderate",
			len(ga.Critical), len(ga.Moderate))
	}
}
