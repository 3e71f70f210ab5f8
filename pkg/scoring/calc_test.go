package scoring_test

import (
	"errors"
	"math"
	"testing"

	"github.com/readyscope/readyscope/pkg/scoring"
)

func TestWeightedTotalExampleScenario(t *testing.T) {
	pairs := []scoring.WeightedScore{
		{Name: "strategic_alignment", Score: 85, Weight: 0.30},
		{Name: "data_maturity", Score: 70, Weight: 0.25},
		{Name: "talent_capabilities", Score: 60, Weight: 0.25},
		{Name: "change_management", Score: 50, Weight: 0.20},
	}

	total, err := scoring.WeightedTotal(pairs)
	if err != nil {
		t.Fatalf("WeightedTotal() error: %v", err)
	}
	if math.Abs(total-68.0) > 1e-9 {
		t.Errorf("expected total 68.0, got %g", total)
	}

	label, err := scoring.Categorize(total, scoring.DefaultBands())
	if err != nil {
		t.Fatalf("Categorize() error: %v", err)
	}
	if label != "Conditionally Ready" {
		t.Errorf("expected Conditionally Ready, got %q", label)
	}
}

func TestWeightedTotalOrderInvariant(t *testing.T) {
	forward := []scoring.WeightedScore{
		{Score: 85, Weight: 0.30},
		{Score: 70, Weight: 0.25},
		{Score: 60, Weight: 0.25},
		{Score: 50, Weight: 0.20},
	}
	reversed := make([]scoring.WeightedScore, len(forward))
	for i, ws := range forward {
		reversed[len(forward)-1-i] = ws
	}

	a, err := scoring.WeightedTotal(forward)
	if err != nil {
		t.Fatalf("WeightedTotal(forward) error: %v", err)
	}
	b, err := scoring.WeightedTotal(reversed)
	if err != nil {
		t.Fatalf("WeightedTotal(reversed) error: %v", err)
	}
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("order changed the total: %g vs %g", a, b)
	}
}

func TestWeightedTotalBoundedByInputs(t *testing.T) {
	cases := []struct {
		name  string
		pairs []scoring.WeightedScore
	}{
		{
			name: "even weights",
			pairs: []scoring.WeightedScore{
				{Score: 20, Weight: 0.5},
				{Score: 90, Weight: 0.5},
			},
		},
		{
			name: "skewed weights",
			pairs: []scoring.WeightedScore{
				{Score: 10, Weight: 0.9},
				{Score: 100, Weight: 0.1},
			},
		},
		{
			name: "single dimension",
			pairs: []scoring.WeightedScore{
				{Score: 42, Weight: 1.0},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total, err := scoring.WeightedTotal(tc.pairs)
			if err != nil {
				t.Fatalf("WeightedTotal() error: %v", err)
			}
			min, max := tc.pairs[0].Score, tc.pairs[0].Score
			for _, ws := range tc.pairs {
				if ws.Score < min {
					min = ws.Score
				}
				if ws.Score > max {
					max = ws.Score
				}
			}
			if total < min-1e-9 || total > max+1e-9 {
				t.Errorf("total %g outside input range [%g, %g]", total, min, max)
			}
		})
	}
}

func TestWeightedTotalValidation(t *testing.T) {
	cases := []struct {
		name  string
		pairs []scoring.WeightedScore
	}{
		{name: "empty", pairs: nil},
		{
			name:  "score above range",
			pairs: []scoring.WeightedScore{{Score: 101, Weight: 1.0}},
		},
		{
			name:  "score below range",
			pairs: []scoring.WeightedScore{{Score: -1, Weight: 1.0}},
		},
		{
			name:  "negative weight",
			pairs: []scoring.WeightedScore{{Score: 50, Weight: 1.5}, {Score: 50, Weight: -0.5}},
		},
		{
			name:  "weights under 1",
			pairs: []scoring.WeightedScore{{Score: 50, Weight: 0.5}},
		},
		{
			name:  "weights over 1",
			pairs: []scoring.WeightedScore{{Score: 50, Weight: 0.6}, {Score: 50, Weight: 0.6}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scoring.WeightedTotal(tc.pairs)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var ve *scoring.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestWeightedTotalToleratesFloatDrift(t *testing.T) {
	// Eight weights that sum to 0.999 must pass the tolerance check.
	pairs := make([]scoring.WeightedScore, 8)
	for i := range pairs {
		pairs[i] = scoring.WeightedScore{Score: 60, Weight: 0.999 / 8}
	}
	if _, err := scoring.WeightedTotal(pairs); err != nil {
		t.Errorf("expected tolerance to absorb drift, got %v", err)
	}
}
