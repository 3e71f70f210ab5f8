package scoring_test

import (
	"errors"
	"testing"

	"github.com/readyscope/readyscope/pkg/scoring"
)

func TestCategorizeBoundaries(t *testing.T) {
	bands := scoring.DefaultBands()

	cases := []struct {
		total float64
		want  string
	}{
		{100, "Transformation Ready"},
		{90, "Transformation Ready"}, // tie resolves to the higher band
		{89.9, "Mostly Ready"},
		{75, "Mostly Ready"},
		{68, "Conditionally Ready"},
		{60, "Conditionally Ready"},
		{45, "Limited Readiness"},
		{44.9, "Not Ready"},
		{0, "Not Ready"},
	}

	for _, tc := range cases {
		got, err := scoring.Categorize(tc.total, bands)
		if err != nil {
			t.Fatalf("Categorize(%g) error: %v", tc.total, err)
		}
		if got != tc.want {
			t.Errorf("Categorize(%g) = %q, want %q", tc.total, got, tc.want)
		}
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	bands := scoring.DefaultBands()
	first, err := scoring.Categorize(72.5, bands)
	if err != nil {
		t.Fatalf("Categorize() error: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := scoring.Categorize(72.5, bands)
		if err != nil {
			t.Fatalf("Categorize() error: %v", err)
		}
		if got != first {
			t.Fatalf("non-deterministic label: %q then %q", first, got)
		}
	}
}

func TestCategorizeNoMatchingBand(t *testing.T) {
	// No catch-all floor at 0.
	bands := []scoring.Band{
		{Min: 90, Label: "Transformation Ready"},
		{Min: 75, Label: "Mostly Ready"},
	}

	_, err := scoring.Categorize(50, bands)
	if err == nil {
		t.Fatal("expected error when no band matches")
	}
	var ve *scoring.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected *ValidationError, got %T", err)
	}
}

func TestCategorizeEmptyBands(t *testing.T) {
	if _, err := scoring.Categorize(50, nil); err == nil {
		t.Error("expected error for empty band set")
	}
}
