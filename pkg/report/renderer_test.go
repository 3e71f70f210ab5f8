package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/readyscope/readyscope/pkg/report"
	"github.com/readyscope/readyscope/pkg/scoring"
)

func sampleResult() *scoring.ScoreResult {
	return &scoring.ScoreResult{
		AssessmentID: "a-1",
		Organization: "TechCorp",
		Industry:     "financial_services",
		Total:        55.8,
		Band:         "Limited Readiness",
		Maturity:     scoring.MaturityDeveloping,
		Breakdown: []scoring.DimensionScore{
			{
				Key: "data_maturity", Name: "Data maturity", Rating: 2,
				Normalized: 40, Weight: 0.15, Weighted: 6,
				Maturity: scoring.MaturityEmerging, Priority: scoring.PriorityHigh,
				Gaps: []string{"Siloed data with poor quality"},
			},
		},
		CriticalGaps:    []string{"Siloed data with poor quality"},
		Recommendations: []string{"Stand up a data governance board"},
		TimelineMonths:  23,
		AssessedAt:      time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestTerminalRendererNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := &report.TerminalRenderer{}
	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Limited Readiness") {
		t.Errorf("expected band label in output:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Error("expected no ANSI escapes with NO_COLOR set")
	}
}

func TestJSONRendererRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	r := &report.JSONRenderer{}
	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var decoded scoring.ScoreResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding rendered JSON: %v", err)
	}
	if decoded.Band != "Limited Readiness" || decoded.Maturity != scoring.MaturityDeveloping {
		t.Errorf("round trip lost fields: %+v", decoded)
	}
}

func TestMarkdownRendererSections(t *testing.T) {
	var buf bytes.Buffer
	r := &report.MarkdownRenderer{}
	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"### Dimensions", "### Critical gaps", "| Data maturity |"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in markdown output", want)
		}
	}
}
