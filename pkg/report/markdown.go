package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/readyscope/readyscope/pkg/scoring"
)

// MarkdownRenderer renders a ScoreResult as a markdown briefing suitable for
// sharing in documents or chat.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, result *scoring.ScoreResult) error {
	_, err := io.WriteString(w, BuildMarkdownSummary(result))
	return err
}

// BuildMarkdownSummary creates the markdown body for a score result.
func BuildMarkdownSummary(result *scoring.ScoreResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s: %s — Score %.1f\n\n",
		result.Organization, result.Band, result.Total))
	sb.WriteString(fmt.Sprintf("Overall maturity **%s**, estimated transformation timeline **%d months**.\n\n",
		result.Maturity, result.TimelineMonths))

	// Dimension table
	sb.WriteString("### Dimensions\n\n")
	sb.WriteString("| Dimension | Score | Weight | Maturity | Priority |\n")
	sb.WriteString("|-----------|-------|--------|----------|----------|\n")
	for _, ds := range result.Breakdown {
		sb.WriteString(fmt.Sprintf("| %s | %.0f | %.2f | %s | %s |\n",
			ds.Name, ds.Normalized, ds.Weight, ds.Maturity, ds.Priority))
	}
	sb.WriteString("\n")

	if len(result.TopStrengths) > 0 {
		sb.WriteString("### Strengths\n\n")
		for _, s := range result.TopStrengths {
			sb.WriteString(fmt.Sprintf("- %s\n", s))
		}
		sb.WriteString("\n")
	}

	if len(result.CriticalGaps) > 0 {
		sb.WriteString("### Critical gaps\n\n")
		for _, g := range result.CriticalGaps {
			sb.WriteString(fmt.Sprintf("- :red_circle: %s\n", g))
		}
		sb.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("### Recommendations\n\n")
		max := 5
		if len(result.Recommendations) < max {
			max = len(result.Recommendations)
		}
		for i := 0; i < max; i++ {
			sb.WriteString(fmt.Sprintf("- **%s**\n", result.Recommendations[i]))
		}
		sb.WriteString("\n")
	}

	if len(result.Benchmark) > 0 {
		sb.WriteString(fmt.Sprintf("### Benchmark vs %s\n\n", result.Industry))
		sb.WriteString("| Dimension | Rating | Industry avg | Delta |\n")
		sb.WriteString("|-----------|--------|--------------|-------|\n")
		for _, bd := range result.Benchmark {
			sb.WriteString(fmt.Sprintf("| %s | %.1f | %.1f | %+.1f |\n",
				bd.Dimension, bd.Rating, bd.Average, bd.Delta))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
