package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/readyscope/readyscope/pkg/scoring"
)

// TerminalRenderer renders a ScoreResult as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func bandColor(band string) string {
	if noColor() {
		return ""
	}
	switch band {
	case "Transformation Ready", "Mostly Ready":
		return colorGreen
	case "Conditionally Ready":
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, result *scoring.ScoreResult) error {
	bc := bandColor(result.Band)

	// Header
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Readyscope: %s — Score %.1f (%s)",
			colored(result.Band, bc), result.Total, result.Organization)))

	fmt.Fprintf(w, "Overall maturity: %s — estimated timeline %d months\n\n",
		result.Maturity, result.TimelineMonths)

	// Dimensions
	fmt.Fprintln(w, "Dimensions:")
	for _, ds := range result.Breakdown {
		marker := "●"
		mc := ""
		switch {
		case ds.Maturity >= scoring.MaturityAdvanced:
			mc = colorGreen
		case ds.Maturity == scoring.MaturityDeveloping:
			mc = colorYellow
		default:
			mc = colorRed
		}
		fmt.Fprintf(w, "  %s %s — %s (%.0f/100, weight %.2f)\n",
			colored(marker, mc), bold(ds.Name), ds.Maturity, ds.Normalized, ds.Weight)
		if len(ds.Gaps) > 0 {
			fmt.Fprintf(w, "      %s\n", dim(ds.Gaps[0]))
		}
	}
	fmt.Fprintln(w)

	// Strengths
	if len(result.TopStrengths) > 0 {
		fmt.Fprintln(w, "Top strengths:")
		for _, s := range result.TopStrengths {
			fmt.Fprintf(w, "  + %s\n", s)
		}
		fmt.Fprintln(w)
	}

	// Gaps
	if len(result.CriticalGaps) > 0 {
		fmt.Fprintln(w, "Critical gaps:")
		for _, g := range result.CriticalGaps {
			fmt.Fprintf(w, "  %s %s\n", colored("!", colorRed), g)
		}
		fmt.Fprintln(w)
	}

	// Recommendations
	if len(result.Recommendations) > 0 {
		fmt.Fprintln(w, "Recommendations:")
		for _, rec := range result.Recommendations {
			lines := wrapText(rec, 70)
			fmt.Fprintf(w, "  • %s\n", lines[0])
			for _, line := range lines[1:] {
				fmt.Fprintf(w, "    %s\n", dim(line))
			}
		}
		fmt.Fprintln(w)
	}

	// Benchmark comparison
	if len(result.Benchmark) > 0 {
		fmt.Fprintf(w, "Industry benchmark (%s):\n", result.Industry)
		for _, bd := range result.Benchmark {
			sign := "+"
			if bd.Delta < 0 {
				sign = ""
			}
			fmt.Fprintf(w, "  %s: %.1f vs %.1f avg (%s%.1f)\n",
				bd.Dimension, bd.Rating, bd.Average, sign, bd.Delta)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
