package report

import (
	"io"

	"github.com/readyscope/readyscope/pkg/scoring"
)

// Renderer produces formatted output from a ScoreResult.
type Renderer interface {
	// Render writes the formatted score result to the writer.
	Render(w io.Writer, result *scoring.ScoreResult) error
}

// ForFormat returns the renderer for a CLI output format name.
// Unknown formats fall back to the terminal renderer.
func ForFormat(format string) Renderer {
	switch format {
	case "json":
		return &JSONRenderer{}
	case "markdown":
		return &MarkdownRenderer{}
	default:
		return &TerminalRenderer{}
	}
}
