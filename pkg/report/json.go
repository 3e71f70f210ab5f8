package report

import (
	"encoding/json"
	"io"

	"github.com/readyscope/readyscope/pkg/scoring"
)

// JSONRenderer marshals a ScoreResult to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *scoring.ScoreResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
