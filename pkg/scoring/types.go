// Package scoring implements the Readyscope readiness scoring engine.
// It evaluates assessment responses and produces weighted, explainable scores.
package scoring

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/readyscope/readyscope/pkg/assessment"
)

// ValidationError reports malformed scoring input: empty input sets,
// out-of-range scores, or weights that do not sum to 1.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Maturity is a five-level organizational maturity rating.
type Maturity int

const (
	MaturityNascent    Maturity = 1 // initial awareness, ad-hoc activities
	MaturityEmerging   Maturity = 2 // some structured approaches, limited scale
	MaturityDeveloping Maturity = 3 // systematic approach, moderate scale
	MaturityAdvanced   Maturity = 4 // mature processes, enterprise scale
	MaturityOptimizing Maturity = 5 // continuous improvement, industry leading
)

var maturityNames = map[Maturity]string{
	MaturityNascent:    "Nascent",
	MaturityEmerging:   "Emerging",
	MaturityDeveloping: "Developing",
	MaturityAdvanced:   "Advanced",
	MaturityOptimizing: "Optimizing",
}

func (m Maturity) String() string {
	if name, ok := maturityNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Maturity(%d)", int(m))
}

// MarshalJSON renders the maturity as its name.
func (m Maturity) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a name or a numeric level.
func (m *Maturity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		for level, name := range maturityNames {
			if name == s {
				*m = level
				return nil
			}
		}
		return fmt.Errorf("unknown maturity %q", s)
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = Maturity(n)
	return nil
}

// MaturityFromScore maps a normalized 0-100 score to a maturity level.
func MaturityFromScore(normalized float64) Maturity {
	switch {
	case normalized <= 20:
		return MaturityNascent
	case normalized <= 40:
		return MaturityEmerging
	case normalized <= 60:
		return MaturityDeveloping
	case normalized <= 80:
		return MaturityAdvanced
	default:
		return MaturityOptimizing
	}
}

// Priority indicates how urgently a dimension needs improvement work.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DimensionScore is the scored output for a single readiness dimension.
type DimensionScore struct {
	Key             string   `json:"key"`        // machine key: "data_maturity"
	Name            string   `json:"name"`       // human name: "Data maturity"
	Rating          int      `json:"rating"`     // raw 1-5 assessor rating
	Normalized      float64  `json:"normalized"` // 0-100
	Weight          float64  `json:"weight"`
	Weighted        float64  `json:"weighted"` // contribution to the total
	Maturity        Maturity `json:"maturity"`
	Priority        Priority `json:"priority"`
	Strengths       []string `json:"strengths,omitempty"`
	Gaps            []string `json:"gaps,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// ScoreResult is the complete output of scoring an assessment.
// Immutable once computed.
type ScoreResult struct {
	AssessmentID    string                      `json:"assessment_id"`
	Organization    string                      `json:"organization"`
	Industry        string                      `json:"industry,omitempty"`
	Total           float64                     `json:"total"` // weighted 0-100
	Band            string                      `json:"band"`  // e.g. "Conditionally Ready"
	Maturity        Maturity                    `json:"maturity"`
	Breakdown       []DimensionScore            `json:"breakdown"`
	TopStrengths    []string                    `json:"top_strengths,omitempty"`
	CriticalGaps    []string                    `json:"critical_gaps,omitempty"`
	Recommendations []string                    `json:"recommendations,omitempty"`
	Benchmark       []assessment.BenchmarkDelta `json:"benchmark,omitempty"`
	TimelineMonths  int                         `json:"timeline_months"`
	AssessedAt      time.Time                   `json:"assessed_at"`
}
