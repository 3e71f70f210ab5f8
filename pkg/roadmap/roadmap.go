// Package roadmap builds phased transformation roadmaps from readiness
// scores and gap analysis.
package roadmap

import (
	"fmt"

	"github.com/readyscope/readyscope/pkg/scoring"
)

// Phase is a single stage of the transformation roadmap.
type Phase struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	DurationWeeks int      `json:"duration_weeks"`
	Activities    []string `json:"activities"`
	Focus         []string `json:"focus,omitempty"` // dimensions this phase concentrates on
}

// Horizon groups actions by when they should start.
type Horizon struct {
	Name  string   `json:"name"` // immediate, short, medium
	Items []string `json:"items"`
}

// Roadmap is the full phased plan for an organization.
type Roadmap struct {
	Organization string    `json:"organization"`
	Band         string    `json:"band"`
	TotalWeeks   int       `json:"total_weeks"`
	Phases       []Phase   `json:"phases"`
	Horizons     []Horizon `json:"horizons"`
}

// Base phase durations in weeks. Foundation stretches when critical gaps
// must be closed before pilots can start.
const (
	foundationWeeks = 4
	pilotWeeks      = 8
	scalingWeeks    = 10
	maturityWeeks   = 6

	maxFoundationExtension = 4
)

// Build assembles a roadmap from a score result and its gap analysis.
func Build(result *scoring.ScoreResult, gaps *scoring.GapAnalysis) *Roadmap {
	foundation := foundationWeeks + len(gaps.Critical)
	if foundation > foundationWeeks+maxFoundationExtension {
		foundation = foundationWeeks + maxFoundationExtension
	}

	phases := []Phase{
		{
			Key:           "foundation",
			Name:          "Foundation",
			DurationWeeks: foundation,
			Activities: []string{
				"Stakeholder alignment and buy-in",
				"Readiness assessment completion",
				"Business case development and approval",
				"Governance structure establishment",
				"Initial team formation",
			},
			Focus: gapDimensions(gaps.Critical),
		},
		{
			Key:           "pilots",
			Name:          "Pilots",
			DurationWeeks: pilotWeeks,
			Activities: []string{
				"Quick wins identification and implementation",
				"Pilot project selection and execution",
				"Initial training program deployment",
				"Change management activation",
				"Success metrics establishment",
			},
			Focus: quickWinDimensions(result, gaps.QuickWins),
		},
		{
			Key:           "scaling",
			Name:          "Scaling",
			DurationWeeks: scalingWeeks,
			Activities: []string{
				"Enterprise-wide rollout planning",
				"Cross-functional integration",
				"Advanced training deployment",
				"Performance optimization",
				"Culture transformation acceleration",
			},
			Focus: gapDimensions(gaps.Moderate),
		},
		{
			Key:           "maturity",
			Name:          "Maturity",
			DurationWeeks: maturityWeeks,
			Activities: []string{
				"Continuous improvement establishment",
				"Innovation capability development",
				"Leadership development completion",
				"Full organizational adoption",
				"Competitive advantage realization",
			},
		},
	}

	total := 0
	for _, p := range phases {
		total += p.DurationWeeks
	}

	return &Roadmap{
		Organization: result.Organization,
		Band:         result.Band,
		TotalWeeks:   total,
		Phases:       phases,
		Horizons:     buildHorizons(result, gaps),
	}
}

func buildHorizons(result *scoring.ScoreResult, gaps *scoring.GapAnalysis) []Horizon {
	immediate := make([]string, 0, len(gaps.QuickWins))
	for _, qw := range gaps.QuickWins {
		immediate = append(immediate, qw.Opportunity)
	}

	short := make([]string, 0, len(gaps.Critical))
	for _, g := range gaps.Critical {
		short = append(short, fmt.Sprintf("Close critical gap in %s", g.Name))
	}

	medium := make([]string, 0, len(gaps.Moderate))
	for _, g := range gaps.Moderate {
		medium = append(medium, fmt.Sprintf("Raise %s maturity", g.Name))
	}
	for _, rec := range result.Recommendations {
		if len(medium) >= 6 {
			break
		}
		medium = append(medium, rec)
	}

	return []Horizon{
		{Name: "immediate", Items: immediate},
		{Name: "short", Items: short},
		{Name: "medium", Items: medium},
	}
}

func gapDimensions(gaps []scoring.Gap) []string {
	names := make([]string, 0, len(gaps))
	for _, g := range gaps {
		names = append(names, g.Name)
	}
	return names
}

func quickWinDimensions(result *scoring.ScoreResult, wins []scoring.QuickWin) []string {
	byKey := make(map[string]string, len(result.Breakdown))
	for _, ds := range result.Breakdown {
		byKey[ds.Key] = ds.Name
	}

	names := make([]string, 0, len(wins))
	for _, w := range wins {
		if name, ok := byKey[w.Dimension]; ok {
			names = append(names, name)
		} else {
			names = append(names, w.Dimension)
		}
	}
	return names
}
