package scoring

import "fmt"

// Gap describes a capability gap in one dimension, rated for business impact
// and remediation effort on 1-5 scales.
type Gap struct {
	Dimension string   `json:"dimension"`
	Name      string   `json:"name"`
	Maturity  Maturity `json:"maturity"`
	Gaps      []string `json:"gaps,omitempty"`
	Impact    int      `json:"impact"` // 1-5, higher = more business impact
	Effort    int      `json:"effort"` // 1-5, higher = harder to close
}

// QuickWin is a high-impact, low-effort improvement opportunity.
type QuickWin struct {
	Dimension   string `json:"dimension"`
	Opportunity string `json:"opportunity"`
}

// GapAnalysis groups capability gaps by severity.
type GapAnalysis struct {
	Critical  []Gap      `json:"critical,omitempty"`  // Nascent dimensions
	Moderate  []Gap      `json:"moderate,omitempty"`  // Emerging dimensions
	QuickWins []QuickWin `json:"quick_wins,omitempty"`
}

// AnalyzeGaps derives a gap analysis from a score result. Only Nascent and
// Emerging dimensions produce gaps; quick wins are gaps with impact >= 4 and
// effort <= 2.
func AnalyzeGaps(result *ScoreResult) *GapAnalysis {
	ga := &GapAnalysis{}

	for _, ds := range result.Breakdown {
		if ds.Maturity > MaturityEmerging {
			continue
		}

		gap := Gap{
			Dimension: ds.Key,
			Name:      ds.Name,
			Maturity:  ds.Maturity,
			Gaps:      ds.Gaps,
			Impact:    gapImpact(ds.Key, ds.Maturity),
			Effort:    gapEffort(ds.Key),
		}

		if ds.Maturity == MaturityNascent {
			ga.Critical = append(ga.Critical, gap)
		} else {
			ga.Moderate = append(ga.Moderate, gap)
		}

		if gap.Impact >= 4 && gap.Effort <= 2 {
			ga.QuickWins = append(ga.QuickWins, QuickWin{
				Dimension:   ds.Key,
				Opportunity: fmt.Sprintf("Quick improvement in %s: high impact with minimal resources", ds.Name),
			})
		}
	}

	return ga
}

// baseImpact rates the standalone business impact of a weak dimension.
var baseImpact = map[string]int{
	"strategic_alignment":      5,
	"leadership_commitment":    5,
	"data_maturity":            4,
	"talent_capabilities":      4,
	"technical_infrastructure": 3,
	"organizational_culture":   3,
	"change_management":        2,
	"governance_ethics":        2,
}

// effortRequired rates how hard each dimension is to improve.
var effortRequired = map[string]int{
	"strategic_alignment":      2,
	"leadership_commitment":    2,
	"governance_ethics":        2,
	"change_management":        3,
	"organizational_culture":   4,
	"data_maturity":            4,
	"technical_infrastructure": 4,
	"talent_capabilities":      5,
}

func gapImpact(key string, m Maturity) int {
	impact, ok := baseImpact[key]
	if !ok {
		impact = 3
	}
	// Lower maturity amplifies impact.
	penalty := int(MaturityDeveloping) - int(m)
	if penalty < 0 {
		penalty = 0
	}
	impact += penalty
	if impact > 5 {
		impact = 5
	}
	return impact
}

func gapEffort(key string) int {
	if effort, ok := effortRequired[key]; ok {
		return effort
	}
	return 3
}
