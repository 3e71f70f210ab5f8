// Package businesscase generates AI investment business cases with
// financial projections, risk assessment, and scenario analysis.
package businesscase

import "time"

// InvestmentType classifies where transformation budget is spent.
type InvestmentType string

const (
	InvestInfrastructure InvestmentType = "infrastructure"
	InvestTalent         InvestmentType = "talent"
	InvestTechnology     InvestmentType = "technology"
	InvestTraining       InvestmentType = "training"
	InvestConsulting     InvestmentType = "consulting"
)

// BenefitCategory classifies the source of projected value.
type BenefitCategory string

const (
	BenefitRevenueGrowth      BenefitCategory = "revenue_growth"
	BenefitCostReduction      BenefitCategory = "cost_reduction"
	BenefitProductivity       BenefitCategory = "productivity_improvement"
	BenefitCustomerExperience BenefitCategory = "customer_experience"
)

// RiskLevel rates risk impact from 1 (low) to 4 (very high).
type RiskLevel int

const (
	RiskLow RiskLevel = iota + 1
	RiskMedium
	RiskHigh
	RiskVeryHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskVeryHigh:
		return "very_high"
	default:
		return "unknown"
	}
}

// Investment is one budget line spread over three years plus an ongoing
// annual run cost.
type Investment struct {
	Category    InvestmentType `json:"category"`
	Description string         `json:"description"`
	Year1       float64        `json:"year_1_cost"`
	Year2       float64        `json:"year_2_cost"`
	Year3       float64        `json:"year_3_cost"`
	Ongoing     float64        `json:"ongoing_annual_cost"`
	Confidence  float64        `json:"confidence_level"` // 0-1
}

// Total returns the three-year cost excluding ongoing run cost.
func (i Investment) Total() float64 {
	return i.Year1 + i.Year2 + i.Year3
}

// Benefit is one projected value stream, discounted by confidence and
// realization probability when projected.
type Benefit struct {
	Category    BenefitCategory `json:"category"`
	Description string          `json:"description"`
	Year1       float64         `json:"year_1_value"`
	Year2       float64         `json:"year_2_value"`
	Year3       float64         `json:"year_3_value"`
	Ongoing     float64         `json:"ongoing_annual_value"`
	Confidence  float64         `json:"confidence_level"`        // 0-1
	Realization float64         `json:"realization_probability"` // 0-1
}

// Total returns the three-year value excluding ongoing value.
func (b Benefit) Total() float64 {
	return b.Year1 + b.Year2 + b.Year3
}

// RiskFactor is one identified transformation risk.
type RiskFactor struct {
	Risk           string    `json:"risk"`
	Impact         RiskLevel `json:"impact"`
	Probability    float64   `json:"probability"` // 0-1
	Mitigation     string    `json:"mitigation"`
	MitigationCost float64   `json:"mitigation_cost"`
}

// Score is impact weighted by probability, used for ranking.
func (r RiskFactor) Score() float64 {
	return float64(r.Impact) * r.Probability
}

// Scenario is one outcome branch in the scenario analysis.
type Scenario struct {
	Name               string  `json:"name"`
	Probability        float64 `json:"probability"`
	ROIAdjustment      float64 `json:"roi_adjustment"`
	TimelineAdjustment int     `json:"timeline_adjustment_months"`
	Description        string  `json:"description"`
}

// Projection holds the five-year financial picture of a case.
type Projection struct {
	TotalInvestment float64   `json:"total_investment"`
	TotalBenefits   float64   `json:"total_benefits"`
	NPV             float64   `json:"net_present_value"`
	ROIPercent      float64   `json:"roi_percentage"`
	PaybackMonths   int       `json:"payback_period_months"`
	IRR             float64   `json:"irr"`
	YearlyCashflow  []float64 `json:"yearly_cashflow"`
}

// Case is a complete business case ready for rendering or storage.
type Case struct {
	Organization   string             `json:"organization"`
	Initiative     string             `json:"initiative"`
	Industry       string             `json:"industry"`
	Projection     Projection         `json:"projection"`
	Investments    []Investment       `json:"investments"`
	Benefits       []Benefit          `json:"benefits"`
	Risks          []RiskFactor       `json:"risks"`
	Scenarios      []Scenario         `json:"scenarios"`
	Timeline       []TimelinePhase    `json:"timeline"`
	SuccessMetrics map[string]float64 `json:"success_metrics"`
	Recommendation string             `json:"recommendation"`
	Confidence     float64            `json:"confidence_score"`
	CreatedAt      time.Time          `json:"created_at"`
}

// TimelinePhase is one implementation phase with its duration.
type TimelinePhase struct {
	Phase  string `json:"phase"`
	Months int    `json:"months"`
}

// TotalTimelineMonths sums the implementation phases.
func (c *Case) TotalTimelineMonths() int {
	total := 0
	for _, p := range c.Timeline {
		total += p.Months
	}
	return total
}
