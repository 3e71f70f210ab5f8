package businesscase

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Input describes the organization and initiative a case is built for.
type Input struct {
	Organization string
	Initiative   string
	Industry     string
	Size         string // small, medium, large, enterprise
	Budget       float64
	Objectives   []string
	Challenges   []string
}

// Generator builds business cases from organization inputs.
type Generator struct {
	discountRate float64
}

// NewGenerator returns a Generator using the given NPV discount rate.
// A non-positive rate falls back to 10%.
func NewGenerator(discountRate float64) *Generator {
	if discountRate <= 0 {
		discountRate = 0.10
	}
	return &Generator{discountRate: discountRate}
}

// Generate builds a complete business case for the input.
func (g *Generator) Generate(in Input) (*Case, error) {
	if in.Organization == "" {
		return nil, fmt.Errorf("generating business case: organization name required")
	}
	if in.Budget <= 0 {
		return nil, fmt.Errorf("generating business case: investment budget must be positive, got %.2f", in.Budget)
	}

	investments := g.buildInvestments(in.Industry, in.Size, in.Budget)
	benefits := g.buildBenefits(in.Industry, in.Objectives, investments)
	risks := g.assessRisks(in.Industry, in.Challenges)
	projection := g.project(investments, benefits)

	c := &Case{
		Organization:   in.Organization,
		Initiative:     in.Initiative,
		Industry:       in.Industry,
		Projection:     projection,
		Investments:    investments,
		Benefits:       benefits,
		Risks:          risks,
		Scenarios:      defaultScenarios(),
		Timeline:       implementationTimeline(in.Size),
		SuccessMetrics: successMetrics(benefits, in.Objectives),
		Recommendation: recommendation(projection, risks),
		Confidence:     confidenceScore(investments, benefits, risks),
		CreatedAt:      time.Now().UTC(),
	}
	return c, nil
}

// allocation is one slice of the investment budget. Templates are ordered so
// generated cases are deterministic.
type allocation struct {
	category InvestmentType
	share    float64
}

var investmentTemplates = map[string][]allocation{
	"default": {
		{InvestInfrastructure, 0.30},
		{InvestTechnology, 0.25},
		{InvestTalent, 0.20},
		{InvestTraining, 0.15},
		{InvestConsulting, 0.10},
	},
	"financial_services": {
		{InvestTechnology, 0.35},
		{InvestInfrastructure, 0.25},
		{InvestTalent, 0.20},
		{InvestConsulting, 0.15},
		{InvestTraining, 0.05},
	},
	"manufacturing": {
		{InvestInfrastructure, 0.40},
		{InvestTechnology, 0.30},
		{InvestTalent, 0.15},
		{InvestTraining, 0.10},
		{InvestConsulting, 0.05},
	},
}

var investmentDescriptions = map[InvestmentType]string{
	InvestInfrastructure: "AI-ready infrastructure and cloud platforms",
	InvestTalent:         "AI talent acquisition and retention",
	InvestTechnology:     "AI software licenses and tools",
	InvestTraining:       "Employee training and upskilling programs",
	InvestConsulting:     "External consulting and implementation support",
}

func sizeMultiplier(size string) float64 {
	switch strings.ToLower(size) {
	case "small":
		return 0.6
	case "large":
		return 1.4
	case "enterprise":
		return 2.0
	default:
		return 1.0
	}
}

func (g *Generator) buildInvestments(industry, size string, budget float64) []Investment {
	template, ok := investmentTemplates[industry]
	if !ok {
		template = investmentTemplates["default"]
	}
	multiplier := sizeMultiplier(size)

	investments := make([]Investment, 0, len(template))
	for _, alloc := range template {
		amount := budget * alloc.share * multiplier
		investments = append(investments, Investment{
			Category:    alloc.category,
			Description: investmentDescriptions[alloc.category],
			Year1:       amount * 0.6, // front-loaded
			Year2:       amount * 0.3,
			Year3:       amount * 0.1,
			Ongoing:     amount * 0.05,
			Confidence:  0.85,
		})
	}
	return investments
}

// benefitBenchmark holds industry value multipliers applied against total
// investment when sizing benefits.
type benefitBenchmark struct {
	revenue      float64
	costCut      float64
	productivity float64
	customer     float64
}

var benefitBenchmarks = map[string]benefitBenchmark{
	"default":            {revenue: 0.15, costCut: 0.20, productivity: 0.25, customer: 0.10},
	"financial_services": {revenue: 0.12, costCut: 0.25, productivity: 0.30, customer: 0.15},
	"manufacturing":      {revenue: 0.18, costCut: 0.30, productivity: 0.35, customer: 0.08},
}

func (g *Generator) buildBenefits(industry string, objectives []string, investments []Investment) []Benefit {
	total := 0.0
	for _, inv := range investments {
		total += inv.Total()
	}

	bm, ok := benefitBenchmarks[industry]
	if !ok {
		bm = benefitBenchmarks["default"]
	}

	var benefits []Benefit

	if objectivesMention(objectives, "revenue", "growth") {
		benefits = append(benefits, Benefit{
			Category:    BenefitRevenueGrowth,
			Description: "AI-driven revenue growth through enhanced products and services",
			Year1:       total * bm.revenue * 0.3,
			Year2:       total * bm.revenue * 0.7,
			Year3:       total * bm.revenue * 1.0,
			Ongoing:     total * bm.revenue * 0.8,
			Confidence:  0.70,
			Realization: 0.75,
		})
	}

	if objectivesMention(objectives, "cost", "efficiency") {
		benefits = append(benefits, Benefit{
			Category:    BenefitCostReduction,
			Description: "Operational cost reduction through AI automation",
			Year1:       total * bm.costCut * 0.2,
			Year2:       total * bm.costCut * 0.5,
			Year3:       total * bm.costCut * 0.8,
			Ongoing:     total * bm.costCut * 0.9,
			Confidence:  0.80,
			Realization: 0.85,
		})
	}

	// Productivity gains apply to every initiative.
	benefits = append(benefits, Benefit{
		Category:    BenefitProductivity,
		Description: "Employee productivity enhancement through AI tools",
		Year1:       total * bm.productivity * 0.4,
		Year2:       total * bm.productivity * 0.8,
		Year3:       total * bm.productivity * 1.2,
		Ongoing:     total * bm.productivity * 1.0,
		Confidence:  0.75,
		Realization: 0.80,
	})

	if objectivesMention(objectives, "customer") {
		benefits = append(benefits, Benefit{
			Category:    BenefitCustomerExperience,
			Description: "Enhanced customer experience and satisfaction",
			Year1:       total * bm.customer * 0.3,
			Year2:       total * bm.customer * 0.6,
			Year3:       total * bm.customer * 0.9,
			Ongoing:     total * bm.customer * 0.8,
			Confidence:  0.65,
			Realization: 0.70,
		})
	}

	return benefits
}

func objectivesMention(objectives []string, keywords ...string) bool {
	for _, obj := range objectives {
		lower := strings.ToLower(obj)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

var commonRisks = []RiskFactor{
	{
		Risk:           "Project timeline delays",
		Impact:         RiskMedium,
		Probability:    0.4,
		Mitigation:     "Agile implementation with regular checkpoints",
		MitigationCost: 25000,
	},
	{
		Risk:           "Budget overruns",
		Impact:         RiskHigh,
		Probability:    0.3,
		Mitigation:     "Detailed cost tracking and contingency planning",
		MitigationCost: 15000,
	},
}

var industryRisks = map[string][]RiskFactor{
	"financial_services": {
		{
			Risk:           "Regulatory compliance issues",
			Impact:         RiskVeryHigh,
			Probability:    0.5,
			Mitigation:     "Early regulatory engagement and compliance review",
			MitigationCost: 75000,
		},
	},
}

const maxRisks = 10

func (g *Generator) assessRisks(industry string, challenges []string) []RiskFactor {
	risks := append([]RiskFactor{}, commonRisks...)
	risks = append(risks, industryRisks[industry]...)

	if objectivesMention(challenges, "data") {
		risks = append(risks, RiskFactor{
			Risk:           "Data quality issues impacting AI model performance",
			Impact:         RiskHigh,
			Probability:    0.6,
			Mitigation:     "Implement comprehensive data quality framework",
			MitigationCost: 50000,
		})
	}
	if objectivesMention(challenges, "skill", "talent") {
		risks = append(risks, RiskFactor{
			Risk:           "Insufficient AI talent and skills",
			Impact:         RiskHigh,
			Probability:    0.7,
			Mitigation:     "Aggressive hiring and training program",
			MitigationCost: 100000,
		})
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].Score() > risks[j].Score()
	})
	if len(risks) > maxRisks {
		risks = risks[:maxRisks]
	}
	return risks
}

func defaultScenarios() []Scenario {
	return []Scenario{
		{
			Name:        "Base Case",
			Probability: 0.60,
			Description: "Expected outcomes based on current planning assumptions",
		},
		{
			Name:               "Optimistic Case",
			Probability:        0.20,
			ROIAdjustment:      0.25,
			TimelineAdjustment: -3,
			Description:        "Accelerated adoption with higher than expected benefits",
		},
		{
			Name:               "Conservative Case",
			Probability:        0.15,
			ROIAdjustment:      -0.20,
			TimelineAdjustment: 6,
			Description:        "Slower adoption with implementation challenges",
		},
		{
			Name:               "Risk Materialization",
			Probability:        0.05,
			ROIAdjustment:      -0.40,
			TimelineAdjustment: 12,
			Description:        "Multiple high-impact risks materialize simultaneously",
		},
	}
}

func implementationTimeline(size string) []TimelinePhase {
	multiplier := 1.0
	switch strings.ToLower(size) {
	case "small":
		multiplier = 0.8
	case "large":
		multiplier = 1.2
	case "enterprise":
		multiplier = 1.5
	}

	base := []TimelinePhase{
		{Phase: "planning_and_setup", Months: 2},
		{Phase: "infrastructure_deployment", Months: 4},
		{Phase: "pilot_implementation", Months: 3},
		{Phase: "training_and_adoption", Months: 3},
		{Phase: "scaling_and_optimization", Months: 6},
		{Phase: "full_deployment", Months: 4},
	}
	for i := range base {
		base[i].Months = int(float64(base[i].Months) * multiplier)
	}
	return base
}

func successMetrics(benefits []Benefit, objectives []string) map[string]float64 {
	metrics := map[string]float64{}
	for _, b := range benefits {
		switch b.Category {
		case BenefitRevenueGrowth:
			metrics["revenue_growth_pct"] = 15.0
		case BenefitCostReduction:
			metrics["cost_reduction_pct"] = 20.0
		case BenefitProductivity:
			metrics["productivity_improvement_pct"] = 25.0
		case BenefitCustomerExperience:
			metrics["customer_satisfaction_score"] = 4.5
		}
	}

	if objectivesMention(objectives, "time") {
		metrics["process_time_reduction_pct"] = 30.0
	}
	if objectivesMention(objectives, "quality") {
		metrics["quality_improvement_pct"] = 20.0
	}

	metrics["employee_adoption_rate_pct"] = 85.0
	metrics["milestone_achievement_pct"] = 90.0
	metrics["roi_achievement_pct"] = 100.0
	return metrics
}

func recommendation(p Projection, risks []RiskFactor) string {
	var rec string
	switch {
	case p.ROIPercent > 30 && p.PaybackMonths <= 24:
		rec = "STRONGLY RECOMMEND APPROVAL"
	case p.ROIPercent > 15 && p.PaybackMonths <= 36:
		rec = "RECOMMEND APPROVAL"
	default:
		rec = "CONDITIONAL APPROVAL WITH RISK MITIGATION"
	}

	highRisks := 0
	for _, r := range risks {
		if r.Impact >= RiskHigh && r.Probability > 0.5 {
			highRisks++
		}
	}
	if highRisks > 0 {
		return fmt.Sprintf("%s. Key risks identified: %d high-impact risks require mitigation.", rec, highRisks)
	}
	return rec + "."
}

func confidenceScore(investments []Investment, benefits []Benefit, risks []RiskFactor) float64 {
	totalInv := 0.0
	weightedInv := 0.0
	for _, inv := range investments {
		totalInv += inv.Total()
		weightedInv += inv.Total() * inv.Confidence
	}
	invConfidence := 0.8
	if totalInv > 0 {
		invConfidence = weightedInv / totalInv
	}

	totalBen := 0.0
	weightedBen := 0.0
	for _, b := range benefits {
		totalBen += b.Total()
		weightedBen += b.Total() * b.Confidence * b.Realization
	}
	benConfidence := 0.7
	if totalBen > 0 {
		benConfidence = weightedBen / totalBen
	}

	highRisks := 0
	for _, r := range risks {
		if r.Impact >= RiskHigh && r.Probability > 0.5 {
			highRisks++
		}
	}
	riskAdjustment := 1.0 - float64(highRisks)*0.1
	if riskAdjustment < 0 {
		riskAdjustment = 0
	}

	confidence := invConfidence*0.3 + benConfidence*0.5 + riskAdjustment*0.2
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence
}
