package businesscase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readyscope/readyscope/pkg/businesscase"
)

func sampleInput() businesscase.Input {
	return businesscase.Input{
		Organization: "TechCorp Industries",
		Initiative:   "Enterprise AI Transformation",
		Industry:     "manufacturing",
		Size:         "large",
		Budget:       2_000_000,
		Objectives: []string{
			"Increase operational efficiency by 25%",
			"Reduce production costs by 15%",
			"Improve customer satisfaction",
			"Accelerate product innovation",
		},
		Challenges: []string{
			"Legacy system integration",
			"Limited data science talent",
			"Inconsistent data quality",
		},
	}
}

func TestGenerate(t *testing.T) {
	g := businesscase.NewGenerator(0.10)
	c, err := g.Generate(sampleInput())
	require.NoError(t, err)

	assert.Equal(t, "TechCorp Industries", c.Organization)
	assert.Len(t, c.Investments, 5)
	assert.Len(t, c.Scenarios, 4)
	assert.Len(t, c.Timeline, 6)
	assert.NotEmpty(t, c.Recommendation)
	assert.Greater(t, c.Confidence, 0.0)
	assert.LessOrEqual(t, c.Confidence, 1.0)

	// large manufacturing org: 2M budget * 1.4 size multiplier over 3 years
	assert.InDelta(t, 2_800_000, sumInvestments(c.Investments), 1.0)

	// objectives mention cost, efficiency, and customer but not revenue
	categories := map[businesscase.BenefitCategory]bool{}
	for _, b := range c.Benefits {
		categories[b.Category] = true
	}
	assert.True(t, categories[businesscase.BenefitCostReduction])
	assert.True(t, categories[businesscase.BenefitProductivity])
	assert.True(t, categories[businesscase.BenefitCustomerExperience])
	assert.False(t, categories[businesscase.BenefitRevenueGrowth])
}

func sumInvestments(investments []businesscase.Investment) float64 {
	total := 0.0
	for _, inv := range investments {
		total += inv.Total()
	}
	return total
}

func TestGenerateValidation(t *testing.T) {
	g := businesscase.NewGenerator(0.10)

	in := sampleInput()
	in.Budget = 0
	_, err := g.Generate(in)
	assert.Error(t, err)

	in = sampleInput()
	in.Organization = ""
	_, err = g.Generate(in)
	assert.Error(t, err)
}

func TestGenerateFrontLoadsInvestments(t *testing.T) {
	g := businesscase.NewGenerator(0.10)
	c, err := g.Generate(sampleInput())
	require.NoError(t, err)

	for _, inv := range c.Investments {
		assert.Greater(t, inv.Year1, inv.Year2, "year 1 should carry the largest share for %s", inv.Category)
		assert.Greater(t, inv.Year2, inv.Year3)
		assert.InDelta(t, inv.Total()*0.05, inv.Ongoing, inv.Total()*0.001)
	}
}

func TestProjectionShape(t *testing.T) {
	g := businesscase.NewGenerator(0.10)
	c, err := g.Generate(sampleInput())
	require.NoError(t, err)

	p := c.Projection
	assert.Len(t, p.YearlyCashflow, 5)
	assert.Greater(t, p.TotalInvestment, 0.0)
	assert.Greater(t, p.TotalBenefits, 0.0)
	assert.GreaterOrEqual(t, p.PaybackMonths, 12)
	assert.LessOrEqual(t, p.PaybackMonths, 60)
	assert.GreaterOrEqual(t, p.IRR, -1.0)
	assert.LessOrEqual(t, p.IRR, 1.0)
}

func TestRisksSortedAndRelevant(t *testing.T) {
	g := businesscase.NewGenerator(0.10)

	in := sampleInput()
	in.Industry = "financial_services"
	c, err := g.Generate(in)
	require.NoError(t, err)

	require.NotEmpty(t, c.Risks)
	assert.LessOrEqual(t, len(c.Risks), 10)
	for i := 1; i < len(c.Risks); i++ {
		assert.GreaterOrEqual(t, c.Risks[i-1].Score(), c.Risks[i].Score(),
			"risks should be ordered by impact x probability")
	}

	names := make([]string, 0, len(c.Risks))
	for _, r := range c.Risks {
		names = append(names, r.Risk)
	}
	assert.Contains(t, names, "Regulatory compliance issues")
	assert.Contains(t, names, "Data quality issues impacting AI model performance")
	assert.Contains(t, names, "Insufficient AI talent and skills")
}

func TestSizeScalesTimeline(t *testing.T) {
	g := businesscase.NewGenerator(0.10)

	small := sampleInput()
	small.Size = "small"
	cs, err := g.Generate(small)
	require.NoError(t, err)

	enterprise := sampleInput()
	enterprise.Size = "enterprise"
	ce, err := g.Generate(enterprise)
	require.NoError(t, err)

	assert.Less(t, cs.TotalTimelineMonths(), ce.TotalTimelineMonths())
}

func TestSensitivity(t *testing.T) {
	g := businesscase.NewGenerator(0.10)
	c, err := g.Generate(sampleInput())
	require.NoError(t, err)

	s := g.Analyze(c)

	assert.Equal(t, c.Projection.NPV, s.BaseNPV)
	assert.Greater(t, s.Optimistic.NPV, s.BaseNPV)
	assert.Less(t, s.Pessimistic.NPV, s.BaseNPV)
	assert.Greater(t, s.Optimistic.ROIChange, 0.0)
	assert.Less(t, s.Pessimistic.ROIChange, 0.0)

	require.Contains(t, s.Variables, "investment_cost")
	require.Contains(t, s.Variables, "benefit_realization")
	assert.Len(t, s.Variables["investment_cost"], 4)
	assert.Len(t, s.Variables["benefit_realization"], 4)
}
