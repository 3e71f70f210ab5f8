package businesscase

// SensitivityCase is a projection delta under an adjusted assumption.
type SensitivityCase struct {
	NPV       float64 `json:"npv"`
	ROI       float64 `json:"roi"`
	NPVChange float64 `json:"npv_change"`
	ROIChange float64 `json:"roi_change"`
}

// VariableImpact records how the projection moves when one variable is
// tested at a specific value.
type VariableImpact struct {
	TestValue float64 `json:"test_value"`
	NPVImpact float64 `json:"npv_impact"`
	ROIImpact float64 `json:"roi_impact"`
}

// Sensitivity holds the full sensitivity analysis for a case.
type Sensitivity struct {
	BaseNPV     float64                     `json:"base_npv"`
	BaseROI     float64                     `json:"base_roi"`
	Optimistic  SensitivityCase             `json:"optimistic_case"`
	Pessimistic SensitivityCase             `json:"pessimistic_case"`
	Variables   map[string][]VariableImpact `json:"variable_impact"`
}

// Analyze runs sensitivity analysis on a generated case: optimistic
// (+20% benefits, -10% costs), pessimistic (-20% benefits, +15% costs), and
// per-variable sweeps over cost and benefit realization factors.
func (g *Generator) Analyze(c *Case) *Sensitivity {
	base := c.Projection

	optimistic := g.project(
		scaleInvestments(c.Investments, 0.9),
		scaleBenefits(c.Benefits, 1.2),
	)
	pessimistic := g.project(
		scaleInvestments(c.Investments, 1.15),
		scaleBenefits(c.Benefits, 0.8),
	)

	s := &Sensitivity{
		BaseNPV: base.NPV,
		BaseROI: base.ROIPercent,
		Optimistic: SensitivityCase{
			NPV:       optimistic.NPV,
			ROI:       optimistic.ROIPercent,
			NPVChange: optimistic.NPV - base.NPV,
			ROIChange: optimistic.ROIPercent - base.ROIPercent,
		},
		Pessimistic: SensitivityCase{
			NPV:       pessimistic.NPV,
			ROI:       pessimistic.ROIPercent,
			NPVChange: pessimistic.NPV - base.NPV,
			ROIChange: pessimistic.ROIPercent - base.ROIPercent,
		},
		Variables: map[string][]VariableImpact{},
	}

	costFactors := []float64{0.8, 0.9, 1.1, 1.2}
	for _, f := range costFactors {
		p := g.project(scaleInvestments(c.Investments, f), c.Benefits)
		s.Variables["investment_cost"] = append(s.Variables["investment_cost"], VariableImpact{
			TestValue: f,
			NPVImpact: p.NPV - base.NPV,
			ROIImpact: p.ROIPercent - base.ROIPercent,
		})
	}

	benefitFactors := []float64{0.7, 0.85, 1.15, 1.3}
	for _, f := range benefitFactors {
		p := g.project(c.Investments, scaleBenefits(c.Benefits, f))
		s.Variables["benefit_realization"] = append(s.Variables["benefit_realization"], VariableImpact{
			TestValue: f,
			NPVImpact: p.NPV - base.NPV,
			ROIImpact: p.ROIPercent - base.ROIPercent,
		})
	}

	return s
}

func scaleInvestments(investments []Investment, factor float64) []Investment {
	scaled := make([]Investment, len(investments))
	for i, inv := range investments {
		inv.Year1 *= factor
		inv.Year2 *= factor
		inv.Year3 *= factor
		inv.Ongoing *= factor
		scaled[i] = inv
	}
	return scaled
}

func scaleBenefits(benefits []Benefit, factor float64) []Benefit {
	scaled := make([]Benefit, len(benefits))
	for i, ben := range benefits {
		ben.Year1 *= factor
		ben.Year2 *= factor
		ben.Year3 *= factor
		ben.Ongoing *= factor
		scaled[i] = ben
	}
	return scaled
}
