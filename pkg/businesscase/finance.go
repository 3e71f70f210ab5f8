package businesscase

import "math"

// projectionYears is the horizon for cashflow modeling.
const projectionYears = 5

// project builds the five-year financial projection for a set of
// investments and benefits. Benefit values are discounted by confidence and
// realization probability before entering the cashflow.
func (g *Generator) project(investments []Investment, benefits []Benefit) Projection {
	annualCosts := make([]float64, projectionYears)
	annualBenefits := make([]float64, projectionYears)

	for _, inv := range investments {
		annualCosts[0] += inv.Year1
		annualCosts[1] += inv.Year2
		annualCosts[2] += inv.Year3
		for year := 3; year < projectionYears; year++ {
			annualCosts[year] += inv.Ongoing
		}
	}

	for _, ben := range benefits {
		expected := ben.Confidence * ben.Realization
		annualBenefits[0] += ben.Year1 * expected
		annualBenefits[1] += ben.Year2 * expected
		annualBenefits[2] += ben.Year3 * expected
		for year := 3; year < projectionYears; year++ {
			annualBenefits[year] += ben.Ongoing * expected
		}
	}

	cashflow := make([]float64, projectionYears)
	totalInvestment := 0.0
	totalBenefits := 0.0
	for i := 0; i < projectionYears; i++ {
		cashflow[i] = annualBenefits[i] - annualCosts[i]
		totalInvestment += annualCosts[i]
		totalBenefits += annualBenefits[i]
	}

	npv := 0.0
	for i, cf := range cashflow {
		npv += cf / math.Pow(1+g.discountRate, float64(i+1))
	}

	roi := 0.0
	if totalInvestment > 0 {
		roi = (totalBenefits - totalInvestment) / totalInvestment * 100
	}

	return Projection{
		TotalInvestment: totalInvestment,
		TotalBenefits:   totalBenefits,
		NPV:             npv,
		ROIPercent:      roi,
		PaybackMonths:   paybackMonths(cashflow),
		IRR:             approximateIRR(cashflow, totalInvestment),
		YearlyCashflow:  cashflow,
	}
}

// paybackMonths finds the first year cumulative cashflow turns non-negative,
// in months. Returns the full horizon if it never does.
func paybackMonths(cashflow []float64) int {
	cumulative := 0.0
	for year, cf := range cashflow {
		cumulative += cf
		if cumulative >= 0 {
			return (year + 1) * 12
		}
	}
	return len(cashflow) * 12
}

// approximateIRR estimates internal rate of return as the annualized return
// on total investment, clamped to [-1, 1].
func approximateIRR(cashflow []float64, totalInvestment float64) float64 {
	if totalInvestment <= 0 {
		return 0
	}
	totalReturn := 0.0
	for _, cf := range cashflow {
		totalReturn += cf
	}
	if totalReturn <= 0 {
		return -1
	}
	irr := math.Pow(totalReturn/totalInvestment, 1/float64(len(cashflow))) - 1
	if irr > 1 {
		return 1
	}
	if irr < -1 {
		return -1
	}
	return irr
}
