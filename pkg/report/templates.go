package report

import (
	"fmt"

	"github.com/readyscope/readyscope/pkg/businesscase"
	"github.com/readyscope/readyscope/pkg/scoring"
)

// ReadinessSummaryTemplate is the built-in one-paragraph readiness summary.
const ReadinessSummaryTemplate = `AI Readiness Assessment — {organization}

Overall readiness score: {readiness_score}/100 ({band})
Maturity: {maturity}
Estimated transformation timeline: {timeline_months} months

Prepared {assessed_at}.
`

// ExecutiveSummaryTemplate is the built-in business-case executive summary.
const ExecutiveSummaryTemplate = `AI Investment Proposal — {organization}

Investment required: ${investment_amount}
Expected ROI: {roi}% over {timeline_months} months
Net present value: ${npv}
Payback period: {payback_months} months

Recommendation: {recommendation}
`

// ScoreValues maps a ScoreResult onto the placeholder names the built-in
// readiness templates use.
func ScoreValues(result *scoring.ScoreResult) map[string]any {
	return map[string]any{
		"organization":    result.Organization,
		"readiness_score": fmt.Sprintf("%.1f", result.Total),
		"band":            result.Band,
		"maturity":        result.Maturity.String(),
		"timeline_months": result.TimelineMonths,
		"assessed_at":     result.AssessedAt.Format("2006-01-02"),
	}
}

// CaseValues maps a business case onto the placeholder names the built-in
// executive summary template uses.
func CaseValues(c *businesscase.Case) map[string]any {
	return map[string]any{
		"organization":      c.Organization,
		"investment_amount": fmt.Sprintf("%.0f", c.Projection.TotalInvestment),
		"roi":               fmt.Sprintf("%.1f", c.Projection.ROIPercent),
		"npv":               fmt.Sprintf("%.0f", c.Projection.NPV),
		"payback_months":    c.Projection.PaybackMonths,
		"timeline_months":   c.TotalTimelineMonths(),
		"recommendation":    c.Recommendation,
	}
}
