package scoring

import (
	"fmt"
	"sort"

	"github.com/readyscope/readyscope/pkg/assessment"
)

// Engine scores assessments against a dimension catalog and band set.
type Engine struct {
	dimensions []assessment.Dimension
	bands      []Band
}

// Option configures an Engine.
type Option func(*Engine)

// WithDimensions replaces the default dimension catalog.
func WithDimensions(dims []assessment.Dimension) Option {
	return func(e *Engine) { e.dimensions = dims }
}

// WithBands replaces the default band set.
func WithBands(bands []Band) Option {
	return func(e *Engine) { e.bands = bands }
}

// WithWeights overrides catalog weights for the given dimension keys.
func WithWeights(weights map[string]float64) Option {
	return func(e *Engine) {
		for i, d := range e.dimensions {
			if w, ok := weights[d.Key]; ok {
				e.dimensions[i].Weight = w
			}
		}
	}
}

// NewEngine creates a scoring engine with the standard catalog and bands.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		dimensions: assessment.Catalog(),
		bands:      DefaultBands(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score evaluates an assessment and produces a complete ScoreResult.
// It is a pure computation: the same assessment always yields the same result.
func (e *Engine) Score(a *assessment.Assessment) (*ScoreResult, error) {
	if a == nil {
		return nil, &ValidationError{Reason: "assessment is nil"}
	}
	if len(a.Responses) == 0 {
		return nil, &ValidationError{Reason: "assessment has no responses"}
	}

	responses := a.ResponseMap()

	// Build the weighted pairs, one per catalog dimension. Every dimension
	// must have a response; ratings are normalized onto 0-100.
	pairs := make([]WeightedScore, 0, len(e.dimensions))
	breakdown := make([]DimensionScore, 0, len(e.dimensions))
	for _, dim := range e.dimensions {
		resp, ok := responses[dim.Key]
		if !ok {
			return nil, &ValidationError{Reason: fmt.Sprintf("no response for dimension %q", dim.Key)}
		}
		if resp.Rating < 1 || resp.Rating > 5 {
			return nil, &ValidationError{Reason: fmt.Sprintf(
				"rating %d for dimension %q is outside [1, 5]", resp.Rating, dim.Key)}
		}

		normalized := float64(resp.Rating) * 20
		maturity := MaturityFromScore(normalized)
		strengths, gaps, recs := dimensionInsights(dim.Key, maturity)

		pairs = append(pairs, WeightedScore{Name: dim.Key, Score: normalized, Weight: dim.Weight})
		breakdown = append(breakdown, DimensionScore{
			Key:             dim.Key,
			Name:            dim.Name,
			Rating:          resp.Rating,
			Normalized:      normalized,
			Weight:          dim.Weight,
			Weighted:        normalized * dim.Weight,
			Maturity:        maturity,
			Priority:        dimensionPriority(dim.Key, maturity),
			Strengths:       strengths,
			Gaps:            gaps,
			Recommendations: recs,
		})
	}

	total, err := WeightedTotal(pairs)
	if err != nil {
		return nil, err
	}

	band, err := Categorize(total, e.bands)
	if err != nil {
		return nil, err
	}

	result := &ScoreResult{
		AssessmentID: a.ID,
		Organization: a.Profile.Name,
		Industry:     a.Profile.Industry,
		Total:        total,
		Band:         band,
		Maturity:     MaturityFromScore(total),
		Breakdown:    breakdown,
		Benchmark:    assessment.CompareToBenchmark(a),
		AssessedAt:   a.AssessedAt,
	}

	result.TopStrengths = topStrengths(breakdown)
	result.CriticalGaps = criticalGaps(breakdown)
	result.Recommendations = priorityRecommendations(breakdown)
	result.TimelineMonths = estimateTimeline(breakdown, total)

	return result, nil
}

// topStrengths collects strengths from Advanced and Optimizing dimensions.
func topStrengths(breakdown []DimensionScore) []string {
	var strengths []string
	for _, ds := range breakdown {
		if ds.Maturity >= MaturityAdvanced {
			strengths = append(strengths, ds.Strengths...)
		}
	}
	if len(strengths) > 5 {
		strengths = strengths[:5]
	}
	return strengths
}

// criticalGaps collects gaps from high-priority dimensions.
func criticalGaps(breakdown []DimensionScore) []string {
	var gaps []string
	for _, ds := range breakdown {
		if ds.Priority == PriorityHigh {
			gaps = append(gaps, ds.Gaps...)
		}
	}
	if len(gaps) > 5 {
		gaps = gaps[:5]
	}
	return gaps
}

// priorityRecommendations orders dimensions by priority, then by lowest
// maturity, and takes up to two recommendations from each.
func priorityRecommendations(breakdown []DimensionScore) []string {
	sorted := make([]DimensionScore, len(breakdown))
	copy(sorted, breakdown)
	sort.SliceStable(sorted, func(i, j int) bool {
		if (sorted[i].Priority == PriorityHigh) != (sorted[j].Priority == PriorityHigh) {
			return sorted[i].Priority == PriorityHigh
		}
		return sorted[i].Maturity < sorted[j].Maturity
	})

	var recs []string
	for _, ds := range sorted {
		if ds.Priority == PriorityLow {
			continue
		}
		take := len(ds.Recommendations)
		if take > 2 {
			take = 2
		}
		recs = append(recs, ds.Recommendations[:take]...)
	}
	if len(recs) > 8 {
		recs = recs[:8]
	}
	return recs
}

// estimateTimeline projects the transformation timeline in months from the
// overall score and the count of high-priority dimensions.
func estimateTimeline(breakdown []DimensionScore, total float64) int {
	const baseMonths = 18.0

	var multiplier float64
	switch {
	case total <= 40:
		multiplier = 1.5
	case total <= 60:
		multiplier = 1.2
	case total <= 80:
		multiplier = 1.0
	default:
		multiplier = 0.8
	}

	highPriority := 0
	for _, ds := range breakdown {
		if ds.Priority == PriorityHigh {
			highPriority++
		}
	}

	return int(baseMonths*multiplier) + highPriority*2
}
