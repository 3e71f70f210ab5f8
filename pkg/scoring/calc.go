package scoring

import "fmt"

// weightTolerance is the allowed floating-point drift when checking that
// weights sum to 1.
const weightTolerance = 0.01

// WeightedScore is one (score, weight) pair for the weighted-sum calculator.
type WeightedScore struct {
	Name   string  `json:"name,omitempty"`
	Score  float64 `json:"raw_score"` // 0-100
	Weight float64 `json:"weight"`    // non-negative, set sums to 1
}

// WeightedTotal computes the weighted sum of the given pairs.
// It fails with *ValidationError if the set is empty, any score is outside
// [0, 100], any weight is negative, or the weights do not sum to 1 within
// tolerance.
func WeightedTotal(scores []WeightedScore) (float64, error) {
	if len(scores) == 0 {
		return 0, &ValidationError{Reason: "no dimension scores provided"}
	}

	var total, weightSum float64
	for i, ws := range scores {
		if ws.Score < 0 || ws.Score > 100 {
			return 0, &ValidationError{Reason: fmt.Sprintf(
				"score %g for %s is outside [0, 100]", ws.Score, scoreName(ws, i))}
		}
		if ws.Weight < 0 {
			return 0, &ValidationError{Reason: fmt.Sprintf(
				"negative weight %g for %s", ws.Weight, scoreName(ws, i))}
		}
		total += ws.Score * ws.Weight
		weightSum += ws.Weight
	}

	if weightSum < 1-weightTolerance || weightSum > 1+weightTolerance {
		return 0, &ValidationError{Reason: fmt.Sprintf(
			"weights sum to %g, expected 1.0 (±%g)", weightSum, weightTolerance)}
	}

	return total, nil
}

func scoreName(ws WeightedScore, index int) string {
	if ws.Name != "" {
		return ws.Name
	}
	return fmt.Sprintf("dimension %d", index)
}
