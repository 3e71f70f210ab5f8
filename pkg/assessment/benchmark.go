package assessment

// Benchmark holds per-dimension average ratings observed in an industry.
type Benchmark struct {
	Industry string             `json:"industry"`
	Averages map[string]float64 `json:"averages"` // dimension key -> average 1-5 rating
}

// BenchmarkDelta compares one dimension's rating against the industry average.
type BenchmarkDelta struct {
	Dimension string  `json:"dimension"`
	Rating    float64 `json:"rating"`
	Average   float64 `json:"average"`
	Delta     float64 `json:"delta"` // positive = ahead of industry
}

// Benchmarks returns the built-in industry benchmark set.
func Benchmarks() map[string]Benchmark {
	return map[string]Benchmark{
		"financial_services": {
			Industry: "financial_services",
			Averages: map[string]float64{
				"strategic_alignment": 3.2,
				"data_maturity":       3.8,
				"governance_ethics":   4.1,
			},
		},
		"healthcare": {
			Industry: "healthcare",
			Averages: map[string]float64{
				"strategic_alignment": 2.8,
				"data_maturity":       3.1,
				"governance_ethics":   3.9,
			},
		},
		"manufacturing": {
			Industry: "manufacturing",
			Averages: map[string]float64{
				"strategic_alignment":      3.1,
				"technical_infrastructure": 3.6,
				"data_maturity":            3.4,
			},
		},
	}
}

// CompareToBenchmark diffs an assessment's ratings against its industry's
// benchmark. Dimensions without a benchmark average are skipped. Returns nil
// when the industry has no benchmark data.
func CompareToBenchmark(a *Assessment) []BenchmarkDelta {
	bm, ok := Benchmarks()[a.Profile.Industry]
	if !ok {
		return nil
	}

	var deltas []BenchmarkDelta
	for _, d := range Catalog() {
		avg, ok := bm.Averages[d.Key]
		if !ok {
			continue
		}
		rating := float64(a.Rating(d.Key))
		if rating == 0 {
			continue
		}
		deltas = append(deltas, BenchmarkDelta{
			Dimension: d.Key,
			Rating:    rating,
			Average:   avg,
			Delta:     rating - avg,
		})
	}
	return deltas
}
