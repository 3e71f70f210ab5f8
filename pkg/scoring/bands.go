package scoring

// Band maps a score range to a qualitative readiness label.
// A band covers [Min, next band's Min); lower bounds are inclusive, so a
// total sitting exactly on a boundary takes the higher band's label.
type Band struct {
	Min   float64 `json:"min" yaml:"min"`
	Label string  `json:"label" yaml:"label"`
}

// DefaultBands returns the standard readiness bands, sorted descending.
func DefaultBands() []Band {
	return []Band{
		{Min: 90, Label: "Transformation Ready"},
		{Min: 75, Label: "Mostly Ready"},
		{Min: 60, Label: "Conditionally Ready"},
		{Min: 45, Label: "Limited Readiness"},
		{Min: 0, Label: "Not Ready"},
	}
}

// Categorize returns the label of the first band (descending order) whose
// lower bound the total meets or exceeds. The band set must include a
// catch-all floor at 0; if no band matches, it fails with *ValidationError.
func Categorize(total float64, bands []Band) (string, error) {
	if len(bands) == 0 {
		return "", &ValidationError{Reason: "no category bands configured"}
	}
	for _, b := range bands {
		if total >= b.Min {
			return b.Label, nil
		}
	}
	return "", &ValidationError{Reason: "no category band matches the score; bands must include a floor at 0"}
}
