package transcript

// AverageScores are the arithmetic means of each rubric dimension across
// a transcript. Always computed here, never taken from a model response,
// so the numeric output stays trustworthy.
type AverageScores struct {
	Clarity           float64 `json:"clarity"`
	Structure         float64 `json:"structure"`
	Examples          float64 `json:"examples"`
	TechnicalAccuracy float64 `json:"technical_accuracy"`
	Overall           float64 `json:"overall"`
}

// Averages computes the per-dimension arithmetic mean over entries.
// Deterministic: the same entries always produce the same result.
// Returns the zero value for an empty transcript.
func Averages(entries []Entry) AverageScores {
	if len(entries) == 0 {
		return AverageScores{}
	}

	var sum struct {
		clarity, structure, examples, technical, overall int
	}
	for _, e := range entries {
		sum.clarity += e.Scores.Clarity
		sum.structure += e.Scores.Structure
		sum.examples += e.Scores.Examples
		sum.technical += e.Scores.TechnicalAccuracy
		sum.overall += e.Scores.Overall
	}

	n := float64(len(entries))
	return AverageScores{
		Clarity:           float64(sum.clarity) / n,
		Structure:         float64(sum.structure) / n,
		Examples:          float64(sum.examples) / n,
		TechnicalAccuracy: float64(sum.technical) / n,
		Overall:           float64(sum.overall) / n,
	}
}
