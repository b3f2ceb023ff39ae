package emotion

import "math"

const (
	weightTop        = 0.55
	weightCoverage   = 0.18
	weightSentiment  = 0.15
	weightUniqueness = 0.07
	weightLength     = 0.05

	uniquenessFloor  = 0.05
	lengthSaturation = 25.0
	maxConfidence    = 0.99
)

func coverage(matched, total int) float64 {
	return math.Min(1, float64(matched)/float64(max(1, total)))
}

// uniqueness is 1 when exactly one candidate clears the floor.
func uniqueness(cands []Candidate) float64 {
	n := 0
	for _, c := range cands {
		if c.Score > uniquenessFloor {
			n++
		}
	}
	if n == 1 {
		return 1
	}
	return 0
}

func lengthFactor(total int) float64 {
	return math.Min(1, float64(max(1, total))/lengthSaturation)
}

// confidence never reports full certainty; the result is clamped to
// [0, 0.99].
func confidence(top float64, d Details) float64 {
	c := weightTop*top +
		weightCoverage*d.TokenCoverage +
		weightSentiment*d.SentimentStrength +
		weightUniqueness*d.Uniqueness +
		weightLength*d.LengthFactor
	return clamp(c, 0, maxConfidence)
}
