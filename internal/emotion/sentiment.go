package emotion

import "math"

// CompoundScorer returns a directional intensity in [-1, 1].
type CompoundScorer interface {
	Compound(text string) float64
}

// PolarityScorer returns polarity in [-1, 1] and subjectivity in [0, 1].
type PolarityScorer interface {
	PolaritySubjectivity(text string) (polarity, subjectivity float64)
}

// Reading is the sentiment snapshot taken once per analysis call.
type Reading struct {
	Compound     float64 `json:"compound"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Label buckets the compound score the usual VADER way.
func (r Reading) Label() string {
	switch {
	case r.Compound >= 0.05:
		return "positive"
	case r.Compound <= -0.05:
		return "negative"
	default:
		return "neutral"
	}
}

// Strength is the averaged magnitude of both signals, capped at 1.
func (r Reading) Strength() float64 {
	return math.Min(1, (math.Abs(r.Compound)+math.Abs(r.Polarity))/2)
}

type neutralScorer struct{}

func (neutralScorer) Compound(string) float64                        { return 0 }
func (neutralScorer) PolaritySubjectivity(string) (float64, float64) { return 0, 0 }

type bridge struct {
	compound CompoundScorer
	polarity PolarityScorer
}

func (b bridge) read(text string) Reading {
	c := b.compound.Compound(text)
	p, s := b.polarity.PolaritySubjectivity(text)
	return Reading{
		Compound:     clamp(c, -1, 1),
		Polarity:     clamp(p, -1, 1),
		Subjectivity: clamp(s, 0, 1),
	}
}

// sentimentBumps nudges every emotion whose valence agrees with the compound
// sign once |compound| clears the threshold.
func (e *Engine) sentimentBumps(r Reading) []SentimentBumpEvidence {
	if math.Abs(r.Compound) <= e.params.SentimentThreshold {
		return nil
	}
	sign := 1
	if r.Compound < 0 {
		sign = -1
	}
	amount := math.Abs(r.Compound) * e.params.SentimentWeight * (1 + 0.5*math.Abs(r.Polarity))

	var out []SentimentBumpEvidence
	for _, entry := range e.lex.entries {
		if entry.Valence == 0 || entry.Valence != sign {
			continue
		}
		out = append(out, SentimentBumpEvidence{
			Emotion:      entry.Emotion,
			Compound:     r.Compound,
			Polarity:     r.Polarity,
			Contribution: amount,
		})
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}
