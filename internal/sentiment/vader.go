// Package sentiment provides the two sentiment estimators the emotion engine
// consults: a VADER compound scorer and a lexicon-based polarity and
// subjectivity scorer.
package sentiment

import (
	"sync"

	"github.com/jonreiter/govader"
)

// Vader wraps govader's analyzer. It is safe for concurrent use.
type Vader struct {
	sia *govader.SentimentIntensityAnalyzer
	mu  sync.Mutex
}

var (
	defaultVader *Vader
	vaderOnce    sync.Once
)

// DefaultVader returns a lazily built shared analyzer. Building one loads
// the VADER lexicon, so callers should share it.
func DefaultVader() *Vader {
	vaderOnce.Do(func() {
		defaultVader = NewVader()
	})
	return defaultVader
}

func NewVader() *Vader {
	return &Vader{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Scores holds the full VADER breakdown.
type Scores struct {
	Compound float64
	Positive float64
	Negative float64
	Neutral  float64
}

func (v *Vader) Scores(text string) Scores {
	v.mu.Lock()
	s := v.sia.PolarityScores(text)
	v.mu.Unlock()
	return Scores{
		Compound: s.Compound,
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
	}
}

// Compound returns the normalized VADER compound score in [-1, 1].
func (v *Vader) Compound(text string) float64 {
	return v.Scores(text).Compound
}
