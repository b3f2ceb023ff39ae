// Package fuzzy finds close vocabulary matches for misspelled or inflected
// tokens.
package fuzzy

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/pmezard/go-difflib/difflib"
)

const defaultMaxMatches = 2

type Metric string

const (
	MetricRatio       Metric = "ratio"
	MetricLevenshtein Metric = "levenshtein"
)

type scored struct {
	word  string
	score float64
}

// best keeps the n highest scores, breaking ties by the larger word so the
// result is stable for a given vocabulary.
func best(hits []scored, n int) []string {
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].word > hits[j].word
	})
	if len(hits) > n {
		hits = hits[:n]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.word
	}
	return out
}

// Ratio ranks candidates by difflib's similarity ratio, checking the cheap
// upper bounds first.
type Ratio struct {
	MaxMatches int
}

func (r Ratio) Closest(word string, vocab []string, cutoff float64) []string {
	n := r.MaxMatches
	if n <= 0 {
		n = defaultMaxMatches
	}

	m := difflib.NewMatcher(nil, strings.Split(word, ""))
	var hits []scored
	for _, x := range vocab {
		m.SetSeq1(strings.Split(x, ""))
		if m.RealQuickRatio() >= cutoff && m.QuickRatio() >= cutoff {
			if s := m.Ratio(); s >= cutoff {
				hits = append(hits, scored{word: x, score: s})
			}
		}
	}
	return best(hits, n)
}

// Levenshtein ranks candidates by 1 - distance/longest, measured in runes.
type Levenshtein struct {
	MaxMatches int
}

func (l Levenshtein) Closest(word string, vocab []string, cutoff float64) []string {
	n := l.MaxMatches
	if n <= 0 {
		n = defaultMaxMatches
	}

	wl := utf8.RuneCountInString(word)
	var hits []scored
	for _, x := range vocab {
		longest := max(wl, utf8.RuneCountInString(x))
		if longest == 0 {
			continue
		}
		s := 1 - float64(levenshtein.ComputeDistance(word, x))/float64(longest)
		if s >= cutoff {
			hits = append(hits, scored{word: x, score: s})
		}
	}
	return best(hits, n)
}

// Matcher is satisfied by Ratio and Levenshtein.
type Matcher interface {
	Closest(word string, vocab []string, cutoff float64) []string
}

func New(metric Metric, maxMatches int) (Matcher, error) {
	switch metric {
	case MetricRatio, "":
		return Ratio{MaxMatches: maxMatches}, nil
	case MetricLevenshtein:
		return Levenshtein{MaxMatches: maxMatches}, nil
	default:
		return nil, fmt.Errorf("unknown fuzzy metric %q", metric)
	}
}
