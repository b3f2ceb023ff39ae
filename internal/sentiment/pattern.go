package sentiment

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/julienpequegnot/emolex/internal/sentiment/data"
)

const negationFactor = -0.5

type patternEntry struct {
	polarity     float64
	subjectivity float64
	intensity    float64
}

var (
	patternWords map[string]patternEntry
	patternOnce  sync.Once
	wordRe       = regexp.MustCompile(`[\p{L}']+`)
	negations    = map[string]bool{"not": true, "never": true, "no": true, "nor": true, "cannot": true}
)

func loadPattern() map[string]patternEntry {
	patternOnce.Do(func() {
		patternWords = parsePatternLexicon(data.PatternLexicon)
	})
	return patternWords
}

// parsePatternLexicon reads tab-separated lines, skipping comments and
// malformed rows.
func parsePatternLexicon(raw string) map[string]patternEntry {
	m := make(map[string]patternEntry, 128)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		pol, err1 := strconv.ParseFloat(parts[1], 64)
		subj, err2 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		e := patternEntry{polarity: pol, subjectivity: subj}
		if len(parts) > 3 {
			if in, err := strconv.ParseFloat(parts[3], 64); err == nil {
				e.intensity = in
			}
		}
		m[strings.ToLower(parts[0])] = e
	}
	return m
}

// Pattern scores polarity and subjectivity by averaging word-level
// assessments. An intensifier scales the next scored word, and a preceding
// negation flips and halves polarity.
type Pattern struct {
	words map[string]patternEntry
}

func NewPattern() *Pattern {
	return &Pattern{words: loadPattern()}
}

func (p *Pattern) intensifier(w string) (float64, bool) {
	e, ok := p.words[w]
	if !ok || e.intensity <= 0 {
		return 0, false
	}
	return e.intensity, true
}

func isNegation(w string) bool {
	return negations[w] || strings.HasSuffix(w, "n't")
}

// PolaritySubjectivity returns polarity in [-1, 1] and subjectivity in
// [0, 1]. Text with no known words scores (0, 0).
func (p *Pattern) PolaritySubjectivity(text string) (float64, float64) {
	tokens := wordRe.FindAllString(strings.ToLower(norm.NFC.String(text)), -1)

	var polSum, subjSum float64
	n := 0
	for i, w := range tokens {
		e, ok := p.words[w]
		if !ok {
			continue
		}
		if _, isInt := p.intensifier(w); isInt && i+1 < len(tokens) {
			if _, next := p.words[tokens[i+1]]; next {
				continue
			}
		}

		pol, subj := e.polarity, e.subjectivity
		j := i - 1
		if j >= 0 {
			if in, ok := p.intensifier(tokens[j]); ok {
				pol *= in
				subj *= in
				j--
			}
		}
		if j >= 0 && isNegation(tokens[j]) {
			pol *= negationFactor
		}

		polSum += pol
		subjSum += subj
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return clamp(polSum/float64(n), -1, 1), clamp(subjSum/float64(n), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
