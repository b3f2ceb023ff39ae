package emotion

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Analyze classifies text. It never fails: blank input yields the neutral
// verdict and input without lexical evidence goes through the sentiment
// fallback.
func (e *Engine) Analyze(text string) Verdict {
	normText := Normalize(text)
	if normText == "" {
		return neutralVerdict(ReasonEmptyInput)
	}
	tokens := strings.Split(normText, " ")
	spans := tokenSpans(tokens)
	reading := e.sentiment.read(text)

	sc := newScoreSheet(e.lex)

	for _, ev := range e.matchPhrases(normText, spans) {
		sc.add(ev, ev.Positions...)
	}
	for _, ev := range e.matchKeywords(tokens) {
		sc.add(ev, ev.Positions...)
	}

	reason := ReasonLexical
	if !sc.positive() {
		for _, ev := range e.matchFuzzy(tokens) {
			sc.add(ev, ev.Position)
		}
		reason = ReasonFuzzy
	}
	lexical := sc.positive()

	for _, ev := range e.sentimentBumps(reading) {
		sc.add(ev)
	}

	// Bumps alone never count as evidence: the fallback still runs so a
	// marker route can outrank the uniform bumps on every negative emotion.
	if !lexical {
		sc.add(e.fallback(normText, reading))
		reason = ReasonFallback
	}

	candidates := e.rank(sc.raw)
	if len(candidates) == 0 {
		v := neutralVerdict(ReasonNoSignal)
		v.Sentiment = reading
		v.Evidence = sc.evidence
		v.Details = sc.details(e.lex, len(tokens), reading)
		return v
	}

	d := sc.details(e.lex, len(tokens), reading)
	d.Uniqueness = uniqueness(candidates)

	return Verdict{
		TopEmotion: candidates[0].Emotion,
		Confidence: confidence(candidates[0].Score, d),
		Candidates: candidates,
		Evidence:   sc.evidence,
		Sentiment:  reading,
		Details:    d,
		Reason:     reason,
	}
}

// scoreSheet accumulates raw scores, evidence and matched token positions
// for a single call.
type scoreSheet struct {
	raw      []float64
	pos      map[Emotion]int
	evidence []Evidence
	matched  map[int]bool
}

func newScoreSheet(lex *Lexicon) *scoreSheet {
	return &scoreSheet{
		raw:      make([]float64, lex.Len()),
		pos:      lex.pos,
		evidence: []Evidence{},
		matched:  make(map[int]bool),
	}
}

func (s *scoreSheet) add(ev Evidence, positions ...int) {
	i, ok := s.pos[ev.Target()]
	if !ok {
		return
	}
	s.raw[i] += ev.Amount()
	s.evidence = append(s.evidence, ev)
	for _, p := range positions {
		s.matched[p] = true
	}
}

func (s *scoreSheet) positive() bool {
	for _, v := range s.raw {
		if v > 0 {
			return true
		}
	}
	return false
}

func (s *scoreSheet) details(lex *Lexicon, total int, r Reading) Details {
	raw := make([]RawScore, len(s.raw))
	for i, v := range s.raw {
		raw[i] = RawScore{Emotion: lex.entries[i].Emotion, Score: v}
	}
	return Details{
		RawScores:         raw,
		TokenCoverage:     coverage(len(s.matched), total),
		SentimentStrength: r.Strength(),
		LengthFactor:      lengthFactor(total),
		TotalTokens:       max(1, total),
		MatchedTokens:     len(s.matched),
	}
}

// fallback assigns one fixed score from the sentiment reading alone.
func (e *Engine) fallback(normText string, r Reading) FallbackEvidence {
	fb := e.lex.fallback
	ev := FallbackEvidence{Compound: r.Compound, Polarity: r.Polarity}

	switch {
	case r.Compound >= fb.PositiveCompound || r.Polarity >= fb.PositivePolarity:
		ev.Emotion = fb.Positive
		ev.Contribution = 1 + math.Abs(r.Compound)
	case r.Compound <= fb.NegativeCompound || r.Polarity <= fb.NegativePolarity:
		ev.Emotion = fb.DefaultNegative
		ev.Contribution = fb.DefaultNegativeScore
	routes:
		for _, route := range fb.Negative {
			for _, m := range route.Markers {
				if strings.Contains(normText, m) {
					ev.Emotion = route.Emotion
					ev.Contribution = route.Score
					ev.Marker = m
					break routes
				}
			}
		}
	default:
		ev.Emotion = fb.Neutral
		ev.Contribution = fb.NeutralScore
	}
	return ev
}

// rank turns positive raw scores into a distribution via exp(k*raw/max),
// sorted descending with ties kept in lexicon order.
func (e *Engine) rank(raw []float64) []Candidate {
	var (
		emos []Emotion
		vals []float64
	)
	for i, v := range raw {
		if v > 0 {
			emos = append(emos, e.lex.entries[i].Emotion)
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil
	}
	maxRaw := floats.Max(vals)
	if maxRaw <= 0 {
		return nil
	}

	exps := make([]float64, len(vals))
	for i, v := range vals {
		exps[i] = math.Exp(e.params.Sharpness * v / maxRaw)
	}
	floats.Scale(1/floats.Sum(exps), exps)

	out := make([]Candidate, len(exps))
	for i := range exps {
		out[i] = Candidate{Emotion: emos[i], Score: exps[i]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return e.lex.order(out[i].Emotion) < e.lex.order(out[j].Emotion)
	})

	if k := e.params.TopK; k > 0 {
		if limit := max(k, 4); len(out) > limit {
			out = out[:limit]
		}
	}
	return out
}
