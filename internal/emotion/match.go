package emotion

import "strings"

// span is the byte range of a token inside the normalized text.
type span struct{ start, end int }

// tokenSpans assumes text is normalized, so tokens are separated by exactly
// one space.
func tokenSpans(tokens []string) []span {
	out := make([]span, len(tokens))
	off := 0
	for i, tok := range tokens {
		out[i] = span{start: off, end: off + len(tok)}
		off += len(tok) + 1
	}
	return out
}

// occurrences returns the start offsets of non-overlapping matches of sub,
// scanning left to right.
func occurrences(text, sub string) []int {
	if sub == "" {
		return nil
	}
	var idx []int
	for i := 0; i <= len(text); {
		j := strings.Index(text[i:], sub)
		if j < 0 {
			break
		}
		idx = append(idx, i+j)
		i += j + len(sub)
	}
	return idx
}

func (e *Engine) matchPhrases(text string, spans []span) []PhraseEvidence {
	var out []PhraseEvidence
	for _, entry := range e.lex.entries {
		for _, p := range entry.Phrases {
			ph := Normalize(p.Text)
			hits := occurrences(text, ph)
			if len(hits) == 0 {
				continue
			}
			var positions []int
			for _, h := range hits {
				positions = appendCovered(positions, spans, h, h+len(ph))
			}
			count := len(hits)
			out = append(out, PhraseEvidence{
				Emotion:      entry.Emotion,
				Phrase:       p.Text,
				Weight:       p.Weight,
				Count:        count,
				Contribution: p.Weight * e.params.PhraseBonus * float64(count) * e.params.KeywordWeight,
				Positions:    positions,
			})
		}
	}
	return out
}

// appendCovered adds the index of every token overlapping [start, end).
func appendCovered(dst []int, spans []span, start, end int) []int {
	for i, s := range spans {
		if s.start < end && s.end > start {
			dst = append(dst, i)
		}
	}
	return dst
}

func (e *Engine) matchKeywords(tokens []string) []KeywordEvidence {
	stems := make([]string, len(tokens))
	for i, tok := range tokens {
		stems[i] = e.stemmer.Stem(tok)
	}

	var out []KeywordEvidence
	for _, entry := range e.lex.entries {
		for _, k := range entry.Keywords {
			kw := Normalize(k.Text)
			if kw == "" {
				continue
			}
			kwStem, ok := e.stems.KeywordStem(kw)
			if !ok {
				kwStem = e.stemmer.Stem(kw)
			}

			count := 0
			acc := 0.0
			var positions []int
			for i, tok := range tokens {
				if tok != kw && !strings.Contains(tok, kw) && stems[i] != kwStem {
					continue
				}
				count++
				acc += e.intensityBefore(tokens, i)
				positions = append(positions, i)
			}
			if count == 0 {
				continue
			}

			avg := acc / float64(count)
			out = append(out, KeywordEvidence{
				Emotion:      entry.Emotion,
				Keyword:      k.Text,
				Weight:       k.Weight,
				Count:        count,
				AvgIntensity: avg,
				Contribution: k.Weight * float64(count) * avg * e.params.KeywordWeight,
				Positions:    positions,
			})
		}
	}
	return out
}

// intensityBefore returns the multiplier of the token preceding position i,
// or 1 when there is none.
func (e *Engine) intensityBefore(tokens []string, i int) float64 {
	if i == 0 {
		return 1
	}
	if m, ok := e.lex.Modifier(tokens[i-1]); ok {
		return m
	}
	return 1
}
