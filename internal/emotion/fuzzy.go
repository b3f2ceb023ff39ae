package emotion

import "unicode/utf8"

// CloseMatcher finds vocabulary words similar to word at or above cutoff,
// best first.
type CloseMatcher interface {
	Closest(word string, vocab []string, cutoff float64) []string
}

type owner struct {
	emotion Emotion
	weight  float64
}

func buildOwners(lex *Lexicon) map[string][]owner {
	out := make(map[string][]owner)
	for _, e := range lex.entries {
		for _, k := range e.Keywords {
			out[k.Text] = append(out[k.Text], owner{emotion: e.Emotion, weight: k.Weight})
		}
	}
	return out
}

// matchFuzzy approximates tokens against the keyword vocabulary. Every hit
// earns the keyword's base weight times the discount, regardless of how close
// the match actually was.
func (e *Engine) matchFuzzy(tokens []string) []FuzzyEvidence {
	if e.closer == nil {
		return nil
	}
	var out []FuzzyEvidence
	for i, tok := range tokens {
		if utf8.RuneCountInString(tok) < e.params.FuzzyMinTokenLen {
			continue
		}
		for _, kw := range e.closer.Closest(tok, e.vocab, e.params.FuzzyCutoff) {
			for _, o := range e.owners[kw] {
				out = append(out, FuzzyEvidence{
					Emotion:      o.emotion,
					Token:        tok,
					Position:     i,
					Keyword:      kw,
					Weight:       o.weight,
					Contribution: o.weight * e.params.FuzzyDiscount,
				})
			}
		}
	}
	return out
}
