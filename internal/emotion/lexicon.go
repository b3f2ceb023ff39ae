package emotion

import (
	"errors"
	"fmt"
)

// Emotion is one label of the closed emotion vocabulary.
type Emotion string

// Neutral is reported for empty input and for the no-signal terminal path.
const Neutral Emotion = "neutral"

// Term is a weighted phrase or keyword.
type Term struct {
	Text   string  `json:"text" yaml:"text"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Entry holds everything the lexicon knows about one emotion.
type Entry struct {
	Emotion  Emotion
	Valence  int
	Phrases  []Term
	Keywords []Term
}

// Route sends a negative reading to Emotion when any marker occurs in the
// normalized text.
type Route struct {
	Emotion Emotion
	Markers []string
	Score   float64
}

// Fallback decides which emotion receives a fixed score when the text
// carries no lexical evidence at all.
type Fallback struct {
	PositiveCompound float64
	PositivePolarity float64
	Positive         Emotion

	NegativeCompound     float64
	NegativePolarity     float64
	Negative             []Route
	DefaultNegative      Emotion
	DefaultNegativeScore float64

	Neutral      Emotion
	NeutralScore float64
}

var ErrInvalidLexicon = errors.New("invalid lexicon")

// Lexicon is immutable once built. Every accessor returns copies so callers
// cannot reach the backing slices.
type Lexicon struct {
	entries   []Entry
	pos       map[Emotion]int
	modifiers map[string]float64
	fallback  Fallback
}

func NewLexicon(entries []Entry, modifiers map[string]float64, fb Fallback) (*Lexicon, error) {
	lex := &Lexicon{
		entries:   make([]Entry, 0, len(entries)),
		pos:       make(map[Emotion]int, len(entries)),
		modifiers: make(map[string]float64, len(modifiers)),
		fallback:  copyFallback(fb),
	}

	for _, e := range entries {
		if e.Emotion == "" {
			return nil, fmt.Errorf("%w: empty emotion label", ErrInvalidLexicon)
		}
		if _, dup := lex.pos[e.Emotion]; dup {
			return nil, fmt.Errorf("%w: duplicate emotion %q", ErrInvalidLexicon, e.Emotion)
		}
		if e.Valence < -1 || e.Valence > 1 {
			return nil, fmt.Errorf("%w: valence %d for %q", ErrInvalidLexicon, e.Valence, e.Emotion)
		}
		if err := checkTerms(e.Emotion, e.Phrases); err != nil {
			return nil, err
		}
		if err := checkTerms(e.Emotion, e.Keywords); err != nil {
			return nil, err
		}
		lex.pos[e.Emotion] = len(lex.entries)
		lex.entries = append(lex.entries, copyEntry(e))
	}

	for tok, mult := range modifiers {
		if mult <= 0 {
			return nil, fmt.Errorf("%w: modifier %q has non-positive multiplier", ErrInvalidLexicon, tok)
		}
		lex.modifiers[tok] = mult
	}

	targets := []Emotion{fb.Positive, fb.DefaultNegative, fb.Neutral}
	for _, r := range fb.Negative {
		targets = append(targets, r.Emotion)
	}
	for _, t := range targets {
		if _, ok := lex.pos[t]; !ok {
			return nil, fmt.Errorf("%w: fallback emotion %q not in lexicon", ErrInvalidLexicon, t)
		}
	}
	if err := checkFallbackScores(lex.fallback); err != nil {
		return nil, err
	}

	return lex, nil
}

func checkTerms(emo Emotion, terms []Term) error {
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		if t.Text == "" {
			return fmt.Errorf("%w: empty term under %q", ErrInvalidLexicon, emo)
		}
		if t.Weight <= 0 {
			return fmt.Errorf("%w: term %q under %q has non-positive weight", ErrInvalidLexicon, t.Text, emo)
		}
		if seen[t.Text] {
			return fmt.Errorf("%w: duplicate term %q under %q", ErrInvalidLexicon, t.Text, emo)
		}
		seen[t.Text] = true
	}
	return nil
}

// checkFallbackScores keeps the sentiment fallback able to assign a positive
// score whichever route it takes.
func checkFallbackScores(fb Fallback) error {
	for _, r := range fb.Negative {
		if r.Score <= 0 {
			return fmt.Errorf("%w: fallback route %q has non-positive score", ErrInvalidLexicon, r.Emotion)
		}
		for _, m := range r.Markers {
			if m == "" {
				return fmt.Errorf("%w: fallback route %q has an empty marker", ErrInvalidLexicon, r.Emotion)
			}
		}
	}
	if fb.DefaultNegativeScore <= 0 {
		return fmt.Errorf("%w: default negative score must be positive", ErrInvalidLexicon)
	}
	if fb.NeutralScore <= 0 {
		return fmt.Errorf("%w: neutral score must be positive", ErrInvalidLexicon)
	}
	return nil
}

func copyEntry(e Entry) Entry {
	return Entry{
		Emotion:  e.Emotion,
		Valence:  e.Valence,
		Phrases:  append([]Term(nil), e.Phrases...),
		Keywords: append([]Term(nil), e.Keywords...),
	}
}

func copyFallback(fb Fallback) Fallback {
	out := fb
	out.Negative = make([]Route, len(fb.Negative))
	for i, r := range fb.Negative {
		markers := make([]string, len(r.Markers))
		for j, m := range r.Markers {
			markers[j] = Normalize(m)
		}
		out.Negative[i] = Route{Emotion: r.Emotion, Markers: markers, Score: r.Score}
	}
	return out
}

// Emotions returns the labels in their fixed iteration order.
func (l *Lexicon) Emotions() []Emotion {
	out := make([]Emotion, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Emotion
	}
	return out
}

func (l *Lexicon) Len() int {
	return len(l.entries)
}

func (l *Lexicon) Entry(emo Emotion) (Entry, bool) {
	i, ok := l.pos[emo]
	if !ok {
		return Entry{}, false
	}
	return copyEntry(l.entries[i]), true
}

// Entries returns a deep copy of every entry in iteration order.
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = copyEntry(e)
	}
	return out
}

func (l *Lexicon) Valence(emo Emotion) int {
	if i, ok := l.pos[emo]; ok {
		return l.entries[i].Valence
	}
	return 0
}

// Modifier reports the intensity multiplier for tok.
func (l *Lexicon) Modifier(tok string) (float64, bool) {
	m, ok := l.modifiers[tok]
	return m, ok
}

func (l *Lexicon) Modifiers() map[string]float64 {
	out := make(map[string]float64, len(l.modifiers))
	for k, v := range l.modifiers {
		out[k] = v
	}
	return out
}

func (l *Lexicon) Fallback() Fallback {
	return copyFallback(l.fallback)
}

// Vocabulary lists every keyword once, in first-seen order.
func (l *Lexicon) Vocabulary() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range l.entries {
		for _, k := range e.Keywords {
			if !seen[k.Text] {
				seen[k.Text] = true
				out = append(out, k.Text)
			}
		}
	}
	return out
}

// order is the iteration index used for deterministic tie-breaks.
func (l *Lexicon) order(emo Emotion) int {
	if i, ok := l.pos[emo]; ok {
		return i
	}
	return len(l.entries)
}

func hasTerm(terms []Term, text string) bool {
	for _, t := range terms {
		if t.Text == text {
			return true
		}
	}
	return false
}
