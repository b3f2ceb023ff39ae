package emotion

import (
	"errors"
	"fmt"
)

// Params are the fixed weighting constants of an engine.
type Params struct {
	PhraseBonus        float64
	KeywordWeight      float64
	SentimentWeight    float64
	SentimentThreshold float64
	FuzzyCutoff        float64
	FuzzyDiscount      float64
	FuzzyMinTokenLen   int
	// Sharpness scales raw/max before exponentiation. Larger values widen
	// the gap between the leader and the rest. At 1 every weight lands in
	// [1, e] and a clear anxiety text with a few stray hits tops out near
	// 0.3 confidence; 4 lifts the same text above 0.7.
	Sharpness float64
	// TopK truncates the candidate list to max(TopK, 4). Zero keeps every
	// candidate.
	TopK int
}

func DefaultParams() Params {
	return Params{
		PhraseBonus:        1.6,
		KeywordWeight:      1.0,
		SentimentWeight:    0.20,
		SentimentThreshold: 0.25,
		FuzzyCutoff:        0.86,
		FuzzyDiscount:      0.8,
		FuzzyMinTokenLen:   3,
		Sharpness:          4.0,
		TopK:               0,
	}
}

var ErrInvalidParams = errors.New("invalid engine parameters")

func (p Params) Validate() error {
	switch {
	case p.PhraseBonus <= 0:
		return fmt.Errorf("%w: phrase bonus must be positive", ErrInvalidParams)
	case p.KeywordWeight <= 0:
		return fmt.Errorf("%w: keyword weight must be positive", ErrInvalidParams)
	case p.SentimentWeight < 0:
		return fmt.Errorf("%w: sentiment weight must not be negative", ErrInvalidParams)
	case p.SentimentThreshold < 0 || p.SentimentThreshold >= 1:
		return fmt.Errorf("%w: sentiment threshold must be in [0, 1)", ErrInvalidParams)
	case p.FuzzyCutoff <= 0 || p.FuzzyCutoff > 1:
		return fmt.Errorf("%w: fuzzy cutoff must be in (0, 1]", ErrInvalidParams)
	case p.FuzzyDiscount <= 0 || p.FuzzyDiscount >= 1:
		return fmt.Errorf("%w: fuzzy discount must be in (0, 1)", ErrInvalidParams)
	case p.FuzzyMinTokenLen < 1:
		return fmt.Errorf("%w: fuzzy minimum token length must be at least 1", ErrInvalidParams)
	case p.Sharpness <= 0:
		return fmt.Errorf("%w: sharpness must be positive", ErrInvalidParams)
	case p.TopK < 0:
		return fmt.Errorf("%w: top k must not be negative", ErrInvalidParams)
	}
	return nil
}

// Engine classifies text against an immutable lexicon. It holds no mutable
// state after New returns, so one Engine may serve concurrent callers as long
// as its collaborators are safe for concurrent use.
type Engine struct {
	lex    *Lexicon
	stems  *StemIndex
	params Params

	sentiment bridge
	stemmer   Stemmer
	closer    CloseMatcher

	vocab  []string
	owners map[string][]owner
}

type Option func(*Engine)

func WithCompoundScorer(s CompoundScorer) Option {
	return func(e *Engine) { e.sentiment.compound = s }
}

func WithPolarityScorer(s PolarityScorer) Option {
	return func(e *Engine) { e.sentiment.polarity = s }
}

func WithStemmer(s Stemmer) Option {
	return func(e *Engine) { e.stemmer = s }
}

// WithCloseMatcher enables the fuzzy pass. Without one, text with no exact
// evidence goes straight to the sentiment fallback.
func WithCloseMatcher(m CloseMatcher) Option {
	return func(e *Engine) { e.closer = m }
}

// New builds an engine. Missing sentiment scorers read as neutral and a
// missing stemmer leaves tokens unchanged.
func New(lex *Lexicon, params Params, opts ...Option) (*Engine, error) {
	if lex == nil {
		return nil, fmt.Errorf("%w: nil lexicon", ErrInvalidLexicon)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		lex:       lex,
		params:    params,
		sentiment: bridge{compound: neutralScorer{}, polarity: neutralScorer{}},
		stemmer:   identityStemmer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sentiment.compound == nil {
		e.sentiment.compound = neutralScorer{}
	}
	if e.sentiment.polarity == nil {
		e.sentiment.polarity = neutralScorer{}
	}
	if e.stemmer == nil {
		e.stemmer = identityStemmer{}
	}

	e.stems = BuildStemIndex(lex, e.stemmer)
	e.vocab = lex.Vocabulary()
	e.owners = buildOwners(lex)
	return e, nil
}

func (e *Engine) Lexicon() *Lexicon {
	return e.lex
}

func (e *Engine) Params() Params {
	return e.params
}

// Related lists the lexicon terms sharing a stem with word.
func (e *Engine) Related(word string) []TermRef {
	w := Normalize(word)
	if w == "" {
		return nil
	}
	return e.stems.Lookup(e.stemmer.Stem(w))
}

// AnalyzeBatch analyzes each text independently.
func (e *Engine) AnalyzeBatch(texts []string) []Verdict {
	out := make([]Verdict, len(texts))
	for i, text := range texts {
		out[i] = e.Analyze(text)
	}
	return out
}
