package emotion

// Stemmer reduces a token to its stem. It must be deterministic.
type Stemmer interface {
	Stem(word string) string
}

type identityStemmer struct{}

func (identityStemmer) Stem(w string) string { return w }

type TermKind string

const (
	TermPhrase  TermKind = "phrase"
	TermKeyword TermKind = "keyword"
)

// TermRef points at a lexicon term that produced a stem.
type TermRef struct {
	Emotion Emotion  `json:"emotion"`
	Term    string   `json:"term"`
	Kind    TermKind `json:"kind"`
}

// StemIndex maps stems to the lexicon terms they came from. It is built once
// and never mutated afterwards.
type StemIndex struct {
	byStem       map[string][]TermRef
	keywordStems map[string]string
}

func BuildStemIndex(lex *Lexicon, st Stemmer) *StemIndex {
	ix := &StemIndex{
		byStem:       make(map[string][]TermRef),
		keywordStems: make(map[string]string),
	}
	for _, e := range lex.entries {
		for _, k := range e.Keywords {
			kw := Normalize(k.Text)
			s, ok := ix.keywordStems[kw]
			if !ok {
				s = st.Stem(kw)
				ix.keywordStems[kw] = s
			}
			ix.byStem[s] = append(ix.byStem[s], TermRef{Emotion: e.Emotion, Term: k.Text, Kind: TermKeyword})
		}
		for _, p := range e.Phrases {
			for _, w := range Tokenize(p.Text) {
				s := st.Stem(w)
				ix.byStem[s] = append(ix.byStem[s], TermRef{Emotion: e.Emotion, Term: p.Text, Kind: TermPhrase})
			}
		}
	}
	return ix
}

func (ix *StemIndex) Lookup(stem string) []TermRef {
	return append([]TermRef(nil), ix.byStem[stem]...)
}

// KeywordStem returns the stem of a normalized keyword.
func (ix *StemIndex) KeywordStem(kw string) (string, bool) {
	s, ok := ix.keywordStems[kw]
	return s, ok
}

func (ix *StemIndex) Len() int {
	return len(ix.byStem)
}
