package emotion

import "encoding/json"

// Kind tags an evidence variant.
type Kind string

const (
	KindPhrase        Kind = "phrase"
	KindKeyword       Kind = "keyword"
	KindFuzzy         Kind = "fuzzy"
	KindSentimentBump Kind = "sentiment_bump"
	KindFallback      Kind = "fallback_sentiment"
)

// Evidence is one attributable contribution to an emotion's raw score.
// The set of implementations is closed: PhraseEvidence, KeywordEvidence,
// FuzzyEvidence, SentimentBumpEvidence and FallbackEvidence.
type Evidence interface {
	Kind() Kind
	Target() Emotion
	Amount() float64
	sealed()
}

type PhraseEvidence struct {
	Emotion      Emotion `json:"emotion"`
	Phrase       string  `json:"phrase"`
	Weight       float64 `json:"weight"`
	Count        int     `json:"count"`
	Contribution float64 `json:"contribution"`
	Positions    []int   `json:"positions"`
}

type KeywordEvidence struct {
	Emotion      Emotion `json:"emotion"`
	Keyword      string  `json:"keyword"`
	Weight       float64 `json:"weight"`
	Count        int     `json:"count"`
	AvgIntensity float64 `json:"avg_intensity"`
	Contribution float64 `json:"contribution"`
	Positions    []int   `json:"positions"`
}

type FuzzyEvidence struct {
	Emotion      Emotion `json:"emotion"`
	Token        string  `json:"token"`
	Position     int     `json:"position"`
	Keyword      string  `json:"keyword"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

type SentimentBumpEvidence struct {
	Emotion      Emotion `json:"emotion"`
	Compound     float64 `json:"compound"`
	Polarity     float64 `json:"polarity"`
	Contribution float64 `json:"contribution"`
}

// FallbackEvidence records the single fixed score assigned when no lexical
// evidence exists. Marker is set only when a marker route fired.
type FallbackEvidence struct {
	Emotion      Emotion `json:"emotion"`
	Compound     float64 `json:"compound"`
	Polarity     float64 `json:"polarity"`
	Marker       string  `json:"marker,omitempty"`
	Contribution float64 `json:"contribution"`
}

func (e PhraseEvidence) Kind() Kind        { return KindPhrase }
func (e KeywordEvidence) Kind() Kind       { return KindKeyword }
func (e FuzzyEvidence) Kind() Kind         { return KindFuzzy }
func (e SentimentBumpEvidence) Kind() Kind { return KindSentimentBump }
func (e FallbackEvidence) Kind() Kind      { return KindFallback }

func (e PhraseEvidence) Target() Emotion        { return e.Emotion }
func (e KeywordEvidence) Target() Emotion       { return e.Emotion }
func (e FuzzyEvidence) Target() Emotion         { return e.Emotion }
func (e SentimentBumpEvidence) Target() Emotion { return e.Emotion }
func (e FallbackEvidence) Target() Emotion      { return e.Emotion }

func (e PhraseEvidence) Amount() float64        { return e.Contribution }
func (e KeywordEvidence) Amount() float64       { return e.Contribution }
func (e FuzzyEvidence) Amount() float64         { return e.Contribution }
func (e SentimentBumpEvidence) Amount() float64 { return e.Contribution }
func (e FallbackEvidence) Amount() float64      { return e.Contribution }

func (PhraseEvidence) sealed()        {}
func (KeywordEvidence) sealed()       {}
func (FuzzyEvidence) sealed()         {}
func (SentimentBumpEvidence) sealed() {}
func (FallbackEvidence) sealed()      {}

func (e PhraseEvidence) MarshalJSON() ([]byte, error) {
	type alias PhraseEvidence
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindPhrase, alias(e)})
}

func (e KeywordEvidence) MarshalJSON() ([]byte, error) {
	type alias KeywordEvidence
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindKeyword, alias(e)})
}

func (e FuzzyEvidence) MarshalJSON() ([]byte, error) {
	type alias FuzzyEvidence
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindFuzzy, alias(e)})
}

func (e SentimentBumpEvidence) MarshalJSON() ([]byte, error) {
	type alias SentimentBumpEvidence
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindSentimentBump, alias(e)})
}

func (e FallbackEvidence) MarshalJSON() ([]byte, error) {
	type alias FallbackEvidence
	return json.Marshal(struct {
		Type Kind `json:"type"`
		alias
	}{KindFallback, alias(e)})
}

// IsLexical reports whether ev came from matching text against the lexicon.
func IsLexical(ev Evidence) bool {
	switch ev.(type) {
	case PhraseEvidence, KeywordEvidence, FuzzyEvidence:
		return true
	default:
		return false
	}
}
