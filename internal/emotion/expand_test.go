package emotion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	syns map[string][]string
	errs map[string]error
}

func (s staticSource) Synonyms(ctx context.Context, word string) ([]string, error) {
	if err := s.errs[word]; err != nil {
		return nil, err
	}
	return s.syns[word], nil
}

type slowSource struct{}

func (slowSource) Synonyms(ctx context.Context, word string) ([]string, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func calmLexicon(t *testing.T) *Lexicon {
	return tinyLexicon(t, Entry{
		Emotion:  "calm",
		Phrases:  []Term{{Text: "at peace", Weight: 2}},
		Keywords: []Term{{Text: "calm", Weight: 1}, {Text: "quiet", Weight: 2}},
	})
}

func keywordMap(lex *Lexicon, emo Emotion) map[string]float64 {
	entry, _ := lex.Entry(emo)
	out := map[string]float64{}
	for _, k := range entry.Keywords {
		out[k.Text] = k.Weight
	}
	return out
}

func TestExpandAddsFilteredSynonyms(t *testing.T) {
	src := staticSource{syns: map[string][]string{
		"calm":  {"calm", "Serene", "tranquil", "placid"},
		"quiet": {"at_peace", "quiet_down", "x", "silent", "hushed", "serene"},
	}}

	lex := calmLexicon(t)
	out := Expand(context.Background(), lex, src, DefaultExpandOptions())

	got := keywordMap(out, "calm")
	assert.Equal(t, map[string]float64{
		"calm": 1, "quiet": 2,
		"serene": 0.85, "tranquil": 0.85,
		"silent": 1.7, "hushed": 1.7,
	}, got)

	entry, _ := out.Entry("calm")
	var order []string
	for _, k := range entry.Keywords {
		order = append(order, k.Text)
	}
	assert.Equal(t, []string{"calm", "quiet", "serene", "tranquil", "silent", "hushed"}, order)

	assert.Len(t, keywordMap(lex, "calm"), 2, "base lexicon must stay untouched")
}

func TestExpandKeepsHighestWeight(t *testing.T) {
	src := staticSource{syns: map[string][]string{
		"calm":  {"serene"},
		"quiet": {"serene"},
	}}

	out := Expand(context.Background(), calmLexicon(t), src, DefaultExpandOptions())
	assert.Equal(t, 1.7, keywordMap(out, "calm")["serene"])
}

func TestExpandNeverOverwritesBaseKeywords(t *testing.T) {
	src := staticSource{syns: map[string][]string{"calm": {"quiet", "at peace"}}}

	out := Expand(context.Background(), calmLexicon(t), src, DefaultExpandOptions())
	assert.Equal(t, map[string]float64{"calm": 1, "quiet": 2}, keywordMap(out, "calm"))
}

func TestExpandSwallowsSourceErrors(t *testing.T) {
	src := staticSource{
		syns: map[string][]string{"quiet": {"silent"}},
		errs: map[string]error{"calm": errors.New("lookup failed")},
	}

	out := Expand(context.Background(), calmLexicon(t), src, DefaultExpandOptions())
	assert.Equal(t, map[string]float64{"calm": 1, "quiet": 2, "silent": 1.7}, keywordMap(out, "calm"))
}

func TestExpandTimesOutLookups(t *testing.T) {
	opts := DefaultExpandOptions()
	opts.Timeout = 5 * time.Millisecond

	lex := calmLexicon(t)
	out := Expand(context.Background(), lex, slowSource{}, opts)
	assert.Equal(t, keywordMap(lex, "calm"), keywordMap(out, "calm"))
}

func TestExpandWithoutSource(t *testing.T) {
	lex := calmLexicon(t)
	assert.Same(t, lex, Expand(context.Background(), lex, nil, DefaultExpandOptions()))
}

func TestExpandedLexiconFeedsEngine(t *testing.T) {
	src := staticSource{syns: map[string][]string{"calm": {"serene"}}}
	lex := Expand(context.Background(), calmLexicon(t), src, DefaultExpandOptions())

	e, err := New(lex, DefaultParams())
	require.NoError(t, err)

	v := e.Analyze("serene")
	assert.Equal(t, Emotion("calm"), v.TopEmotion)
	assert.InDelta(t, 0.85, rawScore(v, "calm"), 1e-9)
}
