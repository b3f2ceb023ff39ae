package emotion

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSentiment struct {
	compound     float64
	polarity     float64
	subjectivity float64
}

func (f fixedSentiment) Compound(string) float64 { return f.compound }

func (f fixedSentiment) PolaritySubjectivity(string) (float64, float64) {
	return f.polarity, f.subjectivity
}

// suffixStemmer strips a few English suffixes. Good enough to exercise the
// stem path without a real stemmer.
type suffixStemmer struct{}

func (suffixStemmer) Stem(w string) string {
	for _, suf := range []string{"ing", "ed", "s"} {
		if len(w) > len(suf)+2 && strings.HasSuffix(w, suf) {
			return strings.TrimSuffix(w, suf)
		}
	}
	return w
}

type mapMatcher struct {
	hits  map[string][]string
	calls []string
}

func (m *mapMatcher) Closest(word string, _ []string, _ float64) []string {
	m.calls = append(m.calls, word)
	return m.hits[word]
}

func newTestEngine(t *testing.T, s fixedSentiment, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithCompoundScorer(s), WithPolarityScorer(s)}, opts...)
	e, err := New(Builtin(), DefaultParams(), opts...)
	require.NoError(t, err)
	return e
}

func rawScore(v Verdict, emo Emotion) float64 {
	for _, r := range v.Details.RawScores {
		if r.Emotion == emo {
			return r.Score
		}
	}
	return 0
}

func sumScores(cands []Candidate) float64 {
	total := 0.0
	for _, c := range cands {
		total += c.Score
	}
	return total
}

func TestAnalyzeEmptyInput(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{compound: 0.9})

	for _, text := range []string{"", "   ", "\t\n", "!!! ... ?"} {
		v := e.Analyze(text)
		assert.Equal(t, Neutral, v.TopEmotion, "input %q", text)
		assert.Equal(t, 0.5, v.Confidence, "input %q", text)
		assert.Empty(t, v.Candidates, "input %q", text)
		assert.NotNil(t, v.Candidates)
		assert.Equal(t, ReasonEmptyInput, v.Reason)
	}
}

func TestAnalyzeAnxietyScenario(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{compound: -0.8, polarity: -0.3, subjectivity: 0.6})

	v := e.Analyze("I'm extremely anxious about my job and can't sleep at night, panic attacks keep coming.")

	assert.Equal(t, Anxiety, v.TopEmotion)
	assert.Greater(t, v.Confidence, 0.5)
	require.GreaterOrEqual(t, len(v.Candidates), 2)
	assert.Greater(t, v.Candidates[0].Score, v.Candidates[1].Score)
	assert.Equal(t, ReasonLexical, v.Reason)
	assert.InDelta(t, 1.0, sumScores(v.Candidates), 1e-9)
}

func TestAnalyzeJoyScenario(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{compound: 0.8, polarity: 0.6, subjectivity: 0.8})

	v := e.Analyze("I am so happy today — this achievement made my day and I feel elated!")

	require.Equal(t, Joy, v.TopEmotion)

	var phrases []string
	keywords := 0
	for _, ev := range v.EvidenceFor(Joy) {
		switch x := ev.(type) {
		case PhraseEvidence:
			phrases = append(phrases, x.Phrase)
		case KeywordEvidence:
			keywords++
		}
	}
	assert.Contains(t, phrases, "made my day")
	assert.GreaterOrEqual(t, keywords, 2)
}

func TestSingleKeywordWins(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{})

	tests := []struct {
		text string
		want Emotion
	}{
		{"furious", Anger},
		{"grateful", Gratitude},
		{"bored", Boredom},
		{"nostalgic", Nostalgia},
		{"scared", Fear},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v := e.Analyze(tt.text)
			assert.Equal(t, tt.want, v.TopEmotion)
			assert.Equal(t, ReasonLexical, v.Reason)
		})
	}
}

func TestIntensityModifierRaisesKeyword(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{})

	plain := rawScore(e.Analyze("anxious"), Anxiety)
	amplified := rawScore(e.Analyze("very anxious"), Anxiety)
	damped := rawScore(e.Analyze("slightly anxious"), Anxiety)

	assert.InDelta(t, 1.9, plain, 1e-9)
	assert.InDelta(t, 1.9*1.6, amplified, 1e-9)
	assert.Greater(t, amplified, plain)
	assert.Less(t, damped, plain)
}

func TestKeywordIntensityIsAveraged(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{})

	v := e.Analyze("extremely sad and sad")
	var kw KeywordEvidence
	for _, ev := range v.EvidenceFor(Sadness) {
		if k, ok := ev.(KeywordEvidence); ok && k.Keyword == "sad" {
			kw = k
		}
	}
	assert.Equal(t, 2, kw.Count)
	assert.InDelta(t, 1.5, kw.AvgIntensity, 1e-9)
	assert.InDelta(t, 1.7*2*1.5, kw.Contribution, 1e-9)
}

func tinyLexicon(t *testing.T, entries ...Entry) *Lexicon {
	t.Helper()
	fb := Fallback{
		PositiveCompound: 0.3, PositivePolarity: 0.35, Positive: entries[0].Emotion,
		NegativeCompound: -0.3, NegativePolarity: -0.35,
		DefaultNegative: entries[0].Emotion, DefaultNegativeScore: 1.2,
		Neutral: entries[0].Emotion, NeutralScore: 0.7,
	}
	lex, err := NewLexicon(entries, BuiltinModifiers(), fb)
	require.NoError(t, err)
	return lex
}

func TestPhraseOutweighsSeparateKeywords(t *testing.T) {
	phraseLex := tinyLexicon(t, Entry{Emotion: "x", Phrases: []Term{{Text: "panic attack", Weight: 1}}})
	keywordLex := tinyLexicon(t, Entry{Emotion: "x", Keywords: []Term{{Text: "panic", Weight: 0.5}, {Text: "attack", Weight: 0.5}}})

	pe, err := New(phraseLex, DefaultParams())
	require.NoError(t, err)
	ke, err := New(keywordLex, DefaultParams())
	require.NoError(t, err)

	text := "another panic attack"
	assert.Greater(t, rawScore(pe.Analyze(text), "x"), rawScore(ke.Analyze(text), "x"))
	assert.InDelta(t, 1.6, rawScore(pe.Analyze(text), "x"), 1e-9)
}

func TestPhraseOccurrencesCountIndependently(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{})

	once := rawScore(e.Analyze("made my day"), Joy)
	twice := rawScore(e.Analyze("made my day, really made my day"), Joy)
	assert.InDelta(t, 2*once, twice, 1e-9)
}

func TestStemMatching(t *testing.T) {
	withStem := newTestEngine(t, fixedSentiment{}, WithStemmer(suffixStemmer{}))
	without := newTestEngine(t, fixedSentiment{})

	v := withStem.Analyze("so boring")
	assert.Equal(t, Boredom, v.TopEmotion)
	assert.InDelta(t, 1.6*1.5, rawScore(v, Boredom), 1e-9)

	assert.Equal(t, ReasonFallback, without.Analyze("so boring").Reason)
}

func TestSentimentFallbackBuiltin(t *testing.T) {
	tests := []struct {
		name string
		s    fixedSentiment
		want Emotion
	}{
		{"positive compound", fixedSentiment{compound: 0.6, polarity: 0.5}, Joy},
		{"positive polarity only", fixedSentiment{compound: 0.1, polarity: 0.5}, Joy},
		{"negative without markers", fixedSentiment{compound: -0.7}, Sadness},
		{"neutral", fixedSentiment{compound: 0.1, polarity: 0.1}, Confusion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, tt.s)
			v := e.Analyze("the sunshine on the porch this morning")
			assert.Equal(t, tt.want, v.TopEmotion)
			assert.Equal(t, ReasonFallback, v.Reason)

			var fallbacks int
			for _, ev := range v.Evidence {
				if ev.Kind() == KindFallback {
					fallbacks++
				}
			}
			assert.Equal(t, 1, fallbacks)
		})
	}
}

func markerLexicon(t *testing.T) *Lexicon {
	t.Helper()
	lex, err := NewLexicon([]Entry{
		{Emotion: Joy, Valence: 1, Keywords: []Term{{Text: "sunshine", Weight: 1}}},
		{Emotion: Sadness, Valence: -1, Keywords: []Term{{Text: "rain", Weight: 1}}},
		{Emotion: Anxiety, Valence: -1, Keywords: []Term{{Text: "deadline", Weight: 1}}},
		{Emotion: Anger, Valence: -1, Keywords: []Term{{Text: "traffic", Weight: 1}}},
		{Emotion: Confusion, Keywords: []Term{{Text: "maze", Weight: 1}}},
	}, BuiltinModifiers(), BuiltinFallback())
	require.NoError(t, err)
	return lex
}

func TestNegativeFallbackMarkers(t *testing.T) {
	s := fixedSentiment{compound: -0.7}
	e, err := New(markerLexicon(t), DefaultParams(), WithCompoundScorer(s), WithPolarityScorer(s))
	require.NoError(t, err)

	tests := []struct {
		text   string
		want   Emotion
		marker string
	}{
		{"another panic at night", Anxiety, "panic"},
		{"I just can't sleep", Anxiety, "can't sleep"},
		{"I was angry at night", Anger, "angry"},
		{"grey evening", Sadness, ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v := e.Analyze(tt.text)
			assert.Equal(t, tt.want, v.TopEmotion)

			var fb FallbackEvidence
			for _, ev := range v.Evidence {
				if f, ok := ev.(FallbackEvidence); ok {
					fb = f
				}
			}
			assert.Equal(t, tt.marker, fb.Marker)
		})
	}
}

func TestFallbackRunsAlongsideSentimentBumps(t *testing.T) {
	s := fixedSentiment{compound: -0.7}
	e, err := New(markerLexicon(t), DefaultParams(), WithCompoundScorer(s), WithPolarityScorer(s))
	require.NoError(t, err)

	v := e.Analyze("another panic at night")

	bumps, fallbacks := 0, 0
	for _, ev := range v.Evidence {
		switch ev.(type) {
		case SentimentBumpEvidence:
			bumps++
		case FallbackEvidence:
			fallbacks++
		}
	}
	assert.Equal(t, 3, bumps, "one bump per negative emotion")
	assert.Equal(t, 1, fallbacks)
	assert.Equal(t, ReasonFallback, v.Reason)
	assert.Equal(t, Anxiety, v.TopEmotion)
	assert.Greater(t, rawScore(v, Anxiety), rawScore(v, Sadness))
}

func TestSharpnessSeparatesLeader(t *testing.T) {
	s := fixedSentiment{compound: -0.8, polarity: -0.3, subjectivity: 0.6}
	text := "I'm extremely anxious about my job and can't sleep at night, panic attacks keep coming."

	analyze := func(sharpness float64) Verdict {
		p := DefaultParams()
		p.Sharpness = sharpness
		e, err := New(Builtin(), p, WithCompoundScorer(s), WithPolarityScorer(s))
		require.NoError(t, err)
		return e.Analyze(text)
	}

	flat, sharp := analyze(1), analyze(DefaultParams().Sharpness)
	assert.Equal(t, Anxiety, flat.TopEmotion)
	assert.Equal(t, Anxiety, sharp.TopEmotion)
	assert.Greater(t, sharp.Candidates[0].Score, flat.Candidates[0].Score)
	assert.Less(t, flat.Confidence, 0.5)
	assert.Greater(t, sharp.Confidence, 0.5)
}

func TestFuzzyRunsOnlyWithoutExactEvidence(t *testing.T) {
	m := &mapMatcher{hits: map[string][]string{"anxius": {"anxious"}}}
	e := newTestEngine(t, fixedSentiment{}, WithCloseMatcher(m))

	v := e.Analyze("I'm feeling anxius")
	assert.Equal(t, Anxiety, v.TopEmotion)
	assert.Equal(t, ReasonFuzzy, v.Reason)
	assert.InDelta(t, 1.9*0.8, rawScore(v, Anxiety), 1e-9)
	assert.Equal(t, 1, v.Details.MatchedTokens)

	m.calls = nil
	e.Analyze("I am sad")
	assert.Empty(t, m.calls)
}

func TestFuzzySkipsShortTokens(t *testing.T) {
	m := &mapMatcher{}
	e := newTestEngine(t, fixedSentiment{}, WithCloseMatcher(m))

	e.Analyze("ok go xyz")
	assert.Equal(t, []string{"xyz"}, m.calls)
}

// Fuzzy hits are flat-weighted: a borderline match counts the same as a
// near-exact one.
func TestFuzzyHitsAreFlatWeighted(t *testing.T) {
	m := &mapMatcher{hits: map[string][]string{"panik": {"panic"}}}
	e := newTestEngine(t, fixedSentiment{}, WithCloseMatcher(m))

	v := e.Analyze("panik")
	assert.InDelta(t, 2.4*0.8, rawScore(v, Anxiety), 1e-9)
	assert.InDelta(t, 2.3*0.8, rawScore(v, Fear), 1e-9)
}

func TestTieBreakFollowsLexiconOrder(t *testing.T) {
	lex := tinyLexicon(t,
		Entry{Emotion: "second", Keywords: []Term{{Text: "storm", Weight: 1}}},
		Entry{Emotion: "first", Keywords: []Term{{Text: "storm", Weight: 1}}},
	)
	e, err := New(lex, DefaultParams())
	require.NoError(t, err)

	v := e.Analyze("storm")
	require.Len(t, v.Candidates, 2)
	assert.Equal(t, v.Candidates[0].Score, v.Candidates[1].Score)
	assert.Equal(t, Emotion("second"), v.Candidates[0].Emotion)
	assert.Equal(t, Emotion("first"), v.Candidates[1].Emotion)
}

func TestTopKKeepsAtLeastFour(t *testing.T) {
	params := DefaultParams()
	params.TopK = 1
	s := fixedSentiment{compound: -0.8}
	e, err := New(Builtin(), params, WithCompoundScorer(s), WithPolarityScorer(s))
	require.NoError(t, err)

	v := e.Analyze("I am sad")
	assert.Len(t, v.Candidates, 4)
	assert.Equal(t, Sadness, v.TopEmotion)
}

func TestCoverageGrowsWithMatches(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{})

	one := e.Analyze("anxious cat dog bird")
	two := e.Analyze("anxious worried dog bird")

	assert.InDelta(t, 0.25, one.Details.TokenCoverage, 1e-9)
	assert.InDelta(t, 0.5, two.Details.TokenCoverage, 1e-9)
	assert.Greater(t, two.Details.TokenCoverage, one.Details.TokenCoverage)
}

func TestVerdictInvariants(t *testing.T) {
	inputs := []string{
		"I am so happy today",
		"I hate everything, I'm furious and sad",
		"thank you so much, I am truly grateful",
		"hmm",
		"Remember when we were kids? Back in the day everything was simple.",
		strings.Repeat("panic ", 60),
	}
	readings := []fixedSentiment{{}, {compound: 0.9, polarity: 0.9}, {compound: -0.95, polarity: -1}}

	for _, s := range readings {
		e := newTestEngine(t, s)
		for _, text := range inputs {
			v := e.Analyze(text)
			assert.GreaterOrEqual(t, v.Confidence, 0.0)
			assert.LessOrEqual(t, v.Confidence, 0.99)
			if len(v.Candidates) > 0 {
				assert.InDelta(t, 1.0, sumScores(v.Candidates), 1e-9)
				for i := 1; i < len(v.Candidates); i++ {
					assert.GreaterOrEqual(t, v.Candidates[i-1].Score, v.Candidates[i].Score)
				}
			}
			assert.Equal(t, v, e.Analyze(text), "analysis of %q is not repeatable", text)
		}
	}
}

func TestConfidenceFormula(t *testing.T) {
	d := Details{TokenCoverage: 0.5, SentimentStrength: 0.4, Uniqueness: 1, LengthFactor: 0.2}
	want := 0.55*0.8 + 0.18*0.5 + 0.15*0.4 + 0.07*1 + 0.05*0.2
	assert.InDelta(t, want, confidence(0.8, d), 1e-12)

	full := Details{TokenCoverage: 1, SentimentStrength: 1, Uniqueness: 1, LengthFactor: 1}
	assert.Equal(t, 0.99, confidence(1, full))
}

func TestAnalyzeBatchIsIndependent(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{})
	texts := []string{"furious", "", "grateful"}

	got := e.AnalyzeBatch(texts)
	require.Len(t, got, 3)
	for i, text := range texts {
		assert.Equal(t, e.Analyze(text), got[i])
	}
}

func TestEvidenceJSONCarriesType(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{compound: -0.6})
	v := e.Analyze("I am heartbroken and sad")

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded struct {
		Evidence []map[string]any `json:"evidence"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	kinds := map[string]bool{}
	for _, ev := range decoded.Evidence {
		kinds[ev["type"].(string)] = true
	}
	assert.True(t, kinds["phrase"])
	assert.True(t, kinds["keyword"])
	assert.True(t, kinds["sentiment_bump"])
}

func TestSentimentBumpNeedsThreshold(t *testing.T) {
	weak := newTestEngine(t, fixedSentiment{compound: 0.25})
	strong := newTestEngine(t, fixedSentiment{compound: 0.5, polarity: 0.4})

	assert.InDelta(t, 1.6, rawScore(weak.Analyze("joy"), Joy), 1e-9)
	bump := 0.5 * 0.2 * (1 + 0.5*0.4)
	assert.InDelta(t, 1.6+bump, rawScore(strong.Analyze("joy"), Joy), 1e-9)
	assert.InDelta(t, bump, rawScore(strong.Analyze("joy"), Hope), 1e-9)
}

func TestSentimentIsClamped(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{compound: 3, polarity: -4, subjectivity: math.NaN()})
	v := e.Analyze("happy")
	assert.Equal(t, 1.0, v.Sentiment.Compound)
	assert.Equal(t, -1.0, v.Sentiment.Polarity)
	assert.Equal(t, 0.0, v.Sentiment.Subjectivity)
}

func TestNewRejectsBadParams(t *testing.T) {
	p := DefaultParams()
	p.FuzzyCutoff = 1.5
	_, err := New(Builtin(), p)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = New(nil, DefaultParams())
	assert.ErrorIs(t, err, ErrInvalidLexicon)
}

func TestRelated(t *testing.T) {
	e := newTestEngine(t, fixedSentiment{})

	refs := e.Related("Panic")
	assert.Contains(t, refs, TermRef{Emotion: Anxiety, Term: "panic", Kind: TermKeyword})
	assert.Contains(t, refs, TermRef{Emotion: Anxiety, Term: "panic attack", Kind: TermPhrase})
	assert.Contains(t, refs, TermRef{Emotion: Fear, Term: "panic", Kind: TermKeyword})
	assert.Empty(t, e.Related("   "))
}
