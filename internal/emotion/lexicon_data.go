package emotion

const (
	Joy         Emotion = "joy"
	Sadness     Emotion = "sadness"
	Anxiety     Emotion = "anxiety"
	Anger       Emotion = "anger"
	Confusion   Emotion = "confusion"
	Fear        Emotion = "fear"
	Gratitude   Emotion = "gratitude"
	Love        Emotion = "love"
	Hope        Emotion = "hope"
	Guilt       Emotion = "guilt"
	Shame       Emotion = "shame"
	Boredom     Emotion = "boredom"
	Curiosity   Emotion = "curiosity"
	Awe         Emotion = "awe"
	Jealousy    Emotion = "jealousy"
	Relief      Emotion = "relief"
	Nostalgia   Emotion = "nostalgia"
	Frustration Emotion = "frustration"
	Loneliness  Emotion = "loneliness"
)

func term(text string, w float64) Term { return Term{Text: text, Weight: w} }

// BuiltinEntries returns the default emotion table.
func BuiltinEntries() []Entry {
	return []Entry{
		{Emotion: Joy, Valence: 1,
			Phrases: []Term{term("i feel good", 2.0), term("made my day", 2.2), term("so happy", 1.8), term("very happy", 1.9)},
			Keywords: []Term{term("happy", 1.8), term("joy", 1.6), term("elated", 1.9), term("ecstatic", 2.0), term("delighted", 1.6),
				term("bliss", 1.7), term("thrilled", 1.8), term("grinning", 1.2), term("cheerful", 1.2), term("content", 1.1),
				term("satisfied", 1.0), term("relieved", 1.2), term("win", 1.0), term("winning", 1.0)}},
		{Emotion: Sadness, Valence: -1,
			Phrases: []Term{term("i am heartbroken", 2.3), term("feeling down", 1.7), term("can't cope", 2.0), term("i miss you", 1.8)},
			Keywords: []Term{term("sad", 1.7), term("unhappy", 1.5), term("lonely", 1.6), term("depressed", 2.2), term("grief", 2.0),
				term("sorrow", 1.8), term("hopeless", 1.9), term("tearful", 1.6), term("mournful", 1.4)}},
		{Emotion: Anxiety, Valence: -1,
			Phrases: []Term{term("i am anxious about", 2.2), term("can't sleep", 2.2), term("panic attack", 2.7), term("i'm worried about", 2.0)},
			Keywords: []Term{term("anxious", 1.9), term("anxiety", 2.1), term("worried", 1.7), term("panic", 2.4), term("nervous", 1.5),
				term("stressed", 1.7), term("overthinking", 1.8), term("restless", 1.3), term("dread", 1.6)}},
		{Emotion: Anger, Valence: -1,
			Phrases: []Term{term("i am furious", 2.5), term("i'm so mad", 2.0), term("i want to hurt", 3.0), term("i can't forgive", 2.0)},
			Keywords: []Term{term("angry", 2.0), term("rage", 2.5), term("furious", 2.5), term("irate", 2.1), term("resentful", 1.8),
				term("hostile", 1.7), term("annoyed", 1.1), term("frustrated", 1.5)}},
		{Emotion: Confusion, Valence: 0,
			Phrases: []Term{term("i don't know what to do", 2.0), term("which way to go", 1.9), term("help me choose", 2.1), term("i'm not sure", 1.5)},
			Keywords: []Term{term("confused", 1.8), term("uncertain", 1.5), term("undecided", 1.3), term("puzzled", 1.2), term("lost", 1.3),
				term("doubt", 1.3)}},
		{Emotion: Fear, Valence: -1,
			Phrases:  []Term{term("i'm really scared", 2.2), term("i am terrified", 2.5), term("i'm afraid of", 2.0)},
			Keywords: []Term{term("afraid", 1.8), term("scared", 1.8), term("fear", 1.9), term("phobia", 1.8), term("panic", 2.3)}},
		{Emotion: Gratitude, Valence: 1,
			Phrases:  []Term{term("thank you so much", 2.2), term("i am truly grateful", 2.0)},
			Keywords: []Term{term("grateful", 1.8), term("thankful", 1.7), term("appreciative", 1.4), term("blessed", 1.5)}},
		{Emotion: Love, Valence: 1,
			Phrases:  []Term{term("i love you", 2.6), term("i miss you dearly", 2.2), term("i care deeply", 2.0)},
			Keywords: []Term{term("love", 2.1), term("adore", 1.9), term("cherish", 1.7), term("affection", 1.5), term("devotion", 1.6)}},
		{Emotion: Hope, Valence: 1,
			Phrases:  []Term{term("i hope so", 1.6), term("i am hopeful", 1.8), term("fingers crossed", 1.5)},
			Keywords: []Term{term("hope", 1.4), term("hopeful", 1.3), term("optimistic", 1.2), term("faith", 1.5), term("trust", 1.2)}},
		{Emotion: Guilt, Valence: -1,
			Phrases:  []Term{term("i feel guilty", 2.2), term("i regret doing", 2.0)},
			Keywords: []Term{term("guilty", 2.0), term("regret", 1.8), term("remorse", 1.9), term("sorry", 1.6)}},
		{Emotion: Shame, Valence: -1,
			Phrases:  []Term{term("i am ashamed", 2.2), term("so embarrassed", 1.8)},
			Keywords: []Term{term("ashamed", 1.9), term("embarrassed", 1.7), term("humiliated", 1.8)}},
		{Emotion: Boredom,
			Phrases:  []Term{term("i am bored", 1.8), term("this is boring", 1.6)},
			Keywords: []Term{term("bored", 1.6), term("meh", 1.2), term("uninterested", 1.4), term("apathetic", 1.5)}},
		{Emotion: Curiosity,
			Phrases:  []Term{term("i wonder", 1.6), term("tell me more", 1.8), term("what is", 1.3)},
			Keywords: []Term{term("curious", 1.6), term("intrigued", 1.4), term("interested", 1.3), term("inquisitive", 1.5)}},
		{Emotion: Awe, Valence: 1,
			Phrases:  []Term{term("i am in awe", 2.0), term("this is amazing", 1.8)},
			Keywords: []Term{term("awe", 1.9), term("amazed", 1.7), term("astonished", 1.6), term("wonder", 1.5)}},
		{Emotion: Jealousy,
			Phrases:  []Term{term("i am jealous", 1.9), term("i envy", 1.8)},
			Keywords: []Term{term("jealous", 1.8), term("envy", 1.7), term("resentful", 1.5)}},
		{Emotion: Relief,
			Phrases:  []Term{term("what a relief", 2.0), term("i am relieved", 1.9)},
			Keywords: []Term{term("relief", 1.8), term("relieved", 1.7), term("phew", 1.2)}},
		{Emotion: Nostalgia,
			Phrases:  []Term{term("remember when", 1.8), term("back in the day", 1.6)},
			Keywords: []Term{term("nostalgia", 1.6), term("nostalgic", 1.6), term("memories", 1.2)}},
		{Emotion: Frustration, Valence: -1,
			Phrases:  []Term{term("i am frustrated", 2.0), term("this is infuriating", 2.1)},
			Keywords: []Term{term("frustrated", 1.8), term("annoyed", 1.3), term("blocked", 1.4)}},
		{Emotion: Loneliness,
			Phrases:  []Term{term("i feel alone", 1.9), term("no one cares", 2.0)},
			Keywords: []Term{term("alone", 1.6), term("isolated", 1.7), term("lonely", 1.9)}},
	}
}

// BuiltinModifiers are single-token intensity multipliers.
func BuiltinModifiers() map[string]float64 {
	return map[string]float64{
		"extremely":  2.0,
		"incredibly": 1.9,
		"very":       1.6,
		"so":         1.5,
		"really":     1.4,
		"quite":      1.25,
		"somewhat":   0.85,
		"slightly":   0.7,
		"barely":     0.6,
		"totally":    1.6,
		"utterly":    1.8,
	}
}

func BuiltinFallback() Fallback {
	return Fallback{
		PositiveCompound: 0.3,
		PositivePolarity: 0.35,
		Positive:         Joy,
		NegativeCompound: -0.3,
		NegativePolarity: -0.35,
		Negative: []Route{
			{Emotion: Anxiety, Markers: []string{"panic", "can't sleep", "panic attack"}, Score: 1.3},
			{Emotion: Anger, Markers: []string{"angry", "furious", "rage"}, Score: 1.3},
		},
		DefaultNegative:      Sadness,
		DefaultNegativeScore: 1.2,
		Neutral:              Confusion,
		NeutralScore:         0.7,
	}
}

// Builtin returns the default lexicon. The table is static, so a
// construction error is a programming mistake.
func Builtin() *Lexicon {
	lex, err := NewLexicon(BuiltinEntries(), BuiltinModifiers(), BuiltinFallback())
	if err != nil {
		panic(err)
	}
	return lex
}
