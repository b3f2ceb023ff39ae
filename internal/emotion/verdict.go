package emotion

// Reason explains which path produced a verdict.
type Reason string

const (
	ReasonLexical    Reason = "lexical"
	ReasonFuzzy      Reason = "fuzzy"
	ReasonFallback   Reason = "sentiment_fallback"
	ReasonEmptyInput Reason = "empty_input"
	ReasonNoSignal   Reason = "no_signal"
)

// Candidate is one entry of the normalized distribution.
type Candidate struct {
	Emotion Emotion `json:"emotion"`
	Score   float64 `json:"score"`
}

type RawScore struct {
	Emotion Emotion `json:"emotion"`
	Score   float64 `json:"score"`
}

// Details carries the inputs of the confidence estimate.
type Details struct {
	RawScores         []RawScore `json:"raw_scores"`
	TokenCoverage     float64    `json:"token_coverage"`
	SentimentStrength float64    `json:"sentiment_strength"`
	Uniqueness        float64    `json:"uniqueness"`
	LengthFactor      float64    `json:"length_factor"`
	TotalTokens       int        `json:"total_tokens"`
	MatchedTokens     int        `json:"matched_tokens"`
}

// Verdict is created fresh by every Analyze call and owned by the caller.
type Verdict struct {
	TopEmotion Emotion     `json:"top_emotion"`
	Confidence float64     `json:"confidence"`
	Candidates []Candidate `json:"candidates"`
	Evidence   []Evidence  `json:"evidence"`
	Sentiment  Reading     `json:"sentiment"`
	Details    Details     `json:"details"`
	Reason     Reason      `json:"reason"`
}

// Top returns the first n candidates.
func (v Verdict) Top(n int) []Candidate {
	if n < 0 || n >= len(v.Candidates) {
		return v.Candidates
	}
	return v.Candidates[:n]
}

// EvidenceFor returns the evidence attributed to emo, in the order it was
// recorded.
func (v Verdict) EvidenceFor(emo Emotion) []Evidence {
	var out []Evidence
	for _, ev := range v.Evidence {
		if ev.Target() == emo {
			out = append(out, ev)
		}
	}
	return out
}

func neutralVerdict(reason Reason) Verdict {
	return Verdict{
		TopEmotion: Neutral,
		Confidence: 0.5,
		Candidates: []Candidate{},
		Evidence:   []Evidence{},
		Reason:     reason,
	}
}
