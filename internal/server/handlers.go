package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/julienpequegnot/emolex/internal/emotion"
	"github.com/julienpequegnot/emolex/internal/history"
	"github.com/julienpequegnot/emolex/internal/ui"
	"github.com/julienpequegnot/emolex/internal/verse"
)

const (
	maxBodyBytes = 1 << 20
	topEmotions  = 4
	versePreview = 120
)

type sentimentView struct {
	Label        string  `json:"label"`
	Compound     float64 `json:"compound"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

func newSentimentView(r emotion.Reading) sentimentView {
	return sentimentView{
		Label:        r.Label(),
		Compound:     r.Compound,
		Polarity:     r.Polarity,
		Subjectivity: r.Subjectivity,
	}
}

type summary struct {
	Emotion     emotion.Emotion     `json:"emotion"`
	Confidence  float64             `json:"confidence"`
	TopEmotions []emotion.Candidate `json:"top_emotions"`
	Sentiment   sentimentView       `json:"sentiment"`
	Reason      emotion.Reason      `json:"reason"`
	Animation   ui.Animation        `json:"animation"`
}

func newSummary(v emotion.Verdict) summary {
	return summary{
		Emotion:     v.TopEmotion,
		Confidence:  v.Confidence,
		TopEmotions: v.Top(topEmotions),
		Sentiment:   newSentimentView(v.Sentiment),
		Reason:      v.Reason,
		Animation:   ui.AnimationFor(string(v.TopEmotion)),
	}
}

type AnalyzeResponse struct {
	ID string `json:"id,omitempty"`
	summary
	Verse     verse.Verse        `json:"verse"`
	Evidence  []emotion.Evidence `json:"evidence"`
	Details   emotion.Details    `json:"details"`
	Timestamp time.Time          `json:"timestamp"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	History   bool      `json:"history"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   s.version,
		History:   s.store != nil,
		Timestamp: s.now(),
	})
}

func (s *Server) analyzeEmotion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text input is required")
		return
	}

	v := s.engine.Analyze(req.Text)
	resp := AnalyzeResponse{
		summary:   newSummary(v),
		Verse:     s.verses.For(string(v.TopEmotion), s.pick(1<<16)),
		Evidence:  v.Evidence,
		Details:   v.Details,
		Timestamp: s.now(),
	}

	if s.store != nil {
		rec := history.FromVerdict(req.Text, v)
		rec.CreatedAt = resp.Timestamp
		saved, err := s.store.Add(rec)
		if err != nil {
			s.logger.WarnContext(r.Context(), "failed to save analysis", slog.Any("error", err))
		} else {
			resp.ID = saved.ID
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) analyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Texts []string `json:"texts"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	switch {
	case len(req.Texts) == 0:
		writeError(w, http.StatusBadRequest, "texts are required")
		return
	case len(req.Texts) > s.maxBatch:
		writeError(w, http.StatusRequestEntityTooLarge, "too many texts in one batch")
		return
	}

	verdicts := s.engine.AnalyzeBatch(req.Texts)
	results := make([]summary, len(verdicts))
	for i, v := range verdicts {
		results[i] = newSummary(v)
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

type emotionInfo struct {
	Emotion   emotion.Emotion `json:"emotion"`
	Valence   int             `json:"valence"`
	Phrases   int             `json:"phrases"`
	Keywords  int             `json:"keywords"`
	Animation ui.Animation    `json:"animation"`
}

func (s *Server) emotions(w http.ResponseWriter, r *http.Request) {
	entries := s.engine.Lexicon().Entries()
	out := make([]emotionInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, emotionInfo{
			Emotion:   e.Emotion,
			Valence:   e.Valence,
			Phrases:   len(e.Phrases),
			Keywords:  len(e.Keywords),
			Animation: ui.AnimationFor(string(e.Emotion)),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"emotions": out})
}

type journeyEntry struct {
	history.JourneyEntry
	VersePreview string `json:"verse_preview"`
}

func (s *Server) journey(w http.ResponseWriter, r *http.Request) {
	out := []journeyEntry{}
	if s.store != nil {
		entries, err := s.store.Journey()
		if err != nil {
			s.internalError(w, r, err)
			return
		}
		for _, e := range entries {
			v := s.verses.For(e.Emotion, s.pick(1<<16))
			out = append(out, journeyEntry{JourneyEntry: e, VersePreview: ui.Truncate(v.Translation, versePreview)})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": out})
}

func (s *Server) userProgress(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "history is disabled")
		return
	}
	p, err := s.store.Progress(s.now())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	p.Balance = math.Round(p.Balance*10) / 10
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) dailyQuote(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	v, ok := s.verses.Daily(now)
	if !ok {
		writeError(w, http.StatusNotFound, "no daily verse")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"verse": v,
		"date":  now.Format("2006-01-02"),
	})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// decodeBody reads a JSON body into v, answering 400/413 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
