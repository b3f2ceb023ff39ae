package history

import (
	"math"
	"time"

	"github.com/julienpequegnot/emolex/internal/emotion"
)

const (
	JourneyLength  = 10
	journeyPreview = 100
	ProgressWindow = 30 * 24 * time.Hour
	neutralBalance = 50.0
)

var (
	positiveEmotions = map[string]bool{
		string(emotion.Joy): true, string(emotion.Gratitude): true, string(emotion.Hope): true,
		string(emotion.Love): true, string(emotion.Awe): true, string(emotion.Relief): true,
	}
	negativeEmotions = map[string]bool{
		string(emotion.Sadness): true, string(emotion.Anger): true, string(emotion.Fear): true,
		string(emotion.Anxiety): true, string(emotion.Guilt): true, string(emotion.Shame): true,
		string(emotion.Frustration): true, string(emotion.Loneliness): true,
	}
)

type JourneyEntry struct {
	ID         string    `json:"id"`
	Emotion    string    `json:"emotion"`
	Confidence float64   `json:"confidence"`
	Preview    string    `json:"preview"`
	Sentiment  string    `json:"sentiment"`
	MoodScore  int       `json:"mood_score"`
	CreatedAt  time.Time `json:"created_at"`
}

// Journey returns the latest JourneyLength analyses, newest first, with the
// input shortened to a preview.
func (r *Repository) Journey() ([]JourneyEntry, error) {
	records, err := r.Recent(JourneyLength)
	if err != nil {
		return nil, err
	}

	entries := make([]JourneyEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, JourneyEntry{
			ID:         rec.ID,
			Emotion:    rec.Emotion,
			Confidence: rec.Confidence,
			Preview:    preview(rec.InputText),
			Sentiment:  rec.Sentiment,
			MoodScore:  int(math.Round(rec.Confidence * 10)),
			CreatedAt:  rec.CreatedAt,
		})
	}
	return entries, nil
}

type Progress struct {
	Since        time.Time `json:"since"`
	Total        int       `json:"total"`
	Positive     int       `json:"positive"`
	Negative     int       `json:"negative"`
	Other        int       `json:"other"`
	Balance      float64   `json:"balance"`
	Distribution []Count   `json:"distribution"`
}

// Progress summarizes the ProgressWindow before now. Balance is the share of
// positive analyses as a percentage, 50 when there are none.
func (r *Repository) Progress(now time.Time) (*Progress, error) {
	since := now.Add(-ProgressWindow)
	counts, err := r.Distribution(since)
	if err != nil {
		return nil, err
	}

	p := &Progress{Since: since.UTC(), Distribution: counts, Balance: neutralBalance}
	if p.Distribution == nil {
		p.Distribution = []Count{}
	}
	for _, c := range counts {
		p.Total += c.Count
		switch {
		case positiveEmotions[c.Emotion]:
			p.Positive += c.Count
		case negativeEmotions[c.Emotion]:
			p.Negative += c.Count
		default:
			p.Other += c.Count
		}
	}
	if p.Total > 0 {
		p.Balance = float64(p.Positive) * 100 / float64(p.Total)
	}
	return p, nil
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= journeyPreview {
		return s
	}
	return string(runes[:journeyPreview]) + "..."
}
