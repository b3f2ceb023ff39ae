// Package trends ranks emotions by how often and how recently they appear in
// the analysis history.
package trends

import (
	"sort"
	"time"

	"github.com/julienpequegnot/emolex/internal/history"
)

type Trend struct {
	Emotion       string   `json:"emotion"`
	Count         int      `json:"count"`
	Recent        int      `json:"recent"`
	AvgConfidence float64  `json:"avg_confidence"`
	Score         float64  `json:"score"`
	RecentIDs     []string `json:"recent_ids,omitempty"`
}

type Analyzer struct {
	entries []entry
}

type entry struct {
	id         string
	emotion    string
	confidence float64
	at         time.Time
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Add(id, emotion string, confidence float64, at time.Time) {
	a.entries = append(a.entries, entry{id: id, emotion: emotion, confidence: confidence, at: at})
}

func (a *Analyzer) AddRecords(records []history.Record) {
	for _, r := range records {
		a.Add(r.ID, r.Emotion, r.Confidence, r.CreatedAt)
	}
}

// Trends scores each emotion seen as (recent*2 + total) * recencyBoost, where
// recent counts analyses in the last days before now and recencyBoost grows
// toward 2 the closer the latest analysis is to now. Ties break by name.
func (a *Analyzer) Trends(now time.Time, days, limit int) []Trend {
	cutoff := now.AddDate(0, 0, -days)

	byEmotion := make(map[string]*Trend)
	latest := make(map[string]time.Time)
	confSum := make(map[string]float64)

	for _, e := range a.entries {
		tr, ok := byEmotion[e.emotion]
		if !ok {
			tr = &Trend{Emotion: e.emotion}
			byEmotion[e.emotion] = tr
		}
		tr.Count++
		confSum[e.emotion] += e.confidence
		if e.at.After(cutoff) {
			tr.Recent++
			tr.RecentIDs = append(tr.RecentIDs, e.id)
		}
		if e.at.After(latest[e.emotion]) {
			latest[e.emotion] = e.at
		}
	}

	trends := make([]Trend, 0, len(byEmotion))
	for emo, tr := range byEmotion {
		recencyBoost := 1.0
		daysSince := now.Sub(latest[emo]).Hours() / 24
		if days > 0 && daysSince < float64(days) {
			recencyBoost = 1.0 + (float64(days)-daysSince)/float64(days)
		}

		tr.Score = (float64(tr.Recent)*2 + float64(tr.Count)) * recencyBoost
		tr.AvgConfidence = confSum[emo] / float64(tr.Count)
		trends = append(trends, *tr)
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Score != trends[j].Score {
			return trends[i].Score > trends[j].Score
		}
		return trends[i].Emotion < trends[j].Emotion
	})

	if limit > 0 && len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}
