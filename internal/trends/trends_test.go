package trends

import (
	"math"
	"testing"
	"time"

	"github.com/julienpequegnot/emolex/internal/history"
)

func TestTrendAnalyzer(t *testing.T) {
	analyzer := NewAnalyzer()
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

	// Recent anxious week
	analyzer.Add("1", "anxiety", 0.7, now)
	analyzer.Add("2", "anxiety", 0.6, now.AddDate(0, 0, -1))
	analyzer.Add("3", "anxiety", 0.8, now.AddDate(0, 0, -2))

	// Older joy
	analyzer.Add("4", "joy", 0.9, now.AddDate(0, -1, 0))
	analyzer.Add("5", "joy", 0.9, now.AddDate(0, -1, 0))

	trends := analyzer.Trends(now, 7, 5)

	if len(trends) != 2 {
		t.Fatalf("expected 2 trends, got %d", len(trends))
	}
	if trends[0].Emotion != "anxiety" {
		t.Errorf("expected anxiety to be top trend, got %q", trends[0].Emotion)
	}
	if trends[0].Recent != 3 || trends[0].Count != 3 {
		t.Errorf("unexpected counts %+v", trends[0])
	}
	if math.Abs(trends[0].AvgConfidence-0.7) > 1e-9 {
		t.Errorf("expected avg confidence 0.7, got %v", trends[0].AvgConfidence)
	}
	// joy: no recent entries, no boost.
	if trends[1].Score != 2 {
		t.Errorf("expected joy score 2, got %v", trends[1].Score)
	}
}

func TestTrendScore(t *testing.T) {
	analyzer := NewAnalyzer()
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

	analyzer.Add("1", "hope", 0.5, now)

	trends := analyzer.Trends(now, 7, 10)
	// (1*2 + 1) * 2
	if trends[0].Score != 6 {
		t.Errorf("expected score 6, got %v", trends[0].Score)
	}
}

func TestTrendLimitAndTies(t *testing.T) {
	analyzer := NewAnalyzer()
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(0, -3, 0)

	analyzer.Add("1", "sadness", 0.5, old)
	analyzer.Add("2", "anger", 0.5, old)
	analyzer.Add("3", "boredom", 0.5, old)

	trends := analyzer.Trends(now, 7, 2)
	if len(trends) != 2 {
		t.Fatalf("expected 2 trends, got %d", len(trends))
	}
	if trends[0].Emotion != "anger" || trends[1].Emotion != "boredom" {
		t.Errorf("expected name order on ties, got %s, %s", trends[0].Emotion, trends[1].Emotion)
	}
}

func TestAddRecords(t *testing.T) {
	analyzer := NewAnalyzer()
	now := time.Now()
	analyzer.AddRecords([]history.Record{
		{ID: "a", Emotion: "love", Confidence: 0.6, CreatedAt: now},
		{ID: "b", Emotion: "love", Confidence: 0.8, CreatedAt: now},
	})

	trends := analyzer.Trends(now, 7, 0)
	if len(trends) != 1 || trends[0].Count != 2 {
		t.Fatalf("unexpected trends %+v", trends)
	}
	if len(trends[0].RecentIDs) != 2 {
		t.Errorf("expected 2 recent ids, got %v", trends[0].RecentIDs)
	}
}
