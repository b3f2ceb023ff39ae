package verse

import (
	"testing"
	"time"
)

func TestDefaultBook(t *testing.T) {
	b := Default()

	v := b.For("anxiety", 0)
	if v.Chapter != 2 || v.Verse != 47 {
		t.Errorf("expected 2.47 for anxiety, got %d.%d", v.Chapter, v.Verse)
	}
	if v.Emotion != "anxiety" {
		t.Errorf("expected emotion anxiety, got %q", v.Emotion)
	}

	if got := len(b.Emotions()); got != 9 {
		t.Errorf("expected 9 emotions, got %d", got)
	}
}

func TestFallback(t *testing.T) {
	b := Default()

	for _, emo := range []string{"neutral", "boredom", ""} {
		v := b.For(emo, 3)
		if v.Emotion != "confusion" {
			t.Errorf("For(%q) should fall back to confusion, got %q", emo, v.Emotion)
		}
	}
}

func TestForWrapsIndex(t *testing.T) {
	b, err := Parse([]byte(`
fallback: joy
verses:
  joy:
    - {chapter: 1, verse: 1, translation: a}
    - {chapter: 1, verse: 2, translation: b}
`))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if b.For("joy", 3).Verse != 2 {
		t.Error("expected index to wrap")
	}
	if b.For("JOY", -2).Verse != 1 {
		t.Error("expected negative index to be folded")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("fallback: joy\nverses: {}\n")); err == nil {
		t.Error("expected error for missing fallback verses")
	}
	if _, err := Parse([]byte("verses: [")); err == nil {
		t.Error("expected YAML error")
	}
}

func TestDaily(t *testing.T) {
	b := Default()
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	v, ok := b.Daily(day)
	if !ok {
		t.Fatal("expected a daily verse")
	}
	// YearDay 1 of 3 passages.
	if v.Theme != "unity" {
		t.Errorf("expected unity, got %q", v.Theme)
	}

	empty, _ := Parse([]byte("fallback: joy\nverses:\n  joy:\n    - {chapter: 1, verse: 1}\n"))
	if _, ok := empty.Daily(day); ok {
		t.Error("expected no daily verse")
	}
}

func TestSearch(t *testing.T) {
	b := Default()

	results := b.Search("Anger")
	if len(results) == 0 {
		t.Fatal("expected results for anger")
	}
	if results[0].Emotion != "anger" {
		t.Errorf("expected anger first, got %q", results[0].Emotion)
	}
	if b.Search("  ") != nil {
		t.Error("blank theme should return nil")
	}
}
