package ui

import "testing"

func TestAnimationFor(t *testing.T) {
	tests := []struct {
		emotion string
		want    Animation
	}{
		{"joy", Animation{"glow-pulse", "#FFD166", 850}},
		{"Anger", Animation{"shake", "#E63946", 450}},
		{"neutral", Animation{"anchor", "#34D399", 1500}},
		{"shame", DefaultAnimation},
		{"", DefaultAnimation},
	}
	for _, tt := range tests {
		if got := AnimationFor(tt.emotion); got != tt.want {
			t.Errorf("AnimationFor(%q) = %+v, want %+v", tt.emotion, got, tt.want)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		score float64
		width int
		want  string
	}{
		{0, 4, "░░░░"},
		{1, 4, "████"},
		{0.5, 4, "██░░"},
		{1.7, 2, "██"},
		{-1, 2, "░░"},
		{0.5, 0, ""},
	}
	for _, tt := range tests {
		if got := Bar(tt.score, tt.width); got != tt.want {
			t.Errorf("Bar(%v, %d) = %q, want %q", tt.score, tt.width, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("hello world", 8); got != "hello..." {
		t.Errorf("got %q", got)
	}
	if got := Truncate("ééééé", 2); got != "éé" {
		t.Errorf("got %q", got)
	}
}
