// Package ui maps emotions to display hints: the animation a client plays and
// the terminal style the CLI renders with.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Animation struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	DurationMS int    `json:"duration_ms"`
}

var DefaultAnimation = Animation{Name: "none", Color: "#CCCCCC", DurationMS: 700}

var animations = map[string]Animation{
	"joy":        {"glow-pulse", "#FFD166", 850},
	"sadness":    {"slow-fade", "#6C7A89", 1400},
	"anxiety":    {"fast-shimmer", "#FF6B6B", 600},
	"anger":      {"shake", "#E63946", 450},
	"confusion":  {"blur-pulse", "#9B8CFC", 1000},
	"gratitude":  {"soft-glow", "#8BE9A1", 1000},
	"fear":       {"vibrate", "#FF8DA1", 500},
	"love":       {"warm-glow", "#FFB6C1", 1000},
	"hope":       {"ripple", "#7DD3FC", 900},
	"jealousy":   {"tighten", "#D97706", 600},
	"relief":     {"exhale", "#86EFAC", 900},
	"nostalgia":  {"soft-waves", "#C7B8FF", 1400},
	"boredom":    {"slow-drift", "#BDBDBD", 1600},
	"curiosity":  {"pulse-inquire", "#60A5FA", 800},
	"steadiness": {"anchor", "#34D399", 1500},
	// A neutral verdict plays the steadiness hint.
	"neutral": {"anchor", "#34D399", 1500},
}

// AnimationFor returns the hint for an emotion label, or DefaultAnimation.
func AnimationFor(emotion string) Animation {
	if a, ok := animations[strings.ToLower(emotion)]; ok {
		return a
	}
	return DefaultAnimation
}

var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ScoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	DateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

// EmotionStyle colors text with the emotion's animation color.
func EmotionStyle(emotion string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(AnimationFor(emotion).Color))
}

// Bar draws a score in [0, 1] as a bar of width cells.
func Bar(score float64, width int) string {
	if width <= 0 {
		return ""
	}
	n := int(score*float64(width) + 0.5)
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

// Truncate shortens s to max runes, ending in "..." when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
