// Package verse serves short guidance passages keyed by emotion.
package verse

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julienpequegnot/emolex/internal/verse/data"
)

type Verse struct {
	Chapter     int    `yaml:"chapter" json:"chapter"`
	Verse       int    `yaml:"verse" json:"verse"`
	Translation string `yaml:"translation" json:"translation"`
	Explanation string `yaml:"explanation,omitempty" json:"explanation,omitempty"`
	Advice      string `yaml:"advice,omitempty" json:"advice,omitempty"`
	Theme       string `yaml:"theme,omitempty" json:"theme,omitempty"`
	// Emotion is set on lookups to the emotion the verse is filed under.
	Emotion string `yaml:"-" json:"emotion,omitempty"`
}

type Book struct {
	fallback string
	verses   map[string][]Verse
	daily    []Verse
}

type bookFile struct {
	Fallback string             `yaml:"fallback"`
	Verses   map[string][]Verse `yaml:"verses"`
	Daily    []Verse            `yaml:"daily"`
}

// Parse reads a verse book. The fallback emotion must have verses.
func Parse(raw []byte) (*Book, error) {
	var f bookFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse verses: %w", err)
	}
	if len(f.Verses[f.Fallback]) == 0 {
		return nil, fmt.Errorf("fallback emotion %q has no verses", f.Fallback)
	}

	b := &Book{fallback: f.Fallback, verses: make(map[string][]Verse), daily: f.Daily}
	for emo, vs := range f.Verses {
		emo = strings.ToLower(emo)
		for _, v := range vs {
			v.Emotion = emo
			b.verses[emo] = append(b.verses[emo], v)
		}
	}
	return b, nil
}

// Default returns the embedded book.
func Default() *Book {
	b, err := Parse(data.Verses)
	if err != nil {
		panic(err)
	}
	return b
}

// For returns verse i (mod the count) for an emotion. Emotions without
// verses get the fallback emotion's verses.
func (b *Book) For(emotion string, i int) Verse {
	vs, ok := b.verses[strings.ToLower(emotion)]
	if !ok {
		vs = b.verses[b.fallback]
	}
	if i < 0 {
		i = -i
	}
	return vs[i%len(vs)]
}

// Daily rotates through the daily passages by day of year.
func (b *Book) Daily(day time.Time) (Verse, bool) {
	if len(b.daily) == 0 {
		return Verse{}, false
	}
	return b.daily[day.YearDay()%len(b.daily)], true
}

// Search returns verses whose translation, explanation or advice mentions
// theme, ordered by emotion then chapter and verse.
func (b *Book) Search(theme string) []Verse {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if theme == "" {
		return nil
	}

	var out []Verse
	for _, vs := range b.verses {
		for _, v := range vs {
			text := strings.ToLower(v.Translation + " " + v.Explanation + " " + v.Advice)
			if strings.Contains(text, theme) {
				out = append(out, v)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Emotion != out[j].Emotion {
			return out[i].Emotion < out[j].Emotion
		}
		if out[i].Chapter != out[j].Chapter {
			return out[i].Chapter < out[j].Chapter
		}
		return out[i].Verse < out[j].Verse
	})
	return out
}

// Emotions lists the emotions that have their own verses, sorted.
func (b *Book) Emotions() []string {
	out := make([]string, 0, len(b.verses))
	for emo := range b.verses {
		out = append(out, emo)
	}
	sort.Strings(out)
	return out
}
