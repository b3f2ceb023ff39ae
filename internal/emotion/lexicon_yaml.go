package emotion

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type lexiconFile struct {
	Modifiers map[string]float64 `yaml:"modifiers"`
	Emotions  []struct {
		Name     string `yaml:"name"`
		Valence  int    `yaml:"valence"`
		Phrases  []Term `yaml:"phrases"`
		Keywords []Term `yaml:"keywords"`
	} `yaml:"emotions"`
	Fallback *struct {
		Positive        string `yaml:"positive"`
		DefaultNegative string `yaml:"default_negative"`
		Neutral         string `yaml:"neutral"`
		Negative        []struct {
			Emotion string   `yaml:"emotion"`
			Markers []string `yaml:"markers"`
			Score   float64  `yaml:"score"`
		} `yaml:"negative"`
	} `yaml:"fallback"`
}

// ParseLexicon reads a lexicon from YAML:
//
//	modifiers: {very: 1.6}
//	emotions:
//	  - name: joy
//	    valence: 1
//	    phrases: [{text: made my day, weight: 2.2}]
//	    keywords: [{text: happy, weight: 1.8}]
//
// Missing modifiers fall back to the built-in table. Without a fallback
// section the built-in targets apply and must name emotions present in the
// file; a fallback section replaces the negative routes entirely.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}

	entries := make([]Entry, 0, len(f.Emotions))
	for _, e := range f.Emotions {
		entries = append(entries, Entry{
			Emotion:  Emotion(e.Name),
			Valence:  e.Valence,
			Phrases:  e.Phrases,
			Keywords: e.Keywords,
		})
	}

	mods := f.Modifiers
	if len(mods) == 0 {
		mods = BuiltinModifiers()
	}

	fb := BuiltinFallback()
	if f.Fallback != nil {
		if f.Fallback.Positive != "" {
			fb.Positive = Emotion(f.Fallback.Positive)
		}
		if f.Fallback.DefaultNegative != "" {
			fb.DefaultNegative = Emotion(f.Fallback.DefaultNegative)
		}
		if f.Fallback.Neutral != "" {
			fb.Neutral = Emotion(f.Fallback.Neutral)
		}
		fb.Negative = nil
		for _, r := range f.Fallback.Negative {
			fb.Negative = append(fb.Negative, Route{Emotion: Emotion(r.Emotion), Markers: r.Markers, Score: r.Score})
		}
	}

	return NewLexicon(entries, mods, fb)
}

func LoadLexiconFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLexicon(data)
}
