// Package stemmer adapts the Snowball English stemmer to the engine's
// Stemmer interface.
package stemmer

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

// Snowball stems English words. Stop words are returned unchanged so
// intensity modifiers such as "so" and "very" keep their form.
type Snowball struct{}

func (Snowball) Stem(word string) string {
	w := strings.TrimSpace(word)
	if w == "" {
		return ""
	}
	return english.Stem(w, false)
}
