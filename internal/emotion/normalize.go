package emotion

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	quoteReplacer = strings.NewReplacer(
		"’", "'",
		"‘", "'",
		"“", `"`,
		"”", `"`,
	)
	// Anything that is not a letter, digit, underscore, apostrophe or space.
	punctRe = regexp.MustCompile(`[^\p{L}\p{N}_'\s\p{Z}]`)
)

// Normalize lowercases text, straightens curly quotes, turns punctuation into
// spaces and collapses whitespace.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(norm.NFC.String(text))
	s = quoteReplacer.Replace(s)
	s = punctRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// Tokenize splits the normalized form of text on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}
