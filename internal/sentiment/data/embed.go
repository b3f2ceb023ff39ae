// Package data embeds the sentiment word lists.
package data

import _ "embed"

// PatternLexicon lines are "word\tpolarity\tsubjectivity[\tintensity]".
//
//go:embed pattern_lexicon.tsv
var PatternLexicon string
