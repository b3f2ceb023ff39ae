package emotion

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode"
)

// SynonymSource supplies candidate synonyms for a keyword.
type SynonymSource interface {
	Synonyms(ctx context.Context, word string) ([]string, error)
}

type ExpandOptions struct {
	PerKeyword   int
	WeightFactor float64
	// Timeout bounds each lookup. Zero means no per-lookup deadline.
	Timeout time.Duration
	Logger  *slog.Logger
}

func DefaultExpandOptions() ExpandOptions {
	return ExpandOptions{PerKeyword: 2, WeightFactor: 0.85}
}

// Expand returns a new lexicon whose keyword sets are enriched with up to
// PerKeyword synonyms per keyword at WeightFactor of the keyword's weight.
// Expansion is optional: a lookup that returns an error or times out counts
// as "no synonyms" and the keyword is left as it was. Base keywords are never
// overwritten. Expand must complete before the result is shared.
func Expand(ctx context.Context, lex *Lexicon, src SynonymSource, opts ExpandOptions) *Lexicon {
	if src == nil || opts.PerKeyword <= 0 {
		return lex
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	entries := lex.Entries()
	added := 0
	for i := range entries {
		entry := &entries[i]
		found := make(map[string]float64)
		var order []string

		for _, k := range entry.Keywords {
			if ctx.Err() != nil {
				break
			}
			syns, err := lookup(ctx, src, k.Text, opts.Timeout)
			if err != nil {
				logger.Debug("synonym lookup failed",
					slog.String("emotion", string(entry.Emotion)),
					slog.String("keyword", k.Text),
					slog.Any("error", err))
				continue
			}

			n := 0
			for _, raw := range syns {
				name := strings.ToLower(strings.ReplaceAll(raw, "_", " "))
				if !acceptSynonym(name, k.Text) {
					continue
				}
				if !hasTerm(entry.Keywords, name) && !hasTerm(entry.Phrases, name) {
					if _, seen := found[name]; !seen {
						order = append(order, name)
					}
					found[name] = math.Max(found[name], k.Weight*opts.WeightFactor)
					n++
				}
				if n >= opts.PerKeyword {
					break
				}
			}
		}

		for _, name := range order {
			if hasTerm(entry.Keywords, name) {
				continue
			}
			entry.Keywords = append(entry.Keywords, Term{Text: name, Weight: round3(found[name])})
			added++
		}
	}

	out, err := NewLexicon(entries, lex.modifiers, lex.fallback)
	if err != nil {
		logger.Warn("expanded lexicon rejected, keeping base lexicon", slog.Any("error", err))
		return lex
	}
	logger.Debug("lexicon expanded", slog.Int("synonyms_added", added))
	return out
}

func lookup(ctx context.Context, src SynonymSource, word string, timeout time.Duration) ([]string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return src.Synonyms(ctx, word)
}

func acceptSynonym(name, keyword string) bool {
	if name == keyword || len([]rune(name)) <= 1 {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
