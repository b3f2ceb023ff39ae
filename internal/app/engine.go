// Package app assembles the emotion engine and its collaborators from
// configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/emotion"
	"github.com/julienpequegnot/emolex/internal/fuzzy"
	"github.com/julienpequegnot/emolex/internal/sentiment"
	"github.com/julienpequegnot/emolex/internal/stemmer"
	"github.com/julienpequegnot/emolex/internal/synonym"
)

// Params maps the engine and fuzzy sections onto engine parameters.
func Params(cfg *config.Config) emotion.Params {
	p := emotion.DefaultParams()
	p.PhraseBonus = cfg.Engine.PhraseBonus
	p.KeywordWeight = cfg.Engine.KeywordWeight
	p.SentimentWeight = cfg.Engine.SentimentWeight
	p.SentimentThreshold = cfg.Engine.SentimentThreshold
	p.Sharpness = cfg.Engine.Sharpness
	p.TopK = cfg.Engine.TopK
	p.FuzzyCutoff = cfg.Fuzzy.Cutoff
	p.FuzzyDiscount = cfg.Fuzzy.Discount
	p.FuzzyMinTokenLen = cfg.Fuzzy.MinTokenLen
	return p
}

// NewEngine loads the lexicon, expands it with the configured synonym source
// and builds an engine backed by VADER, the pattern estimator, the Snowball
// stemmer and the configured close-match metric. A synonym source that fails
// to load is logged and skipped.
func NewEngine(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*emotion.Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	lex := emotion.Builtin()
	if cfg.Engine.LexiconPath != "" {
		loaded, err := emotion.LoadLexiconFile(cfg.Engine.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		lex = loaded
	}

	src, err := SynonymSource(cfg.Synonyms, lex)
	if err != nil {
		logger.Warn("synonym source unavailable, skipping expansion",
			slog.String("source", cfg.Synonyms.Source),
			slog.Any("error", err))
		src = nil
	}
	if src != nil {
		lex = emotion.Expand(ctx, lex, src, emotion.ExpandOptions{
			PerKeyword:   cfg.Synonyms.PerKeyword,
			WeightFactor: cfg.Synonyms.WeightFactor,
			Timeout:      cfg.Synonyms.Timeout,
			Logger:       logger,
		})
	}

	matcher, err := fuzzy.New(fuzzy.Metric(cfg.Fuzzy.Metric), cfg.Fuzzy.MaxMatches)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}

	engine, err := emotion.New(lex, Params(cfg),
		emotion.WithCompoundScorer(sentiment.DefaultVader()),
		emotion.WithPolarityScorer(sentiment.NewPattern()),
		emotion.WithStemmer(stemmer.Snowball{}),
		emotion.WithCloseMatcher(matcher),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}

	logger.Debug("engine ready",
		slog.Int("emotions", lex.Len()),
		slog.Int("vocabulary", len(lex.Vocabulary())),
		slog.String("fuzzy_metric", cfg.Fuzzy.Metric))
	return engine, nil
}

// SynonymSource opens the source named by cfg. It returns nil for "none".
func SynonymSource(cfg config.SynonymConfig, lex *emotion.Lexicon) (emotion.SynonymSource, error) {
	switch cfg.Source {
	case "", "none":
		return nil, nil
	case "yaml":
		return synonym.LoadGroups(cfg.Path)
	case "wordnet":
		return synonym.LoadWordNet(cfg.Path, keywords(lex))
	default:
		return nil, fmt.Errorf("%w: unknown synonym source %q", config.ErrInvalid, cfg.Source)
	}
}

func keywords(lex *emotion.Lexicon) []string {
	var out []string
	for _, e := range lex.Entries() {
		for _, k := range e.Keywords {
			out = append(out, k.Text)
		}
	}
	return out
}
