// Package synonym provides synonym sources for lexicon expansion.
package synonym

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Static serves synonyms from an in-memory map.
type Static map[string][]string

func (s Static) Synonyms(ctx context.Context, word string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), s[strings.ToLower(word)]...), nil
}

// Groups serves synonym groups loaded from YAML:
//
//	synonyms:
//	  - canonical: happy
//	    variants: [glad, cheerful]
//
// A word's synonyms are the other members of every group it belongs to,
// canonical first.
type Groups struct {
	index map[string][]string
}

func ParseGroups(data []byte) (*Groups, error) {
	var cfg struct {
		Synonyms []struct {
			Canonical string   `yaml:"canonical"`
			Variants  []string `yaml:"variants"`
		} `yaml:"synonyms"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse synonyms: %w", err)
	}

	g := &Groups{index: make(map[string][]string)}
	for _, grp := range cfg.Synonyms {
		members := []string{strings.ToLower(grp.Canonical)}
		for _, v := range grp.Variants {
			if v = strings.ToLower(v); v != members[0] {
				members = append(members, v)
			}
		}
		for _, m := range members {
			for _, other := range members {
				if other != m && !contains(g.index[m], other) {
					g.index[m] = append(g.index[m], other)
				}
			}
		}
	}
	return g, nil
}

func LoadGroups(path string) (*Groups, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGroups(data)
}

func (g *Groups) Synonyms(ctx context.Context, word string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), g.index[strings.ToLower(word)]...), nil
}

func (g *Groups) Len() int {
	return len(g.index)
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
