package synonym

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// posOrder fixes the order senses are visited in, so lookups are stable
// regardless of JSON map iteration.
var posOrder = []string{"n", "v", "a", "r", "s"}

type oewnEntryFile map[string]map[string]json.RawMessage

type oewnPOSEntry struct {
	Sense []struct {
		ID     string `json:"id"`
		Synset string `json:"synset"`
	} `json:"sense"`
}

type oewnSynset struct {
	Members []string `json:"members"`
}

// WordNet serves synonyms from an Open English WordNet JSON export:
// entries-*.json map lemmas to senses, and {pos}.{category}.json files map
// synset IDs to members.
type WordNet struct {
	synonyms map[string][]string
}

// LoadWordNet reads dir and keeps synonyms only for the given words. An empty
// word list keeps everything.
func LoadWordNet(dir string, words []string) (*WordNet, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open wordnet directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	wanted := make(map[string]bool, len(words))
	for _, w := range words {
		wanted[strings.ToLower(w)] = true
	}

	entryFiles, err := filepath.Glob(filepath.Join(dir, "entries-*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob entry files: %w", err)
	}

	wordSynsets := make(map[string][]string)
	for _, path := range entryFiles {
		entries, err := readJSON[oewnEntryFile](path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		for word, posMap := range entries {
			w := strings.ToLower(word)
			if len(wanted) > 0 && !wanted[w] {
				continue
			}
			for _, pos := range orderedPOS(posMap) {
				var e oewnPOSEntry
				if err := json.Unmarshal(posMap[pos], &e); err != nil {
					continue
				}
				for _, s := range e.Sense {
					wordSynsets[w] = append(wordSynsets[w], s.Synset)
				}
			}
		}
	}

	synsetFiles, err := globSynsetFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("glob synset files: %w", err)
	}
	synsets := make(map[string]oewnSynset)
	for _, path := range synsetFiles {
		m, err := readJSON[map[string]oewnSynset](path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		for id, s := range m {
			synsets[id] = s
		}
	}

	wn := &WordNet{synonyms: make(map[string][]string, len(wordSynsets))}
	for word, ids := range wordSynsets {
		var out []string
		for _, id := range ids {
			for _, m := range synsets[id].Members {
				m = strings.ToLower(m)
				if m != word && !contains(out, m) {
					out = append(out, m)
				}
			}
		}
		wn.synonyms[word] = out
	}
	return wn, nil
}

func (w *WordNet) Synonyms(ctx context.Context, word string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]string(nil), w.synonyms[strings.ToLower(word)]...), nil
}

func (w *WordNet) Len() int {
	return len(w.synonyms)
}

// orderedPOS returns the POS keys of m in posOrder, followed by any unknown
// keys.
func orderedPOS(m map[string]json.RawMessage) []string {
	var out []string
	for _, p := range posOrder {
		if _, ok := m[p]; ok {
			out = append(out, p)
		}
	}
	for p := range m {
		if !contains(posOrder, p) {
			out = append(out, p)
		}
	}
	return out
}

func globSynsetFiles(dir string) ([]string, error) {
	var out []string
	for _, pos := range []string{"noun", "verb", "adj", "adv"} {
		matches, err := filepath.Glob(filepath.Join(dir, pos+".*.json"))
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

func readJSON[T any](path string) (T, error) {
	var v T
	f, err := os.Open(path)
	if err != nil {
		return v, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&v); err != nil {
		return v, fmt.Errorf("decode JSON: %w", err)
	}
	return v, nil
}
