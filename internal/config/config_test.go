// internal/config/config_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Engine.PhraseBonus != 1.6 {
		t.Errorf("expected phrase bonus 1.6, got %v", cfg.Engine.PhraseBonus)
	}
	if cfg.Fuzzy.Cutoff != 0.86 {
		t.Errorf("expected cutoff 0.86, got %v", cfg.Fuzzy.Cutoff)
	}
	if cfg.Server.Addr != ":5000" {
		t.Errorf("expected addr :5000, got %s", cfg.Server.Addr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("EMOLEX_HOME", tmpDir)

	dir := Dir()
	if dir != tmpDir {
		t.Errorf("expected %s, got %s", tmpDir, dir)
	}
	if DBPath() != filepath.Join(tmpDir, "emolex.db") {
		t.Errorf("unexpected db path %s", DBPath())
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("EMOLEX_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Synonyms.Source != "none" {
		t.Errorf("expected default synonym source, got %s", cfg.Synonyms.Source)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("EMOLEX_HOME", t.TempDir())

	cfg := Default()
	cfg.Engine.TopK = 5
	cfg.Server.ReadTimeout = 3 * time.Second
	cfg.Feeds = []Feed{{Name: "journal", URL: "https://example.com/feed.xml"}}

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Engine.TopK != 5 {
		t.Errorf("expected top_k 5, got %d", loaded.Engine.TopK)
	}
	if loaded.Server.ReadTimeout != 3*time.Second {
		t.Errorf("expected read timeout 3s, got %v", loaded.Server.ReadTimeout)
	}
	if len(loaded.Feeds) != 1 || loaded.Feeds[0].Name != "journal" {
		t.Errorf("unexpected feeds %+v", loaded.Feeds)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("EMOLEX_HOME", t.TempDir())

	cfg := Default()
	cfg.Log.Level = "warn"
	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	t.Setenv("EMOLEX_LOG_LEVEL", "debug")
	t.Setenv("EMOLEX_ADDR", ":8080")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("expected env level debug, got %s", loaded.Log.Level)
	}
	if loaded.Server.Addr != ":8080" {
		t.Errorf("expected env addr :8080, got %s", loaded.Server.Addr)
	}
	if loaded.Engine.Sharpness != 4.0 {
		t.Errorf("expected file sharpness to survive, got %v", loaded.Engine.Sharpness)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EMOLEX_HOME", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("fuzzy:\n  metric: cosine\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"synonym source", func(c *Config) { c.Synonyms.Source = "thesaurus" }},
		{"synonym path", func(c *Config) { c.Synonyms.Source = "wordnet" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"max matches", func(c *Config) { c.Fuzzy.MaxMatches = 0 }},
		{"retention", func(c *Config) { c.History.RetentionDays = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
