package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Engine   EngineConfig  `yaml:"engine"`
	Fuzzy    FuzzyConfig   `yaml:"fuzzy"`
	Synonyms SynonymConfig `yaml:"synonyms"`
	Log      LogConfig     `yaml:"log"`
	Server   ServerConfig  `yaml:"server"`
	Feeds    []Feed        `yaml:"feeds"`
	History  HistoryConfig `yaml:"history"`
}

type EngineConfig struct {
	PhraseBonus        float64 `yaml:"phrase_bonus"        env:"EMOLEX_PHRASE_BONUS"`
	KeywordWeight      float64 `yaml:"keyword_weight"      env:"EMOLEX_KEYWORD_WEIGHT"`
	SentimentWeight    float64 `yaml:"sentiment_weight"    env:"EMOLEX_SENTIMENT_WEIGHT"`
	SentimentThreshold float64 `yaml:"sentiment_threshold" env:"EMOLEX_SENTIMENT_THRESHOLD"`
	Sharpness          float64 `yaml:"sharpness"           env:"EMOLEX_SHARPNESS"`
	TopK               int     `yaml:"top_k"               env:"EMOLEX_TOP_K"`
	// LexiconPath replaces the built-in emotion table when set.
	LexiconPath string `yaml:"lexicon_path,omitempty" env:"EMOLEX_LEXICON_PATH"`
}

type FuzzyConfig struct {
	Cutoff      float64 `yaml:"cutoff"        env:"EMOLEX_FUZZY_CUTOFF"`
	Discount    float64 `yaml:"discount"      env:"EMOLEX_FUZZY_DISCOUNT"`
	MinTokenLen int     `yaml:"min_token_len" env:"EMOLEX_FUZZY_MIN_TOKEN_LEN"`
	MaxMatches  int     `yaml:"max_matches"   env:"EMOLEX_FUZZY_MAX_MATCHES"`
	Metric      string  `yaml:"metric"        env:"EMOLEX_FUZZY_METRIC"`
}

type SynonymConfig struct {
	Source       string        `yaml:"source"        env:"EMOLEX_SYNONYM_SOURCE"`
	Path         string        `yaml:"path,omitempty" env:"EMOLEX_SYNONYM_PATH"`
	PerKeyword   int           `yaml:"per_keyword"   env:"EMOLEX_SYNONYM_PER_KEYWORD"`
	WeightFactor float64       `yaml:"weight_factor" env:"EMOLEX_SYNONYM_WEIGHT_FACTOR"`
	Timeout      time.Duration `yaml:"timeout"       env:"EMOLEX_SYNONYM_TIMEOUT"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"EMOLEX_LOG_LEVEL"`
	Format string `yaml:"format" env:"EMOLEX_LOG_FORMAT"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"EMOLEX_ADDR"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"EMOLEX_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"EMOLEX_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"EMOLEX_SHUTDOWN_TIMEOUT"`
	AllowedOrigins  string        `yaml:"allowed_origins"  env:"EMOLEX_ALLOWED_ORIGINS"`
	// MaxBatch caps the number of texts accepted by one batch request.
	MaxBatch int `yaml:"max_batch" env:"EMOLEX_MAX_BATCH"`
}

type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type HistoryConfig struct {
	RetentionDays int `yaml:"retention_days" env:"EMOLEX_RETENTION_DAYS"`
}

func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			PhraseBonus:        1.6,
			KeywordWeight:      1.0,
			SentimentWeight:    0.20,
			SentimentThreshold: 0.25,
			Sharpness:          4.0,
		},
		Fuzzy: FuzzyConfig{
			Cutoff:      0.86,
			Discount:    0.8,
			MinTokenLen: 3,
			MaxMatches:  2,
			Metric:      "ratio",
		},
		Synonyms: SynonymConfig{
			Source:       "none",
			PerKeyword:   2,
			WeightFactor: 0.85,
			Timeout:      2 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:            ":5000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  "*",
			MaxBatch:        100,
		},
		Feeds: []Feed{},
		History: HistoryConfig{
			RetentionDays: 365,
		},
	}
}

func Dir() string {
	if dir := os.Getenv("EMOLEX_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".emolex")
}

func DBPath() string {
	return filepath.Join(Dir(), "emolex.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads config.yaml over the defaults, then applies EMOLEX_* environment
// overrides. A missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", configPath(), err)
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}

func (c *Config) Validate() error {
	if !slices.Contains([]string{"ratio", "levenshtein"}, c.Fuzzy.Metric) {
		return fmt.Errorf("%w: fuzzy.metric %q", ErrInvalid, c.Fuzzy.Metric)
	}
	if c.Fuzzy.MaxMatches < 1 {
		return fmt.Errorf("%w: fuzzy.max_matches must be at least 1", ErrInvalid)
	}
	if !slices.Contains([]string{"none", "yaml", "wordnet"}, c.Synonyms.Source) {
		return fmt.Errorf("%w: synonyms.source %q", ErrInvalid, c.Synonyms.Source)
	}
	if c.Synonyms.Source != "none" && c.Synonyms.Path == "" {
		return fmt.Errorf("%w: synonyms.path is required for source %q", ErrInvalid, c.Synonyms.Source)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if !slices.Contains([]string{"json", "text"}, c.Log.Format) {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if c.Server.MaxBatch < 1 {
		return fmt.Errorf("%w: server.max_batch must be at least 1", ErrInvalid)
	}
	if c.History.RetentionDays < 0 {
		return fmt.Errorf("%w: history.retention_days must not be negative", ErrInvalid)
	}
	return nil
}
