// Package config loads textstat settings from YAML, .env files and the
// environment, and builds an Engine from them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/textstat/pkg/textstat/analytics"
	"github.com/cognicore/textstat/pkg/textstat/extract"
	"github.com/cognicore/textstat/pkg/textstat/ingest"
	"github.com/cognicore/textstat/pkg/textstat/internalerr"
	"github.com/cognicore/textstat/pkg/textstat/stoplist"
)

// AppName names the XDG config directory.
const AppName = "textstat"

// LocalConfigFile is looked up in the working directory.
const LocalConfigFile = ".textstat.yaml"

// DefaultConcurrency is the number of documents analyzed at once.
const DefaultConcurrency = 4

// ErrConfigNotFound is returned when an explicitly named file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel      = "TEXTSTAT_LOG_LEVEL"
	EnvTopN          = "TEXTSTAT_TOP_N"
	EnvStopwordFiles = "TEXTSTAT_STOPWORD_FILES"
	EnvConcurrency   = "TEXTSTAT_CONCURRENCY"
)

// Config is the complete textstat configuration.
type Config struct {
	LogLevel    string    `yaml:"log_level"`
	Concurrency int       `yaml:"concurrency"`
	Stopwords   Stopwords `yaml:"stopwords"`
	Tokenizer   Tokenizer `yaml:"tokenizer"`
	Analysis    Analysis  `yaml:"analysis"`
	Extract     Extract   `yaml:"extract"`
}

// Stopwords selects the stopword lists. Languages name embedded lists;
// Files are newline-delimited lists on disk. Both are unioned.
type Stopwords struct {
	Languages []string `yaml:"languages"`
	Files     []string `yaml:"files"`
}

// Tokenizer configures tokenization and filtering.
type Tokenizer struct {
	MinLength    int  `yaml:"min_length"`
	SplitHyphens bool `yaml:"split_hyphens"`
}

// Analysis configures the frequency views.
type Analysis struct {
	TopN          int  `yaml:"top_n"`
	RawBigrams    bool `yaml:"raw_bigrams"`
	WordCloudSize int  `yaml:"wordcloud_size"`
}

// Extract configures document loading.
type Extract struct {
	MaxBytes int64 `yaml:"max_bytes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		Concurrency: DefaultConcurrency,
		Stopwords: Stopwords{
			Languages: append([]string(nil), stoplist.DefaultLanguages...),
		},
		Tokenizer: Tokenizer{MinLength: ingest.DefaultMinTokenLength},
		Analysis: Analysis{
			TopN:          analytics.DefaultTopN,
			WordCloudSize: analytics.DefaultWordCloudSize,
		},
		Extract: Extract{MaxBytes: extract.DefaultMaxBytes},
	}
}

// DefaultPath is the config file in the XDG config directory.
// On Linux: ~/.config/textstat/config.yaml
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// LoadFile reads a YAML file over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Find returns the config file to use: explicit if given and present,
// else ./.textstat.yaml, else the XDG default. Empty when none exists.
func Find(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	for _, candidate := range []string{LocalConfigFile, DefaultPath()} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Load resolves, reads, overrides from the environment and validates the
// configuration. A missing explicit file is an error; a missing default
// file is not.
func Load(explicit string) (*Config, error) {
	cfg := Default()

	path := Find(explicit)
	switch {
	case path != "":
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case explicit != "":
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, explicit)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from TEXTSTAT_* variables, after loading a
// .env file from the working directory when one exists.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvTopN); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", internalerr.ErrInvalidConfig, EnvTopN, v)
		}
		c.Analysis.TopN = n
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", internalerr.ErrInvalidConfig, EnvConcurrency, v)
		}
		c.Concurrency = n
	}
	if v := os.Getenv(EnvStopwordFiles); v != "" {
		var files []string
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, f)
			}
		}
		c.Stopwords.Files = files
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", internalerr.ErrInvalidConfig, c.LogLevel)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency must be positive", internalerr.ErrInvalidConfig)
	}
	if c.Tokenizer.MinLength <= 0 {
		return fmt.Errorf("%w: tokenizer.min_length must be positive", internalerr.ErrInvalidConfig)
	}
	if c.Analysis.TopN <= 0 {
		return fmt.Errorf("%w: analysis.top_n must be positive", internalerr.ErrInvalidConfig)
	}
	if c.Analysis.WordCloudSize <= 0 {
		return fmt.Errorf("%w: analysis.wordcloud_size must be positive", internalerr.ErrInvalidConfig)
	}
	if c.Extract.MaxBytes <= 0 {
		return fmt.Errorf("%w: extract.max_bytes must be positive", internalerr.ErrInvalidConfig)
	}
	if len(c.Stopwords.Languages) == 0 && len(c.Stopwords.Files) == 0 {
		return fmt.Errorf("%w: no stopword languages or files", internalerr.ErrInvalidConfig)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
