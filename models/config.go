// Package models defines the configuration and error types shared by the
// flatten and ngrams commands.
package models

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultColumns is the fixed CSV projection. Downstream consumers depend on
// this exact order.
var DefaultColumns = []string{
	"transactionid",
	"@http_status_code",
	"available_data_basic_educations",
	"available_data_basic_emails",
	"person_dob_date_range_end",
	"person_dob_date_range_start",
	"person_dob_display",
	"person_emails",
	"person_gender_@inferred",
	"person_gender_content",
}

// Config is the full runtime configuration. Every field has a default, so
// running without a config file uses DefaultConfig.
type Config struct {
	Flatten FlattenConfig `yaml:"flatten"`
	Ngrams  NgramConfig   `yaml:"ngrams"`
}

// FlattenConfig drives the JSON-to-CSV flattener.
type FlattenConfig struct {
	Root      string   `yaml:"root"`
	Output    string   `yaml:"output"`
	Delimiter string   `yaml:"delimiter"`
	Suffix    string   `yaml:"suffix"`
	Columns   []string `yaml:"columns"`
	CRLF      bool     `yaml:"crlf"` // Python's csv module terminates rows with \r\n
}

// NgramConfig drives the per-line n-gram counter.
type NgramConfig struct {
	Corpus    string   `yaml:"corpus"`
	Top       int      `yaml:"top"`
	Orders    []int    `yaml:"orders"`
	Languages []string `yaml:"languages"` // only used with --detect-language
}

// DefaultConfig returns the literal constants of both utilities.
func DefaultConfig() Config {
	columns := make([]string, len(DefaultColumns))
	copy(columns, DefaultColumns)

	return Config{
		Flatten: FlattenConfig{
			Root:      "./data/",
			Output:    "output.csv",
			Delimiter: "_",
			Suffix:    ".json",
			Columns:   columns,
			CRLF:      true,
		},
		Ngrams: NgramConfig{
			Corpus:    "corpus.txt",
			Top:       50,
			Orders:    []int{1, 2},
			Languages: []string{"English", "French", "German", "Spanish"},
		},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Keys missing
// from the file keep their default values. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, NewError(KindInputNotFound, "load config", path, err)
		}
		return cfg, NewError(KindInvalidConfig, "load config", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, NewError(KindInvalidConfig, "parse config", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values neither command can run with.
func (c Config) Validate() error {
	if c.Flatten.Delimiter == "" {
		return NewError(KindInvalidConfig, "validate config", "", errors.New("flatten.delimiter must not be empty"))
	}
	if len(c.Flatten.Columns) == 0 {
		return NewError(KindInvalidConfig, "validate config", "", errors.New("flatten.columns must not be empty"))
	}
	if c.Ngrams.Top < 0 {
		return NewError(KindInvalidConfig, "validate config", "", fmt.Errorf("ngrams.top must be >= 0, got %d", c.Ngrams.Top))
	}
	if len(c.Ngrams.Orders) == 0 {
		return NewError(KindInvalidConfig, "validate config", "", errors.New("ngrams.orders must not be empty"))
	}
	for _, n := range c.Ngrams.Orders {
		if n < 1 {
			return NewError(KindInvalidConfig, "validate config", "", fmt.Errorf("ngrams.orders entries must be >= 1, got %d", n))
		}
	}
	return nil
}
