package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/linealign/align"
	"github.com/katalvlaran/linealign/msa"
	"gopkg.in/yaml.v3"
)

// envPrefix namespaces every environment override.
const envPrefix = "LINEALIGN_"

// Config holds the tunables shared by all subcommands. Precedence, lowest
// first: defaults, YAML file, LINEALIGN_* environment, command-line flags.
type Config struct {
	// GapOpen is added once per gap run. Scores grow with similarity.
	GapOpen float64 `yaml:"gap_open" validate:"lte=0"`
	// GapSkew is added for every gap after the first in a run.
	GapSkew float64 `yaml:"gap_skew" validate:"lte=0"`
	// MaxTies caps the alignments listed by "align"; 0 lists them all.
	MaxTies int `yaml:"max_ties" validate:"gte=0"`
	// Table is a substitution table YAML file for "align-all".
	Table string `yaml:"table"`
	// Fold transliterates input lines to ASCII before aligning.
	Fold bool `yaml:"fold"`
}

var configValidate = validator.New()

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		GapOpen: msa.DefaultGapOpen,
		GapSkew: msa.DefaultGapSkew,
		MaxTies: align.DefaultMaxTies,
	}
}

// LoadConfig reads path over the defaults and applies environment overrides.
// An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "GAP_OPEN"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sGAP_OPEN: %w", envPrefix, err)
		}
		c.GapOpen = f
	}
	if v, ok := lookup(envPrefix + "GAP_SKEW"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sGAP_SKEW: %w", envPrefix, err)
		}
		c.GapSkew = f
	}
	if v, ok := lookup(envPrefix + "MAX_TIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_TIES: %w", envPrefix, err)
		}
		c.MaxTies = n
	}
	if v, ok := lookup(envPrefix + "TABLE"); ok {
		c.Table = v
	}
	if v, ok := lookup(envPrefix + "FOLD"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sFOLD: %w", envPrefix, err)
		}
		c.Fold = b
	}

	return nil
}

// Validate rejects positive penalties and a negative tie cap.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
