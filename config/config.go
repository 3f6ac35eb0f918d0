// Package config loads planner settings from an optional YAML file.
//
// Example:
//
//	log:
//	  level: debug
//	  format: json
//	output:
//	  format: yaml
//	search:
//	  verify: true
//
// Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vacuum/logging"
	"github.com/katalvlaran/vacuum/report"
)

// Sentinel errors returned by Load and Validate.
var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")

	// ErrInvalidFormat indicates the file is not valid YAML for Config.
	ErrInvalidFormat = errors.New("config: invalid format")

	// ErrUnsupportedFormat indicates an extension other than .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported file extension")

	// ErrValidationFailed indicates a well-formed file with invalid values.
	ErrValidationFailed = errors.New("config: validation failed")
)

// Config is the full planner configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
	Search SearchConfig `yaml:"search"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig selects how results are written to stdout.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// SearchConfig tunes the search run.
type SearchConfig struct {
	// Verify replays a found plan against the world before reporting it.
	Verify bool `yaml:"verify"`
}

// Default returns the built-in configuration.
func Default() Config {
	lc := logging.DefaultConfig()

	return Config{
		Log:    LogConfig{Level: lc.Level, Format: lc.Format},
		Output: OutputConfig{Format: report.FormatText},
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := (logging.Config{Level: c.Log.Level, Format: c.Log.Format}).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	switch c.Output.Format {
	case report.FormatText, report.FormatYAML:
	default:
		return fmt.Errorf("%w: output format %q", ErrValidationFailed, c.Output.Format)
	}

	return nil
}

// Logging converts the log section into a logging.Config writing to out.
func (c Config) Logging(out io.Writer) logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format, Output: out}
}

// Load reads path over the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}

		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
