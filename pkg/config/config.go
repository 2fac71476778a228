// Package config loads datadigest CLI configuration from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jlrickert/datadigest/pkg/digest"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultFileName is looked up in the working directory when no config path
// is given.
const DefaultFileName = ".datadigest.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = os.ErrInvalid

// Config holds CLI defaults. Command line flags override these values.
type Config struct {
	// Algorithm is the finisher hash: "md5" or "blake3".
	Algorithm string `yaml:"algorithm,omitempty" toml:"algorithm,omitempty"`

	// Format forces an input format (csv, json, yaml, md). Empty means infer
	// from the file extension.
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`

	// Output is "text" (digest only) or "json".
	Output string `yaml:"output,omitempty" toml:"output,omitempty"`

	CSV CSVConfig `yaml:"csv,omitempty" toml:"csv,omitempty"`
}

// CSVConfig tunes the CSV loader.
type CSVConfig struct {
	// Delimiter is a single character. Defaults to ",".
	Delimiter string `yaml:"delimiter,omitempty" toml:"delimiter,omitempty"`

	// Comment, when set, marks lines to skip.
	Comment string `yaml:"comment,omitempty" toml:"comment,omitempty"`

	// NoHeader treats the first line as data; columns are named col0, col1...
	NoHeader bool `yaml:"noHeader,omitempty" toml:"noHeader,omitempty"`
}

// InvalidConfigError represents a validation or parse failure.
type InvalidConfigError struct {
	Msg string
}

func (e *InvalidConfigError) Error() string {
	if e.Msg == "" {
		return "invalid datadigest config"
	}
	return fmt.Sprintf("invalid datadigest config: %s", e.Msg)
}

func (e *InvalidConfigError) Is(target error) bool { return target == ErrInvalid }
func (e *InvalidConfigError) Unwrap() error        { return ErrInvalid }

// IsInvalidConfig reports whether err is (or wraps) an invalid-config condition.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Algorithm: string(digest.MD5),
		Output:    OutputText,
		CSV:       CSVConfig{Delimiter: ","},
	}
}

// Parse decodes data as YAML, or TOML when ext is ".toml", on top of the
// defaults and validates the result.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()

	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, &InvalidConfigError{Msg: err.Error()}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path through rt.
func Load(rt *toolkit.Runtime, path string) (*Config, error) {
	data, err := rt.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path when set. Otherwise it loads DefaultFileName from
// dir if present and falls back to Default.
func LoadOrDefault(rt *toolkit.Runtime, path, dir string) (*Config, error) {
	if path != "" {
		return Load(rt, path)
	}
	p := filepath.Join(dir, DefaultFileName)
	if _, err := rt.Stat(p, false); err != nil {
		return Default(), nil
	}
	return Load(rt, p)
}

func (c *Config) normalize() {
	c.Algorithm = strings.ToLower(strings.TrimSpace(c.Algorithm))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Algorithm == "" {
		c.Algorithm = string(digest.MD5)
	}
	if c.Output == "" {
		c.Output = OutputText
	}
	if c.CSV.Delimiter == "" {
		c.CSV.Delimiter = ","
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := digest.ParseAlgorithm(c.Algorithm); err != nil {
		return &InvalidConfigError{Msg: fmt.Sprintf("algorithm %q", c.Algorithm)}
	}
	switch c.Format {
	case "", "csv", "json", "yaml", "md":
	default:
		return &InvalidConfigError{Msg: fmt.Sprintf("format %q", c.Format)}
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return &InvalidConfigError{Msg: fmt.Sprintf("output %q", c.Output)}
	}
	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		return &InvalidConfigError{Msg: "csv delimiter must be a single character"}
	}
	if utf8.RuneCountInString(c.CSV.Comment) > 1 {
		return &InvalidConfigError{Msg: "csv comment must be a single character"}
	}
	return nil
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c CSVConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// CommentRune returns the CSV comment marker, or 0 when unset.
func (c CSVConfig) CommentRune() rune {
	if c.Comment == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Comment)
	return r
}
