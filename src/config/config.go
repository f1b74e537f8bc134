package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/eriklarko/logic-simulator/src/truthtable"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "logicsim.yaml"

const (
	// MaxVariablesLimit is the number of distinct variable names the grammar allows
	MaxVariablesLimit   = 26
	DefaultMaxVariables = 16
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	// MaxVariables caps the number of variables an expression may use before
	// generating a table, tables have 2^MaxVariables rows
	MaxVariables int    `yaml:"max-variables"`
	Output       string `yaml:"output"`
	Color        string `yaml:"color"`
	HistoryFile  string `yaml:"history-file,omitempty"`

	// Where the config was loaded from and where Write stores it
	Path string `yaml:"-"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		MaxVariables: DefaultMaxVariables,
		Output:       truthtable.FormatText,
		Color:        ColorAuto,
		Path:         DefaultPath,
	}
}

// LoadConfig reads the YAML config at path. Keys missing from the file keep
// their default values. If the file doesn't exist the returned error satisfies
// os.IsNotExist.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// LoadOrDefault loads the config at path, falling back to the defaults when
// the file doesn't exist.
func LoadOrDefault(path string) (*Config, error) {
	config, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		config = Default()
		config.Path = path
		return config, nil
	}
	return config, err
}

func (c *Config) Validate() error {
	if c.MaxVariables < 1 || c.MaxVariables > MaxVariablesLimit {
		return fmt.Errorf("max-variables must be between 1 and %d, got %d", MaxVariablesLimit, c.MaxVariables)
	}
	if !truthtable.IsValidFormat(c.Output) {
		return fmt.Errorf("output must be one of %v, got '%s'", truthtable.Formats, c.Output)
	}
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("color must be one of auto, always or never, got '%s'", c.Color)
	}
	return nil
}

// Write stores the config as YAML at c.Path.
func (c *Config) Write() error {
	absPath, err := filepath.Abs(c.Path)
	if err != nil {
		// this isn't an error enough to stop execution. It's just to make the
		// error messages easier to follow. Best effort.
		absPath = c.Path
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", absPath, err)
	}
	return nil
}
