package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	apperrors "github.com/mcncl/jsontaxonomy/internal/errors"
	"gopkg.in/yaml.v3"
)

// AppName names the XDG configuration subdirectory.
const AppName = "jsontaxonomy"

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// Config represents the complete configuration for jsontaxonomy
type Config struct {
	Output OutputConfig `yaml:"output"`
	Report ReportConfig `yaml:"report"`
	Dev    DevConfig    `yaml:"dev"`
}

// OutputConfig controls how the taxonomy is printed
type OutputConfig struct {
	Format          string `yaml:"format"`
	Separator       string `yaml:"separator"`
	TitleCase       bool   `yaml:"title_case"`
	IncludeAnalysis bool   `yaml:"include_analysis"`
}

// ReportConfig controls the markdown report
type ReportConfig struct {
	Title  string `yaml:"title"`
	Charts bool   `yaml:"charts"`
	Levels bool   `yaml:"levels"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:          FormatText,
			Separator:       ", ",
			TitleCase:       true,
			IncludeAnalysis: false,
		},
		Report: ReportConfig{
			Title:  "JSON Taxonomy Report",
			Charts: true,
			Levels: true,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in the current directory and its
// parents, then in the XDG config directories. It returns "" if none exists.
func FindConfigFile() string {
	configNames := []string{".jsontaxonomy.yml", ".jsontaxonomy.yaml", "jsontaxonomy.yml", "jsontaxonomy.yaml"}

	currentDir, err := os.Getwd()
	if err == nil {
		for {
			for _, name := range configNames {
				configPath := filepath.Join(currentDir, name)
				if _, err := os.Stat(configPath); err == nil {
					return configPath
				}
			}

			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				break
			}
			currentDir = parentDir
		}
	}

	for _, name := range []string{"config.yml", "config.yaml"} {
		if configPath, err := xdg.SearchConfigFile(filepath.Join(AppName, name)); err == nil {
			return configPath
		}
	}

	return ""
}

// Validate checks that the configuration names a known output format.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("%w '%s': must be one of %v", apperrors.ErrUnknownFormat, c.Output.Format, Formats)
	}
	return nil
}

// Overrides carries CLI flag values. Zero values leave the file value
// untouched.
type Overrides struct {
	Format          string
	IncludeAnalysis bool
	Debug           bool
}

// LoadConfigWithCLI loads config with CLI argument precedence
func LoadConfigWithCLI(configPath string, overrides Overrides) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if overrides.Format != "" {
		cfg.Output.Format = overrides.Format
	}
	if overrides.IncludeAnalysis {
		cfg.Output.IncludeAnalysis = true
	}
	if overrides.Debug {
		cfg.Dev.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
