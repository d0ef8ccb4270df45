package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".alternation.yaml"

// CodegenConfig represents Go code generation settings
type CodegenConfig struct {
	// Package is the package clause of the generated file
	Package string `yaml:"package"`

	// Name is the exported type name of the generated matcher
	Name string `yaml:"name"`

	// TestFile also writes a _test.go file asserting every word matches
	TestFile bool `yaml:"test_file"`
}

// Config represents alternation configuration options
type Config struct {
	// Verbose prints the synthesis trace to stderr
	Verbose bool `yaml:"verbose"`

	// Engine is the regex engine used for the self-check (re2, ecmascript)
	Engine string `yaml:"engine"`

	// Format is the report format (json, yaml, text)
	Format string `yaml:"format"`

	// Color controls coloured output (auto, always, never)
	Color string `yaml:"color"`

	// NonCapturing emits (?:...) for every group
	NonCapturing bool `yaml:"non_capturing"`

	// Codegen contains Go code generation settings
	Codegen CodegenConfig `yaml:"codegen"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Verbose:      false,
		Engine:       "re2",
		Format:       FormatJSON,
		Color:        ColorAuto,
		NonCapturing: false,
		Codegen: CodegenConfig{
			Package:  "words",
			Name:     "Words",
			TestFile: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file.
// A missing file is not an error: the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.Verbose {
		cfg.Verbose = true
	}
	if fileCfg.Engine != "" {
		cfg.Engine = fileCfg.Engine
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}
	if fileCfg.NonCapturing {
		cfg.NonCapturing = true
	}
	if fileCfg.Codegen.Package != "" {
		cfg.Codegen.Package = fileCfg.Codegen.Package
	}
	if fileCfg.Codegen.Name != "" {
		cfg.Codegen.Name = fileCfg.Codegen.Name
	}
	if fileCfg.Codegen.TestFile {
		cfg.Codegen.TestFile = true
	}

	return cfg, nil
}

// LoadConfigFromDir loads .alternation.yaml from dir.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultFileName))
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(verbose *bool, engine *string, format *string, color *string, nonCapturing *bool) {
	if verbose != nil {
		c.Verbose = *verbose
	}
	if engine != nil {
		c.Engine = *engine
	}
	if format != nil {
		c.Format = *format
	}
	if color != nil {
		c.Color = *color
	}
	if nonCapturing != nil {
		c.NonCapturing = *nonCapturing
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validEngines := map[string]bool{"re2": true, "ecmascript": true}
	if !validEngines[c.Engine] {
		return fmt.Errorf("invalid engine %q, must be one of: re2, ecmascript", c.Engine)
	}

	validFormats := map[string]bool{FormatJSON: true, FormatYAML: true, FormatText: true}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format %q, must be one of: json, yaml, text", c.Format)
	}

	validColors := map[string]bool{ColorAuto: true, ColorAlways: true, ColorNever: true}
	if !validColors[c.Color] {
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	if c.Codegen.Package == "" {
		return fmt.Errorf("codegen.package cannot be empty")
	}
	if c.Codegen.Name == "" {
		return fmt.Errorf("codegen.name cannot be empty")
	}

	return nil
}
