package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file used when --config is not given.
const DefaultPath = "plugin-docs.yml"

// Environment variables overriding configured paths.
const (
	EnvPluginsDir = "PLUGIN_DOCS_PLUGINS_DIR"
	EnvOutputDir  = "PLUGIN_DOCS_OUTPUT_DIR"
)

// ErrConfigNotFound is returned when the config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Config represents the complete configuration for plugin docs generation.
type Config struct {
	Paths         PathsConfig `yaml:"paths"`
	Exclude       []string    `yaml:"exclude"`
	APIDocsPrefix string      `yaml:"api_docs_prefix"`
	Index         IndexConfig `yaml:"index"`
}

// PathsConfig defines the source tree and output directory.
type PathsConfig struct {
	Plugins string `yaml:"plugins"`
	Output  string `yaml:"output"`
}

// IndexConfig configures the module index page.
type IndexConfig struct {
	Enabled  bool   `yaml:"enabled"`
	File     string `yaml:"file"`
	Template string `yaml:"template"` // Empty selects the built-in template
}

// Default returns the configuration matching the upstream repository layout.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Plugins: "../../openbr/plugins",
			Output:  "../docs/docs/plugins",
		},
		Exclude:       []string{"cmake"},
		APIDocsPrefix: "../cpp_api",
		Index:         IndexConfig{File: "index.md"},
	}
}

// Load reads and parses a config file from the given path. Values not set in
// the file keep their defaults. A .env file in the working directory, if
// present, is loaded before environment overrides are applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	_ = godotenv.Load()
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Parse decodes YAML config data over the defaults without validating it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides configured paths from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvPluginsDir); v != "" {
		c.Paths.Plugins = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Paths.Output = v
	}
}

// Validate checks the configuration for required fields and consistency.
func (c *Config) Validate() error {
	if c.Paths.Plugins == "" {
		return fmt.Errorf("paths.plugins is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Index.Enabled && c.Index.File == "" {
		return fmt.Errorf("index.file is required when index.enabled is set")
	}

	if err := validateDirectory(c.Paths.Plugins, "paths.plugins"); err != nil {
		return err
	}
	if c.Index.Template != "" {
		if _, err := os.Stat(c.Index.Template); err != nil {
			return fmt.Errorf("index.template: %w", err)
		}
	}

	return nil
}

// validateDirectory checks that a path exists and is a directory.
func validateDirectory(path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist: %s", name, path)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %s", name, path)
	}
	return nil
}

// IndexPath returns the path of the index page inside the output directory.
func (c *Config) IndexPath() string {
	return filepath.Join(c.Paths.Output, c.Index.File)
}
