// Package config provides configuration loading and management for the
// registry builder.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variables consumed by fontreg.
const EnvPrefix = "FONTREG"

// DefaultOutputPath is where the registry JSON is written when the
// configuration does not override it. The path is relative to the working
// directory of the run.
const DefaultOutputPath = "registry/fonti_registry.json"

// DefaultCategories returns the licensing bucket directories scanned when
// the configuration does not override them. Order is significant: a font
// identifier appearing under two categories keeps the entry from the later
// one.
func DefaultCategories() []string {
	return []string{"ofl", "apache", "ufl"}
}

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path       string
	basePath   string
	outputPath string
	categories []string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		// Validate the path to prevent path traversal attacks
		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// WithBasePath overrides the font tree root, taking precedence over the
// value from the config file.
func WithBasePath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("base path is required")
		}
		cfg.basePath = path
		return nil
	}
}

// WithOutputPath overrides the registry output file, taking precedence
// over the value from the config file.
func WithOutputPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("output path is required")
		}
		cfg.outputPath = path
		return nil
	}
}

// WithCategories overrides the category list, taking precedence over the
// value from the config file.
func WithCategories(categories []string) Option {
	return func(cfg *loaderConfig) error {
		if len(categories) == 0 {
			return fmt.Errorf("at least one category is required")
		}
		cfg.categories = categories
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// BasePath is the root of the font package tree, containing one
	// directory per category.
	BasePath string `yaml:"basePath"`

	// OutputPath is the file the registry JSON is written to.
	// Defaults to DefaultOutputPath.
	OutputPath string `yaml:"outputPath,omitempty"`

	// Categories are the licensing bucket directories scanned, in order.
	// Defaults to DefaultCategories.
	Categories []string `yaml:"categories,omitempty"`
}

// NewConfig builds a Config from an optional YAML file plus overrides,
// applies defaults, and validates the result.
func NewConfig(opts ...Option) (*Config, error) {
	loader := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loader); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if loader.path != "" {
		data, err := os.ReadFile(loader.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if loader.basePath != "" {
		cfg.BasePath = loader.basePath
	}
	if loader.outputPath != "" {
		cfg.OutputPath = loader.outputPath
	}
	if len(loader.categories) > 0 {
		cfg.Categories = loader.categories
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories()
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.BasePath == "" {
		return fmt.Errorf("basePath is required")
	}

	seen := make(map[string]bool, len(c.Categories))
	for _, category := range c.Categories {
		if category == "" {
			return fmt.Errorf("category name cannot be empty")
		}
		if strings.ContainsAny(category, `/\`) || category != filepath.Base(category) {
			return fmt.Errorf("category %q must be a bare directory name", category)
		}
		if seen[category] {
			return fmt.Errorf("duplicate category %q", category)
		}
		seen[category] = true
	}

	return nil
}
