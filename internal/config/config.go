package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/linkextr/internal/foundation/errors"
)

// DefaultPath is the config file picked up from the working directory when
// no --config flag is given.
const DefaultPath = "linkextr.yaml"

// Config represents the application configuration. Every field has a CLI
// flag counterpart; flags win.
type Config struct {
	Prefix      string   `yaml:"prefix,omitempty"`       // Origin joined in front of absolute-path links
	Images      bool     `yaml:"images"`                 // Also extract image sources
	AllURIs     bool     `yaml:"alluri"`                 // Keep relative targets verbatim
	Output      string   `yaml:"output,omitempty"`       // Output file, stdout when empty
	Format      Format   `yaml:"format,omitempty"`       // text or json
	Extensions  []string `yaml:"extensions,omitempty"`   // File extensions picked up when walking a directory
	Exclude     []string `yaml:"exclude,omitempty"`      // Glob patterns matched against base names
	Jobs        int      `yaml:"jobs,omitempty"`         // Parallel sources, 0 means one per CPU
	MetricsFile string   `yaml:"metrics_file,omitempty"` // Prometheus textfile written after a run
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Format:     FormatText,
		Extensions: []string{".md"},
	}
}

// Load reads the configuration at path.
//
// An empty path means DefaultPath, which may be absent. A path given
// explicitly must exist. Environment variables from .env files are loaded
// first and ${VAR} references in the YAML are expanded.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	if err := LoadEnvFiles(); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to load .env file").Fatal().Build()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return cfg, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, ferrors.NotFoundError(fmt.Sprintf("configuration file not found: %s", path)).
			WithContext("path", path).Build()
	case err != nil:
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", path).Fatal().Build()
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			WithContext("path", path).Fatal().Build()
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize canonicalizes enums, fills defaults for empty fields and
// validates the result. It is run after loading and again after CLI flags
// have been applied.
func (c *Config) Finalize() error {
	format, err := ParseFormat(string(c.Format))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid format").Fatal().Build()
	}
	c.Format = format
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".md"}
	}

	if err := c.Validate(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid configuration").Fatal().Build()
	}
	return nil
}

// Init creates a new configuration file with example content.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path)).
			WithContext("path", path).Build()
	}

	example := Config{
		Prefix:     "https://example.com",
		Format:     FormatText,
		Extensions: []string{".md"},
		Exclude:    []string{"CHANGELOG.md", "_*.md"},
		Output:     "links.txt",
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).Build()
	}
	return nil
}
