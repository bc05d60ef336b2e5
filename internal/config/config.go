// Package config provides build settings loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SettingsEnv names the environment variable that points at a settings file.
const SettingsEnv = "HOMEPAGE_SETTINGS"

// Config holds the input and output locations of a build. It can be loaded
// from a JSON settings file; empty fields fall back to Default().
type Config struct {
	// Inputs
	Config    string `json:"config,omitempty"`    // Site configuration YAML
	Rankings  string `json:"rankings,omitempty"`  // Venue ranking dictionary YAML
	Papers    string `json:"papers,omitempty"`    // Published bibliography
	Preprints string `json:"preprints,omitempty"` // Preprint bibliography (optional)
	Template  string `json:"template,omitempty"`  // Page template; empty uses the built-in one

	// Output
	Output string `json:"output,omitempty"` // Rendered page

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed summaries
}

// Default returns the fixed relative paths used when nothing else is configured.
func Default() Config {
	return Config{
		Config:    filepath.Join("data", "config.yaml"),
		Rankings:  filepath.Join("data", "rankings.yaml"),
		Papers:    filepath.Join("data", "papers.bib"),
		Preprints: filepath.Join("data", "preprints.bib"),
		Output:    filepath.Join("output", "index.html"),
	}
}

// LoadConfig loads settings from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the required paths are set. Whether the files exist is
// left to the loader, which reports missing inputs with their own error type.
func (c *Config) Validate() error {
	if c.Config == "" {
		return fmt.Errorf("config error: 'config' path is required")
	}
	if c.Rankings == "" {
		return fmt.Errorf("config error: 'rankings' path is required")
	}
	if c.Papers == "" {
		return fmt.Errorf("config error: 'papers' path is required")
	}
	if c.Output == "" {
		return fmt.Errorf("config error: 'output' path is required")
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Config == "" {
		result.Config = defaults.Config
	}
	if result.Rankings == "" {
		result.Rankings = defaults.Rankings
	}
	if result.Papers == "" {
		result.Papers = defaults.Papers
	}
	if result.Preprints == "" {
		result.Preprints = defaults.Preprints
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
