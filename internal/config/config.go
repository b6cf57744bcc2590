// Package config loads termfolio settings from defaults, a YAML file, a .env
// file and TERMFOLIO_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/kyaoi/termfolio/internal/render"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "TERMFOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (TERMFOLIO_*). Variables from a .env file in
// the working directory are loaded first and never replace ones already set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// TERMFOLIO_SCROLL__FPS -> scroll.fps, TERMFOLIO_ROW_HEIGHT -> row_height.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.RowHeight <= 0 {
		return fmt.Errorf("row_height must be positive")
	}
	if c.ScrolledThreshold < 0 {
		return fmt.Errorf("scrolled_threshold must be non-negative")
	}
	if c.ProbeLine < 0 {
		return fmt.Errorf("probe_line must be non-negative")
	}
	if c.Scroll.FPS <= 0 {
		return fmt.Errorf("scroll.fps must be positive")
	}
	if c.Scroll.Frequency <= 0 {
		return fmt.Errorf("scroll.frequency must be positive")
	}
	if c.Scroll.Damping <= 0 {
		return fmt.Errorf("scroll.damping must be positive")
	}
	if c.Style != "" && !render.ValidStyle(c.Style) {
		return fmt.Errorf("invalid style %q", c.Style)
	}
	return nil
}
