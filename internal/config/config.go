// Package config loads colournodes settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/colournodes/internal/colour"
)

// Environment variables that override file settings.
const (
	EnvMode       = "COLOURNODES_MODE"
	EnvNormalize  = "COLOURNODES_NORMALIZE"
	EnvPermissive = "COLOURNODES_PERMISSIVE"
	EnvLogLevel   = "COLOURNODES_LOG_LEVEL"
	EnvPreview    = "COLOURNODES_PREVIEW"
	EnvPlugin     = "COLOURNODES_PLUGIN_PATH"
)

// Config holds defaults for the CLI and node server.
type Config struct {
	// Mode is the default classification mode.
	Mode colour.Mode `yaml:"mode"`
	// Normalize emits [0,1] channels from the hex parsers.
	Normalize bool `yaml:"normalize"`
	// Permissive enables host text clean-up and loose separators in batch parsing.
	Permissive bool `yaml:"permissive"`
	// LogLevel is an hclog level name.
	LogLevel string `yaml:"log_level"`
	// Preview draws colour swatches when stdout is a terminal.
	Preview bool `yaml:"preview"`
	// PluginPath routes node calls through an external node binary.
	PluginPath string `yaml:"plugin_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:     colour.ModeBasic,
		LogLevel: "warn",
		Preview:  true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/colournodes/config.yaml or its platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "colournodes", "config.yaml"), nil
}

// Load reads the file at path over the defaults, then applies environment overrides.
// A missing file is not an error when optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 - user-specified config path
		switch {
		case errors.Is(err, os.ErrNotExist) && optional:
		case err != nil:
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvMode); v != "" {
		c.Mode = colour.Mode(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvPlugin); v != "" {
		c.PluginPath = v
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvNormalize, &c.Normalize},
		{EnvPermissive, &c.Permissive},
		{EnvPreview, &c.Preview},
	}
	for _, b := range bools {
		v := os.Getenv(b.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", b.key, err)
		}
		*b.dst = parsed
	}
	return nil
}

// Validate checks the mode and log level and canonicalises the mode name.
func (c *Config) Validate() error {
	mode, err := colour.ParseMode(string(c.Mode))
	if err != nil {
		return fmt.Errorf("invalid mode: %w", err)
	}
	c.Mode = mode

	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %q (valid: trace, debug, info, warn, error, off)", c.LogLevel)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	return nil
}

// Level returns the configured hclog level.
func (c Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}
