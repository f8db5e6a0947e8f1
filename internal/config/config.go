package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alfredjeanlab/discovery/internal/model"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	Path     string            `toml:"-"`         // DISCOVERY_CONFIG (default ~/.config/discovery/config.toml)
	LogLevel string            `toml:"log_level"` // DISCOVERY_LOG_LEVEL (default "info")
	Color    string            `toml:"color"`     // DISCOVERY_COLOR (auto, always, never; default "auto")
	Defaults map[string]string `toml:"defaults"`  // wire-key table seeding every built query
}

// Load reads the config file, if any, then applies environment overrides.
// A missing file is not an error.
func Load() (*Config, error) {
	path := os.Getenv("DISCOVERY_CONFIG")
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit file path.
func LoadFile(path string) (*Config, error) {
	c := &Config{Path: path}
	if _, err := toml.DecodeFile(path, c); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	c.LogLevel = envOrDefault("DISCOVERY_LOG_LEVEL", orDefault(c.LogLevel, "info"))
	c.Color = envOrDefault("DISCOVERY_COLOR", orDefault(c.Color, ColorAuto))
	if c.Defaults == nil {
		c.Defaults = map[string]string{}
	}

	if _, err := c.Level(); err != nil {
		return nil, err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("DISCOVERY_COLOR: unknown mode %q (must be auto, always or never)", c.Color)
	}
	if _, err := c.BaseParams(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultPath returns ~/.config/discovery/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(home, ".config", "discovery", "config.toml"), nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("DISCOVERY_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

// BaseParams decodes the [defaults] table into the params every built
// query starts from.
func (c *Config) BaseParams() (model.Params, error) {
	p, err := model.Decode(c.Defaults)
	if err != nil {
		return model.Defaults(), fmt.Errorf("config defaults: %w", err)
	}
	return p, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
