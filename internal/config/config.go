// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/studytasks/internal/logging"
	"github.com/idilsaglam/studytasks/internal/ui"
)

// Default values.
const (
	DefaultStoreFile = "tasks.json"
	DefaultTheme     = "classic"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultColor     = "auto"
)

// Config holds the runtime settings. Nothing is read from disk unless a
// config path is given explicitly.
type Config struct {
	StoreFile string `toml:"store_file"`
	Theme     string `toml:"theme"`      // classic, neon, mono
	Color     string `toml:"color"`      // auto, always, never
	LogLevel  string `toml:"log_level"`  // debug, info, warn, error
	LogFormat string `toml:"log_format"` // text, json, logfmt
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		StoreFile: DefaultStoreFile,
		Theme:     DefaultTheme,
		Color:     DefaultColor,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load returns defaults overlaid with the TOML file at path. An empty path
// means defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.StoreFile) == "" {
		errs = append(errs, errors.New("store_file is empty"))
	}
	if !slices.Contains(ui.ThemeNames, strings.ToLower(c.Theme)) {
		errs = append(errs, fmt.Errorf("invalid theme %q, must be one of: %s", c.Theme, strings.Join(ui.ThemeNames, ", ")))
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color))
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid log_level %q", c.LogLevel))
	}
	if !logging.ValidFormat(c.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid log_format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}
