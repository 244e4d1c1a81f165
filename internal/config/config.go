package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment overrides, e.g. URBANCAFE_MENU_SOURCE.
const EnvPrefix = "URBANCAFE_"

// Config is the runtime configuration of the page.
type Config struct {
	MenuSource string `koanf:"menu_source"`
	ImageDir   string `koanf:"image_dir"`
	Home       string `koanf:"home"`
	LogLevel   string `koanf:"log_level"`
	LogFile    string `koanf:"log_file"`
	Color      string `koanf:"color"` // auto | always | never

	Scroll ScrollConfig `koanf:"scroll"`
}

// ScrollConfig mirrors the page geometry in pixels.
type ScrollConfig struct {
	HideAfter      int `koanf:"hide_after"`
	BackToTopAfter int `koanf:"back_to_top_after"`
	HeaderOffset   int `koanf:"header_offset"`
	RowHeight      int `koanf:"row_height"`
	ColumnWidth    int `koanf:"column_width"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		MenuSource: "menu.json",
		ImageDir:   ".",
		LogLevel:   "info",
		LogFile:    "urbancafe.log",
		Color:      "auto",
		Scroll: ScrollConfig{
			HideAfter:      100,
			BackToTopAfter: 300,
			HeaderOffset:   80,
			RowHeight:      20,
			ColumnWidth:    8,
		},
	}
}

// Load starts from defaults, overlays the YAML file at path when it
// exists, then URBANCAFE_* environment variables. Nested keys use a
// double underscore: URBANCAFE_SCROLL__ROW_HEIGHT.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
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

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

var (
	validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validColors    = map[string]bool{"auto": true, "always": true, "never": true}
)

// Validate checks the values that the page depends on.
func (c *Config) Validate() error {
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if !validColors[strings.ToLower(c.Color)] {
		return fmt.Errorf("invalid color %q: must be one of auto, always, never", c.Color)
	}
	s := c.Scroll
	if s.HideAfter < 0 || s.BackToTopAfter < 0 || s.HeaderOffset < 0 {
		return fmt.Errorf("scroll thresholds must be non-negative")
	}
	if s.RowHeight <= 0 || s.ColumnWidth <= 0 {
		return fmt.Errorf("row_height and column_width must be positive")
	}
	return nil
}
