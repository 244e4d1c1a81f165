package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MenuSource != "menu.json" {
		t.Errorf("menu_source: got %q", cfg.MenuSource)
	}
	if cfg.Scroll.HideAfter != 100 || cfg.Scroll.BackToTopAfter != 300 || cfg.Scroll.HeaderOffset != 80 {
		t.Errorf("scroll defaults: %+v", cfg.Scroll)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level: got %q", cfg.LogLevel)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urbancafe.yml")
	yml := "menu_source: https://example.com/menu.json\nlog_level: debug\nscroll:\n  row_height: 16\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("URBANCAFE_LOG_LEVEL", "warn")
	t.Setenv("URBANCAFE_SCROLL__HEADER_OFFSET", "40")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MenuSource != "https://example.com/menu.json" {
		t.Errorf("menu_source: got %q", cfg.MenuSource)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("env should override file, got %q", cfg.LogLevel)
	}
	if cfg.Scroll.RowHeight != 16 {
		t.Errorf("row_height: got %d", cfg.Scroll.RowHeight)
	}
	if cfg.Scroll.HeaderOffset != 40 {
		t.Errorf("header_offset: got %d", cfg.Scroll.HeaderOffset)
	}
	if cfg.Scroll.HideAfter != 100 {
		t.Errorf("unset nested keys should keep defaults, got %d", cfg.Scroll.HideAfter)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"color", func(c *Config) { c.Color = "sometimes" }},
		{"threshold", func(c *Config) { c.Scroll.HideAfter = -1 }},
		{"row height", func(c *Config) { c.Scroll.RowHeight = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
