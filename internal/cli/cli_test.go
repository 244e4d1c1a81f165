package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupHome(t *testing.T) (home, cfgPath string) {
	t.Helper()
	dir := t.TempDir()
	home = filepath.Join(dir, "home")
	menu := filepath.Join(dir, "menu.json")
	if err := os.WriteFile(menu, []byte(`{"panini":[{"name":"Classico","price":"6"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath = filepath.Join(dir, "urbancafe.yml")
	yml := "menu_source: " + menu + "\nhome: " + home + "\ncolor: never\n"
	if err := os.WriteFile(cfgPath, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	return home, cfgPath
}

func TestThemeCommandPersists(t *testing.T) {
	home, cfg := setupHome(t)
	if code := Run(context.Background(), []string{"--config", cfg, "theme", "dark"}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	b, err := os.ReadFile(filepath.Join(home, "preferences.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"theme": "dark"`) {
		t.Fatalf("preferences: %s", b)
	}

	if code := Run(context.Background(), []string{"--config", cfg, "theme", "toggle"}); code != 0 {
		t.Fatalf("toggle exit code %d", code)
	}
	b, _ = os.ReadFile(filepath.Join(home, "preferences.json"))
	if !strings.Contains(string(b), `"theme": "light"`) {
		t.Fatalf("after toggle: %s", b)
	}

	if code := Run(context.Background(), []string{"--config", cfg, "theme", "auto"}); code != 0 {
		t.Fatalf("auto exit code %d", code)
	}
	b, _ = os.ReadFile(filepath.Join(home, "preferences.json"))
	if strings.Contains(string(b), "theme") {
		t.Fatalf("auto should clear the preference: %s", b)
	}
}

func TestUsageErrors(t *testing.T) {
	_, cfg := setupHome(t)
	tests := []struct {
		name string
		args []string
	}{
		{"bad theme", []string{"theme", "sepia"}},
		{"unknown category", []string{"show", "pizza"}},
		{"missing category", []string{"show"}},
		{"unknown command", []string{"order"}},
		{"bad log level", []string{"--log-level", "loud", "categories"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", cfg}, tt.args...)
			if code := Run(context.Background(), args); code != 2 {
				t.Fatalf("exit code %d, want 2", code)
			}
		})
	}
}

func TestShowAndCategories(t *testing.T) {
	home, cfg := setupHome(t)
	for _, args := range [][]string{{"show", "Panini"}, {"show", "vini"}, {"categories"}} {
		if code := Run(context.Background(), append([]string{"--config", cfg}, args...)); code != 0 {
			t.Fatalf("%v: exit code %d", args, code)
		}
	}
	b, err := os.ReadFile(filepath.Join(home, "urbancafe.log"))
	if err != nil {
		t.Fatalf("log file: %v", err)
	}
	if !strings.Contains(string(b), "menu loaded") {
		t.Fatalf("log misses menu load: %s", b)
	}
}

func TestShowWithMissingMenu(t *testing.T) {
	_, cfg := setupHome(t)
	args := []string{"--config", cfg, "--menu", filepath.Join(t.TempDir(), "gone.json"), "show", "birre"}
	if code := Run(context.Background(), args); code != 0 {
		t.Fatalf("menu failure should not fail the command, got %d", code)
	}
}

func TestThemeOutputGoesToWriter(t *testing.T) {
	_, cfg := setupHome(t)
	var out, errOut bytes.Buffer
	if code := run(context.Background(), []string{"--config", cfg, "theme", "dark"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "theme dark") {
		t.Fatalf("stdout: %q", out.String())
	}

	out.Reset()
	if code := run(context.Background(), []string{"--config", cfg, "theme", "sepia"}, &out, &errOut); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
	if !strings.Contains(errOut.String(), "sepia") {
		t.Fatalf("stderr: %q", errOut.String())
	}
}
