package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Single small JSON file, one key per preference.
// No locking; the app is a single local process.

const prefsFileName = "preferences.json"

// HomeDir resolves the directory holding preferences and logs:
// the override if set, else ~/.urbancafe.
func HomeDir(override string) (string, error) {
	if d := strings.TrimSpace(override); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".urbancafe"), nil
}

// Preferences is a file-backed key/value store.
type Preferences struct {
	Path string
}

// NewPreferences stores its file inside dir.
func NewPreferences(dir string) *Preferences {
	return &Preferences{Path: filepath.Join(dir, prefsFileName)}
}

func (p *Preferences) read() (map[string]string, error) {
	b, err := os.ReadFile(p.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	m := map[string]string{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	return m, nil
}

// Get returns the stored value and whether it was present.
func (p *Preferences) Get(key string) (string, bool, error) {
	m, err := p.read()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// Set writes key=value, keeping other keys untouched.
func (p *Preferences) Set(key, value string) error {
	m, err := p.read()
	if err != nil {
		// a corrupt file is replaced rather than blocking the preference
		m = map[string]string{}
	}
	m[key] = value
	if err := os.MkdirAll(filepath.Dir(p.Path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p.Path, b, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Delete removes a key; missing keys and files are not an error.
func (p *Preferences) Delete(key string) error {
	m, err := p.read()
	if err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p.Path, b, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
