package site

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Mode is the color scheme of the page.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ThemeKey is the preference key the mode is stored under.
const ThemeKey = "theme"

// ParseMode accepts "light" or "dark", case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
}

// ModeForHour is dark from 18:00 through 06:59.
func ModeForHour(hour int) Mode {
	if hour >= 18 || hour <= 6 {
		return ModeDark
	}
	return ModeLight
}

// PrefStore persists single string preferences.
type PrefStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// ThemeStore applies and persists the light/dark mode.
// The applied mode is the source of truth for toggling; storage is only
// read at startup.
type ThemeStore struct {
	prefs   PrefStore
	log     *slog.Logger
	now     func() time.Time
	applied Mode
	icon    string
}

func NewThemeStore(prefs PrefStore, now func() time.Time, log *slog.Logger) *ThemeStore {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &ThemeStore{prefs: prefs, now: now, log: log, applied: ModeLight, icon: moonIcon}
}

const (
	sunIcon  = "☀"
	moonIcon = "☾"
)

func (t *ThemeStore) Applied() Mode { return t.applied }

func (t *ThemeStore) Dark() bool { return t.applied == ModeDark }

// ToggleIcon is a sun while dark and a moon while light.
func (t *ThemeStore) ToggleIcon() string { return t.icon }

// SetTheme applies mode, updates the toggle icon and persists the choice.
// The mode stays applied even if persisting fails.
func (t *ThemeStore) SetTheme(mode Mode) error {
	if mode != ModeDark {
		mode = ModeLight
	}
	t.applied = mode
	t.icon = moonIcon
	if mode == ModeDark {
		t.icon = sunIcon
	}
	if t.prefs == nil {
		return nil
	}
	if err := t.prefs.Set(ThemeKey, string(mode)); err != nil {
		t.log.Warn("theme not persisted", "mode", mode, "error", err)
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}

// AutoThemeFromTime derives the mode from the local hour and applies it.
func (t *ThemeStore) AutoThemeFromTime() Mode {
	mode := ModeForHour(t.now().Hour())
	_ = t.SetTheme(mode)
	return mode
}

// Init applies the stored preference, or the time-derived one when absent.
func (t *ThemeStore) Init() Mode {
	if t.prefs != nil {
		v, ok, err := t.prefs.Get(ThemeKey)
		if err != nil {
			t.log.Warn("theme preference unreadable", "error", err)
		}
		if ok {
			if mode, err := ParseMode(v); err == nil {
				_ = t.SetTheme(mode)
				return mode
			}
			t.log.Warn("ignoring stored theme", "value", v)
		}
	}
	return t.AutoThemeFromTime()
}

// Toggle flips the applied mode.
func (t *ThemeStore) Toggle() Mode {
	next := ModeDark
	if t.applied == ModeDark {
		next = ModeLight
	}
	_ = t.SetTheme(next)
	return next
}
