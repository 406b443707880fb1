package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/verte-zerg/bornomala/internal/eventlog"
	"github.com/verte-zerg/bornomala/internal/model"
	"github.com/verte-zerg/bornomala/internal/theme"
)

// LoadPreferences returns stored preferences merged over the defaults.
func (s *Store) LoadPreferences(ctx context.Context) model.Preferences {
	raw, ok, err := s.kv.Get(ctx, PreferencesKey)
	if err != nil {
		s.log.Warn(eventlog.Event{Event: eventlog.EventPreferencesLoadFailed, Error: err.Error()})
		return model.DefaultPreferences()
	}
	if !ok {
		return model.DefaultPreferences()
	}
	prefs, err := DecodePreferences(raw)
	if err != nil {
		s.log.Warn(eventlog.Event{Event: eventlog.EventPreferencesLoadFailed, Error: err.Error()})
		return model.DefaultPreferences()
	}
	return prefs
}

// SavePreferences writes prefs. Failures are logged and returned.
func (s *Store) SavePreferences(ctx context.Context, prefs model.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := s.kv.Put(ctx, PreferencesKey, string(data)); err != nil {
		s.log.Warn(eventlog.Event{Event: eventlog.EventProgressSaveFailed, Message: "preferences", Error: err.Error()})
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

type storedPreferences struct {
	model.Preferences
	IsDarkMode *bool `json:"isDarkMode,omitempty"`
}

// DecodePreferences parses a stored blob. Missing fields keep their defaults,
// the legacy isDarkMode flag becomes a theme, and unknown values are reset.
func DecodePreferences(raw string) (model.Preferences, error) {
	stored := storedPreferences{Preferences: model.DefaultPreferences()}
	stored.Theme = ""
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return model.Preferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	prefs := stored.Preferences
	if prefs.Theme == "" {
		prefs.Theme = model.ThemeSystem
		if stored.IsDarkMode != nil {
			prefs.Theme = model.ThemeLight
			if *stored.IsDarkMode {
				prefs.Theme = model.ThemeDark
			}
		}
	}
	if !theme.Valid(prefs.Theme) {
		prefs.Theme = model.ThemeSystem
	}
	if _, ok := model.ParseLayout(string(prefs.KeyboardLayout)); !ok {
		prefs.KeyboardLayout = model.LayoutAvro
	}
	return prefs, nil
}
