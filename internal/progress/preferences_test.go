package progress

import (
	"context"
	"testing"

	"github.com/verte-zerg/bornomala/internal/model"
)

func TestPreferencesRoundTrip(t *testing.T) {
	st, log := openStore(t)
	ps := New(st, log)
	ctx := context.Background()

	prefs := model.DefaultPreferences()
	prefs.KeyboardLayout = model.LayoutBijoy
	prefs.Theme = model.ThemeDark
	prefs.OnboardingCompleted = true
	prefs.ShowKeyboardHint = false
	if err := ps.SavePreferences(ctx, prefs); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := ps.LoadPreferences(ctx); got != prefs {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, prefs)
	}
}

func TestDecodePreferencesMigratesDarkMode(t *testing.T) {
	prefs, err := DecodePreferences(`{"keyboardLayout":"bijoy","isDarkMode":true}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if prefs.Theme != model.ThemeDark {
		t.Fatalf("expected dark theme, got %q", prefs.Theme)
	}
	if prefs.KeyboardLayout != model.LayoutBijoy {
		t.Fatalf("unexpected layout %q", prefs.KeyboardLayout)
	}
	if !prefs.ShowPhoneticHint || !prefs.ShowWordCount || !prefs.ShowKeyboardHint {
		t.Fatalf("expected missing flags to keep defaults: %+v", prefs)
	}

	prefs, err = DecodePreferences(`{"isDarkMode":false,"theme":"dark"}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if prefs.Theme != model.ThemeDark {
		t.Fatalf("expected explicit theme to win, got %q", prefs.Theme)
	}
}

func TestDecodePreferencesResetsUnknownValues(t *testing.T) {
	prefs, err := DecodePreferences(`{"keyboardLayout":"dvorak","theme":"neon","showWordCount":false}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if prefs.KeyboardLayout != model.LayoutAvro || prefs.Theme != model.ThemeSystem {
		t.Fatalf("expected defaults for unknown values: %+v", prefs)
	}
	if prefs.ShowWordCount {
		t.Fatalf("expected showWordCount=false to be kept")
	}
}
