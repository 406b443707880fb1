package theme

import (
	"testing"

	"github.com/verte-zerg/bornomala/internal/model"
)

func TestIsDark(t *testing.T) {
	if !IsDark(model.ThemeDark, func() bool { return false }) {
		t.Fatalf("dark theme must be dark")
	}
	if IsDark(model.ThemeLight, func() bool { return true }) {
		t.Fatalf("light theme must not be dark")
	}
	if !IsDark(model.ThemeSystem, func() bool { return true }) {
		t.Fatalf("system theme must follow detector")
	}
	if IsDark(model.ThemeSystem, func() bool { return false }) {
		t.Fatalf("system theme must follow detector")
	}
}

func TestNextCycles(t *testing.T) {
	name := model.ThemeSystem
	seen := []string{}
	for i := 0; i < 3; i++ {
		name = Next(name)
		seen = append(seen, name)
	}
	if seen[0] != model.ThemeLight || seen[1] != model.ThemeDark || seen[2] != model.ThemeSystem {
		t.Fatalf("unexpected cycle: %v", seen)
	}
}

func TestPaletteChartColours(t *testing.T) {
	if For(true).Remaining == For(false).Remaining {
		t.Fatalf("expected theme-specific remaining colour")
	}
	if For(true).WPM != "#81B29A" {
		t.Fatalf("unexpected WPM colour %s", For(true).WPM)
	}
}
