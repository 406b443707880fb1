// Package theme resolves the theme preference and exposes colour palettes.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bornomala/internal/model"
)

// Palette holds the colours used by the renderer and the charts.
type Palette struct {
	Dark      bool
	Text      string
	Muted     string
	Faint     string
	Correct   string
	Incorrect string
	Accent    string
	Border    string
	WPM       string
	Accuracy  string
	Completed string
	Remaining string
}

var darkPalette = Palette{
	Dark:      true,
	Text:      "#E2E8F0",
	Muted:     "#8C8C8C",
	Faint:     "#6E6E6E",
	Correct:   "#81B29A",
	Incorrect: "#FF4D4F",
	Accent:    "#C89A3A",
	Border:    "#4A5568",
	WPM:       "#81B29A",
	Accuracy:  "#F2CC8F",
	Completed: "#81B29A",
	Remaining: "#4A5568",
}

var lightPalette = Palette{
	Text:      "#1A202C",
	Muted:     "#5F5F5F",
	Faint:     "#8C8C8C",
	Correct:   "#2F855A",
	Incorrect: "#C53030",
	Accent:    "#B7791F",
	Border:    "#CBD5E0",
	WPM:       "#81B29A",
	Accuracy:  "#F2CC8F",
	Completed: "#81B29A",
	Remaining: "#F4F3EE",
}

// Valid reports whether name is a known theme preference.
func Valid(name string) bool {
	switch name {
	case model.ThemeSystem, model.ThemeLight, model.ThemeDark:
		return true
	}
	return false
}

// Next cycles system -> light -> dark -> system.
func Next(name string) string {
	switch name {
	case model.ThemeSystem:
		return model.ThemeLight
	case model.ThemeLight:
		return model.ThemeDark
	default:
		return model.ThemeSystem
	}
}

// IsDark resolves a theme preference; "system" asks the detector.
func IsDark(name string, detect func() bool) bool {
	switch name {
	case model.ThemeDark:
		return true
	case model.ThemeLight:
		return false
	}
	if detect == nil {
		return true
	}
	return detect()
}

// Resolve returns the palette for a theme preference using the terminal background.
func Resolve(name string) Palette {
	return For(IsDark(name, lipgloss.HasDarkBackground))
}

// For returns the dark or light palette.
func For(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}
