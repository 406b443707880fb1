package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bornomala/internal/theme"
)

type styles struct {
	palette    theme.Palette
	correct    lipgloss.Style
	incorrect  lipgloss.Style
	pending    lipgloss.Style
	cursor     lipgloss.Style
	hint       lipgloss.Style
	footer     lipgloss.Style
	title      lipgloss.Style
	accent     lipgloss.Style
	card       lipgloss.Style
	cardActive lipgloss.Style
	cardLocked lipgloss.Style
	cardDone   lipgloss.Style
	input      lipgloss.Style
	inputShake lipgloss.Style
	stat       lipgloss.Style
	statLabel  lipgloss.Style
	selected   lipgloss.Style
	unselected lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	pending := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Padding(0, 1).
		Width(12).
		Align(lipgloss.Center)
	return styles{
		palette:    p,
		correct:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Correct)),
		incorrect:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Incorrect)),
		pending:    pending,
		cursor:     pending.Underline(true),
		hint:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Faint)).Italic(true),
		footer:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Faint)),
		title:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Bold(true),
		accent:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		card:       card.Foreground(lipgloss.Color(p.Text)),
		cardActive: card.BorderForeground(lipgloss.Color(p.Accent)).Foreground(lipgloss.Color(p.Accent)).Bold(true),
		cardLocked: card.Foreground(lipgloss.Color(p.Faint)),
		cardDone:   card.Foreground(lipgloss.Color(p.Completed)),
		input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(p.Border)).
			Foreground(lipgloss.Color(p.Text)).
			Width(40),
		inputShake: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(p.Incorrect)).
			Foreground(lipgloss.Color(p.Incorrect)).
			Width(40).
			MarginLeft(2),
		stat:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Bold(true),
		statLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		selected:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true),
		unselected: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
	}
}
