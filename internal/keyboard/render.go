package keyboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bornomala/internal/theme"
)

// Render draws the keyboard with the highlighted key and, if needed, both Shift keys.
func Render(p theme.Palette, h Highlight, active bool) string {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))
	lit := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Background(lipgloss.Color(p.Accent)).Bold(true)
	shift := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Background(lipgloss.Color(p.Border))

	lines := make([]string, 0, len(Rows))
	for _, row := range Rows {
		cells := make([]string, 0, len(row))
		for _, k := range row {
			label := k.Label
			if label == "" {
				label = k.Name
			}
			width := k.Width
			if width == 0 {
				width = 3
			}
			cell := centre(label, width)
			switch {
			case active && k.Name == h.Key:
				cells = append(cells, lit.Render(cell))
			case active && h.Shift && (k.Name == KeyShiftLeft || k.Name == KeyShiftRight):
				cells = append(cells, shift.Render(cell))
			default:
				cells = append(cells, base.Render(cell))
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func centre(label string, width int) string {
	if len(label) >= width {
		return label
	}
	pad := width - len(label)
	left := pad / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left)
}
