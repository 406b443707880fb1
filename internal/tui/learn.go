package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bornomala/internal/app"
	"github.com/verte-zerg/bornomala/internal/bangla"
	"github.com/verte-zerg/bornomala/internal/theme"
)

const cardSlot = 16

func (m *Model) updateLearn(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	if m.settingsOpen {
		return m.updateSettings(ctx, msg)
	}
	count := m.app.Catalog().Len()
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.cursor = max(0, m.cursor-1)
	case "down", "j":
		m.cursor = min(count-1, m.cursor+1)
	case "left":
		m.cursor = m.levelStart(-1)
	case "right":
		m.cursor = m.levelStart(1)
	case "enter":
		if !m.app.IsUnlocked(m.cursor) {
			m.notice = "পাঠ " + bangla.Number(m.cursor+1) + " লক করা আছে"
			return m, nil
		}
		m.startLesson(m.cursor)
	case "l":
		m.cycleLayout(ctx)
	case "t":
		m.setNotice(m.app.SetTheme(ctx, theme.Next(m.app.Preferences().Theme)))
		m.applyTheme()
	case "p":
		m.startPractice()
	case "s":
		m.settingsOpen = true
	}
	return m, nil
}

func (m *Model) updateSettings(ctx context.Context, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1":
		m.setNotice(m.app.TogglePreference(ctx, app.PrefShowPhoneticHint))
	case "2":
		m.setNotice(m.app.TogglePreference(ctx, app.PrefShowWordCount))
	case "3":
		m.setNotice(m.app.TogglePreference(ctx, app.PrefShowKeyboardHint))
	case "s", "esc", "enter":
		m.settingsOpen = false
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) setNotice(err error) {
	m.notice = ""
	if err != nil {
		m.notice = err.Error()
	}
}

func (m *Model) cycleLayout(ctx context.Context) {
	layouts := m.app.Catalog().Layouts()
	if len(layouts) == 0 {
		return
	}
	next := layouts[0]
	for i, l := range layouts {
		if l == m.app.Layout() {
			next = layouts[(i+1)%len(layouts)]
			break
		}
	}
	m.setNotice(m.app.SetLayout(ctx, next))
}

// levelStart returns the first lesson of the level dir steps away from the cursor's level.
func (m *Model) levelStart(dir int) int {
	cat := m.app.Catalog()
	levels := cat.Levels()
	current := cat.LevelOf(m.cursor)
	target := current + dir
	if current < 0 || target < 0 || target >= len(levels) || len(levels[target].Lessons) == 0 {
		return m.cursor
	}
	return levels[target].Lessons[0]
}

func (m *Model) viewLearn() string {
	header := m.st.title.Render("বর্ণমালা") + "  " + m.st.statLabel.Render(fmt.Sprintf("layout: %s · theme: %s", m.app.Layout(), m.app.Preferences().Theme))
	body, cursorLine := m.renderLevels()
	footer := m.learnFooter()

	if m.width == 0 || m.height == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
	}
	m.viewport.SetContent(body)
	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine+3 > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorLine + 3 - m.viewport.Height)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), footer)
}

// renderLevels draws every level with its lesson cards and returns the line
// where the cursor's card row starts.
func (m *Model) renderLevels() (string, int) {
	cat := m.app.Catalog()
	perRow := 6
	if m.width > 0 {
		perRow = max(1, (m.width-2)/cardSlot)
	}
	var blocks []string
	cursorLine := 0
	lineCount := 0
	for li, level := range cat.Levels() {
		unlocked := m.app.Record().UnlockedLevels.Has(li)
		status := m.st.correct.Render("খোলা")
		if !unlocked {
			status = m.st.pending.Render("লক")
		}
		title := m.st.title.Render(fmt.Sprintf("স্তর %s: %s", bangla.Number(li+1), level.Title)) + "  " + status
		block := []string{title}
		lineCount++
		for start := 0; start < len(level.Lessons); start += perRow {
			end := min(start+perRow, len(level.Lessons))
			cards := make([]string, 0, end-start)
			for _, id := range level.Lessons[start:end] {
				if id == m.cursor {
					cursorLine = lineCount
				}
				cards = append(cards, m.renderCard(id, unlocked))
			}
			row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
			block = append(block, row)
			lineCount += lipgloss.Height(row)
		}
		block = append(block, "")
		lineCount++
		blocks = append(blocks, strings.Join(block, "\n"))
	}
	return strings.Join(blocks, "\n"), cursorLine
}

func (m *Model) renderCard(id int, unlocked bool) string {
	label := "পাঠ " + bangla.Number(id+1)
	detail := " "
	style := m.st.card
	switch {
	case !unlocked:
		detail = "লক"
		style = m.st.cardLocked
	case m.app.IsCompleted(id):
		detail = "✓"
		if p, ok := m.app.Record().PerformanceFor(id); ok {
			detail = fmt.Sprintf("✓ %s wpm", bangla.Number(p.WPM))
		}
		style = m.st.cardDone
	}
	if id == m.cursor {
		style = m.st.cardActive
	}
	return style.Render(label + "\n" + detail)
}

func (m *Model) learnFooter() string {
	var lines []string
	if lesson, ok := m.app.Catalog().Lesson(m.cursor); ok {
		lines = append(lines, m.st.accent.Render(fmt.Sprintf("পাঠ %s: %s", bangla.Number(m.cursor+1), lesson.Title)))
	}
	if m.settingsOpen {
		prefs := m.app.Preferences()
		lines = append(lines, m.st.footer.Render(fmt.Sprintf(
			"1 phonetic hint [%s]  2 word count [%s]  3 keyboard hint [%s]  s close",
			onOff(prefs.ShowPhoneticHint), onOff(prefs.ShowWordCount), onOff(prefs.ShowKeyboardHint))))
	} else {
		lines = append(lines, m.st.footer.Render("↑/↓ lesson  ←/→ level  enter start  l layout  t theme  p practice  s settings  q quit"))
	}
	if m.notice != "" {
		lines = append(lines, m.st.incorrect.Render(m.notice))
	}
	return strings.Join(lines, "\n")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
