// Package profileui provides the Bubble Tea profile interface.
package profileui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/bornomala/internal/app"
	"github.com/verte-zerg/bornomala/internal/bangla"
	"github.com/verte-zerg/bornomala/internal/model"
	"github.com/verte-zerg/bornomala/internal/stats"
	"github.com/verte-zerg/bornomala/internal/theme"
)

const (
	tabOverview = iota
	tabLessons
	tabCurves
)

const plotHeight = 10

type styles struct {
	activeNav   lipgloss.Style
	inactiveNav lipgloss.Style
	header      lipgloss.Style
	err         lipgloss.Style
	card        lipgloss.Style
	cardTitle   lipgloss.Style
	cardValue   lipgloss.Style
	tableMuted  lipgloss.Style
	modal       lipgloss.Style
	bar         lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		activeNav: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(p.Accent)),
		inactiveNav: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(p.Border)),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Faint)),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Incorrect)),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(p.Border)),
		cardTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		cardValue:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Bold(true),
		tableMuted: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(p.Incorrect)).
			Padding(1, 2),
		bar: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Completed)),
	}
}

// Model implements the Bubble Tea profile UI.
type Model struct {
	app     *app.App
	cfg     model.ProfileConfig
	palette theme.Palette
	st      styles

	report stats.Report
	errMsg string
	notice string

	tabs        []string
	activeTab   int
	viewports   []viewport.Model
	lessonTable table.Model

	width  int
	height int

	confirmReset bool
}

// NewModel constructs a profile UI model.
func NewModel(a *app.App, cfg model.ProfileConfig, palette theme.Palette) *Model {
	if cfg.Layout == "" {
		cfg.Layout = a.Layout()
	}
	m := &Model{
		app:     a,
		cfg:     cfg,
		palette: palette,
		st:      newStyles(palette),
		tabs:    []string{"Overview", "Lessons", "Curves"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.lessonTable = buildLessonTable(nil, 0, 1, palette)
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.confirmReset {
			return m.updateConfirm(msg)
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}
		if m.activeTab == tabLessons {
			m.lessonTable.Focus()
		} else {
			m.lessonTable.Blur()
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "=":
			m.cfg.CurveWindow = nextCurveWindow(m.cfg.CurveWindow)
			m.renderTabContents()
			return m, nil
		case "-":
			m.cfg.CurveWindow = prevCurveWindow(m.cfg.CurveWindow)
			m.renderTabContents()
			return m, nil
		case "R":
			if m.cfg.Layout != m.app.Layout() {
				m.notice = fmt.Sprintf("reset applies to the active layout (%s)", m.app.Layout())
				return m, nil
			}
			m.confirmReset = true
			return m, nil
		case "g", "home":
			if m.activeTab == tabLessons {
				m.lessonTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabLessons {
				m.lessonTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabLessons {
				var cmd tea.Cmd
				m.lessonTable, cmd = m.lessonTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.app.ResetProgress(context.Background())
		m.confirmReset = false
		m.notice = fmt.Sprintf("progress for %s reset", m.cfg.Layout)
		m.refreshReport()
	case "n", "N", "esc", "q":
		m.confirmReset = false
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.confirmReset {
		return fit(m.renderConfirmModal(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fit(m.renderHeader(), m.width, headerHeight)
	body := fit(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fit(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := max(1, lipgloss.Height(m.st.activeNav.Render("X")))
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if m.errMsg != "" || m.notice != "" {
		footerHeight++
	}
	bodyHeight = max(1, m.height-headerHeight-footerHeight)
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	m.lessonTable.SetWidth(m.width)
	m.lessonTable.SetHeight(max(1, vpHeight-1))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabLessons {
		m.lessonTable.Focus()
	} else {
		m.lessonTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, m.st.activeNav.Render(tab))
		} else {
			parts = append(parts, m.st.inactiveNav.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	last := "all"
	if m.cfg.Last > 0 {
		last = strconv.Itoa(m.cfg.Last)
	}
	summary := fmt.Sprintf("Layout: %s  last=%s  window=%d", m.cfg.Layout, last, m.cfg.CurveWindow)
	if m.width > 0 {
		summary = runewidth.Truncate(summary, m.width, "...")
	}
	return fit(m.renderTabs(), m.width, 0) + "\n" + fit(m.st.header.Render(summary), m.width, 0)
}

func (m *Model) renderFooter() string {
	help := m.st.header.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Reset: R  Quit: q")
	switch {
	case m.errMsg != "":
		return help + "\n" + m.st.err.Render(m.errMsg)
	case m.notice != "":
		return help + "\n" + m.st.header.Render(m.notice)
	}
	return help
}

func (m *Model) renderBody(height int) string {
	if m.activeTab == tabLessons {
		if len(m.report.Lessons) == 0 {
			return fit("No lessons found.", m.width, height)
		}
		return fit(m.st.tableMuted.Render(m.lessonTable.View()), m.width, height)
	}
	return fit(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) renderConfirmModal() string {
	body := []string{
		m.st.cardValue.Render("Reset progress"),
		fmt.Sprintf("Delete all %s progress and attempt history?", m.cfg.Layout),
		m.st.header.Render("y to confirm / n to cancel"),
	}
	box := m.st.modal.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) refreshReport() {
	report, err := m.app.Report(context.Background(), m.cfg)
	if err != nil {
		m.errMsg = err.Error()
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load profile.")
		}
		return
	}
	m.errMsg = ""
	m.report = report
	m.lessonTable.SetRows(lessonTableRows(report.Lessons))
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if m.errMsg != "" {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(m.renderOverview(width))
	m.viewports[tabCurves].SetContent(m.renderCurves(width))
}

func (m *Model) renderOverview(width int) string {
	s := m.report.Summary
	bar := m.st.bar.Render(stats.CompletionBar(s.Completed, s.Total, 30))
	progress := fmt.Sprintf("%s %s/%s", bar, bangla.Number(s.Completed), bangla.Number(s.Total))
	if s.Lessons == 0 {
		return progress + "\n\nNo lessons completed yet."
	}
	cards := []string{
		m.metricCard("Completed", fmt.Sprintf("%d/%d", s.Completed, s.Total)),
		m.metricCard("Avg WPM", fmt.Sprintf("%.1f", s.AvgWPM)),
		m.metricCard("Best WPM", fmt.Sprintf("%d", s.BestWPM)),
		m.metricCard("Avg Acc", fmt.Sprintf("%.1f%%", s.AvgAccuracy)),
		m.metricCard("Attempts", fmt.Sprintf("%d", len(m.report.Attempts))),
	}
	var block string
	if width < 80 {
		block = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4])
		block = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}
	out := progress + "\n\n" + block
	if len(m.report.Weak) > 0 {
		names := make([]string, len(m.report.Weak))
		for i, id := range m.report.Weak {
			names[i] = "পাঠ " + bangla.Number(id+1)
		}
		out += "\n\n" + m.st.header.Render("Needs practice: "+strings.Join(names, ", "))
	}
	return out
}

func (m *Model) metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", m.st.cardTitle.Render(label), m.st.cardValue.Render(value))
	return m.st.card.Render(content)
}

func (m *Model) renderCurves(width int) string {
	var buf bytes.Buffer
	err := stats.RenderCurves(&buf, m.report.Attempts, stats.CurveOptions{
		Window:     m.cfg.CurveWindow,
		TotalWidth: width,
		Height:     plotHeight,
		Color:      true,
		Palette:    stats.Palette{WPM: m.palette.WPM, Accuracy: m.palette.Accuracy},
	})
	if err != nil {
		return fmt.Sprintf("Failed to render curves: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

var lessonColumns = []table.Column{
	{Title: "Lesson", Width: 8},
	{Title: "Title", Width: 18},
	{Title: "Level", Width: 6},
	{Title: "Status", Width: 7},
	{Title: "WPM", Width: 5},
	{Title: "Accuracy", Width: 9},
	{Title: "Date", Width: 10},
}

func buildLessonTable(rows []stats.LessonRow, width, height int, p theme.Palette) table.Model {
	t := table.New(
		table.WithColumns(lessonColumns),
		table.WithRows(lessonTableRows(rows)),
		table.WithHeight(max(1, height-1)),
	)
	t.SetWidth(width)
	t.SetStyles(lessonTableStyles(p))
	return t
}

func lessonTableRows(rows []stats.LessonRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		wpm, acc, date := "-", "-", "-"
		if r.HasResult {
			wpm = strconv.Itoa(r.WPM)
			acc = fmt.Sprintf("%d%%", r.Accuracy)
			date = r.Date
		}
		level := "-"
		if r.Level >= 0 {
			level = strconv.Itoa(r.Level + 1)
		}
		out = append(out, table.Row{
			"পাঠ " + bangla.Number(r.Lesson+1),
			r.Title,
			level,
			r.Status(),
			wpm,
			acc,
			date,
		})
	}
	return out
}

func lessonTableStyles(p theme.Palette) table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(p.Border)).
		Foreground(lipgloss.Color(p.Text)).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color(p.Accent)).
		Bold(true)
	return styles
}

var curveWindows = []int{1, 3, 5, 10, 20, 50}

func nextCurveWindow(n int) int {
	for _, w := range curveWindows {
		if w > n {
			return w
		}
	}
	return curveWindows[len(curveWindows)-1]
}

func prevCurveWindow(n int) int {
	for i := len(curveWindows) - 1; i >= 0; i-- {
		if curveWindows[i] < n {
			return curveWindows[i]
		}
	}
	return curveWindows[0]
}

func modalWidth(width int) int {
	return max(40, min(width-4, 80))
}

// fit pads every line to width and clips or pads to height lines.
// A zero height keeps the line count.
func fit(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, line := range lines {
		if gap := width - lipgloss.Width(line); gap > 0 {
			lines[i] = line + strings.Repeat(" ", gap)
		}
	}
	return strings.Join(lines, "\n")
}
