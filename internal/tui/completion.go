package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bornomala/internal/bangla"
)

func (m *Model) updateCompletion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		if m.outcome.Practice {
			m.startPractice()
		} else {
			m.startLesson(m.outcome.Result.LessonID)
		}
	case "n":
		switch {
		case m.outcome.Practice:
			m.startPractice()
		case m.outcome.HasNext:
			m.cursor = m.outcome.Next
			m.startLesson(m.outcome.Next)
		default:
			return m.backToLearn()
		}
	case "esc", "enter":
		return m.backToLearn()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) viewCompletion() string {
	res := m.outcome.Result
	title := "অনুশীলন সম্পন্ন!"
	if !m.outcome.Practice {
		title = "পাঠ " + bangla.Number(res.LessonID+1) + " সম্পন্ন!"
	}
	stat := func(label, value string) string {
		return m.st.statLabel.Render(label+": ") + m.st.stat.Render(value)
	}
	lines := []string{
		m.st.title.Render(title),
		"",
		stat("WPM", bangla.Number(res.WPM)),
		stat("নির্ভুলতা", bangla.Number(res.Accuracy)+"%"),
		stat("মোট কীস্ট্রোক", bangla.Number(res.TotalKeystrokes)),
		stat("সঠিক", bangla.Number(res.CorrectChars)),
		stat("ভুল", bangla.Number(res.MistakeCount)),
	}
	if len(m.outcome.NewlyUnlocked) > 0 {
		levels := m.app.Catalog().Levels()
		names := make([]string, 0, len(m.outcome.NewlyUnlocked))
		for _, id := range m.outcome.NewlyUnlocked {
			name := "স্তর " + bangla.Number(id+1)
			if id < len(levels) && levels[id].Title != "" {
				name += " (" + levels[id].Title + ")"
			}
			names = append(names, name)
		}
		lines = append(lines, "", m.st.accent.Render("নতুন স্তর খুলেছে: "+strings.Join(names, ", ")))
	}
	next := "n অন্যান্য পাঠ"
	switch {
	case m.outcome.Practice:
		next = "n নতুন অনুশীলন"
	case m.outcome.HasNext:
		next = "n পরের পাঠ"
	}
	lines = append(lines, "", m.st.footer.Render("r আবার চেষ্টা  "+next+"  esc ফিরে যান"))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
