package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bornomala/internal/bangla"
	"github.com/verte-zerg/bornomala/internal/keyboard"
	"github.com/verte-zerg/bornomala/internal/model"
	"github.com/verte-zerg/bornomala/internal/session"
	"github.com/verte-zerg/bornomala/internal/stats"
)

func (m *Model) updateLesson(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	if s == nil {
		return m.backToLearn()
	}
	switch msg.Type {
	case tea.KeyEsc:
		return m.backToLearn()
	case tea.KeyEnter:
		res := s.TryAdvance(session.KeyEnter)
		return m.afterAdvance(res, true)
	case tea.KeySpace:
		res := s.TryAdvance(session.KeySpace)
		if res.Rejected {
			m.typeRunes([]rune{' '})
			return m, nil
		}
		return m.afterAdvance(res, false)
	case tea.KeyBackspace, tea.KeyDelete:
		if len(m.input) == 0 {
			return m, nil
		}
		m.input = m.input[:len(m.input)-1]
		s.RecordInput(string(m.input))
		return m, nil
	case tea.KeyRunes:
		m.typeRunes(msg.Runes)
		return m, nil
	default:
		return m, nil
	}
}

// typeRunes applies one input-change event; a paste counts as one keystroke.
func (m *Model) typeRunes(runes []rune) {
	m.input = append(m.input, runes...)
	m.session.RecordInput(string(m.input))
}

func (m *Model) afterAdvance(res session.AdvanceResult, shake bool) (tea.Model, tea.Cmd) {
	switch {
	case res.Rejected && shake:
		m.shaking = true
		return m, tea.Tick(shakeDuration, func(time.Time) tea.Msg { return shakeDoneMsg{} })
	case res.Advanced:
		m.input = nil
	}
	if res.Done {
		m.finish()
	}
	return m, nil
}

func (m *Model) viewLesson() string {
	s := m.session
	if s == nil {
		return ""
	}
	prefs := m.app.Preferences()
	item, ok := s.Current()
	if !ok {
		return m.st.title.Render(m.lessonTitle())
	}

	lines := []string{m.st.title.Render(m.lessonTitle())}
	if prefs.ShowWordCount {
		lines = append(lines, m.st.statLabel.Render(wordCounter(s)))
	}
	lines = append(lines, "")

	marks := s.Marks()
	typed := []rune(m.input)
	var overflow []rune
	if len(typed) > len(marks) {
		overflow = typed[len(marks):]
	}
	styled := buildStyledRunes(m.st, marks, typed, overflow)
	contentWidth := 0
	if m.width > 0 {
		contentWidth = max(1, int(float64(m.width)*0.70))
	}
	lines = append(lines, wrapStyledRunes(styled, contentWidth))

	if prefs.ShowPhoneticHint && item.Hint != "" {
		lines = append(lines, m.st.hint.Render("("+item.Hint+")"))
	}
	lines = append(lines, "")

	inputStyle := m.st.input
	if m.shaking {
		inputStyle = m.st.inputShake
	}
	lines = append(lines, inputStyle.Render(string(m.input)))

	if prefs.ShowKeyboardHint && s.HintLayout() == model.LayoutAvro {
		h, active := keyboard.Next(item.Hint, len(typed))
		lines = append(lines, "", keyboard.Render(m.st.palette, h, active))
	}
	if m.notice != "" {
		lines = append(lines, "", m.st.incorrect.Render(m.notice))
	}
	lines = append(lines, "", m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) lessonTitle() string {
	id := m.session.LessonID()
	if id == model.PracticeLessonID {
		return "অনুশীলন"
	}
	title := "পাঠ " + bangla.Number(id+1)
	if lesson, ok := m.app.Catalog().Lesson(id); ok && lesson.Title != "" {
		title += ": " + lesson.Title
	}
	return title
}

func wordCounter(s *session.Session) string {
	current := min(s.Index()+1, s.Len())
	return bangla.Number(current) + "/" + bangla.Number(s.Len())
}

func (m *Model) renderFooter() string {
	s := m.session
	if s == nil || s.Len() == 0 {
		return ""
	}
	progress := int(float64(s.Index()) / float64(s.Len()) * 100)
	segments := []string{
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("Keystrokes %d", s.Keystrokes()),
		fmt.Sprintf("Mistakes %d", s.Mistakes()),
	}
	if s.Keystrokes() > 0 {
		segments = append(segments, fmt.Sprintf("Accuracy %d%%", stats.Accuracy(s.Keystrokes(), s.Mistakes())))
	}
	segments = append(segments, "esc back")
	return m.st.footer.Render(strings.Join(segments, "  "))
}
