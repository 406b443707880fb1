// Package tui provides the Bubble Tea learn, lesson and practice screens.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bornomala/internal/app"
	"github.com/verte-zerg/bornomala/internal/model"
	"github.com/verte-zerg/bornomala/internal/session"
	"github.com/verte-zerg/bornomala/internal/theme"
)

type page int

const (
	pageOnboarding page = iota
	pageLearn
	pageLesson
	pageCompletion
)

const shakeDuration = 300 * time.Millisecond

type shakeDoneMsg struct{}

// Options configures the TUI.
type Options struct {
	// Lesson opens a lesson directly when it is unlocked. Negative means none.
	Lesson int
	// PracticeOnly runs practice sessions only; leaving a session quits.
	PracticeOnly bool
	// Practice holds the settings used by practice sessions.
	Practice model.PracticeConfig
	// DetectDark reports a dark terminal background for the "system" theme.
	// Nil uses lipgloss.HasDarkBackground.
	DetectDark func() bool
}

// Model implements the Bubble Tea tutor UI.
type Model struct {
	app  *app.App
	opts Options
	st   styles
	page page

	width  int
	height int

	cursor       int
	settingsOpen bool
	notice       string
	viewport     viewport.Model

	session *session.Session
	input   []rune
	shaking bool

	outcome app.Outcome

	onboarding onboardingState
}

// New constructs the tutor model around the application context.
func New(a *app.App, opts Options) *Model {
	m := &Model{
		app:      a,
		opts:     opts,
		page:     pageLearn,
		viewport: viewport.New(0, 0),
	}
	m.applyTheme()
	switch {
	case opts.PracticeOnly:
		m.startPractice()
	case !a.Preferences().OnboardingCompleted:
		m.page = pageOnboarding
		m.onboarding = newOnboarding(a)
	case opts.Lesson >= 0:
		m.cursor = opts.Lesson
		if a.IsUnlocked(opts.Lesson) {
			m.startLesson(opts.Lesson)
		}
	}
	return m
}

func (m *Model) applyTheme() {
	detect := m.opts.DetectDark
	if detect == nil {
		detect = lipgloss.HasDarkBackground
	}
	m.st = newStyles(theme.For(theme.IsDark(m.app.Preferences().Theme, detect)))
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
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-4)
		return m, nil
	case shakeDoneMsg:
		m.shaking = false
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.page {
		case pageOnboarding:
			return m.updateOnboarding(msg)
		case pageLesson:
			return m.updateLesson(msg)
		case pageCompletion:
			return m.updateCompletion(msg)
		default:
			return m.updateLearn(msg)
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.page {
	case pageOnboarding:
		content = m.viewOnboarding()
	case pageLesson:
		content = m.viewLesson()
	case pageCompletion:
		content = m.viewCompletion()
	default:
		return m.viewLearn()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) startLesson(id int) {
	s, err := m.app.StartLesson(id)
	if err != nil {
		if !errors.Is(err, session.ErrLessonLocked) {
			m.notice = err.Error()
		}
		m.page = pageLearn
		return
	}
	m.enterSession(s)
}

func (m *Model) startPractice() {
	s, err := m.app.StartPractice(m.opts.Practice)
	if err != nil {
		m.notice = err.Error()
		m.page = pageLearn
		return
	}
	m.enterSession(s)
}

func (m *Model) enterSession(s *session.Session) {
	m.session = s
	m.input = nil
	m.shaking = false
	m.notice = ""
	m.page = pageLesson
	if s.Done() {
		m.finish()
	}
}

func (m *Model) finish() {
	out, err := m.app.FinishLesson(context.Background(), m.session)
	if err != nil {
		m.notice = err.Error()
		return
	}
	m.outcome = out
	m.page = pageCompletion
}

func (m *Model) backToLearn() (tea.Model, tea.Cmd) {
	if m.opts.PracticeOnly {
		return m, tea.Quit
	}
	m.session = nil
	m.input = nil
	m.page = pageLearn
	return m, nil
}
