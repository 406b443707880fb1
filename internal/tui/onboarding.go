package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bornomala/internal/app"
	"github.com/verte-zerg/bornomala/internal/model"
	"github.com/verte-zerg/bornomala/internal/progression"
)

var (
	themeChoices      = []string{model.ThemeSystem, model.ThemeLight, model.ThemeDark}
	experienceChoices = []progression.Experience{
		progression.ExperienceNew,
		progression.ExperienceIntermediate,
		progression.ExperienceExperienced,
	}
)

// onboardingState walks through the theme step and one experience step per layout.
type onboardingState struct {
	step       int
	choice     int
	layouts    []model.Layout
	theme      string
	experience map[model.Layout]progression.Experience
}

func newOnboarding(a *app.App) onboardingState {
	return onboardingState{
		layouts:    a.Catalog().Layouts(),
		theme:      a.Preferences().Theme,
		experience: map[model.Layout]progression.Experience{},
	}
}

func (o onboardingState) options() []string {
	if o.step == 0 {
		return themeChoices
	}
	out := make([]string, len(experienceChoices))
	for i, e := range experienceChoices {
		out[i] = string(e)
	}
	return out
}

func (o onboardingState) prompt() string {
	if o.step == 0 {
		return "থিম বেছে নিন"
	}
	return fmt.Sprintf("%s লেআউটে আপনার অভিজ্ঞতা", o.layouts[o.step-1])
}

func (m *Model) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	o := &m.onboarding
	opts := o.options()
	switch msg.String() {
	case "up", "k":
		o.choice = max(0, o.choice-1)
	case "down", "j":
		o.choice = min(len(opts)-1, o.choice+1)
	case "enter":
		if o.step == 0 {
			o.theme = opts[o.choice]
		} else {
			o.experience[o.layouts[o.step-1]] = experienceChoices[o.choice]
		}
		o.step++
		o.choice = 0
		if o.step > len(o.layouts) {
			m.finishOnboarding()
		}
	case "esc":
		m.finishOnboarding()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) finishOnboarding() {
	o := m.onboarding
	m.setNotice(m.app.CompleteOnboarding(context.Background(), o.theme, o.experience))
	m.applyTheme()
	m.page = pageLearn
}

func (m *Model) viewOnboarding() string {
	o := m.onboarding
	lines := []string{
		m.st.title.Render("বর্ণমালায় স্বাগতম"),
		"",
		m.st.accent.Render(o.prompt()),
		"",
	}
	for i, opt := range o.options() {
		if i == o.choice {
			lines = append(lines, m.st.selected.Render("> "+opt))
		} else {
			lines = append(lines, m.st.unselected.Render("  "+opt))
		}
	}
	lines = append(lines, "", m.st.footer.Render("↑/↓ choose  enter next  esc skip"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
