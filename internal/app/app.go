// Package app is the application context shared by the screens and commands.
// It owns the catalog, the preference blob and the progress record of the active
// layout, and turns every recoverable failure into a fallback value plus a log entry.
package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/verte-zerg/bornomala/internal/catalog"
	"github.com/verte-zerg/bornomala/internal/eventlog"
	"github.com/verte-zerg/bornomala/internal/generator"
	"github.com/verte-zerg/bornomala/internal/model"
	"github.com/verte-zerg/bornomala/internal/progress"
	"github.com/verte-zerg/bornomala/internal/progression"
	"github.com/verte-zerg/bornomala/internal/session"
	"github.com/verte-zerg/bornomala/internal/stats"
	"github.com/verte-zerg/bornomala/internal/theme"
	"github.com/verte-zerg/bornomala/internal/wordlist"
)

// AttemptStore records and lists completed attempts.
type AttemptStore interface {
	InsertAttempt(ctx context.Context, a model.Attempt) (string, error)
	ListAttempts(ctx context.Context, filter model.AttemptFilter) ([]model.Attempt, error)
	DeleteAttempts(ctx context.Context, layout model.Layout) (int64, error)
}

// Options configures New.
type Options struct {
	Catalog  *catalog.Catalog
	KV       progress.KV
	Attempts AttemptStore
	Log      *eventlog.Logger
	Now      func() time.Time
	// Seed makes practice draws deterministic when non-zero.
	Seed int64
	// DefaultLayout and DefaultTheme override the stored preferences for this
	// run only. They are never written back.
	DefaultLayout model.Layout
	DefaultTheme  string
}

// Outcome is what the completion screen needs after a session ends.
type Outcome struct {
	Result        model.CompletionResult
	NewlyUnlocked []int
	Next          int
	HasNext       bool
	Practice      bool
}

// App is the explicit application context.
type App struct {
	cat      *catalog.Catalog
	store    *progress.Store
	attempts AttemptStore
	log      *eventlog.Logger
	now      func() time.Time
	gen      *generator.Generator

	// prefs is what the run uses; stored is what was loaded plus explicit changes.
	prefs  model.Preferences
	stored model.Preferences
	record model.ProgressRecord
}

// New loads preferences and the progress record of the preferred layout.
func New(ctx context.Context, opts Options) *App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	gen := generator.New()
	if opts.Seed != 0 {
		gen = generator.NewSeeded(opts.Seed)
	}
	a := &App{
		cat:      opts.Catalog,
		store:    progress.New(opts.KV, opts.Log),
		attempts: opts.Attempts,
		log:      opts.Log,
		now:      now,
		gen:      gen,
	}
	a.stored = a.store.LoadPreferences(ctx)
	a.prefs = a.stored
	if opts.DefaultLayout != "" {
		a.prefs.KeyboardLayout = opts.DefaultLayout
	}
	if opts.DefaultTheme != "" && theme.Valid(opts.DefaultTheme) {
		a.prefs.Theme = opts.DefaultTheme
	}
	a.record = a.store.Load(ctx, a.prefs.KeyboardLayout)
	return a
}

// Catalog returns the lesson catalog.
func (a *App) Catalog() *catalog.Catalog { return a.cat }

// Preferences returns the current preferences.
func (a *App) Preferences() model.Preferences { return a.prefs }

// Layout returns the active layout.
func (a *App) Layout() model.Layout { return a.prefs.KeyboardLayout }

// Record returns a copy of the active layout's progress record.
func (a *App) Record() model.ProgressRecord { return a.record.Clone() }

// Log returns the event logger, which may be nil.
func (a *App) Log() *eventlog.Logger { return a.log }

// Palette resolves the theme preference.
func (a *App) Palette() theme.Palette { return theme.Resolve(a.prefs.Theme) }

// IsUnlocked reports whether the lesson's level is unlocked for the active layout.
func (a *App) IsUnlocked(lessonID int) bool {
	return progression.IsUnlocked(a.cat.Levels(), a.record.UnlockedLevels, lessonID)
}

// IsCompleted reports whether the lesson was completed on the active layout.
func (a *App) IsCompleted(lessonID int) bool {
	return a.record.CompletedLessons.Has(lessonID)
}

// StartLesson starts a lesson session on the active layout.
// Locked lessons are rejected and logged; recovered hint problems are logged.
func (a *App) StartLesson(lessonID int) (*session.Session, error) {
	layout := a.prefs.KeyboardLayout
	s, err := session.Start(a.cat, lessonID, layout, a.record.UnlockedLevels, a.now)
	if err != nil {
		if errors.Is(err, session.ErrLessonLocked) {
			a.log.Warn(eventlog.Event{Event: eventlog.EventLessonLocked, Layout: string(layout), Lesson: eventlog.Int(lessonID)})
		}
		return nil, err
	}
	for _, n := range s.Notices() {
		event := eventlog.EventHintFallback
		if n.Kind == session.NoticeHintMismatch {
			event = eventlog.EventHintMismatch
		}
		a.log.Warn(eventlog.Event{Event: event, Layout: string(layout), Lesson: eventlog.Int(lessonID), Message: n.Detail})
	}
	a.log.Info(eventlog.Event{Event: eventlog.EventLessonStarted, Layout: string(layout), Lesson: eventlog.Int(lessonID)})
	return s, nil
}

// FinishLesson completes s, updates and saves progress, and records the attempt.
// Practice sessions only record the attempt. Save failures are logged, not returned.
func (a *App) FinishLesson(ctx context.Context, s *session.Session) (Outcome, error) {
	result, err := s.Complete()
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Result: result, Practice: result.LessonID == model.PracticeLessonID}
	layout := s.Layout()

	if out.Practice {
		a.log.Info(eventlog.Event{Event: eventlog.EventPracticeCompleted, Layout: string(layout), WPM: result.WPM, Accuracy: result.Accuracy})
	} else {
		rec := a.record
		if layout != a.prefs.KeyboardLayout {
			rec = a.store.Load(ctx, layout)
		}
		out.NewlyUnlocked = progression.ApplyCompletion(&rec, a.cat.Levels(), result, result.EndedAt)
		_ = a.store.Save(ctx, layout, rec)
		if layout == a.prefs.KeyboardLayout {
			a.record = rec
		}
		a.log.Info(eventlog.Event{
			Event:    eventlog.EventLessonCompleted,
			Layout:   string(layout),
			Lesson:   eventlog.Int(result.LessonID),
			WPM:      result.WPM,
			Accuracy: result.Accuracy,
		})
		for _, level := range out.NewlyUnlocked {
			a.log.Info(eventlog.Event{Event: eventlog.EventLevelUnlocked, Layout: string(layout), Unlocked: eventlog.Int(level)})
		}
		out.Next, out.HasNext = progression.NextLesson(a.cat.Levels(), a.cat.Len(), rec.UnlockedLevels, result.LessonID)
	}

	a.recordAttempt(ctx, result)
	return out, nil
}

func (a *App) recordAttempt(ctx context.Context, result model.CompletionResult) {
	if a.attempts == nil {
		return
	}
	_, err := a.attempts.InsertAttempt(ctx, model.Attempt{
		Layout:     result.Layout,
		Lesson:     result.LessonID,
		WPM:        result.WPM,
		Accuracy:   result.Accuracy,
		Keystrokes: result.TotalKeystrokes,
		Mistakes:   result.MistakeCount,
		StartedAt:  result.StartedAt,
		EndedAt:    result.EndedAt,
		DurationMs: result.Duration.Milliseconds(),
	})
	if err != nil {
		a.log.Warn(eventlog.Event{Event: eventlog.EventAttemptSaveFailed, Layout: string(result.Layout), Error: err.Error()})
	}
}

// StartPractice draws a practice session from unlocked lessons or a custom word list.
func (a *App) StartPractice(cfg model.PracticeConfig) (*session.Session, error) {
	if cfg.Words <= 0 {
		return nil, fmt.Errorf("words must be positive")
	}
	var pool []generator.Candidate
	if cfg.WordList != "" {
		items, err := wordlist.LoadItems(cfg.WordList)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list: %w", err)
		}
		for _, item := range wordlist.Filter(items, wordlist.FilterBengali) {
			pool = append(pool, generator.Candidate{Item: item, Lesson: model.PracticeLessonID})
		}
	} else {
		pool = a.practicePool()
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("no practice material available")
	}

	var items []model.Item
	if cfg.FocusWeak {
		weak := map[int]struct{}{}
		for _, id := range stats.WeakLessons(a.record.Performance, cfg.WeakTop) {
			weak[id] = struct{}{}
		}
		items = a.gen.GenerateWeighted(pool, cfg.Words, weak, cfg.WeakFactor)
	} else {
		items = a.gen.Generate(pool, cfg.Words)
	}
	return session.StartPractice(items, a.prefs.KeyboardLayout, a.now), nil
}

func (a *App) practicePool() []generator.Candidate {
	layout := a.prefs.KeyboardLayout
	lessons := map[int]model.Lesson{}
	hints := map[int]model.HintData{}
	for id := 0; id < a.cat.Len(); id++ {
		if !a.IsUnlocked(id) {
			continue
		}
		lesson, ok := a.cat.Lesson(id)
		if !ok {
			continue
		}
		lessons[id] = lesson
		h, ok := a.cat.Hints(layout, id)
		if !ok {
			h, _ = a.cat.Hints(model.LayoutAvro, id)
		}
		hints[id] = h
	}
	return generator.Pool(lessons, hints)
}

// SetLayout switches the active layout and loads its progress.
func (a *App) SetLayout(ctx context.Context, layout model.Layout) error {
	if _, ok := model.ParseLayout(string(layout)); !ok {
		return fmt.Errorf("unknown layout %q", layout)
	}
	a.record = a.store.Load(ctx, layout)
	return a.updatePreferences(ctx, func(p *model.Preferences) { p.KeyboardLayout = layout })
}

// SetTheme stores the theme preference.
func (a *App) SetTheme(ctx context.Context, name string) error {
	if !theme.Valid(name) {
		return fmt.Errorf("unknown theme %q", name)
	}
	return a.updatePreferences(ctx, func(p *model.Preferences) { p.Theme = name })
}

// Preference names accepted by SetPreference.
const (
	PrefKeyboardLayout   = "keyboardLayout"
	PrefTheme            = "theme"
	PrefShowPhoneticHint = "showPhoneticHint"
	PrefShowWordCount    = "showWordCount"
	PrefShowKeyboardHint = "showKeyboardHint"
)

// PreferenceNames lists the names SetPreference accepts.
var PreferenceNames = []string{PrefKeyboardLayout, PrefTheme, PrefShowPhoneticHint, PrefShowWordCount, PrefShowKeyboardHint}

// SetPreference sets one preference from its string form. Booleans take "true" or "false".
func (a *App) SetPreference(ctx context.Context, name, value string) error {
	switch name {
	case PrefKeyboardLayout:
		return a.SetLayout(ctx, model.Layout(value))
	case PrefTheme:
		return a.SetTheme(ctx, value)
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, name, err)
	}
	var set func(p *model.Preferences)
	switch name {
	case PrefShowPhoneticHint:
		set = func(p *model.Preferences) { p.ShowPhoneticHint = b }
	case PrefShowWordCount:
		set = func(p *model.Preferences) { p.ShowWordCount = b }
	case PrefShowKeyboardHint:
		set = func(p *model.Preferences) { p.ShowKeyboardHint = b }
	default:
		return fmt.Errorf("unknown preference %q", name)
	}
	return a.updatePreferences(ctx, set)
}

// TogglePreference flips a boolean preference.
func (a *App) TogglePreference(ctx context.Context, name string) error {
	var current bool
	switch name {
	case PrefShowPhoneticHint:
		current = a.prefs.ShowPhoneticHint
	case PrefShowWordCount:
		current = a.prefs.ShowWordCount
	case PrefShowKeyboardHint:
		current = a.prefs.ShowKeyboardHint
	default:
		return fmt.Errorf("unknown preference %q", name)
	}
	return a.SetPreference(ctx, name, strconv.FormatBool(!current))
}

// ResetProgress clears the active layout's progress and attempt history.
func (a *App) ResetProgress(ctx context.Context) {
	layout := a.prefs.KeyboardLayout
	a.record = a.store.Reset(ctx, layout)
	if a.attempts == nil {
		return
	}
	if _, err := a.attempts.DeleteAttempts(ctx, layout); err != nil {
		a.log.Warn(eventlog.Event{Event: eventlog.EventProgressSaveFailed, Layout: string(layout), Message: "attempts", Error: err.Error()})
	}
}

// CompleteOnboarding stores the theme, seeds each layout's unlocked levels from
// the reported experience and marks onboarding done.
func (a *App) CompleteOnboarding(ctx context.Context, themeName string, experience map[model.Layout]progression.Experience) error {
	if themeName != "" && !theme.Valid(themeName) {
		return fmt.Errorf("unknown theme %q", themeName)
	}
	levels := len(a.cat.Levels())
	for layout, exp := range experience {
		rec := a.store.Load(ctx, layout)
		rec.UnlockedLevels = progression.SeedUnlocked(levels, exp)
		if err := a.store.Save(ctx, layout, rec); err != nil {
			return err
		}
		if layout == a.prefs.KeyboardLayout {
			a.record = rec
		}
	}
	return a.updatePreferences(ctx, func(p *model.Preferences) {
		if themeName != "" {
			p.Theme = themeName
		}
		p.OnboardingCompleted = true
	})
}

// updatePreferences applies set to the run and stored preferences and saves
// the stored copy.
func (a *App) updatePreferences(ctx context.Context, set func(p *model.Preferences)) error {
	set(&a.prefs)
	set(&a.stored)
	return a.store.SavePreferences(ctx, a.stored)
}

// Report builds the profile data for a layout.
func (a *App) Report(ctx context.Context, cfg model.ProfileConfig) (stats.Report, error) {
	if cfg.Layout == "" {
		cfg.Layout = a.prefs.KeyboardLayout
	}
	rec := a.record
	if cfg.Layout != a.prefs.KeyboardLayout {
		rec = a.store.Load(ctx, cfg.Layout)
	}
	if a.attempts == nil {
		return stats.Report{}, fmt.Errorf("attempt history is not available")
	}
	return stats.BuildReport(ctx, a.attempts, a.cat, rec, cfg)
}
