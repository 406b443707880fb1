package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/bornomala/internal/catalog"
	"github.com/verte-zerg/bornomala/internal/eventlog"
	"github.com/verte-zerg/bornomala/internal/model"
	"github.com/verte-zerg/bornomala/internal/progression"
	"github.com/verte-zerg/bornomala/internal/session"
	"github.com/verte-zerg/bornomala/internal/store"
)

type testEnv struct {
	app   *App
	store *store.Store
	log   *eventlog.Logger
	clock *time.Time
	dir   string
}

func newTestEnv(t *testing.T, opts Options) *testEnv {
	t.Helper()
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "bornomala.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	log, err := eventlog.New(filepath.Join(dir, "events.jsonl"), nil)
	require.NoError(t, err)
	cat, err := catalog.Default()
	require.NoError(t, err)

	clock := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	env := &testEnv{store: st, log: log, clock: &clock, dir: dir}
	opts.Catalog = cat
	opts.KV = st
	opts.Attempts = st
	opts.Log = log
	opts.Now = func() time.Time { return *env.clock }
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	env.app = New(context.Background(), opts)
	return env
}

func (e *testEnv) advance(d time.Duration) {
	*e.clock = e.clock.Add(d)
}

func (e *testEnv) typeAll(t *testing.T, s *session.Session) {
	t.Helper()
	for !s.Done() {
		item, ok := s.Current()
		require.True(t, ok)
		s.RecordInput(item.Target)
		e.advance(time.Second)
		require.True(t, s.TryAdvance(session.KeyEnter).Advanced)
	}
}

func (e *testEnv) events(t *testing.T) []string {
	t.Helper()
	events, err := e.log.ReadAll()
	require.NoError(t, err)
	names := make([]string, 0, len(events))
	for _, ev := range events {
		names = append(names, ev.Event)
	}
	return names
}

func TestNewUsesDefaults(t *testing.T) {
	env := newTestEnv(t, Options{})
	assert.Equal(t, model.LayoutAvro, env.app.Layout())
	assert.Equal(t, model.ThemeSystem, env.app.Preferences().Theme)
	assert.True(t, env.app.IsUnlocked(0))
	assert.False(t, env.app.IsUnlocked(3))
}

func TestLockedLessonIsRejectedAndLogged(t *testing.T) {
	env := newTestEnv(t, Options{})
	_, err := env.app.StartLesson(3)
	require.ErrorIs(t, err, session.ErrLessonLocked)
	assert.Contains(t, env.events(t), eventlog.EventLessonLocked)
}

func TestCompletingLevelUnlocksNextAndPersists(t *testing.T) {
	env := newTestEnv(t, Options{})
	ctx := context.Background()

	var out Outcome
	for id := 0; id < 3; id++ {
		s, err := env.app.StartLesson(id)
		require.NoError(t, err)
		env.typeAll(t, s)
		out, err = env.app.FinishLesson(ctx, s)
		require.NoError(t, err)
		assert.Equal(t, id, out.Result.LessonID)
	}
	assert.Equal(t, []int{1}, out.NewlyUnlocked)
	assert.True(t, out.HasNext)
	assert.Equal(t, 3, out.Next)
	assert.True(t, env.app.IsUnlocked(3))

	reloaded := New(ctx, Options{Catalog: env.app.Catalog(), KV: env.store, Attempts: env.store})
	rec := reloaded.Record()
	assert.Equal(t, []int{0, 1, 2}, rec.CompletedLessons.Sorted())
	assert.Equal(t, []int{0, 1}, rec.UnlockedLevels.Sorted())
	require.Len(t, rec.Performance, 3)
	assert.Equal(t, "2024-03-01", rec.Performance[0].Date)

	attempts, err := env.store.ListAttempts(ctx, model.AttemptFilter{Layout: model.LayoutAvro})
	require.NoError(t, err)
	assert.Len(t, attempts, 3)
	assert.Contains(t, env.events(t), eventlog.EventLevelUnlocked)
}

func TestRepeatingLessonUpsertsPerformance(t *testing.T) {
	env := newTestEnv(t, Options{})
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		s, err := env.app.StartLesson(0)
		require.NoError(t, err)
		env.typeAll(t, s)
		_, err = env.app.FinishLesson(ctx, s)
		require.NoError(t, err)
	}
	assert.Len(t, env.app.Record().Performance, 1)
}

func TestBijoyFallsBackToAvroHints(t *testing.T) {
	env := newTestEnv(t, Options{DefaultLayout: model.LayoutBijoy})
	require.NoError(t, env.app.CompleteOnboarding(context.Background(), "", map[model.Layout]progression.Experience{
		model.LayoutBijoy: progression.ExperienceIntermediate,
	}))
	s, err := env.app.StartLesson(5)
	require.NoError(t, err)
	assert.Equal(t, model.LayoutAvro, s.HintLayout())
	assert.Contains(t, env.events(t), eventlog.EventHintFallback)
}

func TestPracticeIsRecordedWithoutProgress(t *testing.T) {
	env := newTestEnv(t, Options{})
	ctx := context.Background()
	s, err := env.app.StartPractice(model.PracticeConfig{Words: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, model.PracticeLessonID, s.LessonID())

	env.typeAll(t, s)
	out, err := env.app.FinishLesson(ctx, s)
	require.NoError(t, err)
	assert.True(t, out.Practice)
	assert.False(t, out.HasNext)
	assert.Empty(t, env.app.Record().CompletedLessons)

	lesson := model.PracticeLessonID
	attempts, err := env.store.ListAttempts(ctx, model.AttemptFilter{Lesson: &lesson})
	require.NoError(t, err)
	assert.Len(t, attempts, 1)
}

func TestPracticeFromWordList(t *testing.T) {
	env := newTestEnv(t, Options{})
	path := filepath.Join(env.dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("মা\tma\nhello\n"), 0o644))

	s, err := env.app.StartPractice(model.PracticeConfig{Words: 3, WordList: path, FocusWeak: true, WeakTop: 2, WeakFactor: 2})
	require.NoError(t, err)
	for _, item := range s.Items() {
		assert.Equal(t, model.Item{Target: "মা", Hint: "ma"}, item)
	}

	_, err = env.app.StartPractice(model.PracticeConfig{Words: 0})
	assert.Error(t, err)
}

func TestPreferencesAndLayoutSwitch(t *testing.T) {
	env := newTestEnv(t, Options{})
	ctx := context.Background()

	require.NoError(t, env.app.SetPreference(ctx, PrefShowWordCount, "false"))
	require.NoError(t, env.app.TogglePreference(ctx, PrefShowKeyboardHint))
	require.NoError(t, env.app.SetTheme(ctx, model.ThemeDark))
	require.NoError(t, env.app.SetLayout(ctx, model.LayoutBijoy))
	assert.Error(t, env.app.SetPreference(ctx, PrefShowWordCount, "maybe"))
	assert.Error(t, env.app.SetPreference(ctx, "fontSize", "true"))
	assert.Error(t, env.app.SetTheme(ctx, "neon"))
	assert.Error(t, env.app.SetLayout(ctx, "dvorak"))

	reloaded := New(ctx, Options{Catalog: env.app.Catalog(), KV: env.store})
	prefs := reloaded.Preferences()
	assert.False(t, prefs.ShowWordCount)
	assert.False(t, prefs.ShowKeyboardHint)
	assert.True(t, prefs.ShowPhoneticHint)
	assert.Equal(t, model.ThemeDark, prefs.Theme)
	assert.Equal(t, model.LayoutBijoy, prefs.KeyboardLayout)
}

func TestRunOverridesAreNotPersisted(t *testing.T) {
	env := newTestEnv(t, Options{DefaultLayout: model.LayoutBijoy, DefaultTheme: model.ThemeDark})
	ctx := context.Background()
	assert.Equal(t, model.LayoutBijoy, env.app.Layout())
	assert.Equal(t, model.ThemeDark, env.app.Preferences().Theme)

	require.NoError(t, env.app.TogglePreference(ctx, PrefShowWordCount))
	assert.False(t, env.app.Preferences().ShowWordCount)
	assert.Equal(t, model.LayoutBijoy, env.app.Layout())

	reloaded := New(ctx, Options{Catalog: env.app.Catalog(), KV: env.store})
	prefs := reloaded.Preferences()
	assert.False(t, prefs.ShowWordCount)
	assert.Equal(t, model.LayoutAvro, prefs.KeyboardLayout)
	assert.Equal(t, model.ThemeSystem, prefs.Theme)

	require.NoError(t, env.app.SetTheme(ctx, model.ThemeLight))
	reloaded = New(ctx, Options{Catalog: env.app.Catalog(), KV: env.store})
	assert.Equal(t, model.ThemeLight, reloaded.Preferences().Theme)
	assert.Equal(t, model.LayoutAvro, reloaded.Layout())
}

func TestOnboardingSeedsEveryLayout(t *testing.T) {
	env := newTestEnv(t, Options{})
	ctx := context.Background()
	require.NoError(t, env.app.CompleteOnboarding(ctx, model.ThemeLight, map[model.Layout]progression.Experience{
		model.LayoutAvro:  progression.ExperienceExperienced,
		model.LayoutBijoy: progression.ExperienceNew,
	}))
	assert.True(t, env.app.Preferences().OnboardingCompleted)
	assert.Equal(t, []int{0, 1, 2}, env.app.Record().UnlockedLevels.Sorted())
	assert.True(t, env.app.IsUnlocked(8))

	require.NoError(t, env.app.SetLayout(ctx, model.LayoutBijoy))
	assert.Equal(t, []int{0}, env.app.Record().UnlockedLevels.Sorted())
}

func TestResetProgressClearsHistory(t *testing.T) {
	env := newTestEnv(t, Options{})
	ctx := context.Background()
	s, err := env.app.StartLesson(0)
	require.NoError(t, err)
	env.typeAll(t, s)
	_, err = env.app.FinishLesson(ctx, s)
	require.NoError(t, err)

	env.app.ResetProgress(ctx)
	assert.Empty(t, env.app.Record().CompletedLessons)
	attempts, err := env.store.ListAttempts(ctx, model.AttemptFilter{Layout: model.LayoutAvro})
	require.NoError(t, err)
	assert.Empty(t, attempts)
	assert.Contains(t, env.events(t), eventlog.EventProgressReset)
}

func TestReport(t *testing.T) {
	env := newTestEnv(t, Options{})
	ctx := context.Background()
	s, err := env.app.StartLesson(1)
	require.NoError(t, err)
	env.typeAll(t, s)
	_, err = env.app.FinishLesson(ctx, s)
	require.NoError(t, err)

	report, err := env.app.Report(ctx, model.ProfileConfig{})
	require.NoError(t, err)
	assert.Equal(t, model.LayoutAvro, report.Layout)
	assert.Len(t, report.Attempts, 1)
	assert.Equal(t, 1, report.Summary.Completed)
	assert.Equal(t, []int{1}, report.Weak)
}
