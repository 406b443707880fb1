// Package main provides the CLI entrypoint for bornomala.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/bornomala/internal/app"
	"github.com/verte-zerg/bornomala/internal/catalog"
	"github.com/verte-zerg/bornomala/internal/config"
	"github.com/verte-zerg/bornomala/internal/eventlog"
	"github.com/verte-zerg/bornomala/internal/model"
	"github.com/verte-zerg/bornomala/internal/profileui"
	"github.com/verte-zerg/bornomala/internal/progression"
	"github.com/verte-zerg/bornomala/internal/stats"
	"github.com/verte-zerg/bornomala/internal/store"
	"github.com/verte-zerg/bornomala/internal/theme"
	"github.com/verte-zerg/bornomala/internal/tui"
)

const (
	defaultWords       = 20
	defaultWeakTop     = 3
	defaultWeakFactor  = 2.0
	defaultCurveWindow = 5
	defaultEventsLast  = 20
	trendAttempts      = 30
)

var (
	rootLayout  string
	rootTheme   string
	rootCatalog string
	rootLesson  int

	// Initialised for the learn command, which reaches practice without these flags.
	practiceWords      = defaultWords
	practiceWordList   string
	practiceFocusWeak  bool
	practiceWeakTop    = defaultWeakTop
	practiceWeakFactor = defaultWeakFactor

	profilePlain       bool
	profileLast        int
	profileCurveWindow int

	resetYes bool

	onboardTheme string
	onboardAvro  string
	onboardBijoy string

	eventsLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bornomala",
		Short:         "Bengali typing tutor for Avro and Bijoy",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runLearnCmd,
	}

	rootCmd.PersistentFlags().StringVar(&rootLayout, "layout", "", "keyboard layout (avro, bijoy)")
	rootCmd.PersistentFlags().StringVar(&rootTheme, "theme", "", "theme (system, light, dark)")
	rootCmd.PersistentFlags().StringVar(&rootCatalog, "catalog", "", "lesson catalog directory")
	rootCmd.Flags().IntVar(&rootLesson, "lesson", 0, "open lesson N (1-based) if it is unlocked")

	rootCmd.AddCommand(newPracticeCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newLessonsCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newOnboardCmd())
	rootCmd.AddCommand(newPrefsCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// env holds everything a command needs once config, catalog and storage are open.
type env struct {
	cfg   config.FileConfig
	log   *eventlog.Logger
	store *store.Store
	app   *app.App
}

// openEnv resolves the tutor settings and opens the database. TUI commands pass
// a nil mirror so warnings stay in the event log while the terminal is taken.
func openEnv(cmd *cobra.Command, mirror io.Writer) (*env, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "layout", &rootLayout, fileCfg.Tutor.Layout)
	applyStringConfig(cmd, "theme", &rootTheme, fileCfg.Tutor.Theme)
	applyStringConfig(cmd, "catalog", &rootCatalog, fileCfg.Tutor.CatalogDir)

	var layout model.Layout
	if rootLayout != "" {
		l, ok := model.ParseLayout(rootLayout)
		if !ok {
			return nil, fmt.Errorf("unknown layout %q", rootLayout)
		}
		layout = l
	}
	if rootTheme != "" && !theme.Valid(rootTheme) {
		return nil, fmt.Errorf("unknown theme %q", rootTheme)
	}

	log, err := eventlog.New(config.DefaultEventLogPath(), mirror)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	cat, err := loadCatalog(rootCatalog, log)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	a := app.New(context.Background(), app.Options{
		Catalog:       cat,
		KV:            st,
		Attempts:      st,
		Log:           log,
		DefaultLayout: layout,
		DefaultTheme:  rootTheme,
	})
	return &env{cfg: fileCfg, log: log, store: st, app: a}, nil
}

func (e *env) close() {
	if cerr := e.store.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

// loadCatalog loads dir, the user catalog directory when it exists, or the
// bundled catalog. Data problems that do not prevent loading are logged.
func loadCatalog(dir string, log *eventlog.Logger) (*catalog.Catalog, error) {
	if dir == "" {
		if info, err := os.Stat(config.DefaultCatalogDir()); err == nil && info.IsDir() {
			dir = config.DefaultCatalogDir()
		}
	}
	var (
		cat *catalog.Catalog
		err error
	)
	if dir == "" {
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.LoadDir(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load lessons: %w", err)
	}
	for _, warning := range catalog.Check(cat) {
		log.Warn(eventlog.Event{Event: eventlog.EventCatalogWarning, Message: warning})
	}
	return cat, nil
}

func runLearnCmd(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(cmd, nil)
	if err != nil {
		return err
	}
	defer e.close()

	lesson := -1
	if rootLesson > 0 {
		if rootLesson > e.app.Catalog().Len() {
			return fmt.Errorf("--lesson must be between 1 and %d", e.app.Catalog().Len())
		}
		lesson = rootLesson - 1
	}
	practiceCfg, err := resolvePracticeConfig(cmd, e.cfg)
	if err != nil {
		return err
	}
	m := tui.New(e.app, tui.Options{Lesson: lesson, Practice: practiceCfg})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newPracticeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Practice words drawn from unlocked lessons or a word list",
		Args:  cobra.NoArgs,
		RunE:  runPracticeCmd,
	}
	cmd.Flags().IntVar(&practiceWords, "words", defaultWords, "items per practice session")
	cmd.Flags().StringVar(&practiceWordList, "wordlist", "", "word list file (target<TAB>hint per line)")
	cmd.Flags().BoolVar(&practiceFocusWeak, "focus-weak", false, "bias practice toward weak lessons")
	cmd.Flags().IntVar(&practiceWeakTop, "weak-top", defaultWeakTop, "number of weak lessons to focus on")
	cmd.Flags().Float64Var(&practiceWeakFactor, "weak-factor", defaultWeakFactor, "extra weight for weak lessons")
	return cmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(cmd, nil)
	if err != nil {
		return err
	}
	defer e.close()

	practiceCfg, err := resolvePracticeConfig(cmd, e.cfg)
	if err != nil {
		return err
	}
	// Surface word list and pool problems before the alt screen is taken.
	if _, err := e.app.StartPractice(practiceCfg); err != nil {
		return err
	}
	m := tui.New(e.app, tui.Options{Lesson: -1, PracticeOnly: true, Practice: practiceCfg})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func resolvePracticeConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.PracticeConfig, error) {
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordList)
	applyBoolConfig(cmd, "focus-weak", &practiceFocusWeak, fileCfg.Practice.FocusWeak)
	applyIntConfig(cmd, "weak-top", &practiceWeakTop, fileCfg.Practice.WeakTop)
	applyFloatConfig(cmd, "weak-factor", &practiceWeakFactor, fileCfg.Practice.WeakFactor)

	cfg := model.PracticeConfig{
		Words:      practiceWords,
		WordList:   practiceWordList,
		FocusWeak:  practiceFocusWeak,
		WeakTop:    practiceWeakTop,
		WeakFactor: practiceWeakFactor,
	}
	if err := validatePracticeConfig(cfg); err != nil {
		return model.PracticeConfig{}, err
	}
	return cfg, nil
}

func validatePracticeConfig(cfg model.PracticeConfig) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.WeakTop < 0 {
		return fmt.Errorf("--weak-top must be >= 0")
	}
	if cfg.WeakFactor < 0 {
		return fmt.Errorf("--weak-factor must be >= 0")
	}
	return nil
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show progress and learning curves",
		Args:  cobra.NoArgs,
		RunE:  runProfileCmd,
	}
	cmd.Flags().BoolVar(&profilePlain, "plain", false, "print to stdout instead of opening the TUI")
	cmd.Flags().IntVar(&profileLast, "last", 0, "limit curves to the last N attempts")
	cmd.Flags().IntVar(&profileCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runProfileCmd(cmd *cobra.Command, _ []string) error {
	var mirror io.Writer
	if profilePlain {
		mirror = os.Stderr
	}
	e, err := openEnv(cmd, mirror)
	if err != nil {
		return err
	}
	defer e.close()

	applyIntConfig(cmd, "curve-window", &profileCurveWindow, e.cfg.Profile.CurveWindow)
	applyIntConfig(cmd, "last", &profileLast, e.cfg.Profile.Last)
	if profileCurveWindow < 1 {
		return fmt.Errorf("--curve-window must be >= 1")
	}
	if profileLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	cfg := model.ProfileConfig{
		Layout:      e.app.Layout(),
		Last:        profileLast,
		CurveWindow: profileCurveWindow,
	}

	if !profilePlain {
		palette := theme.For(theme.IsDark(e.app.Preferences().Theme, lipgloss.HasDarkBackground))
		program := tea.NewProgram(profileui.NewModel(e.app, cfg, palette), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run profile TUI: %w", err)
		}
		return nil
	}

	report, err := e.app.Report(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to build profile: %w", err)
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "Layout: %s\n\n", report.Layout); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderSummary(out, report.Summary); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderLessonTable(out, report.Lessons); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(report.Weak) > 0 {
		labels := make([]string, len(report.Weak))
		for i, id := range report.Weak {
			labels[i] = strconv.Itoa(id + 1)
		}
		if _, err := fmt.Fprintf(out, "\nNeeds practice: lessons %s\n", strings.Join(labels, ", ")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	palette := e.app.Palette()
	return stats.RenderCurves(out, report.Attempts, stats.CurveOptions{
		Window:  cfg.CurveWindow,
		Palette: stats.Palette{WPM: palette.WPM, Accuracy: palette.Accuracy},
	})
}

func newLessonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lessons",
		Short: "List lessons with their level, status and latest result",
		Args:  cobra.NoArgs,
		RunE:  runLessonsCmd,
	}
}

func runLessonsCmd(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer e.close()

	out := cmd.OutOrStdout()
	if err := stats.RenderLessonTable(out, stats.LessonRows(e.app.Catalog(), e.app.Record())); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	attempts, err := e.store.ListAttempts(context.Background(), model.AttemptFilter{Layout: e.app.Layout(), Last: trendAttempts})
	if err != nil {
		return fmt.Errorf("failed to load attempts: %w", err)
	}
	if len(attempts) < 2 {
		return nil
	}
	wpms := make([]float64, len(attempts))
	for i, a := range attempts {
		wpms[i] = float64(a.WPM)
	}
	if _, err := fmt.Fprintf(out, "\nWPM trend (last %d): %s\n", len(attempts), stats.Sparkline(wpms)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset progress and attempt history for the active layout",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetYes, "yes", false, "do not ask for confirmation")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer e.close()

	layout := e.app.Layout()
	if !resetYes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to reset %s progress without --yes", layout)
		}
		ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Reset all %s progress? [y/N] ", layout))
		if err != nil {
			return err
		}
		if !ok {
			logErrln("Aborted.")
			return nil
		}
	}
	e.app.ResetProgress(context.Background())
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Progress for %s reset.\n", layout); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func newOnboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Set the theme and starting levels without the TUI",
		Args:  cobra.NoArgs,
		RunE:  runOnboardCmd,
	}
	cmd.Flags().StringVar(&onboardTheme, "theme", "", "theme (system, light, dark)")
	cmd.Flags().StringVar(&onboardAvro, "avro", "", "Avro experience (new, intermediate, experienced)")
	cmd.Flags().StringVar(&onboardBijoy, "bijoy", "", "Bijoy experience (new, intermediate, experienced)")
	return cmd
}

func runOnboardCmd(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer e.close()

	experience := map[model.Layout]progression.Experience{}
	for layout, raw := range map[model.Layout]string{model.LayoutAvro: onboardAvro, model.LayoutBijoy: onboardBijoy} {
		if raw == "" {
			continue
		}
		exp, err := progression.ParseExperience(raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", layout, err)
		}
		experience[layout] = exp
	}
	if err := e.app.CompleteOnboarding(context.Background(), onboardTheme, experience); err != nil {
		return fmt.Errorf("failed to save onboarding: %w", err)
	}
	return printPreferences(cmd.OutOrStdout(), e.app.Preferences())
}

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd, os.Stderr)
			if err != nil {
				return err
			}
			defer e.close()
			return printPreferences(cmd.OutOrStdout(), e.app.Preferences())
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <name> <value>",
		Short: "Set a preference (" + strings.Join(app.PreferenceNames, ", ") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, os.Stderr)
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.app.SetPreference(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			return printPreferences(cmd.OutOrStdout(), e.app.Preferences())
		},
	})
	return cmd
}

func printPreferences(w io.Writer, p model.Preferences) error {
	values := map[string]string{
		app.PrefKeyboardLayout:   string(p.KeyboardLayout),
		app.PrefTheme:            p.Theme,
		app.PrefShowPhoneticHint: strconv.FormatBool(p.ShowPhoneticHint),
		app.PrefShowWordCount:    strconv.FormatBool(p.ShowWordCount),
		app.PrefShowKeyboardHint: strconv.FormatBool(p.ShowKeyboardHint),
	}
	for _, name := range app.PreferenceNames {
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, values[name]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "onboardingCompleted = %t\n", p.OnboardingCompleted); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Lesson catalog tools",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check [dir]",
		Short: "Validate a lesson catalog directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCatalogCheckCmd,
	})
	return cmd
}

func runCatalogCheckCmd(cmd *cobra.Command, args []string) error {
	dir := rootCatalog
	if len(args) == 1 {
		dir = args[0]
	}
	log, err := eventlog.New(config.DefaultEventLogPath(), nil)
	if err != nil {
		return fmt.Errorf("failed to open event log: %w", err)
	}
	var cat *catalog.Catalog
	if dir == "" {
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.LoadDir(dir)
	}
	if err != nil {
		return fmt.Errorf("catalog is invalid: %w", err)
	}
	out := cmd.OutOrStdout()
	warnings := catalog.Check(cat)
	for _, warning := range warnings {
		log.Warn(eventlog.Event{Event: eventlog.EventCatalogWarning, Message: warning})
		if _, err := fmt.Fprintf(out, "warning: %s\n", warning); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintf(out, "%d lessons, %d levels, layouts: %s, %d warnings\n",
		cat.Len(), len(cat.Levels()), joinLayouts(cat.Layouts()), len(warnings)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func joinLayouts(layouts []model.Layout) string {
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show recent diagnostic events",
		Args:  cobra.NoArgs,
		RunE:  runEventsCmd,
	}
	cmd.Flags().IntVar(&eventsLast, "last", defaultEventsLast, "number of events to show (0 for all)")
	return cmd
}

func runEventsCmd(cmd *cobra.Command, _ []string) error {
	log, err := eventlog.New(config.DefaultEventLogPath(), nil)
	if err != nil {
		return fmt.Errorf("failed to open event log: %w", err)
	}
	events, err := log.ReadAll()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		logErrf("No events recorded in %s\n", log.Path())
		return nil
	}
	if eventsLast > 0 && len(events) > eventsLast {
		events = events[len(events)-eventsLast:]
	}
	for _, ev := range events {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ev.Time.Local().Format("2006-01-02 15:04:05"), ev); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# bornomala configuration
# Uncomment a value to enable it. CLI flags override config values.

[tutor]
# layout = "avro"          # Keyboard layout: avro or bijoy
# theme = "system"         # Theme: system, light or dark
# catalog-dir = ""         # Lesson catalog directory (default: bundled lessons)

[practice]
# words = %d               # Items per practice session
# wordlist = ""            # Word list file, one "target<TAB>hint" per line
# focus-weak = false       # Bias practice toward weak lessons
# weak-top = %d             # Number of weak lessons to focus on
# weak-factor = %.1f       # Extra weight for weak lessons

[profile]
# curve-window = %d         # Moving average window for learning curves
# last = 0                 # Limit curves to the last N attempts (0 = all)
`,
		defaultWords,
		defaultWeakTop,
		defaultWeakFactor,
		defaultCurveWindow,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
