// Package eventlog appends diagnostic events to a JSONL file.
// The TUI owns the terminal while it runs, so warnings go here instead of stderr.
package eventlog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event names.
const (
	EventLessonStarted         = "lesson_started"
	EventLessonLocked          = "lesson_locked"
	EventHintFallback          = "hint_fallback"
	EventHintMismatch          = "hint_mismatch"
	EventLessonCompleted       = "lesson_completed"
	EventLevelUnlocked         = "level_unlocked"
	EventPracticeCompleted     = "practice_completed"
	EventProgressLoadFailed    = "progress_load_failed"
	EventProgressSaveFailed    = "progress_save_failed"
	EventProgressReset         = "progress_reset"
	EventPreferencesLoadFailed = "preferences_load_failed"
	EventCatalogWarning        = "catalog_warning"
	EventAttemptSaveFailed     = "attempt_save_failed"
)

// Level names.
const (
	LevelInfo = "info"
	LevelWarn = "warn"
)

// Event is a single line of the log.
type Event struct {
	Time     time.Time      `json:"time"`
	Level    string         `json:"level"`
	Event    string         `json:"event"`
	Layout   string         `json:"layout,omitempty"`
	Lesson   *int           `json:"lesson,omitempty"`
	Unlocked *int           `json:"unlocked_level,omitempty"`
	WPM      int            `json:"wpm,omitempty"`
	Accuracy int            `json:"accuracy,omitempty"`
	Message  string         `json:"message,omitempty"`
	Error    string         `json:"error,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// Logger writes append-only JSONL events. A nil Logger discards everything.
type Logger struct {
	path   string
	mirror io.Writer
	now    func() time.Time
	mu     sync.Mutex
}

// New creates a Logger appending to path. The parent directory is created.
// When mirror is non-nil every event is also written there as a short text line.
func New(path string, mirror io.Writer) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &Logger{path: path, mirror: mirror, now: time.Now}, nil
}

// Path returns the log file path.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes a single event as one JSON line.
// A zero Time is set to the current UTC time and an empty Level becomes info.
func (l *Logger) Append(event Event) error {
	if l == nil {
		return nil
	}
	if event.Time.IsZero() {
		event.Time = l.now().UTC()
	}
	if event.Level == "" {
		event.Level = LevelInfo
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal log event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.mirror != nil {
		_, _ = fmt.Fprintln(l.mirror, event.String())
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close.
			_ = cerr
		}
	}()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write log event: %w", err)
	}
	return nil
}

// Info records an informational event. Write failures are dropped.
func (l *Logger) Info(event Event) {
	event.Level = LevelInfo
	_ = l.Append(event)
}

// Warn records a warning. Write failures are dropped.
func (l *Logger) Warn(event Event) {
	event.Level = LevelWarn
	_ = l.Append(event)
}

// ReadAll reads and parses all events from the log file.
// A missing file yields an empty slice.
func (l *Logger) ReadAll() ([]Event, error) {
	if l == nil {
		return []Event{}, nil
	}
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Event{}, nil
		}
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var events []Event
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("failed to parse log line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	return events, nil
}

// Int returns a pointer to v for the optional numeric fields.
func Int(v int) *int {
	return &v
}

// String formats the event as a short text line.
func (e Event) String() string {
	line := fmt.Sprintf("%s: %s", e.Level, e.Event)
	if e.Layout != "" {
		line += " layout=" + e.Layout
	}
	if e.Lesson != nil {
		line += fmt.Sprintf(" lesson=%d", *e.Lesson)
	}
	if e.Unlocked != nil {
		line += fmt.Sprintf(" level=%d", *e.Unlocked)
	}
	if e.Message != "" {
		line += " " + e.Message
	}
	if e.Error != "" {
		line += ": " + e.Error
	}
	return line
}
