// Package session implements the typing session engine.
// It performs no I/O: the clock is injected and results are returned to the caller.
package session

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/bornomala/internal/model"
	"github.com/verte-zerg/bornomala/internal/stats"
)

var (
	// ErrUnknownLesson is returned when the lesson id is not in the catalog.
	ErrUnknownLesson = errors.New("unknown lesson")
	// ErrLessonLocked is returned when the lesson's level is not unlocked.
	ErrLessonLocked = errors.New("lesson is locked")
	// ErrIncomplete is returned by Complete while items remain.
	ErrIncomplete = errors.New("session has remaining items")
)

// Catalog is the subset of the lesson catalog the engine reads.
type Catalog interface {
	Lesson(id int) (model.Lesson, bool)
	Hints(layout model.Layout, id int) (model.HintData, bool)
	LevelOf(id int) int
}

// Key is a committing key candidate.
type Key int

// Keys understood by TryAdvance.
const (
	KeyOther Key = iota
	KeyEnter
	KeySpace
)

// AdvanceResult reports the outcome of TryAdvance.
type AdvanceResult struct {
	Advanced bool
	Rejected bool
	Done     bool
}

// NoticeKind classifies a non-fatal condition raised while building a session.
type NoticeKind int

// Notice kinds.
const (
	NoticeHintFallback NoticeKind = iota + 1
	NoticeHintMismatch
)

// Notice is a recovered condition the caller may log.
type Notice struct {
	Kind   NoticeKind
	Detail string
}

// Session is the state of one lesson or practice run.
type Session struct {
	lessonID   int
	layout     model.Layout
	hintLayout model.Layout
	items      []model.Item
	notices    []Notice

	index      int
	input      string
	startedAt  time.Time
	keystrokes int
	mistakes   int

	now func() time.Time
}

// Start builds a session for lessonID. The lesson's level must be in unlocked.
func Start(cat Catalog, lessonID int, layout model.Layout, unlocked model.IntSet, now func() time.Time) (*Session, error) {
	lesson, ok := cat.Lesson(lessonID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLesson, lessonID)
	}
	level := cat.LevelOf(lessonID)
	if level < 0 || !unlocked.Has(level) {
		return nil, fmt.Errorf("%w: lesson %d (level %d)", ErrLessonLocked, lessonID, level)
	}

	s := &Session{
		lessonID:   lessonID,
		layout:     layout,
		hintLayout: layout,
		now:        clock(now),
	}
	hints, ok := cat.Hints(layout, lessonID)
	if !ok {
		s.hintLayout = model.LayoutAvro
		if layout != model.LayoutAvro {
			hints, ok = cat.Hints(model.LayoutAvro, lessonID)
		}
		detail := fmt.Sprintf("no %s hints for lesson %d, using avro", layout, lessonID)
		if !ok {
			detail = fmt.Sprintf("no hints for lesson %d", lessonID)
		}
		s.notices = append(s.notices, Notice{Kind: NoticeHintFallback, Detail: detail})
	}

	var mismatches []string
	s.items, mismatches = BuildItems(lesson, hints)
	for _, m := range mismatches {
		s.notices = append(s.notices, Notice{
			Kind:   NoticeHintMismatch,
			Detail: fmt.Sprintf("lesson %d %s hint count mismatch (%s)", lessonID, s.hintLayout, m),
		})
	}
	return s, nil
}

// StartPractice builds a session over an ad-hoc item list.
func StartPractice(items []model.Item, layout model.Layout, now func() time.Time) *Session {
	copied := make([]model.Item, len(items))
	copy(copied, items)
	return &Session{
		lessonID:   model.PracticeLessonID,
		layout:     layout,
		hintLayout: layout,
		items:      copied,
		now:        clock(now),
	}
}

// BuildItems pairs targets with hints section by section: characters, words, phrases.
// Missing hints are empty and extra hints are dropped. When any hints exist, each
// section whose counts differ is reported as "<section> <hints>/<targets>".
func BuildItems(lesson model.Lesson, hints model.HintData) ([]model.Item, []string) {
	chars, words, phrases := hints.Sections()
	sections := []struct {
		name    string
		targets []string
		hints   []string
	}{
		{"characters", lesson.Characters, chars},
		{"words", lesson.Words, words},
		{"phrases", lesson.Phrases, phrases},
	}
	items := make([]model.Item, 0, len(lesson.Characters)+len(lesson.Words)+len(lesson.Phrases))
	hasHints := len(chars)+len(words)+len(phrases) > 0
	var mismatches []string
	for _, sec := range sections {
		if hasHints && len(sec.hints) != len(sec.targets) {
			mismatches = append(mismatches, fmt.Sprintf("%s %d/%d", sec.name, len(sec.hints), len(sec.targets)))
		}
		for i, target := range sec.targets {
			item := model.Item{Target: target}
			if i < len(sec.hints) {
				item.Hint = sec.hints[i]
			}
			items = append(items, item)
		}
	}
	return items, mismatches
}

func clock(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}

// RecordInput registers one input-change event carrying the full buffer.
// Every call counts as one keystroke. The last typed rune is compared with the
// target rune at the same position; positions past the target are not compared.
func (s *Session) RecordInput(raw string) {
	if s.Done() {
		return
	}
	if s.startedAt.IsZero() && raw != "" {
		s.startedAt = s.now()
	}
	s.input = raw
	s.keystrokes++

	if raw == "" {
		return
	}
	typed := []rune(raw)
	pos := len(typed) - 1
	target := []rune(s.items[s.index].Target)
	if pos < len(target) && typed[pos] != target[pos] {
		s.mistakes++
	}
}

// TryAdvance commits the current item on Enter or Space when the buffer equals
// the target exactly. A mismatched commit key is rejected without state change.
func (s *Session) TryAdvance(key Key) AdvanceResult {
	if s.Done() {
		return AdvanceResult{Done: true}
	}
	if key != KeyEnter && key != KeySpace {
		return AdvanceResult{}
	}
	if s.input != s.items[s.index].Target {
		return AdvanceResult{Rejected: true}
	}
	s.index++
	s.input = ""
	return AdvanceResult{Advanced: true, Done: s.Done()}
}

// Complete computes the result. It fails with ErrIncomplete while items remain.
func (s *Session) Complete() (model.CompletionResult, error) {
	if !s.Done() {
		return model.CompletionResult{}, fmt.Errorf("%w: %d of %d done", ErrIncomplete, s.index, len(s.items))
	}
	end := s.now()
	var elapsed time.Duration
	if !s.startedAt.IsZero() {
		elapsed = end.Sub(s.startedAt)
	}
	targetChars := 0
	for _, item := range s.items {
		targetChars += utf8.RuneCountInString(item.Hint)
	}
	return model.CompletionResult{
		LessonID:        s.lessonID,
		Layout:          s.layout,
		HintLayout:      s.hintLayout,
		WPM:             stats.WPM(targetChars, elapsed),
		Accuracy:        stats.Accuracy(s.keystrokes, s.mistakes),
		TotalKeystrokes: s.keystrokes,
		MistakeCount:    s.mistakes,
		CorrectChars:    s.keystrokes - s.mistakes,
		TargetChars:     targetChars,
		StartedAt:       s.startedAt,
		EndedAt:         end,
		Duration:        elapsed,
	}, nil
}

// LessonID returns the lesson id, or model.PracticeLessonID for practice runs.
func (s *Session) LessonID() int { return s.lessonID }

// Layout returns the requested layout.
func (s *Session) Layout() model.Layout { return s.layout }

// HintLayout returns the layout whose hints are shown.
func (s *Session) HintLayout() model.Layout { return s.hintLayout }

// Items returns a copy of the item list.
func (s *Session) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Current returns the item being typed.
func (s *Session) Current() (model.Item, bool) {
	if s.Done() {
		return model.Item{}, false
	}
	return s.items[s.index], true
}

// Index returns the number of committed items.
func (s *Session) Index() int { return s.index }

// Len returns the number of items.
func (s *Session) Len() int { return len(s.items) }

// Done reports whether every item has been committed.
func (s *Session) Done() bool { return s.index >= len(s.items) }

// Input returns the current buffer.
func (s *Session) Input() string { return s.input }

// Keystrokes returns the number of input events.
func (s *Session) Keystrokes() int { return s.keystrokes }

// Mistakes returns the number of mismatched keystrokes.
func (s *Session) Mistakes() int { return s.mistakes }

// StartedAt returns the time of the first non-empty input, or the zero time.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Notices returns conditions recovered while building the session.
func (s *Session) Notices() []Notice {
	out := make([]Notice, len(s.notices))
	copy(out, s.notices)
	return out
}
