// Package model defines shared data structures.
package model

import "time"

// Layout identifies a phonetic keyboard layout.
type Layout string

// Supported layouts. Probhat is declared but ships without hint data.
const (
	LayoutAvro    Layout = "avro"
	LayoutBijoy   Layout = "bijoy"
	LayoutProbhat Layout = "probhat"
)

// Layouts lists every known layout in display order.
var Layouts = []Layout{LayoutAvro, LayoutBijoy, LayoutProbhat}

// ParseLayout validates a layout name.
func ParseLayout(name string) (Layout, bool) {
	for _, l := range Layouts {
		if string(l) == name {
			return l, true
		}
	}
	return "", false
}

// PracticeLessonID marks sessions that are not tied to a catalog lesson.
const PracticeLessonID = -1

// Lesson is one catalog entry.
type Lesson struct {
	Title      string   `json:"title" yaml:"title"`
	Characters []string `json:"characters,omitempty" yaml:"characters,omitempty"`
	Words      []string `json:"words,omitempty" yaml:"words,omitempty"`
	Phrases    []string `json:"phrases,omitempty" yaml:"phrases,omitempty"`
}

// LessonLevel groups lesson ids; level order is unlock order.
type LessonLevel struct {
	Title   string `json:"title" yaml:"title"`
	Lessons []int  `json:"lessons" yaml:"lessons"`
}

// HintData holds the phonetic transcriptions of one lesson for one layout.
// Avro data uses the phonetic_* names, Bijoy data the *_keys names.
type HintData struct {
	PhoneticChar    []string `json:"phonetic_char,omitempty"`
	PhoneticWords   []string `json:"phonetic_words,omitempty"`
	PhrasesPhonetic []string `json:"phrases_phonetic,omitempty"`
	CharKeys        []string `json:"char_keys,omitempty"`
	WordKeys        []string `json:"word_keys,omitempty"`
	PhraseKeys      []string `json:"phrase_keys,omitempty"`
}

// Sections returns the character, word and phrase hints, whichever naming carries them.
func (h HintData) Sections() (chars, words, phrases []string) {
	if len(h.PhoneticChar)+len(h.PhoneticWords)+len(h.PhrasesPhonetic) > 0 {
		return h.PhoneticChar, h.PhoneticWords, h.PhrasesPhonetic
	}
	return h.CharKeys, h.WordKeys, h.PhraseKeys
}

// Item pairs a target string with its phonetic hint.
type Item struct {
	Target string
	Hint   string
}

// PerformanceEntry is the latest result for a lesson.
type PerformanceEntry struct {
	Lesson   int    `json:"lesson"`
	WPM      int    `json:"wpm"`
	Accuracy int    `json:"accuracy"`
	Date     string `json:"date"`
}

// ProgressRecord is the persisted per-layout progress.
type ProgressRecord struct {
	CompletedLessons IntSet             `json:"completedLessons"`
	Performance      []PerformanceEntry `json:"performance"`
	UnlockedLevels   IntSet             `json:"unlockedLevels"`
}

// NewProgressRecord returns the default record with level 0 unlocked.
func NewProgressRecord() ProgressRecord {
	return ProgressRecord{
		CompletedLessons: IntSet{},
		Performance:      []PerformanceEntry{},
		UnlockedLevels:   NewIntSet(0),
	}
}

// Clone returns a deep copy.
func (r ProgressRecord) Clone() ProgressRecord {
	perf := make([]PerformanceEntry, len(r.Performance))
	copy(perf, r.Performance)
	return ProgressRecord{
		CompletedLessons: r.CompletedLessons.Clone(),
		Performance:      perf,
		UnlockedLevels:   r.UnlockedLevels.Clone(),
	}
}

// PerformanceFor returns the entry for a lesson, if any.
func (r ProgressRecord) PerformanceFor(lesson int) (PerformanceEntry, bool) {
	for _, p := range r.Performance {
		if p.Lesson == lesson {
			return p, true
		}
	}
	return PerformanceEntry{}, false
}

// Theme names.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Preferences is the layout-independent user preference blob.
type Preferences struct {
	KeyboardLayout      Layout `json:"keyboardLayout"`
	Theme               string `json:"theme"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
	ShowPhoneticHint    bool   `json:"showPhoneticHint"`
	ShowWordCount       bool   `json:"showWordCount"`
	ShowKeyboardHint    bool   `json:"showKeyboardHint"`
}

// DefaultPreferences returns first-run preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		KeyboardLayout:   LayoutAvro,
		Theme:            ThemeSystem,
		ShowPhoneticHint: true,
		ShowWordCount:    true,
		ShowKeyboardHint: true,
	}
}

// CompletionResult is emitted when a session finishes.
type CompletionResult struct {
	LessonID        int
	Layout          Layout
	HintLayout      Layout
	WPM             int
	Accuracy        int
	TotalKeystrokes int
	MistakeCount    int
	CorrectChars    int
	TargetChars     int
	StartedAt       time.Time
	EndedAt         time.Time
	Duration        time.Duration
}

// Attempt is one row of the completion history.
type Attempt struct {
	ID         string
	Layout     Layout
	Lesson     int
	WPM        int
	Accuracy   int
	Keystrokes int
	Mistakes   int
	StartedAt  time.Time
	EndedAt    time.Time
	DurationMs int64
}

// AttemptFilter narrows attempt history queries.
type AttemptFilter struct {
	Layout Layout
	Lesson *int
	Since  *time.Time
	Last   int
}

// PracticeConfig defines practice-mode settings.
type PracticeConfig struct {
	Words      int
	WordList   string
	FocusWeak  bool
	WeakTop    int
	WeakFactor float64
}

// ProfileConfig defines options for the profile view.
type ProfileConfig struct {
	Layout      Layout
	Last        int
	CurveWindow int
}
