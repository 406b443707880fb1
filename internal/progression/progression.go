// Package progression decides which levels are unlocked and keeps the progress record
// up to date after a lesson is completed.
package progression

import (
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/bornomala/internal/model"
)

// DateLayout is the format of PerformanceEntry.Date.
const DateLayout = "2006-01-02"

// LevelOf returns the index of the first level containing lessonID, or -1.
func LevelOf(levels []model.LessonLevel, lessonID int) int {
	for i, level := range levels {
		for _, id := range level.Lessons {
			if id == lessonID {
				return i
			}
		}
	}
	return -1
}

// IsUnlocked reports whether the level holding lessonID is unlocked.
func IsUnlocked(levels []model.LessonLevel, unlocked model.IntSet, lessonID int) bool {
	level := LevelOf(levels, lessonID)
	return level >= 0 && unlocked.Has(level)
}

// Evaluate returns the unlocked set after justCompleted was finished.
// When every lesson of its level is completed the next level is unlocked.
// Only that one level is examined; the inputs are not modified.
func Evaluate(levels []model.LessonLevel, completed, unlocked model.IntSet, justCompleted int) model.IntSet {
	out := unlocked.Clone()
	level := LevelOf(levels, justCompleted)
	if level < 0 || level+1 >= len(levels) {
		return out
	}
	for _, id := range levels[level].Lessons {
		if !completed.Has(id) {
			return out
		}
	}
	out.Add(level + 1)
	return out
}

// ApplyCompletion records result in rec and returns the levels it newly unlocked.
// The performance entry for the lesson is replaced if present.
func ApplyCompletion(rec *model.ProgressRecord, levels []model.LessonLevel, result model.CompletionResult, date time.Time) []int {
	if rec.CompletedLessons == nil {
		rec.CompletedLessons = model.IntSet{}
	}
	if rec.UnlockedLevels == nil {
		rec.UnlockedLevels = model.NewIntSet(0)
	}
	rec.CompletedLessons.Add(result.LessonID)
	Upsert(rec, model.PerformanceEntry{
		Lesson:   result.LessonID,
		WPM:      result.WPM,
		Accuracy: result.Accuracy,
		Date:     date.Format(DateLayout),
	})

	next := Evaluate(levels, rec.CompletedLessons, rec.UnlockedLevels, result.LessonID)
	var added []int
	for _, id := range next.Sorted() {
		if !rec.UnlockedLevels.Has(id) {
			added = append(added, id)
		}
	}
	rec.UnlockedLevels = next
	return added
}

// Upsert replaces the entry for entry.Lesson or appends it.
func Upsert(rec *model.ProgressRecord, entry model.PerformanceEntry) {
	for i, p := range rec.Performance {
		if p.Lesson == entry.Lesson {
			rec.Performance[i] = entry
			return
		}
	}
	rec.Performance = append(rec.Performance, entry)
}

// NextLesson returns the lesson offered after lessonID, when it exists and is unlocked.
func NextLesson(levels []model.LessonLevel, lessonCount int, unlocked model.IntSet, lessonID int) (int, bool) {
	next := lessonID + 1
	if lessonID < 0 || next >= lessonCount {
		return 0, false
	}
	if !IsUnlocked(levels, unlocked, next) {
		return 0, false
	}
	return next, true
}

// Experience is the self-reported skill chosen during onboarding.
type Experience string

// Experience levels.
const (
	ExperienceNew          Experience = "new"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceExperienced  Experience = "experienced"
)

// ParseExperience validates an experience name.
func ParseExperience(name string) (Experience, error) {
	switch e := Experience(strings.ToLower(strings.TrimSpace(name))); e {
	case ExperienceNew, ExperienceIntermediate, ExperienceExperienced:
		return e, nil
	default:
		return "", fmt.Errorf("unknown experience %q (want new, intermediate or experienced)", name)
	}
}

// SeedUnlocked returns the initial unlocked levels for an experience level.
func SeedUnlocked(levelCount int, exp Experience) model.IntSet {
	upto := 1
	switch exp {
	case ExperienceIntermediate:
		upto = 3
	case ExperienceExperienced:
		upto = levelCount
	}
	upto = min(upto, levelCount)
	out := model.NewIntSet(0)
	for i := 1; i < upto; i++ {
		out.Add(i)
	}
	return out
}
