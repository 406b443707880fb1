package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/bornomala/internal/model"
)

func testLevels() []model.LessonLevel {
	return []model.LessonLevel{
		{Title: "one", Lessons: []int{0, 1}},
		{Title: "two", Lessons: []int{2}},
		{Title: "three", Lessons: []int{3}},
	}
}

func TestCompletingLevelUnlocksNext(t *testing.T) {
	completed := model.NewIntSet(0, 1)
	unlocked := model.NewIntSet(0)
	got := Evaluate(testLevels(), completed, unlocked, 1)
	assert.Equal(t, []int{0, 1}, got.Sorted())
	assert.Equal(t, []int{0}, unlocked.Sorted(), "input must not be mutated")
}

func TestEvaluateIsIdempotent(t *testing.T) {
	completed := model.NewIntSet(0, 1)
	first := Evaluate(testLevels(), completed, model.NewIntSet(0), 1)
	second := Evaluate(testLevels(), completed, first, 1)
	assert.Equal(t, first.Sorted(), second.Sorted())
}

func TestEvaluateDoesNotCascade(t *testing.T) {
	// Level 1 is already complete but is not re-examined when level 0 finishes.
	completed := model.NewIntSet(0, 1, 2)
	got := Evaluate(testLevels(), completed, model.NewIntSet(0), 0)
	assert.Equal(t, []int{0, 1}, got.Sorted())
}

func TestEvaluateIncompleteOrLastLevel(t *testing.T) {
	got := Evaluate(testLevels(), model.NewIntSet(0), model.NewIntSet(0), 0)
	assert.Equal(t, []int{0}, got.Sorted())

	got = Evaluate(testLevels(), model.NewIntSet(3), model.NewIntSet(0, 1, 2), 3)
	assert.Equal(t, []int{0, 1, 2}, got.Sorted())

	got = Evaluate(testLevels(), model.NewIntSet(9), model.NewIntSet(0), 9)
	assert.Equal(t, []int{0}, got.Sorted())
}

func TestApplyCompletionUpsertsAndReportsUnlocks(t *testing.T) {
	rec := model.NewProgressRecord()
	rec.CompletedLessons.Add(0)
	rec.Performance = []model.PerformanceEntry{{Lesson: 1, WPM: 3, Accuracy: 50, Date: "2024-01-01"}}
	date := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)

	added := ApplyCompletion(&rec, testLevels(), model.CompletionResult{LessonID: 1, WPM: 14, Accuracy: 97}, date)
	assert.Equal(t, []int{1}, added)
	assert.True(t, rec.CompletedLessons.Has(1))
	require.Len(t, rec.Performance, 1)
	assert.Equal(t, model.PerformanceEntry{Lesson: 1, WPM: 14, Accuracy: 97, Date: "2024-03-01"}, rec.Performance[0])

	added = ApplyCompletion(&rec, testLevels(), model.CompletionResult{LessonID: 1, WPM: 20, Accuracy: 99}, date)
	assert.Empty(t, added)
	require.Len(t, rec.Performance, 1)
	assert.Equal(t, 20, rec.Performance[0].WPM)
}

func TestNextLesson(t *testing.T) {
	levels := testLevels()
	next, ok := NextLesson(levels, 4, model.NewIntSet(0), 0)
	assert.True(t, ok)
	assert.Equal(t, 1, next)

	_, ok = NextLesson(levels, 4, model.NewIntSet(0), 1)
	assert.False(t, ok, "lesson 2 is in a locked level")

	_, ok = NextLesson(levels, 4, model.NewIntSet(0, 1, 2), 3)
	assert.False(t, ok, "no lesson after the last")

	_, ok = NextLesson(levels, 4, model.NewIntSet(0), model.PracticeLessonID)
	assert.False(t, ok)
}

func TestSeedUnlocked(t *testing.T) {
	assert.Equal(t, []int{0}, SeedUnlocked(6, ExperienceNew).Sorted())
	assert.Equal(t, []int{0, 1, 2}, SeedUnlocked(6, ExperienceIntermediate).Sorted())
	assert.Equal(t, []int{0, 1}, SeedUnlocked(2, ExperienceIntermediate).Sorted())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, SeedUnlocked(6, ExperienceExperienced).Sorted())
	assert.Equal(t, []int{0}, SeedUnlocked(0, ExperienceExperienced).Sorted())
}

func TestParseExperience(t *testing.T) {
	exp, err := ParseExperience(" Intermediate ")
	require.NoError(t, err)
	assert.Equal(t, ExperienceIntermediate, exp)
	_, err = ParseExperience("guru")
	assert.Error(t, err)
}
