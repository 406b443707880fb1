package stats

import (
	"context"

	"github.com/verte-zerg/bornomala/internal/model"
)

// AttemptSource lists recorded attempts.
type AttemptSource interface {
	ListAttempts(ctx context.Context, filter model.AttemptFilter) ([]model.Attempt, error)
}

// LessonSource exposes the catalog queries a report needs.
type LessonSource interface {
	Len() int
	Lesson(id int) (model.Lesson, bool)
	LevelOf(id int) int
}

// Report contains precomputed data for profile rendering.
type Report struct {
	Layout   model.Layout
	Summary  Summary
	Lessons  []LessonRow
	Attempts []model.Attempt
	Weak     []int
}

// BuildReport loads and prepares data for profile rendering.
func BuildReport(ctx context.Context, src AttemptSource, cat LessonSource, rec model.ProgressRecord, cfg model.ProfileConfig) (Report, error) {
	attempts, err := src.ListAttempts(ctx, model.AttemptFilter{Layout: cfg.Layout, Last: cfg.Last})
	if err != nil {
		return Report{}, err
	}
	return Report{
		Layout:   cfg.Layout,
		Summary:  Summarize(rec.Performance, len(rec.CompletedLessons), cat.Len()),
		Lessons:  LessonRows(cat, rec),
		Attempts: attempts,
		Weak:     WeakLessons(rec.Performance, 3),
	}, nil
}

// LessonRows joins the catalog with a progress record.
func LessonRows(cat LessonSource, rec model.ProgressRecord) []LessonRow {
	rows := make([]LessonRow, 0, cat.Len())
	for id := 0; id < cat.Len(); id++ {
		lesson, ok := cat.Lesson(id)
		if !ok {
			continue
		}
		level := cat.LevelOf(id)
		row := LessonRow{
			Lesson:    id,
			Title:     lesson.Title,
			Level:     level,
			Completed: rec.CompletedLessons.Has(id),
			Unlocked:  level >= 0 && rec.UnlockedLevels.Has(level),
		}
		if p, ok := rec.PerformanceFor(id); ok {
			row.HasResult = true
			row.WPM = p.WPM
			row.Accuracy = p.Accuracy
			row.Date = p.Date
		}
		rows = append(rows, row)
	}
	return rows
}
