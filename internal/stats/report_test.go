package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/bornomala/internal/catalog"
	"github.com/verte-zerg/bornomala/internal/model"
	"github.com/verte-zerg/bornomala/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "bornomala.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(30 * time.Second)
		_, err := st.InsertAttempt(ctx, model.Attempt{
			Layout:     model.LayoutAvro,
			Lesson:     i,
			WPM:        10 + i,
			Accuracy:   90,
			Keystrokes: 20,
			Mistakes:   2,
			StartedAt:  start,
			EndedAt:    end,
			DurationMs: end.Sub(start).Milliseconds(),
		})
		if err != nil {
			t.Fatalf("insert attempt: %v", err)
		}
	}

	rec := model.NewProgressRecord()
	rec.CompletedLessons.Add(0)
	rec.Performance = append(rec.Performance, model.PerformanceEntry{Lesson: 0, WPM: 12, Accuracy: 90, Date: "2024-03-01"})

	report, err := BuildReport(ctx, st, cat, rec, model.ProfileConfig{Layout: model.LayoutAvro, Last: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(report.Attempts))
	}
	if report.Attempts[0].Lesson != 1 || report.Attempts[1].Lesson != 2 {
		t.Fatalf("unexpected attempt order: %+v", report.Attempts)
	}
	if report.Summary.Completed != 1 || report.Summary.Total != cat.Len() {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
	if len(report.Lessons) != cat.Len() {
		t.Fatalf("expected a row per lesson, got %d", len(report.Lessons))
	}
	if !report.Lessons[0].HasResult || !report.Lessons[0].Completed {
		t.Fatalf("expected lesson 0 to carry its result: %+v", report.Lessons[0])
	}
	if report.Lessons[3].Unlocked {
		t.Fatalf("expected lesson 3 to be locked")
	}
}
