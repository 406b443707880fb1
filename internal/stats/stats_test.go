package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/bornomala/internal/model"
)

func TestWPM(t *testing.T) {
	// 10 hint characters in 30s: (10/5)/0.5 = 4.
	if got := WPM(10, 30*time.Second); got != 4 {
		t.Fatalf("expected 4 wpm, got %d", got)
	}
	if got := WPM(10, 0); got != 0 {
		t.Fatalf("expected 0 wpm for zero duration, got %d", got)
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(6, 1); got != 83 {
		t.Fatalf("expected 83, got %d", got)
	}
	if got := Accuracy(4, 0); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := Accuracy(2, 5); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := Accuracy(0, 0); got != 0 {
		t.Fatalf("expected 0 without keystrokes, got %d", got)
	}
}

func TestMovingAverage(t *testing.T) {
	out := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("index %d: expected %.1f, got %.1f", i, want[i], out[i])
		}
	}
}

func TestSparklineFlat(t *testing.T) {
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{0, 10}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]model.PerformanceEntry{
		{Lesson: 0, WPM: 10, Accuracy: 90},
		{Lesson: 1, WPM: 20, Accuracy: 100},
	}, 2, 9)
	if s.AvgWPM != 15 || s.BestWPM != 20 || s.AvgAccuracy != 95 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, s); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "Completed: 2/9") {
		t.Fatalf("unexpected summary output:\n%s", buf.String())
	}
}

func TestCompletionBar(t *testing.T) {
	if got := CompletionBar(1, 2, 4); got != "██░░" {
		t.Fatalf("unexpected bar %q", got)
	}
	if got := CompletionBar(0, 0, 3); got != "░░░" {
		t.Fatalf("unexpected empty bar %q", got)
	}
}

func TestWeakLessons(t *testing.T) {
	weak := WeakLessons([]model.PerformanceEntry{
		{Lesson: 0, WPM: 10, Accuracy: 95},
		{Lesson: 1, WPM: 8, Accuracy: 80},
		{Lesson: 2, WPM: 5, Accuracy: 80},
		{Lesson: -1, WPM: 1, Accuracy: 1},
	}, 2)
	if len(weak) != 2 || weak[0] != 2 || weak[1] != 1 {
		t.Fatalf("unexpected weak lessons: %v", weak)
	}
}

func TestRenderCurvesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCurves(&buf, nil, CurveOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No attempts") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
