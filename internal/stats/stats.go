// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/bornomala/internal/model"
)

const sparkChars = " .:-=+*#%@"

// WPM returns words per minute, where five target characters make one word.
func WPM(targetChars int, elapsed time.Duration) int {
	minutes := elapsed.Minutes()
	if minutes <= 0 {
		return 0
	}
	return int(math.Round((float64(targetChars) / 5.0) / minutes))
}

// Accuracy returns 100 minus the mistake percentage, clamped to 0..100.
func Accuracy(keystrokes, mistakes int) int {
	if keystrokes <= 0 {
		return 0
	}
	acc := int(math.Round(100 - float64(mistakes)/float64(keystrokes)*100))
	if acc < 0 {
		return 0
	}
	if acc > 100 {
		return 100
	}
	return acc
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := seriesMinMaxSingle(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Summary aggregates the performance list of one layout.
type Summary struct {
	Lessons     int
	Completed   int
	Total       int
	AvgWPM      float64
	BestWPM     int
	AvgAccuracy float64
}

// Summarize computes averages over performance entries.
func Summarize(perf []model.PerformanceEntry, completed, total int) Summary {
	s := Summary{Lessons: len(perf), Completed: completed, Total: total}
	if len(perf) == 0 {
		return s
	}
	var wpmSum, accSum int
	for _, p := range perf {
		wpmSum += p.WPM
		accSum += p.Accuracy
		if p.WPM > s.BestWPM {
			s.BestWPM = p.WPM
		}
	}
	s.AvgWPM = float64(wpmSum) / float64(len(perf))
	s.AvgAccuracy = float64(accSum) / float64(len(perf))
	return s
}

// CompletionBar renders completed/total as a fixed-width bar.
func CompletionBar(completed, total, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if total > 0 {
		filled = int(math.Round(float64(completed) / float64(total) * float64(width)))
	}
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderSummary prints a summary block.
func RenderSummary(w io.Writer, s Summary) error {
	lines := []string{"Summary"}
	lines = append(lines, fmt.Sprintf("Completed: %d/%d %s", s.Completed, s.Total, CompletionBar(s.Completed, s.Total, 20)))
	if s.Lessons == 0 {
		lines = append(lines, "No lessons completed yet.")
	} else {
		lines = append(lines,
			fmt.Sprintf("Avg WPM: %.1f", s.AvgWPM),
			fmt.Sprintf("Best WPM: %d", s.BestWPM),
			fmt.Sprintf("Avg Accuracy: %.1f%%", s.AvgAccuracy),
		)
	}
	lines = append(lines, "")
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// CurveOptions configures learning curve rendering.
type CurveOptions struct {
	Window     int
	TotalWidth int
	Height     int
	Color      bool
	Palette    Palette
}

// Palette carries hex colours for the two curve series.
type Palette struct {
	WPM      string
	Accuracy string
}

// RenderCurves prints WPM and accuracy learning curves over attempts.
func RenderCurves(w io.Writer, attempts []model.Attempt, opts CurveOptions) error {
	if len(attempts) == 0 {
		_, err := fmt.Fprintln(w, "No attempts recorded.")
		return err
	}
	wpms := make([]float64, len(attempts))
	accs := make([]float64, len(attempts))
	for i, a := range attempts {
		wpms[i] = float64(a.WPM)
		accs[i] = float64(a.Accuracy)
	}
	width := 0
	if opts.TotalWidth > 0 {
		width = PlotWidthFor(opts.TotalWidth)
	}
	return PlotSeries(w, "Learning Curves", []Series{
		{Name: "WPM", Values: MovingAverage(wpms, opts.Window), Color: opts.Palette.WPM},
		{Name: "Accuracy", Values: MovingAverage(accs, opts.Window), Color: opts.Palette.Accuracy, Fixed: true, Min: 0, Max: 100},
	}, PlotOptions{Width: width, Height: opts.Height, ForceColor: opts.Color})
}
