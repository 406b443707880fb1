package stats

import (
	"sort"

	"github.com/verte-zerg/bornomala/internal/model"
)

// WeakLessons selects the lowest-accuracy lessons from the performance list.
// Ties are broken by lower WPM, then by lesson id.
func WeakLessons(perf []model.PerformanceEntry, top int) []int {
	if len(perf) == 0 {
		return nil
	}
	candidates := make([]model.PerformanceEntry, 0, len(perf))
	for _, p := range perf {
		if p.Lesson < 0 {
			continue
		}
		candidates = append(candidates, p)
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy < b.Accuracy
		}
		if a.WPM != b.WPM {
			return a.WPM < b.WPM
		}
		return a.Lesson < b.Lesson
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	out := make([]int, 0, top)
	for i := 0; i < top; i++ {
		out = append(out, candidates[i].Lesson)
	}
	return out
}
