package catalog

import (
	"fmt"

	"github.com/verte-zerg/bornomala/internal/model"
)

// Check reports data problems that do not prevent loading.
func Check(c *Catalog) []string {
	var warnings []string
	owner := map[int]int{}
	for li, level := range c.levels {
		for _, id := range level.Lessons {
			if id < 0 || id >= len(c.lessons) {
				warnings = append(warnings, fmt.Sprintf("level %d references unknown lesson %d", li, id))
				continue
			}
			if prev, ok := owner[id]; ok {
				warnings = append(warnings, fmt.Sprintf("lesson %d appears in levels %d and %d", id, prev, li))
				continue
			}
			owner[id] = li
		}
	}
	for id := range c.lessons {
		if _, ok := owner[id]; !ok {
			warnings = append(warnings, fmt.Sprintf("lesson %d is not part of any level", id))
		}
	}
	for _, layout := range c.Layouts() {
		entries := c.hints[layout]
		if len(entries) > len(c.lessons) {
			warnings = append(warnings, fmt.Sprintf("%s: %d hint entries for %d lessons", layout, len(entries), len(c.lessons)))
		}
		for id, lesson := range c.lessons {
			hint, ok := c.Hints(layout, id)
			if !ok {
				continue
			}
			warnings = append(warnings, sectionMismatches(layout, id, lesson, hint)...)
		}
	}
	return warnings
}

// SectionMismatches lists sections whose hint count differs from the target count.
func SectionMismatches(lesson model.Lesson, hint model.HintData) []string {
	chars, words, phrases := hint.Sections()
	var out []string
	if len(chars) != len(lesson.Characters) {
		out = append(out, fmt.Sprintf("characters %d/%d", len(chars), len(lesson.Characters)))
	}
	if len(words) != len(lesson.Words) {
		out = append(out, fmt.Sprintf("words %d/%d", len(words), len(lesson.Words)))
	}
	if len(phrases) != len(lesson.Phrases) {
		out = append(out, fmt.Sprintf("phrases %d/%d", len(phrases), len(lesson.Phrases)))
	}
	return out
}

func sectionMismatches(layout model.Layout, id int, lesson model.Lesson, hint model.HintData) []string {
	diffs := SectionMismatches(lesson, hint)
	out := make([]string, 0, len(diffs))
	for _, d := range diffs {
		out = append(out, fmt.Sprintf("%s: lesson %d hint count mismatch (%s)", layout, id, d))
	}
	return out
}
