// Package catalog loads lesson content, phonetic hints and the level table.
package catalog

import (
	"github.com/verte-zerg/bornomala/internal/model"
)

// Catalog is the immutable lesson catalog.
type Catalog struct {
	lessons []model.Lesson
	levels  []model.LessonLevel
	hints   map[model.Layout][]*model.HintData
	levelOf map[int]int
}

// New assembles a catalog from already-decoded parts.
func New(lessons []model.Lesson, levels []model.LessonLevel, hints map[model.Layout][]*model.HintData) *Catalog {
	c := &Catalog{
		lessons: lessons,
		levels:  levels,
		hints:   hints,
		levelOf: map[int]int{},
	}
	if c.hints == nil {
		c.hints = map[model.Layout][]*model.HintData{}
	}
	for li, level := range levels {
		for _, id := range level.Lessons {
			if _, seen := c.levelOf[id]; !seen {
				c.levelOf[id] = li
			}
		}
	}
	return c
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

// Lesson returns the lesson with the given id.
func (c *Catalog) Lesson(id int) (model.Lesson, bool) {
	if id < 0 || id >= len(c.lessons) {
		return model.Lesson{}, false
	}
	return c.lessons[id], true
}

// Levels returns the level table.
func (c *Catalog) Levels() []model.LessonLevel {
	return c.levels
}

// LevelOf returns the level index containing the lesson, or -1.
func (c *Catalog) LevelOf(id int) int {
	if li, ok := c.levelOf[id]; ok {
		return li
	}
	return -1
}

// Hints returns the hint entry of a lesson for a layout.
func (c *Catalog) Hints(layout model.Layout, id int) (model.HintData, bool) {
	entries, ok := c.hints[layout]
	if !ok || id < 0 || id >= len(entries) || entries[id] == nil {
		return model.HintData{}, false
	}
	return *entries[id], true
}

// Layouts lists layouts that carry hint data, in model.Layouts order.
func (c *Catalog) Layouts() []model.Layout {
	out := make([]model.Layout, 0, len(c.hints))
	for _, l := range model.Layouts {
		if _, ok := c.hints[l]; ok {
			out = append(out, l)
		}
	}
	return out
}
