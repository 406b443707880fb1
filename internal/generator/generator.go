// Package generator draws practice items.
package generator

import (
	"math/rand"
	"sort"
	"time"

	"github.com/verte-zerg/bornomala/internal/model"
)

// Candidate is a practice item and the lesson it was taken from.
// Lesson is model.PracticeLessonID for items from a custom word list.
type Candidate struct {
	Item   model.Item
	Lesson int
}

// Generator produces randomized practice sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate selects count items uniformly.
func (g *Generator) Generate(pool []Candidate, count int) []model.Item {
	if len(pool) == 0 || count <= 0 {
		return nil
	}
	result := make([]model.Item, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, pool[g.rnd.Intn(len(pool))].Item)
	}
	return result
}

// GenerateWeighted selects items with a bias toward weak lessons.
// Items from a weak lesson weigh 1+factor, all others weigh 1.
func (g *Generator) GenerateWeighted(pool []Candidate, count int, weak map[int]struct{}, factor float64) []model.Item {
	if len(pool) == 0 || count <= 0 {
		return nil
	}
	weights := make([]float64, len(pool))
	total := 0.0
	for i, c := range pool {
		w := 1.0
		if _, ok := weak[c.Lesson]; ok {
			w += factor
		}
		weights[i] = w
		total += w
	}

	result := make([]model.Item, 0, count)
	for i := 0; i < count; i++ {
		r := g.rnd.Float64() * total
		acc := 0.0
		idx := len(pool) - 1
		for j, w := range weights {
			acc += w
			if r <= acc {
				idx = j
				break
			}
		}
		result = append(result, pool[idx].Item)
	}
	return result
}

// Pool collects the words and phrases of the given lessons as candidates.
// Characters are left out because single glyphs make poor practice items.
func Pool(lessons map[int]model.Lesson, hints map[int]model.HintData) []Candidate {
	ids := make([]int, 0, len(lessons))
	for id := range lessons {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	var out []Candidate
	for _, id := range ids {
		lesson := lessons[id]
		_, words, phrases := hints[id].Sections()
		out = appendSection(out, id, lesson.Words, words)
		out = appendSection(out, id, lesson.Phrases, phrases)
	}
	return out
}

func appendSection(out []Candidate, lesson int, targets, hints []string) []Candidate {
	for i, target := range targets {
		item := model.Item{Target: target}
		if i < len(hints) {
			item.Hint = hints[i]
		}
		out = append(out, Candidate{Item: item, Lesson: lesson})
	}
	return out
}
