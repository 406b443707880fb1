package generator

import (
	"testing"

	"github.com/verte-zerg/bornomala/internal/model"
)

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	pool := []Candidate{
		{Item: model.Item{Target: "মা", Hint: "ma"}, Lesson: 3},
		{Item: model.Item{Target: "বাবা", Hint: "baba"}, Lesson: 3},
		{Item: model.Item{Target: "ভাত", Hint: "vat"}, Lesson: 4},
	}
	a := NewSeeded(7).Generate(pool, 10)
	b := NewSeeded(7).Generate(pool, 10)
	if len(a) != 10 {
		t.Fatalf("expected 10 items, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected identical sequences, differ at %d", i)
		}
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	if got := NewSeeded(1).Generate(nil, 5); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := NewSeeded(1).GenerateWeighted(nil, 5, nil, 2); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestGenerateWeightedFavoursWeakLessons(t *testing.T) {
	pool := []Candidate{
		{Item: model.Item{Target: "মা", Hint: "ma"}, Lesson: 3},
		{Item: model.Item{Target: "ভাত", Hint: "vat"}, Lesson: 4},
	}
	items := NewSeeded(42).GenerateWeighted(pool, 2000, map[int]struct{}{4: {}}, 9)
	weak := 0
	for _, item := range items {
		if item.Target == "ভাত" {
			weak++
		}
	}
	// Expected share is 10/11; allow a wide margin.
	if weak < 1600 {
		t.Fatalf("expected weak lesson to dominate, got %d of 2000", weak)
	}
}

func TestPoolSkipsCharactersAndPairsHints(t *testing.T) {
	lessons := map[int]model.Lesson{
		4: {Words: []string{"ভাত"}},
		1: {Characters: []string{"ক"}, Words: []string{"কাক", "খাল"}},
	}
	hints := map[int]model.HintData{
		1: {PhoneticChar: []string{"k"}, PhoneticWords: []string{"kak"}},
		4: {WordKeys: []string{"vf/"}},
	}
	pool := Pool(lessons, hints)
	want := []Candidate{
		{Item: model.Item{Target: "কাক", Hint: "kak"}, Lesson: 1},
		{Item: model.Item{Target: "খাল"}, Lesson: 1},
		{Item: model.Item{Target: "ভাত", Hint: "vf/"}, Lesson: 4},
	}
	if len(pool) != len(want) {
		t.Fatalf("expected %d candidates, got %d: %+v", len(want), len(pool), pool)
	}
	for i := range want {
		if pool[i] != want[i] {
			t.Fatalf("candidate %d: got %+v want %+v", i, pool[i], want[i])
		}
	}
}
