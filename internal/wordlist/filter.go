package wordlist

import (
	"github.com/verte-zerg/bornomala/internal/bangla"
	"github.com/verte-zerg/bornomala/internal/model"
)

// FilterFunc returns true when an item should be kept.
type FilterFunc func(model.Item) bool

// FilterBengali keeps items whose target is Bengali script.
func FilterBengali(item model.Item) bool {
	return bangla.IsBengaliWord(item.Target)
}

// Filter returns the items accepted by keep.
func Filter(items []model.Item, keep FilterFunc) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
