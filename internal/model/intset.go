package model

import (
	"encoding/json"
	"sort"
)

// IntSet is a set of lesson or level ids. It serialises as a sorted JSON array.
type IntSet map[int]struct{}

// NewIntSet builds a set from ids.
func NewIntSet(ids ...int) IntSet {
	s := make(IntSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s IntSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id. The set must be non-nil.
func (s IntSet) Add(id int) {
	s[id] = struct{}{}
}

// Clone returns a copy that is never nil.
func (s IntSet) Clone() IntSet {
	out := make(IntSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the ids in ascending order.
func (s IntSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// MarshalJSON implements json.Marshaler.
func (s IntSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *IntSet) UnmarshalJSON(data []byte) error {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIntSet(ids...)
	return nil
}
