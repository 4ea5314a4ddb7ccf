// Ground-truth multiset of inserted items.
//
// Items are kept in insertion order with a multiplicity index alongside.
// The filter never answers Check from this set; it exists to flag false
// positives and to refuse deletes of items that were never inserted.
package cbloom

import (
	"iter"
	"slices"
)

type members struct {
	items []string
	count map[string]int
}

func newMembers() *members {
	return &members{count: make(map[string]int)}
}

func (s *members) add(item string) {
	s.items = append(s.items, item)
	s.count[item]++
}

// remove drops the earliest occurrence of item. It reports false if the
// item is absent, in which case nothing changes.
func (s *members) remove(item string) bool {
	n := s.count[item]
	if n == 0 {
		return false
	}
	i := slices.Index(s.items, item)
	s.items = slices.Delete(s.items, i, i+1)
	if n == 1 {
		delete(s.count, item)
	} else {
		s.count[item] = n - 1
	}
	return true
}

func (s *members) contains(item string) bool {
	return s.count[item] > 0
}

// Contains reports whether item is currently in the ground-truth set. This
// is an exact lookup, not a filter query.
func (f *Filter) Contains(item string) bool {
	return f.members.contains(item)
}

// Len returns the number of inserted items, counting duplicates.
func (f *Filter) Len() int {
	return len(f.members.items)
}

// Members returns a copy of the inserted items in insertion order.
func (f *Filter) Members() []string {
	return slices.Clone(f.members.items)
}

// All yields inserted items in insertion order. Mutating the filter while
// ranging is not supported.
func (f *Filter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, item := range f.members.items {
			if !yield(item) {
				return
			}
		}
	}
}
