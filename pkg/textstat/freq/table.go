// Package freq counts occurrences of tokens and bigrams.
//
// A Table remembers the order in which items were first seen so that
// MostCommon breaks count ties deterministically: among items with the same
// count, the one that appeared first in the input comes first.
package freq

import "sort"

// Table maintains occurrence counts for comparable items.
type Table[T comparable] struct {
	counts map[T]int
	order  []T // distinct items in first-occurrence order
	total  int
}

// Entry is one item of a MostCommon view.
type Entry[T comparable] struct {
	Item  T
	Count int
}

// NewTable creates an empty table.
func NewTable[T comparable]() *Table[T] {
	return &Table[T]{counts: make(map[T]int)}
}

// Count builds a table over items.
func Count[T comparable](items []T) *Table[T] {
	t := NewTable[T]()
	for _, item := range items {
		t.Add(item)
	}
	return t
}

// Add records one occurrence of item.
func (t *Table[T]) Add(item T) {
	if _, ok := t.counts[item]; !ok {
		t.order = append(t.order, item)
	}
	t.counts[item]++
	t.total++
}

// Count returns the occurrences of item, 0 if never seen.
func (t *Table[T]) Count(item T) int {
	return t.counts[item]
}

// Len returns the number of distinct items.
func (t *Table[T]) Len() int {
	return len(t.order)
}

// Total returns the sum of all counts.
func (t *Table[T]) Total() int {
	return t.total
}

// Items returns the distinct items in first-occurrence order.
func (t *Table[T]) Items() []T {
	out := make([]T, len(t.order))
	copy(out, t.order)
	return out
}

// MostCommon returns the n most frequent items, count descending, ties in
// first-occurrence order. n <= 0 yields an empty slice; n larger than Len
// yields every item.
func (t *Table[T]) MostCommon(n int) []Entry[T] {
	if n <= 0 {
		return []Entry[T]{}
	}

	entries := make([]Entry[T], len(t.order))
	for i, item := range t.order {
		entries[i] = Entry[T]{Item: item, Count: t.counts[item]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// All returns every item sorted as MostCommon does.
func (t *Table[T]) All() []Entry[T] {
	return t.MostCommon(t.Len())
}
