package internal

import "slices"

type entry[T any] struct {
	priority int

	// registration order, breaks priority ties
	seq uint64

	fn func(T)

	active bool
	once   bool
}

// insert places e at the end of its priority band. When shared is set the
// backing array of entries may be observed by an emission, so a fresh slice
// is returned instead of shifting in place.
func insert[T any](entries []*entry[T], e *entry[T], shared bool) []*entry[T] {
	i, _ := slices.BinarySearchFunc(entries, e, func(have, want *entry[T]) int {
		if have.priority >= want.priority {
			return -1
		}
		return 1
	})

	if shared {
		out := make([]*entry[T], 0, len(entries)+1)
		out = append(out, entries[:i]...)
		out = append(out, e)
		return append(out, entries[i:]...)
	}

	return slices.Insert(entries, i, e)
}

// compact drops inactive entries in place.
func compact[T any](entries []*entry[T]) []*entry[T] {
	return slices.DeleteFunc(entries, func(e *entry[T]) bool {
		return !e.active
	})
}
