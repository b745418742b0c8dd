package orderedset

import "github.com/trenttobler/Collections.Sorted/bptree"

// Iterator walks elements of a Set in the order its underlying
// bptree.Iterator was constructed for.
type Iterator[T any] struct {
	it *bptree.Iterator[T, struct{}]
}

// Next advances the iterator and reports whether an element is available.
func (it *Iterator[T]) Next() bool {
	return it.it.Next()
}

// Value returns the element at the iterator's current position.
func (it *Iterator[T]) Value() T {
	return it.it.Key()
}
