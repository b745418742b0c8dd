package ordereddict

import "github.com/trenttobler/Collections.Sorted/bptree"

// Iterator walks key/value entries of a Dictionary in the order its
// underlying bptree.Iterator was constructed for.
type Iterator[K any, V any] struct {
	it *bptree.Iterator[K, V]
}

// Next advances the iterator and reports whether an entry is available.
func (it *Iterator[K, V]) Next() bool {
	return it.it.Next()
}

// Key returns the key at the iterator's current position.
func (it *Iterator[K, V]) Key() K {
	return it.it.Key()
}

// Value returns the value at the iterator's current position.
func (it *Iterator[K, V]) Value() V {
	return it.it.Value()
}
