package ordereddict

import "github.com/trenttobler/Collections.Sorted/bptree"

// ValuesView is a read-only unordered multiset view over a Dictionary's
// values. Because values carry no ordering of their own, Contains is a
// linear scan rather than a tree lookup.
type ValuesView[K any, V any] struct {
	dict  *Dictionary[K, V]
	equal func(a, b V) bool
}

// Values returns a read-only view over d's values. equal is used by
// Contains to compare values; pass a suitable equality function for V.
func (d *Dictionary[K, V]) Values(equal func(a, b V) bool) *ValuesView[K, V] {
	return &ValuesView[K, V]{dict: d, equal: equal}
}

// Count returns the number of values, equal to the dictionary's entry count.
func (v *ValuesView[K, V]) Count() int {
	return v.dict.Count()
}

// Contains reports whether value appears anywhere in the dictionary,
// via a linear scan in ascending key order.
func (v *ValuesView[K, V]) Contains(value V) bool {
	it := v.dict.Iterate()
	for it.Next() {
		if v.equal(it.Value(), value) {
			return true
		}
	}
	return false
}

// At returns the value at absolute rank i (ranked by key order, since the
// view has no order of its own).
func (v *ValuesView[K, V]) At(i int) V {
	_, val := v.dict.At(i)
	return val
}

// Add always fails: the values view is read-only.
func (v *ValuesView[K, V]) Add(value V) {
	bptree.Fail(bptree.Unsupported, "ValuesView.Add")
}

// RemoveAt always fails: the values view is read-only.
func (v *ValuesView[K, V]) RemoveAt(i int) {
	bptree.Fail(bptree.Unsupported, "ValuesView.RemoveAt")
}

// valueIterator adapts the dictionary's key/value iterator to yield
// values only.
type valueIterator[K any, V any] struct {
	it *bptree.Iterator[K, V]
}

func (it *valueIterator[K, V]) Next() bool { return it.it.Next() }
func (it *valueIterator[K, V]) Value() V   { return it.it.Value() }

// Iterate yields every value in the dictionary's key order.
func (v *ValuesView[K, V]) Iterate() *valueIterator[K, V] {
	leaf, pos := v.dict.tree.LeafAt(0)
	return &valueIterator[K, V]{it: v.dict.tree.ForwardFromIndex(leaf, pos)}
}
