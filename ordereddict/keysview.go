package ordereddict

import "github.com/trenttobler/Collections.Sorted/bptree"

// KeysView is a read-only ordered-set view over a Dictionary's keys.
// Every mutating operation fails with Unsupported: the view exists to let
// callers walk or index keys without materializing a copy, not to mutate
// the dictionary through a second door.
type KeysView[K any, V any] struct {
	dict *Dictionary[K, V]
}

// Keys returns a read-only view over d's keys in ascending order.
func (d *Dictionary[K, V]) Keys() *KeysView[K, V] {
	return &KeysView[K, V]{dict: d}
}

// Count returns the number of keys, equal to the dictionary's entry count.
func (v *KeysView[K, V]) Count() int {
	return v.dict.Count()
}

// Contains reports whether key is present in the dictionary.
func (v *KeysView[K, V]) Contains(key K) bool {
	return v.dict.ContainsKey(key)
}

// At returns the key at absolute rank i.
func (v *KeysView[K, V]) At(i int) K {
	k, _ := v.dict.At(i)
	return k
}

// RemoveAt always fails: the keys view is read-only.
func (v *KeysView[K, V]) RemoveAt(i int) {
	bptree.Fail(bptree.Unsupported, "KeysView.RemoveAt")
}

// Add always fails: the keys view is read-only.
func (v *KeysView[K, V]) Add(key K) {
	bptree.Fail(bptree.Unsupported, "KeysView.Add")
}

// Remove always fails: the keys view is read-only.
func (v *KeysView[K, V]) Remove(key K) bool {
	bptree.Fail(bptree.Unsupported, "KeysView.Remove")
	return false
}

// keyIterator adapts the dictionary's key/value iterator to yield keys
// only, matching orderedset.Iterator's shape.
type keyIterator[K any, V any] struct {
	it *bptree.Iterator[K, V]
}

func (it *keyIterator[K, V]) Next() bool { return it.it.Next() }
func (it *keyIterator[K, V]) Value() K   { return it.it.Key() }

// Iterate yields every key in ascending order.
func (v *KeysView[K, V]) Iterate() *keyIterator[K, V] {
	leaf, pos := v.dict.tree.LeafAt(0)
	return &keyIterator[K, V]{it: v.dict.tree.ForwardFromIndex(leaf, pos)}
}

// WhereGreaterOrEqual yields keys >= k in ascending order.
func (v *KeysView[K, V]) WhereGreaterOrEqual(k K) *keyIterator[K, V] {
	leaf, pos, _ := v.dict.tree.Find(k, bptree.BiasHead)
	return &keyIterator[K, V]{it: v.dict.tree.ForwardFromIndex(leaf, pos)}
}

// WhereLessOrEqualBackwards yields keys <= k in descending order.
func (v *KeysView[K, V]) WhereLessOrEqualBackwards(k K) *keyIterator[K, V] {
	leaf, pos, found := v.dict.tree.Find(k, bptree.BiasTail)
	if !found {
		pos--
	}
	return &keyIterator[K, V]{it: v.dict.tree.BackwardFromIndex(leaf, pos)}
}

// FirstIndexWhereGreaterThan returns the absolute rank of the first key
// strictly greater than k.
func (v *KeysView[K, V]) FirstIndexWhereGreaterThan(k K) int {
	return v.dict.FirstIndexWhereGreaterThan(k)
}

// LastIndexWhereLessThan returns the absolute rank of the last key
// strictly less than k.
func (v *KeysView[K, V]) LastIndexWhereLessThan(k K) int {
	return v.dict.LastIndexWhereLessThan(k)
}

// ForwardFromIndex yields keys starting at absolute rank i, ascending.
func (v *KeysView[K, V]) ForwardFromIndex(i int) *keyIterator[K, V] {
	leaf, pos := v.dict.tree.LeafAt(i)
	return &keyIterator[K, V]{it: v.dict.tree.ForwardFromIndex(leaf, pos)}
}

// BackwardFromIndex yields keys starting at absolute rank i, descending.
func (v *KeysView[K, V]) BackwardFromIndex(i int) *keyIterator[K, V] {
	leaf, pos := v.dict.tree.LeafAt(i)
	return &keyIterator[K, V]{it: v.dict.tree.BackwardFromIndex(leaf, pos)}
}
