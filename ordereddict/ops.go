package ordereddict

import "github.com/trenttobler/Collections.Sorted/bptree"

// Comparer returns the total order this dictionary was constructed with.
func (d *Dictionary[K, V]) Comparer() bptree.Comparer[K] {
	return d.compare
}

// Count returns the number of entries in the dictionary.
func (d *Dictionary[K, V]) Count() int {
	return d.tree.Count()
}

// AllowDuplicates reports whether equal keys may coexist.
func (d *Dictionary[K, V]) AllowDuplicates() bool {
	return d.allowDuplicates
}

// SetAllowDuplicates toggles duplicate admission. Disabling duplicates on
// a non-empty dictionary is a fatal precondition violation
// (AllowDuplicatesTransition); enabling is always allowed.
func (d *Dictionary[K, V]) SetAllowDuplicates(allow bool) {
	if !allow && d.allowDuplicates && d.tree.Count() > 0 {
		bptree.Fail(bptree.AllowDuplicatesTransition, d.tree.Count())
	}
	d.allowDuplicates = allow
}

// InsertBias returns the bias applied when inserting into a run of
// duplicate keys.
func (d *Dictionary[K, V]) InsertBias() bptree.Bias { return d.insertBias }

// SetInsertBias sets the bias applied when inserting into a run of
// duplicate keys. Forced to BiasArbitrary when duplicates are disallowed.
func (d *Dictionary[K, V]) SetInsertBias(b bptree.Bias) { d.insertBias = d.effectiveBias(b) }

// LookupBias returns the bias applied by get/tryGetValue queries.
func (d *Dictionary[K, V]) LookupBias() bptree.Bias { return d.lookupBias }

// SetLookupBias sets the bias applied by get/tryGetValue queries.
func (d *Dictionary[K, V]) SetLookupBias(b bptree.Bias) { d.lookupBias = d.effectiveBias(b) }

// RemoveBias returns the bias applied by remove.
func (d *Dictionary[K, V]) RemoveBias() bptree.Bias { return d.removeBias }

// SetRemoveBias sets the bias applied by remove.
func (d *Dictionary[K, V]) SetRemoveBias(b bptree.Bias) { d.removeBias = d.effectiveBias(b) }

func (d *Dictionary[K, V]) effectiveBias(b bptree.Bias) bptree.Bias {
	if !d.allowDuplicates {
		return bptree.BiasArbitrary
	}
	return b
}

// IsReadOnly reports whether mutating operations are currently rejected.
func (d *Dictionary[K, V]) IsReadOnly() bool { return d.readOnly }

// SetReadOnly toggles the read-only flag.
func (d *Dictionary[K, V]) SetReadOnly(ro bool) { d.readOnly = ro }

func (d *Dictionary[K, V]) checkWritable() {
	if d.readOnly {
		bptree.Fail(bptree.ImmutableMutation, nil)
	}
}

// Clear removes every entry from the dictionary.
func (d *Dictionary[K, V]) Clear() {
	d.checkWritable()
	d.tree.Clear()
}

// Add inserts key/value, honoring the configured insert bias when
// duplicate keys are admitted. Fails with DuplicateKey if duplicates are
// disallowed and key is already present.
func (d *Dictionary[K, V]) Add(key K, value V) {
	d.checkWritable()
	bias := d.effectiveBias(d.insertBias)
	leaf, pos, found := d.tree.Find(key, bias)
	if found {
		if !d.allowDuplicates {
			bptree.Fail(bptree.DuplicateKey, key)
		}
		if bias > 0 {
			pos++
		}
	}
	d.tree.Insert(leaf, pos, key, value)
}

// ContainsKey reports whether key is present in the dictionary.
func (d *Dictionary[K, V]) ContainsKey(key K) bool {
	_, _, found := d.tree.Find(key, d.lookupBias)
	return found
}

// Get returns the value for key, failing with KeyNotFound if absent.
func (d *Dictionary[K, V]) Get(key K) V {
	leaf, pos, found := d.tree.Find(key, d.lookupBias)
	if !found {
		bptree.Fail(bptree.KeyNotFound, key)
	}
	return leaf.Value(pos)
}

// Set upserts key/value: overwrites the value if key is present
// (selected by lookupBias when duplicates exist), otherwise inserts.
func (d *Dictionary[K, V]) Set(key K, value V) {
	d.checkWritable()
	leaf, pos, found := d.tree.Find(key, d.lookupBias)
	if found {
		leaf.SetValue(pos, value)
		return
	}
	d.Add(key, value)
}

// TryGetValue returns the value for key and whether it was found.
func (d *Dictionary[K, V]) TryGetValue(key K) (V, bool) {
	leaf, pos, found := d.tree.Find(key, d.lookupBias)
	if !found {
		var zero V
		return zero, false
	}
	return leaf.Value(pos), true
}

// Remove deletes one entry keyed by key (selected by removeBias when
// duplicates are present) and reports whether anything was removed.
func (d *Dictionary[K, V]) Remove(key K) bool {
	d.checkWritable()
	leaf, pos, found := d.tree.Find(key, d.effectiveBias(d.removeBias))
	if !found {
		return false
	}
	d.tree.Remove(leaf, pos)
	return true
}

// At returns the key/value pair at absolute rank i.
func (d *Dictionary[K, V]) At(i int) (K, V) {
	if i < 0 || i >= d.tree.Count() {
		bptree.Fail(bptree.IndexOutOfRange, i)
	}
	leaf, pos := d.tree.LeafAt(i)
	return leaf.Key(pos), leaf.Value(pos)
}

// RemoveAt deletes the entry at absolute rank i.
func (d *Dictionary[K, V]) RemoveAt(i int) {
	d.checkWritable()
	if i < 0 || i >= d.tree.Count() {
		bptree.Fail(bptree.IndexOutOfRange, i)
	}
	leaf, pos := d.tree.LeafAt(i)
	d.tree.Remove(leaf, pos)
}

// SetValueAt overwrites the value at absolute rank i in place, leaving
// the key and tree shape untouched.
func (d *Dictionary[K, V]) SetValueAt(i int, value V) {
	d.checkWritable()
	if i < 0 || i >= d.tree.Count() {
		bptree.Fail(bptree.IndexOutOfRange, i)
	}
	leaf, pos := d.tree.LeafAt(i)
	leaf.SetValue(pos, value)
}

// WhereGreaterOrEqual yields entries whose key is >= k in ascending order.
func (d *Dictionary[K, V]) WhereGreaterOrEqual(k K) *Iterator[K, V] {
	leaf, pos, _ := d.tree.Find(k, bptree.BiasHead)
	return &Iterator[K, V]{it: d.tree.ForwardFromIndex(leaf, pos)}
}

// WhereLessOrEqualBackwards yields entries whose key is <= k in
// descending order.
func (d *Dictionary[K, V]) WhereLessOrEqualBackwards(k K) *Iterator[K, V] {
	leaf, pos, found := d.tree.Find(k, bptree.BiasTail)
	if !found {
		pos--
	}
	return &Iterator[K, V]{it: d.tree.BackwardFromIndex(leaf, pos)}
}

// WhereInRange yields entries with key in [lo, hi] in ascending order.
// Fails with InvalidRange if hi < lo.
func (d *Dictionary[K, V]) WhereInRange(lo, hi K) *Iterator[K, V] {
	if d.compare(hi, lo) < 0 {
		bptree.Fail(bptree.InvalidRange, [2]K{lo, hi})
	}
	loLeaf, loPos, _ := d.tree.Find(lo, bptree.BiasHead)
	hiLeaf, hiPos, hiFound := d.tree.Find(hi, bptree.BiasTail)
	hiRank := d.tree.GetRootIndex(hiLeaf, hiPos)
	if !hiFound {
		hiPos--
		hiRank--
	}
	if hiRank < d.tree.GetRootIndex(loLeaf, loPos) {
		return &Iterator[K, V]{it: d.tree.Empty()}
	}
	return &Iterator[K, V]{it: d.tree.Range(loLeaf, loPos, hiLeaf, hiPos)}
}

// FirstIndexWhereGreaterThan returns the absolute rank of the first
// entry whose key is strictly greater than k. Landing on the tail of
// k's run (when present) before ranking is what makes this correct
// even when k has many duplicates, rather than only skipping a single
// occurrence.
func (d *Dictionary[K, V]) FirstIndexWhereGreaterThan(k K) int {
	leaf, pos, found := d.tree.Find(k, bptree.BiasTail)
	idx := d.tree.GetRootIndex(leaf, pos)
	if found {
		idx++
	}
	return idx
}

// LastIndexWhereLessThan returns the absolute rank of the last entry
// whose key is strictly less than k. Landing on the head of k's run
// (when present) before ranking, and always subtracting one, is what
// makes this correct whether or not k is present.
func (d *Dictionary[K, V]) LastIndexWhereLessThan(k K) int {
	leaf, pos, _ := d.tree.Find(k, bptree.BiasHead)
	return d.tree.GetRootIndex(leaf, pos) - 1
}

// ForwardFromIndex yields entries starting at absolute rank i, ascending.
func (d *Dictionary[K, V]) ForwardFromIndex(i int) *Iterator[K, V] {
	leaf, pos := d.tree.LeafAt(i)
	return &Iterator[K, V]{it: d.tree.ForwardFromIndex(leaf, pos)}
}

// BackwardFromIndex yields entries starting at absolute rank i, descending.
func (d *Dictionary[K, V]) BackwardFromIndex(i int) *Iterator[K, V] {
	leaf, pos := d.tree.LeafAt(i)
	return &Iterator[K, V]{it: d.tree.BackwardFromIndex(leaf, pos)}
}

// Iterate yields every entry in ascending key order.
func (d *Dictionary[K, V]) Iterate() *Iterator[K, V] {
	return d.ForwardFromIndex(0)
}

// CopyTo copies every entry, in ascending key order, into dst starting at
// offset. Fails with IndexOutOfRange if dst is too short to hold them.
func (d *Dictionary[K, V]) CopyTo(dst []KeyValuePair[K, V], offset int) {
	if offset < 0 || offset+d.tree.Count() > len(dst) {
		bptree.Fail(bptree.IndexOutOfRange, offset)
	}
	it := d.Iterate()
	i := offset
	for it.Next() {
		dst[i] = KeyValuePair[K, V]{Key: it.Key(), Value: it.Value()}
		i++
	}
}
