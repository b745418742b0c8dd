package orderedset

import "github.com/trenttobler/Collections.Sorted/bptree"

// Comparer returns the total order this set was constructed with.
func (s *Set[T]) Comparer() bptree.Comparer[T] {
	return s.compare
}

// Count returns the number of elements in the set.
func (s *Set[T]) Count() int {
	return s.tree.Count()
}

// AllowDuplicates reports whether equal elements may coexist.
func (s *Set[T]) AllowDuplicates() bool {
	return s.allowDuplicates
}

// SetAllowDuplicates toggles duplicate admission. Disabling duplicates on
// a non-empty set is a fatal precondition violation
// (AllowDuplicatesTransition); enabling is always allowed.
func (s *Set[T]) SetAllowDuplicates(allow bool) {
	if !allow && s.allowDuplicates && s.tree.Count() > 0 {
		bptree.Fail(bptree.AllowDuplicatesTransition, s.tree.Count())
	}
	s.allowDuplicates = allow
}

// InsertBias returns the bias applied when inserting into a run of
// duplicates.
func (s *Set[T]) InsertBias() bptree.Bias { return s.insertBias }

// SetInsertBias sets the bias applied when inserting into a run of
// duplicates. Forced to BiasArbitrary when duplicates are disallowed.
func (s *Set[T]) SetInsertBias(b bptree.Bias) { s.insertBias = s.effectiveBias(b) }

// LookupBias returns the bias applied by contains/indexing queries.
func (s *Set[T]) LookupBias() bptree.Bias { return s.lookupBias }

// SetLookupBias sets the bias applied by contains/indexing queries.
func (s *Set[T]) SetLookupBias(b bptree.Bias) { s.lookupBias = s.effectiveBias(b) }

// RemoveBias returns the bias applied by remove.
func (s *Set[T]) RemoveBias() bptree.Bias { return s.removeBias }

// SetRemoveBias sets the bias applied by remove.
func (s *Set[T]) SetRemoveBias(b bptree.Bias) { s.removeBias = s.effectiveBias(b) }

func (s *Set[T]) effectiveBias(b bptree.Bias) bptree.Bias {
	if !s.allowDuplicates {
		return bptree.BiasArbitrary
	}
	return b
}

// IsReadOnly reports whether mutating operations are currently rejected.
func (s *Set[T]) IsReadOnly() bool { return s.readOnly }

// SetReadOnly toggles the read-only flag.
func (s *Set[T]) SetReadOnly(ro bool) { s.readOnly = ro }

func (s *Set[T]) checkWritable() {
	if s.readOnly {
		bptree.Fail(bptree.ImmutableMutation, nil)
	}
}

// Clear removes every element from the set.
func (s *Set[T]) Clear() {
	s.checkWritable()
	s.tree.Clear()
}

// Add inserts x, honoring the configured insert bias when duplicates are
// admitted. Fails with DuplicateKey if duplicates are disallowed and x is
// already present.
func (s *Set[T]) Add(x T) {
	s.checkWritable()
	bias := s.effectiveBias(s.insertBias)
	leaf, pos, found := s.tree.Find(x, bias)
	if found {
		if !s.allowDuplicates {
			bptree.Fail(bptree.DuplicateKey, x)
		}
		if bias > 0 {
			pos++
		}
	}
	s.tree.Insert(leaf, pos, x, struct{}{})
}

// Contains reports whether x is present in the set.
func (s *Set[T]) Contains(x T) bool {
	_, _, found := s.tree.Find(x, s.lookupBias)
	return found
}

// Remove deletes one occurrence of x (selected by removeBias when
// duplicates are present) and reports whether anything was removed.
func (s *Set[T]) Remove(x T) bool {
	s.checkWritable()
	leaf, pos, found := s.tree.Find(x, s.effectiveBias(s.removeBias))
	if !found {
		return false
	}
	s.tree.Remove(leaf, pos)
	return true
}

// At returns the element at absolute rank i.
func (s *Set[T]) At(i int) T {
	if i < 0 || i >= s.tree.Count() {
		bptree.Fail(bptree.IndexOutOfRange, i)
	}
	leaf, pos := s.tree.LeafAt(i)
	return leaf.Key(pos)
}

// RemoveAt deletes the element at absolute rank i.
func (s *Set[T]) RemoveAt(i int) {
	s.checkWritable()
	if i < 0 || i >= s.tree.Count() {
		bptree.Fail(bptree.IndexOutOfRange, i)
	}
	leaf, pos := s.tree.LeafAt(i)
	s.tree.Remove(leaf, pos)
}

// WhereGreaterOrEqual yields elements >= k in ascending order.
func (s *Set[T]) WhereGreaterOrEqual(k T) *Iterator[T] {
	leaf, pos, _ := s.tree.Find(k, bptree.BiasHead)
	return &Iterator[T]{it: s.tree.ForwardFromIndex(leaf, pos)}
}

// WhereLessOrEqualBackwards yields elements <= k in descending order.
func (s *Set[T]) WhereLessOrEqualBackwards(k T) *Iterator[T] {
	leaf, pos, found := s.tree.Find(k, bptree.BiasTail)
	if !found {
		pos--
	}
	return &Iterator[T]{it: s.tree.BackwardFromIndex(leaf, pos)}
}

// WhereInRange yields elements in [lo, hi] in ascending order. Fails
// with InvalidRange if hi < lo.
func (s *Set[T]) WhereInRange(lo, hi T) *Iterator[T] {
	if s.compare(hi, lo) < 0 {
		bptree.Fail(bptree.InvalidRange, [2]T{lo, hi})
	}
	loLeaf, loPos, _ := s.tree.Find(lo, bptree.BiasHead)
	hiLeaf, hiPos, hiFound := s.tree.Find(hi, bptree.BiasTail)
	hiRank := s.tree.GetRootIndex(hiLeaf, hiPos)
	if !hiFound {
		hiPos--
		hiRank--
	}
	if hiRank < s.tree.GetRootIndex(loLeaf, loPos) {
		return &Iterator[T]{it: s.tree.Empty()}
	}
	return &Iterator[T]{it: s.tree.Range(loLeaf, loPos, hiLeaf, hiPos)}
}

// FirstIndexWhereGreaterThan returns the absolute rank of the first
// element strictly greater than k. Landing on the tail of k's run (when
// present) before ranking is what makes this correct even when k has
// many duplicates, rather than only skipping a single occurrence.
func (s *Set[T]) FirstIndexWhereGreaterThan(k T) int {
	leaf, pos, found := s.tree.Find(k, bptree.BiasTail)
	idx := s.tree.GetRootIndex(leaf, pos)
	if found {
		idx++
	}
	return idx
}

// LastIndexWhereLessThan returns the absolute rank of the last element
// strictly less than k. Landing on the head of k's run (when present)
// before ranking, and always subtracting one, is what makes this
// correct whether or not k is present.
func (s *Set[T]) LastIndexWhereLessThan(k T) int {
	leaf, pos, _ := s.tree.Find(k, bptree.BiasHead)
	return s.tree.GetRootIndex(leaf, pos) - 1
}

// ForwardFromIndex yields elements starting at absolute rank i, ascending.
func (s *Set[T]) ForwardFromIndex(i int) *Iterator[T] {
	leaf, pos := s.tree.LeafAt(i)
	return &Iterator[T]{it: s.tree.ForwardFromIndex(leaf, pos)}
}

// BackwardFromIndex yields elements starting at absolute rank i, descending.
func (s *Set[T]) BackwardFromIndex(i int) *Iterator[T] {
	leaf, pos := s.tree.LeafAt(i)
	return &Iterator[T]{it: s.tree.BackwardFromIndex(leaf, pos)}
}

// Iterate yields every element in ascending order.
func (s *Set[T]) Iterate() *Iterator[T] {
	return s.ForwardFromIndex(0)
}

// CopyTo copies every element, in ascending order, into dst starting at
// offset. Fails with IndexOutOfRange if dst is too short to hold them.
func (s *Set[T]) CopyTo(dst []T, offset int) {
	if offset < 0 || offset+s.tree.Count() > len(dst) {
		bptree.Fail(bptree.IndexOutOfRange, offset)
	}
	it := s.Iterate()
	i := offset
	for it.Next() {
		dst[i] = it.Value()
		i++
	}
}
