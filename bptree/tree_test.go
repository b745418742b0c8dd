package bptree

import (
	"math/rand"
	"sort"
	"testing"
)

func intTree(capacity int) *Tree[int, int] {
	return NewTree[int, int](capacity, NaturalOrder[int](), false)
}

func collect[K any, V any](it *Iterator[K, V]) []K {
	var out []K
	for it.Next() {
		out = append(out, it.Key())
	}
	return out
}

func insertAll(t *testing.T, tr *Tree[int, int], keys []int) {
	for _, k := range keys {
		leaf, pos, found := tr.Find(k, BiasArbitrary)
		if found {
			t.Fatalf("unexpected duplicate %d", k)
		}
		tr.Insert(leaf, pos, k, k*10)
	}
}

func checkInvariants[K any, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()
	var walk func(n *Node[K, V]) int
	walk = func(n *Node[K, V]) int {
		if n.nodeCount < 0 || n.nodeCount > tr.capacity {
			t.Fatalf("nodeCount out of range: %d", n.nodeCount)
		}
		if n.isLeaf() {
			if n.totalCount != n.nodeCount {
				t.Fatalf("leaf totalCount %d != nodeCount %d", n.totalCount, n.nodeCount)
			}
			return n.totalCount
		}
		sum := 0
		for i := 0; i < n.nodeCount; i++ {
			c := n.children[i]
			if c.parent != n {
				t.Fatalf("child parent pointer mismatch at slot %d", i)
			}
			if tr.compare(c.keys[0], n.keys[i]) != 0 {
				t.Fatalf("parent-key invariant violated at slot %d", i)
			}
			sum += walk(c)
		}
		if sum != n.totalCount {
			t.Fatalf("internal totalCount %d != children sum %d", n.totalCount, sum)
		}
		return sum
	}
	walk(tr.root)
}

func TestFindInsertBasic(t *testing.T) {
	tr := intTree(4)
	insertAll(t, tr, []int{5, 3, 8, 1, 9, 2, 7, 4, 6})
	checkInvariants(t, tr)

	if tr.Count() != 9 {
		t.Fatalf("count = %d, want 9", tr.Count())
	}
	leaf, pos := tr.LeafAt(0)
	got := collect[int, int](tr.ForwardFromIndex(leaf, pos))
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// Concrete scenario 1 from the property suite: build with C=3, insert 1..9,
// remove(3), removeAt(0); forward iteration must yield 2,4,5,6,7,8,9.
func TestScenarioRemoveSequence(t *testing.T) {
	tr := intTree(3)
	insertAll(t, tr, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	checkInvariants(t, tr)

	leaf, pos, found := tr.Find(3, BiasArbitrary)
	if !found {
		t.Fatalf("expected to find 3")
	}
	tr.Remove(leaf, pos)
	checkInvariants(t, tr)

	leaf, pos = tr.LeafAt(0)
	tr.Remove(leaf, pos)
	checkInvariants(t, tr)

	leaf, pos = tr.LeafAt(0)
	got := collect[int, int](tr.ForwardFromIndex(leaf, pos))
	want := []int{2, 4, 5, 6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLeafAtAndGetRootIndex(t *testing.T) {
	tr := intTree(4)
	keys := make([]int, 200)
	for i := range keys {
		keys[i] = i
	}
	rand.New(rand.NewSource(1)).Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	insertAll(t, tr, keys)
	checkInvariants(t, tr)

	for want := 0; want < 200; want++ {
		leaf, pos := tr.LeafAt(want)
		if leaf.getKey(pos) != want {
			t.Fatalf("LeafAt(%d) = %d", want, leaf.getKey(pos))
		}
		got := tr.GetRootIndex(leaf, pos)
		if got != want {
			t.Fatalf("GetRootIndex roundtrip: want %d got %d", want, got)
		}
	}
}

// Concrete scenario 6: repeatedly removeAt(random) until empty; forward
// iteration must always equal the reference list with the same removals
// applied.
func TestRandomRemoveAtMatchesReference(t *testing.T) {
	tr := intTree(10)
	n := 1000
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	insertAll(t, tr, keys)

	ref := make([]int, n)
	copy(ref, keys)
	sort.Ints(ref)

	for len(ref) > 0 {
		i := rng.Intn(len(ref))
		leaf, pos := tr.LeafAt(i)
		tr.Remove(leaf, pos)
		ref = append(ref[:i], ref[i+1:]...)

		checkInvariants(t, tr)
		if tr.Count() != len(ref) {
			t.Fatalf("count = %d, want %d", tr.Count(), len(ref))
		}
		leaf, pos = tr.LeafAt(0)
		got := collect[int, int](tr.ForwardFromIndex(leaf, pos))
		if len(got) != len(ref) {
			t.Fatalf("after removing rank %d: got %d entries, want %d", i, len(got), len(ref))
		}
		for j := range ref {
			if got[j] != ref[j] {
				t.Fatalf("after removing rank %d: entry %d = %d, want %d", i, j, got[j], ref[j])
			}
		}
	}
	if tr.Count() != 0 {
		t.Fatalf("expected empty tree, count = %d", tr.Count())
	}
	leaf, pos := tr.LeafAt(0)
	if len(collect[int, int](tr.ForwardFromIndex(leaf, pos))) != 0 {
		t.Fatalf("expected no entries after draining")
	}
}

func TestClearReusesFirstLeaf(t *testing.T) {
	tr := intTree(4)
	insertAll(t, tr, []int{1, 2, 3, 4, 5, 6, 7, 8})
	first := tr.firstLeaf
	tr.Clear()
	if tr.firstLeaf != first {
		t.Fatalf("Clear replaced the first leaf")
	}
	if tr.root != first {
		t.Fatalf("Clear did not rebind root to the first leaf")
	}
	if tr.Count() != 0 {
		t.Fatalf("Clear left count = %d", tr.Count())
	}
	insertAll(t, tr, []int{3, 1, 2})
	checkInvariants(t, tr)
	leaf, pos := tr.LeafAt(0)
	got := collect[int, int](tr.ForwardFromIndex(leaf, pos))
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v after Clear+reinsert", got)
	}
}

func TestDuplicateBias(t *testing.T) {
	tr := NewTree[int, int](4, NaturalOrder[int](), true)
	for i := 0; i < 5; i++ {
		leaf, pos, found := tr.Find(7, BiasTail)
		if found {
			pos++
		}
		tr.Insert(leaf, pos, 7, i)
	}
	checkInvariants(t, tr)

	leaf, pos := tr.LeafAt(0)
	it := tr.ForwardFromIndex(leaf, pos)
	var values []int
	for it.Next() {
		values = append(values, it.Value())
	}
	for i, v := range values {
		if v != i {
			t.Fatalf("insertBias=tail order: got %v", values)
		}
	}
}

func TestBackwardFromIndexSentinels(t *testing.T) {
	tr := intTree(4)
	insertAll(t, tr, []int{1, 2, 3, 4, 5})

	leaf, _, _ := tr.Find(1, BiasArbitrary)
	it := tr.BackwardFromIndex(leaf, -1)
	if it.Next() {
		t.Fatalf("BackwardFromIndex(-1) at the very first leaf should yield nothing")
	}

	leaf, pos, _ := tr.Find(3, BiasArbitrary)
	it = tr.BackwardFromIndex(leaf, pos)
	got := collect[int, int](it)
	if len(got) != 3 || got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Fatalf("backward from 3: got %v", got)
	}
}

func TestRangeInclusive(t *testing.T) {
	tr := intTree(4)
	insertAll(t, tr, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})

	startLeaf, startPos, _ := tr.Find(3, BiasArbitrary)
	endLeaf, endPos, _ := tr.Find(7, BiasArbitrary)
	it := tr.Range(startLeaf, startPos, endLeaf, endPos)
	got := collect[int, int](it)
	want := []int{3, 4, 5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestIteratorCrashFastOnMutation(t *testing.T) {
	tr := intTree(4)
	insertAll(t, tr, []int{1, 2, 3})
	leaf, pos := tr.LeafAt(0)
	it := tr.ForwardFromIndex(leaf, pos)
	it.Next()

	leaf, pos, _ = tr.Find(4, BiasArbitrary)
	tr.Insert(leaf, pos, 4, 4)

	defer func() {
		r := recover()
		e, ok := r.(*Error)
		if !ok || e.Code != Unsupported {
			t.Fatalf("expected Unsupported panic, got %v", r)
		}
	}()
	it.Next()
	t.Fatalf("expected panic on mutated iterator")
}

func TestNewTreeInvalidCapacity(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(*Error)
		if !ok || e.Code != InvalidCapacity {
			t.Fatalf("expected InvalidCapacity panic, got %v", r)
		}
	}()
	NewTree[int, int](2, NaturalOrder[int](), false)
}

func TestLargeShuffleMatchesSortedOrder(t *testing.T) {
	tr := NewTree[int, int](10, NaturalOrder[int](), false)
	n := 2000
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	rand.New(rand.NewSource(7)).Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	insertAll(t, tr, keys)
	checkInvariants(t, tr)

	leaf, pos := tr.LeafAt(0)
	got := collect[int, int](tr.ForwardFromIndex(leaf, pos))
	if len(got) != n {
		t.Fatalf("got %d entries, want %d", len(got), n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("out of order at %d: %d", i, v)
		}
	}
}
