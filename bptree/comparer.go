package bptree

import "cmp"

// Comparer orders two keys the way a total order must: negative when a < b,
// zero when equal, positive when a > b.
type Comparer[K any] func(a, b K) int

// NaturalOrder returns a Comparer over any cmp.Ordered key, built directly
// on the standard library's cmp.Compare.
func NaturalOrder[K cmp.Ordered]() Comparer[K] {
	return func(a, b K) int {
		return cmp.Compare(a, b)
	}
}

// Bias steers how operations resolve ties across equal keys.
type Bias int

const (
	// BiasHead selects/inserts at the head of a run of duplicates.
	BiasHead Bias = -1
	// BiasArbitrary makes no adjustment; the first match encountered is used.
	BiasArbitrary Bias = 0
	// BiasTail selects/inserts at the tail of a run of duplicates.
	BiasTail Bias = 1
)
