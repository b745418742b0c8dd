// Package orderedset provides an ordered set of comparable elements,
// backed by the bptree engine. It is a thin adapter: every operation
// translates directly into one or two engine calls against a tree keyed
// by the element itself.
package orderedset

import (
	"cmp"

	"github.com/trenttobler/Collections.Sorted/bptree"
)

// Set is an ordered collection of elements of type T, optionally
// admitting duplicates with a configurable bias. The zero value is not
// usable; construct with New.
type Set[T any] struct {
	tree            *bptree.Tree[T, struct{}]
	compare         bptree.Comparer[T]
	capacity        int
	allowDuplicates bool
	insertBias      bptree.Bias
	lookupBias      bptree.Bias
	removeBias      bptree.Bias
	readOnly        bool
}

// Option configures a Set at construction time.
type Option[T any] func(*Set[T])

// WithComparer overrides the natural order used to order elements.
func WithComparer[T any](cmp bptree.Comparer[T]) Option[T] {
	return func(s *Set[T]) { s.compare = cmp }
}

// WithCapacity overrides the default node capacity (128).
func WithCapacity[T any](capacity int) Option[T] {
	return func(s *Set[T]) { s.capacity = capacity }
}

// WithDuplicates allows equal elements to coexist in the set.
func WithDuplicates[T any](allow bool) Option[T] {
	return func(s *Set[T]) { s.allowDuplicates = allow }
}

// WithInsertBias sets the bias applied when inserting into a run of
// duplicates: BiasHead places new entries before existing equals,
// BiasTail places them after.
func WithInsertBias[T any](b bptree.Bias) Option[T] {
	return func(s *Set[T]) { s.insertBias = b }
}

// WithLookupBias sets the bias applied by contains/indexing queries.
func WithLookupBias[T any](b bptree.Bias) Option[T] {
	return func(s *Set[T]) { s.lookupBias = b }
}

// WithRemoveBias sets the bias applied by remove.
func WithRemoveBias[T any](b bptree.Bias) Option[T] {
	return func(s *Set[T]) { s.removeBias = b }
}

// New constructs an empty Set. Without WithComparer, New panics; use
// NewOrdered for element types with a natural order.
func New[T any](opts ...Option[T]) *Set[T] {
	s := &Set[T]{capacity: 128}
	for _, opt := range opts {
		opt(s)
	}
	if s.compare == nil {
		panic("orderedset: New requires WithComparer for this element type")
	}
	s.tree = bptree.NewTree[T, struct{}](s.capacity, s.compare, s.allowDuplicates)
	return s
}

// NewOrdered constructs an empty Set over a naturally ordered element
// type, equivalent to New(WithComparer(bptree.NaturalOrder[T]()), ...).
func NewOrdered[T cmp.Ordered](opts ...Option[T]) *Set[T] {
	all := append([]Option[T]{WithComparer[T](bptree.NaturalOrder[T]())}, opts...)
	return New(all...)
}
