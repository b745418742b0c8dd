// Package ordereddict provides an ordered dictionary mapping comparable
// keys to arbitrary values, backed by the bptree engine. Like orderedset,
// it is a thin adapter over the engine; values ride alongside keys in
// the same leaves.
package ordereddict

import (
	"cmp"

	"github.com/trenttobler/Collections.Sorted/bptree"
)

// KeyValuePair is a single dictionary entry, used by CopyTo to hand
// callers a snapshot without exposing the underlying tree.
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// Dictionary maps keys of type K to values of type V in ascending key
// order, optionally admitting duplicate keys with a configurable bias.
type Dictionary[K any, V any] struct {
	tree            *bptree.Tree[K, V]
	compare         bptree.Comparer[K]
	capacity        int
	allowDuplicates bool
	insertBias      bptree.Bias
	lookupBias      bptree.Bias
	removeBias      bptree.Bias
	readOnly        bool
}

// Option configures a Dictionary at construction time.
type Option[K any, V any] func(*Dictionary[K, V])

// WithComparer overrides the natural order used to order keys.
func WithComparer[K any, V any](cmp bptree.Comparer[K]) Option[K, V] {
	return func(d *Dictionary[K, V]) { d.compare = cmp }
}

// WithCapacity overrides the default node capacity (128).
func WithCapacity[K any, V any](capacity int) Option[K, V] {
	return func(d *Dictionary[K, V]) { d.capacity = capacity }
}

// WithDuplicates allows equal keys to coexist in the dictionary.
func WithDuplicates[K any, V any](allow bool) Option[K, V] {
	return func(d *Dictionary[K, V]) { d.allowDuplicates = allow }
}

// WithInsertBias sets the bias applied when inserting into a run of
// duplicate keys.
func WithInsertBias[K any, V any](b bptree.Bias) Option[K, V] {
	return func(d *Dictionary[K, V]) { d.insertBias = b }
}

// WithLookupBias sets the bias applied by lookup queries.
func WithLookupBias[K any, V any](b bptree.Bias) Option[K, V] {
	return func(d *Dictionary[K, V]) { d.lookupBias = b }
}

// WithRemoveBias sets the bias applied by remove.
func WithRemoveBias[K any, V any](b bptree.Bias) Option[K, V] {
	return func(d *Dictionary[K, V]) { d.removeBias = b }
}

// New constructs an empty Dictionary. Without WithComparer, New panics;
// use NewOrdered for key types with a natural order.
func New[K any, V any](opts ...Option[K, V]) *Dictionary[K, V] {
	d := &Dictionary[K, V]{capacity: 128}
	for _, opt := range opts {
		opt(d)
	}
	if d.compare == nil {
		panic("ordereddict: New requires WithComparer for this key type")
	}
	d.tree = bptree.NewTree[K, V](d.capacity, d.compare, d.allowDuplicates)
	return d
}

// NewOrdered constructs an empty Dictionary over a naturally ordered key
// type, equivalent to New(WithComparer(bptree.NaturalOrder[K]()), ...).
func NewOrdered[K cmp.Ordered, V any](opts ...Option[K, V]) *Dictionary[K, V] {
	all := append([]Option[K, V]{WithComparer[K, V](bptree.NaturalOrder[K]())}, opts...)
	return New(all...)
}
