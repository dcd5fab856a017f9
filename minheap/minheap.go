// Package minheap implements a binary min-heap over a slice, ordered either
// naturally or by a caller supplied Comparator.
package minheap

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/webbmaffian/go-collections/internal/equal"
)

// MinHeap keeps its smallest element at the root. For every position k > 0,
// the element at (k-1)/2 is not greater than the element at k.
//
// The zero MinHeap has an undefined Ordering; see Ordering.
//
// All methods are NOT safe for concurrent access. Caller must implement their
// own synchronization.
type MinHeap[T any] struct {
	items []T
	order Ordering[T]
}

// New creates a heap of a built-in ordered type in natural order.
func New[T constraints.Ordered]() *MinHeap[T] {
	return NewWithOrdering(Natural[T]())
}

// NewWithComparator creates a heap ordered by c.
func NewWithComparator[T any](c Comparator[T]) *MinHeap[T] {
	return NewWithOrdering(ByComparator(c))
}

func NewWithOrdering[T any](o Ordering[T]) *MinHeap[T] {
	return &MinHeap[T]{
		order: o,
	}
}

func (h *MinHeap[T]) Ordering() Ordering[T] {
	return h.order
}

func (h *MinHeap[T]) Len() int {
	return len(h.items)
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.items) == 0
}

func (h *MinHeap[T]) compare(i, j int) int {
	return h.order.compare(h.items[i], h.items[j])
}

func (h *MinHeap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *MinHeap[T]) mismatch() error {
	return errors.Wrapf(ErrTypeMismatch, "no ordering defined for %d elements", len(h.items))
}

// Add inserts val and restores the heap order by sifting it up.
func (h *MinHeap[T]) Add(val T) error {
	if len(h.items) > 0 && !h.order.Defined() {
		return h.mismatch()
	}

	h.items = append(h.items, val)
	h.up(len(h.items) - 1)
	return nil
}

// up moves the element at k towards the root while its parent is greater.
func (h *MinHeap[T]) up(k int) {
	for k > 0 {
		parent := (k - 1) / 2

		if h.compare(parent, k) <= 0 {
			return
		}

		h.swap(parent, k)
		k = parent
	}
}

// down moves the element at k towards the leaves, swapping it with its
// strictly smallest child until no child is smaller.
func (h *MinHeap[T]) down(k int) {
	n := len(h.items)

	for {
		smallest := k

		if left := 2*k + 1; left < n && h.compare(left, smallest) < 0 {
			smallest = left
		}

		if right := 2*k + 2; right < n && h.compare(right, smallest) < 0 {
			smallest = right
		}

		if smallest == k {
			return
		}

		h.swap(k, smallest)
		k = smallest
	}
}

// RemoveMin removes and returns the smallest element.
func (h *MinHeap[T]) RemoveMin() (min T, err error) {
	n := len(h.items)

	if n == 0 {
		err = ErrEmptyCollection
		return
	}

	// sifting down the remaining n-1 elements compares once n-1 >= 2
	if n > 2 && !h.order.Defined() {
		err = h.mismatch()
		return
	}

	min = h.items[0]
	last := n - 1
	h.swap(0, last)

	var zero T
	h.items[last] = zero
	h.items = h.items[:last]
	h.down(0)

	return
}

// Min returns the smallest element without removing it.
func (h *MinHeap[T]) Min() (min T, err error) {
	if len(h.items) == 0 {
		err = ErrEmptyCollection
		return
	}

	return h.items[0], nil
}

// Contains reports whether an element structurally equal to val is stored.
// Runs in O(n).
func (h *MinHeap[T]) Contains(val T) bool {
	for _, item := range h.items {
		if equal.Values(item, val) {
			return true
		}
	}

	return false
}

// Values returns a copy of the elements in heap order.
func (h *MinHeap[T]) Values() []T {
	vals := make([]T, len(h.items))
	copy(vals, h.items)
	return vals
}
