package minheap

import "golang.org/x/exp/constraints"

// Comparator orders two elements: negative when a comes before b, positive
// when b comes before a, zero when they are equivalent.
type Comparator[T any] func(a, b T) int

// Comparable is the total-order contract of a type ordering itself.
type Comparable[T any] interface {
	CompareTo(other T) int
}

type orderKind uint8

const (
	undefinedOrder orderKind = iota
	naturalOrder
	comparatorOrder
)

// Ordering selects how a MinHeap compares its elements. It is either the
// natural order of the element type or an explicit Comparator. The zero
// Ordering is undefined: a heap using it rejects every operation that needs
// a comparison with ErrTypeMismatch.
type Ordering[T any] struct {
	kind    orderKind
	compare Comparator[T]
}

// Natural orders built-in ordered types with < and >. NaN is not ordered
// and must not be stored.
func Natural[T constraints.Ordered]() Ordering[T] {
	return Ordering[T]{
		kind: naturalOrder,
		compare: func(a, b T) int {
			if a < b {
				return -1
			}

			if a > b {
				return 1
			}

			return 0
		},
	}
}

// ByCompareTo orders types that implement Comparable.
func ByCompareTo[T Comparable[T]]() Ordering[T] {
	return Ordering[T]{
		kind: naturalOrder,
		compare: func(a, b T) int {
			return a.CompareTo(b)
		},
	}
}

// ByComparator orders elements with c. A nil c gives an undefined Ordering.
func ByComparator[T any](c Comparator[T]) Ordering[T] {
	if c == nil {
		return Ordering[T]{}
	}

	return Ordering[T]{
		kind:    comparatorOrder,
		compare: c,
	}
}

// Defined reports whether the ordering can compare elements.
func (o Ordering[T]) Defined() bool {
	return o.kind != undefinedOrder && o.compare != nil
}

// Natural reports whether the ordering is the element type's own.
func (o Ordering[T]) Natural() bool {
	return o.kind == naturalOrder
}
