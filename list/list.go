// Package list implements a doubly linked list arranged as a ring around a
// sentinel node. Nodes are handed out to callers and serve as positions for
// insertion, removal and splicing.
//
// A List is not safe for concurrent use. Callers must synchronize access.
package list

import (
	"github.com/pkg/errors"

	"github.com/webbmaffian/go-collections/internal/equal"
)

// Node is an element of a List. A node removed from its list is detached:
// its links are cleared and it is no longer accepted as a position.
type Node[T any] struct {
	next, prev *Node[T]
	sentinel   bool

	// Value stored in the node. Always the zero value for a sentinel.
	Value T
}

// Next returns the following node, which is the sentinel after the last
// node. Nil for a detached node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node, which is the sentinel before the first
// node. Nil for a detached node.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// IsSentinel reports whether n marks the boundary of a list.
func (n *Node[T]) IsSentinel() bool {
	return n.sentinel
}

func (n *Node[T]) detached() bool {
	return n.next == nil || n.prev == nil
}

// List is a sentinel-ringed doubly linked list.
//
// Methods taking a node expect a node of the receiver (or its sentinel).
// Nodes of another list are not detected and corrupt both lists.
//
// The zero List is not usable; create lists with New.
type List[T any] struct {
	sentinel *Node[T]
	size     int
}

// New creates an empty list.
func New[T any]() *List[T] {
	l := &List[T]{
		sentinel: &Node[T]{sentinel: true},
	}
	l.reset()

	return l
}

func (l *List[T]) reset() {
	l.sentinel.next = l.sentinel
	l.sentinel.prev = l.sentinel
	l.size = 0
}

// Sentinel returns the boundary node. Iteration from First stops when the
// sentinel is reached.
func (l *List[T]) Sentinel() *Node[T] {
	return l.sentinel
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// connect links prev and next to each other.
func connect[T any](prev, next *Node[T]) {
	prev.next = next
	next.prev = prev
}

// insert places a new node holding val between prev and next, which must be
// adjacent.
func (l *List[T]) insert(prev, next *Node[T], val T) *Node[T] {
	n := &Node[T]{Value: val}
	connect(prev, n)
	connect(n, next)
	l.size++

	return n
}

// unlink removes n, which must be a non-sentinel node of l, and detaches it.
func (l *List[T]) unlink(n *Node[T]) T {
	connect(n.prev, n.next)
	n.next, n.prev = nil, nil
	l.size--

	return n.Value
}

func position[T any](n *Node[T]) error {
	if n == nil {
		return errors.Wrap(ErrInvalidArgument, "node is nil")
	}

	if n.detached() {
		return errors.Wrap(ErrInvalidArgument, "node has been removed")
	}

	return nil
}

// AddFirst inserts val at the front of the list and returns its node.
func (l *List[T]) AddFirst(val T) *Node[T] {
	return l.insert(l.sentinel, l.sentinel.next, val)
}

// AddLast inserts val at the end of the list and returns its node.
func (l *List[T]) AddLast(val T) *Node[T] {
	return l.insert(l.sentinel.prev, l.sentinel, val)
}

// AddAfter inserts val right after n. Given [1 2 3 4] and the node of 2,
// the list becomes [1 2 9 3 4] for val 9. Adding after the sentinel adds to
// the front.
func (l *List[T]) AddAfter(n *Node[T], val T) (*Node[T], error) {
	if err := position(n); err != nil {
		return nil, err
	}

	return l.insert(n, n.next, val), nil
}

// AddBefore inserts val right before n. Given [1 2 3 4] and the node of 2,
// the list becomes [1 9 2 3 4] for val 9. Adding before the sentinel adds to
// the end.
func (l *List[T]) AddBefore(n *Node[T], val T) (*Node[T], error) {
	if err := position(n); err != nil {
		return nil, err
	}

	return l.insert(n.prev, n, val), nil
}

// RemoveNode removes n from the list and returns its value.
func (l *List[T]) RemoveNode(n *Node[T]) (val T, err error) {
	if err = position(n); err != nil {
		return
	}

	if n.sentinel {
		err = errors.Wrap(ErrInvalidArgument, "cannot remove the sentinel")
		return
	}

	return l.unlink(n), nil
}

// RemoveFirst removes the first node and returns its value.
func (l *List[T]) RemoveFirst() (val T, err error) {
	if l.size == 0 {
		err = ErrEmptyCollection
		return
	}

	return l.unlink(l.sentinel.next), nil
}

// RemoveLast removes the last node and returns its value.
func (l *List[T]) RemoveLast() (val T, err error) {
	if l.size == 0 {
		err = ErrEmptyCollection
		return
	}

	return l.unlink(l.sentinel.prev), nil
}

// First returns the first node, or the sentinel if the list is empty.
func (l *List[T]) First() *Node[T] {
	return l.sentinel.next
}

// Last returns the last node, or the sentinel if the list is empty.
func (l *List[T]) Last() *Node[T] {
	return l.sentinel.prev
}

// NodeAt returns the node at the 0-based index i. Runs in O(n).
func (l *List[T]) NodeAt(i int) (*Node[T], error) {
	if i < 0 || i >= l.size {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, l.size)
	}

	n := l.sentinel.next

	for ; i > 0; i-- {
		n = n.next
	}

	return n, nil
}

// Equal reports whether other holds structurally equal values in the same
// order. A nil value only equals another nil value.
func (l *List[T]) Equal(other *List[T]) bool {
	if other == nil || l.size != other.size {
		return false
	}

	for a, b := l.sentinel.next, other.sentinel.next; a != l.sentinel; a, b = a.next, b.next {
		if !equal.Values(a.Value, b.Value) {
			return false
		}
	}

	return true
}

// SpliceAfter moves every node of other, in order, right after n. Given
// [1 2 3 4], other [7 8 9] and the node of 2, the list becomes
// [1 2 7 8 9 3 4]. Runs in O(1): only the boundary links are rewired.
// Afterwards other is empty and remains usable.
//
// n must be a node of l. Passing the sentinel of other is rejected with
// ErrInvalidArgument, but any other node of other goes undetected: l would
// count the spliced nodes without ever linking them.
func (l *List[T]) SpliceAfter(n *Node[T], other *List[T]) error {
	if err := position(n); err != nil {
		return err
	}

	if other == nil {
		return errors.Wrap(ErrInvalidArgument, "list is nil")
	}

	if other == l {
		return errors.Wrap(ErrInvalidArgument, "cannot splice a list into itself")
	}

	if n == other.sentinel {
		return errors.Wrap(ErrInvalidArgument, "cannot splice after the sentinel of the spliced list")
	}

	if other.size > 0 {
		next := n.next
		connect(n, other.sentinel.next)
		connect(other.sentinel.prev, next)
		l.size += other.size
	}

	other.reset()
	return nil
}

// Values returns the values from first to last.
func (l *List[T]) Values() []T {
	vals := make([]T, 0, l.size)

	for n := l.sentinel.next; n != l.sentinel; n = n.next {
		vals = append(vals, n.Value)
	}

	return vals
}
