package ring

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrEmpty is returned by operations that require at least one element.
	ErrEmpty = errors.New("list is empty")
	// ErrInvalidIterator is returned when an iterator is unbound, exhausted,
	// or positioned where the requested operation is not allowed.
	ErrInvalidIterator = errors.New("invalid iterator")
)

// zeroValue returns the zero value of the type.
func zeroValue[T any]() (zero T) { //nolint:ireturn
	return
}

// element represents a node of the cycle.
type element[T comparable] struct {
	value T
	next  *element[T]
}

// List is a circular singly linked list. The last element links back to the
// first, and traversal wraps around instead of hitting a nil terminator.
//
// The head element keeps its identity across PushFront and PopFront: pushing
// swaps values instead of relinking the head, so an iterator captured before
// a PushFront observes the pushed value at the head node afterwards. List
// methods are not safe for concurrent use.
type List[T comparable] struct {
	head *element[T]
	n    int
}

// New returns a new empty circular list.
func New[T comparable]() *List[T] {
	return new(List[T])
}

// Len returns the number of elements of the list.
func (l *List[T]) Len() int { return l.n }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.head == nil }

// Front returns the value of the first element.
func (l *List[T]) Front() (T, error) { //nolint:ireturn
	if l.head == nil {
		return zeroValue[T](), fmt.Errorf("front: %w", ErrEmpty)
	}

	return l.head.value, nil
}

// PushFront inserts v at the front of the list.
//
// The new node is linked after the head and the two values are swapped, so
// the head node's identity never changes, only its stored value.
func (l *List[T]) PushFront(v T) {
	if l.head == nil {
		e := &element[T]{value: v}
		e.next = e
		l.head = e
	} else {
		e := &element[T]{value: v, next: l.head.next}
		l.head.next = e
		l.head.value, e.value = e.value, l.head.value
	}

	l.n++
}

// PopFront removes the first element and returns its value.
//
// The head node stays in place: the second element's value is copied into it
// and the second node is unlinked instead.
func (l *List[T]) PopFront() (T, error) { //nolint:ireturn
	if l.head == nil {
		return zeroValue[T](), fmt.Errorf("pop front: %w", ErrEmpty)
	}

	v := l.head.value

	if l.head.next == l.head {
		l.head.next = nil
		l.head = nil
	} else {
		popped := l.head.next
		l.head.value = popped.value
		l.head.next = popped.next
		popped.next = nil
	}

	l.n--

	return v, nil
}

// InsertAfter inserts v immediately after the element it references and
// returns an iterator to the new element.
func (l *List[T]) InsertAfter(it Iterator[T], v T) (Iterator[T], error) {
	if it.elem == nil || it.end {
		return Iterator[T]{}, fmt.Errorf("insert after: %w", ErrInvalidIterator)
	}

	e := &element[T]{value: v, next: it.elem.next}
	it.elem.next = e
	l.n++

	return Iterator[T]{elem: e, head: l.head}, nil
}

// EraseAfter removes the element following it and returns an iterator to the
// element that now follows it. Removing the head element this way is not
// allowed; use PopFront.
func (l *List[T]) EraseAfter(it Iterator[T]) (Iterator[T], error) {
	if it.elem == nil || it.end || it.elem.next == l.head {
		return Iterator[T]{}, fmt.Errorf("erase after: %w", ErrInvalidIterator)
	}

	erased := it.elem.next
	it.elem.next = erased.next
	erased.next = nil
	l.n--

	return Iterator[T]{elem: it.elem.next, head: l.head}, nil
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	if l.head == nil {
		return
	}

	// Break the cycle link by link so no chain of nodes stays reachable
	// through a leaked element.
	e := l.head.next
	l.head.next = nil

	for e != nil {
		next := e.next
		e.next = nil
		e = next
	}

	l.head = nil
	l.n = 0
}

// Clone returns a deep copy of the list. The copy shares no nodes with the
// original; relative order and the cyclic structure are preserved.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.copyNodes(l)

	return c
}

// CopyFrom replaces the contents of the list with a deep copy of src.
// Copying a list from itself is a no-op.
func (l *List[T]) CopyFrom(src *List[T]) {
	if l == src {
		return
	}

	l.Clear()
	l.copyNodes(src)
}

func (l *List[T]) copyNodes(src *List[T]) {
	if src.head == nil {
		return
	}

	l.head = &element[T]{value: src.head.value}
	cur := l.head

	for e := src.head.next; e != src.head; e = e.next {
		cur.next = &element[T]{value: e.value}
		cur = cur.next
	}

	cur.next = l.head
	l.n = src.n
}

// Equal reports whether both lists hold the same values in the same cyclic
// order, starting from any offset. A list built as 1,2,3 equals one built as
// 2,3,1 but not one built as 1,3,2.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.n != other.n {
		return false
	}

	if l.head == nil || other.head == nil {
		return l.head == other.head
	}

	// Try every starting offset in other whose value matches our head, then
	// walk both cycles pointwise. Quadratic worst case, fine at this scale.
	oc := other.head

	for i := 0; i < l.n; i++ {
		if l.head.value == oc.value && l.matchFrom(oc) {
			return true
		}

		oc = oc.next
	}

	return false
}

func (l *List[T]) matchFrom(start *element[T]) bool {
	a, b := l.head.next, start.next

	for j := 1; j < l.n; j++ {
		if a.value != b.value {
			return false
		}

		a, b = a.next, b.next
	}

	return true
}

// Begin returns an iterator positioned at the first element. On an empty
// list the iterator is already exhausted, so Begin().Equal(End()) holds.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{elem: l.head, head: l.head, end: l.head == nil}
}

// End returns the iterator state reached after a full cycle from Begin.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{elem: l.head, head: l.head, end: true}
}

// ConstBegin returns a read-only iterator positioned at the first element.
func (l *List[T]) ConstBegin() ConstIterator[T] {
	return ConstIterator[T]{elem: l.head, head: l.head, end: l.head == nil}
}

// ConstEnd returns the read-only iterator state reached after a full cycle
// from ConstBegin.
func (l *List[T]) ConstEnd() ConstIterator[T] {
	return ConstIterator[T]{elem: l.head, head: l.head, end: true}
}

// All returns an iterator over the values of the list in traversal order,
// starting at the front and visiting each element once.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.head == nil {
			return
		}

		e := l.head

		for i := 0; i < l.n; i++ {
			if !yield(e.value) {
				return
			}

			e = e.next
		}
	}
}
