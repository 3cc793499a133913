package ring

import "fmt"

// Iterator is a forward iterator over a List. It does not own the element it
// references; it is a view of (current element, the list head captured when
// the iterator was created, an end flag).
//
// The end of a traversal is detected by identity, not by a sentinel node:
// advancing onto the captured head sets the end flag, meaning one full cycle
// has been completed. Structurally mutating the list invalidates iterators
// other than the ones returned by InsertAfter and EraseAfter; using a stale
// iterator is not detected.
type Iterator[T comparable] struct {
	elem *element[T]
	head *element[T]
	end  bool
}

// Value returns the value of the element the iterator references.
func (it Iterator[T]) Value() (T, error) { //nolint:ireturn
	if it.elem == nil || it.end {
		return zeroValue[T](), fmt.Errorf("iterator value: %w", ErrInvalidIterator)
	}

	return it.elem.value, nil
}

// Set replaces the value of the element the iterator references.
func (it Iterator[T]) Set(v T) error {
	if it.elem == nil || it.end {
		return fmt.Errorf("iterator set: %w", ErrInvalidIterator)
	}

	it.elem.value = v

	return nil
}

// Next advances the iterator to the next element. Arriving back at the head
// the traversal started from marks the iterator as exhausted.
func (it *Iterator[T]) Next() error {
	if it.elem == nil || it.end {
		return fmt.Errorf("iterator next: %w", ErrInvalidIterator)
	}

	it.elem = it.elem.next
	if it.elem == it.head {
		it.end = true
	}

	return nil
}

// AtEnd reports whether the iterator has completed a full cycle.
func (it Iterator[T]) AtEnd() bool { return it.end }

// Equal reports whether both iterators reference the same element with the
// same end state. Two exhausted iterators are equal regardless of the element
// they last referenced.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if it.end || other.end {
		return it.end == other.end
	}

	return it.elem == other.elem
}

// ConstIterator is the read-only counterpart of Iterator. It carries the same
// (element, captured head, end flag) state and the same end detection, but
// provides no way to modify the referenced element.
type ConstIterator[T comparable] struct {
	elem *element[T]
	head *element[T]
	end  bool
}

// Value returns the value of the element the iterator references.
func (it ConstIterator[T]) Value() (T, error) { //nolint:ireturn
	if it.elem == nil || it.end {
		return zeroValue[T](), fmt.Errorf("iterator value: %w", ErrInvalidIterator)
	}

	return it.elem.value, nil
}

// Next advances the iterator to the next element. Arriving back at the head
// the traversal started from marks the iterator as exhausted.
func (it *ConstIterator[T]) Next() error {
	if it.elem == nil || it.end {
		return fmt.Errorf("iterator next: %w", ErrInvalidIterator)
	}

	it.elem = it.elem.next
	if it.elem == it.head {
		it.end = true
	}

	return nil
}

// AtEnd reports whether the iterator has completed a full cycle.
func (it ConstIterator[T]) AtEnd() bool { return it.end }

// Equal reports whether both iterators reference the same element with the
// same end state.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	if it.end || other.end {
		return it.end == other.end
	}

	return it.elem == other.elem
}
