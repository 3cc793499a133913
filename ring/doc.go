/*
Package ring implements a circular singly linked list.

The list behaves like a forward list whose last element links back to the
first. Traversal starts at the front and ends when it arrives back at the
element it started from, not at a nil terminator. The list is not safe for
concurrent use.

# Example Usage

## Basic

The following example shows the basic operations of the list.

	func basicExample() {
		l := ring.New[int]()

		l.PushFront(3)
		l.PushFront(2)
		l.PushFront(1)

		// Front always holds the most recently pushed value.
		front, err := l.Front()
		if err != nil {
			// Handle error.
		}

		fmt.Println(front) // 1

		// Traverse the full cycle once.
		for v := range l.All() {
			fmt.Println(v) // 1, 2, 3
		}

		v, err := l.PopFront()
		if err != nil {
			// Handle error.
		}

		fmt.Println(v, l.Len()) // 1 2

		l.Clear()

		// Front and PopFront on an empty list fail with ring.ErrEmpty.
		_, err = l.Front() // errors.Is(err, ring.ErrEmpty) == true
	}

## Iterators

Explicit iterators support insertion and removal after a position. The end of
a traversal is a flagged state reached after one full cycle, not a sentinel
element.

	func iteratorExample() {
		l := ring.New[string]()

		l.PushFront("c")
		l.PushFront("a")

		it := l.Begin()

		// Insert "b" after "a": the list is now a, b, c.
		if _, err := l.InsertAfter(it, "b"); err != nil {
			// Handle error.
		}

		// Remove "b" again.
		if _, err := l.EraseAfter(it); err != nil {
			// Handle error.
		}

		// Walk the cycle by hand.
		for it := l.Begin(); !it.AtEnd(); {
			v, err := it.Value()
			if err != nil {
				// Handle error.
			}

			fmt.Println(v) // a, c

			if err := it.Next(); err != nil {
				// Handle error.
			}
		}

		// Removing the head through EraseAfter is not supported; the element
		// after the last one is the head, so this fails. Use PopFront instead.
		last := l.Begin()
		_ = last.Next() // now at "c", the element before the head

		_, err := l.EraseAfter(last) // errors.Is(err, ring.ErrInvalidIterator) == true
		_ = err
	}

## Rotation equality

Two lists are equal when their values match in cyclic order from some
starting offset.

	func equalityExample() {
		a := ring.New[int]() // 1, 2, 3
		a.PushFront(3)
		a.PushFront(2)
		a.PushFront(1)

		b := ring.New[int]() // 2, 3, 1
		b.PushFront(1)
		b.PushFront(3)
		b.PushFront(2)

		fmt.Println(a.Equal(b)) // true, b is a rotation of a

		c := a.Clone()

		fmt.Println(a.Equal(c)) // true, deep copy

		c.PushFront(0)

		fmt.Println(a.Equal(c)) // false, a is unchanged
	}
*/
package ring
