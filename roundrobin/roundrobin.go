// Package roundrobin provides a concurrency safe round-robin picker backed by
// a circular list. Entries are handed out in cyclic order: after the last
// entry the picker wraps around to the first.
package roundrobin

import (
	"errors"
	"fmt"
	"sync"

	"go.expect.digital/container/ring"
)

var ErrNoEntries = errors.New("no entries")

// zeroValue returns the zero value of the type.
func zeroValue[T any]() (zero T) { //nolint:ireturn
	return
}

// Picker hands out entries in round-robin order. It is safe for concurrent
// use.
type Picker[T comparable] struct {
	entries *ring.List[T]
	cursor  ring.ConstIterator[T]
	mu      sync.Mutex
}

// New returns a picker over the given entries, cycled in the given order.
func New[T comparable](entries ...T) *Picker[T] {
	p := &Picker[T]{entries: ring.New[T]()}

	for i := len(entries) - 1; i >= 0; i-- {
		p.entries.PushFront(entries[i])
	}

	p.cursor = p.entries.ConstBegin()

	return p
}

// Len returns the number of entries.
func (p *Picker[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.entries.Len()
}

// Next returns the next entry in cyclic order.
func (p *Picker[T]) Next() (T, error) { //nolint:ireturn
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.entries.Empty() {
		return zeroValue[T](), fmt.Errorf("pick next entry: %w", ErrNoEntries)
	}

	// The cursor is exhausted after a full cycle; restart at the front.
	if p.cursor.AtEnd() {
		p.cursor = p.entries.ConstBegin()
	}

	v, err := p.cursor.Value()
	if err != nil {
		return zeroValue[T](), fmt.Errorf("pick next entry: %w", err)
	}

	if err := p.cursor.Next(); err != nil {
		return zeroValue[T](), fmt.Errorf("advance cursor: %w", err)
	}

	return v, nil
}

// Add inserts v at the front of the rotation. The cycle restarts at the
// front: iterators into the list do not survive mutation, so the cursor is
// rebound.
func (p *Picker[T]) Add(v T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries.PushFront(v)
	p.cursor = p.entries.ConstBegin()
}

// Remove removes the first occurrence of v from the rotation and reports
// whether an entry was removed. The cycle restarts at the front.
func (p *Picker[T]) Remove(v T) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	defer func() { p.cursor = p.entries.ConstBegin() }()

	front, err := p.entries.Front()
	if err != nil {
		return false
	}

	if front == v {
		_, err = p.entries.PopFront()

		return err == nil
	}

	prev := p.entries.Begin()

	for {
		it := prev
		if err := it.Next(); err != nil || it.AtEnd() {
			return false
		}

		val, err := it.Value()
		if err != nil {
			return false
		}

		if val == v {
			_, err = p.entries.EraseAfter(prev)

			return err == nil
		}

		prev = it
	}
}

// Entries returns a snapshot of the entries in cyclic order from the front.
func (p *Picker[T]) Entries() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.entries.Empty() {
		return nil
	}

	entries := make([]T, 0, p.entries.Len())

	for v := range p.entries.All() {
		entries = append(entries, v)
	}

	return entries
}
