package collection

import "github.com/hupe1980/arenakit"

const minListCapacity = 4

// List is a growable vector backed by an arenakit.Allocator.
type List[T any] struct {
	alloc arenakit.Allocator
	items []T // full-capacity backing allocation
	n     int
}

// NewList creates an empty list that allocates through a.
func NewList[T any](a arenakit.Allocator) *List[T] {
	return &List[T]{alloc: a}
}

// NewListCap creates a list with room for capacity elements before the
// first grow.
func NewListCap[T any](a arenakit.Allocator, capacity int) (*List[T], error) {
	items, err := arenakit.MakeSlice[T](a, capacity)
	if err != nil {
		return nil, err
	}
	return &List[T]{alloc: a, items: items}, nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.n }

// Cap returns the current capacity.
func (l *List[T]) Cap() int { return len(l.items) }

// Get returns the element at index i. It panics if i is out of range.
func (l *List[T]) Get(i int) T {
	l.check(i)
	return l.items[i]
}

// Set replaces the element at index i. It panics if i is out of range.
func (l *List[T]) Set(i int, v T) {
	l.check(i)
	l.items[i] = v
}

// Append adds v at the end, growing the backing allocation as needed.
func (l *List[T]) Append(v T) error {
	if l.n == len(l.items) {
		if err := l.grow(max(minListCapacity, 2*len(l.items))); err != nil {
			return err
		}
	}
	l.items[l.n] = v
	l.n++
	return nil
}

// Pop removes and returns the last element. The second result is false
// if the list is empty.
func (l *List[T]) Pop() (T, bool) {
	var zero T
	if l.n == 0 {
		return zero, false
	}
	l.n--
	v := l.items[l.n]
	l.items[l.n] = zero
	return v, true
}

// Truncate shortens the list to n elements. It panics if n is negative
// or beyond the current length. The backing allocation is kept.
func (l *List[T]) Truncate(n int) {
	if n < 0 || n > l.n {
		panic("collection: truncate out of range")
	}
	var zero T
	for i := n; i < l.n; i++ {
		l.items[i] = zero
	}
	l.n = n
}

// Slice returns a view of the live elements. The view is invalidated by
// the next Append that grows the list, and by any arena recycle.
func (l *List[T]) Slice() []T { return l.items[:l.n] }

// Free returns the backing allocation to the allocator and empties the
// list. For arena-backed lists this is a no-op at the allocator level.
func (l *List[T]) Free() {
	arenakit.FreeSlice(l.alloc, l.items)
	l.items = nil
	l.n = 0
}

func (l *List[T]) grow(capacity int) error {
	items, err := arenakit.GrowSlice(l.alloc, l.items, capacity)
	if err != nil {
		return err
	}
	l.items = items
	return nil
}

func (l *List[T]) check(i int) {
	if i < 0 || i >= l.n {
		panic("collection: index out of range")
	}
}
