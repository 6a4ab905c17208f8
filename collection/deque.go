package collection

import "github.com/hupe1980/arenakit"

const minDequeCapacity = 8

// Deque is a double-ended queue over a ring of allocator-backed storage.
type Deque[T any] struct {
	alloc arenakit.Allocator
	buf   []T
	head  int
	n     int
}

// NewDeque creates an empty deque that allocates through a.
func NewDeque[T any](a arenakit.Allocator) *Deque[T] {
	return &Deque[T]{alloc: a}
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.n }

// PushBack appends v at the tail.
func (d *Deque[T]) PushBack(v T) error {
	if err := d.ensure(); err != nil {
		return err
	}
	d.buf[(d.head+d.n)%len(d.buf)] = v
	d.n++
	return nil
}

// PushFront prepends v at the head.
func (d *Deque[T]) PushFront(v T) error {
	if err := d.ensure(); err != nil {
		return err
	}
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.n++
	return nil
}

// PopFront removes and returns the head element. The second result is
// false if the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.n--
	return v, true
}

// PopBack removes and returns the tail element. The second result is
// false if the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	i := (d.head + d.n - 1) % len(d.buf)
	v := d.buf[i]
	d.buf[i] = zero
	d.n--
	return v, true
}

// Front returns the head element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the tail element without removing it.
func (d *Deque[T]) Back() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	return d.buf[(d.head+d.n-1)%len(d.buf)], true
}

// Free returns the backing allocation to the allocator and empties the
// deque.
func (d *Deque[T]) Free() {
	arenakit.FreeSlice(d.alloc, d.buf)
	d.buf = nil
	d.head = 0
	d.n = 0
}

// ensure makes room for one more element. Growth allocates a fresh ring
// and unwraps the elements into it, so the old ring is abandoned to the
// allocator.
func (d *Deque[T]) ensure() error {
	if d.n < len(d.buf) {
		return nil
	}
	capacity := max(minDequeCapacity, 2*len(d.buf))
	fresh, err := arenakit.MakeSlice[T](d.alloc, capacity)
	if err != nil {
		return err
	}
	for i := 0; i < d.n; i++ {
		fresh[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	arenakit.FreeSlice(d.alloc, d.buf)
	d.buf = fresh
	d.head = 0
	return nil
}
