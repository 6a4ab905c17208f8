package handle

import "github.com/hupe1980/arenakit"

// Unique exclusively owns at most one value allocated through an
// arenakit.Allocator. The zero Unique is empty.
//
// A Unique pairs the payload pointer with the allocator that must reclaim
// it, so Destroy releases the memory through the right strategy no matter
// where the handle travels. Ownership is exclusive: hand a Unique to a new
// owner with Move, never by copying the struct.
type Unique[T any] struct {
	ptr      *T
	alloc    arenakit.Allocator
	finalize func(*T)
}

// NewUnique allocates a T through a, initializes it to v and returns an
// owning handle.
func NewUnique[T any](a arenakit.Allocator, v T) (*Unique[T], error) {
	return NewUniqueFunc(a, v, nil)
}

// NewUniqueFunc is NewUnique with a finalizer that runs before the
// payload's memory is released.
func NewUniqueFunc[T any](a arenakit.Allocator, v T, finalize func(*T)) (*Unique[T], error) {
	p, err := arenakit.NewValue(a, v)
	if err != nil {
		return nil, err
	}
	return &Unique[T]{ptr: p, alloc: a, finalize: finalize}, nil
}

// Get returns the owned value, or nil if the handle is empty.
func (u *Unique[T]) Get() *T { return u.ptr }

// Empty reports whether the handle owns nothing.
func (u *Unique[T]) Empty() bool { return u.ptr == nil }

// Allocator returns the allocator that owns the payload's memory, or nil
// if the handle is empty.
func (u *Unique[T]) Allocator() arenakit.Allocator {
	if u.ptr == nil {
		return nil
	}
	return u.alloc
}

// Move transfers ownership to a fresh handle and leaves u empty.
// Moving an empty handle yields an empty handle.
func (u *Unique[T]) Move() *Unique[T] {
	m := &Unique[T]{ptr: u.ptr, alloc: u.alloc, finalize: u.finalize}
	u.clear()
	return m
}

// Release gives up ownership and returns the raw pointer. The caller
// becomes responsible for finalizing and deallocating the value.
func (u *Unique[T]) Release() *T {
	p := u.ptr
	u.clear()
	return p
}

// Destroy finalizes and deallocates the owned value through the handle's
// allocator, exactly once. Destroying an empty handle is a no-op, so
// deferred Destroy is safe on every exit path.
func (u *Unique[T]) Destroy() {
	if u.ptr == nil {
		return
	}
	p := u.ptr
	a := u.alloc
	fin := u.finalize
	u.clear()
	if fin != nil {
		fin(p)
	}
	arenakit.Free(a, p)
}

func (u *Unique[T]) clear() {
	u.ptr = nil
	u.alloc = nil
	u.finalize = nil
}
