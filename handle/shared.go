package handle

import "github.com/hupe1980/arenakit"

// Shared is a reference-counted owning handle. The payload lives until
// the last Shared handle in its family drops. The zero Shared is empty.
//
// Additional owners are created with Clone; each owner must Drop exactly
// once. Plain struct assignment aliases the handle without touching the
// count and must be treated as a borrow.
type Shared[T any] struct {
	ctrl *control[T]
}

// NewShared allocates a T through a, initializes it to v and returns the
// first owning handle of a fresh family.
func NewShared[T any](a arenakit.Allocator, v T) (Shared[T], error) {
	return NewSharedFunc(a, v, nil)
}

// NewSharedFunc is NewShared with a finalizer that runs before the
// payload's memory is released.
func NewSharedFunc[T any](a arenakit.Allocator, v T, finalize func(*T)) (Shared[T], error) {
	p, err := arenakit.NewValue(a, v)
	if err != nil {
		return Shared[T]{}, err
	}
	return Shared[T]{ctrl: newControl(a, p, finalize)}, nil
}

// FromUnique converts a Unique handle into the first Shared handle of a
// fresh family. The existing allocation transfers as-is: no copy, no
// double free. u is left empty; converting an empty Unique yields an
// empty Shared.
func FromUnique[T any](u *Unique[T]) Shared[T] {
	if u.ptr == nil {
		return Shared[T]{}
	}
	s := Shared[T]{ctrl: newControl(u.alloc, u.ptr, u.finalize)}
	u.clear()
	return s
}

// Get returns the shared value, or nil if the handle is empty.
func (s Shared[T]) Get() *T {
	if s.ctrl == nil {
		return nil
	}
	return s.ctrl.ptr
}

// Empty reports whether the handle owns nothing.
func (s Shared[T]) Empty() bool { return s.ctrl == nil }

// Clone creates an additional owner of the same payload.
// Cloning an empty handle yields an empty handle.
func (s Shared[T]) Clone() Shared[T] {
	if s.ctrl == nil {
		return Shared[T]{}
	}
	s.ctrl.strong.Add(1)
	return Shared[T]{ctrl: s.ctrl}
}

// Drop releases this owner's reference. When the last owner drops, the
// payload is finalized and deallocated through the family's allocator.
// The handle is empty afterwards; dropping an empty handle is a no-op.
func (s *Shared[T]) Drop() {
	c := s.ctrl
	if c == nil {
		return
	}
	s.ctrl = nil
	if c.strong.Add(-1) == 0 {
		c.releasePayload()
		// Release the weak reference the strong family held collectively.
		c.dropWeak()
	}
}

// Downgrade returns a Weak handle observing this family's payload without
// extending its lifetime. Downgrading an empty handle yields an empty
// (expired) Weak.
func (s Shared[T]) Downgrade() Weak[T] {
	if s.ctrl == nil {
		return Weak[T]{}
	}
	s.ctrl.weak.Add(1)
	return Weak[T]{ctrl: s.ctrl}
}

// Equal reports whether two handles share the same underlying object.
// Identity, not value: two families holding equal payloads compare false.
func (s Shared[T]) Equal(o Shared[T]) bool { return s.ctrl == o.ctrl }

// StrongCount returns the current number of owners, for instrumentation.
// The value may be stale by the time it is observed.
func (s Shared[T]) StrongCount() int64 {
	if s.ctrl == nil {
		return 0
	}
	return s.ctrl.strong.Load()
}
