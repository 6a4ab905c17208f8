package handle

// Weak observes a Shared family's payload without keeping it alive.
// The zero Weak is expired.
//
// A Weak handle participates only in the control block's bookkeeping,
// never in the strong count that governs the payload. Dereference is only
// possible by upgrading with Lock.
type Weak[T any] struct {
	ctrl *control[T]
}

// Lock attempts to upgrade to an owning Shared handle.
//
// It succeeds iff the payload is still alive, in which case the returned
// handle keeps it alive and must be dropped like any other owner. There
// is no window in which Lock returns a handle to an already-destroyed
// object: the strong count is only ever raised from a nonzero value.
func (w Weak[T]) Lock() (Shared[T], bool) {
	c := w.ctrl
	if c == nil {
		return Shared[T]{}, false
	}
	for {
		n := c.strong.Load()
		if n == 0 {
			return Shared[T]{}, false
		}
		if c.strong.CompareAndSwap(n, n+1) {
			return Shared[T]{ctrl: c}, true
		}
	}
}

// Expired reports whether the observed payload has been destroyed.
// A false result is advisory: the last owner may drop immediately after.
// Use Lock to dereference.
func (w Weak[T]) Expired() bool {
	return w.ctrl == nil || w.ctrl.strong.Load() == 0
}

// Clone creates an additional observer of the same family.
func (w Weak[T]) Clone() Weak[T] {
	if w.ctrl == nil {
		return Weak[T]{}
	}
	w.ctrl.weak.Add(1)
	return Weak[T]{ctrl: w.ctrl}
}

// Drop ends this observation. The handle is expired afterwards; dropping
// an empty handle is a no-op.
func (w *Weak[T]) Drop() {
	c := w.ctrl
	if c == nil {
		return
	}
	w.ctrl = nil
	c.dropWeak()
}
