package handle

import (
	"sync/atomic"

	"github.com/hupe1980/arenakit"
)

// control is the single control block backing one family of Shared and
// Weak handles. Handles reference the block, never each other.
//
// The strong count governs the payload: it is destroyed exactly when
// strong reaches zero. The weak count governs the block itself: it is one
// per live Weak handle, plus one held collectively by the strong family
// while any Shared handle lives. The block becomes unreferenced when weak
// reaches zero.
//
// The block lives on the Go heap, not inside an arena: it carries Go
// pointers (payload, allocator, finalizer) that must stay visible to the
// garbage collector. Only the payload goes through the allocator.
type control[T any] struct {
	strong atomic.Int64
	weak   atomic.Int64

	ptr      *T
	alloc    arenakit.Allocator
	finalize func(*T)
}

func newControl[T any](a arenakit.Allocator, p *T, finalize func(*T)) *control[T] {
	c := &control[T]{ptr: p, alloc: a, finalize: finalize}
	c.strong.Store(1)
	c.weak.Store(1)
	return c
}

// releasePayload tears the payload down through the allocator. Called by
// exactly one goroutine: the one whose drop moved strong to zero.
func (c *control[T]) releasePayload() {
	p := c.ptr
	c.ptr = nil
	if c.finalize != nil {
		c.finalize(p)
	}
	arenakit.Free(c.alloc, p)
}

// dropWeak releases one weak reference. Once the count reaches zero
// nothing references the block and the garbage collector reclaims it.
func (c *control[T]) dropWeak() {
	c.weak.Add(-1)
}
