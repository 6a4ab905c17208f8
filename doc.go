// Package arenakit provides a bump-pointer (arena) allocator with
// checkpoint/restore, and an allocator capability contract that lets
// ownership handles and collections route all construction and
// destruction through a pluggable allocation strategy.
//
// # Quick Start
//
//	storage := arenakit.NewStorage(64 << 10)
//	arena := arenakit.NewArena(storage)
//
//	buf, _ := arena.Allocate(1024)       // raw bytes
//	p, _ := arenakit.New[Point](arena)   // typed, zeroed
//	s, _ := arenakit.MakeSlice[int32](arena, 100)
//
//	cp := arena.Save()
//	// ... scratch allocations ...
//	arena.Restore(cp) // release the whole batch in O(1)
//
//	arena.Clear(false) // drop everything, keep the buffer
//	arena.Clear(true)  // additionally wipe the buffer
//
// # Allocation Model
//
// An arena serves memory by advancing a single cursor through a
// fixed-capacity buffer. Individual allocations are never reclaimed;
// memory comes back only through Clear, Restore, or an implicit recycle.
// Deallocate is a no-op.
//
// A request larger than the arena's total capacity fails with
// ErrCapacityExceeded. A request that fits the capacity but not the
// remaining space silently recycles the arena: the cursor resets to zero
// and the request is satisfied from the start of the buffer. This is a
// deliberate trade: the arena never partially fails when the request
// itself is satisfiable. The cost is that every pointer previously issued
// from that arena becomes invalid. Callers must only keep the current
// batch's pointers alive, never persist pointers across an arena's
// generations.
//
// The arena remembers its most recent allocation, so Reallocate on that
// allocation grows or shrinks it in place in O(1). This is the realistic
// pattern for an append-only builder. Reallocating any other pointer pays
// a fresh allocation plus a copy.
//
// # Ownership and Collections
//
// The Allocator interface is the seam between allocation strategies and
// their consumers. The handle package provides unique, shared and weak
// ownership handles over it; the collection package provides
// allocator-parameterized containers. Both work identically over an Arena
// or a HeapAllocator.
//
// # Garbage Collector Visibility
//
// Arena buffers are plain byte slices: the garbage collector does not
// scan them for pointers. Do not store the only reference to a Go heap
// object inside arena memory. Pointer-free payloads are always safe.
//
// # Thread Safety
//
// A single Storage (and every Arena view over it) assumes one logical
// owner at a time: concurrent Allocate/Reallocate/Clear/Restore against
// the same Storage are undefined. Independent arenas may be used freely
// from different goroutines; the pool package hands out per-task arenas
// under a global budget. Shared-handle reference counting in the handle
// package is safe under concurrent use.
package arenakit
