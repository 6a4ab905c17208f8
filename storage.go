package arenakit

// Backing provides the raw buffer behind arena Storage.
//
// FixedBacking is the only built-in implementation. The seam exists so a
// future backing store (mmap'd region, pooled block) can slot in without
// touching the allocator.
type Backing interface {
	// Buffer returns the backing buffer. Implementations must return the
	// same slice for the lifetime of the backing.
	Buffer() []byte

	// Wipe zero-fills the buffer.
	Wipe()
}

// FixedBacking is a fixed-capacity, heap-allocated backing buffer.
// Arenas over a FixedBacking never grow.
type FixedBacking struct {
	buf []byte
}

// NewFixedBacking allocates a backing buffer of exactly size bytes.
// It panics if size is not positive.
func NewFixedBacking(size int) *FixedBacking {
	if size <= 0 {
		panic("arenakit: backing size must be positive")
	}
	return &FixedBacking{buf: make([]byte, size)}
}

// Buffer implements Backing.
func (b *FixedBacking) Buffer() []byte { return b.buf }

// Wipe implements Backing.
func (b *FixedBacking) Wipe() { clear(b.buf) }

// Storage owns the buffer and the write cursor shared by every Arena view
// bound to it. Any number of views may alias one Storage, but exactly one
// logical cursor exists per Storage.
//
// Storage is not safe for concurrent use; see the package documentation.
type Storage struct {
	backing  Backing
	used     int
	lastOff  int // start of the most recent allocation, -1 if none
	lastSize int // size of the most recent allocation in bytes
}

// NewStorage creates a Storage over a fresh FixedBacking of size bytes.
func NewStorage(size int) *Storage {
	return NewStorageWith(NewFixedBacking(size))
}

// NewStorageWith creates a Storage over a caller-provided backing.
func NewStorageWith(b Backing) *Storage {
	return &Storage{backing: b, lastOff: -1}
}

// NewStorageFromBytes creates a Storage of the given capacity whose buffer
// is pre-populated with data and whose cursor is set past it, as if the
// data had been allocated in one batch. Used by snapshot restore.
func NewStorageFromBytes(data []byte, capacity int) (*Storage, error) {
	if len(data) > capacity {
		return nil, &CapacityError{Requested: len(data), Capacity: capacity}
	}
	s := NewStorage(capacity)
	copy(s.backing.Buffer(), data)
	s.used = len(data)
	return s, nil
}

// Buffer returns the full backing buffer. Callers must treat bytes past
// Used() as unallocated.
func (s *Storage) Buffer() []byte { return s.backing.Buffer() }

// Size returns the total capacity in bytes.
func (s *Storage) Size() int { return len(s.backing.Buffer()) }

// Used returns the current occupancy in bytes.
func (s *Storage) Used() int { return s.used }

// Clear drops every allocation in O(1) by resetting the cursor and the
// last-allocation cache. A hard clear additionally zero-fills the buffer
// (O(capacity)) so residual data cannot be observed on reuse.
func (s *Storage) Clear(hard bool) {
	s.used = 0
	s.invalidateLast()
	if hard {
		s.backing.Wipe()
	}
}

func (s *Storage) invalidateLast() {
	s.lastOff = -1
	s.lastSize = 0
}
