package arenakit

import (
	"unsafe"
)

// DefaultAlignment is the byte alignment applied to allocations when no
// WithAlignment option is given. It matches the pointer size on 64-bit
// platforms.
const DefaultAlignment = 8

// Checkpoint is an opaque snapshot of an arena's cursor position.
// See Arena.Save and Arena.Restore.
type Checkpoint int

// Arena is a bump allocator view over exactly one Storage.
//
// An Arena does not own its Storage: many views may share one Storage and
// allocate through the same cursor. Two views are interchangeable for
// deallocation purposes iff they share a Storage; Equal reports exactly that.
//
// Arena implements Allocator.
type Arena struct {
	storage *Storage
	align   uintptr
	logger  *Logger
	metrics MetricsCollector
}

// NewArena creates an allocator view over s.
//
// It panics if s is nil or if a configured alignment is not a power of two;
// both are programming errors, not runtime conditions.
func NewArena(s *Storage, opts ...Option) *Arena {
	if s == nil {
		panic("arenakit: nil storage")
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	align := uintptr(o.alignment)
	if align == 0 || align&(align-1) != 0 {
		panic("arenakit: alignment must be a power of two")
	}
	return &Arena{
		storage: s,
		align:   align,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Storage returns the Storage this view is bound to.
func (a *Arena) Storage() *Storage { return a.storage }

// Alignment returns the byte alignment applied to this view's allocations.
func (a *Arena) Alignment() int { return int(a.align) }

// Total returns the arena's capacity in bytes.
func (a *Arena) Total() int { return a.storage.Size() }

// Used returns the arena's current occupancy in bytes.
func (a *Arena) Used() int { return a.storage.Used() }

// Allocate reserves size bytes and returns them as a full-capacity slice.
//
// The returned bytes are uninitialized unless the arena was hard-cleared.
// A size of zero returns (nil, nil). If size alone exceeds the arena's
// capacity, Allocate returns a *CapacityError. If size fits the capacity
// but not the remaining space, the arena silently recycles: it clears
// itself and satisfies the request from the start of the buffer. Every
// pointer previously issued from this storage is invalid after a recycle.
// A request that would not fit even from an empty arena, because
// alignment padding against a misaligned backing base consumes the
// difference, returns a *CapacityError without recycling.
func (a *Arena) Allocate(size int) ([]byte, error) {
	b, err := a.allocate(size)
	a.metrics.RecordAllocate(size, err)
	return b, err
}

func (a *Arena) allocate(size int) ([]byte, error) {
	if size < 0 {
		panic("arenakit: negative allocation size")
	}
	if size == 0 {
		return nil, nil
	}
	s := a.storage
	buf := s.backing.Buffer()
	if size > len(buf) {
		return nil, &CapacityError{Requested: size, Capacity: len(buf)}
	}
	off := a.alignedOffset(buf)
	if off+size > len(buf) {
		// The request fits the capacity but not the remaining space:
		// recycle the whole arena and retry from offset zero. A
		// misaligned backing base leaves alignment padding even there;
		// fail before dropping anything when the retry cannot fit.
		start := a.alignedOffsetAt(buf, 0)
		if start+size > len(buf) {
			return nil, &CapacityError{Requested: size, Capacity: len(buf)}
		}
		a.logger.logRecycle(s.used, size)
		a.metrics.RecordRecycle(s.used)
		s.Clear(false)
		off = start
	}
	s.lastOff = off
	s.lastSize = size
	s.used = off + size
	return buf[off : off+size : off+size], nil
}

// Reallocate resizes an allocation to size bytes.
//
// If old is the arena's most recent allocation, the resize happens in
// place: shrinking hands the trailing bytes back to the cursor, growing
// extends the cursor when room remains (the extension is zero-filled).
// Any other old pointer, or an in-place grow that does not fit, pays a
// fresh Allocate plus a copy of min(len(old), size) bytes. The copy is
// safe for overlapping regions.
//
// Reallocate(nil, size) behaves like Allocate(size); a size of zero
// releases an in-place old allocation and returns (nil, nil).
func (a *Arena) Reallocate(old []byte, size int) ([]byte, error) {
	b, inPlace, err := a.reallocate(old, size)
	a.metrics.RecordReallocate(size, inPlace, err)
	return b, err
}

func (a *Arena) reallocate(old []byte, size int) ([]byte, bool, error) {
	if size < 0 {
		panic("arenakit: negative allocation size")
	}
	s := a.storage
	buf := s.backing.Buffer()
	if size > len(buf) {
		return nil, false, &CapacityError{Requested: size, Capacity: len(buf)}
	}
	if len(old) > 0 && a.isLastAllocation(old) {
		switch {
		case size == s.lastSize:
			return old[:size:size], true, nil
		case size < s.lastSize:
			s.used -= s.lastSize - size
			s.lastSize = size
			if size == 0 {
				s.invalidateLast()
				return nil, true, nil
			}
			return old[:size:size], true, nil
		case s.used+(size-s.lastSize) <= len(buf):
			diff := size - s.lastSize
			clear(buf[s.used : s.used+diff])
			s.used += diff
			s.lastSize = size
			return buf[s.lastOff : s.lastOff+size : s.lastOff+size], true, nil
		}
		// No room to extend in place; fall through to allocate-and-copy.
	}
	fresh, err := a.allocate(size)
	if err != nil {
		return nil, false, err
	}
	if len(old) > 0 && len(fresh) > 0 {
		// copy is memmove under the hood, so a recycle that made the
		// regions overlap is fine.
		copy(fresh, old[:min(len(old), size)])
	}
	return fresh, false, nil
}

// Deallocate is a no-op: an arena cannot reclaim interior holes. Memory
// comes back only through Clear, Restore, or an implicit recycle.
func (a *Arena) Deallocate(b []byte) {
	a.metrics.RecordDeallocate(len(b))
}

// Clear drops every allocation in this arena's storage. See Storage.Clear
// for the hard flag.
func (a *Arena) Clear(hard bool) {
	a.logger.logClear(hard)
	a.metrics.RecordClear(hard)
	a.storage.Clear(hard)
}

// Save returns a checkpoint of the current cursor position. A later
// Restore rewinds to it, releasing every allocation made in between
// without tracking individual pointers.
func (a *Arena) Save() Checkpoint {
	return Checkpoint(a.storage.used)
}

// Restore rewinds the cursor to cp in O(1) and invalidates the
// last-allocation cache. Restoring to a position at or beyond the current
// cursor is a no-op: restore only ever shrinks usage.
func (a *Arena) Restore(cp Checkpoint) {
	s := a.storage
	if int(cp) < 0 || int(cp) >= s.used {
		return
	}
	freed := s.used - int(cp)
	s.used = int(cp)
	s.invalidateLast()
	a.metrics.RecordRestore(freed)
}

// Equal reports whether resources allocated through a may be deallocated
// through other. True iff other is an Arena view over the same Storage.
func (a *Arena) Equal(other Allocator) bool {
	o, ok := other.(*Arena)
	return ok && o.storage == a.storage
}

// alignedOffset aligns the cursor's absolute address up to the arena's
// alignment, so issued pointers are aligned even when the backing buffer
// base is not a multiple of it.
func (a *Arena) alignedOffset(buf []byte) int {
	return a.alignedOffsetAt(buf, a.storage.used)
}

func (a *Arena) alignedOffsetAt(buf []byte, used int) int {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	addr := base + uintptr(used)
	mask := a.align - 1
	return int(((addr + mask) &^ mask) - base)
}

// isLastAllocation reports whether b starts at the cached most recent
// allocation.
func (a *Arena) isLastAllocation(b []byte) bool {
	s := a.storage
	if s.lastOff < 0 {
		return false
	}
	buf := s.backing.Buffer()
	return unsafe.SliceData(b) == unsafe.SliceData(buf[s.lastOff:])
}
