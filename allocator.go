package arenakit

// Allocator is the capability contract every allocation strategy must
// satisfy to back the ownership handles and the collection types.
//
// Two allocators are equal when resources allocated by one may be validly
// deallocated by the other. Arena views over the same Storage are mutually
// equal; every HeapAllocator is equal to every other HeapAllocator.
//
// The element-wise construct/destroy half of the contract lives in the
// generic helpers (New, NewValue, MakeSlice, GrowSlice, Free, FreeSlice),
// which work against any Allocator.
type Allocator interface {
	// Allocate reserves size bytes. The contents are unspecified.
	// A size of zero returns (nil, nil).
	Allocate(size int) ([]byte, error)

	// Reallocate resizes an allocation, preserving the first
	// min(len(old), size) bytes. old may be nil.
	Reallocate(old []byte, size int) ([]byte, error)

	// Deallocate releases an allocation. Implementations may treat this
	// as a no-op.
	Deallocate(b []byte)

	// Equal reports whether other may deallocate this allocator's
	// allocations.
	Equal(other Allocator) bool
}

var (
	_ Allocator = (*Arena)(nil)
	_ Allocator = (*HeapAllocator)(nil)
)

// HeapAllocator satisfies the Allocator contract with the Go runtime heap.
// It is the default-allocator counterpart to an Arena: handles and
// collections parameterized over it behave like ordinary GC-managed Go
// values.
//
// HeapAllocator is stateless and safe for concurrent use.
type HeapAllocator struct{}

// NewHeapAllocator returns a heap-backed allocator.
func NewHeapAllocator() *HeapAllocator { return &HeapAllocator{} }

// Allocate implements Allocator. The returned bytes are zeroed, as all Go
// heap memory is.
func (*HeapAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 {
		panic("arenakit: negative allocation size")
	}
	if size == 0 {
		return nil, nil
	}
	return make([]byte, size), nil
}

// Reallocate implements Allocator.
func (h *HeapAllocator) Reallocate(old []byte, size int) ([]byte, error) {
	if size < 0 {
		panic("arenakit: negative allocation size")
	}
	if size == 0 {
		return nil, nil
	}
	fresh := make([]byte, size)
	copy(fresh, old)
	return fresh, nil
}

// Deallocate implements Allocator. The garbage collector reclaims the
// memory once unreferenced.
func (*HeapAllocator) Deallocate([]byte) {}

// Equal implements Allocator. All HeapAllocator instances hand out memory
// from the same heap, so any one may free another's allocations.
func (*HeapAllocator) Equal(other Allocator) bool {
	_, ok := other.(*HeapAllocator)
	return ok
}
