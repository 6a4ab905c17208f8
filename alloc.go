package arenakit

import "unsafe"

// Typed construct/destroy helpers over the Allocator contract.
//
// Allocator memory is a plain byte buffer: the garbage collector does not
// scan it for pointers. Values placed through these helpers must not hold
// the only reference to a Go heap object, or that object may be collected
// while the buffer still points at it. Pointer-free payloads (ints,
// floats, fixed-size arrays, structs thereof) are always safe.

// New allocates a zeroed T through a and returns a pointer to it.
func New[T any](a Allocator) (*T, error) {
	size := int(unsafe.Sizeof(*new(T)))
	if size == 0 {
		return new(T), nil
	}
	b, err := a.Allocate(size)
	if err != nil {
		return nil, err
	}
	clear(b)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// NewValue allocates a T through a and initializes it to v.
func NewValue[T any](a Allocator, v T) (*T, error) {
	p, err := New[T](a)
	if err != nil {
		return nil, err
	}
	*p = v
	return p, nil
}

// Free releases a value previously obtained from New or NewValue through
// the same (or an Equal) allocator. Freeing nil is a no-op.
func Free[T any](a Allocator, p *T) {
	if p == nil {
		return
	}
	size := int(unsafe.Sizeof(*p))
	if size == 0 {
		return
	}
	a.Deallocate(unsafe.Slice((*byte)(unsafe.Pointer(p)), size))
}

// MakeSlice allocates a zeroed slice of n elements of T through a.
// n == 0 returns (nil, nil).
func MakeSlice[T any](a Allocator, n int) ([]T, error) {
	if n < 0 {
		panic("arenakit: negative slice length")
	}
	if n == 0 {
		return nil, nil
	}
	elem := int(unsafe.Sizeof(*new(T)))
	if elem == 0 {
		return make([]T, n), nil
	}
	b, err := a.Allocate(elem * n)
	if err != nil {
		return nil, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// GrowSlice resizes a slice previously obtained from MakeSlice or
// GrowSlice to n elements, routing through Reallocate so that resizing an
// arena's most recent allocation is O(1). Elements beyond the old length
// are zeroed; shrinking preserves a prefix view of the same memory when
// the allocator supports it.
func GrowSlice[T any](a Allocator, old []T, n int) ([]T, error) {
	if n < 0 {
		panic("arenakit: negative slice length")
	}
	elem := int(unsafe.Sizeof(*new(T)))
	if elem == 0 {
		return make([]T, n), nil
	}
	var oldBytes []byte
	if len(old) > 0 {
		oldBytes = unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(old))), elem*len(old))
	}
	b, err := a.Reallocate(oldBytes, elem*n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if len(b) > len(oldBytes) {
		clear(b[len(oldBytes):])
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// FreeSlice releases a slice previously obtained from MakeSlice or
// GrowSlice. Freeing an empty slice is a no-op.
func FreeSlice[T any](a Allocator, s []T) {
	if len(s) == 0 {
		return
	}
	elem := int(unsafe.Sizeof(s[0]))
	if elem == 0 {
		return
	}
	a.Deallocate(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), elem*len(s)))
}
