package collection

import (
	"unsafe"

	"github.com/hupe1980/arenakit"
)

const minBuilderCapacity = 16

// Builder accumulates bytes in allocator-backed storage, in the manner of
// strings.Builder. Arena-backed builders that stay the arena's most
// recent allocation grow in place.
type Builder struct {
	alloc arenakit.Allocator
	buf   []byte // full-capacity backing allocation
	n     int
}

// NewBuilder creates an empty builder that allocates through a.
func NewBuilder(a arenakit.Allocator) *Builder {
	return &Builder{alloc: a}
}

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int { return b.n }

// Cap returns the capacity of the backing allocation.
func (b *Builder) Cap() int { return len(b.buf) }

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	if err := b.ensure(len(p)); err != nil {
		return 0, err
	}
	copy(b.buf[b.n:], p)
	b.n += len(p)
	return len(p), nil
}

// WriteString appends s.
func (b *Builder) WriteString(s string) (int, error) {
	if err := b.ensure(len(s)); err != nil {
		return 0, err
	}
	copy(b.buf[b.n:], s)
	b.n += len(s)
	return len(s), nil
}

// WriteByte implements io.ByteWriter.
func (b *Builder) WriteByte(c byte) error {
	if err := b.ensure(1); err != nil {
		return err
	}
	b.buf[b.n] = c
	b.n++
	return nil
}

// Bytes returns a view of the accumulated bytes. The view is invalidated
// by the next write that grows the builder, and by any arena recycle.
func (b *Builder) Bytes() []byte { return b.buf[:b.n] }

// String returns the accumulated bytes as a string without copying.
// The string aliases allocator memory: for arena-backed builders it is
// only valid until the arena is cleared, restored past it, or recycled.
// Copy with string(b.Bytes()) when the result must outlive the arena.
func (b *Builder) String() string {
	if b.n == 0 {
		return ""
	}
	return unsafe.String(&b.buf[0], b.n)
}

// Reset empties the builder, keeping the backing allocation.
func (b *Builder) Reset() { b.n = 0 }

// Free returns the backing allocation to the allocator and empties the
// builder.
func (b *Builder) Free() {
	b.alloc.Deallocate(b.buf)
	b.buf = nil
	b.n = 0
}

func (b *Builder) ensure(n int) error {
	if b.n+n <= len(b.buf) {
		return nil
	}
	capacity := max(minBuilderCapacity, 2*len(b.buf))
	for capacity < b.n+n {
		capacity *= 2
	}
	buf, err := b.alloc.Reallocate(b.buf, capacity)
	if err != nil {
		return err
	}
	b.buf = buf
	return nil
}
