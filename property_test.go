package arenakit

import (
	"testing"
	"unsafe"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property-based tests for allocator invariants. These properties should
// ALWAYS hold for any sequence of requests.
func TestArenaInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	const capacity = 256

	// Property 1: occupancy never exceeds capacity and every issued
	// pointer is aligned, for any request sequence.
	properties.Property("usage bounded and pointers aligned", prop.ForAll(
		func(sizes []int) bool {
			a := NewArena(NewStorage(capacity))
			for _, size := range sizes {
				b, err := a.Allocate(size)
				if err != nil {
					// Only over-capacity requests may fail.
					if size <= capacity {
						return false
					}
					continue
				}
				if a.Used() > a.Total() {
					return false
				}
				if len(b) > 0 && uintptr(unsafe.Pointer(unsafe.SliceData(b)))%DefaultAlignment != 0 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, capacity+64)),
	))

	// Property 2: an over-capacity request fails regardless of occupancy.
	properties.Property("over-capacity requests always fail", prop.ForAll(
		func(sizes []int, over int) bool {
			a := NewArena(NewStorage(capacity))
			for _, size := range sizes {
				_, _ = a.Allocate(size)
			}
			_, err := a.Allocate(capacity + over)
			return err != nil
		},
		gen.SliceOf(gen.IntRange(0, capacity)),
		gen.IntRange(1, 1024),
	))

	// Property 3: restore returns occupancy to the checkpoint exactly,
	// for any batch allocated after the save.
	properties.Property("restore rewinds to the checkpoint", prop.ForAll(
		func(before, after []int) bool {
			a := NewArena(NewStorage(capacity))
			for _, size := range before {
				_, _ = a.Allocate(size)
			}
			cp := a.Save()
			for _, size := range after {
				_, _ = a.Allocate(size)
			}
			a.Restore(cp)
			return a.Used() == int(cp) || a.Used() < int(cp)
		},
		gen.SliceOf(gen.IntRange(0, 64)),
		gen.SliceOf(gen.IntRange(0, 64)),
	))

	// Property 4: resizing the most recent allocation in place preserves
	// its contents up to the smaller size.
	properties.Property("in-place resize preserves prefix", prop.ForAll(
		func(initial, resized int) bool {
			a := NewArena(NewStorage(capacity))
			b, err := a.Allocate(initial)
			if err != nil {
				return false
			}
			for i := range b {
				b[i] = byte(i)
			}
			r, err := a.Reallocate(b, resized)
			if err != nil {
				return false
			}
			n := min(initial, resized)
			for i := 0; i < n; i++ {
				if r[i] != byte(i) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, capacity/2),
		gen.IntRange(1, capacity/2),
	))

	properties.TestingRun(t)
}
