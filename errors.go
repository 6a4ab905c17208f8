package arenakit

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when a single request is larger than
	// an arena's total capacity. The condition is unrecoverable for that
	// arena: the caller must use a larger arena or a different allocator.
	ErrCapacityExceeded = errors.New("requested size exceeds arena capacity")
)

// CapacityError reports an allocation request that exceeds an arena's
// total capacity.
//
// It matches ErrCapacityExceeded via errors.Is.
type CapacityError struct {
	Requested int
	Capacity  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: requested %d bytes, arena capacity %d", e.Requested, e.Capacity)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }
