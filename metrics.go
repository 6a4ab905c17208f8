package arenakit

import "sync/atomic"

// MetricsCollector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Collectors attached to a single-owner arena are called from that owner
// only; a collector shared across arenas must be safe for concurrent use
// (BasicMetricsCollector is).
type MetricsCollector interface {
	// RecordAllocate is called after each Allocate.
	// size is the requested size, err is nil if successful.
	RecordAllocate(size int, err error)

	// RecordReallocate is called after each Reallocate.
	// inPlace reports whether the resize reused the last allocation.
	RecordReallocate(size int, inPlace bool, err error)

	// RecordDeallocate is called for each Deallocate.
	RecordDeallocate(size int)

	// RecordRecycle is called when an arena implicitly clears itself to
	// satisfy a request that no longer fits the remaining space.
	// dropped is the number of bytes that were live before the recycle.
	RecordRecycle(dropped int)

	// RecordClear is called on each explicit Clear.
	RecordClear(hard bool)

	// RecordRestore is called on each effective Restore.
	// freed is the number of bytes released by the rewind.
	RecordRestore(freed int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int, error)         {}
func (NoopMetricsCollector) RecordReallocate(int, bool, error) {}
func (NoopMetricsCollector) RecordDeallocate(int)              {}
func (NoopMetricsCollector) RecordRecycle(int)                 {}
func (NoopMetricsCollector) RecordClear(bool)                  {}
func (NoopMetricsCollector) RecordRestore(int)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocateCount    atomic.Int64
	AllocateErrors   atomic.Int64
	BytesRequested   atomic.Int64
	ReallocateCount  atomic.Int64
	ReallocateErrors atomic.Int64
	InPlaceCount     atomic.Int64
	DeallocateCount  atomic.Int64
	RecycleCount     atomic.Int64
	BytesDropped     atomic.Int64
	ClearCount       atomic.Int64
	HardClearCount   atomic.Int64
	RestoreCount     atomic.Int64
	BytesRestored    atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(size int, err error) {
	b.AllocateCount.Add(1)
	b.BytesRequested.Add(int64(size))
	if err != nil {
		b.AllocateErrors.Add(1)
	}
}

// RecordReallocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReallocate(size int, inPlace bool, err error) {
	b.ReallocateCount.Add(1)
	b.BytesRequested.Add(int64(size))
	if inPlace {
		b.InPlaceCount.Add(1)
	}
	if err != nil {
		b.ReallocateErrors.Add(1)
	}
}

// RecordDeallocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDeallocate(int) {
	b.DeallocateCount.Add(1)
}

// RecordRecycle implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRecycle(dropped int) {
	b.RecycleCount.Add(1)
	b.BytesDropped.Add(int64(dropped))
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(hard bool) {
	b.ClearCount.Add(1)
	if hard {
		b.HardClearCount.Add(1)
	}
}

// RecordRestore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRestore(freed int) {
	b.RestoreCount.Add(1)
	b.BytesRestored.Add(int64(freed))
}
