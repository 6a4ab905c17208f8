package arenakit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	a := NewArena(NewStorage(64), WithMetrics(m))

	b, err := a.Allocate(16)
	require.NoError(t, err)
	_, err = a.Allocate(100)
	require.Error(t, err)

	assert.Equal(t, int64(2), m.AllocateCount.Load())
	assert.Equal(t, int64(1), m.AllocateErrors.Load())
	assert.Equal(t, int64(116), m.BytesRequested.Load())

	_, err = a.Reallocate(b, 32)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.ReallocateCount.Load())
	assert.Equal(t, int64(1), m.InPlaceCount.Load())

	a.Deallocate(b)
	assert.Equal(t, int64(1), m.DeallocateCount.Load())

	cp := a.Save()
	_, err = a.Allocate(8)
	require.NoError(t, err)
	a.Restore(cp)
	assert.Equal(t, int64(1), m.RestoreCount.Load())
	assert.Equal(t, int64(8), m.BytesRestored.Load())

	a.Clear(true)
	assert.Equal(t, int64(1), m.ClearCount.Load())
	assert.Equal(t, int64(1), m.HardClearCount.Load())
}

func TestMetrics_RecordRecycle(t *testing.T) {
	m := &BasicMetricsCollector{}
	a := NewArena(NewStorage(64), WithMetrics(m))

	_, err := a.Allocate(48)
	require.NoError(t, err)
	_, err = a.Allocate(32)
	require.NoError(t, err)

	assert.Equal(t, int64(1), m.RecycleCount.Load())
	assert.Equal(t, int64(48), m.BytesDropped.Load())
}
