package arenakit

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
}

func TestNew_Zeroed(t *testing.T) {
	a := NewArena(NewStorage(256))

	// Dirty the buffer so zeroing is observable.
	b, err := a.Allocate(64)
	require.NoError(t, err)
	for i := range b {
		b[i] = 0xFF
	}
	a.Clear(false)

	p, err := New[point](a)
	require.NoError(t, err)
	assert.Equal(t, point{}, *p)
}

func TestNewValue(t *testing.T) {
	a := NewArena(NewStorage(256))

	p, err := NewValue(a, point{X: 3, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, point{X: 3, Y: 4}, *p)
	assert.Zero(t, uintptr(unsafe.Pointer(p))%DefaultAlignment)
}

func TestNew_CapacityError(t *testing.T) {
	a := NewArena(NewStorage(4))

	_, err := New[[64]byte](a)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestNew_ZeroSizeType(t *testing.T) {
	a := NewArena(NewStorage(64))

	p, err := New[struct{}](a)
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, 0, a.Used())
}

func TestMakeSlice(t *testing.T) {
	a := NewArena(NewStorage(1024))

	s, err := MakeSlice[int32](a, 100)
	require.NoError(t, err)
	require.Len(t, s, 100)
	for _, v := range s {
		require.Zero(t, v)
	}
	assert.Equal(t, 400, a.Used())

	empty, err := MakeSlice[int32](a, 0)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestGrowSlice_InPlace(t *testing.T) {
	a := NewArena(NewStorage(1024))

	s, err := MakeSlice[int32](a, 4)
	require.NoError(t, err)
	for i := range s {
		s[i] = int32(i + 1)
	}
	p := unsafe.SliceData(s)

	// The slice is the arena's most recent allocation, so growth extends
	// it in place.
	grown, err := GrowSlice(a, s, 8)
	require.NoError(t, err)
	assert.Same(t, p, unsafe.SliceData(grown))
	require.Len(t, grown, 8)
	for i := 0; i < 4; i++ {
		assert.Equal(t, int32(i+1), grown[i])
	}
	for i := 4; i < 8; i++ {
		assert.Zero(t, grown[i])
	}
}

func TestGrowSlice_Displaced(t *testing.T) {
	a := NewArena(NewStorage(1024))

	s, err := MakeSlice[int32](a, 4)
	require.NoError(t, err)
	for i := range s {
		s[i] = int32(i + 1)
	}

	// A later allocation displaces s from the last-allocation cache.
	_, err = a.Allocate(8)
	require.NoError(t, err)

	grown, err := GrowSlice(a, s, 8)
	require.NoError(t, err)
	assert.NotSame(t, unsafe.SliceData(s), unsafe.SliceData(grown))
	for i := 0; i < 4; i++ {
		assert.Equal(t, int32(i+1), grown[i])
	}
	for i := 4; i < 8; i++ {
		assert.Zero(t, grown[i], "displaced growth must zero new elements")
	}
}

func TestFree_NilIsNoop(t *testing.T) {
	a := NewArena(NewStorage(64))
	Free[point](a, nil)
	FreeSlice[point](a, nil)
}

func TestHelpers_HeapAllocator(t *testing.T) {
	h := NewHeapAllocator()

	p, err := NewValue(h, point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 2}, *p)

	s, err := MakeSlice[int32](h, 3)
	require.NoError(t, err)
	s[0], s[1], s[2] = 7, 8, 9

	grown, err := GrowSlice(h, s, 5)
	require.NoError(t, err)
	assert.Equal(t, []int32{7, 8, 9, 0, 0}, grown)

	Free(h, p)
	FreeSlice(h, grown)
}
