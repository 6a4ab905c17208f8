package collection

import (
	"testing"

	"github.com/hupe1980/arenakit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_LIFO(t *testing.T) {
	s := NewStack[int](arenakit.NewHeapAllocator())

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Push(i))
	}
	assert.Equal(t, 5, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 5, top)

	for i := 5; i >= 1; i-- {
		v, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok = s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue[string](arenakit.NewHeapAllocator())

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	require.NoError(t, q.Enqueue("c"))

	front, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, "a", front)

	for _, want := range []string{"a", "b", "c"} {
		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}

	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestAdapters_ArenaBacked(t *testing.T) {
	a := arenakit.NewArena(arenakit.NewStorage(1 << 10))

	s := NewStack[int32](a)
	q := NewQueue[int32](a)
	for i := int32(0); i < 16; i++ {
		require.NoError(t, s.Push(i))
		require.NoError(t, q.Enqueue(i))
	}

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(15), v)

	v, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, int32(0), v)

	// Dropping both containers is a single arena clear.
	a.Clear(false)
	assert.Equal(t, 0, a.Used())
}
