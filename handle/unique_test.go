package handle

import (
	"testing"

	"github.com/hupe1980/arenakit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resource struct {
	ID int
}

func TestUnique_Lifecycle(t *testing.T) {
	a := arenakit.NewArena(arenakit.NewStorage(256))

	finalized := 0
	u, err := NewUniqueFunc(a, resource{ID: 7}, func(r *resource) {
		finalized++
	})
	require.NoError(t, err)
	require.False(t, u.Empty())
	assert.Equal(t, 7, u.Get().ID)
	assert.Same(t, a, u.Allocator())

	u.Destroy()
	assert.True(t, u.Empty())
	assert.Nil(t, u.Get())
	assert.Equal(t, 1, finalized)

	// Destroy is exactly-once: further calls are no-ops.
	u.Destroy()
	assert.Equal(t, 1, finalized)
}

func TestUnique_DeferredDestroy(t *testing.T) {
	h := arenakit.NewHeapAllocator()

	finalized := 0
	func() {
		u, err := NewUniqueFunc(h, resource{ID: 1}, func(*resource) { finalized++ })
		require.NoError(t, err)
		defer u.Destroy()

		// Early exit path: the deferred Destroy still runs exactly once.
		if u.Get().ID == 1 {
			return
		}
		t.Fatal("unreachable")
	}()
	assert.Equal(t, 1, finalized)
}

func TestUnique_Move(t *testing.T) {
	h := arenakit.NewHeapAllocator()

	u, err := NewUnique(h, resource{ID: 3})
	require.NoError(t, err)
	p := u.Get()

	m := u.Move()
	assert.True(t, u.Empty(), "moved-from handle must be empty")
	assert.Nil(t, u.Allocator())
	assert.Same(t, p, m.Get())

	// Destroying the moved-from handle must not touch the payload.
	u.Destroy()
	assert.Equal(t, 3, m.Get().ID)
	m.Destroy()
}

func TestUnique_Release(t *testing.T) {
	h := arenakit.NewHeapAllocator()

	finalized := 0
	u, err := NewUniqueFunc(h, resource{ID: 5}, func(*resource) { finalized++ })
	require.NoError(t, err)

	p := u.Release()
	require.NotNil(t, p)
	assert.True(t, u.Empty())

	// Ownership left the handle: Destroy must not finalize.
	u.Destroy()
	assert.Equal(t, 0, finalized)
	assert.Equal(t, 5, p.ID)
}

func TestNewUnique_CapacityError(t *testing.T) {
	a := arenakit.NewArena(arenakit.NewStorage(4))

	_, err := NewUnique(a, [64]byte{})
	assert.ErrorIs(t, err, arenakit.ErrCapacityExceeded)
}
