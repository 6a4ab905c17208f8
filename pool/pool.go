// Package pool hands out per-task scratch arenas under a global budget.
//
// A Pool owns up to maxArenas fixed-size storages. Get blocks until one is
// free (or the context ends), Put clears it and returns it for reuse. The
// budget is enforced with a weighted semaphore, so the pool's total memory
// is bounded at arenaSize * maxArenas regardless of demand.
//
// Each checked-out arena follows the single-owner model: it belongs to
// the goroutine that got it until it is put back. The pool itself is safe
// for concurrent use.
package pool

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/arenakit"
	"golang.org/x/sync/semaphore"
)

// Pool is a bounded pool of equally sized arenas.
type Pool struct {
	arenaSize int
	sem       *semaphore.Weighted
	arenaOpts []arenakit.Option
	hardClear bool

	mu   sync.Mutex
	idle []*arenakit.Storage

	allocated atomic.Int64 // bytes of backing buffers created so far
}

// New creates a pool of up to maxArenas arenas of arenaSize bytes each.
// Storages are created lazily on first demand and retained for reuse.
//
// It panics if arenaSize or maxArenas is not positive.
func New(arenaSize, maxArenas int, opts ...Option) *Pool {
	if arenaSize <= 0 {
		panic("pool: arena size must be positive")
	}
	if maxArenas <= 0 {
		panic("pool: max arenas must be positive")
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Pool{
		arenaSize: arenaSize,
		sem:       semaphore.NewWeighted(int64(maxArenas)),
		arenaOpts: o.arenaOpts,
		hardClear: o.hardClear,
	}
}

// Get checks an arena out of the pool. It blocks until an arena is free
// or ctx is done, in which case it returns ctx's error.
func (p *Pool) Get(ctx context.Context) (*arenakit.Arena, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return arenakit.NewArena(p.takeStorage(), p.arenaOpts...), nil
}

// TryGet checks an arena out without blocking. The second result is
// false if the pool is exhausted.
func (p *Pool) TryGet() (*arenakit.Arena, bool) {
	if !p.sem.TryAcquire(1) {
		return nil, false
	}
	return arenakit.NewArena(p.takeStorage(), p.arenaOpts...), true
}

// Put clears a's storage and returns it to the pool. Putting nil is a
// no-op. The caller must not touch a, or any pointer issued from it,
// after Put.
func (p *Pool) Put(a *arenakit.Arena) {
	if a == nil {
		return
	}
	s := a.Storage()
	s.Clear(p.hardClear)

	p.mu.Lock()
	p.idle = append(p.idle, s)
	p.mu.Unlock()

	p.sem.Release(1)
}

// MemoryUsage returns the total bytes of backing buffers the pool has
// created, checked out or idle.
func (p *Pool) MemoryUsage() int64 {
	return p.allocated.Load()
}

func (p *Pool) takeStorage() *arenakit.Storage {
	p.mu.Lock()
	if n := len(p.idle); n > 0 {
		s := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.mu.Unlock()
		return s
	}
	p.mu.Unlock()

	p.allocated.Add(int64(p.arenaSize))
	return arenakit.NewStorage(p.arenaSize)
}
