package memo

import "sync"

// GuardedCache serializes all access to a wrapped cache with a mutex so
// that concurrent callers observe linearizable behavior: calls on one
// instance happen one at a time, in some total order. The lock is held for
// the entire call, including the wrapped function's execution — a slow or
// blocking function blocks every other caller of the same cache. The guard
// makes no attempt at per-slot locking; it trades concurrency for
// simplicity.
//
// The lock is released on every exit path. A panic inside the wrapped
// function propagates to the caller with the lock already released, so a
// guarded cache cannot be wedged by a failing computation.
type GuardedCache[K comparable, V any] struct {
	mu    sync.Mutex
	inner Cache[K, V]
}

var _ Cache[int, int] = (*GuardedCache[int, int])(nil)

// NewGuarded wraps cache, bounded or unbounded, for use by concurrent
// callers. Different cache instances never contend with each other.
func NewGuarded[K comparable, V any](cache Cache[K, V]) *GuardedCache[K, V] {
	return &GuardedCache[K, V]{inner: cache}
}

// Call delegates to the wrapped cache under the lock.
func (g *GuardedCache[K, V]) Call(key K) (V, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inner.Call(key)
}

// Len reports the wrapped cache's entry count under the lock.
func (g *GuardedCache[K, V]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inner.Len()
}
