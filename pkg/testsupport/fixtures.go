// Package testsupport provides shared helpers for exercising memoization
// behavior in tests: call-counting function wrappers and hashers with
// predictable slot routing.
package testsupport

import (
	"sync"
	"time"
)

// CountingFunc wraps a function and records how many times its body
// actually runs, per key and in total. Tests use it to distinguish cache
// hits from recomputations. The counters are safe for concurrent use so
// guarded caches can be exercised from multiple goroutines.
type CountingFunc[K comparable, V any] struct {
	mu    sync.Mutex
	fn    func(K) (V, error)
	calls map[K]int
	total int
}

// NewCountingFunc wraps fn with invocation counting.
func NewCountingFunc[K comparable, V any](fn func(K) (V, error)) *CountingFunc[K, V] {
	return &CountingFunc[K, V]{
		fn:    fn,
		calls: make(map[K]int),
	}
}

// Func returns the counted function, suitable for passing to a cache
// constructor.
func (c *CountingFunc[K, V]) Func() func(K) (V, error) {
	return func(key K) (V, error) {
		c.mu.Lock()
		c.calls[key]++
		c.total++
		c.mu.Unlock()

		return c.fn(key)
	}
}

// Total reports how many times the wrapped function ran, across all keys.
func (c *CountingFunc[K, V]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.total
}

// Calls reports how many times the wrapped function ran for one key.
func (c *CountingFunc[K, V]) Calls(key K) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls[key]
}

// SlowFunc returns a function that sleeps for delay before delegating to
// fn. Useful for widening race windows in concurrency tests.
func SlowFunc[K comparable, V any](fn func(K) (V, error), delay time.Duration) func(K) (V, error) {
	return func(key K) (V, error) {
		time.Sleep(delay)
		return fn(key)
	}
}

// ConstHasher maps every key to the same hash sum, forcing all keys into a
// single slot pair.
func ConstHasher[K comparable](sum uint64) func(K) uint64 {
	return func(K) uint64 {
		return sum
	}
}
