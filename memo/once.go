package memo

import "sync"

// Once wraps a zero-argument function so that it runs at most once
// successfully: the first call that returns without error caches its result
// forever, and every later call returns that result without re-invoking fn.
// A call that returns an error caches nothing, so the computation is
// attempted again next time — errors are never replayed.
//
// Unlike the caches, the returned function is safe for concurrent use
// without a guard; compute-once is inherently a synchronization primitive.
func Once[V any](fn func() (V, error)) func() (V, error) {
	var (
		mu     sync.Mutex
		done   bool
		result V
	)

	return func() (V, error) {
		mu.Lock()
		defer mu.Unlock()

		if done {
			return result, nil
		}

		value, err := fn()
		if err != nil {
			var zero V
			return zero, err
		}

		result = value
		done = true

		return result, nil
	}
}
