// Package memo provides function-result memoization with three caching
// strategies and the key machinery they share.
//
// # Overview
//
// A memoized function caches its results keyed by its arguments, so
// repeated calls with equal arguments return the stored result instead of
// recomputing. The package offers:
//
//   - UnboundedCache: a map-backed cache that grows with the number of
//     distinct keys and never evicts.
//   - BoundedCache: a fixed-capacity table with two-probe collision
//     resolution — hard memory ceiling, O(1) worst-case work per call,
//     probabilistic retention.
//   - SharedFunc over a Service: a concurrent, TTL-expiring backend that
//     several functions share, with stampede protection on hot keys.
//
// # Choosing a strategy
//
// Use NewUnbounded when the key domain is small and results should live
// forever. Use NewBounded when the key domain is large or adversarial and
// a hard memory bound matters more than perfect retention: once both
// candidate slots for a key are occupied by other entries, inserting it
// evicts one of them, so a previously cached key can miss again. That
// trade-off is deliberate — a bounded cache never grows, never rehashes,
// and never does more than two probes and one relocation per call.
//
// # Basic usage
//
//	square, err := memo.NewBounded(func(n int) (int, error) {
//		return n * n, nil
//	}, memo.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	v, err := square.Call(12) // computes
//	v, err = square.Call(12)  // cache hit
//
// Functions of two or three arguments go through the KeyN tuple types:
//
//	dist, err := memo.NewBounded2(distance, memo.Config{Capacity: 509})
//	v, err := memo.Call2(dist, "madrid", "lisbon")
//
// Argument order is part of call identity: Call2(c, a, b) and
// Call2(c, b, a) are distinct cache entries.
//
// # Concurrency
//
// BoundedCache and UnboundedCache are single-threaded by design; their
// logic never blocks or yields, and the wrapped function runs to completion
// inside Call. Callers that share an instance across goroutines must wrap
// it:
//
//	shared := memo.NewGuarded(square)
//
// The guard serializes whole calls, including the wrapped function's
// execution. SharedFunc is safe for concurrent use without a guard.
//
// # Errors
//
// An error from the wrapped function propagates to the caller unchanged
// and is never cached: the targeted slot keeps its previous state and the
// next call with the same arguments computes again. Construction of a
// bounded cache fails eagerly with a CapacityError when the requested
// capacity is non-positive or would overflow allocation or index
// arithmetic.
//
// # Key serialization
//
// The default hasher and the shared service build keys with the
// reflection-based KeySerializer, which renders values deterministically:
// composites element-wise in declaration order, maps with sorted keys, and
// functions and channels by address (stable only within one process).
// Provide a custom KeySerializer or Hasher where those rules do not fit.
package memo
