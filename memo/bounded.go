package memo

import "github.com/goliatone/go-memo/internal/twoprobe"

// BoundedCache memoizes a function in a table of fixed capacity with
// two-probe collision resolution: each key hashes to two candidate slots, a
// colliding occupant is relocated to its secondary slot at most once, and a
// further collision evicts. This bounds both memory (at most Capacity
// entries, allocated once) and latency (O(1) work per call), at the cost of
// probabilistic retention: an entry can be evicted when two other keys
// collide into both of its slots.
//
// A BoundedCache is not safe for concurrent use; see NewGuarded.
type BoundedCache[K comparable, V any] struct {
	engine *twoprobe.Cache[K, V]
}

var _ Cache[int, int] = (*BoundedCache[int, int])(nil)

// NewBounded builds a bounded cache over fn using the default hasher for K.
// The capacity is validated eagerly: a zero, negative, or overflowing
// capacity fails with a CapacityError before anything is allocated.
func NewBounded[K comparable, V any](fn Func[K, V], cfg Config) (*BoundedCache[K, V], error) {
	return NewBoundedWithHasher(fn, cfg, DefaultHasher[K]())
}

// NewBoundedWithHasher is NewBounded with a caller-supplied hash function,
// for keys that can be hashed cheaper or with a specific distribution.
func NewBoundedWithHasher[K comparable, V any](fn Func[K, V], cfg Config, hasher Hasher[K]) (*BoundedCache[K, V], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if hasher == nil {
		return nil, ErrNilHasher
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	engine, err := twoprobe.New(fn, hasher, cfg.Capacity)
	if err != nil {
		return nil, err
	}

	return &BoundedCache[K, V]{engine: engine}, nil
}

// Call returns the memoized result for key, invoking the wrapped function
// only when neither candidate slot holds it. A function error propagates
// unchanged and caches nothing.
func (c *BoundedCache[K, V]) Call(key K) (V, error) {
	return c.engine.Call(key)
}

// Len reports how many slots currently hold a result. It never exceeds
// Capacity.
func (c *BoundedCache[K, V]) Len() int {
	return c.engine.Len()
}

// Capacity reports the fixed slot count chosen at construction.
func (c *BoundedCache[K, V]) Capacity() int {
	return c.engine.Capacity()
}
