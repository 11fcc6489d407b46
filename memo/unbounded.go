package memo

// UnboundedCache memoizes a function in a plain map. It never evicts: every
// distinct key computed is retained for the cache's lifetime, so memory
// grows with the number of distinct keys. Choose BoundedCache when the key
// domain is large or unbounded.
//
// An UnboundedCache is not safe for concurrent use; see NewGuarded.
type UnboundedCache[K comparable, V any] struct {
	fn      Func[K, V]
	entries map[K]V
}

var _ Cache[int, int] = (*UnboundedCache[int, int])(nil)

// NewUnbounded builds an unbounded cache over fn. A nil fn is reported as
// ErrNilFunc on the first Call rather than here, keeping the constructor
// signature free of an error return for the common case.
func NewUnbounded[K comparable, V any](fn Func[K, V]) *UnboundedCache[K, V] {
	return &UnboundedCache[K, V]{
		fn:      fn,
		entries: make(map[K]V),
	}
}

// Call returns the memoized result for key, invoking the wrapped function
// once per distinct key. A function error propagates unchanged and caches
// nothing, so the next call with the same key computes again.
func (c *UnboundedCache[K, V]) Call(key K) (V, error) {
	if result, ok := c.entries[key]; ok {
		return result, nil
	}

	if c.fn == nil {
		var zero V
		return zero, ErrNilFunc
	}

	result, err := c.fn(key)
	if err != nil {
		var zero V
		return zero, err
	}

	c.entries[key] = result

	return result, nil
}

// Len reports how many results are cached.
func (c *UnboundedCache[K, V]) Len() int {
	return len(c.entries)
}
