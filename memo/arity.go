package memo

// Key2 is the composite cache key for two-argument functions. Field order
// mirrors argument order and is part of call identity: Key2{1, 2} and
// Key2{2, 1} serialize, hash, and compare as different keys.
type Key2[A, B comparable] struct {
	A A
	B B
}

// Key3 is the composite cache key for three-argument functions.
type Key3[A, B, C comparable] struct {
	A A
	B B
	C C
}

// NewBounded2 memoizes a two-argument function in a bounded cache, packing
// the arguments into a Key2.
func NewBounded2[A, B comparable, V any](fn func(A, B) (V, error), cfg Config) (*BoundedCache[Key2[A, B], V], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	return NewBounded(func(key Key2[A, B]) (V, error) {
		return fn(key.A, key.B)
	}, cfg)
}

// NewBounded3 memoizes a three-argument function in a bounded cache.
func NewBounded3[A, B, C comparable, V any](fn func(A, B, C) (V, error), cfg Config) (*BoundedCache[Key3[A, B, C], V], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	return NewBounded(func(key Key3[A, B, C]) (V, error) {
		return fn(key.A, key.B, key.C)
	}, cfg)
}

// NewUnbounded2 memoizes a two-argument function in an unbounded cache.
func NewUnbounded2[A, B comparable, V any](fn func(A, B) (V, error)) *UnboundedCache[Key2[A, B], V] {
	return NewUnbounded(func(key Key2[A, B]) (V, error) {
		return fn(key.A, key.B)
	})
}

// NewUnbounded3 memoizes a three-argument function in an unbounded cache.
func NewUnbounded3[A, B, C comparable, V any](fn func(A, B, C) (V, error)) *UnboundedCache[Key3[A, B, C], V] {
	return NewUnbounded(func(key Key3[A, B, C]) (V, error) {
		return fn(key.A, key.B, key.C)
	})
}

// Call2 invokes a cache built over Key2 with plain arguments. Since Go
// methods cannot introduce type parameters, this is a package-level helper.
func Call2[A, B comparable, V any](c Cache[Key2[A, B], V], a A, b B) (V, error) {
	return c.Call(Key2[A, B]{A: a, B: b})
}

// Call3 invokes a cache built over Key3 with plain arguments.
func Call3[A, B, C comparable, V any](c Cache[Key3[A, B, C], V], a A, b B, cc C) (V, error) {
	return c.Call(Key3[A, B, C]{A: a, B: b, C: cc})
}
