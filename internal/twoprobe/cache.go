// Package twoprobe implements a fixed-capacity memoization table with
// two-probe collision resolution. Every key routes to two candidate slots
// derived from a single hash. A colliding occupant is relocated to its own
// secondary slot at most once, and a further collision evicts; there is no
// displacement chain. Worst-case work per call is therefore O(1): at most
// two probes, one relocation, and one invocation of the wrapped function.
package twoprobe

// Cache memoizes a function in a table of fixed capacity. It is not safe
// for concurrent use; callers that share an instance must provide external
// exclusion.
type Cache[K comparable, V any] struct {
	fn    func(K) (V, error)
	hash  func(K) uint64
	table *table[K, V]
}

// New builds a cache over fn with the given hash function and capacity.
// Capacity is validated eagerly (see CapacityError); slot storage itself is
// allocated on the first call.
func New[K comparable, V any](fn func(K) (V, error), hash func(K) uint64, capacity int) (*Cache[K, V], error) {
	t, err := newTable[K, V](capacity)
	if err != nil {
		return nil, err
	}

	return &Cache[K, V]{fn: fn, hash: hash, table: t}, nil
}

// Call returns the memoized result for key, invoking the wrapped function
// only when no slot holds it. An error from the function propagates
// unchanged and caches nothing; the targeted slot keeps its prior occupant
// so the next call with the same key computes again.
func (c *Cache[K, V]) Call(key K) (V, error) {
	idx1, idx2 := route(c.hash(key), c.table.capacity)

	if !c.table.isOccupied(idx1) {
		return c.computeInto(idx1, key)
	}

	prevKey, prevResult := c.table.read(idx1)
	if prevKey == key {
		return prevResult, nil
	}

	// The sought entry may have been relocated to its secondary slot by an
	// earlier collision.
	if idx2 != idx1 && c.table.isOccupied(idx2) {
		if k, r := c.table.read(idx2); k == key {
			return r, nil
		}
	}

	// Make room at the primary slot: move its occupant to the occupant's
	// own secondary slot, recomputed from its stored key. That keeps the
	// displaced entry reachable by later lookups. Whatever already holds
	// that slot is evicted outright; the evicted entry is not chased
	// further.
	if _, alt := route(c.hash(prevKey), c.table.capacity); alt != idx1 {
		c.table.write(alt, prevKey, prevResult)
	}

	return c.computeInto(idx1, key)
}

// Len reports how many slots currently hold an entry. It never exceeds
// Capacity.
func (c *Cache[K, V]) Len() int {
	return c.table.len()
}

// Capacity reports the fixed slot count chosen at construction.
func (c *Cache[K, V]) Capacity() int {
	return c.table.capacity
}

func (c *Cache[K, V]) computeInto(idx int, key K) (V, error) {
	result, err := c.fn(key)
	if err != nil {
		var zero V
		return zero, err
	}

	c.table.write(idx, key, result)

	return result, nil
}
