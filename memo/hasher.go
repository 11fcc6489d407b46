package memo

import "github.com/cespare/xxhash/v2"

// Hasher produces the 64-bit hash sum a bounded cache routes slot placement
// with. It must be total over K and deterministic for the lifetime of the
// cache; the same key must always hash to the same sum.
type Hasher[K comparable] func(key K) uint64

// hashScope namespaces serialized keys before hashing.
const hashScope = "call"

// DefaultHasher derives a Hasher for any comparable key type at cache
// construction time: the key is serialized with the default serializer and
// the result hashed with xxhash. Because serialization walks composite keys
// in declaration order, keys holding the same values in a different order
// hash differently.
//
// Callers that can hash their key type cheaper than reflection allows can
// pass their own Hasher to NewBoundedWithHasher instead.
func DefaultHasher[K comparable]() Hasher[K] {
	serializer := NewDefaultKeySerializer()

	return func(key K) uint64 {
		return xxhash.Sum64String(serializer.SerializeKey(hashScope, key))
	}
}
