package memo

import "errors"

// Construction errors shared by the cache constructors.
var (
	// ErrNilFunc is returned when a cache is constructed without a function.
	ErrNilFunc = errors.New("memo: function must not be nil")

	// ErrNilHasher is returned when a bounded cache is constructed with a
	// nil hash function.
	ErrNilHasher = errors.New("memo: hasher must not be nil")

	// ErrNilService is returned when a shared function is constructed
	// without a backing service.
	ErrNilService = errors.New("memo: service must not be nil")
)

// Func is the unary function shape the caches memoize. Functions of higher
// arity are adapted through the KeyN tuple types; see arity.go.
type Func[K comparable, V any] func(K) (V, error)

// Cache is the call surface shared by the bounded and unbounded strategies.
//
// Implementations are not safe for concurrent use unless stated otherwise;
// wrap an instance with NewGuarded when multiple goroutines share it.
type Cache[K comparable, V any] interface {
	// Call returns the memoized result for key, invoking the underlying
	// function only on a miss. Errors from the function propagate unchanged
	// and are never cached.
	Call(key K) (V, error)

	// Len reports how many results are currently cached.
	Len() int
}
