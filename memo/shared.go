package memo

import "context"

// SharedFunc memoizes a function through a Service. Where BoundedCache and
// UnboundedCache own private storage, a SharedFunc borrows a concurrent,
// TTL-expiring backend that several functions can share; keys are
// namespaced by a per-function scope so functions never collide.
type SharedFunc[K comparable, V any] struct {
	scope      string
	fn         Func[K, V]
	service    Service
	serializer KeySerializer
}

// NewSharedFunc memoizes fn against service under the given scope. The
// scope becomes the leading segment of every cache key, so it must be
// unique per function within one service. A nil serializer falls back to
// the default reflection-based one.
func NewSharedFunc[K comparable, V any](scope string, fn Func[K, V], service Service, serializer KeySerializer) (*SharedFunc[K, V], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if service == nil {
		return nil, ErrNilService
	}
	if serializer == nil {
		serializer = NewDefaultKeySerializer()
	}

	return &SharedFunc[K, V]{
		scope:      scope,
		fn:         fn,
		service:    service,
		serializer: serializer,
	}, nil
}

// Call returns the memoized result for key, computing and caching it on a
// miss. Concurrent callers with the same key are deduplicated by the
// backing service.
func (s *SharedFunc[K, V]) Call(ctx context.Context, key K) (V, error) {
	cacheKey := s.serializer.SerializeKey(s.scope, key)

	return GetOrCompute(ctx, s.service, cacheKey, func(ctx context.Context) (V, error) {
		return s.fn(key)
	})
}

// Forget drops the cached result for one key so the next Call recomputes it.
func (s *SharedFunc[K, V]) Forget(ctx context.Context, key K) error {
	return s.service.Forget(ctx, s.serializer.SerializeKey(s.scope, key))
}

// ForgetAll drops every cached result of this function, leaving other
// functions sharing the service untouched.
func (s *SharedFunc[K, V]) ForgetAll(ctx context.Context) error {
	return s.service.ForgetPrefix(ctx, s.scope+KeySeparator)
}

// Scope reports the key namespace this function caches under.
func (s *SharedFunc[K, V]) Scope() string {
	return s.scope
}
