package memo

import (
	"context"
	"errors"
)

// ErrInvalidResultType is returned by the generic GetOrCompute wrapper when
// the backend hands back a value of a different type than the caller
// requested. It indicates a key collision between functions with different
// result types, typically from reusing a scope.
var ErrInvalidResultType = errors.New("memo: cached value does not match the requested type")

// FetchFn is the computation a Service runs on a cache miss.
type FetchFn[T any] func(ctx context.Context) (T, error)

// Service exposes shared, expiring memoization over string keys. Unlike the
// in-process Cache strategies it is safe for concurrent use, deduplicates
// concurrent misses for the same key, and expires entries by TTL. The
// default implementation lives in internal/cacheinfra; construct one with
// NewService.
type Service interface {
	// GetOrCompute returns the cached value for key, running computeFn and
	// caching its result on a miss. computeFn must be a FetchFn[T] for some
	// T; an invalid function is rejected before anything is computed.
	GetOrCompute(ctx context.Context, key string, computeFn any) (any, error)

	// Forget drops a single key so the next GetOrCompute recomputes it.
	Forget(ctx context.Context, key string) error

	// ForgetPrefix drops every key starting with prefix. SharedFunc uses
	// this to drop all results of one function at once.
	ForgetPrefix(ctx context.Context, prefix string) error
}

// GetOrCompute is the type-safe wrapper over Service.GetOrCompute.
func GetOrCompute[T any](ctx context.Context, service Service, key string, computeFn FetchFn[T]) (T, error) {
	var zero T

	// Erase the named FetchFn type so implementations can assert the plain
	// func(context.Context) (T, error) shape back out.
	raw, err := service.GetOrCompute(ctx, key, (func(ctx context.Context) (T, error))(computeFn))
	if err != nil {
		return zero, err
	}
	if raw == nil {
		return zero, nil
	}

	value, ok := raw.(T)
	if !ok {
		return zero, ErrInvalidResultType
	}

	return value, nil
}
