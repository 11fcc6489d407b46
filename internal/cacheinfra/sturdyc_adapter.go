package cacheinfra

import (
	"context"
	"reflect"
	"strings"

	"github.com/viccon/sturdyc"
)

// sturdycService implements memo.Service on top of a sturdyc client. The
// client deduplicates concurrent fetches per key, so simultaneous callers
// missing on the same key run the computation once.
type sturdycService struct {
	client *sturdyc.Client[any]
}

// NewSturdycService validates cfg and builds the shared memoization
// backend.
func NewSturdycService(cfg Config) (*sturdycService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.toSturdycOptions()...,
	)

	return &sturdycService{client: client}, nil
}

// GetOrCompute implements memo.Service. computeFn must have the shape
// func(context.Context) (T, error); it is validated fully before anything
// runs so a malformed function surfaces as a ConfigError rather than a
// reflection panic inside the cache client.
func (s *sturdycService) GetOrCompute(ctx context.Context, key string, computeFn any) (any, error) {
	if err := validateComputeFn(computeFn); err != nil {
		return nil, err
	}

	return s.client.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return callComputeFn(ctx, computeFn)
	})
}

// Forget implements memo.Service.
func (s *sturdycService) Forget(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// ForgetPrefix implements memo.Service. Sturdyc has no prefix index, so
// this scans the key space; it is intended for occasional maintenance, not
// hot paths.
func (s *sturdycService) ForgetPrefix(ctx context.Context, prefix string) error {
	for _, key := range s.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			s.client.Delete(key)
		}
	}

	return nil
}

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// validateComputeFn checks that computeFn is a func(context.Context) (T, error).
func validateComputeFn(computeFn any) error {
	if computeFn == nil {
		return &ConfigError{Field: "computeFn", Message: "cannot be nil"}
	}

	ft := reflect.TypeOf(computeFn)
	if ft.Kind() != reflect.Func {
		return &ConfigError{Field: "computeFn", Message: "must be a function"}
	}
	if ft.NumIn() != 1 || ft.NumOut() != 2 {
		return &ConfigError{Field: "computeFn", Message: "must have signature func(context.Context) (T, error)"}
	}
	if !ft.In(0).Implements(contextType) {
		return &ConfigError{Field: "computeFn", Message: "first parameter must be context.Context"}
	}
	if !ft.Out(1).Implements(errorType) {
		return &ConfigError{Field: "computeFn", Message: "second return value must be error"}
	}

	return nil
}

// callComputeFn invokes a pre-validated compute function, erasing its
// concrete result type. The direct assertion covers the already-erased
// case; everything else goes through reflection.
func callComputeFn(ctx context.Context, computeFn any) (any, error) {
	if fn, ok := computeFn.(func(context.Context) (any, error)); ok {
		return fn(ctx)
	}

	out := reflect.ValueOf(computeFn).Call([]reflect.Value{reflect.ValueOf(ctx)})

	var result any
	if out[0].IsValid() && out[0].CanInterface() {
		result = out[0].Interface()
	}

	var err error
	if out[1].IsValid() && !out[1].IsNil() {
		err = out[1].Interface().(error)
	}

	return result, err
}
