package memo

import (
	"fmt"
	"reflect"
)

// BindError reports a receiver/method pair that cannot be adapted into a
// plain function, or a bound call whose arguments do not fit the method.
type BindError struct {
	Method  string
	Message string
}

// Error implements the error interface.
func (e *BindError) Error() string {
	return "cannot bind method " + e.Method + ": " + e.Message
}

// BoundFunc is the plain function shape BindMethod produces. The receiver
// is captured inside; the arguments are the method's own parameters.
type BoundFunc func(args ...any) (any, error)

// BindMethod resolves the named method on receiver and returns it as a
// plain function suitable for memoization. This is a pure signature
// transformation — no caching happens here; pass the result to a cache
// constructor or through a KeySerializer-backed service.
//
// The method must return either a single value or a value and an error.
// Variadic methods are rejected at bind time. Argument count and types are
// checked on every call so a mismatch surfaces as a BindError instead of a
// reflection panic.
func BindMethod(receiver any, name string) (BoundFunc, error) {
	if receiver == nil {
		return nil, &BindError{Method: name, Message: "receiver must not be nil"}
	}

	method := reflect.ValueOf(receiver).MethodByName(name)
	if !method.IsValid() {
		return nil, &BindError{Method: name, Message: fmt.Sprintf("no such method on %T", receiver)}
	}

	mt := method.Type()
	if mt.IsVariadic() {
		return nil, &BindError{Method: name, Message: "variadic methods are not supported"}
	}
	if mt.NumOut() < 1 || mt.NumOut() > 2 {
		return nil, &BindError{Method: name, Message: "must return a value, or a value and an error"}
	}

	errorType := reflect.TypeOf((*error)(nil)).Elem()
	if mt.NumOut() == 2 && !mt.Out(1).Implements(errorType) {
		return nil, &BindError{Method: name, Message: "second return value must be error"}
	}

	return func(args ...any) (any, error) {
		if len(args) != mt.NumIn() {
			return nil, &BindError{
				Method:  name,
				Message: fmt.Sprintf("expected %d arguments, got %d", mt.NumIn(), len(args)),
			}
		}

		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			if arg == nil {
				in[i] = reflect.Zero(mt.In(i))
				continue
			}

			av := reflect.ValueOf(arg)
			if !av.Type().AssignableTo(mt.In(i)) {
				return nil, &BindError{
					Method:  name,
					Message: fmt.Sprintf("argument %d: %s is not assignable to %s", i, av.Type(), mt.In(i)),
				}
			}
			in[i] = av
		}

		out := method.Call(in)

		var callErr error
		if mt.NumOut() == 2 && !out[1].IsNil() {
			callErr = out[1].Interface().(error)
		}

		return out[0].Interface(), callErr
	}, nil
}
