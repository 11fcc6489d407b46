package memo

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// KeySeparator delimits the segments of a serialized cache key.
const KeySeparator = "::"

// KeySerializer builds a stable string key from a scope (typically a
// function or method name) and the call's argument values. Serialization is
// order-sensitive: argument position is part of call identity, so the same
// values in a different order produce a different key.
type KeySerializer interface {
	SerializeKey(scope string, args ...any) string
}

// defaultKeySerializer walks argument values with reflection and renders
// them deterministically. Composite values are serialized element by
// element in declaration order; maps sort their keys so the output is
// stable across runs.
type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates the default reflection-based serializer.
func NewDefaultKeySerializer() KeySerializer {
	return &defaultKeySerializer{}
}

// SerializeKey joins the scope and each serialized argument with
// KeySeparator. A call with no arguments serializes to the scope alone.
func (s *defaultKeySerializer) SerializeKey(scope string, args ...any) string {
	if len(args) == 0 {
		return scope
	}

	parts := make([]string, 0, len(args)+1)
	parts = append(parts, scope)
	for _, arg := range args {
		parts = append(parts, s.serializeValue(arg))
	}

	return strings.Join(parts, KeySeparator)
}

func (s *defaultKeySerializer) serializeValue(v any) string {
	if v == nil {
		return "nil"
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return "nil"
		}
		return s.serializeValue(rv.Elem().Interface())

	case reflect.Interface:
		if rv.IsNil() {
			return "interface:nil"
		}
		return s.serializeValue(rv.Elem().Interface())

	case reflect.Slice:
		if rv.IsNil() {
			return "slice:nil"
		}
		return s.serializeSequence("slice", rv)

	case reflect.Array:
		return s.serializeSequence("array", rv)

	case reflect.Map:
		if rv.IsNil() {
			return "map:nil"
		}
		return s.serializeMap(rv)

	case reflect.Struct:
		return s.serializeStruct(rv)

	// Functions and channels have no stable value representation; their
	// address is stable within a process, which is all an in-process cache
	// key needs.
	case reflect.Func:
		return fmt.Sprintf("func:%p", v)
	case reflect.Chan:
		return fmt.Sprintf("chan:%p", v)

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprintf("%v", v)

	default:
		return s.jsonFallback(v)
	}
}

// serializeSequence renders slice and array elements in index order, which
// is what makes argument order part of the key.
func (s *defaultKeySerializer) serializeSequence(kind string, rv reflect.Value) string {
	length := rv.Len()
	parts := make([]string, length)
	for i := 0; i < length; i++ {
		parts[i] = s.serializeValue(rv.Index(i).Interface())
	}

	return fmt.Sprintf("%s[%d]:{%s}", kind, length, strings.Join(parts, ","))
}

// serializeMap renders key=value pairs sorted by serialized key so that map
// iteration order never leaks into the cache key.
func (s *defaultKeySerializer) serializeMap(rv reflect.Value) string {
	pairs := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, s.serializeValue(iter.Key().Interface())+"="+s.serializeValue(iter.Value().Interface()))
	}
	sort.Strings(pairs)

	return fmt.Sprintf("map[%d]:{%s}", len(pairs), strings.Join(pairs, ","))
}

// serializeStruct renders exported fields in declaration order.
func (s *defaultKeySerializer) serializeStruct(rv reflect.Value) string {
	rt := rv.Type()
	parts := make([]string, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		parts = append(parts, field.Name+":"+s.serializeValue(rv.Field(i).Interface()))
	}

	return fmt.Sprintf("struct:{%s}", strings.Join(parts, ","))
}

// jsonFallback covers kinds with no dedicated rendering. Stability wins
// over precision here: when marshaling fails the type name stands in, so
// key generation never panics mid-call.
func (s *defaultKeySerializer) jsonFallback(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("fallback:%s", reflect.TypeOf(v).String())
	}

	return fmt.Sprintf("json:%s", string(data))
}
