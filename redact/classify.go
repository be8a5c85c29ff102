package redact

import (
	"encoding/json"
	"reflect"
)

type kind int

const (
	kindPrimitive kind = iota
	kindArray
	kindPlainObject
	kindUnsupported
)

func (k kind) String() string {
	switch k {
	case kindPrimitive:
		return "primitive"
	case kindArray:
		return "array"
	case kindPlainObject:
		return "plain object"
	default:
		return "unsupported"
	}
}

// classify sorts v into one of the four kinds. The checks run in a fixed
// order: primitive, array, plain object, then the unsupported fallback.
func classify(v any) kind {
	// Fast path for what encoding/json and yaml.v3 produce.
	switch v.(type) {
	case nil, bool, string, json.Number, float64, int, int64, uint64, []byte:
		return kindPrimitive
	case []any:
		return kindArray
	case map[string]any:
		return kindPlainObject
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return kindPrimitive
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return kindPrimitive
		}
		return kindArray
	case reflect.Array:
		return kindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return kindPlainObject
		}
	}
	return kindUnsupported
}

// objectLike reports whether an unsupported value should be described as
// "(not plain)". Funcs, channels and unsafe pointers are not object-like.
func objectLike(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return false
	default:
		return true
	}
}
