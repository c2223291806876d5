// Package typeutil provides type-shape inspection helpers.
//
// PointerFree reports whether a type can be duplicated by a plain byte
// copy and stored outside the garbage-collected heap. Types containing
// pointers fail both: a byte copy aliases the pointees, and off-heap
// storage hides the pointers from the collector.
package typeutil

import "reflect"

// PointerFree reports whether values of type t contain no pointers at
// any depth. Such values are trivially copyable: a verbatim copy of
// their bytes is a semantically correct duplicate.
func PointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return PointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !PointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointers, slices, maps, channels, funcs, strings, interfaces
		// and unsafe.Pointer all reference memory they do not own.
		return false
	}
}

// PointerFreeOf is the generic form of PointerFree.
func PointerFreeOf[T any]() bool {
	return PointerFree(reflect.TypeFor[T]())
}
