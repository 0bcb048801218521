// Package equality implements the deep structural equality predicate used
// by the store to decide whether an update actually changed anything.
//
// Unlike reflect.DeepEqual, cyclic structures are handled conservatively:
// encountering the same reference twice during one comparison reports
// unequal rather than attempting to prove the cycles isomorphic. Application
// state is expected to be cycle-free (it is typically serializable), so
// this trades exactness on pathological inputs for a guaranteed termination
// bound. time.Time values compare by instant rather than by field.
//
// Function values are the one exception to the identical-reference fast
// path: Go gives funcs no usable identity (comparing them through an
// interface panics, and code pointers collide across distinct closures of
// the same function), so two non-nil funcs always compare unequal, even
// the same value against itself. Only a pair of nil funcs is equal.
package equality

import (
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// Equal reports whether a and b are deeply structurally equal.
//
// Rules:
//   - identical references are equal immediately
//   - values of different structural kinds are unequal
//   - time.Time values compare via time.Time.Equal
//   - slices and arrays compare element-wise, position-sensitive
//   - maps compare by key set, then recursive value equality per key
//   - a reference encountered twice in one comparison makes the result
//     unequal (conservative cycle handling)
//   - non-nil funcs are always unequal, even the same value twice; the
//     identical-reference fast path does not apply to them
//   - everything else compares by value
func Equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return deepEqual(reflect.ValueOf(a), reflect.ValueOf(b), make(map[uintptr]bool))
}

// deepEqual walks both values in lockstep. seen holds the addresses of
// every reference-kind value already visited on either side; a repeat
// visit terminates the walk with "unequal".
func deepEqual(v1, v2 reflect.Value, seen map[uintptr]bool) bool {
	if !v1.IsValid() || !v2.IsValid() {
		return v1.IsValid() == v2.IsValid()
	}

	// Unwrap interface values so the kind comparison below sees the
	// concrete values.
	if v1.Kind() == reflect.Interface {
		if v1.IsNil() {
			return v2.Kind() == reflect.Interface && v2.IsNil()
		}
		v1 = v1.Elem()
	}
	if v2.Kind() == reflect.Interface {
		if v2.IsNil() {
			return false
		}
		v2 = v2.Elem()
	}

	if v1.Type() == timeType && v2.Type() == timeType && v1.CanInterface() && v2.CanInterface() {
		return v1.Interface().(time.Time).Equal(v2.Interface().(time.Time))
	}

	if v1.Kind() != v2.Kind() {
		return false
	}

	switch v1.Kind() {
	case reflect.Ptr:
		if v1.Pointer() == v2.Pointer() {
			return true
		}
		if v1.IsNil() || v2.IsNil() {
			return false
		}
		if seen[v1.Pointer()] || seen[v2.Pointer()] {
			return false
		}
		seen[v1.Pointer()] = true
		seen[v2.Pointer()] = true
		return deepEqual(v1.Elem(), v2.Elem(), seen)

	case reflect.Slice:
		if v1.IsNil() != v2.IsNil() {
			return false
		}
		if v1.Len() != v2.Len() {
			return false
		}
		if v1.Len() == 0 {
			return true
		}
		if v1.Pointer() == v2.Pointer() {
			return true
		}
		if seen[v1.Pointer()] || seen[v2.Pointer()] {
			return false
		}
		seen[v1.Pointer()] = true
		seen[v2.Pointer()] = true
		for i := 0; i < v1.Len(); i++ {
			if !deepEqual(v1.Index(i), v2.Index(i), seen) {
				return false
			}
		}
		return true

	case reflect.Array:
		if v1.Len() != v2.Len() {
			return false
		}
		for i := 0; i < v1.Len(); i++ {
			if !deepEqual(v1.Index(i), v2.Index(i), seen) {
				return false
			}
		}
		return true

	case reflect.Map:
		if v1.IsNil() != v2.IsNil() {
			return false
		}
		if v1.Len() != v2.Len() {
			return false
		}
		if v1.Len() == 0 {
			return true
		}
		if v1.Pointer() == v2.Pointer() {
			return true
		}
		if seen[v1.Pointer()] || seen[v2.Pointer()] {
			return false
		}
		seen[v1.Pointer()] = true
		seen[v2.Pointer()] = true
		for _, k := range v1.MapKeys() {
			val2 := v2.MapIndex(k)
			if !val2.IsValid() {
				return false
			}
			if !deepEqual(v1.MapIndex(k), val2, seen) {
				return false
			}
		}
		return true

	case reflect.Struct:
		if v1.Type() != v2.Type() {
			return false
		}
		for i := 0; i < v1.NumField(); i++ {
			if !deepEqual(v1.Field(i), v2.Field(i), seen) {
				return false
			}
		}
		return true

	case reflect.Func:
		// Functions are only equal when both nil; there is no useful
		// structural comparison for closures.
		return v1.IsNil() && v2.IsNil()

	default:
		if v1.Type() != v2.Type() {
			return false
		}
		// Kind-based comparison keeps this safe for unexported struct
		// fields, which cannot go through Interface().
		switch v1.Kind() {
		case reflect.Bool:
			return v1.Bool() == v2.Bool()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return v1.Int() == v2.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return v1.Uint() == v2.Uint()
		case reflect.Float32, reflect.Float64:
			return v1.Float() == v2.Float()
		case reflect.Complex64, reflect.Complex128:
			return v1.Complex() == v2.Complex()
		case reflect.String:
			return v1.String() == v2.String()
		case reflect.Chan, reflect.UnsafePointer:
			return v1.Pointer() == v2.Pointer()
		}
		if v1.CanInterface() && v2.CanInterface() {
			return v1.Interface() == v2.Interface()
		}
		return false
	}
}
