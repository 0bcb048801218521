// Package store implements the state container: a slice-keyed state map
// driven by a pure reducer, with per-slice dispatchers generated from the
// store definition, an onion-ordered middleware pipeline, and selector
// subscriptions gated by deep equality.
package store

import (
	"sort"
)

// Definition is the store schema: a mapping from slice name to its
// declared initial value. It is consumed once at factory construction and
// never mutated afterwards.
type Definition map[string]interface{}

// optionalValue marks a slice whose initial value may be absent.
type optionalValue struct {
	value interface{}
}

// Optional wraps a declared initial value to mark the slice as optional.
// The slice unwraps to the wrapped value, which may be nil. Dispatching
// nil to an optional slice later clears it again.
func Optional(v interface{}) interface{} {
	return optionalValue{value: v}
}

// Unwrap builds the initial state from a definition, resolving optional
// markers to their wrapped values.
func Unwrap(def Definition) State {
	state := make(State, len(def))
	for key, declared := range def {
		if opt, ok := declared.(optionalValue); ok {
			state[key] = opt.value
			continue
		}
		state[key] = declared
	}
	return state
}

// Keys returns the slice names of the definition in sorted order. The
// dispatcher map is built by iterating these once at bind time.
func (d Definition) Keys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether the definition declares the given slice.
func (d Definition) Has(key string) bool {
	_, ok := d[key]
	return ok
}
