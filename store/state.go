package store

// State is the current store contents, one entry per definition key. The
// key set is fixed at bind time; the reducer replaces values but never
// adds or removes keys (the tolerated exception is a dispatch to an
// undeclared type, which creates an ad-hoc slice).
//
// State values are treated as immutable: the reducer returns either the
// identical map reference (no-op) or a fresh top-level map with exactly
// one slice replaced. Consumers must not mutate a State they receive.
type State map[string]interface{}

// withSlice returns a copy of s with one slice replaced.
func (s State) withSlice(key string, value interface{}) State {
	next := make(State, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[key] = value
	return next
}

// clone returns a shallow top-level copy of s.
func (s State) clone() State {
	next := make(State, len(s))
	for k, v := range s {
		next[k] = v
	}
	return next
}
