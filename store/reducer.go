package store

import (
	"github.com/oldbig/redux-lite/equality"
)

// Reduce is the pure transition function. It resolves updater payloads,
// applies partial-merge or full-replacement semantics, and short-circuits
// on deep equality so a no-op dispatch returns the identical State
// reference. It never fails: an unknown action type reads the current
// slice as nil and proceeds, producing an ad-hoc slice.
func Reduce(state State, action Action) State {
	next, _ := reduce(state, action)
	return next
}

// reduce additionally reports whether the state actually changed, which
// the store uses to gate subscriber notification.
func reduce(state State, action Action) (State, bool) {
	prev := state[action.Type]
	candidate := resolvePayload(action.Payload, prev, state)

	if action.Partial {
		prevRecord, prevOK := prev.(map[string]interface{})
		candidateRecord, candidateOK := candidate.(map[string]interface{})
		if prevOK && candidateOK {
			merged := make(map[string]interface{}, len(prevRecord)+len(candidateRecord))
			for k, v := range prevRecord {
				merged[k] = v
			}
			for k, v := range candidateRecord {
				merged[k] = v
			}
			if equality.Equal(prevRecord, merged) {
				return state, false
			}
			return state.withSlice(action.Type, merged), true
		}
		// Partial semantics need a record on both sides; anything else
		// falls back to full replacement.
	}

	if equality.Equal(prev, candidate) {
		return state, false
	}
	return state.withSlice(action.Type, candidate), true
}
