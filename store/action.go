package store

// Action describes one state update: which slice, the new value (or an
// updater that computes it), and whether the value merges into the slice
// or replaces it. Actions are transient: constructed by a dispatcher,
// consumed by the pipeline, retained only by external tooling such as a
// DevTools sink.
type Action struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	Partial bool        `json:"partial"`
}

// Updater is a payload that computes the next slice value from the
// current one. It receives the current slice value and the full state,
// and must not mutate either.
type Updater func(prev interface{}, state State) interface{}

// resolvePayload evaluates an updater payload against the current state;
// literal payloads pass through unchanged.
func resolvePayload(payload interface{}, prev interface{}, state State) interface{} {
	switch fn := payload.(type) {
	case Updater:
		return fn(prev, state)
	case func(interface{}, State) interface{}:
		return fn(prev, state)
	}
	return payload
}

// Commit is one committed dispatch as seen by raw feed subscribers: the
// action that was dispatched and the state it produced.
type Commit struct {
	Action Action
	State  State
}
