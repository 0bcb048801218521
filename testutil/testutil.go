// Package testutil provides shared helpers for store tests: a recording
// DevTools sink, a recording watcher, and a scripted middleware factory.
package testutil

import (
	"sync"

	"github.com/oldbig/redux-lite/store"
)

// RecordingSink is a store.Sink that captures everything it receives.
type RecordingSink struct {
	mu          sync.Mutex
	InitStates  []store.State
	Sent        []store.Commit
	Disconnects int
}

// Init records the initial state.
func (r *RecordingSink) Init(state store.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.InitStates = append(r.InitStates, state)
}

// Send records a dispatched action and the resulting state.
func (r *RecordingSink) Send(action store.Action, state store.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Sent = append(r.Sent, store.Commit{Action: action, State: state})
}

// Disconnect counts teardown calls.
func (r *RecordingSink) Disconnect() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Disconnects++
}

// SentCount returns how many actions the sink has seen.
func (r *RecordingSink) SentCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Sent)
}

// RecordingWatcher collects derived values delivered to a watcher.
type RecordingWatcher struct {
	mu     sync.Mutex
	Values []interface{}
}

// Notify is the callback to hand to Store.Watch.
func (r *RecordingWatcher) Notify(value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Values = append(r.Values, value)
}

// Count returns the number of notifications received.
func (r *RecordingWatcher) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Values)
}

// Last returns the most recent derived value, or nil.
func (r *RecordingWatcher) Last() interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Values) == 0 {
		return nil
	}
	return r.Values[len(r.Values)-1]
}

// ScriptedMiddleware returns a middleware that appends "<name>-start"
// before calling next and "<name>-end" after, into the shared log. Used
// to assert onion ordering.
func ScriptedMiddleware(name string, log *[]string) store.Middleware {
	return func(api store.API) func(next store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action store.Action) store.Action {
				*log = append(*log, name+"-start")
				out := next(action)
				*log = append(*log, name+"-end")
				return out
			}
		}
	}
}
