// Package devtools implements the DevTools bridge: an optional sink that
// receives every dispatched action and resulting state from a binding
// instance, and forwards them over a websocket to an external monitor.
// The store works identically with the bridge absent; see store.Sink for
// the contract.
package devtools

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oldbig/redux-lite/store"
)

// FrameType discriminates the monitor protocol messages.
type FrameType string

const (
	FrameInit       FrameType = "init"
	FrameAction     FrameType = "action"
	FrameDisconnect FrameType = "disconnect"
)

// Frame is one monitor protocol message. Init carries the effective
// initial state, Action carries a dispatched action plus the state it
// produced, Disconnect announces binding teardown.
type Frame struct {
	Type   FrameType   `json:"type"`
	Store  string      `json:"store"`
	Action *wireAction `json:"action,omitempty"`
	State  store.State `json:"state,omitempty"`
	SentAt time.Time   `json:"sentAt"`
}

// wireAction is an Action with the payload forced to something
// JSON-encodable. Updater payloads are functions and cannot cross the
// wire; they are replaced with a descriptive placeholder.
type wireAction struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	Partial bool        `json:"partial"`
}

func toWireAction(action store.Action) *wireAction {
	payload := action.Payload
	if _, err := json.Marshal(payload); err != nil {
		payload = fmt.Sprintf("<unserializable %T>", action.Payload)
	}
	return &wireAction{
		Type:    action.Type,
		Payload: payload,
		Partial: action.Partial,
	}
}

// sanitizeState drops state values that cannot be JSON-encoded,
// replacing them with placeholders so one odd slice does not take down
// the whole frame.
func sanitizeState(state store.State) store.State {
	out := make(store.State, len(state))
	for key, value := range state {
		if _, err := json.Marshal(value); err != nil {
			out[key] = fmt.Sprintf("<unserializable %T>", value)
			continue
		}
		out[key] = value
	}
	return out
}
