package store_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oldbig/redux-lite/store"
)

// sameRef reports whether two states are the identical map reference.
func sameRef(a, b store.State) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestReduceNoOpKeepsReference(t *testing.T) {
	state := store.State{
		"count": 3,
		"user":  map[string]interface{}{"name": "A", "age": 30},
	}

	tests := []struct {
		name   string
		action store.Action
	}{
		{"full with equal primitive", store.Action{Type: "count", Payload: 3}},
		{"full with deeply equal record", store.Action{Type: "user", Payload: map[string]interface{}{"name": "A", "age": 30}}},
		{"partial with equal subset", store.Action{Type: "user", Payload: map[string]interface{}{"name": "A"}, Partial: true}},
		{"partial with full equal record", store.Action{Type: "user", Payload: map[string]interface{}{"name": "A", "age": 30}, Partial: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := store.Reduce(state, tt.action)
			assert.True(t, sameRef(state, next), "no-op dispatch must return the identical state reference")
		})
	}
}

func TestReduceFullReplacement(t *testing.T) {
	state := store.State{"count": 3, "name": "x"}

	next := store.Reduce(state, store.Action{Type: "count", Payload: 4})

	assert.False(t, sameRef(state, next))
	assert.Equal(t, 4, next["count"])
	assert.Equal(t, "x", next["name"])
	// The original is untouched.
	assert.Equal(t, 3, state["count"])
}

func TestReducePartialPreservesSiblings(t *testing.T) {
	state := store.State{
		"user": map[string]interface{}{
			"a": 0,
			"b": 2,
			"nested": map[string]interface{}{
				"keep": true,
			},
		},
	}

	next := store.Reduce(state, store.Action{
		Type:    "user",
		Payload: map[string]interface{}{"a": 1},
		Partial: true,
	})

	user := next["user"].(map[string]interface{})
	assert.Equal(t, 1, user["a"])
	assert.Equal(t, 2, user["b"])
	// Sibling records survive untouched unless named in the payload.
	assert.Equal(t, map[string]interface{}{"keep": true}, user["nested"])
}

func TestReducePartialReplacesNestedWholesale(t *testing.T) {
	state := store.State{
		"user": map[string]interface{}{
			"data": map[string]interface{}{"x": 1, "y": 2},
		},
	}

	next := store.Reduce(state, store.Action{
		Type:    "user",
		Payload: map[string]interface{}{"data": map[string]interface{}{"x": 9}},
		Partial: true,
	})

	data := next["user"].(map[string]interface{})["data"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"x": 9}, data)
}

func TestReducePartialFallbackToReplacement(t *testing.T) {
	tests := []struct {
		name    string
		state   store.State
		payload interface{}
		want    interface{}
	}{
		{"primitive slice", store.State{"count": 1}, 2, 2},
		{"slice-valued slice", store.State{"items": []interface{}{1}}, []interface{}{2}, []interface{}{2}},
		{"nil slice with record payload", store.State{"task": nil}, map[string]interface{}{"id": 1}, map[string]interface{}{"id": 1}},
		{"record slice with primitive payload", store.State{"task": map[string]interface{}{"id": 1}}, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := ""
			for k := range tt.state {
				key = k
			}
			next := store.Reduce(tt.state, store.Action{Type: key, Payload: tt.payload, Partial: true})
			assert.Equal(t, tt.want, next[key])
		})
	}
}

func TestReduceUpdaterPayload(t *testing.T) {
	state := store.State{"count": 3, "step": 2}

	next := store.Reduce(state, store.Action{
		Type: "count",
		Payload: store.Updater(func(prev interface{}, full store.State) interface{} {
			return prev.(int) + full["step"].(int)
		}),
	})

	assert.Equal(t, 5, next["count"])
}

func TestReduceUpdaterNoOp(t *testing.T) {
	state := store.State{"count": 3}

	next := store.Reduce(state, store.Action{
		Type: "count",
		Payload: store.Updater(func(prev interface{}, _ store.State) interface{} {
			return prev
		}),
	})

	assert.True(t, sameRef(state, next))
}

func TestReduceOptionalClearing(t *testing.T) {
	state := store.State{"task": map[string]interface{}{"id": 1}, "count": 0}

	next := store.Reduce(state, store.Action{Type: "task", Payload: nil})

	val, present := next["task"]
	assert.True(t, present)
	assert.Nil(t, val)
	assert.Equal(t, 0, next["count"])
}

func TestReduceUnknownTypeCreatesAdHocSlice(t *testing.T) {
	state := store.State{"count": 0}

	next := store.Reduce(state, store.Action{Type: "mystery", Payload: 42})

	assert.Equal(t, 42, next["mystery"])
	assert.Equal(t, 0, next["count"])
	// The original key set is not retroactively altered.
	_, present := state["mystery"]
	assert.False(t, present)
}
