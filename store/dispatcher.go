package store

import (
	"context"
	"unicode"
	"unicode/utf8"

	"github.com/oldbig/redux-lite/errors"
)

// Dispatcher is the generated pair of update entry points for one slice.
// The full set for a binding is built once at bind time by iterating the
// definition; there is no runtime name synthesis.
type Dispatcher struct {
	store *Store
	key   string
}

// Key returns the slice this dispatcher updates.
func (d *Dispatcher) Key() string {
	return d.key
}

// Dispatch replaces the slice with the payload (or the updater's
// result). A deeply-equal payload is a no-op that leaves the state
// reference untouched.
func (d *Dispatcher) Dispatch(payload interface{}) error {
	return d.store.Update(d.key, payload)
}

// DispatchPartial shallow-merges a record payload into a record-valued
// slice. Anything else falls back to full replacement.
func (d *Dispatcher) DispatchPartial(payload interface{}) error {
	return d.store.UpdatePartial(d.key, payload)
}

// Producer computes an update value asynchronously. It receives the
// slice value and full state as of the moment the producer runs.
type Producer func(ctx context.Context, prev interface{}, state State) (interface{}, error)

// DispatchAsync awaits the producer, then performs a synchronous full
// dispatch with the produced value. A producer error or an expired
// context leaves the state untouched and is returned to the caller. A
// producer that resolves after newer dispatches have landed still
// applies its value; staleness checks belong to the caller.
func (d *Dispatcher) DispatchAsync(ctx context.Context, produce Producer) error {
	return d.dispatchAsync(ctx, produce, false)
}

// DispatchAsyncPartial is DispatchAsync with partial-merge semantics.
func (d *Dispatcher) DispatchAsyncPartial(ctx context.Context, produce Producer) error {
	return d.dispatchAsync(ctx, produce, true)
}

func (d *Dispatcher) dispatchAsync(ctx context.Context, produce Producer, partial bool) error {
	if d.store.isClosed() {
		return errors.StoreClosed()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	state := d.store.GetState()
	value, err := produce(ctx, state[d.key], state)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if partial {
		return d.store.UpdatePartial(d.key, value)
	}
	return d.store.Update(d.key, value)
}

// Names holds the generated JS-style dispatcher names for one slice,
// kept for tooling that mirrors the original naming scheme.
type Names struct {
	Full         string
	Partial      string
	Async        string
	AsyncPartial string
}

// Names returns the deterministic name set for this dispatcher's slice:
// dispatch<K>, dispatchPartial<K>, dispatchAsync<K>,
// dispatchAsyncPartial<K> with K the capitalized slice key.
func (d *Dispatcher) Names() Names {
	k := capitalize(d.key)
	return Names{
		Full:         "dispatch" + k,
		Partial:      "dispatchPartial" + k,
		Async:        "dispatchAsync" + k,
		AsyncPartial: "dispatchAsyncPartial" + k,
	}
}

// capitalize uppercases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
