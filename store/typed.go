package store

import (
	"github.com/mitchellh/mapstructure"

	"github.com/oldbig/redux-lite/errors"
)

// Slice is the typed accessor for one declared slice. It sits on top of
// the generic dispatch entry points: reads decode the stored value into
// T via mapstructure when needed, writes dispatch through the normal
// pipeline. Unlike plain Update, the typed layer is strict about the
// definition: an undeclared key is rejected at construction.
type Slice[T any] struct {
	store *Store
	key   string
}

// SliceOf builds the typed accessor for a declared slice.
func SliceOf[T any](s *Store, key string) (*Slice[T], error) {
	if !s.def.Has(key) {
		return nil, errors.UnknownSlice(key)
	}
	return &Slice[T]{store: s, key: key}, nil
}

// Key returns the slice name.
func (sl *Slice[T]) Key() string {
	return sl.key
}

// Get returns the current slice value as T. Values stored as T come back
// directly; record values decode through mapstructure. A nil slice value
// returns the zero T.
func (sl *Slice[T]) Get() (T, error) {
	var zero T
	if sl.store.isClosed() {
		return zero, errors.StoreClosed()
	}

	value := sl.store.GetState()[sl.key]
	if value == nil {
		return zero, nil
	}
	if typed, ok := value.(T); ok {
		return typed, nil
	}

	var decoded T
	if err := mapstructure.Decode(value, &decoded); err != nil {
		return zero, errors.DecodeFailed(sl.key, err)
	}
	return decoded, nil
}

// Set dispatches a full replacement with the given value.
func (sl *Slice[T]) Set(value T) error {
	return sl.store.Update(sl.key, value)
}

// Merge dispatches a shallow partial merge of the given record into the
// slice.
func (sl *Slice[T]) Merge(partial map[string]interface{}) error {
	return sl.store.UpdatePartial(sl.key, partial)
}

// Apply dispatches an updater computed from the typed current value.
func (sl *Slice[T]) Apply(fn func(prev T) T) error {
	return sl.store.Update(sl.key, Updater(func(prev interface{}, _ State) interface{} {
		var typed T
		if prev != nil {
			if direct, ok := prev.(T); ok {
				typed = direct
			} else if err := mapstructure.Decode(prev, &typed); err != nil {
				// Undecodable previous value: keep it unchanged rather
				// than fabricating a zero-value update.
				return prev
			}
		}
		return fn(typed)
	}))
}

// Clear dispatches nil into the slice, returning an optional slice to
// its absent state.
func (sl *Slice[T]) Clear() error {
	return sl.store.Update(sl.key, nil)
}
