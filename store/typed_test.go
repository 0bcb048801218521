package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldbig/redux-lite/errors"
	"github.com/oldbig/redux-lite/store"
)

type profile struct {
	Name string `mapstructure:"name"`
	Age  int    `mapstructure:"age"`
}

func TestSliceOfRejectsUndeclaredKey(t *testing.T) {
	s := store.New(store.Definition{"user": nil}).Bind()

	_, err := store.SliceOf[profile](s, "missing")
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownSlice))
}

func TestSliceGetDecodesRecord(t *testing.T) {
	s := store.New(store.Definition{
		"user": map[string]interface{}{"name": "A", "age": 30},
	}).Bind()

	slice, err := store.SliceOf[profile](s, "user")
	require.NoError(t, err)

	got, err := slice.Get()
	require.NoError(t, err)
	assert.Equal(t, profile{Name: "A", Age: 30}, got)
}

func TestSliceGetDirectTypedValue(t *testing.T) {
	s := store.New(store.Definition{"user": store.Optional(nil)}).Bind()

	slice, err := store.SliceOf[profile](s, "user")
	require.NoError(t, err)

	// Nil slice yields the zero value.
	got, err := slice.Get()
	require.NoError(t, err)
	assert.Equal(t, profile{}, got)

	// A value stored as the concrete type round-trips without decoding.
	require.NoError(t, slice.Set(profile{Name: "B", Age: 1}))
	got, err = slice.Get()
	require.NoError(t, err)
	assert.Equal(t, profile{Name: "B", Age: 1}, got)
}

func TestSliceMerge(t *testing.T) {
	s := store.New(store.Definition{
		"user": map[string]interface{}{"name": "A", "age": 30},
	}).Bind()

	slice, err := store.SliceOf[profile](s, "user")
	require.NoError(t, err)

	require.NoError(t, slice.Merge(map[string]interface{}{"age": 31}))

	got, err := slice.Get()
	require.NoError(t, err)
	assert.Equal(t, profile{Name: "A", Age: 31}, got)
}

func TestSliceApply(t *testing.T) {
	s := store.New(store.Definition{
		"user": map[string]interface{}{"name": "A", "age": 30},
	}).Bind()

	slice, err := store.SliceOf[profile](s, "user")
	require.NoError(t, err)

	require.NoError(t, slice.Apply(func(prev profile) profile {
		prev.Age++
		return prev
	}))

	got, err := slice.Get()
	require.NoError(t, err)
	assert.Equal(t, profile{Name: "A", Age: 31}, got)
}

func TestSliceClear(t *testing.T) {
	s := store.New(store.Definition{
		"user": store.Optional(map[string]interface{}{"name": "A"}),
	}).Bind()

	slice, err := store.SliceOf[profile](s, "user")
	require.NoError(t, err)

	require.NoError(t, slice.Clear())

	val, present := s.GetState()["user"]
	assert.True(t, present)
	assert.Nil(t, val)
}

func TestSliceGetOnClosedStore(t *testing.T) {
	s := store.New(store.Definition{"user": nil}).Bind()
	slice, err := store.SliceOf[profile](s, "user")
	require.NoError(t, err)

	s.Close()

	_, err = slice.Get()
	assert.True(t, errors.Is(err, errors.ErrCodeStoreClosed))
}
