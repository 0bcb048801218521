package equality

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEqualPrimitives(t *testing.T) {
	tests := []struct {
		name string
		a    interface{}
		b    interface{}
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs value", nil, 1, false},
		{"value vs nil", "x", nil, false},
		{"equal ints", 42, 42, true},
		{"unequal ints", 42, 43, false},
		{"equal strings", "hello", "hello", true},
		{"unequal strings", "hello", "world", false},
		{"equal floats", 1.5, 1.5, true},
		{"equal bools", true, true, true},
		{"int vs string", 1, "1", false},
		{"int vs float", 1, 1.0, false},
		{"string vs slice", "ab", []string{"ab"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestEqualCollections(t *testing.T) {
	tests := []struct {
		name string
		a    interface{}
		b    interface{}
		want bool
	}{
		{
			"nested map and slice",
			map[string]interface{}{"a": []interface{}{1, map[string]interface{}{"b": 2}}},
			map[string]interface{}{"a": []interface{}{1, map[string]interface{}{"b": 2}}},
			true,
		},
		{
			"order-sensitive slices",
			[]int{1, 2, 3},
			[]int{3, 2, 1},
			false,
		},
		{
			"slice length mismatch",
			[]int{1, 2},
			[]int{1, 2, 3},
			false,
		},
		{
			"map key order irrelevant",
			map[string]int{"a": 1, "b": 2},
			map[string]int{"b": 2, "a": 1},
			true,
		},
		{
			"map extra key",
			map[string]int{"a": 1},
			map[string]int{"a": 1, "b": 2},
			false,
		},
		{
			"map value mismatch",
			map[string]interface{}{"a": 1},
			map[string]interface{}{"a": 2},
			false,
		},
		{
			"slice vs map",
			[]interface{}{1},
			map[string]interface{}{"0": 1},
			false,
		},
		{
			"empty slices",
			[]int{},
			[]int{},
			true,
		},
		{
			"nil vs empty map",
			map[string]int(nil),
			map[string]int{},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestEqualIdenticalReference(t *testing.T) {
	m := map[string]interface{}{"a": 1}
	assert.True(t, Equal(m, m))

	s := []int{1, 2, 3}
	assert.True(t, Equal(s, s))
}

func TestEqualTime(t *testing.T) {
	t1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, Equal(t1, t2))

	// Same instant in a different location still compares equal.
	t3 := t1.In(time.FixedZone("plus2", 2*60*60))
	assert.True(t, Equal(t1, t3))

	t4 := t1.Add(time.Second)
	assert.False(t, Equal(t1, t4))
}

func TestEqualStructs(t *testing.T) {
	type point struct {
		X, Y int
	}
	assert.True(t, Equal(point{1, 2}, point{1, 2}))
	assert.False(t, Equal(point{1, 2}, point{2, 1}))

	type other struct {
		X, Y int
	}
	assert.False(t, Equal(point{1, 2}, other{1, 2}))
}

func TestEqualPointers(t *testing.T) {
	a := &struct{ N int }{N: 1}
	b := &struct{ N int }{N: 1}
	c := &struct{ N int }{N: 2}

	assert.True(t, Equal(a, a))
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))

	var nilA, nilB *struct{ N int }
	assert.True(t, Equal(nilA, nilB))
	assert.False(t, Equal(nilA, a))
}

func TestEqualFuncs(t *testing.T) {
	// Funcs have no usable identity, so even the same value compared to
	// itself is unequal; only nil funcs match.
	f := func() {}
	assert.False(t, Equal(f, f))

	var nilF func()
	assert.True(t, Equal(nilF, nilF))
}

func TestEqualCyclesAreConservative(t *testing.T) {
	// Two self-referential maps of the same shape: the cycle check
	// reports unequal rather than recursing forever.
	m1 := map[string]interface{}{"n": 1}
	m1["self"] = m1
	m2 := map[string]interface{}{"n": 1}
	m2["self"] = m2

	assert.False(t, Equal(m1, m2))

	// A value compared against itself is still an identity hit.
	assert.True(t, Equal(m1, m1))
}
