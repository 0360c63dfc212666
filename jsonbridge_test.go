package toon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSONPrimitives(t *testing.T) {
	v, err := FromJSON(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	v, err = FromJSON(true)
	require.NoError(t, err)
	assert.True(t, v.Equal(Bool(true)))

	v, err = FromJSON("hello")
	require.NoError(t, err)
	assert.True(t, v.Equal(Str("hello")))
}

func TestFromJSONNumberPrefersInt64(t *testing.T) {
	v, err := FromJSON(json.Number("42"))
	require.NoError(t, err)
	n, ok := v.AsNumber()
	require.True(t, ok)
	assert.Equal(t, NumberI64, n.Kind)
	assert.Equal(t, int64(42), n.I64)
}

func TestFromJSONNumberFallsBackToFloat(t *testing.T) {
	v, err := FromJSON(json.Number("1.5"))
	require.NoError(t, err)
	n, ok := v.AsNumber()
	require.True(t, ok)
	assert.Equal(t, NumberF64, n.Kind)
	assert.Equal(t, 1.5, n.F64)
}

func TestFromJSONArray(t *testing.T) {
	v, err := FromJSON([]any{json.Number("1"), "x", true})
	require.NoError(t, err)
	want := ArrayOf([]Value{Int64(1), Str("x"), Bool(true)})
	assert.True(t, v.Equal(want), "got %#v", v)
}

func TestFromJSONObject(t *testing.T) {
	v, err := FromJSON(map[string]any{"a": json.Number("1")})
	require.NoError(t, err)
	field, ok := v.Field("a")
	require.True(t, ok)
	assert.True(t, field.Equal(Int64(1)))
}

func TestToJSONProjectsPlainGoValues(t *testing.T) {
	v := ObjectOf([]Pair{
		{"a", Int64(1)},
		{"b", ArrayOf([]Value{Str("x"), Bool(true), Null()})},
	})
	out := ToJSON(v)
	m, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(1), m["a"])
	arr, ok := m["b"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"x", true, nil}, arr)
}

func TestFromJSONUnsupportedType(t *testing.T) {
	_, err := FromJSON(make(chan int))
	assert.Error(t, err)
}
