package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeScalarRoot(t *testing.T) {
	s, err := Encode(Int64(42), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "42", s)
}

func TestEncodeEmptyRootSentinels(t *testing.T) {
	s, err := Encode(EmptyObject(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "{0}:", s)

	s, err = Encode(EmptyArray(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "[0]:", s)
}

func TestEncodeScalarAndInlineArray(t *testing.T) {
	// spec.md section 8, concrete scenario 1.
	v := ObjectOf([]Pair{
		{"a", Int64(1)},
		{"b", ArrayOf([]Value{Bool(true), Str("x")})},
	})
	s, err := Encode(v, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "a: 1\nb[2]: true,x", s)
}

func TestEncodeTabularUsers(t *testing.T) {
	// spec.md section 8, concrete scenario 3.
	v := ObjectOf([]Pair{
		{"users", ArrayOf([]Value{
			ObjectOf([]Pair{{"id", Int64(1)}, {"name", Str("Alice")}}),
			ObjectOf([]Pair{{"id", Int64(2)}, {"name", Str("Bob")}}),
		})},
	})
	s, err := Encode(v, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "users[2]{id,name}:\n  1,Alice\n  2,Bob", s)
}

func TestEncodeQuotingRequired(t *testing.T) {
	// spec.md section 8, concrete scenario 4.
	v := ObjectOf([]Pair{
		{"n", Str("01")},
		{"b", Str("true")},
		{"s", Str("a:b")},
	})
	s, err := Encode(v, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "n: \"01\"\nb: \"true\"\ns: \"a:b\"", s)
}

func TestEncodeNestedEmptyObjectElided(t *testing.T) {
	v := ObjectOf([]Pair{{"a", EmptyObject()}})
	s, err := Encode(v, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "a:", s)
}

func TestEncodeNestedEmptyArray(t *testing.T) {
	v := ObjectOf([]Pair{{"a", EmptyArray()}})
	s, err := Encode(v, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "a[0]:", s)
}

func TestEncodeListItemSharesHyphenLineForPrimitive(t *testing.T) {
	// A nested array field disqualifies the tabular form, forcing the
	// expanded (hyphen-per-item) form this test targets.
	v := ArrayOf([]Value{
		ObjectOf([]Pair{{"id", Int64(1)}, {"tags", ArrayOf([]Value{Str("x")})}}),
	})
	s, err := Encode(v, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "[1]:\n  - id: 1\n    tags[1]: x", s)
}

func TestEncodeListItemNonEmptyNestedObjectDoesNotShareHyphenLine(t *testing.T) {
	// Regression test for the encoder/decoder ambiguity this module
	// fixes: when the first field's value is itself a non-empty plain
	// object, the hyphen line must be bare so the nested object's body
	// can never be confused with the outer object's remaining fields.
	v := ArrayOf([]Value{
		ObjectOf([]Pair{
			{"meta", ObjectOf([]Pair{{"x", Int64(1)}})},
			{"other", Int64(2)},
		}),
	})
	s, err := Encode(v, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "[1]:\n  -\n    meta:\n      x: 1\n    other: 2", s)
}

func TestEncodeListItemEmptyObjectSharesHyphenLine(t *testing.T) {
	v := ArrayOf([]Value{
		ObjectOf([]Pair{{"meta", EmptyObject()}, {"other", Int64(2)}}),
	})
	s, err := Encode(v, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "[1]:\n  - meta:\n    other: 2", s)
}

func TestTabularFieldsRejectsMismatchedKeySets(t *testing.T) {
	elems := []Value{
		ObjectOf([]Pair{{"a", Int64(1)}}),
		ObjectOf([]Pair{{"b", Int64(2)}}),
	}
	_, ok := tabularFields(elems)
	assert.False(t, ok)
}

func TestKeyFoldingSafe(t *testing.T) {
	v := ObjectOf([]Pair{
		{"a", ObjectOf([]Pair{{"b", Int64(1)}})},
	})
	opts := DefaultOptions()
	opts.KeyFolding = KeyFoldingSafe
	s, err := Encode(v, opts)
	require.NoError(t, err)
	assert.Equal(t, "a.b: 1", s)
}

func TestKeyFoldingSafeAbandonsOnSiblingCollision(t *testing.T) {
	// "a.b" is itself a valid bare key (spec.md section 4.1's grammar
	// allows '.'), so it collides textually with what folding "a":
	// {"b":1} would produce. The encoder detects the collision and
	// falls back to structural nesting for "a" rather than silently
	// producing two indistinguishable "a.b" lines with different
	// meanings -- the literal "a.b" field is left as-is, unquoted,
	// since it is independently a well-formed bare key.
	v := ObjectOf([]Pair{
		{"a", ObjectOf([]Pair{{"b", Int64(1)}})},
		{"a.b", Int64(2)},
	})
	opts := DefaultOptions()
	opts.KeyFolding = KeyFoldingSafe
	s, err := Encode(v, opts)
	require.NoError(t, err)
	assert.Equal(t, "a:\n  b: 1\na.b: 2", s)
}
