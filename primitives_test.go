package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsQuotes(t *testing.T) {
	cases := []struct {
		s     string
		delim Delimiter
		want  bool
	}{
		{"", Comma, true},
		{"hello", Comma, false},
		{"-", Comma, true},
		{"-5", Comma, true},
		{" hi", Comma, true},
		{"hi ", Comma, true},
		{"a,b", Comma, true},
		{"a,b", Pipe, false},
		{"a:b", Comma, true},
		{"a[b]", Comma, true},
		{"true", Comma, true},
		{"false", Comma, true},
		{"null", Comma, true},
		{"01", Comma, true},
		{"1.5", Comma, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, needsQuotes(c.s, c.delim), "needsQuotes(%q, %v)", c.s, c.delim)
	}
}

func TestEscapeAndQuote(t *testing.T) {
	assert.Equal(t, `"hello"`, escapeAndQuote("hello"))
	assert.Equal(t, `"a\"b"`, escapeAndQuote(`a"b`))
	assert.Equal(t, `"a\\b"`, escapeAndQuote(`a\b`))
	assert.Equal(t, `"a\nb"`, escapeAndQuote("a\nb"))
	assert.Equal(t, `"ab"`, escapeAndQuote("ab"))
}

func TestCanonicalFloat(t *testing.T) {
	assert.Equal(t, "0", canonicalFloat(0))
	assert.Equal(t, "0", canonicalFloat(-0.0))
	assert.Equal(t, "1.5", canonicalFloat(1.5))
	assert.Equal(t, "1.25", canonicalFloat(1.250))
	assert.Equal(t, "100", canonicalFloat(100.0))
	assert.Equal(t, "-3.14", canonicalFloat(-3.14))
}

func TestKeyNeedsQuotes(t *testing.T) {
	assert.False(t, keyNeedsQuotes("abc"))
	assert.False(t, keyNeedsQuotes("_abc123"))
	assert.False(t, keyNeedsQuotes("a.b.c"))
	assert.True(t, keyNeedsQuotes(""))
	assert.True(t, keyNeedsQuotes("1abc"))
	assert.True(t, keyNeedsQuotes("a b"))
	assert.True(t, keyNeedsQuotes("a-b"))
}

func TestFormatBracketSegment(t *testing.T) {
	assert.Equal(t, "[3]", formatBracketSegment(3, Comma))
	assert.Equal(t, "[3\t]", formatBracketSegment(3, Tab))
	assert.Equal(t, "[3|]", formatBracketSegment(3, Pipe))
}
