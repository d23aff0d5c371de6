package parser_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/golox/pkg/parser"
)

func TestCursorWalksRunes(t *testing.T) {
	c := parser.NewCursor("aé€b")

	assert.Equal(t, 'a', c.Peek())
	assert.Equal(t, 'é', c.PeekNext())
	assert.Equal(t, 0, c.Offset())

	assert.Equal(t, 'a', c.Advance())
	assert.Equal(t, 1, c.Offset())

	assert.Equal(t, 'é', c.Advance())
	assert.Equal(t, 3, c.Offset(), "é is two bytes")

	assert.Equal(t, '€', c.Peek())
	assert.Equal(t, 'b', c.PeekNext())
	assert.Equal(t, '€', c.Advance())
	assert.Equal(t, 6, c.Offset(), "€ is three bytes")

	assert.Equal(t, "é€", c.Slice(1))

	assert.Equal(t, 'b', c.Advance())
	assert.True(t, c.AtEnd())
	assert.Equal(t, rune(-1), c.Peek())
	assert.Equal(t, rune(-1), c.PeekNext())
	assert.Equal(t, rune(-1), c.Advance(), "advance at end stays put")
	assert.Equal(t, 7, c.Offset())
}

func TestCursorMatch(t *testing.T) {
	c := parser.NewCursor("=!")

	assert.False(t, c.Match('!'))
	assert.Equal(t, 0, c.Offset())
	assert.True(t, c.Match('='))
	assert.True(t, c.Match('!'))
	assert.False(t, c.Match('='), "nothing left to match")
}

func TestCursorLine(t *testing.T) {
	c := parser.NewCursor("a\nb")
	require.Equal(t, 1, c.Line())
	c.NewLine()
	assert.Equal(t, 2, c.Line())
}

func TestCursorInvalidUTF8(t *testing.T) {
	c := parser.NewCursor("\xffa")

	assert.Equal(t, utf8.RuneError, c.Advance())
	assert.Equal(t, 1, c.Offset(), "invalid byte has width one")
	assert.Equal(t, 'a', c.Peek())
}

func TestCursorEmpty(t *testing.T) {
	c := parser.NewCursor("")
	assert.True(t, c.AtEnd())
	assert.Equal(t, rune(-1), c.Peek())
	assert.Equal(t, "", c.Slice(0))
}
