package parser

import "unicode/utf8"

const eof = -1

// Cursor walks a source string one rune at a time.
//
// It keeps the byte offset and the decoded rune under the cursor together,
// so classification never re-decodes from the start of the input. Invalid
// UTF-8 decodes as utf8.RuneError with a width of one byte.
type Cursor struct {
	input  string // Input string being scanned
	length int    // Length of input string
	pos    int    // Byte offset of the rune under the cursor
	ch     rune   // Rune under the cursor, eof at the end
	width  int    // Width of ch in bytes
	line   int    // Current 1-based line
}

// NewCursor creates a cursor positioned at the start of input, line 1.
func NewCursor(input string) *Cursor {
	c := &Cursor{
		input:  input,
		length: len(input),
		line:   1,
	}
	c.decode()
	return c
}

func (c *Cursor) decode() {
	if c.pos >= c.length {
		c.ch, c.width = eof, 0
		return
	}
	c.ch, c.width = utf8.DecodeRuneInString(c.input[c.pos:])
}

// Peek returns the rune under the cursor without consuming it.
func (c *Cursor) Peek() rune {
	return c.ch
}

// PeekNext returns the rune after the one under the cursor.
func (c *Cursor) PeekNext() rune {
	next := c.pos + c.width
	if c.width == 0 || next >= c.length {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(c.input[next:])
	return r
}

// Advance consumes and returns the rune under the cursor.
// At the end of input it returns eof and does not move.
func (c *Cursor) Advance() rune {
	r := c.ch
	c.pos += c.width
	c.decode()
	return r
}

// Match consumes the rune under the cursor if it equals r.
func (c *Cursor) Match(r rune) bool {
	if c.ch == eof || c.ch != r {
		return false
	}
	c.Advance()
	return true
}

// AtEnd reports whether the whole input has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= c.length
}

// Offset returns the byte offset of the rune under the cursor.
func (c *Cursor) Offset() int {
	return c.pos
}

// Line returns the current line.
func (c *Cursor) Line() int {
	return c.line
}

// NewLine records that a newline was consumed.
func (c *Cursor) NewLine() {
	c.line++
}

// Slice returns the input between start and the cursor.
func (c *Cursor) Slice(start int) string {
	return c.input[start:c.pos]
}
