package lexer

import (
	"github.com/orizon-lang/lexscan/internal/position"
)

// Cursor walks the characters of an input and tracks the line and column
// of the read position.
type Cursor struct {
	input   []rune
	index   int               // read index into input
	pos     position.Position // position of input[index]
	prevPos position.Position // position of the last consumed character
}

// Mark is a snapshot of a Cursor. Restoring it resets the read index and
// both positions together.
type Mark struct {
	index   int
	pos     position.Position
	prevPos position.Position
}

// NewCursor creates a cursor at the start of input. Invalid UTF-8 is
// decoded as U+FFFD, one replacement character per bad byte sequence.
func NewCursor(input string) *Cursor {
	return &Cursor{
		input:   []rune(input),
		pos:     position.Start,
		prevPos: position.Position{Line: 1, Column: 0},
	}
}

// Peek returns the character at the read index without consuming it
func (c *Cursor) Peek() (rune, bool) {
	if c.index < len(c.input) {
		return c.input[c.index], true
	}
	return 0, false
}

// Advance consumes and returns the character at the read index. At the
// end of input it returns false and leaves the cursor unchanged.
func (c *Cursor) Advance() (rune, bool) {
	if c.index >= len(c.input) {
		return 0, false
	}
	ch := c.input[c.index]
	c.index++
	c.prevPos = c.pos
	c.pos = c.pos.Advance(ch)
	return ch, true
}

// Mark captures the current cursor state
func (c *Cursor) Mark() Mark {
	return Mark{index: c.index, pos: c.pos, prevPos: c.prevPos}
}

// Restore rolls the cursor back to m
func (c *Cursor) Restore(m Mark) {
	c.index = m.index
	c.pos = m.pos
	c.prevPos = m.prevPos
}

// Pos returns the position of the next character to be read
func (c *Cursor) Pos() position.Position {
	return c.pos
}

// PrevPos returns the position of the most recently consumed character
func (c *Cursor) PrevPos() position.Position {
	return c.prevPos
}

// Done reports whether every character has been consumed
func (c *Cursor) Done() bool {
	return c.index >= len(c.input)
}

// Len returns the number of characters in the input
func (c *Cursor) Len() int {
	return len(c.input)
}
