package syntax

// EndOfInput is the sentinel the cursor reports once the canonical pattern is
// exhausted. It is distinct from every accepted symbol, so grammar rules can
// test for exhaustion without a separate flag.
const EndOfInput byte = 0x00

// Cursor is a single-character lookahead cursor over a canonical pattern.
// It only ever advances; reading past the end pins the lookahead to
// EndOfInput.
type Cursor struct {
	pattern string
	pos     int
	ch      byte
}

// NewCursor returns a cursor primed on the first character of pattern.
func NewCursor(pattern string) *Cursor {
	c := &Cursor{pattern: pattern}
	c.Next()
	return c
}

// Next advances the cursor one character and updates the lookahead.
func (c *Cursor) Next() {
	if c.pos >= len(c.pattern) {
		c.ch = EndOfInput
		return
	}
	c.ch = c.pattern[c.pos]
	c.pos++
}

// Char returns the current lookahead character.
func (c *Cursor) Char() byte {
	return c.ch
}

// Pos returns the number of characters consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Done reports whether the input is exhausted.
func (c *Cursor) Done() bool {
	return c.ch == EndOfInput
}
