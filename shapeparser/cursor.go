package shapeparser

// cursor is the scan position into a single input. Each parse call owns its
// cursor, so a Parser carries no mutable state between calls.
type cursor struct {
	src  string
	pos  int // current byte offset
	line int // current line (1-based)
	col  int // current column (1-based)
}

func newCursor(src string) *cursor {
	return &cursor{src: src, line: 1, col: 1}
}

func (c *cursor) position() Position {
	return Position{Line: c.line, Column: c.col, Offset: c.pos}
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.src)
}

// peek returns the current byte, or 0 at end of input. Callers that must tell
// a NUL byte from the end check atEnd first.
func (c *cursor) peek() byte {
	if c.atEnd() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) advance() {
	ch := c.src[c.pos]
	c.pos++
	if ch == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
}

// scanLabel consumes the alphanumeric run at the cursor and checks it against
// the label pattern for kind. End of input ends the run without error; an
// empty run fails like any other mismatch. On success the cursor sits on the
// first non-alphanumeric byte.
func (c *cursor) scanLabel(kind ShapeKind) (string, error) {
	start := c.position()
	for !c.atEnd() && isAlphanumeric(c.peek()) {
		c.advance()
	}
	label := c.src[start.Offset:c.pos]
	if !validLabel(label, kind) {
		return "", newLabelError(label, kind, start)
	}
	return label, nil
}
