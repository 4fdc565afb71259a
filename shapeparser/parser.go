package shapeparser

import (
	"io"
	"log/slog"
)

// Parse parses shape notation with default options and returns the Container
// of top-level shapes. Returns an error wrapping one of the Err* sentinels on
// failure.
func Parse(input string) (*Container, error) {
	return NewParser(Options{}).Parse(input)
}

// Parser parses shape notation. It holds no per-call state and is safe for
// concurrent use.
type Parser struct {
	strategy Strategy
	maxDepth int
	log      *slog.Logger
}

// NewParser creates a Parser from opts.
func NewParser(opts Options) *Parser {
	p := &Parser{
		strategy: opts.Strategy,
		maxDepth: opts.MaxDepth,
		log:      opts.Logger,
	}
	if p.strategy == "" {
		p.strategy = Recursive
	}
	if p.log == nil {
		p.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

// Parse parses the whole of input. Every byte must belong to a shape.
func (p *Parser) Parse(input string) (*Container, error) {
	p.log.Debug("parsing shapes", "strategy", p.strategy, "bytes", len(input))

	d := &descent{cur: newCursor(input), maxDepth: p.maxDepth}

	var (
		c   *Container
		err error
	)
	switch p.strategy {
	case Iterative:
		c, err = d.parseIterative()
	default:
		c, err = d.parseRecursive()
	}
	if err != nil {
		p.log.Debug("parse failed", "strategy", p.strategy, "error", err)
		return nil, err
	}

	p.log.Debug("parsed shapes", "strategy", p.strategy, "count", c.Len())
	return c, nil
}

// descent carries the state of one parse call.
type descent struct {
	cur      *cursor
	maxDepth int
}

func (d *descent) parseRecursive() (*Container, error) {
	container := &Container{}
	for !d.cur.atEnd() {
		var (
			shape Shape
			err   error
		)
		switch d.cur.peek() {
		case '[':
			shape, err = d.parseSquare(1)
		case '(':
			shape, err = d.parseCircle(1)
		default:
			return nil, newUnexpectedCharError(d.cur.src, d.cur.position())
		}
		if err != nil {
			return nil, err
		}
		if err := container.Add(shape); err != nil {
			return nil, err
		}
	}
	return container, nil
}

// parseSquare parses '[' numericLabel square* ']' with the cursor on '['.
func (d *descent) parseSquare(depth int) (*Square, error) {
	shape, err := d.open(KindSquare, depth)
	if err != nil {
		return nil, err
	}
	square := shape.(*Square)

	for {
		if d.cur.atEnd() {
			return nil, newContentError(KindSquare, d.cur.src, d.cur.position())
		}
		switch d.cur.peek() {
		case ']':
			d.cur.advance()
			return square, nil
		case '[':
			child, err := d.parseSquare(depth + 1)
			if err != nil {
				return nil, err
			}
			if err := square.Add(child); err != nil {
				return nil, err
			}
		default:
			return nil, newContentError(KindSquare, d.cur.src, d.cur.position())
		}
	}
}

// parseCircle parses '(' upperLabel (square | circle)* ')' with the cursor on '('.
func (d *descent) parseCircle(depth int) (*Circle, error) {
	shape, err := d.open(KindCircle, depth)
	if err != nil {
		return nil, err
	}
	circle := shape.(*Circle)

	for {
		if d.cur.atEnd() {
			return nil, newContentError(KindCircle, d.cur.src, d.cur.position())
		}
		var child Shape
		switch d.cur.peek() {
		case ')':
			d.cur.advance()
			return circle, nil
		case '[':
			child, err = d.parseSquare(depth + 1)
		case '(':
			child, err = d.parseCircle(depth + 1)
		default:
			return nil, newContentError(KindCircle, d.cur.src, d.cur.position())
		}
		if err != nil {
			return nil, err
		}
		if err := circle.Add(child); err != nil {
			return nil, err
		}
	}
}

// open consumes the opening delimiter and label of a shape of the given kind
// at depth, leaving the cursor on the first byte of its content.
func (d *descent) open(kind ShapeKind, depth int) (Shape, error) {
	if d.maxDepth > 0 && depth > d.maxDepth {
		return nil, newDepthError(d.maxDepth, d.cur.position())
	}
	d.cur.advance() // consume opener

	pos := d.cur.position()
	label, err := d.cur.scanLabel(kind)
	if err != nil {
		return nil, err
	}

	// scanLabel has already checked the label; the constructors check again
	// so a parsed shape never bypasses them.
	var shape Shape
	if kind == KindSquare {
		shape, err = NewSquare(label)
	} else {
		shape, err = NewCircle(label)
	}
	if err != nil {
		if le, ok := err.(*LabelError); ok {
			le.Pos = pos
		}
		return nil, err
	}
	return shape, nil
}
