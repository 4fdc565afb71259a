package shapeparser

import "github.com/emirpasic/gods/stacks/arraystack"

// frame is a shape whose closing delimiter has not been reached yet.
type frame struct {
	shape Shape
	depth int
}

// parseIterative applies the same rules as parseRecursive, but keeps open
// shapes on an explicit stack instead of the call stack. A shape is attached
// to its parent when it closes, which preserves source order.
func (d *descent) parseIterative() (*Container, error) {
	container := &Container{}
	pending := arraystack.New()

	for !d.cur.atEnd() {
		top, ok := pending.Peek()
		if !ok {
			var kind ShapeKind
			switch d.cur.peek() {
			case '[':
				kind = KindSquare
			case '(':
				kind = KindCircle
			default:
				return nil, newUnexpectedCharError(d.cur.src, d.cur.position())
			}
			shape, err := d.open(kind, 1)
			if err != nil {
				return nil, err
			}
			pending.Push(&frame{shape: shape, depth: 1})
			continue
		}

		f := top.(*frame)
		kind := f.shape.Kind()
		ch := d.cur.peek()

		switch {
		case ch == kind.closer():
			d.cur.advance()
			pending.Pop()
			if err := attach(pending, container, f.shape); err != nil {
				return nil, err
			}
		case ch == '[' || (ch == '(' && kind == KindCircle):
			childKind := KindSquare
			if ch == '(' {
				childKind = KindCircle
			}
			shape, err := d.open(childKind, f.depth+1)
			if err != nil {
				return nil, err
			}
			pending.Push(&frame{shape: shape, depth: f.depth + 1})
		default:
			return nil, newContentError(kind, d.cur.src, d.cur.position())
		}
	}

	if top, ok := pending.Peek(); ok {
		return nil, newContentError(top.(*frame).shape.Kind(), d.cur.src, d.cur.position())
	}
	return container, nil
}

// attach adds a closed shape to the shape now on top of the stack, or to the
// container when no shape is open.
func attach(pending *arraystack.Stack, container *Container, shape Shape) error {
	top, ok := pending.Peek()
	if !ok {
		return container.Add(shape)
	}
	switch parent := top.(*frame).shape.(type) {
	case *Square:
		return parent.Add(shape)
	case *Circle:
		return parent.Add(shape)
	default:
		return newKindMismatchError(parent.Kind(), shape)
	}
}
