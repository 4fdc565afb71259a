package shapeparser

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// ShapeKind discriminates the Shape variants.
type ShapeKind string

const (
	KindSquare ShapeKind = "square"
	KindCircle ShapeKind = "circle"
)

// labelDescription names the label pattern a shape kind requires.
func (k ShapeKind) labelDescription() string {
	switch k {
	case KindSquare:
		return "numeric"
	case KindCircle:
		return "uppercase"
	default:
		return "unknown"
	}
}

func (k ShapeKind) closer() byte {
	if k == KindSquare {
		return ']'
	}
	return ')'
}

// Shape is a parsed square or circle. The set of implementations is closed:
// every Shape is either a *Square or a *Circle.
type Shape interface {
	Label() string
	Kind() ShapeKind
	isShape()
}

// Square is a shape with a numeric label that may contain only squares.
type Square struct {
	label    string
	children []*Square
}

// NewSquare creates a square, failing with a *LabelError unless label is one
// or more ASCII digits.
func NewSquare(label string) (*Square, error) {
	if !isNumericLabel(label) {
		return nil, newLabelError(label, KindSquare, Position{})
	}
	return &Square{label: label}, nil
}

// Label returns the square's numeric label.
func (s *Square) Label() string { return s.label }

// Kind always returns KindSquare.
func (s *Square) Kind() ShapeKind { return KindSquare }

func (s *Square) isShape() {}

// Children returns the inner squares in source order.
func (s *Square) Children() []*Square {
	out := make([]*Square, len(s.children))
	copy(out, s.children)
	return out
}

// Add appends child to the square. Only non-nil squares with a valid label
// are accepted.
func (s *Square) Add(child Shape) error {
	sq, ok := child.(*Square)
	if !ok || sq == nil {
		return newKindMismatchError(KindSquare, child)
	}
	if err := checkLabel(sq); err != nil {
		return err
	}
	s.children = append(s.children, sq)
	return nil
}

// Circle is a shape with an uppercase label that may contain squares and circles.
type Circle struct {
	label    string
	children []Shape
}

// NewCircle creates a circle, failing with a *LabelError unless label is one
// or more uppercase ASCII letters.
func NewCircle(label string) (*Circle, error) {
	if !isUpperLabel(label) {
		return nil, newLabelError(label, KindCircle, Position{})
	}
	return &Circle{label: label}, nil
}

// Label returns the circle's uppercase label.
func (c *Circle) Label() string { return c.label }

// Kind always returns KindCircle.
func (c *Circle) Kind() ShapeKind { return KindCircle }

func (c *Circle) isShape() {}

// Children returns the inner shapes in source order.
func (c *Circle) Children() []Shape {
	out := make([]Shape, len(c.children))
	copy(out, c.children)
	return out
}

// Add appends child to the circle. Only non-nil squares and circles with a
// valid label are accepted.
func (c *Circle) Add(child Shape) error {
	if isNilShape(child) {
		return newKindMismatchError(KindCircle, child)
	}
	if err := checkLabel(child); err != nil {
		return err
	}
	c.children = append(c.children, child)
	return nil
}

// Container is the ordered collection of top-level shapes returned by a parse.
type Container struct {
	shapes []Shape
}

// Shapes returns the top-level shapes in source order.
func (c *Container) Shapes() []Shape {
	out := make([]Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

// Len returns the number of top-level shapes.
func (c *Container) Len() int { return len(c.shapes) }

// Add appends a top-level shape.
func (c *Container) Add(s Shape) error {
	if isNilShape(s) {
		return newKindMismatchError("", s)
	}
	if err := checkLabel(s); err != nil {
		return err
	}
	c.shapes = append(c.shapes, s)
	return nil
}

// Walk visits every shape in c depth-first in source order. Top-level shapes
// have depth 1. Returning false from fn skips the children of that shape.
func Walk(c *Container, fn func(s Shape, depth int) bool) {
	for _, s := range c.shapes {
		walkShape(s, 1, fn)
	}
}

func walkShape(s Shape, depth int, fn func(Shape, int) bool) {
	if !fn(s, depth) {
		return
	}
	switch v := s.(type) {
	case *Square:
		for _, child := range v.children {
			walkShape(child, depth+1, fn)
		}
	case *Circle:
		for _, child := range v.children {
			walkShape(child, depth+1, fn)
		}
	}
}

func isNilShape(s Shape) bool {
	switch v := s.(type) {
	case *Square:
		return v == nil
	case *Circle:
		return v == nil
	default:
		return true
	}
}

// checkLabel rejects shapes whose label was never set through NewSquare or
// NewCircle, such as zero values. Descendants were checked when they were added.
func checkLabel(s Shape) error {
	if validLabel(s.Label(), s.Kind()) {
		return nil
	}
	return newLabelError(s.Label(), s.Kind(), Position{})
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }

func isAlphanumeric(ch byte) bool { return isDigit(ch) || isUpper(ch) || isLower(ch) }

func isNumericLabel(label string) bool {
	if label == "" {
		return false
	}
	for i := 0; i < len(label); i++ {
		if !isDigit(label[i]) {
			return false
		}
	}
	return true
}

func isUpperLabel(label string) bool {
	if label == "" {
		return false
	}
	for i := 0; i < len(label); i++ {
		if !isUpper(label[i]) {
			return false
		}
	}
	return true
}

func validLabel(label string, kind ShapeKind) bool {
	if kind == KindSquare {
		return isNumericLabel(label)
	}
	return isUpperLabel(label)
}
