package shapeparser

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel causes carried by every shapeparser error. Match them with errors.Is.
var (
	ErrUnexpectedCharacter  = errors.New("unexpected character")
	ErrInvalidLabel         = errors.New("invalid label")
	ErrInvalidSquareContent = errors.New("invalid content inside square")
	ErrInvalidCircleContent = errors.New("invalid content inside circle")
	ErrShapeKindMismatch    = errors.New("shape kind mismatch")
	ErrNestingTooDeep       = errors.New("nesting too deep")
	ErrGrammar              = errors.New("grammar error")
)

// ParseError is the base error type for all shapeparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// UnexpectedCharError reports a character where a new top-level shape was expected.
type UnexpectedCharError struct {
	ParseError
	Char rune
}

// LabelError reports a label that does not match the pattern for its shape
// kind. Label holds the captured alphanumeric run and may be empty.
type LabelError struct {
	ParseError
	Label    string
	Expected ShapeKind
}

// ContentError reports content inside a square or circle that is neither a
// permitted nested shape nor the closing delimiter.
type ContentError struct {
	ParseError
	Shape ShapeKind
	Got   rune // zero when AtEOF
	AtEOF bool
}

// KindMismatchError reports an attempt to add a child the parent cannot hold.
// Parent is empty for a Container.
type KindMismatchError struct {
	ParseError
	Parent ShapeKind
	Child  string
}

// DepthError reports a shape opened beyond the configured nesting limit.
type DepthError struct {
	ParseError
	Limit int
}

// GrammarError reports a failure of the declarative grammar.
type GrammarError struct{ ParseError }

func newUnexpectedCharError(src string, pos Position) *UnexpectedCharError {
	ch := decodeChar(src, pos.Offset)
	return &UnexpectedCharError{
		ParseError: ParseError{
			Message: fmt.Sprintf("unexpected character %q", ch),
			Pos:     pos,
			Cause:   ErrUnexpectedCharacter,
		},
		Char: ch,
	}
}

func newLabelError(label string, kind ShapeKind, pos Position) *LabelError {
	var msg string
	if label == "" {
		msg = fmt.Sprintf("%s label must not be empty", kind)
	} else {
		msg = fmt.Sprintf("%s label %q must be %s", kind, label, kind.labelDescription())
	}
	return &LabelError{
		ParseError: ParseError{Message: msg, Pos: pos, Cause: ErrInvalidLabel},
		Label:      label,
		Expected:   kind,
	}
}

func newContentError(kind ShapeKind, src string, pos Position) *ContentError {
	cause := ErrInvalidSquareContent
	allowed := "'[' or ']'"
	if kind == KindCircle {
		cause = ErrInvalidCircleContent
		allowed = "'[', '(' or ')'"
	}

	e := &ContentError{
		ParseError: ParseError{Pos: pos, Cause: cause},
		Shape:      kind,
	}
	if pos.Offset >= len(src) {
		e.AtEOF = true
		e.Message = fmt.Sprintf("%s: expected %s, got end of input", cause, allowed)
		return e
	}
	e.Got = decodeChar(src, pos.Offset)
	e.Message = fmt.Sprintf("%s: expected %s, got %q", cause, allowed, e.Got)
	return e
}

func newKindMismatchError(parent ShapeKind, child Shape) *KindMismatchError {
	var childDesc string
	switch v := child.(type) {
	case nil:
		childDesc = "nil"
	case *Square:
		childDesc = string(KindSquare)
		if v == nil {
			childDesc = "nil square"
		}
	case *Circle:
		childDesc = string(KindCircle)
		if v == nil {
			childDesc = "nil circle"
		}
	default:
		childDesc = fmt.Sprintf("%T", child)
	}
	parentDesc := string(parent)
	if parent == "" {
		parentDesc = "container"
	}
	return &KindMismatchError{
		ParseError: ParseError{
			Message: fmt.Sprintf("%s cannot contain %s", parentDesc, childDesc),
			Cause:   ErrShapeKindMismatch,
		},
		Parent: parent,
		Child:  childDesc,
	}
}

func newDepthError(limit int, pos Position) *DepthError {
	return &DepthError{
		ParseError: ParseError{
			Message: fmt.Sprintf("shapes nested deeper than %d", limit),
			Pos:     pos,
			Cause:   ErrNestingTooDeep,
		},
		Limit: limit,
	}
}

// decodeChar returns the character at offset, decoding UTF-8 so that
// non-ASCII input is reported as written.
func decodeChar(src string, offset int) rune {
	if offset >= len(src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(src[offset:])
	return r
}
