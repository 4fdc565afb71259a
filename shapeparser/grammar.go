package shapeparser

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The notation as a declarative grammar. Labels are lexed as any
// alphanumeric run, as the hand-written parser scans them, and checked by
// the shape constructors afterwards.

type grammarContainer struct {
	Shapes []*grammarShape `@@*`
}

type grammarShape struct {
	Square *grammarSquare `  @@`
	Circle *grammarCircle `| @@`
}

type grammarSquare struct {
	Pos      lexer.Position
	Label    string           `"[" @Label`
	Children []*grammarSquare `@@* "]"`
}

type grammarCircle struct {
	Pos      lexer.Position
	Label    string          `"(" @Label`
	Children []*grammarShape `@@* ")"`
}

var shapeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Label", Pattern: `[A-Za-z0-9]+`},
	{Name: "Punct", Pattern: `[\[\]()]`},
})

var grammarParser = participle.MustBuild[grammarContainer](
	participle.Lexer(shapeLexer),
)

// EBNF returns the grammar of the notation in EBNF form.
func EBNF() string {
	return grammarParser.String()
}

// ParseGrammar parses input with the declarative grammar and builds the tree
// through NewSquare and NewCircle. It accepts the same inputs as Parse and
// returns equal trees. Structural failures are reported as *GrammarError and
// label failures as *LabelError.
func ParseGrammar(input string) (*Container, error) {
	ast, err := grammarParser.ParseString("", input)
	if err != nil {
		return nil, newGrammarError(err)
	}

	container := &Container{}
	for _, gs := range ast.Shapes {
		shape, err := gs.build()
		if err != nil {
			return nil, err
		}
		if err := container.Add(shape); err != nil {
			return nil, err
		}
	}
	return container, nil
}

func (g *grammarShape) build() (Shape, error) {
	if g.Square != nil {
		return g.Square.build()
	}
	return g.Circle.build()
}

func (g *grammarSquare) build() (*Square, error) {
	square, err := NewSquare(g.Label)
	if err != nil {
		return nil, withLabelPos(err, g.Pos)
	}
	for _, gc := range g.Children {
		child, err := gc.build()
		if err != nil {
			return nil, err
		}
		if err := square.Add(child); err != nil {
			return nil, err
		}
	}
	return square, nil
}

func (g *grammarCircle) build() (*Circle, error) {
	circle, err := NewCircle(g.Label)
	if err != nil {
		return nil, withLabelPos(err, g.Pos)
	}
	for _, gc := range g.Children {
		child, err := gc.build()
		if err != nil {
			return nil, err
		}
		if err := circle.Add(child); err != nil {
			return nil, err
		}
	}
	return circle, nil
}

// withLabelPos places a constructor's label error just past the opener at pos.
func withLabelPos(err error, pos lexer.Position) error {
	var le *LabelError
	if errors.As(err, &le) {
		le.Pos = Position{Line: pos.Line, Column: pos.Column + 1, Offset: pos.Offset + 1}
	}
	return err
}

func newGrammarError(err error) *GrammarError {
	ge := &GrammarError{ParseError{Message: err.Error(), Cause: ErrGrammar}}
	var perr participle.Error
	if errors.As(err, &perr) {
		p := perr.Position()
		ge.Message = perr.Message()
		ge.Pos = Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
	}
	return ge
}
