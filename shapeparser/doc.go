// Package shapeparser implements a parser for the nested shape notation.
//
// The notation describes two kinds of shapes:
//
//   - Squares are written [label ...] with a label of one or more ASCII
//     digits. A square may contain only squares.
//   - Circles are written (LABEL ...) with a label of one or more uppercase
//     ASCII letters. A circle may contain squares and circles.
//
// Shapes nest directly after the label with no separators, and any number of
// shapes may appear at the top level:
//
//	[1](A)(DOG[15](CAT[2][3]))
//
// No whitespace is permitted anywhere. Parsing stops at the first error; there
// is no partial result.
//
// The parser is a hand-rolled recursive-descent parser that scans the input
// directly, without a separate token stream. Two strategies are available:
//
//   - Recursive: each grammar rule is a function and nesting is Go recursion.
//   - Iterative: the same rules driven by an explicit stack of open shapes, so
//     memory is bounded by the heap rather than the goroutine stack.
//
// Both strategies produce the same trees and the same errors.
//
// Usage:
//
//	c, err := shapeparser.Parse("(DOG[15])")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	circle := c.Shapes()[0].(*shapeparser.Circle)
//	fmt.Println(circle.Label(), len(circle.Children()))
//
// A declarative form of the grammar is available through EBNF and
// ParseGrammar.
package shapeparser
