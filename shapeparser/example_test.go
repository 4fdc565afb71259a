package shapeparser_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/martinemde/shapes/shapeparser"
)

func ExampleParse() {
	c, err := shapeparser.Parse("[1](DOG[15](CAT))")
	if err != nil {
		fmt.Println(err)
		return
	}

	shapeparser.Walk(c, func(s shapeparser.Shape, depth int) bool {
		fmt.Printf("%s%s %s\n", strings.Repeat("  ", depth-1), s.Kind(), s.Label())
		return true
	})
	// Output:
	// square 1
	// circle DOG
	//   square 15
	//   circle CAT
}

func ExampleParse_error() {
	_, err := shapeparser.Parse("[72(HELLO)]")
	fmt.Println(err)
	fmt.Println(errors.Is(err, shapeparser.ErrInvalidSquareContent))
	// Output:
	// line 1, col 4: invalid content inside square: expected '[' or ']', got '('
	// true
}

func ExampleNewParser() {
	p := shapeparser.NewParser(shapeparser.Options{
		Strategy: shapeparser.Iterative,
		MaxDepth: 2,
	})

	_, err := p.Parse("(A(B(C)))")
	var de *shapeparser.DepthError
	if errors.As(err, &de) {
		fmt.Println("limit", de.Limit, "at offset", de.Pos.Offset)
	}
	// Output:
	// limit 2 at offset 4
}

func ExampleCircle_Add() {
	circle, _ := shapeparser.NewCircle("A")
	square, _ := shapeparser.NewSquare("1")

	fmt.Println(circle.Add(square))
	fmt.Println(square.Add(circle))
	// Output:
	// <nil>
	// square cannot contain circle
}
