package shapeparser

import "log/slog"

// Strategy selects how nesting is tracked while parsing.
type Strategy string

const (
	// Recursive parses each nested shape with a nested function call.
	Recursive Strategy = "recursive"
	// Iterative keeps open shapes on an explicit stack.
	Iterative Strategy = "iterative"
)

// Options configures a Parser. The zero value parses recursively with no
// depth limit and no logging.
type Options struct {
	Strategy Strategy
	MaxDepth int          // 0 means unlimited; top-level shapes have depth 1
	Logger   *slog.Logger // nil discards
}
