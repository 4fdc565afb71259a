package shapeparser

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the tree breaks a shape invariant.
	Error Severity = iota
	// Warning means the tree is valid but probably not what was intended.
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "square_label")
	Severity Severity // ERROR or WARNING
	Message  string   // human-readable description
	Path     string   // location of the shape, e.g. shapes[0].children[1] (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Path != "" {
		fmt.Fprintf(&b, " (at %s)", d.Path)
	}
	return b.String()
}

// LintRule is the interface for a single validation rule.
type LintRule interface {
	Name() string
	Apply(c *Container) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against the container.
// Trees built through Parse or the Add methods always pass the built-in
// label rules.
func Validate(c *Container, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(c)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(c *Container, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(c, extraRules...)

	var errs []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errs = append(errs, d)
		}
	}
	if len(errs) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errs}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		squareLabelRule{},
		circleLabelRule{},
		emptyContainerRule{},
	}
}

// MaxDepthRule reports shapes nested deeper than limit, matching the
// Options.MaxDepth check for trees that were not produced by a Parser.
func MaxDepthRule(limit int) LintRule {
	return maxDepthRule{limit: limit}
}

// walkPaths visits every shape with its path and depth.
func walkPaths(c *Container, fn func(s Shape, path string, depth int)) {
	for i, s := range c.shapes {
		walkPath(s, fmt.Sprintf("shapes[%d]", i), 1, fn)
	}
}

func walkPath(s Shape, path string, depth int, fn func(Shape, string, int)) {
	fn(s, path, depth)
	switch v := s.(type) {
	case *Square:
		for i, child := range v.children {
			walkPath(child, fmt.Sprintf("%s.children[%d]", path, i), depth+1, fn)
		}
	case *Circle:
		for i, child := range v.children {
			walkPath(child, fmt.Sprintf("%s.children[%d]", path, i), depth+1, fn)
		}
	}
}

// --- Rules ---

// squareLabelRule: every square label is one or more digits.
type squareLabelRule struct{}

func (squareLabelRule) Name() string { return "square_label" }

func (r squareLabelRule) Apply(c *Container) []Diagnostic {
	var diags []Diagnostic
	walkPaths(c, func(s Shape, path string, _ int) {
		if sq, ok := s.(*Square); ok && !isNumericLabel(sq.label) {
			diags = append(diags, Diagnostic{
				Rule:     r.Name(),
				Severity: Error,
				Message:  fmt.Sprintf("square label %q must be numeric", sq.label),
				Path:     path,
			})
		}
	})
	return diags
}

// circleLabelRule: every circle label is one or more uppercase letters.
type circleLabelRule struct{}

func (circleLabelRule) Name() string { return "circle_label" }

func (r circleLabelRule) Apply(c *Container) []Diagnostic {
	var diags []Diagnostic
	walkPaths(c, func(s Shape, path string, _ int) {
		if ci, ok := s.(*Circle); ok && !isUpperLabel(ci.label) {
			diags = append(diags, Diagnostic{
				Rule:     r.Name(),
				Severity: Error,
				Message:  fmt.Sprintf("circle label %q must be uppercase", ci.label),
				Path:     path,
			})
		}
	})
	return diags
}

type emptyContainerRule struct{}

func (emptyContainerRule) Name() string { return "empty_container" }

func (r emptyContainerRule) Apply(c *Container) []Diagnostic {
	if len(c.shapes) > 0 {
		return nil
	}
	return []Diagnostic{{
		Rule:     r.Name(),
		Severity: Warning,
		Message:  "container holds no shapes",
	}}
}

type maxDepthRule struct{ limit int }

func (maxDepthRule) Name() string { return "max_depth" }

func (r maxDepthRule) Apply(c *Container) []Diagnostic {
	var diags []Diagnostic
	walkPaths(c, func(s Shape, path string, depth int) {
		if r.limit > 0 && depth == r.limit+1 {
			diags = append(diags, Diagnostic{
				Rule:     r.Name(),
				Severity: Error,
				Message:  fmt.Sprintf("%s nested deeper than %d", s.Kind(), r.limit),
				Path:     path,
			})
		}
	})
	return diags
}
