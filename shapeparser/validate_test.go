package shapeparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func diagsByRule(diags []Diagnostic, rule string) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Rule == rule {
			out = append(out, d)
		}
	}
	return out
}

func hasRule(diags []Diagnostic, rule string) bool {
	return len(diagsByRule(diags, rule)) > 0
}

// --- Validate / ValidateOrError API tests ---

func TestValidateParsedTreeIsClean(t *testing.T) {
	c := mustParse(t, "(DOG[15](CAT[2][3]))[7[8]]")
	diags, err := ValidateOrError(c)
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestValidateEmptyContainerWarns(t *testing.T) {
	c := mustParse(t, "")
	diags, err := ValidateOrError(c)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "empty_container", diags[0].Rule)
	assert.Equal(t, Warning, diags[0].Severity)
	assert.Equal(t, "[WARNING] empty_container: container holds no shapes", diags[0].String())
}

func TestValidateZeroValueShapes(t *testing.T) {
	// Add rejects zero-value shapes, so assemble the tree directly.
	circle := &Circle{label: "A", children: []Shape{&Square{}, &Circle{}}}
	c := &Container{shapes: []Shape{circle, &Square{}}}

	diags, err := ValidateOrError(c)
	require.Error(t, err)

	squares := diagsByRule(diags, "square_label")
	require.Len(t, squares, 2)
	assert.Equal(t, "shapes[0].children[0]", squares[0].Path)
	assert.Equal(t, "shapes[1]", squares[1].Path)

	circles := diagsByRule(diags, "circle_label")
	require.Len(t, circles, 1)
	assert.Equal(t, "shapes[0].children[1]", circles[0].Path)
	assert.Equal(t, `[ERROR] circle_label: circle label "" must be uppercase (at shapes[0].children[1])`, circles[0].String())

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Diagnostics, 3)
	assert.Contains(t, err.Error(), "validation failed with 3 error(s)")
}

func TestValidateMaxDepthRule(t *testing.T) {
	c := mustParse(t, "(A(B(C[1])))[2[3]]")

	diags := Validate(c, MaxDepthRule(2))
	deep := diagsByRule(diags, "max_depth")
	require.Len(t, deep, 1)
	assert.Equal(t, "shapes[0].children[0].children[0]", deep[0].Path)
	assert.Equal(t, "circle nested deeper than 2", deep[0].Message)

	assert.False(t, hasRule(Validate(c, MaxDepthRule(4)), "max_depth"))
	assert.False(t, hasRule(Validate(c, MaxDepthRule(0)), "max_depth"))
}

type labelLengthRule struct{ max int }

func (labelLengthRule) Name() string { return "label_length" }

func (r labelLengthRule) Apply(c *Container) []Diagnostic {
	var diags []Diagnostic
	Walk(c, func(s Shape, _ int) bool {
		if len(s.Label()) > r.max {
			diags = append(diags, Diagnostic{Rule: r.Name(), Severity: Warning, Message: s.Label()})
		}
		return true
	})
	return diags
}

func TestValidateExtraRules(t *testing.T) {
	c := mustParse(t, "(LONGLABEL[1])")
	diags, err := ValidateOrError(c, labelLengthRule{max: 4})
	require.NoError(t, err)
	require.True(t, hasRule(diags, "label_length"))
	assert.Equal(t, "LONGLABEL", diagsByRule(diags, "label_length")[0].Message)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "ERROR", Error.String())
	assert.Equal(t, "WARNING", Warning.String())
	assert.Equal(t, "Severity(7)", Severity(7).String())
}
