package shapeparser

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Recursive, opts.Strategy)
	assert.Equal(t, 0, opts.MaxDepth)
	assert.Nil(t, opts.Logger)
}

func TestLoadOptionsFromEnv(t *testing.T) {
	t.Setenv("SHAPES_STRATEGY", "iterative")
	t.Setenv("SHAPES_MAX_DEPTH", "3")

	opts, err := LoadOptions(NewViper())
	require.NoError(t, err)
	assert.Equal(t, Iterative, opts.Strategy)
	assert.Equal(t, 3, opts.MaxDepth)

	_, err = NewParser(opts).Parse("[1[2[3[4]]]]")
	assert.ErrorIs(t, err, ErrNestingTooDeep)
}

func TestLoadOptionsExplicitValues(t *testing.T) {
	v := viper.New()
	v.Set(ConfigStrategy, "recursive")
	v.Set(ConfigMaxDepth, 8)

	opts, err := LoadOptions(v)
	require.NoError(t, err)
	assert.Equal(t, Options{Strategy: Recursive, MaxDepth: 8}, opts)
}

func TestLoadOptionsRejectsBadValues(t *testing.T) {
	v := viper.New()
	v.Set(ConfigStrategy, "sideways")
	_, err := LoadOptions(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadOption)
	assert.Contains(t, err.Error(), `"sideways"`)

	v = viper.New()
	v.Set(ConfigMaxDepth, -1)
	_, err = LoadOptions(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadOption)
	assert.Contains(t, err.Error(), "max_depth must be >= 0")
}

func TestLoadOptionsRejectsNonIntegerMaxDepth(t *testing.T) {
	for _, bad := range []string{"abc", "2.9", "3x", " "} {
		t.Run(bad, func(t *testing.T) {
			t.Setenv("SHAPES_MAX_DEPTH", bad)

			opts, err := LoadOptions(NewViper())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadOption)
			assert.Contains(t, err.Error(), "max_depth must be an integer")
			assert.Equal(t, Options{}, opts)
		})
	}
}
