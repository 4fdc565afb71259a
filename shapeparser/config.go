package shapeparser

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Configuration keys read by LoadOptions.
const (
	ConfigStrategy = "strategy"
	ConfigMaxDepth = "max_depth"
)

// ErrBadOption is returned, wrapped, for configuration values LoadOptions rejects.
var ErrBadOption = errors.New("bad parser option")

// NewViper returns a viper instance that reads parser settings from
// SHAPES_-prefixed environment variables, e.g. SHAPES_MAX_DEPTH.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SHAPES")
	v.AutomaticEnv()
	return v
}

// LoadOptions reads parser options from v. Unset keys take the zero-value
// defaults: recursive strategy and no depth limit. The logger is not
// configurable and is left nil.
func LoadOptions(v *viper.Viper) (Options, error) {
	v.SetDefault(ConfigStrategy, string(Recursive))
	v.SetDefault(ConfigMaxDepth, 0)

	var opts Options

	switch s := Strategy(v.GetString(ConfigStrategy)); s {
	case Recursive, Iterative:
		opts.Strategy = s
	default:
		return Options{}, errors.Wrapf(ErrBadOption, "%s must be %q or %q, got %q", ConfigStrategy, Recursive, Iterative, s)
	}

	maxDepth, err := cast.ToIntE(v.Get(ConfigMaxDepth))
	if err != nil {
		return Options{}, errors.Wrapf(ErrBadOption, "%s must be an integer, got %q", ConfigMaxDepth, v.GetString(ConfigMaxDepth))
	}
	opts.MaxDepth = maxDepth
	if opts.MaxDepth < 0 {
		return Options{}, errors.Wrap(ErrBadOption, ConfigMaxDepth+" must be >= 0")
	}

	return opts, nil
}
