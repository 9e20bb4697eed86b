// Package option configures contract suites and strategy settings with functional options.
//
// A Config type may implement two hooks:
//   - Init() sets the defaults before any option is applied.
//   - Normalize() runs after the options and repairs values that the options left out of range,
//     such as a maximum input length too small to generate a sequence worth sorting.
package option

type Option[Config any] interface {
	Configure(*Config)
}

// Func is a function based Option.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// ToConfig builds a Config from the given options, calling its Init and Normalize hooks around them.
func ToConfig[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	Apply(&c, opts...)
	return c
}

// Apply initialises c, applies opts in order, then normalises the result.
func Apply[Config any, Opt Option[Config]](c *Config, opts ...Opt) {
	if h, ok := any(c).(interface{ Init() }); ok {
		h.Init()
	}
	for _, opt := range opts {
		opt.Configure(c)
	}
	if h, ok := any(c).(interface{ Normalize() }); ok {
		h.Normalize()
	}
}
