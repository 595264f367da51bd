package preprocess

// Option configures the optional parameters of a transform. Options that
// do not apply to a transform are ignored by it.
type Option func(*config)

type config struct {
	target   float64
	lower    float64
	upper    float64
	padValue float64
}

func defaultConfig() config {
	return config{
		lower: 0,
		upper: 1,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithTarget sets the mean [Center] shifts the data to. Defaults to 0.
func WithTarget(v float64) Option {
	return func(c *config) {
		c.target = v
	}
}

// WithBounds sets the interval [Rescale] maps the data into.
// Defaults to [0, 1]. upper must be greater than lower.
func WithBounds(lower, upper float64) Option {
	return func(c *config) {
		c.lower = lower
		c.upper = upper
	}
}

// WithPadValue sets the value [PadToSameSize] appends to the shorter
// sequence. Defaults to 0.
func WithPadValue(v float64) Option {
	return func(c *config) {
		c.padValue = v
	}
}
