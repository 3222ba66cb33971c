package correlation

type config struct {
	zeroFilter bool
	index      []float64
	hasIndex   bool
}

// Option configures a Correlation or an Accumulator.
type Option func(*config)

func defaultConfig() config {
	return config{zeroFilter: true}
}

// WithZeroFilter enables or disables removal of pairs in which either value is
// exactly zero. Enabled by default.
func WithZeroFilter(enabled bool) Option {
	return func(cfg *config) {
		cfg.zeroFilter = enabled
	}
}

// WithIndex attaches an index sequence that labels the pairs. It is filtered
// in lock-step with the data and never enters the statistics. Accumulator
// ignores it.
func WithIndex(index []float64) Option {
	return func(cfg *config) {
		cfg.index = index
		cfg.hasIndex = index != nil
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
