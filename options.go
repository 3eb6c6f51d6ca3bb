package ntopic

import "time"

// Option defines an option for configuring nodes and wait sets.
type Option func(opt *options)

func getOptions(opts []Option) options {
	opt := options{
		logger:       noopLogger{},
		spinInterval: defaultSpinInterval,
	}

	for _, o := range opts {
		o(&opt)
	}
	return opt
}

type options struct {
	logger       Logger
	spinInterval time.Duration
}

// WithLogger sets the logger.
func WithLogger(log Logger) Option {
	return func(opt *options) {
		opt.logger = log
	}
}

// WithSpinInterval sets how often a spinning wait set polls for
// readiness.
func WithSpinInterval(interval time.Duration) Option {
	return func(opt *options) {
		if interval > 0 {
			opt.spinInterval = interval
		}
	}
}
