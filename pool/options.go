package pool

import "github.com/hupe1980/arenakit"

type options struct {
	arenaOpts []arenakit.Option
	hardClear bool
}

func defaultOptions() options {
	return options{}
}

// Option configures a Pool.
type Option func(*options)

// WithArenaOptions forwards options (alignment, logger, metrics) to every
// arena the pool hands out.
func WithArenaOptions(opts ...arenakit.Option) Option {
	return func(o *options) {
		o.arenaOpts = append(o.arenaOpts, opts...)
	}
}

// WithHardClear makes Put zero-fill storages before reuse, so one task's
// residual data is never observable by the next. Costs O(arena size) per
// Put.
func WithHardClear() Option {
	return func(o *options) {
		o.hardClear = true
	}
}
