package arenakit

type options struct {
	alignment int
	logger    *Logger
	metrics   MetricsCollector
}

func defaultOptions() options {
	return options{
		alignment: DefaultAlignment,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
}

// Option configures an Arena view.
type Option func(*options)

// WithAlignment sets the byte alignment applied to every allocation made
// through the view. alignment must be a power of two; NewArena panics
// otherwise.
//
// Pick the alignment once per storage and keep it for the storage's
// lifetime: pointers already issued under one alignment keep their
// addresses, so mixing alignments across views of the same storage only
// affects allocations made after the change.
func WithAlignment(alignment int) Option {
	return func(o *options) {
		o.alignment = alignment
	}
}

// WithLogger sets the logger for arena lifecycle events (recycle, clear).
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector for the view.
// If nil is passed, metrics collection is disabled.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
