package oxymap

import (
	"log/slog"

	"github.com/brigid-void/OxyMap/codec"
)

type options struct {
	codec            codec.Codec
	leafCapacity     int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Processor behavior.
type Option func(*options)

// WithCodec configures the codec used for the structured-text export.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLeafCapacity configures the maximum number of entries per spatial
// index node. Smaller values build deeper trees with tighter boxes; the
// default suits point data in the tens of thousands. Values below 2 keep
// the default.
func WithLeafCapacity(n int) Option {
	return func(o *options) {
		o.leafCapacity = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
