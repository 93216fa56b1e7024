package service

import (
	"context"

	"github.com/yndnr/simianauth-go/internal/telemetry/logger"
	"github.com/yndnr/simianauth-go/internal/telemetry/metric"
)

type options struct {
	logger  logger.Logger
	metrics *metric.Registry
}

// Option configures a TokenResolver or SessionService.
type Option func(*options)

// WithLogger sets the logger used for diagnostic trace points.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets the metrics registry. A nil registry disables metrics.
func WithMetrics(m *metric.Registry) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: logger.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	return o
}

// contextLogger prefers a logger carried on ctx over fallback and tags it
// with the run ID when one is set.
func contextLogger(ctx context.Context, fallback logger.Logger) logger.Logger {
	l := logger.FromContextOr(ctx, fallback)
	if runID := logger.RunIDFromContext(ctx); runID != "" {
		l = l.With("run_id", runID)
	}
	return l
}
