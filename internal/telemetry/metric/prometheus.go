// Package metric provides Prometheus metrics for simianauth.
//
// A CLI run is short-lived, so metrics are not served over HTTP; they are
// written once at exit in the text exposition format for the node_exporter
// textfile collector.
package metric

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "simianauth"

// Outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeOK       = "ok"
	OutcomeFailed   = "failed"
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
)

// Token source label values.
const (
	SourceLiteral = "literal"
	SourceFile    = "file"
)

// Registry holds all application metrics on a private prometheus registry.
// All methods are safe to call on a nil *Registry.
type Registry struct {
	registry *prometheus.Registry

	TokenResolutions  *prometheus.CounterVec
	ConverterRuns     *prometheus.CounterVec
	ConverterDuration *prometheus.HistogramVec
	Actions           *prometheus.CounterVec
	LastRunTimestamp  prometheus.Gauge
}

// NewRegistry creates a registry with every simianauth metric registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		TokenResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_resolutions_total",
			Help:      "Token parameter resolutions by source and outcome.",
		}, []string{"source", "outcome"}),
		ConverterRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "converter_runs_total",
			Help:      "Plist converter runs by converter and outcome.",
		}, []string{"converter", "outcome"}),
		ConverterDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "converter_duration_seconds",
			Help:      "Plist converter wall time.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"converter"}),
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Login and logout actions by outcome.",
		}, []string{"action", "outcome"}),
		LastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last simianauth invocation.",
		}),
	}

	r.registry.MustRegister(
		r.TokenResolutions,
		r.ConverterRuns,
		r.ConverterDuration,
		r.Actions,
		r.LastRunTimestamp,
	)
	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// RecordResolution counts one token resolution.
func (r *Registry) RecordResolution(source, outcome string) {
	if r == nil {
		return
	}
	r.TokenResolutions.WithLabelValues(source, outcome).Inc()
}

// RecordConversion counts one converter run and observes its duration.
func (r *Registry) RecordConversion(converter, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.ConverterRuns.WithLabelValues(converter, outcome).Inc()
	r.ConverterDuration.WithLabelValues(converter).Observe(d.Seconds())
}

// RecordAction counts one login or logout.
func (r *Registry) RecordAction(action string, err error) {
	if r == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	r.Actions.WithLabelValues(action, outcome).Inc()
}

// WriteTextfile stamps the run time and writes all metrics to path
// atomically. An empty path is a no-op.
func (r *Registry) WriteTextfile(path string, now time.Time) error {
	if r == nil || path == "" {
		return nil
	}
	r.LastRunTimestamp.Set(float64(now.Unix()))
	if err := prometheus.WriteToTextfile(path, r.Gatherer()); err != nil {
		return fmt.Errorf("metric: write textfile %s: %w", path, err)
	}
	return nil
}
