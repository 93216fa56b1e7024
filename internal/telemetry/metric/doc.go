// Package metric provides Prometheus metrics for simianauth.
//
//   - simianauth_token_resolutions_total{source,outcome}
//   - simianauth_converter_runs_total{converter,outcome}
//   - simianauth_converter_duration_seconds{converter}
//   - simianauth_actions_total{action,outcome}
//   - simianauth_last_run_timestamp_seconds
//
// Metrics live on a private registry and are written to a .prom file when
// metrics.textfile is configured.
package metric
