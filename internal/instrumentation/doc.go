// Package instrumentation provides OpenTelemetry metrics for tickctl.
//
// The remote task service offers no transactional guarantees, so the
// interesting operational questions are about the client: how many remote
// round trips an invocation cost, how often the delete step of a move had
// to be retried, and how moves ultimately ended (completed, duplicate left
// behind, location uncertain).
//
// Metrics:
//   - api_operations_total: Counter of remote API operations by operation and status
//   - api_operation_duration_seconds: Histogram of remote API call durations
//   - move_delete_retries_total: Counter of retried delete attempts during moves
//   - move_outcomes_total: Counter of move saga outcomes
//
// Metrics are disabled by default; a one-shot CLI has no scrape surface, so
// when enabled (--metrics) the collected metrics are flushed to stdout via
// the OTLP stdout exporter on shutdown.
package instrumentation
