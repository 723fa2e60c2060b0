package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency.
const (
	attrOperation = "operation"
	attrStatus    = "status"
	attrOutcome   = "outcome"
)

// Metrics provides methods for recording observability metrics.
// The zero value is a no-op recorder, so callers never need to guard
// recording calls on whether instrumentation is enabled.
type Metrics struct {
	apiOperationsTotal   metric.Int64Counter
	apiOperationDuration metric.Float64Histogram
	moveDeleteRetries    metric.Int64Counter
	moveOutcomesTotal    metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.apiOperationsTotal, err = meter.Int64Counter(
		"api_operations_total",
		metric.WithDescription("Total number of remote task API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create api_operations_total counter: %w", err)
	}

	m.apiOperationDuration, err = meter.Float64Histogram(
		"api_operation_duration_seconds",
		metric.WithDescription("Remote task API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create api_operation_duration_seconds histogram: %w", err)
	}

	m.moveDeleteRetries, err = meter.Int64Counter(
		"move_delete_retries_total",
		metric.WithDescription("Total number of retried delete attempts during move operations"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create move_delete_retries_total counter: %w", err)
	}

	m.moveOutcomesTotal, err = meter.Int64Counter(
		"move_outcomes_total",
		metric.WithDescription("Total number of move operations by final outcome"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create move_outcomes_total counter: %w", err)
	}

	return m, nil
}

// RecordAPIOperation records a remote API call with its status and duration.
// Status is the HTTP status code, or 0 when the call never produced a response.
func (m *Metrics) RecordAPIOperation(ctx context.Context, operation string, status int, duration time.Duration) {
	if m == nil || m.apiOperationsTotal == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String(attrOperation, operation),
		attribute.Int(attrStatus, status),
	)
	m.apiOperationsTotal.Add(ctx, 1, attrs)
	m.apiOperationDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(attribute.String(attrOperation, operation)))
}

// RecordMoveDeleteRetry records one retried delete attempt during a move.
func (m *Metrics) RecordMoveDeleteRetry(ctx context.Context) {
	if m == nil || m.moveDeleteRetries == nil {
		return
	}
	m.moveDeleteRetries.Add(ctx, 1)
}

// RecordMoveOutcome records the final outcome of a move saga
// (completed, duplicate_remains, location_uncertain, create_failed).
func (m *Metrics) RecordMoveOutcome(ctx context.Context, outcome string) {
	if m == nil || m.moveOutcomesTotal == nil {
		return
	}
	m.moveOutcomesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrOutcome, outcome)))
}
