package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrService   = "service"
	attrOperation = "operation"
	attrStatus    = "status"
	attrDirection = "direction"
	attrFileName  = "file_name"
)

// Metrics provides methods for recording observability metrics.
type Metrics struct {
	// Google API metrics
	apiOperationsTotal   metric.Int64Counter
	apiOperationDuration metric.Float64Histogram

	// Transfer metrics
	transferBytesTotal metric.Int64Counter

	// Sheets metrics
	rowsPushedTotal metric.Int64Counter

	// detailedLabels controls whether high-cardinality labels are included
	detailedLabels bool
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The detailedLabels parameter controls whether high-cardinality labels
// (file names) are included on transfer metrics.
func NewMetrics(meter metric.Meter, detailedLabels bool) (*Metrics, error) {
	m := &Metrics{
		detailedLabels: detailedLabels,
	}

	var err error

	m.apiOperationsTotal, err = meter.Int64Counter(
		"drive_api_operations_total",
		metric.WithDescription("Total number of Google API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive_api_operations_total counter: %w", err)
	}

	m.apiOperationDuration, err = meter.Float64Histogram(
		"drive_api_operation_duration_seconds",
		metric.WithDescription("Google API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive_api_operation_duration_seconds histogram: %w", err)
	}

	m.transferBytesTotal, err = meter.Int64Counter(
		"drive_transfer_bytes_total",
		metric.WithDescription("Total bytes moved between the local machine and Drive"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive_transfer_bytes_total counter: %w", err)
	}

	m.rowsPushedTotal, err = meter.Int64Counter(
		"sheets_rows_pushed_total",
		metric.WithDescription("Total number of rows pushed to Google Sheets"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets_rows_pushed_total counter: %w", err)
	}

	return m, nil
}

// RecordAPIOperation records a Google API operation with service, operation,
// status, and duration.
//
// Parameters:
//   - service: Google service name (drive, sheets)
//   - operation: Operation type (list, get, download, export, upload, delete, update)
//   - status: Result status ("success" or "error")
//   - duration: Time taken for the operation
func (m *Metrics) RecordAPIOperation(ctx context.Context, service, operation, status string, duration time.Duration) {
	if m == nil || m.apiOperationsTotal == nil || m.apiOperationDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrService, service),
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.apiOperationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.apiOperationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordTransfer records bytes moved in the given direction
// (upload, download, export). The file name label is added only when
// detailed labels are enabled.
func (m *Metrics) RecordTransfer(ctx context.Context, direction, fileName string, bytes int64) {
	if m == nil || m.transferBytesTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrDirection, direction),
	}
	if m.detailedLabels && fileName != "" {
		attrs = append(attrs, attribute.String(attrFileName, fileName))
	}

	m.transferBytesTotal.Add(ctx, bytes, metric.WithAttributes(attrs...))
}

// RecordRowsPushed records the number of rows written to a sheet along with
// the update status.
func (m *Metrics) RecordRowsPushed(ctx context.Context, status string, rows int64) {
	if m == nil || m.rowsPushedTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrStatus, status),
	}

	m.rowsPushedTotal.Add(ctx, rows, metric.WithAttributes(attrs...))
}

// StatusFromError maps an error to the status label value.
func StatusFromError(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
