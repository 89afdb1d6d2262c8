package instrumentation

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the default tracer name for the drivepipe package.
const TracerName = "github.com/drivepipe/drivepipe"

// Span attribute keys for Google API operations.
const (
	// SpanAttrService is the Google service name attribute.
	SpanAttrService = "google.service"

	// SpanAttrOperation is the operation type attribute.
	SpanAttrOperation = "google.operation"

	// SpanAttrFileID is the Drive file identifier attribute.
	SpanAttrFileID = "drive.file_id"

	// SpanAttrFolderID is the Drive folder identifier attribute.
	SpanAttrFolderID = "drive.folder_id"

	// SpanAttrSpreadsheetID is the spreadsheet identifier attribute.
	SpanAttrSpreadsheetID = "sheets.spreadsheet_id"

	// SpanAttrRange is the sheet range attribute in A1 notation.
	SpanAttrRange = "sheets.range"
)

// OperationAttrs builds the standard span attributes for a Google API
// operation.
func OperationAttrs(service, operation string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(SpanAttrService, service),
		attribute.String(SpanAttrOperation, operation),
	}
}

// StartSpan starts a span on the global tracer with the standard operation
// attributes plus any extras.
func StartSpan(ctx context.Context, name, service, operation string, extra ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.Tracer(TracerName)
	attrs := append(OperationAttrs(service, operation), extra...)
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records the operation outcome on the span and ends it. A nil error
// marks the span OK; otherwise the error is recorded and the status set.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
