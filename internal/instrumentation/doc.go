// Package instrumentation provides OpenTelemetry metrics and tracing for
// drivepipe.
//
// A Provider owns the meter and tracer providers and selects exporters from
// configuration: Prometheus (pull), OTLP over HTTP (push), or stdout (for
// development). The Metrics type records Google API operation counts and
// latencies, transfer volumes, and pushed row counts. All recording methods
// are safe to call on a nil or uninitialized Metrics so call sites never need
// to guard on whether instrumentation is enabled.
package instrumentation
