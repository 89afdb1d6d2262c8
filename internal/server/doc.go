// Package server provides the optional Prometheus metrics listener.
//
// Most drivepipe invocations are short-lived, but large downloads, exports,
// and folder sweeps can run for a while; the listener makes transfer metrics
// scrapeable during those runs. It serves /metrics and /healthz on a
// dedicated address and is started only when instrumentation uses the
// Prometheus exporter.
package server
