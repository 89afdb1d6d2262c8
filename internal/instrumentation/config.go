package instrumentation

import (
	"fmt"
	"os"
	"strconv"
)

// Environment keys the instrumentation configuration reads.
const (
	EnvEnabled           = "DRIVEPIPE_INSTRUMENTATION_ENABLED"
	EnvMetricsExporter   = "DRIVEPIPE_METRICS_EXPORTER"
	EnvTracesExporter    = "DRIVEPIPE_TRACES_EXPORTER"
	EnvOTLPInsecure      = "DRIVEPIPE_OTLP_INSECURE"
	EnvTraceSamplingRate = "DRIVEPIPE_TRACE_SAMPLING_RATE"
	EnvDetailedLabels    = "DRIVEPIPE_METRICS_DETAILED_LABELS"
	EnvOTLPEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName       = "OTEL_SERVICE_NAME"
	EnvServiceInstanceID = "OTEL_SERVICE_INSTANCE_ID"
)

// Config selects the telemetry exporters and what gets recorded.
type Config struct {
	// ServiceName identifies this process to telemetry backends
	// (default: drivepipe).
	ServiceName string

	// ServiceVersion is stamped onto the telemetry resource.
	ServiceVersion string

	// ServiceInstanceID distinguishes instances; the hostname is used
	// when empty.
	ServiceInstanceID string

	// Enabled turns recording on. Off by default so plain CLI runs carry
	// no telemetry overhead.
	Enabled bool

	// MetricsExporter is one of prometheus, otlp, stdout
	// (default: prometheus).
	MetricsExporter string

	// TracingExporter is one of otlp, stdout, none (default: none).
	TracingExporter string

	// OTLPEndpoint is the collector host:port for the otlp exporters,
	// without a scheme.
	OTLPEndpoint string

	// OTLPInsecure switches OTLP export to plain HTTP. Local collectors
	// only.
	OTLPInsecure bool

	// TraceSamplingRate is the ratio of traces kept, 0.0 to 1.0
	// (default: 0.1).
	TraceSamplingRate float64

	// DetailedLabels adds file-name labels to transfer metrics. High
	// cardinality; keep off outside development.
	DetailedLabels bool
}

// DefaultConfig resolves the configuration from the environment, falling back
// to safe defaults on unset or unparsable values.
func DefaultConfig() Config {
	return Config{
		ServiceName:       envString(EnvServiceName, "drivepipe"),
		ServiceVersion:    "unknown",
		ServiceInstanceID: envString(EnvServiceInstanceID, ""),
		Enabled:           envBool(EnvEnabled, false),
		MetricsExporter:   envString(EnvMetricsExporter, ExporterPrometheus),
		TracingExporter:   envString(EnvTracesExporter, ExporterNone),
		OTLPEndpoint:      envString(EnvOTLPEndpoint, ""),
		OTLPInsecure:      envBool(EnvOTLPInsecure, false),
		TraceSamplingRate: envFloat(EnvTraceSamplingRate, 0.1),
		DetailedLabels:    envBool(EnvDetailedLabels, false),
	}
}

// Validate rejects exporter names and parameters the provider cannot wire.
func (c *Config) Validate() error {
	if c.TraceSamplingRate < 0 || c.TraceSamplingRate > 1 {
		return fmt.Errorf("trace sampling rate must be between 0.0 and 1.0, got %f", c.TraceSamplingRate)
	}

	switch c.MetricsExporter {
	case "", ExporterPrometheus, ExporterOTLP, ExporterStdout:
	default:
		return fmt.Errorf("invalid metrics exporter %q, must be one of: prometheus, otlp, stdout", c.MetricsExporter)
	}

	switch c.TracingExporter {
	case "", ExporterNone, ExporterOTLP, ExporterStdout:
	default:
		return fmt.Errorf("invalid tracing exporter %q, must be one of: otlp, stdout, none", c.TracingExporter)
	}

	if c.OTLPEndpoint == "" {
		if c.MetricsExporter == ExporterOTLP {
			return fmt.Errorf("OTLP endpoint is required when using OTLP metrics exporter")
		}
		if c.TracingExporter == ExporterOTLP {
			return fmt.Errorf("OTLP endpoint is required when using OTLP tracing exporter")
		}
	}

	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

// Constants for metric label values.
const (
	// Status values
	StatusSuccess = "success"
	StatusError   = "error"

	// Google service names
	ServiceDrive  = "drive"
	ServiceSheets = "sheets"

	// Transfer directions
	DirectionUpload   = "upload"
	DirectionDownload = "download"
	DirectionExport   = "export"

	// Exporter types
	ExporterPrometheus = "prometheus"
	ExporterOTLP       = "otlp"
	ExporterStdout     = "stdout"
	ExporterNone       = "none"
)
