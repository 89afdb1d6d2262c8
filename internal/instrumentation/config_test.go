package instrumentation

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.ServiceName != "drivepipe" {
		t.Errorf("Expected default service name drivepipe, got %s", config.ServiceName)
	}
	if config.Enabled {
		t.Error("Expected instrumentation disabled by default")
	}
	if config.MetricsExporter != ExporterPrometheus {
		t.Errorf("Expected default metrics exporter prometheus, got %s", config.MetricsExporter)
	}
	if config.TracingExporter != ExporterNone {
		t.Errorf("Expected default tracing exporter none, got %s", config.TracingExporter)
	}
	if config.TraceSamplingRate != 0.1 {
		t.Errorf("Expected default sampling rate 0.1, got %f", config.TraceSamplingRate)
	}
}

func TestDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "drivepipe-test")
	t.Setenv("DRIVEPIPE_INSTRUMENTATION_ENABLED", "true")
	t.Setenv("DRIVEPIPE_METRICS_EXPORTER", ExporterStdout)
	t.Setenv("DRIVEPIPE_TRACES_EXPORTER", ExporterStdout)
	t.Setenv("DRIVEPIPE_TRACE_SAMPLING_RATE", "0.5")
	t.Setenv("DRIVEPIPE_METRICS_DETAILED_LABELS", "true")

	config := DefaultConfig()

	if config.ServiceName != "drivepipe-test" {
		t.Errorf("Expected service name drivepipe-test, got %s", config.ServiceName)
	}
	if !config.Enabled {
		t.Error("Expected instrumentation enabled")
	}
	if config.MetricsExporter != ExporterStdout {
		t.Errorf("Expected stdout metrics exporter, got %s", config.MetricsExporter)
	}
	if config.TracingExporter != ExporterStdout {
		t.Errorf("Expected stdout tracing exporter, got %s", config.TracingExporter)
	}
	if config.TraceSamplingRate != 0.5 {
		t.Errorf("Expected sampling rate 0.5, got %f", config.TraceSamplingRate)
	}
	if !config.DetailedLabels {
		t.Error("Expected detailed labels enabled")
	}
}

func TestDefaultConfig_InvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("DRIVEPIPE_INSTRUMENTATION_ENABLED", "not-a-bool")
	t.Setenv("DRIVEPIPE_TRACE_SAMPLING_RATE", "not-a-float")

	config := DefaultConfig()

	if config.Enabled {
		t.Error("Expected invalid bool to fall back to default false")
	}
	if config.TraceSamplingRate != 0.1 {
		t.Errorf("Expected invalid float to fall back to 0.1, got %f", config.TraceSamplingRate)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid prometheus config",
			config: Config{
				MetricsExporter:   ExporterPrometheus,
				TracingExporter:   ExporterNone,
				TraceSamplingRate: 0.1,
			},
			wantErr: false,
		},
		{
			name: "valid otlp config",
			config: Config{
				MetricsExporter:   ExporterOTLP,
				TracingExporter:   ExporterOTLP,
				OTLPEndpoint:      "localhost:4318",
				TraceSamplingRate: 1.0,
			},
			wantErr: false,
		},
		{
			name: "sampling rate too high",
			config: Config{
				MetricsExporter:   ExporterPrometheus,
				TracingExporter:   ExporterNone,
				TraceSamplingRate: 1.5,
			},
			wantErr: true,
		},
		{
			name: "sampling rate negative",
			config: Config{
				MetricsExporter:   ExporterPrometheus,
				TracingExporter:   ExporterNone,
				TraceSamplingRate: -0.1,
			},
			wantErr: true,
		},
		{
			name: "unknown metrics exporter",
			config: Config{
				MetricsExporter: "statsd",
				TracingExporter: ExporterNone,
			},
			wantErr: true,
		},
		{
			name: "unknown tracing exporter",
			config: Config{
				MetricsExporter: ExporterPrometheus,
				TracingExporter: "jaeger",
			},
			wantErr: true,
		},
		{
			name: "otlp metrics without endpoint",
			config: Config{
				MetricsExporter: ExporterOTLP,
				TracingExporter: ExporterNone,
			},
			wantErr: true,
		},
		{
			name: "otlp tracing without endpoint",
			config: Config{
				MetricsExporter: ExporterPrometheus,
				TracingExporter: ExporterOTLP,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
