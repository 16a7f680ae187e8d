package observability

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
)

func TestDefaultConfigs(t *testing.T) {
	tc := DefaultTracerConfig("contentgen")
	if tc.ServiceName != "contentgen" {
		t.Errorf("tracer service = %q", tc.ServiceName)
	}
	if tc.Enabled {
		t.Error("tracing should be off by default")
	}

	mc := DefaultMeterConfig("contentgen")
	if mc.Endpoint == "" || mc.Interval == 0 {
		t.Errorf("meter defaults incomplete: %+v", mc)
	}
}

func TestMetricsInstruments(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	// Noop instruments must accept records without panicking.
	ctx := context.Background()
	m.RecordStage(ctx, "data_parser", "completed", 120*time.Millisecond)
	m.RecordError(ctx, "TIMEOUT", "question_generator")
}

func TestSpanHelpersWithoutProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "pipeline.test")
	defer span.End()

	SetSpanAttribute(ctx, "stage", "data_parser")
	SetSpanError(ctx, nil)
}
