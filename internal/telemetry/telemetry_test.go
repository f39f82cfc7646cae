package telemetry

import (
	"context"
	"testing"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("noop tracer produced a valid span context")
	}
}

func TestTracer_DefaultProvider(t *testing.T) {
	if Tracer("dungeon") == nil {
		t.Fatal("Tracer() returned nil")
	}
}
