package tracing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/krastod/airdropscout"
	"github.com/krastod/airdropscout/internal/ptr"
	"github.com/krastod/airdropscout/internal/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = provider.Shutdown(t.Context())
	})
	return recorder
}

func TestTraceGenerate(t *testing.T) {
	recorder := withSpanRecorder(t)

	options := airdropscout.GenerateOptions{Temperature: ptr.To(0.4), SearchGrounding: true}
	_, err := tracing.TraceGenerate(t.Context(), "google", "gemini-2.5-flash", options, func(ctx context.Context) (*airdropscout.Generation, error) {
		return &airdropscout.Generation{
			Text:      "hi",
			Citations: []airdropscout.Citation{{URI: "https://a"}, {URI: "https://b"}},
			Usage:     &airdropscout.Usage{InputTokens: 10, OutputTokens: 3},
		}, nil
	})
	if err != nil {
		t.Fatalf("TraceGenerate returned error: %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 1 || spans[0].Name() != "airdropscout.generate" {
		t.Fatalf("unexpected spans: %v", spans)
	}
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	checks := map[attribute.Key]attribute.Value{
		"gen_ai.provider.name":          attribute.StringValue("google"),
		"gen_ai.request.model":          attribute.StringValue("gemini-2.5-flash"),
		"gen_ai.request.temperature":    attribute.Float64Value(0.4),
		"gen_ai.usage.input_tokens":     attribute.IntValue(10),
		"gen_ai.usage.output_tokens":    attribute.IntValue(3),
		"airdropscout.search_grounding": attribute.BoolValue(true),
		"airdropscout.citations":        attribute.IntValue(2),
	}
	for key, want := range checks {
		if got, ok := attrs[key]; !ok || got != want {
			t.Errorf("attribute %s = %v, want %v", key, got.Emit(), want.Emit())
		}
	}
}

func TestTraceGenerateError(t *testing.T) {
	recorder := withSpanRecorder(t)

	wantErr := errors.New("boom")
	_, err := tracing.TraceGenerate(t.Context(), "google", "m", airdropscout.GenerateOptions{}, func(ctx context.Context) (*airdropscout.Generation, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	spans := recorder.Ended()
	if len(spans) != 1 || spans[0].Status().Code != codes.Error {
		t.Fatalf("expected one errored span, got %v", spans)
	}
}
