package tracing

import (
	"context"
	"time"

	"github.com/krastod/airdropscout"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/krastod/airdropscout"

type generateSpan struct {
	Provider        string
	ModelID         string
	Temperature     *float64
	SearchGrounding bool
	Usage           *airdropscout.Usage
	Citations       int
	StartTime       time.Time

	span trace.Span
}

// TraceGenerate wraps a single generator call in an "airdropscout.generate"
// span carrying gen_ai request and usage attributes.
func TraceGenerate(
	ctx context.Context,
	provider string,
	modelID string,
	options airdropscout.GenerateOptions,
	fn func(context.Context) (*airdropscout.Generation, error),
) (*airdropscout.Generation, error) {
	ctx, span := newGenerateSpan(ctx, provider, modelID, options)
	defer span.OnEnd()

	generation, err := fn(ctx)
	if err != nil {
		span.OnError(err)
		return nil, err
	}

	span.OnGeneration(generation)
	return generation, nil
}

func newGenerateSpan(ctx context.Context, provider, modelID string, options airdropscout.GenerateOptions) (context.Context, *generateSpan) {
	spanCtx, otelSpan := otel.Tracer(tracerName).Start(ctx, "airdropscout.generate")
	return spanCtx, &generateSpan{
		Provider:        provider,
		ModelID:         modelID,
		Temperature:     options.Temperature,
		SearchGrounding: options.SearchGrounding,
		StartTime:       time.Now(),
		span:            otelSpan,
	}
}

func (s *generateSpan) OnGeneration(generation *airdropscout.Generation) {
	if generation == nil {
		return
	}
	s.Usage = generation.Usage
	s.Citations = len(generation.Citations)
}

func (s *generateSpan) OnError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *generateSpan) OnEnd() {
	s.span.SetAttributes(
		attribute.String("gen_ai.operation.name", "generate_content"),
		attribute.String("gen_ai.provider.name", s.Provider),
		attribute.String("gen_ai.request.model", s.ModelID),
		attribute.Bool("airdropscout.search_grounding", s.SearchGrounding),
		attribute.Int("airdropscout.citations", s.Citations),
		attribute.Float64("airdropscout.duration_seconds", time.Since(s.StartTime).Seconds()),
	)

	if s.Temperature != nil {
		s.span.SetAttributes(attribute.Float64("gen_ai.request.temperature", *s.Temperature))
	}

	if s.Usage != nil {
		s.span.SetAttributes(
			attribute.Int("gen_ai.usage.input_tokens", s.Usage.InputTokens),
			attribute.Int("gen_ai.usage.output_tokens", s.Usage.OutputTokens),
		)
	}

	s.span.End()
}
