package airdropscout

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/krastod/airdropscout"
)

func getTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

type analyzeSpan struct {
	startTime time.Time
	span      trace.Span
}

func newAnalyzeSpan(ctx context.Context, generator Generator, walletType WalletType) (context.Context, *analyzeSpan) {
	spanCtx, span := getTracer().Start(ctx, "airdropscout.analyze",
		trace.WithAttributes(
			attribute.String("airdropscout.wallet_type", string(walletType)),
			attribute.String("gen_ai.provider.name", generator.Provider()),
			attribute.String("gen_ai.request.model", generator.ModelID()),
		))

	return spanCtx, &analyzeSpan{
		startTime: time.Now(),
		span:      span,
	}
}

func (s *analyzeSpan) OnUsage(usage *Usage) {
	if usage == nil {
		return
	}
	s.span.SetAttributes(
		attribute.Int("gen_ai.usage.input_tokens", usage.InputTokens),
		attribute.Int("gen_ai.usage.output_tokens", usage.OutputTokens),
	)
}

func (s *analyzeSpan) OnResult(result *SearchResult) {
	if result == nil {
		return
	}
	s.span.SetAttributes(
		attribute.Int("airdropscout.airdrops", len(result.Airdrops)),
		attribute.Int("airdropscout.grounding_links", len(result.GroundingLinks)),
	)
}

func (s *analyzeSpan) OnOutcome(outcome Outcome) {
	s.span.SetAttributes(attribute.String("airdropscout.outcome", string(outcome)))
}

func (s *analyzeSpan) OnError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *analyzeSpan) OnEnd() {
	s.span.SetAttributes(attribute.Float64("airdropscout.duration_seconds", time.Since(s.startTime).Seconds()))
	s.span.End()
}
