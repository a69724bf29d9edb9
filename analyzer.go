package airdropscout

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"github.com/krastod/airdropscout/internal/logging"
)

// DefaultTemperature is the sampling temperature of every analysis call.
const DefaultTemperature = 0.4

// Outcome tells apart the terminal states of one analysis.
type Outcome string

const (
	OutcomeSuccess     Outcome = "success"
	OutcomeSoftFailure Outcome = "soft_failure"
	OutcomeHardFailure Outcome = "hard_failure"
)

// Analyzer runs the airdrop analysis pipeline against a Generator.
// It holds no per-request state and is safe for concurrent use if the
// Generator is.
type Analyzer struct {
	generator   Generator
	logger      *slog.Logger
	language    Language
	temperature float64
	now         func() time.Time
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithLogger sets the logger used for diagnostics. Defaults to the process logger.
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithLanguage sets the language of the summary, descriptions and fallback texts.
func WithLanguage(lang Language) AnalyzerOption {
	return func(a *Analyzer) { a.language = lang }
}

// WithTemperature overrides DefaultTemperature.
func WithTemperature(temperature float64) AnalyzerOption {
	return func(a *Analyzer) { a.temperature = temperature }
}

// WithClock overrides the clock used to date search queries in the prompt.
func WithClock(now func() time.Time) AnalyzerOption {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAnalyzer constructs an Analyzer that calls generator once per analysis.
func NewAnalyzer(generator Generator, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		generator:   generator,
		logger:      logging.Logger(),
		language:    LanguageEnglish,
		temperature: DefaultTemperature,
		now:         time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Messages returns the fixed strings for the analyzer's language.
func (a *Analyzer) Messages() Messages {
	return MessagesFor(a.language)
}

// Language reports the language the analyzer asks the model to write in.
func (a *Analyzer) Language() Language {
	return a.language
}

// Analyze classifies address, asks the generator for live airdrop data and
// returns the structured result.
//
// A reply without a parsable ```json block is not an error: the result then
// has no airdrops and a fixed explanatory summary. Any generator failure is
// returned as ErrServiceUnavailable with no result.
//
// Two calls with the same address may return different airdrop lists since
// the answer depends on live search results.
func (a *Analyzer) Analyze(ctx context.Context, address string) (*SearchResult, error) {
	result, _, err := a.AnalyzeWithOutcome(ctx, address)
	return result, err
}

// AnalyzeWithOutcome is Analyze and also reports which terminal state the
// analysis reached.
func (a *Analyzer) AnalyzeWithOutcome(ctx context.Context, address string) (*SearchResult, Outcome, error) {
	walletType := Classify(address)

	ctx, span := newAnalyzeSpan(ctx, a.generator, walletType)
	defer span.OnEnd()

	prompt := BuildPrompt(address, walletType, a.language, a.now())
	temperature := a.temperature

	generation, err := a.generator.Generate(ctx, prompt, GenerateOptions{
		Temperature:     &temperature,
		SearchGrounding: true,
	})
	if err != nil {
		a.logger.ErrorContext(ctx, "generator call failed",
			"provider", a.generator.Provider(),
			"model", a.generator.ModelID(),
			"wallet_type", string(walletType),
			"error", err,
		)
		span.OnError(err)
		span.OnOutcome(OutcomeHardFailure)
		return nil, OutcomeHardFailure, ErrServiceUnavailable
	}
	if generation == nil {
		generation = &Generation{}
	}

	links := GroundingLinks(generation.Citations)
	result, outcome := buildSearchResult(walletType, generation.Text, links, a.Messages())
	if outcome == OutcomeSoftFailure {
		a.logger.WarnContext(ctx, "could not parse JSON from model response",
			"wallet_type", string(walletType),
			"text_length", len(generation.Text),
		)
	}

	span.OnUsage(generation.Usage)
	span.OnResult(result)
	span.OnOutcome(outcome)
	return result, outcome, nil
}

// GroundingLinks collects citation URIs in order, skipping entries with an
// empty or non-absolute URI. Duplicates are kept.
func GroundingLinks(citations []Citation) []string {
	links := make([]string, 0, len(citations))
	for _, citation := range citations {
		if citation.URI == "" {
			continue
		}
		u, err := url.Parse(citation.URI)
		if err != nil || u.Scheme == "" || u.Host == "" {
			continue
		}
		links = append(links, citation.URI)
	}
	return links
}

// buildSearchResult maps the model's free text to a SearchResult.
func buildSearchResult(walletType WalletType, text string, links []string, messages Messages) (*SearchResult, Outcome) {
	unstructured := &SearchResult{
		WalletType:     walletType,
		Airdrops:       []AirdropItem{},
		Summary:        messages.Unstructured,
		GroundingLinks: links,
	}

	block, ok := ExtractFirstFencedJSONBlock(text)
	if !ok {
		return unstructured, OutcomeSoftFailure
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(block), &payload); err != nil {
		return unstructured, OutcomeSoftFailure
	}

	summary := looseString(payload["summary"])
	if summary == "" {
		summary = messages.NoInformation
	}

	airdrops := []AirdropItem{}
	if raw, ok := payload["airdrops"]; ok {
		var items []AirdropItem
		if err := json.Unmarshal(raw, &items); err == nil && items != nil {
			airdrops = items
		}
	}

	return &SearchResult{
		WalletType:     walletType,
		Airdrops:       airdrops,
		Summary:        summary,
		GroundingLinks: links,
	}, OutcomeSuccess
}
