package scouttest

import (
	"context"
	"errors"
	"sync"

	"github.com/krastod/airdropscout"
)

// MockGenerateResult is a result for a mocked `generate` call.
// It can either be a full generation or an error.
type MockGenerateResult struct {
	Generation *airdropscout.Generation
	Error      error
}

// NewMockGenerateResultGeneration constructs a generate result with a generation.
func NewMockGenerateResultGeneration(generation airdropscout.Generation) MockGenerateResult {
	return MockGenerateResult{
		Generation: &generation,
	}
}

// NewMockGenerateResultText constructs a generate result whose generation
// carries text and the given citation URIs.
func NewMockGenerateResultText(text string, citationURIs ...string) MockGenerateResult {
	citations := make([]airdropscout.Citation, len(citationURIs))
	for i, uri := range citationURIs {
		citations[i] = airdropscout.Citation{URI: uri}
	}
	return NewMockGenerateResultGeneration(airdropscout.Generation{
		Text:      text,
		Citations: citations,
	})
}

// NewMockGenerateResultError constructs a generate result that yields an error.
func NewMockGenerateResultError(err error) MockGenerateResult {
	return MockGenerateResult{
		Error: err,
	}
}

// TrackedGenerateInput is one recorded call to Generate.
type TrackedGenerateInput struct {
	Prompt  string
	Options airdropscout.GenerateOptions
}

// MockGenerator is a mock generator for testing purposes
// that tracks inputs and returns predefined outputs.
type MockGenerator struct {
	mu                    sync.Mutex
	mockedGenerateResults []MockGenerateResult
	trackedGenerateInputs []TrackedGenerateInput

	provider string
	modelID  string
}

// NewMockGenerator constructs a mock generator instance.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		mockedGenerateResults: []MockGenerateResult{},
		trackedGenerateInputs: []TrackedGenerateInput{},
		provider:              "mock",
		modelID:               "mock-model",
	}
}

// Provider returns the provider name of the mock generator.
func (m *MockGenerator) Provider() string {
	return m.provider
}

// SetProvider overrides the provider name returned by the mock generator.
func (m *MockGenerator) SetProvider(provider string) {
	m.provider = provider
}

// ModelID returns the model identifier of the mock generator.
func (m *MockGenerator) ModelID() string {
	return m.modelID
}

// SetModelID overrides the model identifier returned by the mock generator.
func (m *MockGenerator) SetModelID(modelID string) {
	m.modelID = modelID
}

// Generate returns the next mocked generate result, tracking the provided input.
func (m *MockGenerator) Generate(_ context.Context, prompt string, options airdropscout.GenerateOptions) (*airdropscout.Generation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.mockedGenerateResults) == 0 {
		return nil, errors.New("no mocked generate results available")
	}

	result := m.mockedGenerateResults[0]
	m.mockedGenerateResults = m.mockedGenerateResults[1:]
	m.trackedGenerateInputs = append(m.trackedGenerateInputs, TrackedGenerateInput{
		Prompt:  prompt,
		Options: cloneOptions(options),
	})

	if result.Error != nil {
		return nil, result.Error
	}

	return result.Generation, nil
}

// EnqueueGenerateResult enqueues generate results to be returned sequentially.
func (m *MockGenerator) EnqueueGenerateResult(results ...MockGenerateResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockedGenerateResults = append(m.mockedGenerateResults, results...)
}

// TrackedGenerateInputs returns a copy of the inputs seen so far.
func (m *MockGenerator) TrackedGenerateInputs() []TrackedGenerateInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]TrackedGenerateInput, len(m.trackedGenerateInputs))
	copy(out, m.trackedGenerateInputs)
	return out
}

// Reset clears tracked inputs without touching enqueued results.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trackedGenerateInputs = []TrackedGenerateInput{}
}

// Restore clears enqueued results and tracked inputs, returning the mock to its initial state.
func (m *MockGenerator) Restore() {
	m.mu.Lock()
	m.mockedGenerateResults = []MockGenerateResult{}
	m.mu.Unlock()
	m.Reset()
}

func cloneOptions(options airdropscout.GenerateOptions) airdropscout.GenerateOptions {
	if options.Temperature != nil {
		t := *options.Temperature
		options.Temperature = &t
	}
	return options
}
