package airdropscout

import "context"

// Generator is the capability the pipeline needs from a hosted model:
// send one prompt, get text back along with any grounding citations.
type Generator interface {
	// Provider returns the provider name, e.g. "google".
	Provider() string
	// ModelID returns the model identifier.
	ModelID() string
	Generate(ctx context.Context, prompt string, options GenerateOptions) (*Generation, error)
}
