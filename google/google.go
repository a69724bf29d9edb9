package google

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/krastod/airdropscout"
	"github.com/krastod/airdropscout/google/googleapi"
	"github.com/krastod/airdropscout/internal/clientutils"
	"github.com/krastod/airdropscout/internal/tracing"
)

const Provider = "google"

const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultAPIVersion = "v1beta"
	DefaultModelID    = "gemini-2.5-flash"
)

type GoogleGeneratorOptions struct {
	BaseURL    string
	APIKey     string
	APIVersion string
	// HTTPClient is used for every request. Defaults to a new http.Client.
	HTTPClient *http.Client
}

// GoogleGenerator calls the Gemini generateContent endpoint.
type GoogleGenerator struct {
	baseURL    string
	apiKey     string
	apiVersion string
	modelID    string
	client     *http.Client
}

var _ airdropscout.Generator = (*GoogleGenerator)(nil)

func NewGoogleGenerator(modelID string, options GoogleGeneratorOptions) *GoogleGenerator {
	if modelID == "" {
		modelID = DefaultModelID
	}
	baseURL := DefaultBaseURL
	if options.BaseURL != "" {
		baseURL = strings.TrimRight(options.BaseURL, "/")
	}
	apiVersion := DefaultAPIVersion
	if options.APIVersion != "" {
		apiVersion = options.APIVersion
	}
	client := options.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &GoogleGenerator{
		baseURL:    baseURL,
		apiKey:     options.APIKey,
		apiVersion: apiVersion,
		modelID:    modelID,
		client:     client,
	}
}

func (g *GoogleGenerator) Provider() string {
	return Provider
}

func (g *GoogleGenerator) ModelID() string {
	return g.modelID
}

func (g *GoogleGenerator) Generate(ctx context.Context, prompt string, options airdropscout.GenerateOptions) (*airdropscout.Generation, error) {
	return tracing.TraceGenerate(ctx, Provider, g.modelID, options, func(ctx context.Context) (*airdropscout.Generation, error) {
		if strings.TrimSpace(prompt) == "" {
			return nil, airdropscout.NewInvalidInputError("prompt is empty")
		}

		params := convertToGenerateContentParameters(prompt, g.modelID, options)

		response, err := clientutils.DoJSON[googleapi.GenerateContentResponse](ctx, g.client, Provider, clientutils.JSONRequestConfig{
			URL: fmt.Sprintf("%s/%s/models/%s:generateContent", g.baseURL, g.apiVersion, g.modelID),
			Headers: map[string]string{
				"x-goog-api-key": g.apiKey,
			},
			Body: params,
		})
		if err != nil {
			return nil, err
		}

		if len(response.Candidates) == 0 {
			if feedback := response.PromptFeedback; feedback != nil && feedback.BlockReason != nil {
				return nil, airdropscout.NewInvariantError(Provider, fmt.Sprintf("prompt blocked: %s", *feedback.BlockReason))
			}
			return nil, airdropscout.NewInvariantError(Provider, "no candidates returned")
		}

		candidate := response.Candidates[0]
		generation := &airdropscout.Generation{
			Citations: mapGroundingCitations(candidate.GroundingMetadata),
		}
		if candidate.Content != nil {
			generation.Text = mapGoogleText(candidate.Content.Parts)
		}
		if response.UsageMetadata != nil {
			generation.Usage = mapGoogleUsageMetadata(*response.UsageMetadata)
		}

		return generation, nil
	})
}

func convertToGenerateContentParameters(prompt, modelID string, options airdropscout.GenerateOptions) *googleapi.GenerateContentParameters {
	params := &googleapi.GenerateContentParameters{
		Model: modelID,
		Contents: []googleapi.Content{
			{
				Role:  "user",
				Parts: []googleapi.Part{{Text: &prompt}},
			},
		},
	}

	if options.SearchGrounding {
		params.Tools = []googleapi.Tool{{GoogleSearch: &googleapi.GoogleSearch{}}}
	}

	if options.Temperature != nil {
		params.GenerationConfig = &googleapi.GenerateContentConfig{
			Temperature: options.Temperature,
		}
	}

	return params
}

// mapGoogleText concatenates the text parts in order, skipping thoughts.
func mapGoogleText(parts []googleapi.Part) string {
	var sb strings.Builder
	for _, part := range parts {
		if part.Thought != nil && *part.Thought {
			continue
		}
		if part.Text != nil {
			sb.WriteString(*part.Text)
		}
	}
	return sb.String()
}

func mapGroundingCitations(metadata *googleapi.GroundingMetadata) []airdropscout.Citation {
	if metadata == nil {
		return nil
	}

	var citations []airdropscout.Citation
	for _, chunk := range metadata.GroundingChunks {
		if chunk.Web == nil || chunk.Web.Uri == nil {
			continue
		}
		citation := airdropscout.Citation{URI: *chunk.Web.Uri}
		if chunk.Web.Title != nil {
			citation.Title = *chunk.Web.Title
		}
		citations = append(citations, citation)
	}
	return citations
}

func mapGoogleUsageMetadata(usageMetadata googleapi.GenerateContentResponseUsageMetadata) *airdropscout.Usage {
	usage := &airdropscout.Usage{}

	if usageMetadata.PromptTokenCount != nil {
		usage.InputTokens = *usageMetadata.PromptTokenCount
	}
	if usageMetadata.ToolUsePromptTokenCount != nil {
		usage.InputTokens += *usageMetadata.ToolUsePromptTokenCount
	}
	if usageMetadata.CandidatesTokenCount != nil {
		usage.OutputTokens = *usageMetadata.CandidatesTokenCount
	}

	return usage
}
