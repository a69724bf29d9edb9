package clientutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/krastod/airdropscout"
)

// maxErrorBody caps how much of a failed response body is kept in the error.
const maxErrorBody = 4 << 10

// JSONRequestConfig holds configuration for JSON requests
type JSONRequestConfig struct {
	URL     string
	Headers map[string]string
	Body    any
}

// DoJSON performs a JSON POST request and unmarshals the response.
//
// Network failures are returned as Transport errors, HTTP statuses >= 400 as
// StatusCode errors carrying the response body, and undecodable bodies as
// Invariant errors attributed to provider.
func DoJSON[T any](ctx context.Context, client *http.Client, provider string, config JSONRequestConfig) (*T, error) {
	reqBody, err := json.Marshal(config.Body)
	if err != nil {
		return nil, airdropscout.NewInvalidInputError(fmt.Sprintf("failed to marshal request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.URL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, airdropscout.NewInvalidInputError(fmt.Sprintf("failed to create request: %v", err))
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range config.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, airdropscout.NewTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, airdropscout.NewStatusCodeError(resp.StatusCode, string(respBody))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, airdropscout.NewTransportError(fmt.Errorf("failed to read response body: %w", err))
	}

	var result T
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, airdropscout.NewInvariantError(provider, fmt.Sprintf("failed to unmarshal response: %v", err))
	}

	return &result, nil
}
