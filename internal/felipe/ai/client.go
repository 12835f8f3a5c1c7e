// Package ai talks to the external text-generation service. The service is an
// opaque collaborator invoked over HTTP; it is treated as unreliable and
// failures are surfaced as ErrUnavailable with no retry.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrUnavailable reports that the generation service could not be reached or
// returned something unusable. Callers surface a generic downstream error;
// the wrapped cause stays in the logs.
var ErrUnavailable = errors.New("ai: generation service unavailable")

// GenerateRequest is the payload forwarded to the generation endpoint.
type GenerateRequest struct {
	Prompt  string         `json:"prompt"`
	Model   string         `json:"model,omitempty"`
	System  string         `json:"system,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// Client is anything that can run a generation call.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// DefaultTimeout bounds a generation call. Model inference is slow but not
// unbounded; anything past this is treated as a dead collaborator.
const DefaultTimeout = 30 * time.Second

// HTTPClient is the production Client backed by the generation service's
// HTTP API. One retry policy decision, made explicit: no retries.
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate posts the request to the generation endpoint and relays the
// response text verbatim.
func (c *HTTPClient) Generate(ctx context.Context, genReq GenerateRequest) (string, error) {
	body, err := json.Marshal(genReq)
	if err != nil {
		return "", fmt.Errorf("ai: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}

	return out.Response, nil
}
