// OpenAI-compatible chat completions adapter. Groq exposes the same wire
// format, so one adapter serves both — the base URL selects the vendor.
// Endpoints used:
//   - POST /chat/completions — non-streaming chat completion
//   - GET  /models           — health check
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	openaiDefaultBase = "https://api.openai.com/v1"

	// GroqBaseURL is the OpenAI-compatible endpoint Groq serves.
	GroqBaseURL = "https://api.groq.com/openai/v1"
)

// OpenAIProvider implements LLMProvider against any OpenAI-compatible
// chat completions API.
type OpenAIProvider struct {
	baseURL    string
	apiKey     string
	model      string
	vendor     string // reported by ModelInfo: "openai" or "groq"
	httpClient *http.Client
}

// NewOpenAIProvider creates an OpenAIProvider with a 60s default timeout.
// An empty baseURL selects the public OpenAI endpoint.
func NewOpenAIProvider(baseURL, apiKey, model, vendor string) *OpenAIProvider {
	if baseURL == "" {
		baseURL = openaiDefaultBase
	}
	if vendor == "" {
		vendor = "openai"
	}
	return &OpenAIProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		vendor:  vendor,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ─── internal OpenAI JSON types ─────────────────────────────────────────────

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	Temperature float32         `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openaiResponse struct {
	Choices []struct {
		Message      openaiMessage `json:"message"`
		FinishReason string        `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// ─── LLMProvider implementation ─────────────────────────────────────────────

// ChatCompletion performs a non-streaming chat via POST /chat/completions.
func (p *OpenAIProvider) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	msgs := make([]openaiMessage, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openaiMessage(m)
	}

	body, err := json.Marshal(openaiRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	respBody, postErr := p.doPost(ctx, "/chat/completions", body)
	if postErr != nil {
		return nil, postErr
	}
	defer respBody.Close() //nolint:errcheck

	var apiResp openaiResponse
	if decodeErr := json.NewDecoder(respBody).Decode(&apiResp); decodeErr != nil {
		return nil, fmt.Errorf("decode chat response: %w", decodeErr)
	}
	if len(apiResp.Choices) == 0 {
		return nil, fmt.Errorf("%s chat: empty choices", p.vendor)
	}
	return &ChatResponse{
		Content:    apiResp.Choices[0].Message.Content,
		StopReason: apiResp.Choices[0].FinishReason,
		Tokens:     apiResp.Usage.TotalTokens,
	}, nil
}

// ModelInfo returns static metadata for this provider/model.
func (p *OpenAIProvider) ModelInfo() ModelMeta {
	return ModelMeta{
		ID:        p.model,
		Provider:  p.vendor,
		Version:   "v1",
		MaxTokens: 128000,
	}
}

// HealthCheck calls GET /models — returns nil if the API accepts the key.
func (p *OpenAIProvider) HealthCheck(ctx context.Context) error {
	url := p.baseURL + "/models"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%s healthcheck: build request: %w", p.vendor, err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s healthcheck: %w", p.vendor, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s healthcheck: status %d", p.vendor, resp.StatusCode)
	}
	return nil
}

// doPost sends a POST request to baseURL+path and returns the response body.
// Caller is responsible for closing the returned ReadCloser.
func (p *OpenAIProvider) doPost(ctx context.Context, path string, body []byte) (io.ReadCloser, error) {
	url := p.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s post %s: build request: %w", p.vendor, path, err)
	}
	req.Header.Set(headerContentType, mimeJSON)
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s post %s: %w", p.vendor, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close() //nolint:errcheck
		return nil, fmt.Errorf("%s post %s: status %d", p.vendor, path, resp.StatusCode)
	}
	return resp.Body, nil
}
