package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	anthropicBaseURL = "https://api.anthropic.com"
	anthropicModel   = "claude-3-5-sonnet-20240620"
	anthropicVersion = "2023-06-01"
)

// Anthropic formats changelog entries via the Anthropic messages API.
type Anthropic struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropic constructs an Anthropic provider. The API key comes from
// configuration, never from the environment inside this package.
func NewAnthropic(apiKey string) (*Anthropic, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic API key is empty")
	}
	return &Anthropic{
		apiKey:     apiKey,
		model:      anthropicModel,
		baseURL:    anthropicBaseURL,
		httpClient: newHTTPClient(),
	}, nil
}

func (a *Anthropic) Name() string { return "anthropic" }

// FormatGroup implements Provider.
func (a *Anthropic) FormatGroup(ctx context.Context, req Request) ([]string, error) {
	userPrompt := BuildGroupPrompt(Request{
		Label:    req.Label,
		Style:    req.Style,
		Messages: RedactAll(req.Messages),
	})

	content, err := withRetry(ctx, func(ctx context.Context) (string, error) {
		return a.generate(ctx, userPrompt)
	})
	if err != nil {
		return nil, err
	}
	return ensureBullets(content), nil
}

// Summarize implements Provider.
func (a *Anthropic) Summarize(ctx context.Context, content string, style Style) (string, error) {
	prompt := BuildSummaryPrompt(content, style)
	return withRetry(ctx, func(ctx context.Context) (string, error) {
		return a.generate(ctx, prompt)
	})
}

func (a *Anthropic) generate(ctx context.Context, userPrompt string) (string, error) {
	payload := map[string]any{
		"model":      a.model,
		"max_tokens": maxTokens,
		"system":     SystemPrompt(),
		"messages": []map[string]string{
			{"role": "user", "content": userPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling anthropic payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building anthropic request: %w", err)
	}
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling anthropic: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", statusError("anthropic", resp.Status)
	}

	var parsed struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding anthropic response: %w", err)
	}

	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errors.New("anthropic returned no text content")
}
