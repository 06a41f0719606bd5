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
	openaiBaseURL = "https://api.openai.com"
	openaiModel   = "gpt-4o-mini"
)

// OpenAI formats changelog entries via the chat completions API.
type OpenAI struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAI constructs an OpenAI provider.
func NewOpenAI(apiKey string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("openai API key is empty")
	}
	return &OpenAI{
		apiKey:     apiKey,
		model:      openaiModel,
		baseURL:    openaiBaseURL,
		httpClient: newHTTPClient(),
	}, nil
}

func (o *OpenAI) Name() string { return "openai" }

// FormatGroup implements Provider.
func (o *OpenAI) FormatGroup(ctx context.Context, req Request) ([]string, error) {
	userPrompt := BuildGroupPrompt(Request{
		Label:    req.Label,
		Style:    req.Style,
		Messages: RedactAll(req.Messages),
	})

	content, err := withRetry(ctx, func(ctx context.Context) (string, error) {
		return o.generate(ctx, userPrompt)
	})
	if err != nil {
		return nil, err
	}
	return ensureBullets(content), nil
}

// Summarize implements Provider.
func (o *OpenAI) Summarize(ctx context.Context, content string, style Style) (string, error) {
	prompt := BuildSummaryPrompt(content, style)
	return withRetry(ctx, func(ctx context.Context) (string, error) {
		return o.generate(ctx, prompt)
	})
}

func (o *OpenAI) generate(ctx context.Context, userPrompt string) (string, error) {
	payload := map[string]any{
		"model":      o.model,
		"max_tokens": maxTokens,
		"messages": []map[string]string{
			{"role": "system", "content": SystemPrompt()},
			{"role": "user", "content": userPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling openai payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building openai request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling openai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", statusError("openai", resp.Status)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding openai response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
