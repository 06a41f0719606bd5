// Package provider implements the text-generation side of the pipeline:
// style-aware prompt construction, best-effort redaction of sensitive
// tokens, and thin clients for the Anthropic and OpenAI APIs with a
// shared retry budget.
package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-retryablehttp"
)

// Request carries one date group's worth of commit subjects to format.
type Request struct {
	// Label is the human-readable period heading (e.g. "01 Mar 2024").
	Label string
	// Style selects the changelog tone.
	Style Style
	// Messages are the raw commit subjects, fetch order preserved.
	Messages []string
}

// Provider is a stateless text-generation backend. Implementations are
// safe for sequential reuse across groups; the pipeline makes one
// blocking call per date group.
type Provider interface {
	Name() string
	// FormatGroup rewrites the request's commit messages into public-safe
	// changelog bullets, each prefixed with "- ".
	FormatGroup(ctx context.Context, req Request) ([]string, error)
	// Summarize condenses already formatted changelog content into a
	// short summary paragraph.
	Summarize(ctx context.Context, content string, style Style) (string, error)
}

const (
	maxTokens      = 400
	requestTimeout = 30 * time.Second
)

// Retry settings shared by both providers: three attempts with
// exponential backoff between 4s and 10s. Vars so tests can shrink the
// intervals.
var (
	maxAttempts     = 3
	initialInterval = 4 * time.Second
	maxInterval     = 10 * time.Second
)

// newHTTPClient builds the shared HTTP client. Transport-level retries
// (429 rate limits, 5xx) are delegated to retryablehttp; its defaults
// honor the Retry-After header.
func newHTTPClient() *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.Logger = nil
	client := rc.StandardClient()
	client.Timeout = requestTimeout
	return client
}

// generateFunc is one provider-specific request/response round trip.
type generateFunc func(ctx context.Context) (string, error)

// withRetry runs generate under the shared backoff budget.
func withRetry(ctx context.Context, generate generateFunc) (string, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = initialInterval
	policy.MaxInterval = maxInterval

	var result string
	operation := func() error {
		var err error
		result, err = generate(ctx)
		return err
	}

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(maxAttempts-1)), ctx))
	if err != nil {
		return "", err
	}
	return result, nil
}

// ensureBullets normalizes a model response into "- " prefixed lines.
// Models occasionally drop the prefix or wrap output in blank lines.
func ensureBullets(content string) []string {
	var bullets []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "- ") {
			line = "- " + strings.TrimPrefix(line, "* ")
		}
		bullets = append(bullets, line)
	}
	return bullets
}

// statusError reports a non-2xx provider response.
func statusError(provider string, status string) error {
	return fmt.Errorf("%s responded with status %s", provider, status)
}
