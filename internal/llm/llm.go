// Package llm defines the provider-neutral completion client used by the AI
// features. Provider packages live under internal/llm/<provider>.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Provider names accepted by LLM_PROVIDER.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

// Request is a single-turn completion request.
type Request struct {
	System    string
	Prompt    string
	JSON      bool
	MaxTokens int
}

// Client abstracts LLM providers.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Provider() string
}

// ErrNotConfigured is returned by the disabled client.
var ErrNotConfigured = errors.New("llm provider not configured")

// ErrEmptyResponse is returned when a provider answers without text.
var ErrEmptyResponse = errors.New("llm response empty")

// StatusError carries the HTTP status of a failed provider call.
type StatusError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s status %d: %v", e.Provider, e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// Temporary reports whether the call is worth retrying.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// Disabled is the client used when no provider is configured.
type Disabled struct{}

func (Disabled) Complete(context.Context, Request) (string, error) { return "", ErrNotConfigured }

func (Disabled) Provider() string { return ProviderNone }

// Configured reports whether c can reach a provider.
func Configured(c Client) bool {
	return c != nil && c.Provider() != ProviderNone
}

// ExtractJSONObject returns the outermost {...} span of raw. Models often wrap
// JSON in prose or code fences.
func ExtractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
