// Package llm provides the language-model integration used to draft
// listing descriptions. It supports the Anthropic and OpenAI APIs behind a
// single Client interface; the Describer wrapper turns provider failures
// into a fixed fallback string so upload callers never see an error.
package llm

import (
	"context"
	"errors"
)

// Client defines the interface for LLM providers.
type Client interface {
	GenerateDescription(ctx context.Context, prompt string) (DescriptionResponse, error)
}

// ErrUnavailable is returned by the Unavailable client on every call.
var ErrUnavailable = errors.New("no description provider configured")

// Unavailable is a Client for running without provider credentials. Every
// call fails, which the Describer turns into the fixed fallback text.
type Unavailable struct{}

// GenerateDescription always returns ErrUnavailable.
func (Unavailable) GenerateDescription(_ context.Context, _ string) (DescriptionResponse, error) {
	return DescriptionResponse{}, ErrUnavailable
}

// DescriptionResponse contains the LLM's generated description.
type DescriptionResponse struct {
	Description string
}

// Config holds provider selection and credentials. The API key is required
// at construction time; everything else has provider defaults.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}
