package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neutech/estates/internal/service"
)

// FallbackDescription is returned whenever the provider call fails for any
// reason. Callers treat the describer's output as always-valid text.
const FallbackDescription = "Failed to generate description using AI. Please try again."

// Describer wraps a Client with the real-estate prompt and the graceful
// fallback the upload flow relies on.
type Describer struct {
	client Client
}

// NewDescriber creates a describer backed by the configured provider.
func NewDescriber(cfg Config) (*Describer, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Describer{client: client}, nil
}

// NewDescriberWithClient wraps an existing client, mainly for tests.
func NewDescriberWithClient(client Client) *Describer {
	return &Describer{client: client}
}

// Describe generates a listing description. On any provider failure it
// logs the cause and returns FallbackDescription instead of an error.
func (d *Describer) Describe(ctx context.Context, req service.DescriptionRequest) string {
	resp, err := d.client.GenerateDescription(ctx, buildPrompt(req))
	if err != nil {
		slog.Error("description generation failed", "error", err)
		return FallbackDescription
	}
	return resp.Description
}

// buildPrompt assembles the generation prompt from the listing details.
func buildPrompt(req service.DescriptionRequest) string {
	return fmt.Sprintf(`Write a compelling, professional, and attractive real estate description (max 80 words) for a property with the following details:
Title: %s
Type: %s
Location: %s
Key Features: %s

The tone should be persuasive and invite potential buyers or renters.`,
		req.Title, req.Type, req.Location, req.Features)
}
