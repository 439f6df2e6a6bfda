package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neutech/estates/internal/service"
)

// fakeClient records the prompt it received and returns a canned result.
type fakeClient struct {
	err    error
	result string
	prompt string
}

func (f *fakeClient) GenerateDescription(_ context.Context, prompt string) (DescriptionResponse, error) {
	f.prompt = prompt
	if f.err != nil {
		return DescriptionResponse{}, f.err
	}
	return DescriptionResponse{Description: f.result}, nil
}

func TestDescriber_ReturnsGeneratedText(t *testing.T) {
	client := &fakeClient{result: "A lovely duplex with views of the lagoon."}
	d := NewDescriberWithClient(client)

	got := d.Describe(context.Background(), service.DescriptionRequest{
		Title:    "4 Bedroom Duplex",
		Type:     "For Sale",
		Location: "Eti-Osa, Lagos",
		Features: "Pool, BQ",
	})
	assert.Equal(t, "A lovely duplex with views of the lagoon.", got)
}

func TestDescriber_FallsBackOnError(t *testing.T) {
	tests := []struct {
		err  error
		name string
	}{
		{name: "provider error", err: errors.New("rate limited")},
		{name: "no provider configured", err: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDescriberWithClient(&fakeClient{err: tt.err})

			got := d.Describe(context.Background(), service.DescriptionRequest{Title: "Anything"})
			assert.Equal(t, FallbackDescription, got)
		})
	}
}

func TestDescriber_PromptContainsListingDetails(t *testing.T) {
	client := &fakeClient{result: "ok"}
	d := NewDescriberWithClient(client)

	d.Describe(context.Background(), service.DescriptionRequest{
		Title:    "Half Plot in Epe",
		Type:     "For Sale",
		Location: "Epe, Lagos",
		Features: "Fenced, Gated Estate",
	})

	require.NotEmpty(t, client.prompt)
	assert.Contains(t, client.prompt, "Half Plot in Epe")
	assert.Contains(t, client.prompt, "For Sale")
	assert.Contains(t, client.prompt, "Epe, Lagos")
	assert.Contains(t, client.prompt, "Fenced, Gated Estate")
	assert.Contains(t, client.prompt, "max 80 words")
}

func TestUnavailableClient(t *testing.T) {
	_, err := Unavailable{}.GenerateDescription(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrUnavailable)
}
