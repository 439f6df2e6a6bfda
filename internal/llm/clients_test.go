package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantErr  bool
		errMatch string
	}{
		{
			name: "anthropic with key",
			cfg:  Config{Provider: "anthropic", APIKey: "key"},
		},
		{
			name: "empty provider defaults to anthropic",
			cfg:  Config{APIKey: "key"},
		},
		{
			name: "openai with key",
			cfg:  Config{Provider: "openai", APIKey: "key"},
		},
		{
			name: "provider is case insensitive",
			cfg:  Config{Provider: "OpenAI", APIKey: "key"},
		},
		{
			name:     "anthropic without key",
			cfg:      Config{Provider: "anthropic"},
			wantErr:  true,
			errMatch: "API key is required",
		},
		{
			name:     "unknown provider",
			cfg:      Config{Provider: "gemini", APIKey: "key"},
			wantErr:  true,
			errMatch: "unsupported LLM provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMatch)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestAnthropicClient_GenerateDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-3-sonnet-20240229", body["model"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"type": "text", "text": "  A bright family home.  "},
			},
		})
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "test-key"})
	require.NoError(t, err)
	client.(*anthropicClient).baseURL = server.URL

	resp, err := client.GenerateDescription(context.Background(), "describe it")
	require.NoError(t, err)
	assert.Equal(t, "A bright family home.", resp.Description)
}

func TestAnthropicClient_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		errPart string
	}{
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"error": "boom"}`,
			errPart: "status 500",
		},
		{
			name:    "empty content",
			status:  http.StatusOK,
			body:    `{"content": []}`,
			errPart: "no content",
		},
		{
			name:    "blank text",
			status:  http.StatusOK,
			body:    `{"content": [{"type": "text", "text": "   "}]}`,
			errPart: "empty description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := newAnthropicClient(Config{APIKey: "test-key"})
			require.NoError(t, err)
			client.(*anthropicClient).baseURL = server.URL

			_, err = client.GenerateDescription(context.Background(), "prompt")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestOpenAIClient_GenerateDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "A prime plot."}},
			},
		})
	}))
	defer server.Close()

	client, err := newOpenAIClient(Config{APIKey: "test-key"})
	require.NoError(t, err)
	client.(*openAIClient).baseURL = server.URL

	resp, err := client.GenerateDescription(context.Background(), "describe it")
	require.NoError(t, err)
	assert.Equal(t, "A prime plot.", resp.Description)
}
