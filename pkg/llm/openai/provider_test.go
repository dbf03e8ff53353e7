package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"faq-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSuccess(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  Hello there.  "}},
			},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", server.URL, "gpt-4o-mini")

	got, err := provider.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "hi"}},
		llm.WithTemperature(0.3),
	)

	require.NoError(t, err)
	assert.Equal(t, "Hello there.", got)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody.Model)
	require.Len(t, gotBody.Messages, 1)
}

func TestChatMissingAPIKey(t *testing.T) {
	provider := NewOpenAIProvider("", "http://localhost:0", "gpt-4o-mini")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	var confErr *llm.ConfigurationError
	require.ErrorAs(t, err, &confErr)
}

func TestChatNon200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", server.URL, "gpt-4o-mini")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	var provErr *llm.ProviderError
	require.ErrorAs(t, err, &provErr)
}

func TestChatEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", server.URL, "gpt-4o-mini")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	var provErr *llm.ProviderError
	require.ErrorAs(t, err, &provErr)
}

func TestChatUnreachableHost(t *testing.T) {
	provider := NewOpenAIProvider("test-key", "http://127.0.0.1:1", "gpt-4o-mini")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	var provErr *llm.ProviderError
	require.ErrorAs(t, err, &provErr)
}

func TestGenerateWrapsPrompt(t *testing.T) {
	var gotBody chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "ok"}},
			},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", server.URL, "gpt-4o-mini")

	_, err := provider.Generate(context.Background(), "single prompt")

	require.NoError(t, err)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "single prompt", gotBody.Messages[0].Content)
}
