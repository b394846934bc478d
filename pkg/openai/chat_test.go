package openai

import (
	"DishaAssistant/pkg/llm"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, reply string, seen *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(seen))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "cmpl-1",
			"object":  "chat.completion",
			"choices": []map[string]interface{}{{"index": 0, "message": map[string]string{"role": "assistant", "content": reply}}},
		})
	}))
}

func TestComplete_MapsRoles(t *testing.T) {
	var seen openai.ChatCompletionRequest
	srv := newTestServer(t, "Your train is on time.", &seen)
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	client := NewChatGPTWithConfig(cfg, "gpt-4o-mini")

	text, err := client.Complete(context.Background(), llm.Request{
		System: "You are Disha.",
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "hi"},
			{Role: llm.RoleAssistant, Content: "hello"},
			{Role: llm.RoleUser, Content: "status of 12301"},
		},
		Temperature: 0.7,
		MaxTokens:   800,
	})
	require.NoError(t, err)
	assert.Equal(t, "Your train is on time.", text)

	require.Len(t, seen.Messages, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, seen.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, seen.Messages[2].Role)
	assert.Equal(t, "status of 12301", seen.Messages[3].Content)
	assert.Equal(t, 800, seen.MaxTokens)
	assert.Equal(t, "openai", client.Name())
}

func TestComplete_EmptyIsError(t *testing.T) {
	var seen openai.ChatCompletionRequest
	srv := newTestServer(t, "", &seen)
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"

	_, err := NewChatGPTWithConfig(cfg, "gpt-4o-mini").Complete(context.Background(), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
	})
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
}
