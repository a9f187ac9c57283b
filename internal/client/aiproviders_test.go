package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

func TestAIProvidersClient_CRUD(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/ai/providers" && r.Method == "POST":
			var req dataapi.AIProviderCreateRequest

			_ = json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "openai", req.Type)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(dataapi.AIProvider{ID: "prov-1", Name: req.Name, Type: req.Type})
		case r.URL.Path == "/ai/providers/prov-1" && r.Method == "GET":
			_ = json.NewEncoder(w).Encode(dataapi.AIProvider{ID: "prov-1", Name: "primary"})
		case r.URL.Path == "/ai/providers/prov-1" && r.Method == "DELETE":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server)
	ctx := context.Background()

	created, err := client.AIProviders().Create(ctx, &dataapi.AIProviderCreateRequest{Name: "primary", Type: "openai"})
	require.NoError(t, err)
	assert.Equal(t, "prov-1", created.ID)

	provider, err := client.AIProviders().Get(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, "primary", provider.Name)

	require.NoError(t, client.AIProviders().Delete(ctx, "prov-1"))
}

func TestAIProvidersClient_TestAndModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ai/providers/prov-1/test":
			_ = json.NewEncoder(w).Encode(dataapi.AIProviderTestResult{Success: true, LatencyMs: 80})
		case "/ai/providers/prov-1/models":
			_ = json.NewEncoder(w).Encode([]dataapi.AIModel{
				{ID: "gpt-test", Capabilities: []string{"chat"}},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server)
	ctx := context.Background()

	result, err := client.AIProviders().Test(ctx, "prov-1")
	require.NoError(t, err)
	assert.True(t, result.Success)

	models, err := client.AIProviders().ListModels(ctx, "prov-1")
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Contains(t, models[0].Capabilities, "chat")
}

func TestAIProvidersClient_Invoke(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ai/invoke", r.URL.Path)

		var req dataapi.AIInvokeRequest

		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "completion", req.Capability)
		assert.False(t, req.Stream)

		_ = json.NewEncoder(w).Encode(dataapi.AIInvokeResponse{
			Output: json.RawMessage(`{"text":"hello"}`),
			Usage:  &dataapi.AIUsage{TotalTokens: 12},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	resp, err := client.AIProviders().Invoke(context.Background(), &dataapi.AIInvokeRequest{
		ProviderID: "prov-1",
		Capability: "completion",
		Input:      json.RawMessage(`{"prompt":"hi"}`),
	}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hello"}`, string(resp.Output))
	assert.Equal(t, 12, resp.Usage.TotalTokens)
}

func TestAIProvidersClient_InvokeStreaming(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req dataapi.AIInvokeRequest

		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.True(t, req.Stream)

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("data: hel\n\ndata: lo\n\ndata: [DONE]\n"))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	var chunks []string

	resp, err := client.AIProviders().Invoke(context.Background(), &dataapi.AIInvokeRequest{
		ProviderID: "prov-1",
		Capability: "completion",
		Input:      json.RawMessage(`{"prompt":"hi"}`),
		Stream:     true,
	}, func(chunk []byte) error {
		chunks = append(chunks, string(chunk))

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"hel", "lo"}, chunks)
	assert.Equal(t, "hello", string(resp.Output))
}

func TestAIProvidersClient_GenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ai/generate-text", r.URL.Path)

		_ = json.NewEncoder(w).Encode(dataapi.TextGenerationResult{Text: "generated"})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	result, err := client.AIProviders().GenerateText(context.Background(), &dataapi.TextGenerationRequest{
		ProviderID: "prov-1",
		Prompt:     "write a haiku",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated", result.Text)
}

func TestAIProvidersClient_ChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ai/chat-completion", r.URL.Path)

		var req dataapi.ChatCompletionRequest

		_ = json.NewDecoder(r.Body).Decode(&req)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		_ = json.NewEncoder(w).Encode(dataapi.ChatCompletionResult{
			Message: dataapi.ChatMessage{Role: "assistant", Content: "hi there"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	result, err := client.AIProviders().ChatCompletion(context.Background(), &dataapi.ChatCompletionRequest{
		ProviderID: "prov-1",
		Messages: []dataapi.ChatMessage{
			{Role: "system", Content: "be brief"},
			{Role: "user", Content: "hello"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi there", result.Message.Content)
}
