package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	dahttp "github.com/acproject/dataapi-sdks/internal/http"
	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

// AIProvidersClient implements dataapi.AIProvidersClient
type AIProvidersClient struct {
	httpClient *dahttp.Client
}

// NewAIProvidersClient creates a new AI providers client
func NewAIProvidersClient(httpClient *dahttp.Client) *AIProvidersClient {
	return &AIProvidersClient{httpClient: httpClient}
}

// List implements dataapi.AIProvidersClient.List
func (c *AIProvidersClient) List(ctx context.Context, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.AIProvider], error) {
	return fetchPage[dataapi.AIProvider](ctx, c.httpClient, "/ai/providers", params)
}

// FetchPage implements dataapi.AIProvidersClient.FetchPage
func (c *AIProvidersClient) FetchPage(ctx context.Context, path string, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.AIProvider], error) {
	return fetchPage[dataapi.AIProvider](ctx, c.httpClient, path, params)
}

// Get implements dataapi.AIProvidersClient.Get
func (c *AIProvidersClient) Get(ctx context.Context, id string) (*dataapi.AIProvider, error) {
	path := fmt.Sprintf("/ai/providers/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting AI provider: %w", err)
	}

	var provider dataapi.AIProvider
	if err := json.Unmarshal(resp.Body, &provider); err != nil {
		return nil, fmt.Errorf("parsing AI provider response: %w", err)
	}

	return &provider, nil
}

// Create implements dataapi.AIProvidersClient.Create
func (c *AIProvidersClient) Create(ctx context.Context, request *dataapi.AIProviderCreateRequest) (*dataapi.AIProvider, error) {
	resp, err := c.httpClient.Post(ctx, "/ai/providers", request)
	if err != nil {
		return nil, fmt.Errorf("creating AI provider: %w", err)
	}

	if err := expectCreated("/ai/providers", resp); err != nil {
		return nil, fmt.Errorf("creating AI provider: %w", err)
	}

	var provider dataapi.AIProvider
	if err := json.Unmarshal(resp.Body, &provider); err != nil {
		return nil, fmt.Errorf("parsing AI provider response: %w", err)
	}

	return &provider, nil
}

// Update implements dataapi.AIProvidersClient.Update
func (c *AIProvidersClient) Update(ctx context.Context, id string, request *dataapi.AIProviderUpdateRequest) (*dataapi.AIProvider, error) {
	path := fmt.Sprintf("/ai/providers/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating AI provider: %w", err)
	}

	var provider dataapi.AIProvider
	if err := json.Unmarshal(resp.Body, &provider); err != nil {
		return nil, fmt.Errorf("parsing AI provider response: %w", err)
	}

	return &provider, nil
}

// Delete implements dataapi.AIProvidersClient.Delete
func (c *AIProvidersClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/ai/providers/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting AI provider: %w", err)
	}

	return nil
}

// Test implements dataapi.AIProvidersClient.Test
func (c *AIProvidersClient) Test(ctx context.Context, id string) (*dataapi.AIProviderTestResult, error) {
	path := fmt.Sprintf("/ai/providers/%s/test", id)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("testing AI provider: %w", err)
	}

	var result dataapi.AIProviderTestResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing AI provider test response: %w", err)
	}

	return &result, nil
}

// ListModels implements dataapi.AIProvidersClient.ListModels
func (c *AIProvidersClient) ListModels(ctx context.Context, id string) ([]dataapi.AIModel, error) {
	path := fmt.Sprintf("/ai/providers/%s/models", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing AI models: %w", err)
	}

	var models []dataapi.AIModel
	if err := json.Unmarshal(resp.Body, &models); err != nil {
		return nil, fmt.Errorf("parsing AI models response: %w", err)
	}

	return models, nil
}

// Invoke implements dataapi.AIProvidersClient.Invoke. Streaming
// requests deliver chunks through onChunk; the returned response
// carries the accumulated output.
func (c *AIProvidersClient) Invoke(ctx context.Context, request *dataapi.AIInvokeRequest, onChunk dataapi.StreamChunkFunc) (*dataapi.AIInvokeResponse, error) {
	if request != nil && request.Stream {
		output, err := c.httpClient.Stream(ctx, &dahttp.Request{
			Method: http.MethodPost,
			Path:   "/ai/invoke",
			Body:   request,
		}, onChunk)
		if err != nil {
			return nil, fmt.Errorf("invoking AI provider: %w", err)
		}

		return &dataapi.AIInvokeResponse{Output: output}, nil
	}

	resp, err := c.httpClient.Post(ctx, "/ai/invoke", request)
	if err != nil {
		return nil, fmt.Errorf("invoking AI provider: %w", err)
	}

	var result dataapi.AIInvokeResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing invoke response: %w", err)
	}

	return &result, nil
}

// GenerateText implements dataapi.AIProvidersClient.GenerateText
func (c *AIProvidersClient) GenerateText(ctx context.Context, request *dataapi.TextGenerationRequest) (*dataapi.TextGenerationResult, error) {
	resp, err := c.httpClient.Post(ctx, "/ai/generate-text", request)
	if err != nil {
		return nil, fmt.Errorf("generating text: %w", err)
	}

	var result dataapi.TextGenerationResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing text generation response: %w", err)
	}

	return &result, nil
}

// ChatCompletion implements dataapi.AIProvidersClient.ChatCompletion
func (c *AIProvidersClient) ChatCompletion(ctx context.Context, request *dataapi.ChatCompletionRequest) (*dataapi.ChatCompletionResult, error) {
	resp, err := c.httpClient.Post(ctx, "/ai/chat-completion", request)
	if err != nil {
		return nil, fmt.Errorf("running chat completion: %w", err)
	}

	var result dataapi.ChatCompletionResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing chat completion response: %w", err)
	}

	return &result, nil
}
