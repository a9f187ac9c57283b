package dataapi

import (
	"encoding/json"
)

// AIProvider represents a configured AI service provider.
type AIProvider struct {
	ID         string            `json:"id,omitempty"         yaml:"id,omitempty"`
	Name       string            `json:"name"                 yaml:"name"`
	Type       string            `json:"type"                 yaml:"type"`
	Endpoint   string            `json:"endpoint,omitempty"   yaml:"endpoint,omitempty"`
	Models     []string          `json:"models,omitempty"     yaml:"models,omitempty"`
	Settings   map[string]string `json:"settings,omitempty"   yaml:"settings,omitempty"`
	Enabled    bool              `json:"enabled"              yaml:"enabled"`
	CreateTime string            `json:"createTime,omitempty" yaml:"createTime,omitempty"`
	UpdateTime string            `json:"updateTime,omitempty" yaml:"updateTime,omitempty"`
}

// AIProviderCreateRequest registers a new AI provider.
type AIProviderCreateRequest struct {
	Name     string `json:"name"               yaml:"name"`
	Type     string `json:"type"               yaml:"type"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	// APIKey is the provider-side credential; it is write-only and never
	// echoed back in responses.
	APIKey   string            `json:"apiKey,omitempty"   yaml:"apiKey,omitempty"`
	Settings map[string]string `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// AIProviderUpdateRequest updates an AI provider. Nil fields are left
// unchanged.
type AIProviderUpdateRequest struct {
	Name     *string           `json:"name,omitempty"     yaml:"name,omitempty"`
	Endpoint *string           `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	APIKey   *string           `json:"apiKey,omitempty"   yaml:"apiKey,omitempty"`
	Enabled  *bool             `json:"enabled,omitempty"  yaml:"enabled,omitempty"`
	Settings map[string]string `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// AIProviderTestResult reports a provider connectivity test.
type AIProviderTestResult struct {
	Success   bool   `json:"success"             yaml:"success"`
	Message   string `json:"message,omitempty"   yaml:"message,omitempty"`
	LatencyMs int    `json:"latencyMs,omitempty" yaml:"latencyMs,omitempty"`
}

// AIModel describes a model exposed by a provider.
type AIModel struct {
	ID           string   `json:"id"                     yaml:"id"`
	Name         string   `json:"name"                   yaml:"name"`
	Capabilities []string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	MaxTokens    int      `json:"maxTokens,omitempty"    yaml:"maxTokens,omitempty"`
}

// ChatMessage is one turn of a chat completion conversation.
type ChatMessage struct {
	Role    string `json:"role"    yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// AIInvokeRequest is a generic invocation of a provider capability.
type AIInvokeRequest struct {
	ProviderID string          `json:"providerId"           yaml:"providerId"`
	Model      string          `json:"model,omitempty"      yaml:"model,omitempty"`
	Capability string          `json:"capability"           yaml:"capability"`
	Input      json.RawMessage `json:"input"                yaml:"input"`
	Parameters json.RawMessage `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	// Stream requests chunked delivery; see AIProvidersClient.Invoke.
	Stream bool `json:"stream,omitempty" yaml:"stream,omitempty"`
}

// AIInvokeResponse is the result of a generic invocation.
type AIInvokeResponse struct {
	RequestID string          `json:"requestId,omitempty" yaml:"requestId,omitempty"`
	Output    json.RawMessage `json:"output"              yaml:"output"`
	Model     string          `json:"model,omitempty"     yaml:"model,omitempty"`
	Usage     *AIUsage        `json:"usage,omitempty"     yaml:"usage,omitempty"`
}

// AIUsage is the token accounting attached to an invocation.
type AIUsage struct {
	PromptTokens     int `json:"promptTokens"     yaml:"promptTokens"`
	CompletionTokens int `json:"completionTokens" yaml:"completionTokens"`
	TotalTokens      int `json:"totalTokens"      yaml:"totalTokens"`
}

// TextGenerationRequest generates text from a prompt.
type TextGenerationRequest struct {
	ProviderID  string  `json:"providerId"            yaml:"providerId"`
	Model       string  `json:"model,omitempty"       yaml:"model,omitempty"`
	Prompt      string  `json:"prompt"                yaml:"prompt"`
	MaxTokens   int     `json:"maxTokens,omitempty"   yaml:"maxTokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
}

// TextGenerationResult is the output of a text generation call.
type TextGenerationResult struct {
	Text  string   `json:"text"            yaml:"text"`
	Model string   `json:"model,omitempty" yaml:"model,omitempty"`
	Usage *AIUsage `json:"usage,omitempty" yaml:"usage,omitempty"`
}

// ChatCompletionRequest runs a chat completion.
type ChatCompletionRequest struct {
	ProviderID  string        `json:"providerId"            yaml:"providerId"`
	Model       string        `json:"model,omitempty"       yaml:"model,omitempty"`
	Messages    []ChatMessage `json:"messages"              yaml:"messages"`
	MaxTokens   int           `json:"maxTokens,omitempty"   yaml:"maxTokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty" yaml:"temperature,omitempty"`
}

// ChatCompletionResult is the output of a chat completion call.
type ChatCompletionResult struct {
	Message ChatMessage `json:"message"         yaml:"message"`
	Model   string      `json:"model,omitempty" yaml:"model,omitempty"`
	Usage   *AIUsage    `json:"usage,omitempty" yaml:"usage,omitempty"`
}

// StreamChunkFunc receives one chunk of a streaming invocation. Returning an
// error aborts the stream.
type StreamChunkFunc func(chunk []byte) error
