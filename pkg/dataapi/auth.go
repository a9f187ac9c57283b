package dataapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
)

// AuthType identifies the authentication scheme of a provider.
type AuthType string

const (
	AuthTypeBearer AuthType = "bearer"
	AuthTypeAPIKey AuthType = "api_key"
	AuthTypeBasic  AuthType = "basic"
	AuthTypeCustom AuthType = "custom"
	AuthTypeNone   AuthType = "none"
)

// DefaultAPIKeyHeader is the header used by API key providers when no
// override is given.
const DefaultAPIKeyHeader = "X-API-Key"

// AuthProvider produces the authentication headers attached to each request.
// Implementations never return an error from Headers: an invalid provider
// yields an empty map and reports IsValid() == false.
//
// Refresh is an opt-in hook; the engine invokes it at most once per call
// sequence after a 401 and re-issues the request exactly once if it reports
// success. The built-in providers cannot refresh and always return false.
type AuthProvider interface {
	// Type returns the scheme tag, for observability.
	Type() AuthType
	// Headers returns the header additions for the next request.
	Headers() map[string]string
	// IsValid reports whether the provider has usable credentials.
	IsValid() bool
	// Refresh attempts to renew credentials, returning success.
	Refresh(ctx context.Context) bool
	// Clear wipes the stored secrets.
	Clear()
	// String renders a debug form that never reveals secret material.
	String() string
}

// BearerTokenProvider authenticates with "Authorization: Bearer <token>".
type BearerTokenProvider struct {
	mu    sync.RWMutex
	token string
}

// NewBearerTokenProvider creates a bearer token provider.
func NewBearerTokenProvider(token string) *BearerTokenProvider {
	return &BearerTokenProvider{token: token}
}

// Type implements AuthProvider.Type.
func (p *BearerTokenProvider) Type() AuthType {
	return AuthTypeBearer
}

// Headers implements AuthProvider.Headers.
func (p *BearerTokenProvider) Headers() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.token == "" {
		return map[string]string{}
	}

	return map[string]string{"Authorization": "Bearer " + p.token}
}

// IsValid implements AuthProvider.IsValid.
func (p *BearerTokenProvider) IsValid() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.token != ""
}

// Refresh implements AuthProvider.Refresh. Static tokens cannot refresh.
func (p *BearerTokenProvider) Refresh(ctx context.Context) bool {
	return false
}

// Clear implements AuthProvider.Clear.
func (p *BearerTokenProvider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token = ""
}

// SetToken replaces the stored token.
func (p *BearerTokenProvider) SetToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token = token
}

// String implements AuthProvider.String.
func (p *BearerTokenProvider) String() string {
	return "BearerTokenAuth[token=***]"
}

// APIKeyProvider authenticates with an API key header, "X-API-Key" by
// default.
type APIKeyProvider struct {
	mu         sync.RWMutex
	apiKey     string
	headerName string
}

// NewAPIKeyProvider creates an API key provider using DefaultAPIKeyHeader.
func NewAPIKeyProvider(apiKey string) *APIKeyProvider {
	return NewAPIKeyProviderWithHeader(apiKey, DefaultAPIKeyHeader)
}

// NewAPIKeyProviderWithHeader creates an API key provider with a custom
// header name.
func NewAPIKeyProviderWithHeader(apiKey, headerName string) *APIKeyProvider {
	return &APIKeyProvider{apiKey: apiKey, headerName: headerName}
}

// Type implements AuthProvider.Type.
func (p *APIKeyProvider) Type() AuthType {
	return AuthTypeAPIKey
}

// Headers implements AuthProvider.Headers.
func (p *APIKeyProvider) Headers() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.apiKey == "" || p.headerName == "" {
		return map[string]string{}
	}

	return map[string]string{p.headerName: p.apiKey}
}

// IsValid implements AuthProvider.IsValid.
func (p *APIKeyProvider) IsValid() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.apiKey != "" && p.headerName != ""
}

// Refresh implements AuthProvider.Refresh.
func (p *APIKeyProvider) Refresh(ctx context.Context) bool {
	return false
}

// Clear implements AuthProvider.Clear.
func (p *APIKeyProvider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.apiKey = ""
}

// HeaderName returns the configured header name.
func (p *APIKeyProvider) HeaderName() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.headerName
}

// String implements AuthProvider.String.
func (p *APIKeyProvider) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return fmt.Sprintf("ApiKeyAuth[header=%s, key=***]", p.headerName)
}

// BasicAuthProvider authenticates with "Authorization: Basic
// <base64(user:pass)>" using the standard base64 alphabet with padding.
type BasicAuthProvider struct {
	mu       sync.RWMutex
	username string
	password string
}

// NewBasicAuthProvider creates a basic auth provider.
func NewBasicAuthProvider(username, password string) *BasicAuthProvider {
	return &BasicAuthProvider{username: username, password: password}
}

// Type implements AuthProvider.Type.
func (p *BasicAuthProvider) Type() AuthType {
	return AuthTypeBasic
}

// Headers implements AuthProvider.Headers.
func (p *BasicAuthProvider) Headers() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.username == "" || p.password == "" {
		return map[string]string{}
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(p.username + ":" + p.password))

	return map[string]string{"Authorization": "Basic " + credentials}
}

// IsValid implements AuthProvider.IsValid.
func (p *BasicAuthProvider) IsValid() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.username != "" && p.password != ""
}

// Refresh implements AuthProvider.Refresh.
func (p *BasicAuthProvider) Refresh(ctx context.Context) bool {
	return false
}

// Clear implements AuthProvider.Clear.
func (p *BasicAuthProvider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.username = ""
	p.password = ""
}

// Username returns the configured username.
func (p *BasicAuthProvider) Username() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.username
}

// String implements AuthProvider.String.
func (p *BasicAuthProvider) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return fmt.Sprintf("BasicAuth[username=%s, password=***]", p.username)
}

// CustomAuthProvider emits a caller-supplied header bundle verbatim.
type CustomAuthProvider struct {
	mu      sync.RWMutex
	headers map[string]string
}

// NewCustomAuthProvider creates a custom header provider. The map is copied.
func NewCustomAuthProvider(headers map[string]string) *CustomAuthProvider {
	copied := make(map[string]string, len(headers))
	for key, value := range headers {
		copied[key] = value
	}

	return &CustomAuthProvider{headers: copied}
}

// Type implements AuthProvider.Type.
func (p *CustomAuthProvider) Type() AuthType {
	return AuthTypeCustom
}

// Headers implements AuthProvider.Headers.
func (p *CustomAuthProvider) Headers() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	copied := make(map[string]string, len(p.headers))
	for key, value := range p.headers {
		copied[key] = value
	}

	return copied
}

// IsValid implements AuthProvider.IsValid.
func (p *CustomAuthProvider) IsValid() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.headers) > 0
}

// Refresh implements AuthProvider.Refresh.
func (p *CustomAuthProvider) Refresh(ctx context.Context) bool {
	return false
}

// Clear implements AuthProvider.Clear.
func (p *CustomAuthProvider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.headers = map[string]string{}
}

// SetHeader adds or replaces a header.
func (p *CustomAuthProvider) SetHeader(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.headers[key] = value
}

// RemoveHeader removes a header.
func (p *CustomAuthProvider) RemoveHeader(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.headers, key)
}

// String implements AuthProvider.String.
func (p *CustomAuthProvider) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return fmt.Sprintf("CustomAuth[headers=%d]", len(p.headers))
}
