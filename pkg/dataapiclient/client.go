package dataapiclient

import (
	"fmt"
	"strings"

	"github.com/acproject/dataapi-sdks/internal/client"
	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

// New creates a DataAPI client from a config. The base URL is
// normalised: a trailing slash is dropped and a missing scheme defaults
// to https.
func New(config *dataapi.Config) (dataapi.Client, error) {
	if config == nil {
		return nil, dataapi.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, dataapi.ErrBaseURLRequired
	}

	config = config.Clone()
	config.BaseURL = normalizeBaseURL(config.BaseURL)

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// NewWithAuthProvider creates a DataAPI client with a caller-supplied
// auth provider. Credential fields on the config are ignored.
func NewWithAuthProvider(config *dataapi.Config, provider dataapi.AuthProvider) (dataapi.Client, error) {
	if config == nil {
		return nil, dataapi.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, dataapi.ErrBaseURLRequired
	}

	config = config.Clone()
	config.BaseURL = normalizeBaseURL(config.BaseURL)

	apiClient, err := client.NewWithAuthProvider(config, provider)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// NewWithEndpoint creates an unauthenticated client with default
// settings.
func NewWithEndpoint(baseURL string) (dataapi.Client, error) {
	config := dataapi.DefaultConfig()
	config.BaseURL = baseURL

	return New(config)
}

// NewWithToken creates a client authenticated with a static Bearer
// token.
func NewWithToken(baseURL, token string) (dataapi.Client, error) {
	config := dataapi.DefaultConfig()
	config.BaseURL = baseURL
	config.AccessToken = token

	return New(config)
}

// NewWithAPIKey creates a client authenticated with an API key sent in
// the default X-API-Key header.
func NewWithAPIKey(baseURL, apiKey string) (dataapi.Client, error) {
	config := dataapi.DefaultConfig()
	config.BaseURL = baseURL
	config.APIKey = apiKey

	return New(config)
}

// NewWithBasicAuth creates a client authenticated with HTTP Basic
// credentials.
func NewWithBasicAuth(baseURL, username, password string) (dataapi.Client, error) {
	config := dataapi.DefaultConfig()
	config.BaseURL = baseURL
	config.Username = username
	config.Password = password

	return New(config)
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
