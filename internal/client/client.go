// Package client implements the dataapi.Client facade and the
// resource-scoped clients behind it.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/acproject/dataapi-sdks/internal/http"
	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

// Client implements the dataapi.Client interface.
type Client struct {
	httpClient *http.Client
	config     *dataapi.Config

	// Resource clients
	workflows   dataapi.WorkflowsClient
	projects    dataapi.ProjectsClient
	databases   dataapi.DatabasesClient
	aiProviders dataapi.AIProvidersClient
	users       dataapi.UsersClient
}

// providerFromConfig derives an auth provider from config credentials.
// AccessToken wins over APIKey, which wins over Username/Password.
func providerFromConfig(config *dataapi.Config) dataapi.AuthProvider {
	switch {
	case config.AccessToken != "":
		return dataapi.NewBearerTokenProvider(config.AccessToken)
	case config.APIKey != "" && config.APIKeyHeader != "":
		return dataapi.NewAPIKeyProviderWithHeader(config.APIKey, config.APIKeyHeader)
	case config.APIKey != "":
		return dataapi.NewAPIKeyProvider(config.APIKey)
	case config.Username != "" && config.Password != "":
		return dataapi.NewBasicAuthProvider(config.Username, config.Password)
	}

	return nil // No authentication
}

// httpOptions builds engine options from config.
func httpOptions(config *dataapi.Config) []http.Option {
	opts := []http.Option{
		http.WithTLSVerification(config.VerifySSL),
	}

	if config.Timeout > 0 {
		opts = append(opts, http.WithTimeout(config.Timeout))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if len(config.DefaultHeaders) > 0 {
		opts = append(opts, http.WithDefaultHeaders(config.DefaultHeaders))
	}

	if config.ProxyURL != "" {
		opts = append(opts, http.WithProxy(config.ProxyURL))
	}

	if config.ConnectionPoolSize > 0 {
		opts = append(opts, http.WithConnectionPoolSize(config.ConnectionPoolSize))
	}

	if config.EnableLogging {
		logger := config.Logger
		if logger == nil {
			logger = dataapi.NewDefaultLogger(true)
		}

		opts = append(opts, http.WithLogger(logger), http.WithDebug(true))
	}

	retryMax := 0
	if config.EnableRetry {
		retryMax = config.MaxRetries
	}

	retryDelay := config.RetryDelay
	if retryDelay <= 0 {
		retryDelay = dataapi.DefaultRetryDelay
	}

	opts = append(opts, http.WithRetryConfig(retryMax, retryDelay, 30*time.Second))

	return opts
}

// New creates a DataAPI client from a validated config.
func New(config *dataapi.Config) (*Client, error) {
	if config == nil {
		return nil, dataapi.ErrConfigRequired
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newWithProvider(config, providerFromConfig(config)), nil
}

// NewWithAuthProvider creates a DataAPI client with a caller-supplied
// auth provider, ignoring the config's credential fields.
func NewWithAuthProvider(config *dataapi.Config, provider dataapi.AuthProvider) (*Client, error) {
	if config == nil {
		return nil, dataapi.ErrConfigRequired
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newWithProvider(config, provider), nil
}

func newWithProvider(config *dataapi.Config, provider dataapi.AuthProvider) *Client {
	config = config.Clone()

	client := &Client{
		httpClient: http.NewClient(config.BaseURL, provider, httpOptions(config)...),
		config:     config,
	}

	client.workflows = NewWorkflowsClient(client.httpClient)
	client.projects = NewProjectsClient(client.httpClient)
	client.databases = NewDatabasesClient(client.httpClient)
	client.aiProviders = NewAIProvidersClient(client.httpClient)
	client.users = NewUsersClient(client.httpClient)

	return client
}

// Workflows implements dataapi.Client.Workflows.
func (c *Client) Workflows() dataapi.WorkflowsClient {
	return c.workflows
}

// Projects implements dataapi.Client.Projects.
func (c *Client) Projects() dataapi.ProjectsClient {
	return c.projects
}

// Databases implements dataapi.Client.Databases.
func (c *Client) Databases() dataapi.DatabasesClient {
	return c.databases
}

// AIProviders implements dataapi.Client.AIProviders.
func (c *Client) AIProviders() dataapi.AIProvidersClient {
	return c.aiProviders
}

// Users implements dataapi.Client.Users.
func (c *Client) Users() dataapi.UsersClient {
	return c.users
}

// GetVersion implements dataapi.Client.GetVersion.
func (c *Client) GetVersion(ctx context.Context) (*dataapi.APIVersion, error) {
	resp, err := c.httpClient.Get(ctx, "/version", nil)
	if err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}

	var version dataapi.APIVersion

	err = json.Unmarshal(resp.Body, &version)
	if err != nil {
		return nil, fmt.Errorf("parsing version response: %w", err)
	}

	return &version, nil
}

// GetHealth implements dataapi.Client.GetHealth.
func (c *Client) GetHealth(ctx context.Context) (*dataapi.HealthStatus, error) {
	resp, err := c.httpClient.Get(ctx, "/health", nil)
	if err != nil {
		return nil, fmt.Errorf("getting health: %w", err)
	}

	var health dataapi.HealthStatus

	err = json.Unmarshal(resp.Body, &health)
	if err != nil {
		return nil, fmt.Errorf("parsing health response: %w", err)
	}

	return &health, nil
}

// TestConnection implements dataapi.Client.TestConnection.
func (c *Client) TestConnection(ctx context.Context) bool {
	return c.httpClient.TestConnection(ctx)
}

// Config returns a copy of the configuration this client was built
// with.
func (c *Client) Config() *dataapi.Config {
	return c.config.Clone()
}

// AuthProvider implements dataapi.Client.AuthProvider.
func (c *Client) AuthProvider() dataapi.AuthProvider {
	return c.httpClient.AuthProvider()
}

// SetAuthProvider implements dataapi.Client.SetAuthProvider.
func (c *Client) SetAuthProvider(provider dataapi.AuthProvider) {
	c.httpClient.SetAuthProvider(provider)
}

// HTTPClient exposes the underlying engine for advanced callers.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Close implements dataapi.Client.Close.
func (c *Client) Close() error {
	return c.httpClient.Close()
}
