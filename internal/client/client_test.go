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

// newTestClient builds a client against a test server with retries and
// logging off.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	config := dataapi.TestingConfig()
	config.BaseURL = server.URL

	client, err := New(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, dataapi.ErrConfigRequired)

	config := dataapi.DefaultConfig()
	config.BaseURL = ""
	_, err = New(config)
	require.ErrorIs(t, err, dataapi.ErrInvalidConfig)
}

func TestNew_ProviderDerivation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*dataapi.Config)
		expected dataapi.AuthType
	}{
		{
			name:     "access token wins",
			mutate:   func(c *dataapi.Config) { c.AccessToken = "tok"; c.APIKey = "key"; c.Username = "u"; c.Password = "p" },
			expected: dataapi.AuthTypeBearer,
		},
		{
			name:     "api key",
			mutate:   func(c *dataapi.Config) { c.APIKey = "key" },
			expected: dataapi.AuthTypeAPIKey,
		},
		{
			name:     "basic credentials",
			mutate:   func(c *dataapi.Config) { c.Username = "u"; c.Password = "p" },
			expected: dataapi.AuthTypeBasic,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			config := dataapi.TestingConfig()
			testCase.mutate(config)

			client, err := New(config)
			require.NoError(t, err)
			defer func() { _ = client.Close() }()

			require.NotNil(t, client.AuthProvider())
			assert.Equal(t, testCase.expected, client.AuthProvider().Type())
		})
	}

	t.Run("no credentials", func(t *testing.T) {
		client, err := New(dataapi.TestingConfig())
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		assert.Nil(t, client.AuthProvider())
	})

	t.Run("custom api key header", func(t *testing.T) {
		config := dataapi.TestingConfig()
		config.APIKey = "key"
		config.APIKeyHeader = "X-Service-Key"

		client, err := New(config)
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		headers := client.AuthProvider().Headers()
		assert.Equal(t, "key", headers["X-Service-Key"])
	})
}

func TestNewWithAuthProvider(t *testing.T) {
	config := dataapi.TestingConfig()
	config.AccessToken = "ignored"

	provider := dataapi.NewCustomAuthProvider(map[string]string{"X-Signature": "sig"})

	client, err := NewWithAuthProvider(config, provider)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Equal(t, dataapi.AuthTypeCustom, client.AuthProvider().Type())
}

func TestClient_GetVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_ = json.NewEncoder(w).Encode(dataapi.APIVersion{
			Version:   "2.3.0",
			BuildTime: "2026-08-01T12:00:00Z",
			GitCommit: "abc123",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	version, err := client.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.3.0", version.Version)
	assert.Equal(t, "abc123", version.GitCommit)
}

func TestClient_GetHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)

		_ = json.NewEncoder(w).Encode(dataapi.HealthStatus{
			Status:  "UP",
			Details: map[string]string{"db": "UP"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	health, err := client.GetHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "UP", health.Status)
	assert.Equal(t, "UP", health.Details["db"])
}

func TestClient_TestConnection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "HEAD", r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	assert.True(t, client.TestConnection(context.Background()))
}

func TestClient_ConfigIsCopied(t *testing.T) {
	client, err := New(dataapi.TestingConfig())
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	copied := client.Config()
	copied.BaseURL = "http://mutated.example.com"

	assert.NotEqual(t, copied.BaseURL, client.Config().BaseURL)
}

func TestClient_SetAuthProvider(t *testing.T) {
	client, err := New(dataapi.TestingConfig())
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	provider := dataapi.NewBearerTokenProvider("fresh")
	client.SetAuthProvider(provider)
	assert.Equal(t, dataapi.AuthTypeBearer, client.AuthProvider().Type())
}

func TestClient_ResourceAccessors(t *testing.T) {
	client, err := New(dataapi.TestingConfig())
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.NotNil(t, client.Workflows())
	assert.NotNil(t, client.Projects())
	assert.NotNil(t, client.Databases())
	assert.NotNil(t, client.AIProviders())
	assert.NotNil(t, client.Users())
	assert.NotNil(t, client.HTTPClient())
}
