package dataapiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
	"github.com/acproject/dataapi-sdks/pkg/dataapiclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := dataapi.DefaultConfig()
		config.BaseURL = "https://api.example.com/api"

		client, err := dataapiclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := dataapiclient.New(nil)
		require.ErrorIs(t, err, dataapi.ErrConfigRequired)
	})

	t.Run("requires base URL", func(t *testing.T) {
		t.Parallel()

		config := dataapi.DefaultConfig()
		config.BaseURL = ""

		_, err := dataapiclient.New(config)
		require.ErrorIs(t, err, dataapi.ErrBaseURLRequired)
	})

	t.Run("normalizes base URL", func(t *testing.T) {
		t.Parallel()

		config := dataapi.DefaultConfig()
		config.BaseURL = "api.example.com/api/"

		client, err := dataapiclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/api", client.Config().BaseURL)
	})

	t.Run("does not mutate caller config", func(t *testing.T) {
		t.Parallel()

		config := dataapi.DefaultConfig()
		config.BaseURL = "api.example.com/api/"

		_, err := dataapiclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "api.example.com/api/", config.BaseURL)
	})
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	client, err := dataapiclient.NewWithEndpoint("https://api.example.com/api")
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Nil(t, client.AuthProvider())
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := dataapiclient.NewWithToken("https://api.example.com/api", "test-token")
	require.NoError(t, err)
	assert.Equal(t, dataapi.AuthTypeBearer, client.AuthProvider().Type())
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := dataapiclient.NewWithAPIKey("https://api.example.com/api", "service-key")
	require.NoError(t, err)
	assert.Equal(t, dataapi.AuthTypeAPIKey, client.AuthProvider().Type())
}

func TestNewWithBasicAuth(t *testing.T) {
	t.Parallel()

	client, err := dataapiclient.NewWithBasicAuth("https://api.example.com/api", "user", "pass")
	require.NoError(t, err)
	assert.Equal(t, dataapi.AuthTypeBasic, client.AuthProvider().Type())
}

func TestNewWithAuthProvider(t *testing.T) {
	t.Parallel()

	config := dataapi.DefaultConfig()
	config.BaseURL = "https://api.example.com/api"

	provider := dataapi.NewCustomAuthProvider(map[string]string{"X-Signature": "sig"})

	client, err := dataapiclient.NewWithAuthProvider(config, provider)
	require.NoError(t, err)
	assert.Equal(t, dataapi.AuthTypeCustom, client.AuthProvider().Type())
}

func TestClient_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/version":
			_ = json.NewEncoder(w).Encode(dataapi.APIVersion{Version: "2.3.0"})
		case "/workflows":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"content":       []dataapi.Workflow{{ID: "wf-1", Name: "ingest"}},
				"pageNumber":    1,
				"pageSize":      20,
				"totalElements": 1,
				"totalPages":    1,
				"first":         true,
				"last":          true,
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, err := dataapiclient.NewWithToken(server.URL, "test-token")
	require.NoError(t, err)

	defer func() { _ = client.Close() }()

	version, err := client.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.3.0", version.Version)

	page, err := client.Workflows().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "ingest", page.Content[0].Name)
}
