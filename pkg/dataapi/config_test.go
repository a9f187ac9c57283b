package dataapi_test

import (
	"testing"
	"time"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := dataapi.DefaultConfig()

	assert.Equal(t, dataapi.DefaultLocalBaseURL, config.BaseURL)
	assert.Equal(t, dataapi.DefaultTimeout, config.Timeout)
	assert.False(t, config.EnableLogging)
	assert.True(t, config.EnableRetry)
	assert.Equal(t, dataapi.DefaultMaxRetries, config.MaxRetries)
	assert.Equal(t, dataapi.DefaultRetryDelay, config.RetryDelay)
	assert.True(t, config.VerifySSL)
	assert.Equal(t, dataapi.DefaultConnectionPoolSize, config.ConnectionPoolSize)
	assert.Equal(t, "DataAPI-SDK/"+dataapi.SDKVersion, config.UserAgent)
	assert.NotNil(t, config.DefaultHeaders)
	require.NoError(t, config.Validate())
}

func TestConfigPresets(t *testing.T) {
	t.Parallel()

	t.Run("development", func(t *testing.T) {
		t.Parallel()

		config := dataapi.DevelopmentConfig()

		assert.Equal(t, dataapi.DefaultLocalBaseURL, config.BaseURL)
		assert.True(t, config.EnableLogging)
		assert.False(t, config.VerifySSL)
		require.NoError(t, config.Validate())
	})

	t.Run("production", func(t *testing.T) {
		t.Parallel()

		config := dataapi.ProductionConfig("https://api.example.com/api")

		assert.Equal(t, "https://api.example.com/api", config.BaseURL)
		assert.False(t, config.EnableLogging)
		assert.True(t, config.VerifySSL)
		require.NoError(t, config.Validate())
	})

	t.Run("testing", func(t *testing.T) {
		t.Parallel()

		config := dataapi.TestingConfig()

		assert.True(t, config.EnableLogging)
		assert.False(t, config.VerifySSL)
		assert.Equal(t, dataapi.DefaultTestingTimeout, config.Timeout)
		require.NoError(t, config.Validate())
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*dataapi.Config)
		valid  bool
	}{
		{"defaults", func(c *dataapi.Config) {}, true},
		{"missing base URL", func(c *dataapi.Config) { c.BaseURL = "" }, false},
		{"malformed base URL", func(c *dataapi.Config) { c.BaseURL = "not a url" }, false},
		{"zero timeout", func(c *dataapi.Config) { c.Timeout = 0 }, false},
		{"negative retries", func(c *dataapi.Config) { c.MaxRetries = -1 }, false},
		{"negative retry delay", func(c *dataapi.Config) { c.RetryDelay = -time.Second }, false},
		{"negative pool size", func(c *dataapi.Config) { c.ConnectionPoolSize = -1 }, false},
		{"zero retries allowed", func(c *dataapi.Config) { c.MaxRetries = 0 }, true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := dataapi.DefaultConfig()
			testCase.mutate(config)

			err := config.Validate()
			if testCase.valid {
				require.NoError(t, err)
				assert.True(t, config.IsValid())
			} else {
				require.ErrorIs(t, err, dataapi.ErrInvalidConfig)
				assert.False(t, config.IsValid())
			}
		})
	}
}

func TestConfig_DefaultHeaders(t *testing.T) {
	t.Parallel()

	config := &dataapi.Config{}

	config.SetDefaultHeader("X-Tenant", "acme")
	assert.Equal(t, "acme", config.GetDefaultHeader("X-Tenant"))

	config.SetDefaultHeader("X-Tenant", "globex")
	assert.Equal(t, "globex", config.GetDefaultHeader("X-Tenant"))

	config.RemoveDefaultHeader("X-Tenant")
	assert.Empty(t, config.GetDefaultHeader("X-Tenant"))
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	original := dataapi.DefaultConfig()
	original.AccessToken = "tok-123"
	original.SetDefaultHeader("X-Tenant", "acme")

	clone := original.Clone()

	assert.Equal(t, original.BaseURL, clone.BaseURL)
	assert.Equal(t, "tok-123", clone.AccessToken)
	assert.Equal(t, "acme", clone.GetDefaultHeader("X-Tenant"))

	clone.SetDefaultHeader("X-Tenant", "globex")
	clone.BaseURL = "https://other.example.com"

	assert.Equal(t, "acme", original.GetDefaultHeader("X-Tenant"))
	assert.Equal(t, dataapi.DefaultLocalBaseURL, original.BaseURL)
}
