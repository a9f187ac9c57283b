package dataapi_test

import (
	"context"
	"testing"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
	"github.com/stretchr/testify/assert"
)

func TestBearerTokenProvider(t *testing.T) {
	t.Parallel()

	provider := dataapi.NewBearerTokenProvider("tok-123")

	assert.Equal(t, dataapi.AuthTypeBearer, provider.Type())
	assert.True(t, provider.IsValid())
	assert.Equal(t, map[string]string{"Authorization": "Bearer tok-123"}, provider.Headers())
	assert.False(t, provider.Refresh(context.Background()))
	assert.Equal(t, "BearerTokenAuth[token=***]", provider.String())
	assert.NotContains(t, provider.String(), "tok-123")

	provider.SetToken("tok-456")
	assert.Equal(t, "Bearer tok-456", provider.Headers()["Authorization"])

	provider.Clear()
	assert.False(t, provider.IsValid())
	assert.Empty(t, provider.Headers())
}

func TestBearerTokenProvider_EmptyToken(t *testing.T) {
	t.Parallel()

	provider := dataapi.NewBearerTokenProvider("")

	assert.False(t, provider.IsValid())
	assert.Empty(t, provider.Headers())
}

func TestAPIKeyProvider(t *testing.T) {
	t.Parallel()

	provider := dataapi.NewAPIKeyProvider("key-123")

	assert.Equal(t, dataapi.AuthTypeAPIKey, provider.Type())
	assert.True(t, provider.IsValid())
	assert.Equal(t, map[string]string{"X-API-Key": "key-123"}, provider.Headers())
	assert.Equal(t, dataapi.DefaultAPIKeyHeader, provider.HeaderName())
	assert.False(t, provider.Refresh(context.Background()))
	assert.Equal(t, "ApiKeyAuth[header=X-API-Key, key=***]", provider.String())

	provider.Clear()
	assert.False(t, provider.IsValid())
	assert.Empty(t, provider.Headers())
}

func TestAPIKeyProvider_CustomHeader(t *testing.T) {
	t.Parallel()

	provider := dataapi.NewAPIKeyProviderWithHeader("key-123", "X-Service-Key")

	assert.Equal(t, map[string]string{"X-Service-Key": "key-123"}, provider.Headers())
	assert.Equal(t, "X-Service-Key", provider.HeaderName())
	assert.Equal(t, "ApiKeyAuth[header=X-Service-Key, key=***]", provider.String())
}

func TestBasicAuthProvider(t *testing.T) {
	t.Parallel()

	provider := dataapi.NewBasicAuthProvider("user", "pass")

	assert.Equal(t, dataapi.AuthTypeBasic, provider.Type())
	assert.True(t, provider.IsValid())
	// base64("user:pass")
	assert.Equal(t, map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}, provider.Headers())
	assert.Equal(t, "user", provider.Username())
	assert.False(t, provider.Refresh(context.Background()))
	assert.Equal(t, "BasicAuth[username=user, password=***]", provider.String())
	assert.NotContains(t, provider.String(), "pass]")

	provider.Clear()
	assert.False(t, provider.IsValid())
	assert.Empty(t, provider.Headers())
}

func TestBasicAuthProvider_PaddedEncoding(t *testing.T) {
	t.Parallel()

	// base64("ab:c") is 8 chars with one '=' of padding.
	provider := dataapi.NewBasicAuthProvider("ab", "c")

	assert.Equal(t, "Basic YWI6Yw==", provider.Headers()["Authorization"])
}

func TestBasicAuthProvider_MissingCredentials(t *testing.T) {
	t.Parallel()

	assert.False(t, dataapi.NewBasicAuthProvider("user", "").IsValid())
	assert.Empty(t, dataapi.NewBasicAuthProvider("user", "").Headers())
	assert.False(t, dataapi.NewBasicAuthProvider("", "pass").IsValid())
}

func TestCustomAuthProvider(t *testing.T) {
	t.Parallel()

	provider := dataapi.NewCustomAuthProvider(map[string]string{
		"X-Tenant":      "acme",
		"Authorization": "Signature v1=abc",
	})

	assert.Equal(t, dataapi.AuthTypeCustom, provider.Type())
	assert.True(t, provider.IsValid())
	assert.Equal(t, "Signature v1=abc", provider.Headers()["Authorization"])
	assert.False(t, provider.Refresh(context.Background()))
	assert.Equal(t, "CustomAuth[headers=2]", provider.String())

	provider.SetHeader("X-Region", "eu-1")
	assert.Equal(t, "eu-1", provider.Headers()["X-Region"])

	provider.RemoveHeader("X-Tenant")
	assert.NotContains(t, provider.Headers(), "X-Tenant")

	provider.Clear()
	assert.False(t, provider.IsValid())
	assert.Empty(t, provider.Headers())
}

func TestCustomAuthProvider_CopiesInput(t *testing.T) {
	t.Parallel()

	source := map[string]string{"X-Tenant": "acme"}
	provider := dataapi.NewCustomAuthProvider(source)

	source["X-Tenant"] = "mutated"
	assert.Equal(t, "acme", provider.Headers()["X-Tenant"])

	returned := provider.Headers()
	returned["X-Tenant"] = "mutated"
	assert.Equal(t, "acme", provider.Headers()["X-Tenant"])
}

func TestCustomAuthProvider_Empty(t *testing.T) {
	t.Parallel()

	provider := dataapi.NewCustomAuthProvider(nil)

	assert.False(t, provider.IsValid())
	assert.Empty(t, provider.Headers())
}
