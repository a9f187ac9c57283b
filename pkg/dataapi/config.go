package dataapi

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SDKVersion is the version reported in the default User-Agent.
const SDKVersion = "1.0.0"

// Defaults shared by all configuration presets.
const (
	DefaultTimeout            = 30 * time.Second
	DefaultTestingTimeout     = 10 * time.Second
	DefaultMaxRetries         = 3
	DefaultRetryDelay         = 1 * time.Second
	DefaultConnectionPoolSize = 10
	DefaultLocalBaseURL       = "http://localhost:8080/api"
)

// Config carries the settings for building a DataAPI client. It is treated
// as an immutable snapshot once bound to an engine; engine setters replace
// individual values for subsequent calls.
type Config struct {
	// BaseURL is the root of the DataAPI service, e.g.
	// "https://api.example.com/api". Required.
	BaseURL string

	// Authentication options (provide one). When more than one is set the
	// client prefers AccessToken, then APIKey, then Username/Password.
	// AccessToken is used directly as a static Bearer token.
	AccessToken string
	// APIKey is sent in the APIKeyHeader header (default "X-API-Key").
	APIKey string
	// APIKeyHeader overrides the API key header name.
	APIKeyHeader string
	// Username and Password select HTTP Basic authentication.
	Username string
	Password string

	// Timeout bounds each attempt. Zero selects DefaultTimeout.
	Timeout time.Duration
	// EnableLogging turns on per-attempt request/response records.
	EnableLogging bool
	// EnableRetry turns on bounded retry with exponential backoff.
	EnableRetry bool
	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int
	// RetryDelay is the base backoff delay, doubled per attempt.
	RetryDelay time.Duration
	// UserAgent overrides the default "DataAPI-SDK/<version>".
	UserAgent string
	// DefaultHeaders are attached to every request, below auth and
	// per-call headers in precedence.
	DefaultHeaders map[string]string
	// VerifySSL toggles TLS certificate verification.
	VerifySSL bool
	// ProxyURL routes requests through an HTTP proxy when non-empty.
	ProxyURL string
	// ConnectionPoolSize caps idle connections kept per host.
	ConnectionPoolSize int
	// Version is the SDK version string reported in the User-Agent.
	Version string
	// Logger receives the engine's request/response records. When nil and
	// EnableLogging is set, a default hclog-backed logger is used.
	Logger Logger
}

// DefaultConfig returns the base configuration shared by all presets.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:            DefaultLocalBaseURL,
		Timeout:            DefaultTimeout,
		EnableLogging:      false,
		EnableRetry:        true,
		MaxRetries:         DefaultMaxRetries,
		RetryDelay:         DefaultRetryDelay,
		VerifySSL:          true,
		ConnectionPoolSize: DefaultConnectionPoolSize,
		Version:            SDKVersion,
		UserAgent:          "DataAPI-SDK/" + SDKVersion,
		DefaultHeaders:     map[string]string{},
	}
}

// DevelopmentConfig returns a preset for local development: localhost base
// URL, logging on, TLS verification off.
func DevelopmentConfig() *Config {
	config := DefaultConfig()
	config.BaseURL = DefaultLocalBaseURL
	config.EnableLogging = true
	config.VerifySSL = false

	return config
}

// ProductionConfig returns a preset for production use against the given
// base URL: logging off, TLS verification on.
func ProductionConfig(baseURL string) *Config {
	config := DefaultConfig()
	config.BaseURL = baseURL
	config.EnableLogging = false
	config.VerifySSL = true

	return config
}

// TestingConfig returns a preset for test runs: localhost, logging on, TLS
// verification off, and a shorter timeout.
func TestingConfig() *Config {
	config := DefaultConfig()
	config.BaseURL = DefaultLocalBaseURL
	config.EnableLogging = true
	config.VerifySSL = false
	config.Timeout = DefaultTestingTimeout

	return config
}

// Validate checks the configuration for use with a client.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.MaxRetries, validation.Min(0)),
		validation.Field(&c.RetryDelay, validation.Min(time.Duration(0))),
		validation.Field(&c.ConnectionPoolSize, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// IsValid reports whether the configuration would pass Validate.
func (c *Config) IsValid() bool {
	return c.Validate() == nil
}

// SetDefaultHeader adds or replaces a default header.
func (c *Config) SetDefaultHeader(key, value string) {
	if c.DefaultHeaders == nil {
		c.DefaultHeaders = map[string]string{}
	}

	c.DefaultHeaders[key] = value
}

// GetDefaultHeader returns a default header value, or "" when unset.
func (c *Config) GetDefaultHeader(key string) string {
	return c.DefaultHeaders[key]
}

// RemoveDefaultHeader removes a default header.
func (c *Config) RemoveDefaultHeader(key string) {
	delete(c.DefaultHeaders, key)
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	copied := *c

	copied.DefaultHeaders = make(map[string]string, len(c.DefaultHeaders))
	for key, value := range c.DefaultHeaders {
		copied.DefaultHeaders[key] = value
	}

	return &copied
}
