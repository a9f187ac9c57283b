package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
	"github.com/acproject/dataapi-sdks/pkg/dataapiclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// YAML formatting.
	defaultYAMLIndent = 2

	Masked = "***"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required (use --api or run 'dataapi config set api <url>')")
	ErrUsernameRequired    = errors.New("username is required")
	ErrConfigKeyUnknown    = errors.New("unknown configuration key")
	ErrNotAuthenticated    = errors.New("not authenticated (run 'dataapi login')")
)

// CreateClient builds a DataAPI client from the effective CLI configuration:
// flags override environment variables, which override the config file.
func CreateClient() (dataapi.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	config := dataapi.DefaultConfig()
	config.BaseURL = endpoint
	config.VerifySSL = !viper.GetBool("skip_ssl_validation")
	config.EnableLogging = viper.GetBool("verbose")

	if token := viper.GetString("token"); token != "" {
		config.AccessToken = token
	} else if apiKey := viper.GetString("api_key"); apiKey != "" {
		config.APIKey = apiKey
	}

	client, err := dataapiclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer encodes data as indented JSON on stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML on stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

func orNotAvailable(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
