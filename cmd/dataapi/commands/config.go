package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configDirPerm  = 0o700
	configFilePerm = 0o600
)

// Config represents the persisted CLI configuration.
type Config struct {
	API               string `json:"api,omitempty"       yaml:"api,omitempty"`
	Token             string `json:"token,omitempty"     yaml:"token,omitempty"`
	APIKey            string `json:"api_key,omitempty"   yaml:"api_key,omitempty"`
	Username          string `json:"username,omitempty"  yaml:"username,omitempty"`
	Output            string `json:"output"              yaml:"output"`
	SkipSSLValidation bool   `json:"skip_ssl_validation" yaml:"skip_ssl_validation"`
}

func loadConfig() *Config {
	return &Config{
		API:               viper.GetString("api"),
		Token:             viper.GetString("token"),
		APIKey:            viper.GetString("api_key"),
		Username:          viper.GetString("username"),
		Output:            viper.GetString("output"),
		SkipSSLValidation: viper.GetBool("skip_ssl_validation"),
	}
}

func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".dataapi")

		err = os.MkdirAll(configDir, configDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, configFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the DataAPI CLI configuration",
	}

	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			masked := *config
			if masked.Token != "" {
				masked.Token = Masked
			}

			if masked.APIKey != "" {
				masked.APIKey = Masked
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(masked)
			case OutputFormatYAML:
				return StandardYAMLRenderer(masked)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")
				_ = table.Append("api", orNotAvailable(masked.API))
				_ = table.Append("token", orNotAvailable(masked.Token))
				_ = table.Append("api_key", orNotAvailable(masked.APIKey))
				_ = table.Append("username", orNotAvailable(masked.Username))
				_ = table.Append("output", orNotAvailable(masked.Output))
				_ = table.Append("skip_ssl_validation", fmt.Sprintf("%t", masked.SkipSSLValidation))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !isConfigKey(key) {
				return fmt.Errorf("%w: %s", ErrConfigKeyUnknown, key)
			}

			value := viper.GetString(key)
			if key == "token" || key == "api_key" {
				if value != "" {
					value = Masked
				}
			}

			fmt.Println(value)

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !isConfigKey(key) {
				return fmt.Errorf("%w: %s", ErrConfigKeyUnknown, key)
			}

			viper.Set(key, value)

			err := saveConfigStruct(loadConfig())
			if err != nil {
				return err
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !isConfigKey(key) {
				return fmt.Errorf("%w: %s", ErrConfigKeyUnknown, key)
			}

			viper.Set(key, "")

			err := saveConfigStruct(loadConfig())
			if err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

func isConfigKey(key string) bool {
	switch key {
	case "api", "token", "api_key", "username", "output", "skip_ssl_validation":
		return true
	default:
		return false
	}
}
