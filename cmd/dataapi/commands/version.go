package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display version information about the DataAPI CLI and, with --remote, the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version string `json:"version"          yaml:"version"`
				Commit  string `json:"commit"           yaml:"commit"`
				Built   string `json:"built"            yaml:"built"`
				Server  string `json:"server,omitempty" yaml:"server,omitempty"`
			}

			versionInfo := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			if remote {
				client, err := CreateClient()
				if err != nil {
					return err
				}

				serverVersion, err := client.GetVersion(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to fetch server version: %w", err)
				}

				versionInfo.Server = serverVersion.Version
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(versionInfo)
			case OutputFormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(versionInfo)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Version", version)
				_ = table.Append("Commit", commit)
				_ = table.Append("Built", date)

				if versionInfo.Server != "" {
					_ = table.Append("Server", versionInfo.Server)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "also report the server version")

	return cmd
}
