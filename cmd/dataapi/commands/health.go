package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewHealthCommand creates the health command
func NewHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Long:  "Query the DataAPI health endpoint and report the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			health, err := client.GetHealth(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch health: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(health)
			case OutputFormatYAML:
				return StandardYAMLRenderer(health)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Status", orNotAvailable(health.Status))
				_ = table.Append("Message", orNotAvailable(health.Message))

				for key, value := range health.Details {
					_ = table.Append(key, value)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
