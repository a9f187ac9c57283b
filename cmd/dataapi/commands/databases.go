package commands

import (
	"fmt"
	"os"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewDatabasesCommand creates the databases command group.
func NewDatabasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "databases",
		Aliases: []string{"database", "db"},
		Short:   "Manage database connections",
		Long:    "List, inspect, and test DataAPI database connections",
	}

	cmd.AddCommand(newDatabasesListCommand())
	cmd.AddCommand(newDatabasesGetCommand())
	cmd.AddCommand(newDatabasesTestCommand())
	cmd.AddCommand(newDatabasesTablesCommand())

	return cmd
}

func newDatabasesListCommand() *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List database connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := dataapi.NewQueryParams()
			if projectID != "" {
				params.WithFilter("projectId", projectID)
			}

			page, err := client.Databases().List(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list databases: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(page.Content)
			case OutputFormatYAML:
				return StandardYAMLRenderer(page.Content)
			default:
				return renderDatabaseTable(page.Content)
			}
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "filter by project ID")

	return cmd
}

func renderDatabaseTable(databases []dataapi.Database) error {
	if len(databases) == 0 {
		fmt.Println("No databases found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Host", "Status")

	for _, database := range databases {
		host := database.Host
		if database.Port > 0 {
			host = fmt.Sprintf("%s:%d", database.Host, database.Port)
		}

		_ = table.Append(
			database.ID,
			database.Name,
			database.Type,
			orNotAvailable(host),
			orNotAvailable(database.Status),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newDatabasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <database-id>",
		Short: "Show a database connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			database, err := client.Databases().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get database: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(database)
			case OutputFormatYAML:
				return StandardYAMLRenderer(database)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", database.ID)
				_ = table.Append("Name", database.Name)
				_ = table.Append("Type", database.Type)
				_ = table.Append("Host", orNotAvailable(database.Host))
				_ = table.Append("Database", orNotAvailable(database.DatabaseName))
				_ = table.Append("Project", orNotAvailable(database.ProjectID))
				_ = table.Append("Status", orNotAvailable(database.Status))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newDatabasesTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test <database-id>",
		Short: "Test a database connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Databases().TestConnection(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to test database connection: %w", err)
			}

			if result.Connected {
				fmt.Printf("Connection OK (%d ms)\n", result.LatencyMs)
			} else {
				fmt.Printf("Connection failed: %s\n", orNotAvailable(result.Message))
			}

			return nil
		},
	}
}

func newDatabasesTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables <database-id>",
		Short: "List tables in a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tables, err := client.Databases().ListTables(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list tables: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(tables)
			case OutputFormatYAML:
				return StandardYAMLRenderer(tables)
			default:
				if len(tables) == 0 {
					fmt.Println("No tables found")

					return nil
				}

				writer := tablewriter.NewWriter(os.Stdout)
				writer.Header("Name", "Rows", "Comment")

				for _, tableInfo := range tables {
					_ = writer.Append(
						tableInfo.Name,
						fmt.Sprintf("%d", tableInfo.RowCount),
						orNotAvailable(tableInfo.Comment),
					)
				}

				if err := writer.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
