package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewWorkflowsCommand creates the workflows command group.
func NewWorkflowsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workflows",
		Aliases: []string{"workflow", "wf"},
		Short:   "Manage workflows",
		Long:    "List, inspect, execute, and delete DataAPI workflows",
	}

	cmd.AddCommand(newWorkflowsListCommand())
	cmd.AddCommand(newWorkflowsGetCommand())
	cmd.AddCommand(newWorkflowsDeleteCommand())
	cmd.AddCommand(newWorkflowsExecuteCommand())
	cmd.AddCommand(newWorkflowsStatusCommand())
	cmd.AddCommand(newWorkflowsExportCommand())

	return cmd
}

func newWorkflowsListCommand() *cobra.Command {
	var (
		allPages  bool
		perPage   int
		projectID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflows",
		Long:  "List workflows visible to the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkflowsListCommand(cmd.Context(), allPages, perPage, projectID)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&projectID, "project", "", "filter by project ID")

	return cmd
}

func runWorkflowsListCommand(ctx context.Context, allPages bool, perPage int, projectID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := dataapi.NewQueryParams()
	if perPage > 0 {
		params.WithSize(perPage)
	}

	if projectID != "" {
		params.WithFilter("projectId", projectID)
	}

	if allPages {
		iterator := dataapi.NewPageIterator[dataapi.Workflow](ctx, client.Workflows(), "/workflows", params)

		workflows, err := iterator.All()
		if err != nil {
			return fmt.Errorf("failed to list workflows: %w", err)
		}

		return outputWorkflows(workflows)
	}

	page, err := client.Workflows().List(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to list workflows: %w", err)
	}

	return outputWorkflows(page.Content)
}

func outputWorkflows(workflows []dataapi.Workflow) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(workflows)
	case OutputFormatYAML:
		return StandardYAMLRenderer(workflows)
	default:
		return renderWorkflowTable(workflows)
	}
}

func renderWorkflowTable(workflows []dataapi.Workflow) error {
	if len(workflows) == 0 {
		fmt.Println("No workflows found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Project", "Status", "Updated")

	for _, workflow := range workflows {
		_ = table.Append(
			workflow.ID,
			workflow.Name,
			orNotAvailable(workflow.ProjectID),
			orNotAvailable(string(workflow.Status)),
			orNotAvailable(workflow.UpdateTime),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newWorkflowsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <workflow-id>",
		Short: "Show a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			workflow, err := client.Workflows().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get workflow: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(workflow)
			case OutputFormatYAML:
				return StandardYAMLRenderer(workflow)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", workflow.ID)
				_ = table.Append("Name", workflow.Name)
				_ = table.Append("Description", orNotAvailable(workflow.Description))
				_ = table.Append("Project", orNotAvailable(workflow.ProjectID))
				_ = table.Append("Status", orNotAvailable(string(workflow.Status)))
				_ = table.Append("Version", fmt.Sprintf("%d", workflow.Version))
				_ = table.Append("Created", orNotAvailable(workflow.CreateTime))
				_ = table.Append("Updated", orNotAvailable(workflow.UpdateTime))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newWorkflowsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <workflow-id>",
		Short: "Delete a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete workflow '%s'? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Workflows().Delete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete workflow: %w", err)
			}

			fmt.Printf("Deleted workflow %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func newWorkflowsExecuteCommand() *cobra.Command {
	var (
		inputJSON string
		async     bool
	)

	cmd := &cobra.Command{
		Use:   "execute <workflow-id>",
		Short: "Execute a workflow",
		Long:  "Run a workflow with an optional JSON input document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var input json.RawMessage
			if inputJSON != "" {
				if !json.Valid([]byte(inputJSON)) {
					return fmt.Errorf("invalid input JSON: %q", inputJSON)
				}

				input = json.RawMessage(inputJSON)
			}

			if async {
				executionID, err := client.Workflows().ExecuteAsync(cmd.Context(), args[0], input)
				if err != nil {
					return fmt.Errorf("failed to start workflow: %w", err)
				}

				fmt.Printf("Started execution %s\n", executionID)

				return nil
			}

			execution, err := client.Workflows().Execute(cmd.Context(), args[0], input)
			if err != nil {
				return fmt.Errorf("failed to execute workflow: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(execution)
			case OutputFormatYAML:
				return StandardYAMLRenderer(execution)
			default:
				fmt.Printf("Execution %s finished with status %s\n", execution.ExecutionID, execution.Status)

				if len(execution.Result) > 0 {
					fmt.Println(string(execution.Result))
				}

				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&inputJSON, "input", "i", "", "execution input as a JSON document")
	cmd.Flags().BoolVar(&async, "async", false, "start the execution and return its ID")

	return cmd
}

func newWorkflowsStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <execution-id>",
		Short: "Show execution status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			status, err := client.Workflows().GetExecutionStatus(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get execution status: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(status)
			case OutputFormatYAML:
				return StandardYAMLRenderer(status)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Execution", status.ExecutionID)
				_ = table.Append("Status", status.Status)
				_ = table.Append("Progress", fmt.Sprintf("%.0f%%", status.Progress*100))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newWorkflowsExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <workflow-id>",
		Short: "Export a workflow definition",
		Long:  "Print the portable JSON document for a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			document, err := client.Workflows().Export(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to export workflow: %w", err)
			}

			fmt.Println(string(document))

			return nil
		},
	}
}
