package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "proj"},
		Short:   "Manage projects",
		Long:    "List and inspect DataAPI projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsMembersCommand())
	cmd.AddCommand(newProjectsStatsCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := dataapi.NewQueryParams()
			if perPage > 0 {
				params.WithSize(perPage)
			}

			var projects []dataapi.Project

			if allPages {
				iterator := dataapi.NewPageIterator[dataapi.Project](cmd.Context(), client.Projects(), "/projects", params)

				projects, err = iterator.All()
			} else {
				var page *dataapi.PageResult[dataapi.Project]

				page, err = client.Projects().List(cmd.Context(), params)
				if page != nil {
					projects = page.Content
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(projects)
			case OutputFormatYAML:
				return StandardYAMLRenderer(projects)
			default:
				return renderProjectTable(projects)
			}
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")

	return cmd
}

func renderProjectTable(projects []dataapi.Project) error {
	if len(projects) == 0 {
		fmt.Println("No projects found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Owner", "Status", "Tags")

	for _, project := range projects {
		_ = table.Append(
			project.ID,
			project.Name,
			orNotAvailable(project.OwnerID),
			orNotAvailable(project.Status),
			orNotAvailable(strings.Join(project.Tags, ", ")),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <project-id>",
		Short: "Show a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			project, err := client.Projects().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(project)
			case OutputFormatYAML:
				return StandardYAMLRenderer(project)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", project.ID)
				_ = table.Append("Name", project.Name)
				_ = table.Append("Description", orNotAvailable(project.Description))
				_ = table.Append("Owner", orNotAvailable(project.OwnerID))
				_ = table.Append("Status", orNotAvailable(project.Status))
				_ = table.Append("Tags", orNotAvailable(strings.Join(project.Tags, ", ")))
				_ = table.Append("Created", orNotAvailable(project.CreateTime))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newProjectsMembersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "members <project-id>",
		Short: "List project members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Projects().ListMembers(cmd.Context(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to list project members: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(page.Content)
			case OutputFormatYAML:
				return StandardYAMLRenderer(page.Content)
			default:
				if len(page.Content) == 0 {
					fmt.Println("No members found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("User ID", "Username", "Role", "Joined")

				for _, member := range page.Content {
					_ = table.Append(
						member.UserID,
						orNotAvailable(member.Username),
						member.Role,
						orNotAvailable(member.JoinedAt),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newProjectsStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <project-id>",
		Short: "Show project statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			stats, err := client.Projects().Statistics(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get project statistics: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(stats)
			case OutputFormatYAML:
				return StandardYAMLRenderer(stats)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Workflows", fmt.Sprintf("%d", stats.WorkflowCount))
				_ = table.Append("Databases", fmt.Sprintf("%d", stats.DatabaseCount))
				_ = table.Append("Members", fmt.Sprintf("%d", stats.MemberCount))
				_ = table.Append("Executions", fmt.Sprintf("%d", stats.ExecutionCount))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
