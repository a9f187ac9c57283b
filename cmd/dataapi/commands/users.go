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

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List and inspect DataAPI users",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersWhoamiCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := dataapi.NewQueryParams()
			if perPage > 0 {
				params.WithSize(perPage)
			}

			page, err := client.Users().List(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(page.Content)
			case OutputFormatYAML:
				return StandardYAMLRenderer(page.Content)
			default:
				return renderUserTable(page.Content)
			}
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")

	return cmd
}

func renderUserTable(users []dataapi.User) error {
	if len(users) == 0 {
		fmt.Println("No users found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Username", "Email", "Roles", "Active")

	for _, user := range users {
		_ = table.Append(
			user.ID,
			user.Username,
			orNotAvailable(user.Email),
			orNotAvailable(strings.Join(user.Roles, ", ")),
			fmt.Sprintf("%t", user.Active),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return outputUser(user)
		},
	}
}

func newUsersWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().GetCurrent(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get current user: %w", err)
			}

			return outputUser(user)
		},
	}
}

func outputUser(user *dataapi.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(user)
	case OutputFormatYAML:
		return StandardYAMLRenderer(user)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", user.ID)
		_ = table.Append("Username", user.Username)
		_ = table.Append("Email", orNotAvailable(user.Email))
		_ = table.Append("Full name", orNotAvailable(user.FullName))
		_ = table.Append("Roles", orNotAvailable(strings.Join(user.Roles, ", ")))
		_ = table.Append("Active", fmt.Sprintf("%t", user.Active))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
