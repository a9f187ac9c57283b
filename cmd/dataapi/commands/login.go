package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
	"github.com/acproject/dataapi-sdks/pkg/dataapiclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		username    string
		password    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to DataAPI",
		Long:  "Authenticate against a DataAPI endpoint and store the issued token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return ErrAPIEndpointRequired
			}

			if username == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Username: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if username == "" {
				return ErrUsernameRequired
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			client, err := dataapiclient.NewWithEndpoint(apiEndpoint)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			response, err := client.Users().Login(cmd.Context(), &dataapi.LoginRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			config := loadConfig()
			config.API = apiEndpoint
			config.Token = response.AccessToken
			config.Username = username

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			viper.Set("api", apiEndpoint)
			viper.Set("token", response.AccessToken)

			fmt.Printf("Logged in to %s as %s\n", apiEndpoint, username)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API base URL")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from DataAPI",
		Long:  "Invalidate the current session and remove the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Token == "" {
				return ErrNotAuthenticated
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			// Best effort; drop the stored token even when the server call
			// fails.
			err = client.Users().Logout(cmd.Context())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: server logout failed: %v\n", err)
			}

			config.Token = ""
			config.Username = ""

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
