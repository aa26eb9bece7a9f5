package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cloudlift-io/cloudlift-client/internal/constants"
	"github.com/cloudlift-io/cloudlift-client/pkg/cloudlift"
	"github.com/cloudlift-io/cloudlift-client/pkg/liftclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		token    string
		endpoint string
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token",
		Long:  "Store an API token in the CLI config file, prompting for it when not passed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				fmt.Print("API token: ")

				raw, err := term.ReadPassword(int(syscall.Stdin))

				fmt.Println()

				if err != nil {
					return fmt.Errorf("reading token: %w", err)
				}

				token = strings.TrimSpace(string(raw))
			}

			if token == "" {
				return cloudlift.NewValidationError("api token is required")
			}

			// Verify the token with a single list call before persisting it.
			if !noVerify {
				client, err := liftclient.NewWithEndpoint(token, endpoint)
				if err != nil {
					return err
				}

				if _, err := client.Apps().List(context.Background()); err != nil {
					return fmt.Errorf("token verification failed: %w", err)
				}
			}

			if err := saveConfig(token, endpoint); err != nil {
				return err
			}

			fmt.Println("Logged in")

			return nil
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "API token (prompted when omitted)")
	cmd.Flags().StringVarP(&endpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip token verification")

	return cmd
}

// saveConfig persists the token and optional endpoint to the config file.
func saveConfig(token, endpoint string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".lift")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	config := map[string]string{"token": token}
	if endpoint != "" {
		config["api"] = endpoint
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(configPath, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set("token", token)

	return nil
}
