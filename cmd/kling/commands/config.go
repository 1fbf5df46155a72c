package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/kling/pkg/cli"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show credentials configuration",
		Long: `Show where credentials are read from and which keys are configured.

Credentials live in ~/.config/kling/credentials.json:

  {"access_key": "YOUR_ACCESS_KEY", "secret_key": "YOUR_SECRET_KEY"}`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newUsageError("kling config path|view", "config: missing subcommand")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the credentials file path",
		Args:  noArgs("kling config path"),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.credentialsFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "view",
		Short: "Show the configured keys, masked",
		Args:  noArgs("kling config view"),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.credentialsFile()
			if err != nil {
				return err
			}
			creds, err := cli.LoadCredentials(path)
			if err != nil {
				return fmt.Errorf("load credentials: %w", err)
			}

			fmt.Fprintf(a.stdout, "Credentials file: %s\n", path)
			fmt.Fprintf(a.stdout, "Access key: %s\n", cli.MaskAPIKey(creds.AccessKey))
			fmt.Fprintf(a.stdout, "Secret key: %s\n", cli.MaskAPIKey(creds.SecretKey))
			if a.baseURL != "" {
				fmt.Fprintf(a.stdout, "Base URL: %s\n", a.baseURL)
			}
			cli.PrintSuccess(a.stdout, "credentials are valid")
			return nil
		},
	})

	return cmd
}
