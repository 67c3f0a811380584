package main

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login [token]",
		Short: "Verify a Cloudflare API token and store it in the config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Enter Cloudflare API token:")
				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("error reading token from stdin: %w", err)
				}
				token = string(byteToken)
			}
			if token == "" {
				return fmt.Errorf("token cannot be empty")
			}

			// Listing zones both proves the token works and confirms it has
			// the zone-read scope the updater needs.
			client := a.newClient(token)
			if _, err := client.Zones(cmd.Context()); err != nil {
				return fmt.Errorf("token verification failed: %w", err)
			}
			a.logger.Println("token verified successfully")

			cfg, err := loadConfig(a.configFile)
			if err != nil {
				return err
			}
			if err := cfg.setEntry("cloudflare_token", token); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Successfully logged in")
			return nil
		},
	}
}
