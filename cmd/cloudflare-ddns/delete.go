package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dyndns "github.com/Zorro909/cloudflare-ddns"
)

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <domain>",
		Short: "Remove a registered domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := args[0]

			cfg, err := loadConfig(a.configFile)
			if err != nil {
				return err
			}
			path := a.domainsPath(cfg)
			registrations, err := readRegistrations(path)
			if err != nil {
				return err
			}

			remaining := make([]dyndns.Registration, 0, len(registrations))
			for _, reg := range registrations {
				if reg.Domain != domain {
					remaining = append(remaining, reg)
				}
			}
			if len(remaining) == len(registrations) {
				return fmt.Errorf("domain %q is not registered", domain)
			}

			if err := writeRegistrations(path, remaining); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted domain %q successfully\n", domain)
			return nil
		},
	}
}
