package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	dyndns "github.com/Zorro909/cloudflare-ddns"
)

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <domain>",
		Short: "Show the published records of a registered domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := args[0]

			cfg, err := loadConfig(a.configFile)
			if err != nil {
				return err
			}
			registrations, err := readRegistrations(a.domainsPath(cfg))
			if err != nil {
				return err
			}

			var registration *dyndns.Registration
			for i := range registrations {
				if registrations[i].Domain == domain {
					registration = &registrations[i]
					break
				}
			}
			if registration == nil {
				return fmt.Errorf("domain %q is not registered", domain)
			}

			token, err := a.resolveToken(cfg)
			if err != nil {
				return err
			}
			client := a.newClient(token)

			t := newTable("Type", "Config", "Published")
			if !registration.V4Disabled {
				t.Row("A", familyColumn(false, registration.V4Suffix), publishedContent(client, cmd, domain, "A"))
			}
			if !registration.V6Disabled {
				t.Row("AAAA", familyColumn(false, registration.V6Suffix), publishedContent(client, cmd, domain, "AAAA"))
			}

			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func publishedContent(client *dyndns.Client, cmd *cobra.Command, domain, recordType string) string {
	record, err := client.Record(cmd.Context(), domain, recordType)
	if err != nil {
		var notFound *dyndns.NotFoundError
		if errors.As(err, &notFound) {
			return "Not Found"
		}
		return fmt.Sprintf("Error: %s", err)
	}
	return record.Content
}
