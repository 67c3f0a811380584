package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	dyndns "github.com/Zorro909/cloudflare-ddns"
)

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...)
}

// familyColumn renders how one address family is configured for a
// registration.
func familyColumn(disabled bool, suffix *string) string {
	switch {
	case disabled:
		return "Disabled"
	case suffix != nil:
		return *suffix
	default:
		return "Default"
	}
}

func newListCommand(a *app) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered domains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configFile)
			if err != nil {
				return err
			}
			registrations, err := readRegistrations(a.domainsPath(cfg))
			if err != nil {
				return err
			}

			// Record IDs require API access; the plain listing does not.
			var client *dyndns.Client
			if debug {
				token, err := a.resolveToken(cfg)
				if err != nil {
					return err
				}
				client = a.newClient(token)
			}

			var t *table.Table
			if debug {
				t = newTable("Domain", "IPv4", "ID4", "IPv6", "ID6")
			} else {
				t = newTable("Domain", "IPv4", "IPv6")
			}

			for _, reg := range registrations {
				v4 := familyColumn(reg.V4Disabled, reg.V4Suffix)
				v6 := familyColumn(reg.V6Disabled, reg.V6Suffix)
				if !debug {
					t.Row(reg.Domain, v4, v6)
					continue
				}
				t.Row(reg.Domain, v4, recordID(a, client, cmd, reg.Domain, "A"), v6, recordID(a, client, cmd, reg.Domain, "AAAA"))
			}

			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Also show the Cloudflare record IDs (requires API access)")
	return cmd
}

func recordID(a *app, client *dyndns.Client, cmd *cobra.Command, domain, recordType string) string {
	record, err := client.Record(cmd.Context(), domain, recordType)
	if err != nil {
		var notFound *dyndns.NotFoundError
		if errors.As(err, &notFound) {
			return "Not Found"
		}
		a.logger.Printf("looking up %s record for %s: %s", recordType, domain, err)
		return "Error"
	}
	return record.ID
}
