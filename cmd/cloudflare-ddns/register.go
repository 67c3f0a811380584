package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dyndns "github.com/Zorro909/cloudflare-ddns"
)

func newRegisterCommand(a *app) *cobra.Command {
	var (
		v4Suffix  string
		v6Suffix  string
		disableV4 bool
		disableV6 bool
	)

	cmd := &cobra.Command{
		Use:   "register <domain>",
		Short: "Register a domain for dynamic DNS updates",
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

			for _, reg := range registrations {
				if reg.Domain == domain {
					return fmt.Errorf("domain %q is already registered", domain)
				}
			}

			registration := dyndns.Registration{
				Domain:     domain,
				V4Disabled: disableV4,
				V6Disabled: disableV6,
			}
			if cmd.Flags().Changed("v4-suffix") {
				registration.V4Suffix = &v4Suffix
			}
			if cmd.Flags().Changed("v6-suffix") {
				registration.V6Suffix = &v6Suffix
			}

			if err := writeRegistrations(path, append(registrations, registration)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered domain %q successfully\n", domain)
			return nil
		},
	}

	cmd.Flags().StringVarP(&v4Suffix, "v4-suffix", "4", "", "Trailing octets overriding the discovered IPv4 address")
	cmd.Flags().StringVarP(&v6Suffix, "v6-suffix", "6", "", "Trailing groups overriding the discovered IPv6 address")
	cmd.Flags().BoolVar(&disableV4, "disable-v4", false, "Do not manage the A record")
	cmd.Flags().BoolVar(&disableV6, "disable-v6", false, "Do not manage the AAAA record")
	return cmd
}
