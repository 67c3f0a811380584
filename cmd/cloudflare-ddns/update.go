package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	dyndns "github.com/Zorro909/cloudflare-ddns"
)

func newUpdateCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Reconcile all registered domains with the current public IP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig(a.configFile)
			if err != nil {
				return err
			}
			registrations, err := readRegistrations(a.domainsPath(cfg))
			if err != nil {
				return err
			}
			token, err := a.resolveToken(cfg)
			if err != nil {
				return err
			}

			// The echo endpoints can be overridden for self-hosted services.
			source := &dyndns.IPSource{}
			source.V4URL, _ = cfg.entry("ipv4_url")
			source.V6URL, _ = cfg.entry("ipv6_url")
			addrs, err := source.Lookup(cmd.Context())
			if err != nil {
				return err
			}
			a.logger.Printf("discovered public addresses: v4=%s v6=%s", addrs.V4, addrs.V6)

			last := dyndns.Addresses{}
			last.V4, _ = cfg.entry("last_ipv4")
			last.V6, _ = cfg.entry("last_ipv6")
			lastRun := time.Time{}
			if raw, ok := cfg.entry("last_update"); ok {
				if seconds, err := strconv.ParseInt(raw, 10, 64); err == nil {
					lastRun = time.Unix(seconds, 0)
				}
			}

			if dyndns.SkipRun(last, addrs, lastRun, time.Now(), force) {
				fmt.Fprintln(out, "IP addresses have not changed, skipping update")
				return nil
			}
			if last == addrs && !force {
				a.logger.Printf("addresses unchanged but last run is older than %s, re-validating records", dyndns.StalenessWindow)
			}

			reconciler := &dyndns.Reconciler{
				Client: a.newClient(token),
				Logger: a.logger,
				Force:  force,
			}
			results, err := reconciler.Run(cmd.Context(), registrations, addrs)
			if err != nil {
				return err
			}

			for _, result := range results {
				printResult(out, result)
			}

			if err := cfg.setEntry("last_ipv4", addrs.V4); err != nil {
				return err
			}
			if err := cfg.setEntry("last_ipv6", addrs.V6); err != nil {
				return err
			}
			return cfg.setEntry("last_update", strconv.FormatInt(time.Now().Unix(), 10))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Update records even when their content already matches")
	return cmd
}

// printResult reports one (domain, type) outcome. Pairs that were already
// correct stay silent, matching the tool's quiet-by-default behavior.
func printResult(out io.Writer, result dyndns.Result) {
	var notFound *dyndns.NotFoundError
	switch {
	case errors.As(result.Err, &notFound):
		fmt.Fprintf(out, "%s: no %s record found (wanted %s)\n", result.Domain, result.Type, result.New)
	case result.Err != nil:
		fmt.Fprintf(out, "%s: failed to update %s record to %s: %s\n", result.Domain, result.Type, result.New, result.Err)
	case result.Updated:
		fmt.Fprintf(out, "%s: %s -> %s\n", result.Domain, result.Old, result.New)
	}
}
