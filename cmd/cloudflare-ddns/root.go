package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	dyndns "github.com/Zorro909/cloudflare-ddns"
)

// defaultConfigFile can be overridden at build time:
//
//	go build -ldflags "-X main.defaultConfigFile=/etc/cloudflare-ddns.conf"
var defaultConfigFile = "cf-dynamic.conf"

type app struct {
	configFile  string
	domainsFile string
	token       string
	apiURL      string
	verbose     bool
	logger      *log.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{
		logger: log.New(io.Discard, "", log.LstdFlags),
		apiURL: env("CLOUDFLARE_API_URL", ""),
	}

	root := &cobra.Command{
		Use:          "cloudflare-ddns",
		Short:        "Dynamic DNS updates for Cloudflare domains",
		Long:         "Keeps the A/AAAA records of registered domains pointed at this machine's public IP addresses.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.logger = log.Default()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config-file", "c", env("CONFIG_PATH", defaultConfigFile), "Path to the key=value config file")
	root.PersistentFlags().StringVarP(&a.domainsFile, "domains-file", "d", env("DOMAINS_PATH", ""), "Path to the domain registration list")
	root.PersistentFlags().StringVar(&a.token, "cloudflare-token", env("CLOUDFLARE_TOKEN", ""), "Cloudflare API token (overrides the stored one)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newRegisterCommand(a),
		newListCommand(a),
		newStatusCommand(a),
		newDeleteCommand(a),
		newUpdateCommand(a),
		newLoginCommand(a),
	)
	return root
}

func env(envvar string, defaultvalue string) string {
	e, found := os.LookupEnv(envvar)
	if found {
		return e
	}
	return defaultvalue
}

// resolveToken prefers the flag/env token over the one stored in the config
// file.
func (a *app) resolveToken(cfg *configStore) (string, error) {
	if a.token != "" {
		return a.token, nil
	}
	if token, ok := cfg.entry("cloudflare_token"); ok && token != "" {
		return token, nil
	}
	return "", fmt.Errorf("no Cloudflare token configured - run \"cloudflare-ddns login\" first")
}

func (a *app) newClient(token string) *dyndns.Client {
	options := []dyndns.ClientOption{dyndns.WithLogger(a.logger)}
	if a.apiURL != "" {
		options = append(options, dyndns.WithBaseURL(a.apiURL))
	}
	return dyndns.NewClient(token, options...)
}
