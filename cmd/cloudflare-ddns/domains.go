package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	dyndns "github.com/Zorro909/cloudflare-ddns"
)

// domainsPath picks the registration list location: the flag wins, then the
// config file entry, then "domains.json" next to the working directory.
func (a *app) domainsPath(cfg *configStore) string {
	if a.domainsFile != "" {
		return a.domainsFile
	}
	if path, ok := cfg.entry("domains_file"); ok && path != "" {
		return path
	}
	return "domains.json"
}

// readRegistrations loads the ordered domain registration list. A missing or
// empty file reads as an empty list.
func readRegistrations(path string) ([]dyndns.Registration, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(contents) == 0) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read %q: %w", path, err)
	}

	var registrations []dyndns.Registration
	if err := json.Unmarshal(contents, &registrations); err != nil {
		return nil, fmt.Errorf("unable to parse %q: %w", path, err)
	}
	return registrations, nil
}

func writeRegistrations(path string, registrations []dyndns.Registration) error {
	contents, err := json.MarshalIndent(registrations, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize domain registrations: %w", err)
	}
	if err := os.WriteFile(path, append(contents, '\n'), 0644); err != nil {
		return fmt.Errorf("unable to write %q: %w", path, err)
	}
	return nil
}
