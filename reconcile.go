package dyndns

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Registration describes one managed domain as persisted in the domain list.
// A nil suffix means the discovered address is used unchanged for that
// family.
type Registration struct {
	Domain     string  `json:"domain"`
	V4Disabled bool    `json:"v4_disabled"`
	V4Suffix   *string `json:"v4_suffix"`
	V6Disabled bool    `json:"v6_disabled"`
	V6Suffix   *string `json:"v6_suffix"`
}

// Addresses holds the discovered public address for each family.
type Addresses struct {
	V4 string
	V6 string
}

// Result reports the outcome of reconciling one (domain, record type) pair.
// Old is empty when the published record could not be resolved.
type Result struct {
	Domain  string
	Type    string
	Old     string
	New     string
	Updated bool
	Err     error
}

// StalenessWindow is how long a run with unchanged addresses may be skipped
// entirely before the published records are re-validated anyway.
const StalenessWindow = 12 * time.Hour

// SkipRun reports whether a reconciliation run can be skipped because the
// discovered addresses match the last observed ones, force is not set, and
// the last run is recent enough.
func SkipRun(last, current Addresses, lastRun, now time.Time, force bool) bool {
	if force {
		return false
	}
	if last != current {
		return false
	}
	return now.Before(lastRun.Add(StalenessWindow))
}

// Reconciler drives desired-vs-published comparison for a set of domain
// registrations against a single Client.
type Reconciler struct {
	Client *Client
	Logger *log.Logger

	// Force updates every enabled record even when the published content
	// already matches.
	Force bool
}

// Run reconciles every enabled (registration, family) pair strictly in
// order, one result per pair.
//
// Zone listing is the shared prerequisite for every lookup, so a zone
// failure aborts the whole run with an error. Every other failure is
// per-record: it lands in that pair's Result and the loop moves on.
func (r *Reconciler) Run(ctx context.Context, registrations []Registration, addrs Addresses) ([]Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = discard
	}

	if _, err := r.Client.Zones(ctx); err != nil {
		return nil, fmt.Errorf("reconciliation requires the zone list: %w", err)
	}

	var results []Result
	for _, reg := range registrations {
		if !reg.V4Disabled {
			desired := addrs.V4
			if reg.V4Suffix != nil {
				desired = ReplaceIPv4Suffix(addrs.V4, *reg.V4Suffix)
			}
			results = append(results, r.reconcile(ctx, logger, reg.Domain, "A", desired))
		}
		if !reg.V6Disabled {
			desired := addrs.V6
			if reg.V6Suffix != nil {
				rewritten, err := ReplaceIPv6Suffix(addrs.V6, *reg.V6Suffix)
				if err != nil {
					results = append(results, Result{Domain: reg.Domain, Type: "AAAA", New: addrs.V6, Err: err})
					continue
				}
				desired = rewritten
			}
			results = append(results, r.reconcile(ctx, logger, reg.Domain, "AAAA", desired))
		}
	}
	return results, nil
}

func (r *Reconciler) reconcile(ctx context.Context, logger *log.Logger, domain, recordType, desired string) Result {
	result := Result{Domain: domain, Type: recordType, New: desired}

	current, err := r.Client.Record(ctx, domain, recordType)
	if err != nil {
		result.Err = err
		return result
	}
	result.Old = current.Content

	if current.Content == desired && !r.Force {
		logger.Printf("%s %s already set to %s", domain, recordType, desired)
		return result
	}

	if _, err := r.Client.UpdateRecord(ctx, domain, recordType, desired); err != nil {
		result.Err = err
		return result
	}
	logger.Printf("%s %s updated: %s -> %s", domain, recordType, current.Content, desired)
	result.Updated = true
	return result
}
