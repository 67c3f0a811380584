package dyndns_test

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/net/context"

	dyndns "github.com/Zorro909/cloudflare-ddns"
)

func suffix(s string) *string { return &s }

func TestReconcileUpdatesChangedRecord(t *testing.T) {
	api := &fakeAPI{
		zones: []string{"zone1"},
		records: map[string][]fakeRecord{
			"zone1": {{ID: "r1", Name: "a.example", Content: "203.0.113.1", Type: "A"}},
		},
	}
	r := &dyndns.Reconciler{Client: newFakeClient(t, api)}

	registrations := []dyndns.Registration{{Domain: "a.example", V6Disabled: true}}
	results, err := r.Run(context.Background(), registrations, dyndns.Addresses{V4: "203.0.113.9"})
	if err != nil {
		t.Fatalf("Run failed: %s", err)
	}

	if len(results) != 1 {
		t.Fatalf("Expected 1 result; got %d", len(results))
	}
	result := results[0]
	if result.Err != nil {
		t.Fatalf("Expected successful reconciliation; got %s", result.Err)
	}
	if !result.Updated || result.Old != "203.0.113.1" || result.New != "203.0.113.9" {
		t.Errorf("Expected transition 203.0.113.1 -> 203.0.113.9; got %+v", result)
	}

	if len(api.puts) != 1 {
		t.Fatalf("Expected exactly 1 PUT; got %d", len(api.puts))
	}
	if api.puts[0].Content != "203.0.113.9" {
		t.Errorf("Expected PUT content %q; got %q", "203.0.113.9", api.puts[0].Content)
	}
}

func TestReconcileSkipsMatchingRecord(t *testing.T) {
	api := &fakeAPI{
		zones: []string{"zone1"},
		records: map[string][]fakeRecord{
			"zone1": {{ID: "r1", Name: "a.example", Content: "203.0.113.9", Type: "A"}},
		},
	}
	r := &dyndns.Reconciler{Client: newFakeClient(t, api)}

	registrations := []dyndns.Registration{{Domain: "a.example", V6Disabled: true}}
	results, err := r.Run(context.Background(), registrations, dyndns.Addresses{V4: "203.0.113.9"})
	if err != nil {
		t.Fatalf("Run failed: %s", err)
	}

	if len(api.puts) != 0 {
		t.Fatalf("Expected no PUT for a matching record; got %d", len(api.puts))
	}
	if results[0].Updated {
		t.Error("Expected no reported transition for a matching record")
	}
}

func TestReconcileForceUpdatesMatchingRecord(t *testing.T) {
	api := &fakeAPI{
		zones: []string{"zone1"},
		records: map[string][]fakeRecord{
			"zone1": {{ID: "r1", Name: "a.example", Content: "203.0.113.9", Type: "A"}},
		},
	}
	r := &dyndns.Reconciler{Client: newFakeClient(t, api), Force: true}

	registrations := []dyndns.Registration{{Domain: "a.example", V6Disabled: true}}
	results, err := r.Run(context.Background(), registrations, dyndns.Addresses{V4: "203.0.113.9"})
	if err != nil {
		t.Fatalf("Run failed: %s", err)
	}

	if len(api.puts) != 1 {
		t.Fatalf("Expected a forced PUT; got %d", len(api.puts))
	}
	if !results[0].Updated {
		t.Error("Expected a forced update to be reported")
	}
}

func TestReconcileAppliesSuffixes(t *testing.T) {
	api := &fakeAPI{
		zones: []string{"zone1"},
		records: map[string][]fakeRecord{
			"zone1": {
				{ID: "r1", Name: "a.example", Content: "203.0.113.1", Type: "A"},
				{ID: "r2", Name: "a.example", Content: "2001:db8::aaaa", Type: "AAAA"},
			},
		},
	}
	r := &dyndns.Reconciler{Client: newFakeClient(t, api)}

	registrations := []dyndns.Registration{{
		Domain:   "a.example",
		V4Suffix: suffix("9.9"),
		V6Suffix: suffix("ab:cd"),
	}}
	addrs := dyndns.Addresses{V4: "203.0.113.1", V6: "2001:db8::1"}
	results, err := r.Run(context.Background(), registrations, addrs)
	if err != nil {
		t.Fatalf("Run failed: %s", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results; got %d", len(results))
	}
	if expected := "203.0.113.9"; results[0].New != expected {
		t.Errorf("Expected IPv4 desired content %q; got %q", expected, results[0].New)
	}
	if expected := "2001:db8:0000:0000:0000:0000:ab:cd"; results[1].New != expected {
		t.Errorf("Expected IPv6 desired content %q; got %q", expected, results[1].New)
	}
	if len(api.puts) != 2 {
		t.Fatalf("Expected 2 PUTs; got %d", len(api.puts))
	}
}

func TestReconcileReportsMissingRecordAndContinues(t *testing.T) {
	api := &fakeAPI{
		zones: []string{"zone1"},
		records: map[string][]fakeRecord{
			"zone1": {{ID: "r1", Name: "b.example", Content: "203.0.113.1", Type: "A"}},
		},
	}
	r := &dyndns.Reconciler{Client: newFakeClient(t, api)}

	registrations := []dyndns.Registration{
		{Domain: "a.example", V6Disabled: true},
		{Domain: "b.example", V6Disabled: true},
	}
	results, err := r.Run(context.Background(), registrations, dyndns.Addresses{V4: "203.0.113.9"})
	if err != nil {
		t.Fatalf("Run failed: %s", err)
	}

	var notFound *dyndns.NotFoundError
	if !errors.As(results[0].Err, &notFound) {
		t.Fatalf("Expected NotFoundError for the unknown domain; got %v", results[0].Err)
	}
	if results[1].Err != nil || !results[1].Updated {
		t.Errorf("Expected the loop to continue past the missing record; got %+v", results[1])
	}
}

func TestReconcileRejectsOverfullV6Address(t *testing.T) {
	api := &fakeAPI{zones: []string{"zone1"}}
	r := &dyndns.Reconciler{Client: newFakeClient(t, api)}

	registrations := []dyndns.Registration{{Domain: "a.example", V4Disabled: true, V6Suffix: suffix("ab")}}
	results, err := r.Run(context.Background(), registrations, dyndns.Addresses{V6: "1:2:3:4:5:6:7:8::"})
	if err != nil {
		t.Fatalf("Run failed: %s", err)
	}

	var validation *dyndns.ValidationError
	if !errors.As(results[0].Err, &validation) {
		t.Fatalf("Expected ValidationError; got %v", results[0].Err)
	}
	if len(api.puts) != 0 {
		t.Errorf("Expected no PUT for an invalid address; got %d", len(api.puts))
	}
}

func TestReconcileAbortsWhenZonesUnavailable(t *testing.T) {
	api := &fakeAPI{failZones: true}
	r := &dyndns.Reconciler{Client: newFakeClient(t, api)}

	registrations := []dyndns.Registration{{Domain: "a.example", V6Disabled: true}}
	results, err := r.Run(context.Background(), registrations, dyndns.Addresses{V4: "203.0.113.9"})
	if err == nil {
		t.Fatal("Expected the run to abort without a zone list")
	}
	if results != nil {
		t.Errorf("Expected no per-domain results from an aborted run; got %+v", results)
	}
	var apiErr *dyndns.APIError
	if !errors.As(err, &apiErr) {
		t.Errorf("Expected the underlying APIError to be preserved; got %v", err)
	}
}

func TestSkipRun(t *testing.T) {
	now := time.Now()
	same := dyndns.Addresses{V4: "203.0.113.9", V6: "2001:db8::1"}
	changed := dyndns.Addresses{V4: "203.0.113.10", V6: "2001:db8::1"}

	tests := []struct {
		name    string
		last    dyndns.Addresses
		current dyndns.Addresses
		lastRun time.Time
		force   bool
		want    bool
	}{
		{"unchanged and recent", same, same, now.Add(-1 * time.Hour), false, true},
		{"unchanged but stale", same, same, now.Add(-13 * time.Hour), false, false},
		{"changed", same, changed, now.Add(-1 * time.Hour), false, false},
		{"forced", same, same, now.Add(-1 * time.Hour), true, false},
		{"never ran", dyndns.Addresses{}, same, time.Time{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dyndns.SkipRun(tt.last, tt.current, tt.lastRun, now, tt.force); got != tt.want {
				t.Errorf("SkipRun = %v; want %v", got, tt.want)
			}
		})
	}
}
