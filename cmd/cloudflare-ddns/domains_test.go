package main

import (
	"os"
	"path/filepath"
	"testing"

	dyndns "github.com/Zorro909/cloudflare-ddns"
)

func TestReadRegistrationsMissingOrEmptyFile(t *testing.T) {
	dir := t.TempDir()

	registrations, err := readRegistrations(filepath.Join(dir, "domains.json"))
	if err != nil || registrations != nil {
		t.Fatalf("Expected a missing file to read as an empty list; got %v, %v", registrations, err)
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	registrations, err = readRegistrations(empty)
	if err != nil || registrations != nil {
		t.Fatalf("Expected an empty file to read as an empty list; got %v, %v", registrations, err)
	}
}

func TestRegistrationsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.json")
	v4 := "9.9"
	original := []dyndns.Registration{
		{Domain: "a.example", V4Suffix: &v4, V6Disabled: true},
		{Domain: "b.example"},
	}

	if err := writeRegistrations(path, original); err != nil {
		t.Fatalf("writeRegistrations failed: %s", err)
	}
	read, err := readRegistrations(path)
	if err != nil {
		t.Fatalf("readRegistrations failed: %s", err)
	}

	if len(read) != 2 || read[0].Domain != "a.example" || read[1].Domain != "b.example" {
		t.Fatalf("Expected order-preserving round trip; got %+v", read)
	}
	if read[0].V4Suffix == nil || *read[0].V4Suffix != "9.9" {
		t.Errorf("Expected v4 suffix to survive the round trip; got %+v", read[0].V4Suffix)
	}
	if read[1].V4Suffix != nil || read[1].V6Suffix != nil {
		t.Errorf("Expected absent suffixes to stay nil; got %+v", read[1])
	}
}

func TestReadRegistrationsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readRegistrations(path); err == nil {
		t.Fatal("Expected an error for malformed JSON")
	}
}
