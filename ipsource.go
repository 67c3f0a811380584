package dyndns

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Default IP echo endpoints. Each one answers over exactly one address
// family, so the connection's source address is the answer for that family.
const (
	DefaultIPv4URL = "https://ipv4.icanhazip.com"
	DefaultIPv6URL = "https://ipv6.icanhazip.com"
)

// IPSource discovers the machine's public addresses by asking an IP echo
// service once per address family. The response body, trimmed of
// whitespace, is taken verbatim as the address string.
type IPSource struct {
	V4URL string
	V6URL string

	// HTTPClient is used for lookups when set; http.DefaultClient otherwise.
	HTTPClient *http.Client
}

// Lookup fetches both public addresses, blocking until both calls complete.
func (s *IPSource) Lookup(ctx context.Context) (Addresses, error) {
	v4, err := s.lookup(ctx, s.V4URL, DefaultIPv4URL)
	if err != nil {
		return Addresses{}, fmt.Errorf("discovering public IPv4 address: %w", err)
	}
	v6, err := s.lookup(ctx, s.V6URL, DefaultIPv6URL)
	if err != nil {
		return Addresses{}, fmt.Errorf("discovering public IPv6 address: %w", err)
	}
	return Addresses{V4: v4, V6: v6}, nil
}

func (s *IPSource) lookup(ctx context.Context, url, fallback string) (string, error) {
	if url == "" {
		url = fallback
	}

	// 15 seconds is an eternity for a request this small, but it ensures the
	// lookup completes even when the caller passed context.Background and the
	// client has no timeout of its own.
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	httpclient := s.HTTPClient
	if httpclient == nil {
		httpclient = http.DefaultClient
	}

	resp, err := httpclient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http request returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}
