package dyndns

import (
	"fmt"
	"strings"
)

// NetworkError reports a transport-level failure: the request never produced
// a response body that could be inspected.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a response body that was not valid JSON, did not match
// the envelope shape, or claimed success while omitting the result payload.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding response from %s: %s", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError carries the error messages Cloudflare returned in an envelope
// whose success flag was false, regardless of HTTP status.
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return "cloudflare api reported failure"
	}
	return "cloudflare api error: " + strings.Join(e.Messages, "; ")
}

// NotFoundError means no record for the (domain, type) pair exists anywhere
// in the account, even after walking every zone.
type NotFoundError struct {
	Domain string
	Type   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s record found for %s", e.Type, e.Domain)
}

// UpdateMismatchError means the provider accepted a record update but echoed
// back content different from what was requested. The write is treated as
// failed and the cache is left untouched.
type UpdateMismatchError struct {
	Domain string
	Type   string
	Want   string
	Got    string
}

func (e *UpdateMismatchError) Error() string {
	return fmt.Sprintf("update of %s record for %s was not applied: put %q, provider returned %q", e.Type, e.Domain, e.Want, e.Got)
}

// ValidationError reports an address that cannot be processed at all,
// such as an IPv6 address carrying eight or more explicit groups next to "::".
type ValidationError struct {
	Addr   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid address %q: %s", e.Addr, e.Reason)
}
