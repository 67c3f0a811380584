package dyndns

import "strings"

// ReplaceIPv4Suffix replaces the trailing octets of addr with the octets of
// suffix. A one-part suffix replaces the last octet, a two-part suffix the
// last two, and so on; a suffix with four or more parts replaces the whole
// address.
//
// No validation is performed on either input. Malformed octets propagate
// into the result verbatim.
func ReplaceIPv4Suffix(addr, suffix string) string {
	parts := strings.Split(addr, ".")
	suffixParts := strings.Split(suffix, ".")
	if len(suffixParts) >= len(parts) {
		return suffix
	}
	return strings.Join(append(parts[:len(parts)-len(suffixParts)], suffixParts...), ".")
}

// ReplaceIPv6Suffix replaces the trailing groups of addr with the groups of
// suffix, expanding a "::" zero compression first so that trailing positions
// are unambiguous.
//
// Groups keep whatever literal width they already have; no zero padding is
// applied. An address whose explicit groups already number eight or more
// alongside a "::" fails with ValidationError.
func ReplaceIPv6Suffix(addr, suffix string) (string, error) {
	expanded, err := expandIPv6(addr)
	if err != nil {
		return "", err
	}
	parts := strings.Split(expanded, ":")
	suffixParts := strings.Split(suffix, ":")
	if len(suffixParts) >= len(parts) {
		return suffix, nil
	}
	return strings.Join(append(parts[:len(parts)-len(suffixParts)], suffixParts...), ":"), nil
}

// expandIPv6 rewrites the "::" marker as the literal "0000" groups it stands
// for, producing the full eight-group form. Addresses without "::" are
// returned unchanged.
func expandIPv6(addr string) (string, error) {
	if !strings.Contains(addr, "::") {
		return addr, nil
	}
	left, right, _ := strings.Cut(addr, "::")
	leftParts := strings.Split(left, ":")
	rightParts := strings.Split(right, ":")

	missing := 8 - len(leftParts) - len(rightParts)
	if missing < 0 {
		return "", &ValidationError{Addr: addr, Reason: `eight or more groups alongside "::"`}
	}

	groups := leftParts
	for i := 0; i < missing; i++ {
		groups = append(groups, "0000")
	}
	groups = append(groups, rightParts...)
	return strings.Join(groups, ":"), nil
}
