/*
Package dyndns keeps Cloudflare address records pointed at a machine's
public IP.

Usage starts with [NewClient],
which returns a Client speaking the Cloudflare v4 REST API directly and
caching every zone and address record it discovers for the lifetime of the
client.
A [Reconciler] compares the published record contents against the desired
ones (the discovered public address, optionally rewritten with a trailing
suffix via [ReplaceIPv4Suffix] or [ReplaceIPv6Suffix]) and issues verified
updates only where they differ.
*/
package dyndns
