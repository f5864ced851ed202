// Package url implements the WHATWG URL Standard's basic URL parser: a
// state machine (spec §4.7) that turns a raw string, optionally
// resolved against a base URL, into a URL record (spec §3), plus the
// input preprocessor (spec §4.8) and serializer (spec §4.9) that sit on
// either side of it.
//
// It is not a drop-in replacement for net/url: it follows the WHATWG
// algorithm's host/path/opaque-path handling, which differs from
// RFC 3986 in the cases that matter most for web compatibility — IPv4
// shorthand addresses, backslash-as-slash in special schemes, and
// percent-encode sets scoped per component.
package url
