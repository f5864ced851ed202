// Package host implements the WHATWG host parser (spec §4.6): the
// dispatcher that classifies a byte slice as an opaque host, an IPv6
// literal, an IPv4 address, or a domain, applying percent-decoding,
// forbidden-code-point validation, and IDNA normalization as it goes.
package host
