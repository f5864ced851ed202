// Package ipv4 implements the WHATWG IPv4 address parser: a dotted,
// mixed-radix, short-form-friendly parser for up to four pieces (spec
// §4.4), plus a simple four-decimal-piece variant used when an IPv4
// address is embedded in the tail of an IPv6 literal.
//
// This is a bespoke micro-parser, not a wrapper around the standard
// library's net.ParseIP: net.ParseIP only accepts strict
// dotted-decimal, four-piece addresses and has no notion of the
// octal/hex pieces or short forms ("0x7f.1") the URL spec requires, nor
// does it distinguish "this clearly isn't numeric, try a domain"
// from "this is overflowing and must hard-fail" the way spec §4.4 does.
package ipv4
