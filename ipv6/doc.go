// Package ipv6 implements the WHATWG IPv6 address parser (spec §4.5):
// up to eight colon-separated hextets, at most one "::" compression
// run, and an optional embedded IPv4 tail reparsed through the ipv4
// package's restricted four-decimal-piece variant.
package ipv6
