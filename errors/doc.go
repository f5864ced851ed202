// Package errors defines the closed set of validation errors produced while
// parsing a URL, a host, or an IPv4/IPv6 address.
//
// Most validation errors are non-fatal: the parser reports them to the
// caller and keeps going. A small subset is fatal and aborts parsing
// outright. Both classes share the same representation so callers never
// have to special-case one or the other when collecting diagnostics.
//
// Example Usage:
//
//	err := errors.New(errors.InvalidURLCodePoint)
//	if errors.IsFatal(err) {
//	    // parsing must stop
//	}
package errors
