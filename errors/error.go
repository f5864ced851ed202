package errors

import "fmt"

// Error is a tagged validation error: a Kind from the closed set defined
// in kind.go, plus an optional wrapped cause. The parser sets a cause
// for IPv4ParserFailure and IPv6ParserFailure, and for HostInvalid when
// the domain-to-ASCII function fails.
type Error struct {
	Kind  Kind
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() (s string) {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Cause)
	}

	return e.Kind.String()
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As from the
// standard library keep working on top of this type.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Fatal reports whether this error aborts parsing.
func (e *Error) Fatal() bool {
	return IsFatalKind(e.Kind)
}

// New builds a non-wrapping validation error of the given kind.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Wrap builds a validation error of the given kind around another
// error value (an *ipv4.Error, an *ipv6.Error, or the error returned by
// the host parser's domain-to-ASCII function).
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// Code extracts the Kind from any error produced by this package,
// mirroring the errors.Code(err) accessor used by
// github.com/nlnwa/whatwg-url/canon's canonicalizer.
func Code(err error) (kind Kind, ok bool) {
	ve, ok := err.(*Error)
	if !ok {
		return kind, false
	}

	return ve.Kind, true
}

// IsFatal reports whether err is a fatal *Error. A non-validation error
// (or nil) is never considered fatal by this helper; callers that must
// abort on any non-nil error should simply check err != nil themselves.
func IsFatal(err error) bool {
	ve, ok := err.(*Error)

	return ok && ve.Fatal()
}
