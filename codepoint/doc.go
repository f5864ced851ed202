// Package codepoint implements the URL code-point predicate and the
// ill-formed-UTF-8 detection spec §4.3 requires of the state machine's
// buffering states (authority, host, path, query, fragment,
// cannot-be-a-base-url-path).
package codepoint
