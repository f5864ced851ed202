// Package ascii provides constant-time, table-driven predicates over a
// single ASCII byte: alpha/digit/hex classification, C0-control and
// whitespace detection, and the single-dot/double-dot path-segment
// checks the URL state machine needs.
//
// Every predicate here is pure and O(1); none of them allocate or
// decode UTF-8 — multi-byte handling belongs to the codepoint package.
package ascii
