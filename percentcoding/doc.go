// Package percentcoding implements the URL spec's percent-encode sets
// and the single-code-point percent-encode/percent-decode primitives
// built on top of them (spec §4.2).
//
// Each named set — C0Control, UserInfo, Component, Path, Query,
// SpecialQuery, Fragment, FormURLEncoded — is a 256-bit membership
// table backed by github.com/bits-and-blooms/bitset, the same
// dependency github.com/nlnwa/whatwg-url's from-scratch parser uses for
// exactly this purpose. Spec §9's design note calling for "128-bit
// bitmasks... for O(1) membership tests over ASCII" is satisfied by
// bitset's underlying word-sliced representation; this package does not
// duplicate that bit-twiddling by hand.
package percentcoding
