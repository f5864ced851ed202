package percentcoding

import "github.com/bits-and-blooms/bitset"

// Set is a percent-encode set: a membership test over every possible
// byte value, including the non-ASCII range (every continuation byte of
// a multi-byte UTF-8 sequence decodes to >= 0x80, so a set that covers
// 0x7F-0xFF catches those for free without a separate branch).
type Set struct {
	bits *bitset.BitSet
}

// Contains reports whether b must be percent-encoded under this set.
func (s *Set) Contains(b byte) bool {
	return s.bits.Test(uint(b))
}

func newSet(extra ...byte) *Set {
	s := &Set{bits: bitset.New(256)}

	for _, b := range extra {
		s.bits.Set(uint(b))
	}

	return s
}

func (s *Set) union(extra ...byte) *Set {
	clone := &Set{bits: s.bits.Clone()}

	for _, b := range extra {
		clone.bits.Set(uint(b))
	}

	return clone
}

// newC0ControlSet builds the c0-control percent-encode set: every byte
// in 0x00-0x1F, plus every byte >= 0x7F (spec §4.2).
func newC0ControlSet() *Set {
	s := &Set{bits: bitset.New(256)}

	for b := 0; b <= 0x1F; b++ {
		s.bits.Set(uint(b))
	}

	for b := 0x7F; b <= 0xFF; b++ {
		s.bits.Set(uint(b))
	}

	return s
}

// Named percent-encode sets, each built by layering on top of the
// previous one exactly as spec §4.2 defines them.
var (
	C0Control = newC0ControlSet()

	Fragment = C0Control.union(' ', '"', '<', '>', '`')

	Query = C0Control.union(' ', '"', '#', '<', '>')

	SpecialQuery = Query.union('\'')

	Path = Query.union('?', '`', '{', '}')

	UserInfo = Path.union('/', ':', ';', '=', '@', '[', '\\', ']', '^', '|')

	Component = UserInfo.union('$', '%', '&', '+', ',')

	// FormURLEncoded layers the component set with the extra characters
	// the application/x-www-form-urlencoded serialization leaves
	// unescaped (spec §4.2 "component ∪ {!,',(,),~} minus a few" — the
	// historical WHATWG derivation removes a handful of the component
	// set's own members before adding these back; this module has no
	// form-urlencoded component to exercise the removal side, so only
	// the addition is implemented here).
	FormURLEncoded = Component.union('!', '\'', '(', ')', '~')
)
