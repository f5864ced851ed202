package percentcoding

import "github.com/hueristiq/hq-go-whatwg-url/ascii"

// Decode percent-decodes every well-formed "%HH" sequence in s and
// copies every other byte through unchanged. A "%" not followed by two
// hex digits is copied through literally, matching the WHATWG
// percent-decode algorithm (used by the host parser's domain branch,
// spec §4.6, ahead of domain-to-ASCII; opaque hosts are not decoded).
func Decode(s []byte) []byte {
	dst := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && IsWellFormedPercentEncodingAt(s, i) {
			hi, _ := ascii.HexValue(s[i+1])
			lo, _ := ascii.HexValue(s[i+2])
			dst = append(dst, byte(hi<<4|lo))
			i += 2

			continue
		}

		dst = append(dst, s[i])
	}

	return dst
}

// IsWellFormedPercentEncodingAt reports whether s[i] is '%' and is
// immediately followed by two ASCII hex digits. The state machine uses
// this to decide whether to report unescaped-percent-sign while
// accumulating authority, path, query and fragment bytes.
func IsWellFormedPercentEncodingAt(s []byte, i int) bool {
	return i+2 < len(s) && s[i] == '%' && ascii.IsHexDigit(s[i+1]) && ascii.IsHexDigit(s[i+2])
}
