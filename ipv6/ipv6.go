package ipv6

import "github.com/hueristiq/hq-go-whatwg-url/ipv4"

// Error is the sub-parser error type wrapped by errors.IPv6ParserFailure.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

const noCompress = -1

// Parse parses input — the bytes between the '[' and ']' of an IPv6
// literal, brackets already stripped — into eight hextets in host byte
// order. Unlike ipv4.Parse, there is no "not an IP address" outcome
// here: by the time the host parser hands a bracketed literal to this
// package it has already committed to IPv6, so any defect is fatal.
func Parse(input []byte) (pieces [8]uint16, err error) {
	pieceIndex := 0
	compress := noCompress
	pointer := 0

	if len(input) >= 2 && input[0] == ':' && input[1] == ':' {
		pointer = 2
		pieceIndex = 1
		compress = 1
	} else if len(input) >= 1 && input[0] == ':' {
		return pieces, &Error{Reason: "IPv6 address begins with a lone colon"}
	}

	for pointer < len(input) {
		if pieceIndex == 8 {
			return pieces, &Error{Reason: "too many pieces"}
		}

		if input[pointer] == ':' {
			if compress != noCompress {
				return pieces, &Error{Reason: "more than one compression run"}
			}

			pointer++
			pieceIndex++
			compress = pieceIndex

			continue
		}

		pieceStart := pointer

		value := uint16(0)
		length := 0

		for length < 4 && pointer < len(input) && isHex(input[pointer]) {
			value = value*16 + uint16(hexValue(input[pointer]))
			pointer++
			length++
		}

		switch {
		case pointer < len(input) && input[pointer] == '.':
			if length == 0 {
				return pieces, &Error{Reason: "embedded IPv4 piece has no leading hex digits"}
			}

			if pieceIndex > 6 {
				return pieces, &Error{Reason: "embedded IPv4 address leaves no room for two hextets"}
			}

			addr, ok := ipv4.ParseSimple(string(input[pieceStart:]))
			if !ok {
				return pieces, &Error{Reason: "embedded IPv4 address is malformed"}
			}

			pieces[pieceIndex] = uint16(addr >> 16)
			pieces[pieceIndex+1] = uint16(addr)
			pieceIndex += 2
			pointer = len(input)
		case pointer < len(input) && input[pointer] == ':':
			pointer++

			if pointer >= len(input) {
				return pieces, &Error{Reason: "address ends in a lone colon"}
			}

			pieces[pieceIndex] = value
			pieceIndex++
		case pointer < len(input):
			return pieces, &Error{Reason: "unexpected character in piece"}
		default:
			pieces[pieceIndex] = value
			pieceIndex++
		}
	}

	if compress != noCompress {
		swaps := pieceIndex - compress
		dst := 7

		for dst != 0 && swaps > 0 {
			pieces[dst], pieces[compress+swaps-1] = pieces[compress+swaps-1], pieces[dst]
			dst--
			swaps--
		}
	} else if pieceIndex != 8 {
		return pieces, &Error{Reason: "not enough pieces"}
	}

	return pieces, nil
}

// Format renders pieces in the canonical compressed form spec §8's
// round-trip property requires: the longest run of two or more
// consecutive zero pieces is replaced by "::" (the leftmost run wins a
// tie), every other piece is lowercase hex with no leading zeros, and
// a run of exactly one zero piece is never compressed.
func Format(pieces [8]uint16) string {
	start, length := longestZeroRun(pieces)

	var b []byte

	for i := 0; i < 8; {
		if length > 0 && i == start {
			b = append(b, ':', ':')
			i += length

			continue
		}

		if len(b) > 0 && b[len(b)-1] != ':' {
			b = append(b, ':')
		}

		b = appendHex(b, pieces[i])
		i++
	}

	return string(b)
}

func appendHex(dst []byte, v uint16) []byte {
	const digits = "0123456789abcdef"

	started := false

	for shift := 12; shift >= 0; shift -= 4 {
		d := (v >> uint(shift)) & 0xF
		if d != 0 {
			started = true
		}

		if started {
			dst = append(dst, digits[d])
		}
	}

	if !started {
		dst = append(dst, '0')
	}

	return dst
}

// longestZeroRun finds the leftmost longest run of two or more
// consecutive zero pieces, returning (start, length), or (0, 0) if no
// qualifying run exists.
func longestZeroRun(pieces [8]uint16) (start, length int) {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0

	for i := 0; i < 8; i++ {
		if pieces[i] == 0 {
			if curStart == -1 {
				curStart = i
			}

			curLen++

			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}

	if bestLen < 2 {
		return 0, 0
	}

	return bestStart, bestLen
}

func isHex(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func hexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
