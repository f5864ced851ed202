package unicodes

// AllowedUcsChar is a regexp character-class body (no enclosing "[" "]")
// listing the non-ASCII code point ranges RFC 3987 allows inside an IRI:
// the "ucschar" production, covering most of the Basic Multilingual
// Plane above Latin-1 and planes 1 to 14. The private-use ranges of the
// "iprivate" production (U+E000-U+F8FF, planes 15 and 16) are not included.
const AllowedUcsChar = `\x{A0}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}` +
	`\x{10000}-\x{1FFFD}\x{20000}-\x{2FFFD}\x{30000}-\x{3FFFD}` +
	`\x{40000}-\x{4FFFD}\x{50000}-\x{5FFFD}\x{60000}-\x{6FFFD}` +
	`\x{70000}-\x{7FFFD}\x{80000}-\x{8FFFD}\x{90000}-\x{9FFFD}` +
	`\x{A0000}-\x{AFFFD}\x{B0000}-\x{BFFFD}\x{C0000}-\x{CFFFD}` +
	`\x{D0000}-\x{DFFFD}\x{E1000}-\x{EFFFD}`

// AllowedUcsCharMinusPunc is AllowedUcsChar with the Unicode "space
// separator" and "other punctuation" blocks most likely to appear in
// running text carved out, so a URL match doesn't end on a character a
// reader would perceive as sentence punctuation rather than part of the
// address (the space separators U+00A0, U+1680, U+2000-U+200A, U+2028,
// U+2029, U+202F and U+205F, plus the whole CJK Symbols and Punctuation
// block U+3000-U+303F).
//
// This is a hand-picked approximation of the unicode.Z/unicode.Po
// category exclusion a generator would compute: it carves out only the
// code points listed above, not every Z/Po code point scattered across
// the range above. Punctuation in the General Punctuation block, such as
// U+2026, is kept, so a match can run across it.
const AllowedUcsCharMinusPunc = `\x{A1}-\x{167F}\x{1681}-\x{1FFF}` +
	`\x{200B}-\x{2027}\x{202A}-\x{202E}\x{2030}-\x{205E}\x{2060}-\x{2FFF}` +
	`\x{3040}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}` +
	`\x{10000}-\x{1FFFD}\x{20000}-\x{2FFFD}\x{30000}-\x{3FFFD}` +
	`\x{40000}-\x{4FFFD}\x{50000}-\x{5FFFD}\x{60000}-\x{6FFFD}` +
	`\x{70000}-\x{7FFFD}\x{80000}-\x{8FFFD}\x{90000}-\x{9FFFD}` +
	`\x{A0000}-\x{AFFFD}\x{B0000}-\x{BFFFD}\x{C0000}-\x{CFFFD}` +
	`\x{D0000}-\x{DFFFD}\x{E1000}-\x{EFFFD}`
