// Package unicodes provides constants for defining sets of allowed Unicode characters.
// These constants are used to define character ranges that are allowed in certain contexts,
// such as user input, document processing, or any system where specific Unicode character sets
// are permitted or restricted.
//
// The constants in this package cover large ranges of Unicode characters
// deemed valid in specific situations, derived from the RFC 3987 ucschar
// production. This helps in validating input and ensuring
// that only certain characters are processed.
package unicodes
