package errors

// Kind identifies one member of the closed set of validation-error kinds a
// URL, host, or IP-address parse can report. The set is fixed by the
// WHATWG URL algorithm; new kinds are never added at runtime.
type Kind int

// The 24 validation-error kinds produced by the parser. Most are
// non-fatal and simply get appended to the caller's error list; the
// ones marked fatal below abort parsing and yield no URL record.
const (
	UnexpectedC0OrSpace Kind = iota
	UnexpectedTabOrNewline
	InvalidSchemeStart
	InvalidScheme
	MissingSchemeNonRelativeURL
	FileSchemeMissingFollowingSolidus
	RelativeURLMissingBeginningSolidus
	UnexpectedReverseSolidus
	MissingSolidusBeforeAuthority
	UnexpectedCommercialAt
	MissingCredentials
	UnexpectedPortWithoutHost
	EmptyHostSpecialScheme
	HostInvalid
	PortOutOfRange
	PortInvalid
	UnexpectedWindowsDriveLetter
	UnexpectedWindowsDriveLetterHost
	InvalidURLCodePoint
	UnescapedPercentSign
	HostParserFailure
	IPv4ParserFailure
	IPv6ParserFailure
	InvalidUTF8
)

// names holds the wire-format (spec-worded) name of every Kind, in
// declaration order. Keep in lock-step with the const block above.
var names = [...]string{
	"unexpected-c0-or-space",
	"unexpected-tab-or-newline",
	"invalid-scheme-start",
	"invalid-scheme",
	"missing-scheme-non-relative-url",
	"file-scheme-missing-following-solidus",
	"relative-url-missing-beginning-solidus",
	"unexpected-reverse-solidus",
	"missing-solidus-before-authority",
	"unexpected-commercial-at",
	"missing-credentials",
	"unexpected-port-without-host",
	"empty-host-special-scheme",
	"host-invalid",
	"port-out-of-range",
	"port-invalid",
	"unexpected-windows-drive-letter",
	"unexpected-windows-drive-letter-host",
	"invalid-url-code-point",
	"unescaped-percent-sign",
	"host-parser-failure",
	"ipv4-parser-failure",
	"ipv6-parser-failure",
	"invalid-utf8",
}

// String returns the spec-worded name of k, e.g. "invalid-url-code-point".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return "unknown-validation-error"
	}

	return names[k]
}

// fatalKinds is the subset of Kind that aborts parsing. port-out-of-range,
// port-invalid, invalid-utf8 and host-invalid are fatal per spec; the
// three sub-parser wrapper kinds are fatal because the top-level state
// machine always treats a failed host/IPv4/IPv6 sub-parse as
// unrecoverable (spec §4.6).
var fatalKinds = map[Kind]bool{
	PortOutOfRange:    true,
	PortInvalid:       true,
	InvalidUTF8:       true,
	HostInvalid:       true,
	HostParserFailure: true,
	IPv4ParserFailure: true,
	IPv6ParserFailure: true,
}

// IsFatalKind reports whether k aborts parsing when it occurs.
func IsFatalKind(k Kind) bool {
	return fatalKinds[k]
}
