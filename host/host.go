package host

import (
	"strings"

	"github.com/hueristiq/hq-go-whatwg-url/ascii"
	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/hueristiq/hq-go-whatwg-url/ipv4"
	"github.com/hueristiq/hq-go-whatwg-url/ipv6"
	"github.com/hueristiq/hq-go-whatwg-url/percentcoding"
	"golang.org/x/net/idna"
)

// Kind identifies which of the five shapes a parsed Host takes.
type Kind int

const (
	Empty Kind = iota
	Domain
	IPv4Address
	IPv6Address
	Opaque
)

// String returns the lowercase spec name of k, e.g. "ipv4".
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Domain:
		return "domain"
	case IPv4Address:
		return "ipv4"
	case IPv6Address:
		return "ipv6"
	case Opaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Host is the parsed result of C6: exactly one of the fields below is
// meaningful, selected by Kind.
type Host struct {
	Kind     Kind
	Domain   string
	Address4 uint32
	Address6 [8]uint16
	Opaque   string
}

// ToASCIIFunc is the domain-to-ASCII collaborator contract (spec
// §4.6/§6): given a percent-decoded domain label string, it lowercases
// ASCII alphas and applies IDNA/Punycode to anything non-ASCII. A
// non-nil error is always fatal to the enclosing host parse.
type ToASCIIFunc func(domain string) (string, error)

// DefaultToASCII takes an ASCII fast path — plain lowercasing, no IDNA
// table walk — for the overwhelmingly common all-ASCII domain, and
// falls back to golang.org/x/net/idna's Lookup profile (UTS #46
// processing, Punycode encoding) for anything containing non-ASCII bytes.
func DefaultToASCII(domain string) (string, error) {
	if isASCII(domain) {
		return strings.ToLower(domain), nil
	}

	return idna.Lookup.ToASCII(domain)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}

	return true
}

// Parser parses host strings into Host values. The zero value is not
// usable; construct one with New.
type Parser struct {
	toASCII ToASCIIFunc
}

// OptionFunc configures a Parser.
type OptionFunc func(*Parser)

// WithToASCII overrides the domain-to-ASCII collaborator, e.g. to swap
// in a stricter IDNA profile or a test double.
func WithToASCII(fn ToASCIIFunc) OptionFunc {
	return func(p *Parser) {
		p.toASCII = fn
	}
}

// New constructs a Parser, defaulting its domain-to-ASCII hook to
// DefaultToASCII.
func New(opts ...OptionFunc) (parser *Parser) {
	parser = &Parser{toASCII: DefaultToASCII}

	for _, opt := range opts {
		opt(parser)
	}

	return parser
}

// Parse classifies and parses input per spec §4.6's dispatch:
//
//  1. Empty input is the empty host.
//  2. A bracketed "[...]" is IPv6.
//  3. If isNotSpecial, input is an opaque host.
//  4. Otherwise, percent-decode, apply the domain-to-ASCII hook, reject
//     forbidden host code points, then attempt IPv4 before falling
//     back to a plain domain.
//
// Every fatal outcome is both returned as err and recorded in errs;
// non-fatal outcomes (currently just unescaped-percent-sign inside an
// opaque host) are recorded in errs alone.
func (p *Parser) Parse(input []byte, isNotSpecial bool, errs *errors.List) (result Host, err error) {
	if len(input) == 0 {
		return Host{Kind: Empty}, nil
	}

	if input[0] == '[' {
		if input[len(input)-1] != ']' {
			err = errs.Fail(errors.HostInvalid)

			return Host{}, err
		}

		pieces, ipv6Err := ipv6.Parse(input[1 : len(input)-1])
		if ipv6Err != nil {
			err = errs.FailWrapped(errors.IPv6ParserFailure, ipv6Err)

			return Host{}, err
		}

		return Host{Kind: IPv6Address, Address6: pieces}, nil
	}

	if isNotSpecial {
		return p.parseOpaque(input, errs)
	}

	decoded := percentcoding.Decode(input)

	asciiDomain, asciiErr := p.toASCII(string(decoded))
	if asciiErr != nil {
		err = errs.FailWrapped(errors.HostInvalid, asciiErr)

		return Host{}, err
	}

	for i := 0; i < len(asciiDomain); i++ {
		if ascii.IsForbiddenHostCodePoint(asciiDomain[i]) {
			err = errs.Fail(errors.HostInvalid)

			return Host{}, err
		}
	}

	v4 := ipv4.Parse(asciiDomain)

	switch v4.Outcome {
	case ipv4.Success:
		return Host{Kind: IPv4Address, Address4: v4.Address}, nil
	case ipv4.Failure:
		err = errs.FailWrapped(errors.IPv4ParserFailure, v4.Err)

		return Host{}, err
	default: // ipv4.NotAnIPAddress
		return Host{Kind: Domain, Domain: asciiDomain}, nil
	}
}

// parseOpaque implements the opaque-host branch of spec §4.6 step 3:
// reject forbidden host code points, flag ill-formed percent-escapes
// as a non-fatal validation error, then percent-encode with the
// c0-control set.
func (p *Parser) parseOpaque(input []byte, errs *errors.List) (result Host, err error) {
	for i := 0; i < len(input); i++ {
		b := input[i]

		if ascii.IsForbiddenHostCodePoint(b) {
			err = errs.Fail(errors.HostInvalid)

			return Host{}, err
		}

		if b == '%' && !percentcoding.IsWellFormedPercentEncodingAt(input, i) {
			if reportErr := errs.Report(errors.UnescapedPercentSign); reportErr != nil {
				return Host{}, reportErr
			}
		}
	}

	out := make([]byte, 0, len(input))

	for i := 0; i < len(input); i++ {
		out = percentcoding.EncodeByte(out, input[i], percentcoding.C0Control)
	}

	return Host{Kind: Opaque, Opaque: string(out)}, nil
}

// Format renders h back to its string form: a domain or opaque host
// verbatim, an IPv4 address in dotted-decimal, an IPv6 address
// bracketed and compressed, and the empty host as "".
func Format(h Host) string {
	switch h.Kind {
	case Empty:
		return ""
	case Domain:
		return h.Domain
	case IPv4Address:
		return ipv4.Format(h.Address4)
	case IPv6Address:
		return "[" + ipv6.Format(h.Address6) + "]"
	case Opaque:
		return h.Opaque
	default:
		return ""
	}
}
