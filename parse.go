package url

import (
	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/hueristiq/hq-go-whatwg-url/host"
	"github.com/hueristiq/hq-go-whatwg-url/ipv4"
	"github.com/hueristiq/hq-go-whatwg-url/ipv6"
	"github.com/hueristiq/hq-go-whatwg-url/percentcoding"
)

// Parse runs the basic URL parser (spec §4.7) against raw, optionally
// resolving it relative to base. It returns the resulting URL record,
// every validation error collected along the way, and a non-nil error
// only when parsing failed fatally (in which case the returned URL and
// error list should be ignored beyond inspecting the error).
func (p *Parser) Parse(raw string, base *URL) (parsed *URL, validationErrors []*errors.Error, err error) {
	errs := errors.NewList(p.failOnValidationError)

	input := preprocess([]byte(raw), errs)
	if p.failOnValidationError && len(errs.Errors()) > 0 {
		return nil, errs.Errors(), errs.Errors()[0]
	}

	u := &URL{}

	if runErr := p.run(u, input, base, nil, errs); runErr != nil {
		return nil, errs.Errors(), runErr
	}

	return u, errs.Errors(), nil
}

// ParseHost runs the host parser (spec §4.6) standalone, the entry
// point backing parse-host in spec §6. isOpaque selects the opaque-host
// branch, matching the state machine's isNotSpecial argument for a
// non-special scheme's authority.
func (p *Parser) ParseHost(raw string, isOpaque bool) (h host.Host, validationErrors []*errors.Error, err error) {
	errs := errors.NewList(p.failOnValidationError)

	h, err = p.hostParser.Parse([]byte(raw), isOpaque, errs)

	return h, errs.Errors(), err
}

// ParseIPv4 runs the IPv4 parser (spec §4.4) standalone.
func ParseIPv4(raw string) ipv4.Result {
	return ipv4.Parse(raw)
}

// ParseIPv6 runs the IPv6 parser (spec §4.5) standalone. raw must not
// include the enclosing "[" "]" brackets.
func ParseIPv6(raw string) ([8]uint16, error) {
	return ipv6.Parse([]byte(raw))
}

// component names one of the URL record fields Modify can target.
type component int

// The components Modify supports, mirroring the subset of spec §6's
// modify operation that maps onto a single basic-URL-parser state
// override: username, password, hostname, port, pathname, search and
// hash. Scheme changes are intentionally unsupported here since
// special/non-special scheme changes have cross-cutting effects (spec
// §4.7's scheme state override rules) better served by a fresh Parse.
const (
	ComponentUsername component = iota
	ComponentPassword
	ComponentHostname
	ComponentPort
	ComponentPathname
	ComponentSearch
	ComponentHash
)

var componentStates = map[component]state{
	ComponentHostname: stateHostname,
	ComponentPort:     statePort,
	ComponentPathname: statePathStart,
	ComponentSearch:   stateQuery,
	ComponentHash:     stateFragment,
}

// Modify re-parses value as a single component of an existing URL,
// returning an updated copy. hostname/port/pathname/search/hash are
// implemented by restarting the state machine partway through (spec
// §4.7's state-override contract), so the same validation and
// normalization rules apply as during a full parse. username/password
// have no corresponding state to restart into — per spec §6 their
// setters instead percent-encode the raw value directly against the
// userinfo set.
func (p *Parser) Modify(u *URL, c component, value string) (modified *URL, validationErrors []*errors.Error, err error) {
	errs := errors.NewList(p.failOnValidationError)

	clone := u.clone()

	switch c {
	case ComponentUsername:
		clone.Username = percentcoding.EncodeString(value, percentcoding.UserInfo)

		return clone, nil, nil
	case ComponentPassword:
		clone.Password = percentcoding.EncodeString(value, percentcoding.UserInfo)

		return clone, nil, nil
	}

	st, ok := componentStates[c]
	if !ok {
		return nil, nil, errs.Fail(errors.InvalidScheme)
	}

	if c == ComponentPathname {
		clone.Path = nil
	}

	if c == ComponentSearch {
		clone.Query = new(string)
	}

	if c == ComponentHash {
		clone.Fragment = new(string)
	}

	if runErr := p.run(clone, []byte(value), nil, &st, errs); runErr != nil {
		return nil, errs.Errors(), runErr
	}

	return clone, errs.Errors(), nil
}
