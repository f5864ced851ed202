package url

import "github.com/hueristiq/hq-go-whatwg-url/host"

// Parser parses and serializes URLs per the basic URL parser algorithm
// (spec §4.7). The zero value is not usable; construct one with New.
type Parser struct {
	failOnValidationError bool
	hostParser            *host.Parser
}

// OptionFunc configures a Parser.
type OptionFunc func(*Parser)

// WithFailOnValidationError makes every non-fatal validation error
// abort the parse, instead of only being collected for the caller to
// inspect afterward. Mirrors nlnwa's WithFailOnValidationError option.
func WithFailOnValidationError(fail bool) OptionFunc {
	return func(p *Parser) {
		p.failOnValidationError = fail
	}
}

// WithHostToASCII overrides the domain-to-ASCII collaborator the host
// parser uses, e.g. to swap in a stricter IDNA profile.
func WithHostToASCII(fn host.ToASCIIFunc) OptionFunc {
	return func(p *Parser) {
		p.hostParser = host.New(host.WithToASCII(fn))
	}
}

// New constructs a Parser with the given options applied over the
// defaults: validation errors are collected but non-fatal ones don't
// abort the parse, and hosts are parsed with host.DefaultToASCII.
func New(opts ...OptionFunc) (parser *Parser) {
	parser = &Parser{hostParser: host.New()}

	for _, opt := range opts {
		opt(parser)
	}

	return parser
}
