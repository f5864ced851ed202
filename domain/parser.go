package domain

import (
	"index/suffixarray"
	"strings"

	"github.com/hueristiq/hq-go-whatwg-url/host"
	"github.com/hueristiq/hq-go-whatwg-url/tlds"
)

// Parser decomposes domain strings into Subdomain/SLD/TLD using a
// suffix array over a known-TLD list, growing the candidate suffix one
// label at a time from the right and keeping the longest one found, so
// a multi-label public suffix like "co.uk" is preferred over "uk"
// alone.
type Parser struct {
	sa *suffixarray.Index
}

// OptionFunc configures a Parser.
type OptionFunc func(*Parser)

// WithTLDs replaces the Parser's default TLD list (tlds.Official plus
// tlds.Pseudo) with a custom one, for callers that need to recognize
// niche or private TLDs the default list doesn't carry.
func WithTLDs(list ...string) OptionFunc {
	return func(p *Parser) {
		p.sa = suffixarray.New([]byte("\x00" + strings.Join(list, "\x00") + "\x00"))
	}
}

// New constructs a Parser seeded with tlds.Official and tlds.Pseudo.
func New(opts ...OptionFunc) (parser *Parser) {
	parser = &Parser{}

	list := make([]string, 0, len(tlds.Official)+len(tlds.Pseudo))
	list = append(list, tlds.Official...)
	list = append(list, tlds.Pseudo...)

	parser.sa = suffixarray.New([]byte("\x00" + strings.Join(list, "\x00") + "\x00"))

	for _, opt := range opts {
		opt(parser)
	}

	return parser
}

// Parse splits a dot-separated domain string into Subdomain/SLD/TLD. A
// domain with no recognized TLD, or with a single label, is returned
// with every part empty except SLD, which holds the input unchanged.
func (p *Parser) Parse(unparsed string) (parsed *Domain) {
	parsed = &Domain{}

	parts := strings.Split(unparsed, ".")

	if len(parts) <= 1 {
		parsed.SLD = unparsed

		return parsed
	}

	offset := p.findTLDOffset(parts)

	if offset < 0 {
		parsed.SLD = unparsed

		return parsed
	}

	parsed.Subdomain = strings.Join(parts[:offset], ".")
	parsed.SLD = parts[offset]
	parsed.TLD = strings.Join(parts[offset+1:], ".")

	return parsed
}

// ParseHost decomposes h's domain, if h is a domain host. ok is false
// for every other host kind (IPv4, IPv6, opaque, empty), since only a
// domain host has TLD structure to decompose.
func (p *Parser) ParseHost(h host.Host) (parsed *Domain, ok bool) {
	if h.Kind != host.Domain {
		return nil, false
	}

	return p.Parse(h.Domain), true
}

// findTLDOffset walks parts from right to left, growing the candidate
// TLD one label at a time for as long as the suffix array keeps
// matching, so "images.co.uk" resolves to SLD "images" and TLD "co.uk"
// rather than stopping at the shorter "uk".
func (p *Parser) findTLDOffset(parts []string) (offset int) {
	offset = -1

	for i := len(parts) - 1; i >= 0; i-- {
		candidate := strings.Join(parts[i:], ".")

		if len(p.sa.Lookup([]byte(candidate), -1)) > 0 {
			offset = i - 1
		} else {
			break
		}
	}

	return offset
}
