package domain_test

import (
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/domain"
	"github.com/hueristiq/hq-go-whatwg-url/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parser_Parse_SimpleTLD(t *testing.T) {
	t.Parallel()

	p := domain.New()

	d := p.Parse("www.example.com")

	assert.Equal(t, "www", d.Subdomain)
	assert.Equal(t, "example", d.SLD)
	assert.Equal(t, "com", d.TLD)
	assert.Equal(t, "www.example.com", d.String())
}

func Test_Parser_Parse_MultiLabelPublicSuffix(t *testing.T) {
	t.Parallel()

	p := domain.New()

	d := p.Parse("www.example.co.uk")

	assert.Equal(t, "www", d.Subdomain)
	assert.Equal(t, "example", d.SLD)
	assert.Equal(t, "co.uk", d.TLD)
}

func Test_Parser_Parse_NestedSubdomains(t *testing.T) {
	t.Parallel()

	p := domain.New()

	d := p.Parse("a.b.c.example.com")

	assert.Equal(t, "a.b.c", d.Subdomain)
	assert.Equal(t, "example", d.SLD)
	assert.Equal(t, "com", d.TLD)
}

func Test_Parser_Parse_NoRecognizedTLD(t *testing.T) {
	t.Parallel()

	p := domain.New()

	d := p.Parse("intranet.corp.unknowntld")

	assert.Empty(t, d.Subdomain)
	assert.Empty(t, d.TLD)
	assert.Equal(t, "intranet.corp.unknowntld", d.SLD)
}

func Test_Parser_Parse_SingleLabel(t *testing.T) {
	t.Parallel()

	p := domain.New()

	d := p.Parse("localhost")

	assert.Empty(t, d.Subdomain)
	assert.Empty(t, d.TLD)
	assert.Equal(t, "localhost", d.SLD)
}

func Test_Parser_WithTLDs_CustomList(t *testing.T) {
	t.Parallel()

	p := domain.New(domain.WithTLDs("internal"))

	d := p.Parse("service.internal")

	assert.Equal(t, "service", d.SLD)
	assert.Equal(t, "internal", d.TLD)
}

func Test_Parser_ParseHost_DomainKind(t *testing.T) {
	t.Parallel()

	p := domain.New()

	d, ok := p.ParseHost(host.Host{Kind: host.Domain, Domain: "www.example.com"})
	require.True(t, ok)
	assert.Equal(t, "example", d.SLD)
}

func Test_Parser_ParseHost_NonDomainKindRejected(t *testing.T) {
	t.Parallel()

	p := domain.New()

	_, ok := p.ParseHost(host.Host{Kind: host.IPv4Address, Address4: 0x01020304})
	assert.False(t, ok)
}
