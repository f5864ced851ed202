package host_test

import (
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/hueristiq/hq-go-whatwg-url/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parser_Parse_Empty(t *testing.T) {
	t.Parallel()

	p := host.New()
	errs := errors.NewList(false)

	h, err := p.Parse(nil, false, errs)
	require.NoError(t, err)
	assert.Equal(t, host.Empty, h.Kind)
}

func Test_Parser_Parse_Domain(t *testing.T) {
	t.Parallel()

	p := host.New()
	errs := errors.NewList(false)

	h, err := p.Parse([]byte("Example.COM"), false, errs)
	require.NoError(t, err)
	assert.Equal(t, host.Domain, h.Kind)
	assert.Equal(t, "example.com", h.Domain)
}

func Test_Parser_Parse_IPv4(t *testing.T) {
	t.Parallel()

	p := host.New()
	errs := errors.NewList(false)

	h, err := p.Parse([]byte("0x7f.1"), false, errs)
	require.NoError(t, err)
	assert.Equal(t, host.IPv4Address, h.Kind)
	assert.Equal(t, uint32(0x7F000001), h.Address4)
}

func Test_Parser_Parse_IPv6(t *testing.T) {
	t.Parallel()

	p := host.New()
	errs := errors.NewList(false)

	h, err := p.Parse([]byte("[2001:db8::1]"), false, errs)
	require.NoError(t, err)
	assert.Equal(t, host.IPv6Address, h.Kind)
	assert.Equal(t, [8]uint16{0x2001, 0x0DB8, 0, 0, 0, 0, 0, 1}, h.Address6)
}

func Test_Parser_Parse_IPv6_MissingClosingBracket(t *testing.T) {
	t.Parallel()

	p := host.New()
	errs := errors.NewList(false)

	_, err := p.Parse([]byte("[2001:db8::1"), false, errs)
	assert.Error(t, err)
}

func Test_Parser_Parse_Opaque(t *testing.T) {
	t.Parallel()

	p := host.New()
	errs := errors.NewList(false)

	h, err := p.Parse([]byte("some\x01thing"), true, errs)
	require.NoError(t, err)
	assert.Equal(t, host.Opaque, h.Kind)
	assert.Equal(t, "some%01thing", h.Opaque)
}

func Test_Parser_Parse_Opaque_ForbiddenCodePoint(t *testing.T) {
	t.Parallel()

	p := host.New()
	errs := errors.NewList(false)

	h, err := p.Parse([]byte("a!b"), true, errs)
	require.NoError(t, err) // '!' isn't forbidden; sanity check it round-trips unescaped
	assert.Equal(t, "a!b", h.Opaque)

	_, err = p.Parse([]byte("a<b"), true, errs)
	assert.Error(t, err)
}

func Test_Parser_Parse_ForbiddenHostCodePoint(t *testing.T) {
	t.Parallel()

	p := host.New()
	errs := errors.NewList(false)

	_, err := p.Parse([]byte("exa mple.com"), false, errs)
	assert.Error(t, err)
}

func Test_Format(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", host.Format(host.Host{Kind: host.Domain, Domain: "example.com"}))
	assert.Equal(t, "127.0.0.1", host.Format(host.Host{Kind: host.IPv4Address, Address4: 0x7F000001}))
	assert.Equal(t, "[2001:db8::1]", host.Format(host.Host{
		Kind:     host.IPv6Address,
		Address6: [8]uint16{0x2001, 0x0DB8, 0, 0, 0, 0, 0, 1},
	}))
	assert.Equal(t, "", host.Format(host.Host{Kind: host.Empty}))
}
