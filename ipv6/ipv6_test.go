package ipv6_test

import (
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/ipv6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_Full(t *testing.T) {
	t.Parallel()

	pieces, err := ipv6.Parse([]byte("2001:db8:0:0:0:0:0:1"))
	require.NoError(t, err)
	assert.Equal(t, [8]uint16{0x2001, 0x0DB8, 0, 0, 0, 0, 0, 1}, pieces)
}

func Test_Parse_Compressed(t *testing.T) {
	t.Parallel()

	pieces, err := ipv6.Parse([]byte("2001:db8::1"))
	require.NoError(t, err)
	assert.Equal(t, [8]uint16{0x2001, 0x0DB8, 0, 0, 0, 0, 0, 1}, pieces)
}

func Test_Parse_LoopbackCompressed(t *testing.T) {
	t.Parallel()

	pieces, err := ipv6.Parse([]byte("::1"))
	require.NoError(t, err)
	assert.Equal(t, [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, pieces)
}

func Test_Parse_AllZero(t *testing.T) {
	t.Parallel()

	pieces, err := ipv6.Parse([]byte("::"))
	require.NoError(t, err)
	assert.Equal(t, [8]uint16{}, pieces)
}

func Test_Parse_InteriorCompression(t *testing.T) {
	t.Parallel()

	pieces, err := ipv6.Parse([]byte("1::2"))
	require.NoError(t, err)
	assert.Equal(t, [8]uint16{1, 0, 0, 0, 0, 0, 0, 2}, pieces)
}

func Test_Parse_EmbeddedIPv4(t *testing.T) {
	t.Parallel()

	pieces, err := ipv6.Parse([]byte("::ffff:192.168.0.1"))
	require.NoError(t, err)
	assert.Equal(t, [8]uint16{0, 0, 0, 0, 0, 0xFFFF, 0xC0A8, 0x0001}, pieces)
}

func Test_Parse_TrailingLoneColon(t *testing.T) {
	t.Parallel()

	_, err := ipv6.Parse([]byte("1:"))
	assert.Error(t, err)
}

func Test_Parse_LeadingLoneColon(t *testing.T) {
	t.Parallel()

	_, err := ipv6.Parse([]byte(":1"))
	assert.Error(t, err)
}

func Test_Parse_SecondCompression(t *testing.T) {
	t.Parallel()

	_, err := ipv6.Parse([]byte("1::2::3"))
	assert.Error(t, err)
}

func Test_Parse_NotEnoughPieces(t *testing.T) {
	t.Parallel()

	_, err := ipv6.Parse([]byte("1:2:3:4:5:6:7"))
	assert.Error(t, err)
}

func Test_Parse_TooManyPieces(t *testing.T) {
	t.Parallel()

	_, err := ipv6.Parse([]byte("1:2:3:4:5:6:7:8:9"))
	assert.Error(t, err)
}

func Test_Parse_EmbeddedIPv4TooManyPieces(t *testing.T) {
	t.Parallel()

	_, err := ipv6.Parse([]byte("1:2:3:4:5:6:7:192.168.0.1"))
	assert.Error(t, err)
}

func Test_Parse_EmbeddedIPv4Malformed(t *testing.T) {
	t.Parallel()

	_, err := ipv6.Parse([]byte("::192.168.0.999"))
	assert.Error(t, err)
}

func Test_Format(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2001:db8::1", ipv6.Format([8]uint16{0x2001, 0x0DB8, 0, 0, 0, 0, 0, 1}))
	assert.Equal(t, "::1", ipv6.Format([8]uint16{0, 0, 0, 0, 0, 0, 0, 1}))
	assert.Equal(t, "::", ipv6.Format([8]uint16{}))
	assert.Equal(t, "1:0:2::3", ipv6.Format([8]uint16{1, 0, 2, 0, 0, 0, 0, 3}))
}

func Test_Parse_Format_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := [][8]uint16{
		{0x2001, 0x0DB8, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 1},
		{},
		{0xFE80, 0, 0, 0, 0x0202, 0xB3FF, 0xFE1E, 0x8329},
	}

	for _, pieces := range inputs {
		got, err := ipv6.Parse([]byte(ipv6.Format(pieces)))
		require.NoError(t, err)
		assert.Equal(t, pieces, got)
	}
}
