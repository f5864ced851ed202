package ipv4_test

import (
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/ipv4"
	"github.com/stretchr/testify/assert"
)

func Test_Parse_FourPieces(t *testing.T) {
	t.Parallel()

	r := ipv4.Parse("192.168.0.1")
	assert.Equal(t, ipv4.Success, r.Outcome)
	assert.Equal(t, uint32(0xC0A80001), r.Address)
}

func Test_Parse_OnePiece(t *testing.T) {
	t.Parallel()

	r := ipv4.Parse("3232235521")
	assert.Equal(t, ipv4.Success, r.Outcome)
	assert.Equal(t, uint32(0xC0A80001), r.Address)
}

func Test_Parse_TwoPieces(t *testing.T) {
	t.Parallel()

	// 127 . 1 -> 127.0.0.1
	r := ipv4.Parse("127.1")
	assert.Equal(t, ipv4.Success, r.Outcome)
	assert.Equal(t, uint32(0x7F000001), r.Address)
}

func Test_Parse_ThreePieces(t *testing.T) {
	t.Parallel()

	// 1 . 2 . 3 -> 1.2.0.3
	r := ipv4.Parse("1.2.3")
	assert.Equal(t, ipv4.Success, r.Outcome)
	assert.Equal(t, uint32(0x01020003), r.Address)
}

func Test_Parse_HexAndOctalPieces(t *testing.T) {
	t.Parallel()

	// spec scenario: http://0x7f.1 -> 127.0.0.1
	r := ipv4.Parse("0x7f.1")
	assert.Equal(t, ipv4.Success, r.Outcome)
	assert.Equal(t, uint32(0x7F000001), r.Address)

	r = ipv4.Parse("0177.0.0.1")
	assert.Equal(t, ipv4.Success, r.Outcome)
	assert.Equal(t, uint32(0x7F000001), r.Address)
}

func Test_Parse_TrailingDot(t *testing.T) {
	t.Parallel()

	r := ipv4.Parse("192.168.0.1.")
	assert.Equal(t, ipv4.Success, r.Outcome)
	assert.Equal(t, uint32(0xC0A80001), r.Address)
}

func Test_Parse_ZeroAlone(t *testing.T) {
	t.Parallel()

	r := ipv4.Parse("0.0.0.0")
	assert.Equal(t, ipv4.Success, r.Outcome)
	assert.Equal(t, uint32(0), r.Address)
}

func Test_Parse_TooManyPieces(t *testing.T) {
	t.Parallel()

	r := ipv4.Parse("1.2.3.4.5")
	assert.Equal(t, ipv4.Failure, r.Outcome)
	assert.Error(t, r.Err)
}

func Test_Parse_EmptyInteriorPiece(t *testing.T) {
	t.Parallel()

	r := ipv4.Parse("1..2.3")
	assert.Equal(t, ipv4.Failure, r.Outcome)
}

func Test_Parse_NonDigitStart_NotAnIPAddress(t *testing.T) {
	t.Parallel()

	r := ipv4.Parse("example.com")
	assert.Equal(t, ipv4.NotAnIPAddress, r.Outcome)
}

func Test_Parse_OctalDigitOutOfRange_NotAnIPAddress(t *testing.T) {
	t.Parallel()

	r := ipv4.Parse("0189.0.0.1")
	assert.Equal(t, ipv4.NotAnIPAddress, r.Outcome)
}

func Test_Parse_NonFinalPieceOverflow(t *testing.T) {
	t.Parallel()

	r := ipv4.Parse("256.0.0.1")
	assert.Equal(t, ipv4.Failure, r.Outcome)
}

func Test_Parse_FinalPieceOverflow(t *testing.T) {
	t.Parallel()

	r := ipv4.Parse("1.2.3.999999")
	assert.Equal(t, ipv4.Failure, r.Outcome)
}

func Test_Parse_WholeValueOverflow(t *testing.T) {
	t.Parallel()

	r := ipv4.Parse("99999999999")
	assert.Equal(t, ipv4.Failure, r.Outcome)
}

func Test_ParseSimple(t *testing.T) {
	t.Parallel()

	addr, ok := ipv4.ParseSimple("1.2.3.4")
	assert.True(t, ok)
	assert.Equal(t, uint32(0x01020304), addr)

	_, ok = ipv4.ParseSimple("0x1.2.3.4")
	assert.False(t, ok)

	_, ok = ipv4.ParseSimple("1.2.3")
	assert.False(t, ok)

	_, ok = ipv4.ParseSimple("1.2.3.256")
	assert.False(t, ok)
}

func Test_Format(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "127.0.0.1", ipv4.Format(0x7F000001))
	assert.Equal(t, "255.255.255.255", ipv4.Format(0xFFFFFFFF))
	assert.Equal(t, "0.0.0.0", ipv4.Format(0))
}

func Test_Parse_Format_RoundTrip(t *testing.T) {
	t.Parallel()

	values := []uint32{0, 1, 0x7F000001, 0xC0A80001, 0xFFFFFFFF}

	for _, v := range values {
		r := ipv4.Parse(ipv4.Format(v))
		assert.Equal(t, ipv4.Success, r.Outcome)
		assert.Equal(t, v, r.Address)
	}
}
