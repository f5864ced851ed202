package ascii_test

import (
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/ascii"
	"github.com/stretchr/testify/assert"
)

func Test_IsAlpha(t *testing.T) {
	t.Parallel()

	assert.True(t, ascii.IsAlpha('a'))
	assert.True(t, ascii.IsAlpha('Z'))
	assert.False(t, ascii.IsAlpha('0'))
	assert.False(t, ascii.IsAlpha(0x80))
}

func Test_IsDigit(t *testing.T) {
	t.Parallel()

	assert.True(t, ascii.IsDigit('5'))
	assert.False(t, ascii.IsDigit('a'))
}

func Test_IsHexDigit(t *testing.T) {
	t.Parallel()

	assert.True(t, ascii.IsHexDigit('f'))
	assert.True(t, ascii.IsHexDigit('F'))
	assert.True(t, ascii.IsHexDigit('9'))
	assert.False(t, ascii.IsHexDigit('g'))
}

func Test_IsC0Control(t *testing.T) {
	t.Parallel()

	assert.True(t, ascii.IsC0Control(0x00))
	assert.True(t, ascii.IsC0Control(0x1F))
	assert.False(t, ascii.IsC0Control(0x20))
}

func Test_IsNewlineOrTab(t *testing.T) {
	t.Parallel()

	assert.True(t, ascii.IsNewlineOrTab('\t'))
	assert.True(t, ascii.IsNewlineOrTab('\n'))
	assert.True(t, ascii.IsNewlineOrTab('\r'))
	assert.False(t, ascii.IsNewlineOrTab(' '))
}

func Test_IsForbiddenHostCodePoint(t *testing.T) {
	t.Parallel()

	for _, b := range []byte{0x00, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|'} {
		assert.True(t, ascii.IsForbiddenHostCodePoint(b), "byte %q should be forbidden", b)
	}

	assert.False(t, ascii.IsForbiddenHostCodePoint('a'))
}

func Test_HexValue(t *testing.T) {
	t.Parallel()

	v, ok := ascii.HexValue('a')
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = ascii.HexValue('g')
	assert.False(t, ok)
}

func Test_DecimalValue(t *testing.T) {
	t.Parallel()

	v, ok := ascii.DecimalValue('7')
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = ascii.DecimalValue('a')
	assert.False(t, ok)
}

func Test_WriteDecimal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", string(ascii.WriteDecimal(nil, 0)))
	assert.Equal(t, "9", string(ascii.WriteDecimal(nil, 9)))
	assert.Equal(t, "42", string(ascii.WriteDecimal(nil, 42)))
	assert.Equal(t, "255", string(ascii.WriteDecimal(nil, 255)))
}

func Test_IsSingleDotSegment(t *testing.T) {
	t.Parallel()

	assert.True(t, ascii.IsSingleDotSegment("."))
	assert.True(t, ascii.IsSingleDotSegment("%2e"))
	assert.True(t, ascii.IsSingleDotSegment("%2E"))
	assert.False(t, ascii.IsSingleDotSegment(".."))
}

func Test_IsDoubleDotSegment(t *testing.T) {
	t.Parallel()

	assert.True(t, ascii.IsDoubleDotSegment(".."))
	assert.True(t, ascii.IsDoubleDotSegment(".%2e"))
	assert.True(t, ascii.IsDoubleDotSegment("%2e."))
	assert.True(t, ascii.IsDoubleDotSegment("%2E%2E"))
	assert.False(t, ascii.IsDoubleDotSegment("."))
}
