package percentcoding_test

import (
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/percentcoding"
	"github.com/stretchr/testify/assert"
)

func Test_EncodeByte(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", string(percentcoding.EncodeByte(nil, 'a', percentcoding.Path)))
	assert.Equal(t, "%20", string(percentcoding.EncodeByte(nil, ' ', percentcoding.Path)))
	assert.Equal(t, "%3F", string(percentcoding.EncodeByte(nil, '?', percentcoding.Path)))
}

func Test_EncodeRune_ASCII(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", string(percentcoding.EncodeRune(nil, 'h', percentcoding.Path))+
		string(percentcoding.EncodeRune(nil, 'e', percentcoding.Path))+
		string(percentcoding.EncodeRune(nil, 'l', percentcoding.Path))+
		string(percentcoding.EncodeRune(nil, 'l', percentcoding.Path))+
		string(percentcoding.EncodeRune(nil, 'o', percentcoding.Path)))
}

func Test_EncodeRune_NonASCII(t *testing.T) {
	t.Parallel()

	out := percentcoding.EncodeRune(nil, '€', percentcoding.Path)

	for _, b := range out {
		assert.Less(t, b, byte(0x80), "escaped output must be pure ASCII")
	}

	assert.Equal(t, "%E2%82%AC", string(out))
}

func Test_EncodeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a%20b", percentcoding.EncodeString("a b", percentcoding.Path))
}

func Test_Decode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte("a b"), percentcoding.Decode([]byte("a%20b")))
	assert.Equal(t, []byte("100%"), percentcoding.Decode([]byte("100%")))
	assert.Equal(t, []byte("100%2"), percentcoding.Decode([]byte("100%2")))
}

func Test_IsWellFormedPercentEncodingAt(t *testing.T) {
	t.Parallel()

	assert.True(t, percentcoding.IsWellFormedPercentEncodingAt([]byte("%20"), 0))
	assert.False(t, percentcoding.IsWellFormedPercentEncodingAt([]byte("%2"), 0))
	assert.False(t, percentcoding.IsWellFormedPercentEncodingAt([]byte("%zz"), 0))
}

func Test_Sets_Contain_C0AndHigh(t *testing.T) {
	t.Parallel()

	assert.True(t, percentcoding.C0Control.Contains(0x00))
	assert.True(t, percentcoding.C0Control.Contains(0x7F))
	assert.True(t, percentcoding.C0Control.Contains(0xFF))
	assert.False(t, percentcoding.C0Control.Contains('a'))

	assert.True(t, percentcoding.UserInfo.Contains('@'))
	assert.True(t, percentcoding.Component.Contains('&'))
	assert.True(t, percentcoding.SpecialQuery.Contains('\''))
	assert.False(t, percentcoding.Query.Contains('\''))
}
