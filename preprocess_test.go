package url

import (
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/stretchr/testify/assert"
)

func Test_preprocess_TrimsLeadingAndTrailingC0OrSpace(t *testing.T) {
	t.Parallel()

	errs := errors.NewList(false)

	out := preprocess([]byte("  \t\x01http://example.com \x00 "), errs)

	assert.NotEqual(t, []byte("  \t\x01http://example.com \x00 "), out)
	assert.Len(t, errs.Errors(), 1)
}

func Test_preprocess_StripsInteriorTabAndNewline(t *testing.T) {
	t.Parallel()

	errs := errors.NewList(false)

	out := preprocess([]byte("ht\ttp://exa\nmple.com"), errs)

	assert.Equal(t, []byte("http://example.com"), out)
	assert.Len(t, errs.Errors(), 1)
}

func Test_preprocess_NoOpWhenClean(t *testing.T) {
	t.Parallel()

	errs := errors.NewList(false)

	out := preprocess([]byte("http://example.com/"), errs)

	assert.Equal(t, []byte("http://example.com/"), out)
	assert.Empty(t, errs.Errors())
}
