package extractor_test

import (
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_ReturnsNonNilExtractor(t *testing.T) {
	t.Parallel()

	e := extractor.New()

	require.NotNil(t, e)
}

func Test_CompileRegex_ReturnsNonNilRegex(t *testing.T) {
	t.Parallel()

	e := extractor.New()

	regex := e.CompileRegex()

	require.NotNil(t, regex)
}

func Test_CompileRegex_WithScheme_MatchesSchemeQualifiedURL(t *testing.T) {
	t.Parallel()

	e := extractor.New(extractor.WithScheme())

	regex := e.CompileRegex()

	got := regex.FindString("see https://example.com/docs for more")

	assert.Equal(t, "https://example.com/docs", got)
}

func Test_CompileRegex_WithScheme_SkipsBareHost(t *testing.T) {
	t.Parallel()

	e := extractor.New(extractor.WithScheme())

	regex := e.CompileRegex()

	got := regex.FindString("reach out at example.com")

	assert.Empty(t, got)
}

func Test_CompileRegex_Default_MatchesBareHost(t *testing.T) {
	t.Parallel()

	e := extractor.New()

	regex := e.CompileRegex()

	got := regex.FindString("reach out at example.com today")

	assert.Equal(t, "example.com", got)
}

func Test_FindAllString_ConfirmsSchemeQualifiedMatchParses(t *testing.T) {
	t.Parallel()

	e := extractor.New(extractor.WithScheme())

	matches := e.FindAllString("docs at https://example.com/a/b?x=1 today", nil)

	require.Len(t, matches, 1)
	assert.Equal(t, "https://example.com/a/b?x=1", matches[0].Raw)
	assert.Equal(t, "example.com", matches[0].URL.Host.Domain)
	assert.Equal(t, "https", matches[0].URL.Scheme)
}

func Test_FindAllString_DropsUnparseableCandidate(t *testing.T) {
	t.Parallel()

	e := extractor.New()

	// The relative-path pattern accepts this run of segments, but with
	// no scheme and no base to resolve against url.Parse fails outright,
	// so the candidate is dropped rather than reported.
	matches := e.FindAllString("just/some/path/segments", nil)

	assert.Empty(t, matches)
}

func Test_FindAllString_MultipleMatchesInText(t *testing.T) {
	t.Parallel()

	e := extractor.New(extractor.WithScheme())

	matches := e.FindAllString("first https://a.example.com then https://b.example.org/p", nil)

	require.Len(t, matches, 2)
	assert.Equal(t, "a.example.com", matches[0].URL.Host.Domain)
	assert.Equal(t, "b.example.org", matches[1].URL.Host.Domain)
}
