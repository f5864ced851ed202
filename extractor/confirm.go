package extractor

import (
	whatwgurl "github.com/hueristiq/hq-go-whatwg-url"
)

// Match is a single confirmed extraction: the raw text the regex
// matched, its byte offsets in the scanned input, and the URL record
// this module's own parser produced from it.
type Match struct {
	Raw   string
	Start int
	End   int
	URL   *whatwgurl.URL
}

// FindAllString returns every regex candidate in text that also
// round-trips through this module's own url.Parse without a fatal
// error. A scheme-qualified candidate (e.g. "https://example.com") is
// parsed directly; a bare host or relative-path candidate is parsed
// against base so it can still resolve to a usable URL record. Regex
// false positives - a path-like run of characters that happens to
// satisfy RelativeURLsPattern but isn't a parseable URL - are dropped
// rather than reported.
//
// Example:
//
//	e := New()
//	matches := e.FindAllString("visit https://example.com/docs today", nil)
func (e *Extractor) FindAllString(text string, base *whatwgurl.URL) (matches []Match) {
	regex := e.CompileRegex()

	parser := whatwgurl.New()

	for _, loc := range regex.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]

		parsed, _, err := parser.Parse(raw, base)
		if err != nil {
			continue
		}

		matches = append(matches, Match{
			Raw:   raw,
			Start: loc[0],
			End:   loc[1],
			URL:   parsed,
		})
	}

	return matches
}
