// Package extractor provides advanced URL extraction capabilities from text.
//
// URL extraction is a common requirement in text processing, data mining, and content analysis.
// This package offers a highly configurable extractor that uses a composite regular expression to
// identify and capture URLs in various forms. It supports fully-qualified URLs (with schemes and hosts),
// email addresses, and relative URLs, while allowing users to enforce or relax requirements for URL schemes
// and hosts. Custom regular expression patterns can also be provided to further fine-tune the extraction process.
//
// The extractor leverages robust Unicode and punycode handling, and it incorporates known TLD lists and
// scheme definitions (both official and unofficial) to ensure accurate matching of web addresses and email formats.
//
// CompileRegex returns the raw composite regex for callers that want to run
// it themselves. FindAllString goes one step further: every regex candidate
// is round-tripped through this module's own url.Parse, and any candidate
// that fails to parse is dropped rather than reported, catching the regex's
// own false positives.
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//	    "github.com/hueristiq/hq-go-whatwg-url/extractor"
//	)
//
//	func main() {
//	    // Create a new extractor that requires URL schemes.
//	    ext := extractor.New(extractor.WithScheme())
//
//	    text := "Contact us at info@example.com or visit https://www.example.com for more details."
//	    matches := ext.FindAllString(text, nil)
//	    fmt.Println("Extracted URLs:", matches)
//	}
//
// References:
// - Regular Expression HOWTO: https://golang.org/pkg/regexp/
// - IANA URI Schemes: https://www.iana.org/assignments/uri-schemes/uri-schemes.xhtml
// - Unicode and UTF-8 handling in Go: https://golang.org/pkg/unicode/utf8/
package extractor
