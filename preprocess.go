package url

import (
	"github.com/hueristiq/hq-go-whatwg-url/ascii"
	"github.com/hueristiq/hq-go-whatwg-url/errors"
)

// preprocess implements C9 (spec §4.8): trim leading and trailing C0
// controls and space, then strip every interior TAB, LF and CR. Each of
// the two steps reports at most one validation error, regardless of how
// many bytes it actually touches.
func preprocess(input []byte, errs *errors.List) []byte {
	start, end := 0, len(input)

	for start < end && ascii.IsC0OrSpace(input[start]) {
		start++
	}

	for end > start && ascii.IsC0OrSpace(input[end-1]) {
		end--
	}

	if start != 0 || end != len(input) {
		errs.Report(errors.UnexpectedC0OrSpace)
	}

	trimmed := input[start:end]

	hasTabOrNewline := false

	for _, b := range trimmed {
		if ascii.IsNewlineOrTab(b) {
			hasTabOrNewline = true

			break
		}
	}

	if !hasTabOrNewline {
		return trimmed
	}

	errs.Report(errors.UnexpectedTabOrNewline)

	out := make([]byte, 0, len(trimmed))

	for _, b := range trimmed {
		if !ascii.IsNewlineOrTab(b) {
			out = append(out, b)
		}
	}

	return out
}
