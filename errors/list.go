package errors

// List is an error-accumulator buffer passed by reference through a
// parse call. Per the design notes in spec §9, this replaces the
// source's validation-error callback: every non-fatal error is appended
// here instead of being delivered through a closure.
type List struct {
	errs        []*Error
	failOnError bool
}

// NewList creates an empty accumulator. When failOnError is true, a
// non-fatal Report call returns its own error instead of only
// accumulating it, letting a caller opt into fail-fast semantics
// (mirrors nlnwa's WithFailOnValidationError parser option).
func NewList(failOnError bool) *List {
	return &List{failOnError: failOnError}
}

// Report records a non-fatal validation error of the given kind. It
// returns a non-nil error only when the list was constructed with
// failOnError, in which case the caller should abort the parse exactly
// as it would for a fatal error.
func (l *List) Report(kind Kind) error {
	e := New(kind)
	l.errs = append(l.errs, e)

	if l.failOnError {
		return e
	}

	return nil
}

// ReportWrapped is Report for a non-fatal error that wraps a sub-parser
// cause (currently unused by any non-fatal kind, but kept symmetric with
// Fail for callers that need it).
func (l *List) ReportWrapped(kind Kind, cause error) error {
	e := Wrap(kind, cause)
	l.errs = append(l.errs, e)

	if l.failOnError {
		return e
	}

	return nil
}

// Fail records a fatal validation error and always returns it: the
// caller must stop parsing and propagate the error.
func (l *List) Fail(kind Kind) error {
	e := New(kind)
	l.errs = append(l.errs, e)

	return e
}

// FailWrapped records a fatal validation error wrapping a sub-parser
// cause and always returns it.
func (l *List) FailWrapped(kind Kind, cause error) error {
	e := Wrap(kind, cause)
	l.errs = append(l.errs, e)

	return e
}

// Errors returns every validation error recorded so far, in the order
// reported.
func (l *List) Errors() []*Error {
	return l.errs
}
