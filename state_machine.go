package url

import (
	"strconv"

	"github.com/hueristiq/hq-go-whatwg-url/ascii"
	"github.com/hueristiq/hq-go-whatwg-url/codepoint"
	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/hueristiq/hq-go-whatwg-url/host"
	"github.com/hueristiq/hq-go-whatwg-url/percentcoding"
	"github.com/hueristiq/hq-go-whatwg-url/schemes"
)

// state names one of the 21 distinguishable states of the basic URL
// parser (spec §4.7). Kept as a single explicit loop-and-switch per the
// re-architecture note in spec §9: splitting states into methods would
// obscure the "decrement pointer, re-examine this same byte under a new
// state" control flow several transitions rely on.
type state int

const (
	stateSchemeStart state = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateCannotBeABaseURLPath
	stateQuery
	stateFragment
)

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}

	return b
}

func isWindowsDriveLetter(a, b byte) bool {
	return ascii.IsAlpha(a) && (b == ':' || b == '|')
}

func isNormalizedWindowsDriveLetter(a, b byte) bool {
	return ascii.IsAlpha(a) && b == ':'
}

func startsWithWindowsDriveLetter(s []byte) bool {
	if len(s) < 2 || !isWindowsDriveLetter(s[0], s[1]) {
		return false
	}

	if len(s) == 2 {
		return true
	}

	switch s[2] {
	case '/', '\\', '?', '#':
		return true
	default:
		return false
	}
}

func normalizeWindowsDriveLetterSegment(seg string) string {
	if len(seg) == 2 && isWindowsDriveLetter(seg[0], seg[1]) {
		return string(seg[0]) + ":"
	}

	return seg
}

func isLastPathSegmentDriveLetter(u *URL) bool {
	if len(u.Path) == 0 {
		return false
	}

	last := u.Path[len(u.Path)-1]

	return len(last) == 2 && isNormalizedWindowsDriveLetter(last[0], last[1])
}

// shortenPath implements spec §4.7's path-shortening helper, used by
// ".." handling and by the relative and file states when they resolve
// a path against the base URL's path.
func shortenPath(u *URL) {
	if u.Scheme == "file" && len(u.Path) == 1 && isLastPathSegmentDriveLetter(u) {
		return
	}

	if len(u.Path) > 0 {
		u.Path = u.Path[:len(u.Path)-1]
	}
}

func isSpecialSlash(special bool, eof bool, c byte) bool {
	return !eof && (c == '/' || (special && c == '\\'))
}

// run executes the basic URL parser against input, mutating u in place
// and consulting base for relative resolution. override, when non-nil,
// requests the single-component re-parse used by Modify: the loop
// starts at *override instead of scheme-start and most states return
// immediately on reaching their natural end instead of falling through
// to the next state.
func (p *Parser) run(u *URL, input []byte, base *URL, override *state, errs *errors.List) (err error) {
	st := stateSchemeStart
	if override != nil {
		st = *override
	}

	var buffer []byte

	atSignSeen := false
	insideBrackets := false
	passwordTokenSeen := false
	pointer := 0

	for {
		eof := pointer >= len(input)

		var c byte
		if !eof {
			c = input[pointer]
		}

		switch st {
		case stateSchemeStart:
			switch {
			case !eof && ascii.IsAlpha(c):
				buffer = append(buffer, lowerASCII(c))
				st = stateScheme
				pointer++
			case override != nil:
				return errs.Fail(errors.InvalidSchemeStart)
			default:
				st = stateNoScheme
			}

		case stateScheme:
			switch {
			case !eof && (ascii.IsAlphaNumeric(c) || c == '+' || c == '-' || c == '.'):
				buffer = append(buffer, lowerASCII(c))
				pointer++
			case !eof && c == ':':
				scheme := string(buffer)

				if override != nil {
					wasSpecial := u.IsSpecial()
					u.Scheme = scheme

					if u.IsSpecial() != wasSpecial {
						return nil
					}

					if dp, ok := schemes.DefaultPort(scheme); ok && u.Port != nil && *u.Port == dp {
						u.Port = nil
					}

					return nil
				}

				u.Scheme = scheme
				buffer = nil

				switch {
				case u.Scheme == "file":
					st = stateFile
					pointer++
				case u.IsSpecial() && base != nil && base.Scheme == u.Scheme:
					st = stateSpecialRelativeOrAuthority
					pointer++
				case u.IsSpecial():
					st = stateSpecialAuthoritySlashes
					pointer++
				case pointer+1 < len(input) && input[pointer+1] == '/':
					st = statePathOrAuthority
					pointer += 2
				default:
					u.CannotBeABase = true
					st = stateCannotBeABaseURLPath
					pointer++
				}
			case override != nil:
				return errs.Fail(errors.InvalidScheme)
			default:
				buffer = nil
				st = stateNoScheme
				pointer = 0
			}

		case stateNoScheme:
			if base == nil || (base.CannotBeABase && c != '#') {
				return errs.Fail(errors.MissingSchemeNonRelativeURL)
			}

			if base.CannotBeABase && c == '#' {
				*u = *base.clone()
				u.Fragment = new(string)
				st = stateFragment
				pointer++
				continue
			}

			if base.Scheme != "file" {
				st = stateRelative
			} else {
				st = stateFile
			}

		case stateSpecialRelativeOrAuthority:
			if !eof && c == '/' && pointer+1 < len(input) && input[pointer+1] == '/' {
				st = stateSpecialAuthorityIgnoreSlashes
				pointer += 2
			} else {
				if reportErr := errs.Report(errors.RelativeURLMissingBeginningSolidus); reportErr != nil {
					return reportErr
				}

				st = stateRelative
			}

		case statePathOrAuthority:
			if !eof && c == '/' {
				st = stateAuthority
				pointer++
			} else {
				st = statePath
			}

		case stateRelative:
			u.Scheme = base.Scheme

			switch {
			case !eof && c == '/':
				st = stateRelativeSlash
				pointer++
			case u.IsSpecial() && !eof && c == '\\':
				if reportErr := errs.Report(errors.UnexpectedReverseSolidus); reportErr != nil {
					return reportErr
				}

				st = stateRelativeSlash
				pointer++
			default:
				u.Username = base.Username
				u.Password = base.Password
				u.HostPresent = base.HostPresent
				u.Host = base.Host
				u.Port = clonePort(base.Port)
				u.Path = append([]string(nil), base.Path...)
				u.Query = clonePtr(base.Query)

				switch {
				case !eof && c == '?':
					u.Query = new(string)
					st = stateQuery
					pointer++
				case !eof && c == '#':
					u.Fragment = new(string)
					st = stateFragment
					pointer++
				case !eof:
					u.Query = nil
					shortenPath(u)
					st = statePath
				default:
					return nil
				}
			}

		case stateRelativeSlash:
			switch {
			case isSpecialSlash(u.IsSpecial(), eof, c) && u.IsSpecial():
				if c == '\\' {
					if reportErr := errs.Report(errors.UnexpectedReverseSolidus); reportErr != nil {
						return reportErr
					}
				}

				st = stateSpecialAuthorityIgnoreSlashes
				pointer++
			case !eof && c == '/':
				st = stateAuthority
				pointer++
			default:
				u.Username = base.Username
				u.Password = base.Password
				u.HostPresent = base.HostPresent
				u.Host = base.Host
				u.Port = clonePort(base.Port)
				st = statePath
			}

		case stateSpecialAuthoritySlashes:
			if !eof && c == '/' && pointer+1 < len(input) && input[pointer+1] == '/' {
				st = stateSpecialAuthorityIgnoreSlashes
				pointer += 2
			} else {
				if reportErr := errs.Report(errors.MissingSolidusBeforeAuthority); reportErr != nil {
					return reportErr
				}

				st = stateSpecialAuthorityIgnoreSlashes
			}

		case stateSpecialAuthorityIgnoreSlashes:
			if !eof && (c == '/' || c == '\\') {
				pointer++
			} else {
				st = stateAuthority
			}

		case stateAuthority:
			switch {
			case !eof && c == '@':
				if reportErr := errs.Report(errors.UnexpectedCommercialAt); reportErr != nil {
					return reportErr
				}

				if atSignSeen {
					buffer = append([]byte("%40"), buffer...)
				}

				atSignSeen = true

				for i := 0; i < len(buffer); i++ {
					if buffer[i] == ':' && !passwordTokenSeen {
						passwordTokenSeen = true

						continue
					}

					var set = percentcoding.UserInfo

					var dst *string
					if passwordTokenSeen {
						dst = &u.Password
					} else {
						dst = &u.Username
					}

					var encoded []byte
					encoded = percentcoding.EncodeByte(encoded, buffer[i], set)
					*dst += string(encoded)
				}

				buffer = nil
				pointer++
			case eof || c == '/' || c == '?' || c == '#' || (u.IsSpecial() && c == '\\'):
				if atSignSeen && len(buffer) == 0 {
					return errs.Fail(errors.MissingCredentials)
				}

				pointer -= len(buffer)
				st = stateHost
				buffer = nil
			default:
				if c == '%' && !percentcoding.IsWellFormedPercentEncodingAt(input, pointer) {
					if reportErr := errs.Report(errors.UnescapedPercentSign); reportErr != nil {
						return reportErr
					}
				}

				buffer = append(buffer, c)
				pointer++
			}

		case stateHost, stateHostname:
			if override != nil && u.Scheme == "file" {
				st = stateFileHost

				continue
			}

			switch {
			case !eof && c == ':' && !insideBrackets:
				if len(buffer) == 0 {
					return errs.Fail(errors.EmptyHostSpecialScheme)
				}

				if override != nil && *override == stateHostname {
					return nil
				}

				h, hostErr := p.hostParser.Parse(buffer, !u.IsSpecial(), errs)
				if hostErr != nil {
					return hostErr
				}

				u.HostPresent = true
				u.Host = h
				buffer = nil
				st = statePort
				pointer++
			case eof || c == '/' || c == '?' || c == '#' || (u.IsSpecial() && c == '\\'):
				if u.IsSpecial() && len(buffer) == 0 {
					return errs.Fail(errors.EmptyHostSpecialScheme)
				}

				if override != nil && len(buffer) == 0 && (u.IncludesCredentials() || u.Port != nil) {
					return nil
				}

				h, hostErr := p.hostParser.Parse(buffer, !u.IsSpecial(), errs)
				if hostErr != nil {
					return hostErr
				}

				u.HostPresent = true
				u.Host = h
				buffer = nil

				if override != nil {
					return nil
				}

				st = statePathStart
			case !eof && c == '[':
				insideBrackets = true
				buffer = append(buffer, c)
				pointer++
			case !eof && c == ']':
				insideBrackets = false
				buffer = append(buffer, c)
				pointer++
			default:
				buffer = append(buffer, c)
				pointer++
			}

		case statePort:
			if override != nil && (!u.HostPresent || u.Host.Kind == host.Empty || u.Scheme == "file") {
				if reportErr := errs.Report(errors.UnexpectedPortWithoutHost); reportErr != nil {
					return reportErr
				}

				return nil
			}

			switch {
			case !eof && ascii.IsDigit(c):
				buffer = append(buffer, c)
				pointer++
			case eof || c == '/' || c == '?' || c == '#' || (u.IsSpecial() && c == '\\') || override != nil:
				if len(buffer) > 0 {
					n, convErr := strconv.Atoi(string(buffer))
					if convErr != nil || n > 65535 {
						return errs.Fail(errors.PortOutOfRange)
					}

					if dp, ok := schemes.DefaultPort(u.Scheme); ok && dp == n {
						u.Port = nil
					} else {
						port := n
						u.Port = &port
					}

					buffer = nil
				}

				if override != nil {
					return nil
				}

				st = statePathStart
			default:
				return errs.Fail(errors.PortInvalid)
			}

		case stateFile:
			u.Scheme = "file"
			u.HostPresent = true
			u.Host = emptyHost()

			switch {
			case !eof && (c == '/' || c == '\\'):
				if c == '\\' {
					if reportErr := errs.Report(errors.UnexpectedReverseSolidus); reportErr != nil {
						return reportErr
					}
				}

				st = stateFileSlash
				pointer++
			case base != nil && base.Scheme == "file":
				u.HostPresent = base.HostPresent
				u.Host = base.Host
				u.Path = append([]string(nil), base.Path...)
				u.Query = clonePtr(base.Query)

				switch {
				case eof:
					return nil
				case c == '?':
					u.Query = new(string)
					u.Fragment = nil
					st = stateQuery
					pointer++
				case c == '#':
					u.Fragment = new(string)
					st = stateFragment
					pointer++
				default:
					u.Query = nil

					if !startsWithWindowsDriveLetter(input[pointer:]) {
						shortenPath(u)
					} else {
						if reportErr := errs.Report(errors.UnexpectedWindowsDriveLetter); reportErr != nil {
							return reportErr
						}

						u.Path = nil
					}

					st = statePath
				}
			default:
				if reportErr := errs.Report(errors.FileSchemeMissingFollowingSolidus); reportErr != nil {
					return reportErr
				}

				st = statePath
			}

		case stateFileSlash:
			switch {
			case isSpecialSlash(true, eof, c):
				if c == '\\' {
					if reportErr := errs.Report(errors.UnexpectedReverseSolidus); reportErr != nil {
						return reportErr
					}
				}

				st = stateFileHost
				pointer++
			default:
				if base != nil && base.Scheme == "file" {
					u.HostPresent = base.HostPresent
					u.Host = base.Host

					if !startsWithWindowsDriveLetter(input[pointer:]) && len(base.Path) > 0 && isLastPathSegmentDriveLetter(base) {
						u.Path = append(u.Path, base.Path[0])
					}
				}

				st = statePathStart
			}

		case stateFileHost:
			switch {
			case eof || c == '/' || c == '\\' || c == '?' || c == '#':
				if len(buffer) == 2 && isWindowsDriveLetter(buffer[0], buffer[1]) {
					if reportErr := errs.Report(errors.UnexpectedWindowsDriveLetterHost); reportErr != nil {
						return reportErr
					}

					pointer -= len(buffer)
					buffer = nil
					st = statePath

					continue
				}

				if len(buffer) == 0 {
					u.HostPresent = true
					u.Host = emptyHost()

					if override != nil {
						return nil
					}

					st = statePathStart

					continue
				}

				h, hostErr := p.hostParser.Parse(buffer, false, errs)
				if hostErr != nil {
					return hostErr
				}

				if h.Kind == host.Domain && h.Domain == "localhost" {
					h.Domain = ""
				}

				u.HostPresent = true
				u.Host = h
				buffer = nil

				if override != nil {
					return nil
				}

				st = statePathStart
			default:
				buffer = append(buffer, c)
				pointer++
			}

		case statePathStart:
			if u.IsSpecial() {
				if !eof && c == '\\' {
					if reportErr := errs.Report(errors.UnexpectedReverseSolidus); reportErr != nil {
						return reportErr
					}
				}

				st = statePath

				if isSpecialSlash(true, eof, c) {
					pointer++
				}
			} else if override == nil && !eof && c == '?' {
				u.Query = new(string)
				st = stateQuery
				pointer++
			} else if override == nil && !eof && c == '#' {
				u.Fragment = new(string)
				st = stateFragment
				pointer++
			} else {
				st = statePath

				if !eof && c == '/' {
					pointer++
				}
			}

		case statePath:
			terminatorIsSlash := !eof && (c == '/' || (u.IsSpecial() && c == '\\'))

			switch {
			case eof || terminatorIsSlash || (override == nil && (c == '?' || c == '#')):
				if u.IsSpecial() && !eof && c == '\\' {
					if reportErr := errs.Report(errors.UnexpectedReverseSolidus); reportErr != nil {
						return reportErr
					}
				}

				seg := string(buffer)
				buffer = nil

				switch {
				case ascii.IsDoubleDotSegment(seg):
					shortenPath(u)

					if !terminatorIsSlash {
						u.Path = append(u.Path, "")
					}
				case ascii.IsSingleDotSegment(seg):
					if !terminatorIsSlash {
						u.Path = append(u.Path, "")
					}
				default:
					if u.Scheme == "file" && len(u.Path) == 0 && len(seg) == 2 && isWindowsDriveLetter(seg[0], seg[1]) {
						seg = normalizeWindowsDriveLetterSegment(seg)
					}

					u.Path = append(u.Path, seg)
				}

				switch {
				case eof:
					return nil
				case c == '?':
					u.Query = new(string)
					st = stateQuery
					pointer++
				case c == '#':
					u.Fragment = new(string)
					st = stateFragment
					pointer++
				default:
					pointer++
				}
			default:
				var err2 error

				pointer, err2 = p.consumeComponentByte(&buffer, input, pointer, percentcoding.Path, errs)
				if err2 != nil {
					return err2
				}
			}

		case stateCannotBeABaseURLPath:
			switch {
			case eof:
				return nil
			case c == '?':
				u.Query = new(string)
				st = stateQuery
				pointer++
			case c == '#':
				u.Fragment = new(string)
				st = stateFragment
				pointer++
			default:
				var err2 error

				seg := []byte(u.OpaquePath)

				pointer, err2 = p.consumeComponentByte(&seg, input, pointer, percentcoding.C0Control, errs)
				if err2 != nil {
					return err2
				}

				u.OpaquePath = string(seg)
			}

		case stateQuery:
			switch {
			case eof || (override == nil && c == '#'):
				*u.Query = string(buffer)
				buffer = nil

				if c == '#' {
					u.Fragment = new(string)
					st = stateFragment
					pointer++
				} else {
					return nil
				}
			default:
				set := percentcoding.Query
				if u.IsSpecial() {
					set = percentcoding.SpecialQuery
				}

				var err2 error

				pointer, err2 = p.consumeComponentByte(&buffer, input, pointer, set, errs)
				if err2 != nil {
					return err2
				}
			}

		case stateFragment:
			if eof {
				*u.Fragment = string(buffer)

				return nil
			}

			var err2 error

			pointer, err2 = p.consumeComponentByte(&buffer, input, pointer, percentcoding.Fragment, errs)
			if err2 != nil {
				return err2
			}
		}
	}
}

// consumeComponentByte validates and percent-encodes the single code
// point starting at input[pointer] into *buf under set, reporting
// invalid-url-code-point or unescaped-percent-sign as appropriate, and
// returns the pointer advanced past it.
func (p *Parser) consumeComponentByte(buf *[]byte, input []byte, pointer int, set *percentcoding.Set, errs *errors.List) (next int, err error) {
	b := input[pointer]

	if b < 0x80 {
		if b == '%' {
			if !percentcoding.IsWellFormedPercentEncodingAt(input, pointer) {
				if reportErr := errs.Report(errors.UnescapedPercentSign); reportErr != nil {
					return pointer, reportErr
				}
			}
		} else if !codepoint.IsURLCodePoint(rune(b), false) {
			if reportErr := errs.Report(errors.InvalidURLCodePoint); reportErr != nil {
				return pointer, reportErr
			}
		}

		*buf = percentcoding.EncodeByte(*buf, b, set)

		return pointer + 1, nil
	}

	r, size, ok := codepoint.DecodeRune(input[pointer:])
	if !ok {
		return pointer, errs.Fail(errors.InvalidUTF8)
	}

	if !codepoint.IsURLCodePoint(r, false) {
		if reportErr := errs.Report(errors.InvalidURLCodePoint); reportErr != nil {
			return pointer, reportErr
		}
	}

	*buf = percentcoding.EncodeRune(*buf, r, set)

	return pointer + size, nil
}

func emptyHost() host.Host {
	return host.Host{Kind: host.Empty}
}

func clonePort(p *int) *int {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
