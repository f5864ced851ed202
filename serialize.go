package url

import (
	"strconv"
	"strings"

	"github.com/hueristiq/hq-go-whatwg-url/host"
)

// Serialize implements C10 (spec §4.9): reassemble u into its string
// form. The result round-trips through Parse to an equal URL for every
// value Parse itself can produce (spec §8).
func Serialize(u *URL) string {
	var b strings.Builder

	b.WriteString(u.Scheme)
	b.WriteByte(':')

	if u.HostPresent {
		b.WriteString("//")

		if u.IncludesCredentials() {
			b.WriteString(u.Username)

			if u.Password != "" {
				b.WriteByte(':')
				b.WriteString(u.Password)
			}

			b.WriteByte('@')
		}

		b.WriteString(host.Format(u.Host))

		if u.Port != nil {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(*u.Port))
		}
	} else if u.Scheme == "file" {
		b.WriteString("//")
	}

	switch {
	case u.CannotBeABase:
		b.WriteString(u.OpaquePath)
	default:
		// A host-less path whose first segment is empty would otherwise
		// read back with "//" reparsed as an authority marker; insert a
		// "/." segment to keep it unambiguous (spec §4.9).
		if !u.HostPresent && len(u.Path) > 1 && u.Path[0] == "" {
			b.WriteString("/.")
		}

		for _, seg := range u.Path {
			b.WriteByte('/')
			b.WriteString(seg)
		}
	}

	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(*u.Query)
	}

	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}

	return b.String()
}
