package url

import (
	"github.com/hueristiq/hq-go-whatwg-url/host"
	"github.com/hueristiq/hq-go-whatwg-url/schemes"
)

// URL is the C8 URL record: a plain value type, not a class-backed
// copy-on-write object — branching a base URL for relative resolution
// is done with an explicit clone() rather than implicit sharing.
type URL struct {
	Scheme   string
	Username string
	Password string

	// HostPresent distinguishes "no authority at all" (a mailto: or
	// data: URL) from an authority whose host happens to be the empty
	// string (host.Empty); the host.Host zero value can't carry that
	// distinction on its own.
	HostPresent bool
	Host        host.Host

	// Port is nil when absent (including when a special scheme's
	// explicit port equals that scheme's default and was normalized
	// away).
	Port *int

	// Path is the segment list for a normal URL; OpaquePath is used
	// instead when CannotBeABase is set.
	Path          []string
	OpaquePath    string
	CannotBeABase bool

	Query    *string
	Fragment *string
}

// IsSpecial reports whether u's scheme is one of the six special
// schemes (spec §3 invariant 1, §4.6/§4.7).
func (u *URL) IsSpecial() bool {
	return schemes.IsSpecial(u.Scheme)
}

// IncludesCredentials reports whether u carries a non-empty username
// or password.
func (u *URL) IncludesCredentials() bool {
	return u.Username != "" || u.Password != ""
}

// clone produces an independent copy of u, deep enough that mutating
// the clone's Path/Port/Query/Fragment never affects u. Used when the
// state machine branches a base URL for relative resolution.
func (u *URL) clone() *URL {
	c := *u

	if u.Path != nil {
		c.Path = append([]string(nil), u.Path...)
	}

	if u.Port != nil {
		port := *u.Port
		c.Port = &port
	}

	if u.Query != nil {
		q := *u.Query
		c.Query = &q
	}

	if u.Fragment != nil {
		f := *u.Fragment
		c.Fragment = &f
	}

	return &c
}
