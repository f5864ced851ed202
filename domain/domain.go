package domain

import "strings"

// Domain is a domain name broken into its three conventional parts:
// Subdomain ("www" in "www.example.com"), SLD ("example"), and TLD
// ("com", or "co.uk" for a multi-label public suffix).
type Domain struct {
	Subdomain string
	SLD       string
	TLD       string
}

// String reassembles d's non-empty parts back into a dotted domain name.
func (d *Domain) String() (domain string) {
	var parts []string

	if d.Subdomain != "" {
		parts = append(parts, d.Subdomain)
	}

	if d.SLD != "" {
		parts = append(parts, d.SLD)
	}

	if d.TLD != "" {
		parts = append(parts, d.TLD)
	}

	return strings.Join(parts, ".")
}
