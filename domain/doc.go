// Package domain decomposes a domain name into subdomain, second-level
// domain and top-level domain parts, backed by a suffix array over the
// tlds package's TLD lists.
//
// Example:
//
//	parser := domain.New()
//	d := parser.Parse("www.example.co.uk")
//	fmt.Println(d.Subdomain, d.SLD, d.TLD) // www example co.uk
package domain
