package urlx

import (
	"strings"

	"golang.org/x/net/idna"
)

var idnaProfile = idna.New(idna.MapForLookup(), idna.Transitional(false))

// ASCIIHostname returns the URL's hostname in its Punycode (A-label) form,
// so two URLs that spell the same host differently (Unicode vs. ASCII
// encoding, mixed case) compare equal once normalized. Falls back to the
// raw hostname, lowercased, if it cannot be converted (an already-ASCII or
// malformed label) — the same "best effort, never fail a lookup" spirit as
// the rest of this package's parsing.
func (u *URL) ASCIIHostname() string {
	host, _ := u.Hostname()
	if host == "" {
		return host
	}
	ascii, err := idnaProfile.ToASCII(host)
	if err != nil {
		return strings.ToLower(host)
	}
	return ascii
}
