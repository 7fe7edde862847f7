package urlx

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const hexDigits = "0123456789ABCDEF"

// encodeIllegal percent-encodes every byte that is a space, a control
// character (0x00-0x1F), or >0x7E, per a_Url_new's "there's no standard for
// illegal chars; we chose to encode" comment. It reports how many bytes
// were encoded in total and how many of those were plain spaces.
func encodeIllegal(s string) (out string, illegal, illegalSpace int) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			illegalSpace++
			illegal++
		} else if c <= 0x1F || c >= 0x7F {
			illegal++
		}
	}
	if illegal == 0 {
		return s, 0, 0
	}
	var b strings.Builder
	b.Grow(len(s) + 2*illegal)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c > 0x1F && c < 0x7F && c != ' ' {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xF])
		}
	}
	return b.String(), illegal, illegalSpace
}

// stripDelimiters strips a leading "URL:" prefix and a surrounding "<...>"
// pair, per RFC 3986's suggested cleanup for URLs lifted out of other
// media (mail headers, plain text), mirroring
// a_Url_string_strip_delimiters.
func stripDelimiters(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "URL:") {
		s = s[4:]
	}
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	return s
}

// inferScheme applies the heuristic a_Url_new uses when no base URL is
// given and the string doesn't already carry a scheme: a bare host-ish
// string ("example.com/...") is rewritten to "//example.com/..." so it
// resolves as an authority against the "http:" default base; a string
// starting with exactly one '/' gets a second one prepended for the same
// reason. A caller wanting file: semantics for a bare local path (the
// other half of the heuristic spec.md describes) supplies an explicit
// "file:" base rather than relying on this function, which only
// reproduces url.c's own hardcoded http-only default.
func inferScheme(s string) string {
	if len(s) > 0 && s[0] != '/' {
		if i := strings.IndexAny(s, "/#?:"); i < 0 || s[i] != ':' {
			return "//" + s
		}
		return s
	}
	if len(s) > 1 && s[1] != '/' {
		return "/" + s
	}
	return s
}

// New parses and resolves a URL string against an optional base, per
// a_Url_new: strip delimiters, percent-encode illegal bytes, infer a
// scheme when there is no base, resolve relative to it, then split the
// resolved string into components. Returns an error only when urlStr is
// empty after stripping, since a_Url_new itself never rejects malformed
// input (it just produces an URL with more fields unset).
func New(urlStr string, base *URL) (*URL, error) {
	// Normalize to NFC first so two IRIs spelling the same path with a
	// precomposed vs. a decomposed accent (e.g. "café" vs "cafe" + combining
	// acute) percent-encode identically, keeping a_Url_cmp's identity
	// invariant meaningful for non-ASCII paths too.
	stripped := stripDelimiters(norm.NFC.String(urlStr))
	if stripped == "" {
		return nil, errors.New("urlx: empty URL")
	}
	encoded, illegal, illegalSpace := encodeIllegal(stripped)

	effectiveBase := base
	if effectiveBase == nil {
		effectiveBase = splitComponents("http:")
		encoded = inferScheme(encoded)
	}
	resolved := Resolve(encoded, effectiveBase)

	u := splitComponents(resolved)
	u.Data = []byte{}
	u.IllegalChars = illegal
	u.IllegalCharsSpc = illegalSpace
	return u, nil
}

// Parse is a convenience wrapper over New for absolute URL strings (no
// base), the common case for "navigate to this URL" entry points.
func Parse(urlStr string) (*URL, error) {
	return New(urlStr, nil)
}
