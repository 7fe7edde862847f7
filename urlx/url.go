package urlx

import (
	"strconv"
	"strings"
)

// Flags records request-shape bits carried alongside a URL, mirroring
// url.h's URL_Get/URL_Ismap/etc.
type Flags uint32

const (
	FlagGet Flags = 1 << iota
	FlagPost
	FlagIsmap
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// URL is the parsed form of a URI: scheme/authority/path/query/fragment,
// each nil when the component is entirely absent (as opposed to present
// but empty — "http://a" parses with a nil Path and "http://a/" with "/",
// although String and Cmp treat those two alike; Cmp, like a_Url_cmp in
// the original, does treat "no query" and "empty query" differently).
type URL struct {
	Scheme   *string
	Authority *string
	Path     *string
	Query    *string
	Fragment *string

	// Data is the POST body, if any; nil for a plain GET navigation.
	Data []byte
	// Alt is alternate text associated with the URL (e.g. an image map's
	// alt text).
	Alt string
	// IsmapURLLen is the length of the URL string before ismap
	// coordinates were appended, 0 if this is not an ismap URL.
	IsmapURLLen int

	Flags Flags

	// IllegalChars/IllegalCharsSpc count, respectively, every byte that
	// had to be percent-encoded during parsing and how many of those were
	// plain spaces — diagnostic counters carried over from url.c.
	IllegalChars    int
	IllegalCharsSpc int

	hostname string
	port     int
	hostSet  bool

	str string // cached String() result
}

func strPtr(s string) *string { return &s }

// strField compares two presence-or-absent string fields the way
// URL_STR_FIELD_CMP does: both absent compares equal, one absent sorts
// before the other, otherwise a plain byte-wise compare.
func strField(a, b *string) int {
	switch {
	case a != nil && b != nil:
		return strings.Compare(*a, *b)
	case a == nil && b == nil:
		return 0
	case a != nil:
		return 1
	default:
		return -1
	}
}

// strFieldFold is strField with ASCII case-insensitive comparison, per
// URL_STR_FIELD_I_CMP (used for scheme and authority, which RFC 3986 §3.1
// and §3.2 both define as case-insensitive).
func strFieldFold(a, b *string) int {
	switch {
	case a != nil && b != nil:
		return strings.Compare(strings.ToLower(*a), strings.ToLower(*b))
	case a == nil && b == nil:
		return 0
	case a != nil:
		return 1
	default:
		return -1
	}
}

// splitComponents implements Url_object_new's scan: scheme, authority,
// path, query, fragment, each parsed left to right with no backtracking,
// exactly mirroring strpbrk-driven splitting.
func splitComponents(s string) *URL {
	u := &URL{}
	rest := s

	if i := strings.IndexAny(rest, ":/?#"); i >= 0 && rest[i] == ':' && i > 0 {
		u.Scheme = strPtr(rest[:i])
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		if i := strings.IndexAny(rest, "/?#"); i >= 0 {
			u.Authority = strPtr(rest[:i])
			rest = rest[i:]
		} else {
			u.Authority = strPtr(rest)
			return u
		}
	}

	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		if i > 0 {
			u.Path = strPtr(rest[:i])
		}
		rest = rest[i:]
	} else if rest != "" {
		u.Path = strPtr(rest)
		return u
	}

	if strings.HasPrefix(rest, "?") {
		rest = rest[1:]
		if i := strings.IndexByte(rest, '#'); i >= 0 {
			u.Query = strPtr(rest[:i])
			rest = rest[i:]
		} else {
			u.Query = strPtr(rest)
			rest = ""
		}
		u.Flags |= FlagGet
	}
	if strings.HasPrefix(rest, "#") {
		u.Fragment = strPtr(rest[1:])
	}
	return u
}

// String returns the canonical textual form, built on demand and cached,
// mirroring a_Url_str.
func (u *URL) String() string {
	if u.str != "" {
		return u.str
	}
	var b strings.Builder
	if u.Scheme != nil {
		b.WriteString(*u.Scheme)
		b.WriteByte(':')
	}
	if u.Authority != nil {
		b.WriteString("//")
		b.WriteString(*u.Authority)
	}
	if u.Authority != nil && (u.Path == nil || !strings.HasPrefix(*u.Path, "/")) {
		b.WriteByte('/')
	}
	if u.Path != nil {
		b.WriteString(*u.Path)
	}
	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(*u.Query)
	}
	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}
	u.str = b.String()
	return u.str
}

// Hostname returns the host component of Authority, with an IPv6 literal's
// brackets stripped, lazily parsing Authority for a trailing :port on first
// call. Port is 0 when no port was specified.
func (u *URL) Hostname() (host string, port int) {
	if u.hostSet {
		return u.hostname, u.port
	}
	u.hostSet = true
	if u.Authority == nil {
		return "", 0
	}
	a := *u.Authority
	if strings.HasPrefix(a, "[") {
		if end := strings.IndexByte(a, ']'); end >= 0 {
			u.hostname = a[1:end]
			if rest := a[end+1:]; strings.HasPrefix(rest, ":") {
				if p, err := strconv.Atoi(rest[1:]); err == nil {
					u.port = p
				}
			}
			return u.hostname, u.port
		}
	}
	if i := strings.LastIndexByte(a, ':'); i >= 0 {
		if p, err := strconv.Atoi(a[i+1:]); err == nil {
			u.port = p
			u.hostname = a[:i]
			return u.hostname, u.port
		}
	}
	u.hostname = a
	return u.hostname, u.port
}

// Cmp compares two URLs per a_Url_cmp: only scheme, authority, path, query,
// and data determine identity; flags/alt/ismap never do. Path comparison
// skips a single leading '/' on each side first — url.c's own quirk, kept
// intact since callers (reload/cache lookups) depend on it. Returns 0 when
// equal, matching a_Url_cmp's contract (not a strcmp-style ordering).
func Cmp(a, b *URL) int {
	if a == b {
		return 0
	}
	if st := strFieldFold(a.Authority, b.Authority); st != 0 {
		return st
	}
	if st := strings.Compare(pathForCmp(a.Path), pathForCmp(b.Path)); st != 0 {
		return st
	}
	if st := strField(a.Query, b.Query); st != 0 {
		return st
	}
	if st := bytesCompare(a.Data, b.Data); st != 0 {
		return st
	}
	return strFieldFold(a.Scheme, b.Scheme)
}

func pathForCmp(p *string) string {
	if p == nil {
		return ""
	}
	if strings.HasPrefix(*p, "/") {
		return (*p)[1:]
	}
	return *p
}

func bytesCompare(a, b []byte) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return strings.Compare(string(a), string(b))
	}
}

// Equal reports whether two URLs are the same identity per Cmp.
func Equal(a, b *URL) bool { return Cmp(a, b) == 0 }
