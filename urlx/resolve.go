package urlx

import "strings"

// Resolve implements RFC 3986 §5.3 relative resolution plus the "./" and
// "../" segment cleanup url.c performs on top of it, porting
// Url_resolve_relative. relStr is resolved against base (which may be nil
// only when relStr itself carries a scheme).
func Resolve(relStr string, base *URL) string {
	rel := splitComponents(relStr)

	var sb strings.Builder

	// "path empty && scheme and authority undefined": pure query/fragment
	// change, or a same-document reference.
	if rel.Path == nil && rel.Scheme == nil && rel.Authority == nil {
		baseStr := base.String()
		if h := strings.IndexByte(baseStr, '#'); h >= 0 {
			baseStr = baseStr[:h]
		}
		sb.WriteString(baseStr)
		if base.Path == nil {
			sb.WriteByte('/')
		}
		if rel.Query != nil {
			if base.Query != nil {
				// Truncate back to just before the base's '?'.
				cut := strings.LastIndexByte(sb.String(), '?')
				if cut < 0 {
					cut = sb.Len()
				}
				truncated := sb.String()[:cut]
				sb.Reset()
				sb.WriteString(truncated)
			}
			sb.WriteByte('?')
			sb.WriteString(*rel.Query)
		}
		if rel.Fragment != nil {
			sb.WriteByte('#')
			sb.WriteString(*rel.Fragment)
		}
		return sb.String()
	}

	if rel.Scheme != nil {
		return relStr
	}

	path := &strings.Builder{}
	if rel.Authority != nil {
		if rel.Path != nil {
			path.WriteString(*rel.Path)
		}
	} else {
		if rel.Path != nil && strings.HasPrefix(*rel.Path, "/") {
			// absolute path: ignore base path entirely
		} else if base.Path != nil {
			basePath := *base.Path
			if i := strings.LastIndexByte(basePath, '/'); i >= 0 {
				path.WriteString(basePath[:i+1])
			}
		}
		if rel.Path != nil {
			path.WriteString(*rel.Path)
		}
		cleaned := cleanDotSegments(path.String())
		path.Reset()
		path.WriteString(cleaned)
	}

	if base.Scheme != nil {
		sb.WriteString(*base.Scheme)
		sb.WriteByte(':')
	}

	if rel.Authority != nil {
		sb.WriteString("//")
		sb.WriteString(*rel.Authority)
	} else if base.Authority != nil {
		sb.WriteString("//")
		sb.WriteString(*base.Authority)
	}

	p := path.String()
	hasAuthority := rel.Authority != nil || base.Authority != nil
	if hasAuthority && ((p == "" && (rel.Query != nil || rel.Fragment != nil)) || (p != "" && p[0] != '/')) {
		sb.WriteByte('/')
	}
	sb.WriteString(p)

	if rel.Query != nil {
		sb.WriteByte('?')
		sb.WriteString(*rel.Query)
	}
	if rel.Fragment != nil {
		sb.WriteByte('#')
		sb.WriteString(*rel.Fragment)
	}
	return sb.String()
}

// cleanDotSegments erases "./" (whole-segment "." elements), a lone
// trailing ".", and "<segment>/.." pairs, the same three passes
// Url_resolve_relative performs rather than RFC 3986 §5.2.4's
// output-buffer algorithm — the two produce the same result for any path
// that started from a concatenation of real segments.
func cleanDotSegments(path string) string {
	// erase "./" when it starts the path or follows a '/'
	for {
		i := strings.Index(path, "./")
		if i < 0 || !(i == 0 || path[i-1] == '/') {
			break
		}
		path = path[:i] + path[i+2:]
	}
	// erase a lone trailing "."
	if n := len(path); n > 0 && path[n-1] == '.' && (n == 1 || path[n-2] == '/') {
		path = path[:n-1]
	}
	// erase "<segment>/.." and "<segment>/../"
	for {
		i := strings.Index(path, "/..")
		if i < 0 {
			break
		}
		end := i + 3
		if end < len(path) && path[end] != '/' {
			// not a standalone ".." segment (e.g. "/..foo"); skip past it
			// by retrying from the next occurrence.
			rest := path[end:]
			j := strings.Index(rest, "/..")
			if j < 0 {
				break
			}
			i = end + j
			end = i + 3
		}
		segStart := i
		for segStart > 0 && path[segStart-1] != '/' {
			segStart--
		}
		if segStart == i {
			// no preceding segment to erase against (e.g. path starts with
			// "/.."): drop just the "/.." or "/../" itself.
			if end < len(path) {
				path = path[:i] + path[end:]
			} else {
				path = path[:i]
			}
			continue
		}
		if end < len(path) {
			path = path[:segStart] + path[end+1:]
		} else {
			path = path[:segStart]
		}
	}
	return path
}
