/*
Package urlx parses, resolves, and compares URLs per RFC 3986, porting the
behavior of Dillo's url.c: a canonical five-component split (scheme,
authority, path, query, fragment), relative resolution with "./" and "../"
segment cleanup, a scheme-inference heuristic when no base is given, and an
identity comparison that looks only at scheme/authority/path/query/data.

Go's stdlib net/url follows RFC 3986 too, but with different normalization
choices (it does not encode arbitrary control/high bytes the way Dillo
does, and its own Parse/Resolve/String do not reproduce a_Url_cmp's
leading-slash-insensitive path comparison). Reimplementing url.c's exact
semantics here, rather than adapting net/url, keeps parity with the
original parse/compare/resolve edge cases the tests in this package check.
*/
package urlx

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the urlx package tracer.
func T() tracing.Trace {
	return tracing.Select("urlx")
}
