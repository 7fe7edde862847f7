/*
Package hyphen implements Liang's hyphenation algorithm over a packed trie
of weighted patterns, matching the shape of Dillo's dw::Hyphenator: patterns
and exceptions are loaded once per language, compiled into a flat
(offset+byte)-indexed trie for fast lookup, and every subsequent hyphenation
query for that language is served from an in-memory cache.
*/
package hyphen

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the hyphen package tracer.
func T() tracing.Trace {
	return tracing.Select("hyphen")
}
