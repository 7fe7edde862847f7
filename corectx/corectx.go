/*
Package corectx holds the "global process state" spec.md section 9 says
must become an explicit, passed-around aggregate rather than static/global
C++ state: the Dicache and the Hyphenator language map (tracing goes
through the package tracer T, not through the aggregate).
It also declares the small capability interfaces (Platform, OutOfFlowMgr,
Fetch) the three cores consume from their embedding UI layer, so a caller
only needs to import this one package to see the whole seam between the
core and everything spec.md places out of scope.
*/
package corectx

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/dillo-gui/dwcore/dicache"
	"github.com/dillo-gui/dwcore/hyphen"
)

// CoreContext aggregates the shared, process-wide, lock-free-at-this-
// granularity state every subsystem needs: the image cache and the
// hyphenation language registry. It is constructed once by
// the embedding application and threaded explicitly into each subsystem
// constructor (spec.md section 9's "Global process state ... becomes an
// explicit CoreContext passed to each subsystem").
type CoreContext struct {
	Dicache *dicache.Dicache
	Hyphen  *HyphenRouter
}

// New returns a fresh CoreContext with an empty Dicache and an empty
// hyphenation router. Hyphen reads hyphen's process-wide registry, so
// languages loaded there become visible through it.
func New() *CoreContext {
	return &CoreContext{
		Dicache: dicache.New(),
		Hyphen:  NewHyphenRouter(),
	}
}

// T traces to the corectx package tracer.
func T() tracing.Trace {
	return tracing.Select("corectx")
}

// HyphenRouter dispatches a hyphenation request to whichever per-language
// hyphen.Hyphenator is currently registered, implementing
// linebreak.Hyphenator so a single router can be handed to every
// LineBreaker regardless of how many languages a document mixes (spec.md
// section 4.2's "Per-language instances ... memoized in a process-wide map
// keyed by language tag").
type HyphenRouter struct{}

// NewHyphenRouter returns a router over hyphen's process-wide registry.
func NewHyphenRouter() *HyphenRouter { return &HyphenRouter{} }

// Hyphenate looks up the Hyphenator registered for lang and delegates to
// it, returning no candidate breaks if lang has never been loaded
// (spec.md's "Hyphenator returns zero candidate breaks on any failure").
func (r *HyphenRouter) Hyphenate(word []byte, lang string) []int {
	h := hyphen.Get(lang)
	if h == nil {
		return nil
	}
	return h.Hyphenate(word, lang)
}
