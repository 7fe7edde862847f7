/*
Package runmodel defines the run/word stream that a Textblock feeds into the
line breaker, plus the badness-and-penalty value attached to each candidate
break.

A Run is a discriminated value with four variants: TextRun, InlineWidgetRun,
BreakRun, and OofRefRun. Rather than a C++-style class hierarchy, each
variant is its own concrete type implementing the small Run interface:
several concrete types behind one small capability interface, per spec.md
section 9's "capability-trait + tagged-variant split" design note.
*/
package runmodel

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the runmodel package tracer.
func T() tracing.Trace {
	return tracing.Select("runmodel")
}
