/*
Package linebreak implements Dillo's text-block line-breaking and
justification engine: given a growing Run/Word stream, it produces a
monotonically extending vector of Lines, choosing breaks that minimize a
badness-and-penalty key, applying hyphenation when a line is too tight or
too loose, and justifying or aligning the finished line.

The package never fails outright: every input produces some line sequence,
even if individual lines end up too wide to fit (spec.md section 4.1,
"Failure semantics").
*/
package linebreak

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the linebreak package tracer.
func T() tracing.Trace {
	return tracing.Select("linebreak")
}
