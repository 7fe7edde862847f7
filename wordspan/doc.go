/*
Package wordspan turns a raw text cord into the alternating word/space
span sequence a line breaker consumes, and then into a concrete
runmodel.Run stream once a Platform can measure each span.
*/
package wordspan

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the wordspan package tracer.
func T() tracing.Trace {
	return tracing.Select("wordspan")
}
