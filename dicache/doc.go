/*
Package dicache implements the decoded-image cache: a content-addressed
store keyed by (URL, version) that a codec writes into (via the Sink methods
on DicacheEntry) and that any number of Viewers read from, each catching up
to whatever rows already exist and then tracking new ones as they arrive.

State only ever advances (Empty -> SetParms -> SetCmap -> Write -> Close, or
Abort from any point); out-of-order calls from a codec are ignored rather
than rejected, mirroring spec.md's monotonic-transition rule.
*/
package dicache

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the dicache package tracer.
func T() tracing.Trace {
	return tracing.Select("dicache")
}
