/*
Package dlen implements Dillo's layout Length value: a tagged integer that
carries an absolute pixel count, a percentage of some later-supplied
reference, a relative fraction, or the symbolic value Auto.

A Length never silently mixes categories. Combining a percentage or a
relative value with a reference length always yields an absolute Length;
there is no implicit coercion back the other way.
*/
package dlen

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the dlen package tracer.
func T() tracing.Trace {
	return tracing.Select("dlen")
}
