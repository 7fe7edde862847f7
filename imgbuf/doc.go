/*
Package imgbuf implements Dillo's Imgbuf: a reference-counted, row-addressed
RGB pixel buffer that a codec fills scanline by scanline and that any number
of viewers may share. It also owns the raw-sample-to-RGB conversion every
pixel format (indexed, grayscale, the CMYK "RGBW" quirk, and already-RGB)
funnels through before a row lands in the buffer.
*/
package imgbuf

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the imgbuf package tracer.
func T() tracing.Trace {
	return tracing.Select("imgbuf")
}
