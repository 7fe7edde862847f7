/*
Package imgcodec drives a compressed image byte stream through a per-format
decoder and pushes the result into a Sink, mirroring Dillo's codec-to-dicache
handoff: SetParms once, SetCmap for indexed sources, NewScan at the start of
each progressive pass, WriteRow per scanline, and a terminal Close or Abort.

Every codec here (GIF, PNG, JPEG, WebP, SVG) is fed through New, which
dispatches on MIME type the way the original fetch layer does. The decoders
wrap Go's standard image codecs and github.com/deepteams/webp; none of them
streams scanlines incrementally the way libgif/libpng/libjpeg do, since Go's
image package only exposes whole-image Decode calls. Write buffers bytes
until a full image can be decoded (or the input is closed), then replays it
through the Sink in one pass. See DESIGN.md for the consequences of this
simplification.
*/
package imgcodec

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the imgcodec package tracer.
func T() tracing.Trace {
	return tracing.Select("imgcodec")
}
