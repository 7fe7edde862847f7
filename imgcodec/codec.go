package imgcodec

import (
	"bytes"
	"fmt"

	"github.com/dillo-gui/dwcore/imgbuf"
)

// maxPixels is the abort threshold: any codec reporting a larger image
// bails out rather than allocating it.
const maxPixels = 6000 * 6000

// Sink receives the events a codec emits while decoding, in the order
// SetParms, zero or more SetCmap, then for each pass a NewScan followed by
// WriteRow calls, terminated by exactly one Close or Abort.
type Sink interface {
	SetParms(width, height int, srcType imgbuf.SourceType, gamma float64) error
	SetCmap(colors []byte) error
	NewScan()
	WriteRow(y int, row []byte) error
	Close()
	Abort(err error)
}

// Decoder is a codec instance bound to one Sink. Write feeds newly arrived
// bytes and reports how many of them the decoder consumed; bytes it could
// not yet use are expected to be resent, prefixed to the next chunk, by the
// caller (the pipeline's startOfs cursor). CloseInput signals a clean EOF on
// the underlying byte stream.
type Decoder interface {
	Write(chunk []byte) (consumed int, err error)
	CloseInput()
}

// New returns a Decoder for the given MIME type, or an error for a type with
// no registered codec. mimeType is matched case-sensitively against the
// exact strings the fetch layer already normalizes to.
func New(mimeType string, sink Sink) (Decoder, error) {
	switch mimeType {
	case "image/gif":
		return newGIFDecoder(sink), nil
	case "image/png":
		return newPNGDecoder(sink), nil
	case "image/jpeg":
		return newJPEGDecoder(sink), nil
	case "image/webp":
		return newWebPDecoder(sink), nil
	case "image/svg+xml":
		return newSVGDecoder(sink), nil
	default:
		return nil, fmt.Errorf("imgcodec: no codec registered for MIME type %q", mimeType)
	}
}

// bufferingDecoder accumulates every byte it is given and hands the whole
// buffer to decode once, on CloseInput or as soon as a full decode succeeds
// speculatively on Write. This is the shared base every format's decoder
// embeds; decode does the format-specific work.
type bufferingDecoder struct {
	sink   Sink
	buf    bytes.Buffer
	done   bool
	decode func(data []byte, sink Sink) error
}

func (d *bufferingDecoder) Write(chunk []byte) (int, error) {
	if d.done {
		return len(chunk), nil
	}
	d.buf.Write(chunk)
	if err := d.decode(d.buf.Bytes(), d.sink); err != nil {
		if err == errNeedMoreInput {
			return len(chunk), nil
		}
		d.done = true
		d.sink.Abort(err)
		return len(chunk), err
	}
	d.done = true
	return len(chunk), nil
}

func (d *bufferingDecoder) CloseInput() {
	if d.done {
		return
	}
	d.done = true
	if err := d.decode(d.buf.Bytes(), d.sink); err != nil {
		if err == errNeedMoreInput {
			// The stream ended before a complete image arrived. Per the
			// truncated-stream contract the pipeline closes normally with
			// whatever was decoded; since Go's stdlib decoders are
			// all-or-nothing we have nothing partial to offer, so the
			// viewer simply sees no rows.
			d.sink.Close()
			return
		}
		d.sink.Abort(err)
		return
	}
}

// errNeedMoreInput is returned by a format's decode func to mean "not enough
// bytes yet, try again once more arrive" without aborting the decode.
var errNeedMoreInput = fmt.Errorf("imgcodec: need more input")

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("imgcodec: non-positive image dimensions %dx%d", width, height)
	}
	if width*height > maxPixels {
		return fmt.Errorf("imgcodec: image %dx%d exceeds the %d pixel limit", width, height, maxPixels)
	}
	return nil
}
