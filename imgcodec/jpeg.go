package imgcodec

import (
	"bytes"
	"errors"
	"image/jpeg"
	"io"
)

func newJPEGDecoder(sink Sink) Decoder {
	d := &bufferingDecoder{sink: sink}
	d.decode = decodeJPEG
	return d
}

// decodeJPEG decodes the whole buffered JPEG stream and replays it as a
// single scan. Progressive JPEG's scan-by-scan refinement (spec.md's
// buffered_image / start_output / read_scanlines / finish_output loop) is
// invisible to image/jpeg's public API: it decodes straight to the final
// refined raster and reports no intermediate passes, so only one NewScan is
// ever emitted here regardless of how many scans the source file contains.
func decodeJPEG(data []byte, sink Sink) error {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errNeedMoreInput
		}
		return err
	}
	return emitImage(img, sink)
}
