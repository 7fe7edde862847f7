package imgcodec

import (
	"bytes"
	"errors"
	"image/png"
	"io"
)

func newPNGDecoder(sink Sink) Decoder {
	d := &bufferingDecoder{sink: sink}
	d.decode = decodePNG
	return d
}

// decodePNG decodes the whole buffered PNG stream and replays it as a
// single scan. libpng's interlace-de-staple and gamma-correction behavior
// (spec.md's "PNG" notes) has no Go stdlib equivalent to drive incrementally;
// image/png already performs Adam7 de-interlacing and ignores gAMA chunks
// internally, so those steps are absorbed rather than reproduced here.
func decodePNG(data []byte, sink Sink) error {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errNeedMoreInput
		}
		return err
	}
	return emitImage(img, sink)
}
