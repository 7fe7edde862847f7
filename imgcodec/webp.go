package imgcodec

import (
	"bytes"
	"errors"
	"io"

	"github.com/deepteams/webp"
)

func newWebPDecoder(sink Sink) Decoder {
	d := &bufferingDecoder{sink: sink}
	d.decode = decodeWebP
	return d
}

// decodeWebP decodes the whole buffered WebP stream (lossy or lossless,
// whichever the bitstream header selects) and replays it as a single scan.
// webp.Decode is only exercised through its public image.Image-returning
// signature, the same shape every Go image codec (including the stdlib
// ones this file sits next to) exposes; the internal VP8/VP8L machinery is
// never imported directly.
func decodeWebP(data []byte, sink Sink) error {
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errNeedMoreInput
		}
		return err
	}
	return emitImage(img, sink)
}
