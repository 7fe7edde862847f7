package imgcodec

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/dillo-gui/dwcore/imgbuf"
)

type recordingSink struct {
	width, height int
	srcType       imgbuf.SourceType
	cmapLen       int
	scans         int
	rows          int
	closed        bool
	aborted       error
}

func (s *recordingSink) SetParms(width, height int, srcType imgbuf.SourceType, gamma float64) error {
	s.width, s.height, s.srcType = width, height, srcType
	return nil
}
func (s *recordingSink) SetCmap(colors []byte) error { s.cmapLen = len(colors); return nil }
func (s *recordingSink) NewScan()                    { s.scans++ }
func (s *recordingSink) WriteRow(y int, row []byte) error {
	s.rows++
	return nil
}
func (s *recordingSink) Close()        { s.closed = true }
func (s *recordingSink) Abort(e error) { s.aborted = e }

func solidImage(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPNGDecoderDecodesAndCloses(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(4, 3, color.RGBA{10, 20, 30, 255})); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	sink := &recordingSink{}
	d, err := New("image/png", sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.Write(buf.Bytes()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !sink.closed || sink.aborted != nil {
		t.Fatalf("expected a clean close, got closed=%v aborted=%v", sink.closed, sink.aborted)
	}
	if sink.width != 4 || sink.height != 3 {
		t.Fatalf("got %dx%d, want 4x3", sink.width, sink.height)
	}
	if sink.rows != 3 {
		t.Fatalf("got %d rows, want 3", sink.rows)
	}
}

func TestJPEGDecoderDecodesAndCloses(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, solidImage(8, 2, color.RGBA{200, 10, 10, 255}), nil); err != nil {
		t.Fatalf("jpeg.Encode: %v", err)
	}
	sink := &recordingSink{}
	d, err := New("image/jpeg", sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.Write(buf.Bytes()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !sink.closed || sink.rows != 2 {
		t.Fatalf("got closed=%v rows=%d, want closed=true rows=2", sink.closed, sink.rows)
	}
}

func TestGIFDecoderEmitsCmapForPalettedFrame(t *testing.T) {
	pal := color.Palette{color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255}}
	img := image.NewPaletted(image.Rect(0, 0, 3, 2), pal)
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("gif.Encode: %v", err)
	}
	sink := &recordingSink{}
	d, err := New("image/gif", sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.Write(buf.Bytes()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if sink.srcType != imgbuf.Indexed || sink.cmapLen != len(pal)*3 {
		t.Fatalf("got srcType=%v cmapLen=%d, want Indexed with %d bytes", sink.srcType, sink.cmapLen, len(pal)*3)
	}
	if !sink.closed {
		t.Fatalf("expected Close after a complete GIF")
	}
}

func TestSVGDecoderWaitsForClosingTag(t *testing.T) {
	sink := &recordingSink{}
	d, err := New("image/svg+xml", sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.Write([]byte(`<svg width="10" height="5">`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if sink.closed {
		t.Fatalf("should not close before </svg> arrives")
	}
	if _, err := d.Write([]byte(`</svg>`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !sink.closed || sink.width != 10 || sink.height != 5 {
		t.Fatalf("got closed=%v %dx%d, want closed=true 10x5", sink.closed, sink.width, sink.height)
	}
}

func TestSVGDecoderFallsBackToViewBox(t *testing.T) {
	sink := &recordingSink{}
	d, err := New("image/svg+xml", sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.Write([]byte(`<svg viewBox="0 0 20 8"></svg>`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if sink.width != 20 || sink.height != 8 {
		t.Fatalf("got %dx%d, want 20x8", sink.width, sink.height)
	}
}

func TestOversizedImageAborts(t *testing.T) {
	sink := &recordingSink{}
	err := checkSize(7000, 7000)
	if err == nil {
		t.Fatalf("expected an oversize error")
	}
	sink.Abort(err)
	if sink.aborted == nil {
		t.Fatalf("expected sink.Abort to have been recorded")
	}
}

func TestUnknownMIMETypeIsRejected(t *testing.T) {
	if _, err := New("image/x-nonexistent", &recordingSink{}); err == nil {
		t.Fatalf("expected an error for an unregistered MIME type")
	}
}
