package corectx

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/dillo-gui/dwcore/dicache"
)

func solidPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{10, 20, 30, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestPipelineDrivesDicacheEntryToClose(t *testing.T) {
	ctx := New()
	p, err := NewPipeline(ctx, "http://example.test/a.png", "image/png")
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	data := solidPNG(t, 4, 3)
	p.CASend(data)
	p.CAClose()

	e := p.Entry()
	if e.State != dicache.CloseState {
		t.Fatalf("expected CloseState, got %v", e.State)
	}
	if e.Width != 4 || e.Height != 3 {
		t.Fatalf("got %dx%d, want 4x3", e.Width, e.Height)
	}
	if got := ctx.Dicache.Last(e.URL); got != e {
		t.Fatalf("Dicache.Last did not return the decoded entry")
	}
}

func TestPipelineCAAbortInvalidatesEntry(t *testing.T) {
	ctx := New()
	p, err := NewPipeline(ctx, "http://example.test/b.png", "image/png")
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	p.CAAbort(nil)

	if ctx.Dicache.Last("http://example.test/b.png") != nil {
		t.Fatalf("expected aborted entry to no longer be returned by Last")
	}
}

func TestNewPipelineUnknownMIMEType(t *testing.T) {
	ctx := New()
	if _, err := NewPipeline(ctx, "http://example.test/c.bin", "image/x-nonexistent"); err == nil {
		t.Fatalf("expected an error for an unregistered MIME type")
	}
}
