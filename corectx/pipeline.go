package corectx

import (
	"github.com/dillo-gui/dwcore/dicache"
	"github.com/dillo-gui/dwcore/imgcodec"
)

// Pipeline binds one fetch (the "bytes arrive from a fetch layer" leg of
// spec.md section 2's image data flow) to one dicache.DicacheEntry via an
// imgcodec.Decoder selected by MIME type: CASend routes bytes into the
// decoder, which writes SetParms/SetCmap/NewScan/WriteRow/Close/Abort calls
// straight onto the entry (DicacheEntry implements imgcodec.Sink), and the
// entry in turn fans those out to every attached Viewer.
type Pipeline struct {
	ctx     *CoreContext
	entry   *dicache.DicacheEntry
	decoder imgcodec.Decoder
}

// NewPipeline creates a new dicache entry for url and binds an
// imgcodec.Decoder for mimeType to it, per spec.md section 6's codec
// dispatch table. The caller drives the returned Pipeline via CASend/
// CAClose/CAAbort as bytes arrive; it satisfies corectx.Fetch.
func NewPipeline(ctx *CoreContext, url, mimeType string) (*Pipeline, error) {
	entry := ctx.Dicache.Add(url)
	dec, err := imgcodec.New(mimeType, entry)
	if err != nil {
		ctx.Dicache.Unref(entry)
		return nil, err
	}
	entry.Decoder = dec
	return &Pipeline{ctx: ctx, entry: entry, decoder: dec}, nil
}

// Entry returns the dicache entry this pipeline is decoding into, so a
// caller can attach a dicache.Viewer to it.
func (p *Pipeline) Entry() *dicache.DicacheEntry { return p.entry }

// CASend feeds a newly-arrived chunk of compressed bytes to the decoder.
// Any bytes the decoder could not yet use are its own responsibility to
// account for (spec.md section 4.3's per-codec startOfs/Skip bookkeeping);
// Go's buffering decoders always report the whole chunk consumed since they
// re-decode from their own internal buffer on every call.
func (p *Pipeline) CASend(buf []byte) {
	if _, err := p.decoder.Write(buf); err != nil {
		T().Errorf("corectx: pipeline %s: decode error: %v", p.entry.URL, err)
	}
}

// CAClose signals a clean EOF on the underlying byte stream.
func (p *Pipeline) CAClose() {
	p.decoder.CloseInput()
}

// CAAbort signals an error or a user cancellation: the entry is aborted and
// the pipeline's reference on it released.
func (p *Pipeline) CAAbort(err error) {
	p.entry.Abort(err)
	p.ctx.Dicache.Unref(p.entry)
}

var _ Fetch = (*Pipeline)(nil)
