package dicache

import (
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"

	"github.com/dillo-gui/dwcore/imgbuf"
	"github.com/dillo-gui/dwcore/imgcodec"
)

// State is a DicacheEntry's decode progress. It only ever advances.
type State int

const (
	Empty State = iota
	SetParmsState
	SetCmapState
	WriteState
	CloseState
	AbortState
)

// DicacheEntry is one (URL, version) decode: the codec's Sink and the
// shared ImgBuf every bound Viewer reads rows out of.
type DicacheEntry struct {
	URL     string
	Version int
	Valid   bool // controls whether DIC_Last-style lookups return this entry

	Type   imgbuf.SourceType
	Width  int
	Height int
	Cmap   []byte

	ImgBuf *imgbuf.ImgBuf

	TotalSize   int
	DecodedSize int
	ScanNumber  int
	RowsDecoded bitvec

	State State

	Decoder imgcodec.Decoder

	Next *DicacheEntry // older version of the same URL

	mu       sync.Mutex
	refCount int32
	cast     *caster.Caster
}

// newEntry creates a fresh, Empty-state entry. version must be >= 1; a
// URL's entries form a linked list via Next, newest first (Dicache.Add
// prepends each new version).
func newEntry(url string, version int) *DicacheEntry {
	return &DicacheEntry{
		URL:      url,
		Version:  version,
		Valid:    true,
		refCount: 1,
		cast:     caster.New(nil),
	}
}

func (e *DicacheEntry) publish(ev Event) {
	e.cast.Pub(ev)
}

// Subscribe returns a channel of Events and an unsubscribe function, per
// guiguan/caster's pub/sub contract.
func (e *DicacheEntry) Subscribe() (<-chan interface{}, func()) {
	return e.cast.Sub()
}

func (e *DicacheEntry) advance(to State) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if to <= e.State {
		return false // out-of-order call; spec.md says ignore it
	}
	e.State = to
	return true
}

// SetParms implements imgcodec.Sink.
func (e *DicacheEntry) SetParms(width, height int, srcType imgbuf.SourceType, gamma float64) error {
	if !e.advance(SetParmsState) {
		return nil
	}
	e.Width, e.Height, e.Type = width, height, srcType
	e.ImgBuf = imgbuf.New(width, height)
	e.publish(ParmsEvent{Width: width, Height: height, Type: srcType, ImgBuf: e.ImgBuf})
	return nil
}

// SetCmap implements imgcodec.Sink.
func (e *DicacheEntry) SetCmap(colors []byte) error {
	if e.State < SetParmsState {
		return nil
	}
	e.advance(SetCmapState)
	e.Cmap = colors
	return nil
}

// NewScan implements imgcodec.Sink.
func (e *DicacheEntry) NewScan() {
	if e.State < SetParmsState {
		return
	}
	e.mu.Lock()
	e.ScanNumber++
	e.RowsDecoded.Reset()
	scan := e.ScanNumber
	e.mu.Unlock()
	e.publish(ScanEvent{ScanNumber: scan})
}

// WriteRow implements imgcodec.Sink.
func (e *DicacheEntry) WriteRow(y int, row []byte) error {
	if e.State < SetParmsState {
		return nil
	}
	e.advance(WriteState)
	if err := e.ImgBuf.CopyRow(y, row, e.Type, e.Cmap); err != nil {
		return err
	}
	e.mu.Lock()
	e.RowsDecoded.Set(y)
	e.DecodedSize++
	e.mu.Unlock()
	e.publish(RowEvent{Y: y})
	return nil
}

// Close implements imgcodec.Sink.
func (e *DicacheEntry) Close() {
	if !e.advance(CloseState) {
		return
	}
	e.publish(CloseEvent{})
}

// Abort implements imgcodec.Sink.
func (e *DicacheEntry) Abort(err error) {
	e.mu.Lock()
	e.State = AbortState
	e.Valid = false
	e.mu.Unlock()
	e.publish(AbortEvent{Err: err})
	e.ImgBuf.Unref()
}

// Ref increments the entry's refcount.
func (e *DicacheEntry) Ref() { atomic.AddInt32(&e.refCount, 1) }

// Unref decrements the entry's refcount; callers should stop using e once
// this brings the count to zero (the cache reaps it on the next Sweep, or
// immediately via Dicache.Unref).
func (e *DicacheEntry) Unref() int32 {
	return atomic.AddInt32(&e.refCount, -1)
}

func (e *DicacheEntry) refs() int32 { return atomic.LoadInt32(&e.refCount) }
