package dicache

import "github.com/dillo-gui/dwcore/imgbuf"

// Viewer binds to one DicacheEntry and tracks, independently of the
// entry's own bookkeeping, which scan and rows it has already drawn — so a
// viewer that attaches after decoding has started still gets exactly the
// sequence spec.md describes: an initial catch-up, then live events.
type Viewer struct {
	entry     *DicacheEntry
	sub       <-chan interface{}
	unsub     func()
	scanSeen  int
	rowsDrawn bitvec
	gotParms  bool
	out       chan Event
}

// NewViewer binds to entry (taking a reference, released by Close) and
// returns a Viewer whose Events channel replays catch-up events
// (ParmsEvent, a ScanEvent if one has already started, and a RowEvent for
// every row already decoded) before forwarding anything new the entry
// publishes.
func NewViewer(entry *DicacheEntry) *Viewer {
	entry.Ref()
	v := &Viewer{entry: entry, out: make(chan Event, 64)}
	sub, unsub := entry.Subscribe()
	v.sub, v.unsub = sub, unsub

	entry.mu.Lock()
	state, width, height, srcType, ib := entry.State, entry.Width, entry.Height, entry.Type, entry.ImgBuf
	scanNumber := entry.ScanNumber
	decoded := entry.RowsDecoded
	entry.mu.Unlock()

	go v.pump()

	if state >= SetParmsState {
		v.gotParms = true
		v.out <- ParmsEvent{Width: width, Height: height, Type: srcType, ImgBuf: ib}
		if scanNumber > v.scanSeen {
			v.scanSeen = scanNumber
			v.out <- ScanEvent{ScanNumber: scanNumber}
		}
		for y := 0; y < height; y++ {
			if decoded.Test(y) && !v.rowsDrawn.Test(y) {
				v.rowsDrawn.Set(y)
				v.out <- RowEvent{Y: y}
			}
		}
		if state == CloseState {
			v.out <- CloseEvent{}
		} else if state == AbortState {
			v.out <- AbortEvent{}
		}
	}
	return v
}

// pump relays live events from the entry's caster subscription, applying
// the same catch-up-on-the-fly dedup (a row already relayed during the
// constructor's catch-up pass is not sent twice).
func (v *Viewer) pump() {
	for raw := range v.sub {
		ev, ok := raw.(Event)
		if !ok {
			continue
		}
		switch e := ev.(type) {
		case ParmsEvent:
			if v.gotParms {
				continue
			}
			v.gotParms = true
		case ScanEvent:
			if e.ScanNumber <= v.scanSeen {
				continue
			}
			v.scanSeen = e.ScanNumber
			v.rowsDrawn.Reset()
		case RowEvent:
			if v.rowsDrawn.Test(e.Y) {
				continue
			}
			v.rowsDrawn.Set(e.Y)
		}
		v.out <- ev
	}
	close(v.out)
}

// Events returns the channel of catch-up-then-live Events for this viewer.
func (v *Viewer) Events() <-chan Event { return v.out }

// ImgBuf returns the buffer the viewer should read rows from once it has
// received a ParmsEvent; nil until then.
func (v *Viewer) ImgBuf() *imgbuf.ImgBuf {
	return v.entry.ImgBuf
}

// Close detaches the viewer from its entry (close_client): it unsubscribes
// and releases its reference on the entry.
func (v *Viewer) Close(cache *Dicache) {
	v.unsub()
	cache.Unref(v.entry)
}
