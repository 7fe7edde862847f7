package dicache

import "github.com/dillo-gui/dwcore/imgbuf"

// Event is what an entry casts to its subscribed viewers. A Viewer reacts to
// the concrete type via a switch, the same discriminated-variant shape
// runmodel.Run uses for line-breaker runs.
type Event interface{ isEvent() }

// ParmsEvent catches a viewer up with the entry's geometry and pixel type;
// sent once, the first time a viewer binds after SetParms has landed.
type ParmsEvent struct {
	Width, Height int
	Type          imgbuf.SourceType
	ImgBuf        *imgbuf.ImgBuf
}

// ScanEvent announces the start of a new top-to-bottom pass.
type ScanEvent struct{ ScanNumber int }

// RowEvent announces that row Y is ready to be (re)drawn.
type RowEvent struct{ Y int }

// CloseEvent announces a clean, final decode.
type CloseEvent struct{}

// AbortEvent announces a failed decode; Err is nil when the abort was
// triggered by cancellation rather than a decode error.
type AbortEvent struct{ Err error }

func (ParmsEvent) isEvent() {}
func (ScanEvent) isEvent()  {}
func (RowEvent) isEvent()   {}
func (CloseEvent) isEvent() {}
func (AbortEvent) isEvent() {}
