package corectx

// Platform is the capability interface the line breaker consumes for
// device/font measurement (spec.md section 6): textWidth, plus the two
// viewport queries a containing block needs to decide its available width.
// A concrete implementation lives in the UI layer, out of this module's
// scope.
type Platform interface {
	// TextWidth measures the pixel width of a byte slice set in a given
	// font handle.
	TextWidth(font interface{}, text []byte) int
	// GetWidthViewport returns the current viewport width in pixels.
	GetWidthViewport() int
	// GetUsesViewport reports whether the surrounding block's width is
	// ultimately derived from the viewport (vs. a fixed container).
	GetUsesViewport() bool
}

// OutOfFlowMgr is the capability interface the line breaker consumes to
// learn about floats while searching for a break (spec.md section 6).
type OutOfFlowMgr interface {
	HasFloatLeft(borderWidth, y, height int, oofIndex int) bool
	HasFloatRight(borderWidth, y, height int, oofIndex int) bool
	GetLeftBorder(y, height int, oofIndex int) int
	GetRightBorder(y, height int, oofIndex int) int
	GetLeftFloatHeight(y int) int
	GetRightFloatHeight(y int) int
	TellPosition(widget interface{}, y int)
	MoveExternalIndices(from, delta int)
	GetClearPosition() int
}

// Fetch is the capability interface the embedding fetch layer drives the
// image pipeline through (spec.md section 6): CASend delivers a chunk of
// the compressed byte stream as it arrives off the wire, CAClose signals a
// clean EOF, and CAAbort signals an error or a user cancellation. Pipeline
// satisfies this interface.
type Fetch interface {
	CASend(buf []byte)
	CAClose()
	CAAbort(err error)
}
