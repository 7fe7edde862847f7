package linebreak

import "github.com/dillo-gui/dwcore/corectx"

// Platform is the capability interface the line breaker consumes for
// device/font measurement (spec.md section 6). A concrete implementation
// lives outside this module, in the UI layer. Aliased from corectx so every
// subsystem shares one definition instead of three structurally-identical
// ones.
type Platform = corectx.Platform

// OutOfFlowMgr is the capability interface the line breaker consumes to
// learn about floats while searching for a break (spec.md section 6).
type OutOfFlowMgr = corectx.OutOfFlowMgr

// noFloats is a null OutOfFlowMgr for textblocks with no floats at all
// (the common case): every query reports "no float, full border".
type noFloats struct{ width int }

func (n noFloats) HasFloatLeft(int, int, int, int) bool  { return false }
func (n noFloats) HasFloatRight(int, int, int, int) bool { return false }
func (n noFloats) GetLeftBorder(int, int, int) int       { return 0 }
func (n noFloats) GetRightBorder(int, int, int) int      { return n.width }
func (n noFloats) GetLeftFloatHeight(int) int            { return 0 }
func (n noFloats) GetRightFloatHeight(int) int           { return 0 }
func (n noFloats) TellPosition(interface{}, int)         {}
func (n noFloats) MoveExternalIndices(int, int)          {}
func (n noFloats) GetClearPosition() int                 { return 0 }

// NoFloats returns an OutOfFlowMgr that reports a plain rectangular
// container of the given width with no floats at all.
func NoFloats(width int) OutOfFlowMgr {
	return noFloats{width: width}
}

// Hyphenator is the capability the line breaker uses to tighten an
// over-full or under-full line by splitting its last/first candidate word.
// hyphen.Hyphenator satisfies this interface.
type Hyphenator interface {
	Hyphenate(word []byte, lang string) []int
}
