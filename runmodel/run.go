package runmodel

import (
	cords "github.com/dillo-gui/dwcore"
)

// Flags are per-run hints consumed by the line breaker.
type Flags uint16

const (
	// CanBeHyphenated marks a TextRun as eligible for hyphenation.
	CanBeHyphenated Flags = 1 << iota
	// DivCharAtEol marks a run that should draw a hyphen glyph if it ends
	// a line (set on the sub-words a hyphenation pass produces).
	DivCharAtEol
	// PermDivChar marks a run carrying an explicit, always-visible divide
	// character (e.g. "Abtei-Stadt"'s literal hyphen).
	PermDivChar
	// DrawAsOneText tells the renderer to draw this run glued to its
	// neighbor without an intervening space, even though both are
	// separate Run values.
	DrawAsOneText
	// UnbreakableForMinWidth excludes a run from the minimum-width
	// extreme computation (it must not be used to justify shrinking a
	// container below this run's width).
	UnbreakableForMinWidth
	// WordStart marks the first run of a word (a word may be split into
	// several sub-word TextRuns by hyphenation).
	WordStart
	// WordEnd marks the last run of a word.
	WordEnd
)

// Has reports whether all bits in mask are set in f.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// StyleRef is an opaque, interned style handle. The line breaker never
// interprets a style's contents; it only compares references for equality
// and asks the style for alignment/justify via its Justify and Alignment
// methods where needed.
type StyleRef interface {
	// Justify reports whether text-align:justify applies to runs carrying
	// this style.
	Justify() bool
	// Alignment reports the non-justify alignment (Left/Right/Center) a
	// line should fall back to when justify does not apply or is not
	// eligible (final line of a paragraph).
	Alignment() Alignment
	// Language returns the two-letter, lower-case hyphenation language
	// tag this style advertises, or "" if none.
	Language() string
}

// Alignment is the line-level text alignment.
type Alignment uint8

const (
	Left Alignment = iota
	Right
	Center
)

// Space describes the inter-run space trailing a TextRun (Dillo's
// `origSpace`), including its own stretch/shrink for justification.
type Space struct {
	Width      int
	Stretch    int
	Shrink     int
	Style      StyleRef
	IsBreaking bool // false for a non-breaking space
}

// RunKind discriminates the four Run variants.
type RunKind uint8

const (
	KindText RunKind = iota
	KindInlineWidget
	KindBreak
	KindOofRef
)

// Run is the small capability interface every run-stream element
// implements. It gives the line breaker everything it needs to size a run
// on a line without knowing the concrete variant.
type Run interface {
	Kind() RunKind
	// Width is the run's horizontal extent in pixels, excluding its
	// trailing space. Break and OofRef runs report 0.
	Width() int
	Ascent() int
	Descent() int
}

// TextRun is a run of text: a byte range into a shared text zone plus the
// metrics and hyphenation bookkeeping the line breaker needs.
type TextRun struct {
	Zone  *cords.Cord // shared text zone this run's bytes live in
	Pos   uint64      // byte offset into Zone
	Len   uint64      // byte length of this run's text
	Style StyleRef

	width, ascent, descent int
	Flags                  Flags

	// HyphenWidth is the width a soft hyphen glyph would add if this run
	// ends a line by way of a hyphenation break. Zero if the run cannot
	// end on a soft hyphen.
	HyphenWidth int

	OrigSpace Space
}

// NewTextRun constructs a TextRun with its intrinsic metrics already known
// (as reported by a Platform.TextWidth capability call).
func NewTextRun(zone *cords.Cord, pos, length uint64, style StyleRef, width, ascent, descent int) *TextRun {
	return &TextRun{Zone: zone, Pos: pos, Len: length, Style: style, width: width, ascent: ascent, descent: descent}
}

func (r *TextRun) Kind() RunKind  { return KindText }
func (r *TextRun) Width() int     { return r.width }
func (r *TextRun) Ascent() int    { return r.ascent }
func (r *TextRun) Descent() int   { return r.descent }
func (r *TextRun) SetWidth(w int) { r.width = w }

// Bytes returns this run's byte range, read out of its shared text zone.
func (r *TextRun) Bytes() ([]byte, error) {
	if r.Zone == nil {
		return nil, nil
	}
	s, err := r.Zone.Report(r.Pos, r.Len)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Split divides a TextRun at a byte offset (relative to the run, not the
// zone), used by hyphenation to turn one word-run into N+1 sub-words. The
// caller is responsible for setting DivCharAtEol / DrawAsOneText /
// UnbreakableForMinWidth flags and a HyphenWidth on the returned left part.
func (r *TextRun) Split(at uint64) (*TextRun, *TextRun) {
	left := &TextRun{
		Zone: r.Zone, Pos: r.Pos, Len: at, Style: r.Style,
		Flags: r.Flags &^ WordEnd,
	}
	right := &TextRun{
		Zone: r.Zone, Pos: r.Pos + at, Len: r.Len - at, Style: r.Style,
		Flags: r.Flags &^ WordStart, OrigSpace: r.OrigSpace,
	}
	return left, right
}

// ChildWidget is the capability an InlineWidgetRun's embedded widget must
// satisfy; it deliberately knows nothing about drawing or events (those
// belong to the out-of-scope UI layer), only sizing.
type ChildWidget interface {
	Width() int
	Ascent() int
	Descent() int
}

// InlineWidgetRun wraps a child layout widget participating in the line.
type InlineWidgetRun struct {
	Widget    ChildWidget
	OrigSpace Space
}

func (r *InlineWidgetRun) Kind() RunKind { return KindInlineWidget }
func (r *InlineWidgetRun) Width() int    { return r.Widget.Width() }
func (r *InlineWidgetRun) Ascent() int   { return r.Widget.Ascent() }
func (r *InlineWidgetRun) Descent() int  { return r.Widget.Descent() }

// BreakRun forces a line break with a minimum vertical breakSpace (e.g. a
// <br> in HTML-adjacent input).
type BreakRun struct {
	BreakSpace int
}

func (r *BreakRun) Kind() RunKind { return KindBreak }
func (r *BreakRun) Width() int    { return 0 }
func (r *BreakRun) Ascent() int   { return 0 }
func (r *BreakRun) Descent() int  { return 0 }

// OofRefRun is a placeholder for an out-of-flow element (a float or
// absolutely positioned box): it consumes no horizontal space but may pin a
// y-position once the containing line's top is known.
type OofRefRun struct {
	Ref interface{} // opaque handle understood by the OutOfFlowMgr
}

func (r *OofRefRun) Kind() RunKind { return KindOofRef }
func (r *OofRefRun) Width() int    { return 0 }
func (r *OofRefRun) Ascent() int   { return 0 }
func (r *OofRefRun) Descent() int  { return 0 }

var (
	_ Run = (*TextRun)(nil)
	_ Run = (*InlineWidgetRun)(nil)
	_ Run = (*BreakRun)(nil)
	_ Run = (*OofRefRun)(nil)
)
