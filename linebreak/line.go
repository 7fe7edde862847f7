package linebreak

import "github.com/dillo-gui/dwcore/runmodel"

// Line mirrors spec.md's Line record: a finished line of the text block,
// together with the geometry the renderer needs.
type Line struct {
	FirstWord, LastWord int
	Alignment           runmodel.Alignment
	LeftOffset          int
	RightOffset         int
	TextOffset          int
	BorderAscent        int
	BorderDescent       int
	MarginAscent        int
	MarginDescent       int
	ContentAscent       int
	ContentDescent      int
	BreakSpace          int
	Top                 int
	MaxLineWidth        int

	LastOofRefPositionedBeforeThisLine bool
}

// Paragraph is the intermediate accumulator tracking minimum/maximum
// content width across the run of words since the last forced break
// (spec.md section 3). It resets on every forced break.
type Paragraph struct {
	FirstWord, LastWord int

	ParMin, ParMinIntrinsic int
	ParMax, ParMaxIntrinsic int
	ParAdjustmentWidth      int

	MaxParMin, MaxParMax int
}

// reset clears the accumulator back to a fresh paragraph starting at word
// index `at`, carrying the running maxima forward (they are cumulative
// across the whole textblock, not just the current paragraph).
func (p *Paragraph) reset(at int) {
	maxMin, maxMax := p.MaxParMin, p.MaxParMax
	*p = Paragraph{FirstWord: at, LastWord: at - 1}
	p.MaxParMin, p.MaxParMax = maxMin, maxMax
}

func (p *Paragraph) accumulate(minW, minIntrinsic, maxW, maxIntrinsic int) {
	p.ParMin += minW
	p.ParMinIntrinsic += minIntrinsic
	p.ParMax += maxW
	p.ParMaxIntrinsic += maxIntrinsic
	if p.ParMin > p.MaxParMin {
		p.MaxParMin = p.ParMin
	}
	if p.ParMax > p.MaxParMax {
		p.MaxParMax = p.ParMax
	}
}

// Extremes is the (minWidth, maxWidth) pair reported to a containing block
// for sizing purposes, plus the intrinsic variants that ignore
// widget-induced lower bounds (spec.md's getExtremes).
type Extremes struct {
	MinWidth, MaxWidth                   int
	MinWidthIntrinsic, MaxWidthIntrinsic int
}
